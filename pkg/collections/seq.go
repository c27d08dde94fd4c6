package collections

import "tinyclj/pkg/value"

// Seq produces a lazy sequence view over v. Vectors, lists, maps (as
// key/value pair vectors), and strings (as characters) are all
// seq-able, and an existing SEQ view is returned as is; anything else
// yields Nil (the empty seq), matching
// Clojure's `(seq x)` returning nil for an empty collection.
func Seq(v value.Value) value.Value {
	switch {
	case v.IsNil():
		return value.Nil
	case v.IsVector(), v.IsTransientVector():
		if len(v.Obj.Items) == 0 {
			return value.Nil
		}
		return newSeq(v, 0, value.SeqOverVector)
	case v.IsList(), v.IsSeq():
		return v
	case v.IsMap(), v.IsTransientMap():
		if len(v.Obj.Pairs) == 0 {
			return value.Nil
		}
		return newSeq(v, 0, value.SeqOverMapEntries)
	case v.IsString():
		if len(v.Obj.Bytes) == 0 {
			return value.Nil
		}
		return newSeq(v, 0, value.SeqOverString)
	default:
		return value.Nil
	}
}

func newSeq(source value.Value, idx int, kind value.SeqKind) value.Value {
	return value.Value{Tag: value.TagHeap, Obj: value.Alloc(value.Heap{
		Kind: value.KindSeq, SeqSource: source, SeqIndex: idx, SeqKind: kind,
	})}
}

// First returns the first element of any seq-able value (nil for nil or
// an empty collection).
func First(v value.Value) value.Value {
	s := Seq(v)
	if s.IsNil() {
		return value.Nil
	}
	if s.IsList() {
		return s.Obj.Car
	}
	return seqElem(s)
}

// Rest returns the seq of everything after the first element, or Nil
// (never panics on an empty collection, matching `rest`'s contract).
func Rest(v value.Value) value.Value {
	s := Seq(v)
	if s.IsNil() {
		return value.Nil
	}
	if s.IsList() {
		return Seq(s.Obj.Cdr)
	}
	next := newSeq(s.Obj.SeqSource, s.Obj.SeqIndex+1, s.Obj.SeqKind)
	if seqLen(s.Obj.SeqSource, s.Obj.SeqKind) <= s.Obj.SeqIndex+1 {
		return value.Nil
	}
	return next
}

func seqLen(source value.Value, kind value.SeqKind) int {
	switch kind {
	case value.SeqOverVector:
		return len(source.Obj.Items)
	case value.SeqOverMapEntries:
		return len(source.Obj.Pairs)
	case value.SeqOverString:
		return len([]rune(string(source.Obj.Bytes)))
	}
	return 0
}

func seqElem(s value.Value) value.Value {
	switch s.Obj.SeqKind {
	case value.SeqOverVector:
		return s.Obj.SeqSource.Obj.Items[s.Obj.SeqIndex]
	case value.SeqOverMapEntries:
		p := s.Obj.SeqSource.Obj.Pairs[s.Obj.SeqIndex]
		return NewVector([]value.Value{p.Key, p.Val})
	case value.SeqOverString:
		r := []rune(string(s.Obj.SeqSource.Obj.Bytes))
		return value.Char(r[s.Obj.SeqIndex])
	}
	return value.Nil
}

// SeqFirst/SeqNext give vector-style traversal directly on a SEQ value,
// used by SeqToSlice and Count without re-deriving Seq each step.
func SeqFirst(s value.Value) value.Value {
	if s.IsList() {
		return s.Obj.Car
	}
	if !s.IsSeq() {
		return value.Nil
	}
	return seqElem(s)
}

func SeqNext(s value.Value) value.Value {
	if s.IsList() {
		return Seq(s.Obj.Cdr)
	}
	if !s.IsSeq() {
		return value.Nil
	}
	return Rest(s)
}

// SeqToSlice flattens any seq-able value (vector, map, list, string, or
// an already-produced SEQ) into a slice, walking one element at a time
// with SeqFirst/SeqNext. Unlike ListToSlice, this works uniformly across
// every source kind §3.3's seq view can wrap.
func SeqToSlice(v value.Value) []value.Value {
	var out []value.Value
	for s := Seq(v); !s.IsNil(); s = SeqNext(s) {
		out = append(out, SeqFirst(s))
	}
	return out
}

// Count returns the number of elements in any countable collection.
func Count(v value.Value) int {
	switch {
	case v.IsNil():
		return 0
	case v.IsVector(), v.IsTransientVector():
		return len(v.Obj.Items)
	case v.IsMap(), v.IsTransientMap():
		return len(v.Obj.Pairs)
	case v.IsList():
		return ListCount(v)
	case v.IsString(), v.IsByteArray():
		return len(v.Obj.Bytes)
	case v.IsSeq():
		n := 0
		for cur := value.Value(v); !cur.IsNil(); cur = SeqNext(cur) {
			n++
		}
		return n
	default:
		return 0
	}
}
