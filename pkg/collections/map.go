package collections

import (
	"tinyclj/pkg/exception"
	"tinyclj/pkg/memory"
	"tinyclj/pkg/value"
)

// EmptyMap is the statically allocated, refcount-0 empty map every
// zero-pair NewMap call returns (§3.3).
var EmptyMap = value.Value{Tag: value.TagHeap, Obj: &value.Heap{
	Kind: value.KindMap, Singleton: true,
}}

// NewMap builds a persistent map from key/value pairs, last-write-wins on
// duplicate keys like Clojure's hash-map literal.
func NewMap(pairs []value.MapEntry) value.Value {
	out := make([]value.MapEntry, 0, len(pairs))
	for _, p := range pairs {
		replaced := false
		for i := range out {
			if value.Equal(out[i].Key, p.Key) {
				out[i].Val = p.Val
				replaced = true
				break
			}
		}
		if !replaced {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return EmptyMap
	}
	return value.Value{Tag: value.TagHeap, Obj: value.Alloc(value.Heap{Kind: value.KindMap, Pairs: out})}
}

func findKey(m value.Value, k value.Value) int {
	for i, p := range m.Obj.Pairs {
		if value.Equal(p.Key, k) {
			return i
		}
	}
	return -1
}

// MapGet looks up k in m's own bindings only (no Parent walk — that is
// EnvLookup's job, used when a map additionally serves as an env frame).
func MapGet(m value.Value, k value.Value) (value.Value, bool) {
	if i := findKey(m, k); i >= 0 {
		return m.Obj.Pairs[i].Val, true
	}
	return value.Nil, false
}

func MapCount(m value.Value) int { return len(m.Obj.Pairs) }

// MapAssoc returns a map with k bound to val, COW as VectorAssoc does.
func MapAssoc(h *memory.Heap, m value.Value, k, val value.Value) value.Value {
	if owned(h, m) {
		if i := findKey(m, k); i >= 0 {
			m.Obj.Pairs[i].Val = val
			return m
		}
		m.Obj.Pairs = append(m.Obj.Pairs, value.MapEntry{Key: k, Val: val})
		return m
	}
	pairs := make([]value.MapEntry, len(m.Obj.Pairs))
	copy(pairs, m.Obj.Pairs)
	if i := findKey(m, k); i >= 0 {
		pairs[i].Val = val
	} else {
		pairs = append(pairs, value.MapEntry{Key: k, Val: val})
	}
	return value.Value{Tag: value.TagHeap, Obj: value.Alloc(value.Heap{Kind: value.KindMap, Pairs: pairs, Parent: m.Obj.Parent})}
}

// MapDissoc removes k, COW as MapAssoc does.
func MapDissoc(h *memory.Heap, m value.Value, k value.Value) value.Value {
	i := findKey(m, k)
	if i < 0 {
		return m
	}
	if owned(h, m) {
		m.Obj.Pairs = append(m.Obj.Pairs[:i], m.Obj.Pairs[i+1:]...)
		return m
	}
	pairs := make([]value.MapEntry, 0, len(m.Obj.Pairs)-1)
	pairs = append(pairs, m.Obj.Pairs[:i]...)
	pairs = append(pairs, m.Obj.Pairs[i+1:]...)
	return value.Value{Tag: value.TagHeap, Obj: value.Alloc(value.Heap{Kind: value.KindMap, Pairs: pairs, Parent: m.Obj.Parent})}
}

// --- transients ---

func TransientMap(m value.Value) value.Value {
	pairs := make([]value.MapEntry, len(m.Obj.Pairs))
	copy(pairs, m.Obj.Pairs)
	return value.Value{Tag: value.TagHeap, Obj: value.Alloc(value.Heap{Kind: value.KindTransientMap, Pairs: pairs})}
}

func AssocBangMap(t value.Value, k, val value.Value) (value.Value, error) {
	if t.Obj.Finalized {
		return value.Nil, exception.New(exception.TransientUseAfterPersistent,
			"assoc! called on a transient after persistent!")
	}
	if i := findKey(t, k); i >= 0 {
		t.Obj.Pairs[i].Val = val
	} else {
		t.Obj.Pairs = append(t.Obj.Pairs, value.MapEntry{Key: k, Val: val})
	}
	return t, nil
}

func DissocBangMap(t value.Value, k value.Value) (value.Value, error) {
	if t.Obj.Finalized {
		return value.Nil, exception.New(exception.TransientUseAfterPersistent,
			"dissoc! called on a transient after persistent!")
	}
	if i := findKey(t, k); i >= 0 {
		t.Obj.Pairs = append(t.Obj.Pairs[:i], t.Obj.Pairs[i+1:]...)
	}
	return t, nil
}

func PersistentMap(t value.Value) (value.Value, error) {
	if t.Obj.Finalized {
		return value.Nil, exception.New(exception.TransientUseAfterPersistent,
			"persistent! called twice on the same transient")
	}
	t.Obj.Finalized = true
	return value.Value{Tag: value.TagHeap, Obj: value.Alloc(value.Heap{Kind: value.KindMap, Pairs: t.Obj.Pairs})}, nil
}
