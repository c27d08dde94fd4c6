package collections

import (
	"tinyclj/pkg/memory"
	"tinyclj/pkg/value"
)

// An environment frame is just a MAP value whose Parent points at the
// enclosing frame, per the design's "env is a map of locals" note: `let`
// and function application each build one small frame rather than
// copying the whole lexical chain, and closures capture a frame by
// retaining it.

// NewEnvFrame builds a fresh, empty frame chained to parent (which may
// be value.Nil for the top-level/global frame).
func NewEnvFrame(parent value.Value) value.Value {
	return value.Value{Tag: value.TagHeap, Obj: value.Alloc(value.Heap{Kind: value.KindMap, Parent: parent})}
}

// EnvExtend returns a frame with sym bound to val, COW like MapAssoc.
// Bindings are looked up by symbol pointer identity first, falling back
// to name comparison for symbols read from separate forms.
func EnvExtend(h *memory.Heap, frame value.Value, sym, val value.Value) value.Value {
	if owned(h, frame) {
		if i := envFindKey(frame, sym); i >= 0 {
			frame.Obj.Pairs[i].Val = val
		} else {
			frame.Obj.Pairs = append(frame.Obj.Pairs, value.MapEntry{Key: sym, Val: val})
		}
		return frame
	}
	pairs := make([]value.MapEntry, len(frame.Obj.Pairs))
	copy(pairs, frame.Obj.Pairs)
	if i := envFindKey(frame, sym); i >= 0 {
		pairs[i].Val = val
	} else {
		pairs = append(pairs, value.MapEntry{Key: sym, Val: val})
	}
	return value.Value{Tag: value.TagHeap, Obj: value.Alloc(value.Heap{Kind: value.KindMap, Pairs: pairs, Parent: frame.Obj.Parent})}
}

func envFindKey(frame value.Value, sym value.Value) int {
	for i, p := range frame.Obj.Pairs {
		if value.SameObject(p.Key, sym) || symbolNameEqual(p.Key, sym) {
			return i
		}
	}
	return -1
}

func symbolNameEqual(a, b value.Value) bool {
	if !a.IsSymbol() || !b.IsSymbol() {
		return false
	}
	return a.Obj.NS == b.Obj.NS && a.Obj.Name == b.Obj.Name
}

// EnvLookup walks frame and its Parent chain looking for sym, returning
// ok=false once the chain is exhausted (the caller then falls back to
// the namespace registry for a global lookup).
func EnvLookup(frame value.Value, sym value.Value) (value.Value, bool) {
	for frame.IsMap() {
		if i := envFindKey(frame, sym); i >= 0 {
			return frame.Obj.Pairs[i].Val, true
		}
		frame = frame.Obj.Parent
	}
	return value.Nil, false
}
