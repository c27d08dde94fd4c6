// Package collections implements tiny-clj's persistent and transient
// vectors, maps, lists, and lazy seqs, plus the copy-on-write mutation
// discipline: a collection is mutated in place only when its refcount
// says no other reference can observe the mutation, and copied
// otherwise. The COW test itself is grounded on the teacher's
// WithEnv/SetHandler "copy a small backing array" idiom; the
// refcount-gated choice between in-place and copy is this module's own
// rendering of the design's persistent-collection semantics.
package collections

import (
	"tinyclj/pkg/exception"
	"tinyclj/pkg/memory"
	"tinyclj/pkg/value"
)

// EmptyVector is the statically allocated, refcount-0 empty immutable
// vector every zero-length NewVector call returns (§3.3).
var EmptyVector = value.Value{Tag: value.TagHeap, Obj: &value.Heap{
	Kind: value.KindVector, Singleton: true,
}}

// NewVector builds a persistent vector owning a private copy of items.
func NewVector(items []value.Value) value.Value {
	if len(items) == 0 {
		return EmptyVector
	}
	cp := make([]value.Value, len(items))
	copy(cp, items)
	return value.Value{Tag: value.TagHeap, Obj: value.Alloc(value.Heap{
		Kind:  value.KindVector,
		Items: cp,
	})}
}

// VectorCount returns the element count.
func VectorCount(v value.Value) int { return len(v.Obj.Items) }

// VectorGet returns the element at idx, or an IndexOutOfBoundsException.
func VectorGet(v value.Value, idx int) (value.Value, error) {
	if idx < 0 || idx >= len(v.Obj.Items) {
		return value.Nil, exception.New(exception.IndexOutOfBoundsException,
			"index %d out of bounds for vector of length %d", idx, len(v.Obj.Items))
	}
	return v.Obj.Items[idx], nil
}

// owned reports whether v's backing object has exactly one referent and
// so can be mutated in place without anyone else observing the change.
// A singleton is never "owned": §4.4.1 case 1 always allocates fresh
// when the collection being updated is the empty singleton.
func owned(h *memory.Heap, v value.Value) bool {
	if v.Obj.Singleton {
		return false
	}
	return h.Retained(v) <= 1
}

// VectorConj appends item, mutating v's backing array in place when v is
// uniquely owned, or returning a new vector that shares no storage with
// v otherwise. Either way the returned Value is the one callers must use
// from here on; v itself may or may not still reflect the update.
func VectorConj(h *memory.Heap, v value.Value, item value.Value) value.Value {
	if owned(h, v) {
		v.Obj.Items = append(v.Obj.Items, item)
		return v
	}
	items := make([]value.Value, len(v.Obj.Items)+1)
	copy(items, v.Obj.Items)
	items[len(v.Obj.Items)] = item
	return value.Value{Tag: value.TagHeap, Obj: value.Alloc(value.Heap{Kind: value.KindVector, Items: items})}
}

// VectorAssoc replaces the element at idx, COW as VectorConj does.
func VectorAssoc(h *memory.Heap, v value.Value, idx int, val value.Value) (value.Value, error) {
	if idx < 0 || idx > len(v.Obj.Items) {
		return value.Nil, exception.New(exception.IndexOutOfBoundsException,
			"index %d out of bounds for vector of length %d", idx, len(v.Obj.Items))
	}
	if idx == len(v.Obj.Items) {
		return VectorConj(h, v, val), nil
	}
	if owned(h, v) {
		v.Obj.Items[idx] = val
		return v, nil
	}
	items := make([]value.Value, len(v.Obj.Items))
	copy(items, v.Obj.Items)
	items[idx] = val
	return value.Value{Tag: value.TagHeap, Obj: value.Alloc(value.Heap{Kind: value.KindVector, Items: items})}, nil
}

// VectorPop drops the last element. Popping an empty vector is an
// IllegalArgumentException, matching Clojure's pop on empty collections.
func VectorPop(h *memory.Heap, v value.Value) (value.Value, error) {
	n := len(v.Obj.Items)
	if n == 0 {
		return value.Nil, exception.New(exception.IllegalArgumentException, "cannot pop empty vector")
	}
	if owned(h, v) {
		v.Obj.Items = v.Obj.Items[:n-1]
		return v, nil
	}
	items := make([]value.Value, n-1)
	copy(items, v.Obj.Items[:n-1])
	return value.Value{Tag: value.TagHeap, Obj: value.Alloc(value.Heap{Kind: value.KindVector, Items: items})}, nil
}

// --- transients ---

// TransientVector produces a mutable twin of v with its own private
// backing array, so mutating the transient never affects v.
func TransientVector(v value.Value) value.Value {
	items := make([]value.Value, len(v.Obj.Items))
	copy(items, v.Obj.Items)
	return value.Value{Tag: value.TagHeap, Obj: value.Alloc(value.Heap{Kind: value.KindTransientVector, Items: items})}
}

// ConjBang appends to a transient vector in place. It is an error to
// call it after PersistentVector has finalized t.
func ConjBang(t value.Value, item value.Value) (value.Value, error) {
	if t.Obj.Finalized {
		return value.Nil, exception.New(exception.TransientUseAfterPersistent,
			"conj! called on a transient after persistent!")
	}
	t.Obj.Items = append(t.Obj.Items, item)
	return t, nil
}

// AssocBangVector replaces an element of a transient vector in place.
func AssocBangVector(t value.Value, idx int, val value.Value) (value.Value, error) {
	if t.Obj.Finalized {
		return value.Nil, exception.New(exception.TransientUseAfterPersistent,
			"assoc! called on a transient after persistent!")
	}
	if idx < 0 || idx > len(t.Obj.Items) {
		return value.Nil, exception.New(exception.IndexOutOfBoundsException,
			"index %d out of bounds for transient vector of length %d", idx, len(t.Obj.Items))
	}
	if idx == len(t.Obj.Items) {
		t.Obj.Items = append(t.Obj.Items, val)
		return t, nil
	}
	t.Obj.Items[idx] = val
	return t, nil
}

// PersistentVector finalizes a transient vector: t is marked finalized
// (any further bang operation on it errors) and a new persistent vector
// taking ownership of t's backing array is returned.
func PersistentVector(t value.Value) (value.Value, error) {
	if t.Obj.Finalized {
		return value.Nil, exception.New(exception.TransientUseAfterPersistent,
			"persistent! called twice on the same transient")
	}
	t.Obj.Finalized = true
	return value.Value{Tag: value.TagHeap, Obj: value.Alloc(value.Heap{Kind: value.KindVector, Items: t.Obj.Items})}, nil
}
