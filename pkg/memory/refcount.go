// Package memory implements tiny-clj's reference-counted heap discipline:
// retain/release on value.Heap objects, and an autorelease-pool stack that
// drains temporaries at scope exit. The retain-count bookkeeping is
// grounded on the teacher's ConstraintObj/ConstraintContext violation
// tracking; the pool-of-scopes idiom is grounded on its RegionContext
// EnterRegion/ExitRegion stack.
package memory

import (
	"fmt"
	"sync"

	"tinyclj/pkg/value"
)

// DoubleFreeError is raised when Release is called on an object whose
// refcount has already reached zero.
type DoubleFreeError struct {
	Kind value.Kind
}

func (e *DoubleFreeError) Error() string {
	return fmt.Sprintf("double free of heap object (kind %s)", e.Kind)
}

// Heap tracks refcounts for every live heap object and owns the
// autorelease pool stack. A single Heap is shared by one interpreter
// State; it is not safe for concurrent use from multiple goroutines
// without external synchronization (tiny-clj states are single-threaded
// by design, per the host API).
type Heap struct {
	mu     sync.Mutex
	scopes [][]value.Value
}

// NewHeap constructs an empty heap with one root scope.
func NewHeap() *Heap {
	return &Heap{scopes: [][]value.Value{nil}}
}

// Retain increments the refcount of a heap value. Immediates are no-ops,
// and so is a static singleton: its refcount stays pinned at 0 forever
// (§3.2).
func (h *Heap) Retain(v value.Value) value.Value {
	if v.IsHeap() && !v.Obj.Singleton {
		h.mu.Lock()
		v.Obj.Refcount++
		h.mu.Unlock()
	}
	return v
}

// Release decrements the refcount of a heap value, recursively releasing
// children and reporting a DoubleFreeError once the count would go
// negative. When the count reaches zero the object's child references
// are released but the Go object itself is left for the garbage
// collector to reclaim. A static singleton survives any number of
// releases (§4.1).
func (h *Heap) Release(v value.Value) error {
	if !v.IsHeap() {
		return nil
	}
	h.mu.Lock()
	obj := v.Obj
	if obj.Singleton {
		h.mu.Unlock()
		return nil
	}
	if obj.Refcount <= 0 {
		h.mu.Unlock()
		return &DoubleFreeError{Kind: obj.Kind}
	}
	obj.Refcount--
	dead := obj.Refcount == 0
	h.mu.Unlock()
	if !dead {
		return nil
	}
	return h.releaseChildren(obj)
}

func (h *Heap) releaseChildren(obj *value.Heap) error {
	switch obj.Kind {
	case value.KindVector, value.KindTransientVector:
		for _, it := range obj.Items {
			if err := h.Release(it); err != nil {
				return err
			}
		}
	case value.KindMap, value.KindTransientMap:
		for _, p := range obj.Pairs {
			if err := h.Release(p.Key); err != nil {
				return err
			}
			if err := h.Release(p.Val); err != nil {
				return err
			}
		}
		if obj.Parent.IsHeap() {
			return h.Release(obj.Parent)
		}
	case value.KindList:
		if err := h.Release(obj.Car); err != nil {
			return err
		}
		return h.Release(obj.Cdr)
	case value.KindSeq:
		return h.Release(obj.SeqSource)
	case value.KindFnInterp:
		if err := h.Release(obj.Env); err != nil {
			return err
		}
		return h.Release(obj.RestParam)
	case value.KindException:
		return h.Release(obj.ExcData)
	}
	return nil
}

// Retained reports the current refcount of a heap value (0 for
// immediates, since they are not refcounted).
func (h *Heap) Retained(v value.Value) int32 {
	if !v.IsHeap() {
		return 0
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	return v.Obj.Refcount
}
