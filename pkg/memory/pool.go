package memory

import "tinyclj/pkg/value"

// Autorelease records v in the current (innermost) scope and returns it
// unchanged, so construction sites can write
//
//	return h.Autorelease(newVector(items))
//
// and not worry about releasing it themselves; the scope that drains it
// will. Retain the value separately if it needs to outlive its scope.
func (h *Heap) Autorelease(v value.Value) value.Value {
	if !v.IsHeap() {
		return v
	}
	h.mu.Lock()
	top := len(h.scopes) - 1
	h.scopes[top] = append(h.scopes[top], v)
	h.mu.Unlock()
	return v
}

// EnterScope pushes a new autorelease scope. Every call must be matched
// by ExitScope, typically via defer.
func (h *Heap) EnterScope() {
	h.mu.Lock()
	h.scopes = append(h.scopes, nil)
	h.mu.Unlock()
}

// ExitScope pops the innermost autorelease scope and releases every
// value recorded in it, in reverse order of registration. It returns
// the first error encountered (e.g. a DoubleFreeError), continuing to
// drain the remaining entries regardless.
func (h *Heap) ExitScope() error {
	h.mu.Lock()
	top := len(h.scopes) - 1
	pending := h.scopes[top]
	h.scopes = h.scopes[:top]
	h.mu.Unlock()

	var first error
	for i := len(pending) - 1; i >= 0; i-- {
		if err := h.Release(pending[i]); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// Depth reports the number of open scopes, including the root. Exception
// handler frames record this at entry so `throw` unwinding can restore
// the pool to the handler's depth before running `catch`/`finally`.
func (h *Heap) Depth() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.scopes)
}

// UnwindTo pops scopes down to (and exiting) depth target+1, i.e. leaves
// exactly target scopes open. Used when an exception unwinds past
// several scopes directly to a handler frame's recorded depth.
func (h *Heap) UnwindTo(target int) error {
	var first error
	for h.Depth() > target {
		if err := h.ExitScope(); err != nil && first == nil {
			first = err
		}
	}
	return first
}
