// Package eval implements tiny-clj's tree-walking evaluator: special-form
// dispatch, function application, closure capture, and recur's O(1)
// tail-call reuse. Non-local control transfer (both `throw`/`catch` and
// `recur`) is implemented with panic/recover, the same tagged-escape
// idiom the teacher uses for its own control-flow shortcuts, rather than
// threading an explicit signal value through every return.
package eval

import (
	"tinyclj/pkg/collections"
	"tinyclj/pkg/exception"
	"tinyclj/pkg/memory"
	"tinyclj/pkg/namespace"
	"tinyclj/pkg/symbol"
	"tinyclj/pkg/value"
)

// State is one interpreter instance: its own heap/pool stack and current
// namespace, sharing the process-wide symbol table and namespace
// registry with any sibling states the host may have created.
type State struct {
	Heap       *memory.Heap
	Symbols    *symbol.Table
	Namespaces *namespace.Registry
	CurrentNS  string

	recurStack []*recurTarget

	// StepBudget, if non-zero, bounds the number of evaluator steps
	// before a BudgetExceeded exception is raised; hosts embedding the
	// interpreter in a cooperative scheduler set this per eval call.
	StepBudget int64
	stepCount  int64
}

// recurTarget identifies one active loop/fn frame recur can jump back
// to. Identity (pointer), not value, is what recur's panic matches
// against, so only the dynamically innermost frame ever catches it.
type recurTarget struct {
	arity int
}

// recurSignal is the panic payload `recur` raises; caught only by the
// loop or function-application frame whose target it names.
type recurSignal struct {
	target *recurTarget
	values []value.Value
}

// NewState builds a fresh interpreter state. name defaults to "user"
// when empty, matching the host API's documented default namespace.
func NewState(syms *symbol.Table, ns *namespace.Registry, name string) *State {
	if name == "" {
		name = "user"
	}
	ns.GetOrCreate(name)
	ns.GetOrCreate("core")
	return &State{
		Heap:       memory.NewHeap(),
		Symbols:    syms,
		Namespaces: ns,
		CurrentNS:  name,
	}
}

// SetCurrentNS switches the evaluator's resolution scope to name,
// creating it on first use, matching the host API's `set_current_ns`
// (§6.1) and the `(ns foo)` special form.
func (st *State) SetCurrentNS(name string) {
	st.Namespaces.GetOrCreate(name)
	st.CurrentNS = name
}

func (st *State) step() error {
	if st.StepBudget == 0 {
		return nil
	}
	st.stepCount++
	if st.stepCount > st.StepBudget {
		return exception.New(exception.BudgetExceeded, "evaluation step budget of %d exceeded", st.StepBudget)
	}
	return nil
}

// Eval evaluates form in env (a collections env-frame map, or value.Nil
// for none) against the current namespace. It is the host-facing entry
// point: exceptions raised via exception.Raise are recovered here and
// turned into a returned error rather than propagating as a panic.
func (st *State) Eval(form value.Value, env value.Value) (result value.Value, err error) {
	defer func() {
		if r := recover(); r != nil {
			if th, ok := r.(exception.Throw); ok {
				result, err = value.Nil, th.Exc
				return
			}
			panic(r)
		}
	}()
	return st.evalTail(form, env, false), nil
}

func (st *State) evalTail(form value.Value, env value.Value, tail bool) value.Value {
	if err := st.step(); err != nil {
		exception.Raise(err.(*exception.Exception))
	}
	switch {
	case form.IsSymbol():
		return st.resolveSymbol(form, env)
	case form.IsList():
		return st.evalList(form, env, tail)
	case form.IsVector():
		items := make([]value.Value, len(form.Obj.Items))
		for i, it := range form.Obj.Items {
			items[i] = st.evalTail(it, env, false)
		}
		return st.Heap.Autorelease(collections.NewVector(items))
	case form.IsMap():
		pairs := make([]value.MapEntry, len(form.Obj.Pairs))
		for i, p := range form.Obj.Pairs {
			pairs[i] = value.MapEntry{Key: st.evalTail(p.Key, env, false), Val: st.evalTail(p.Val, env, false)}
		}
		return st.Heap.Autorelease(collections.NewMap(pairs))
	default:
		return form
	}
}

func (st *State) resolveSymbol(sym value.Value, env value.Value) value.Value {
	if sym.IsKeyword() {
		return sym
	}
	if v, ok := collections.EnvLookup(env, sym); ok {
		return v
	}
	ns, name := sym.Obj.NS, sym.Obj.Name
	if v, ok := st.Namespaces.Resolve(st.CurrentNS, ns, name); ok {
		return v
	}
	exception.Raise(exception.New(exception.SymbolResolutionError, "unable to resolve symbol: %s", symbol.QualifiedName(sym)))
	panic("unreachable")
}
