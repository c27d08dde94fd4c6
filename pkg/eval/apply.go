package eval

import (
	"tinyclj/pkg/collections"
	"tinyclj/pkg/exception"
	"tinyclj/pkg/value"
)

// evalApply evaluates a non-special-form list as a function call:
// evaluate the head and every argument strictly left-to-right, then
// dispatch on whether the resulting function is native or interpreted.
func (st *State) evalApply(form value.Value, env value.Value) value.Value {
	fn := st.evalTail(form.Obj.Car, env, false)
	argForms := collections.ListToSlice(form.Obj.Cdr)
	args := make([]value.Value, len(argForms))
	for i, f := range argForms {
		args[i] = st.evalTail(f, env, false)
	}
	return st.Apply(fn, args)
}

// Apply calls fn with an already-evaluated argument slice. Exported so
// the core library's higher-order primitives (`map`, `apply`, `reduce`,
// …) can invoke tiny-clj functions without re-deriving argument forms.
func (st *State) Apply(fn value.Value, args []value.Value) value.Value {
	switch {
	case fn.IsFnNative():
		result, err := fn.Obj.Native(args)
		if err != nil {
			if exc, ok := err.(*exception.Exception); ok {
				exception.Raise(exc)
			}
			exception.Raise(exception.New(exception.TypeError, "%v", err))
		}
		return result
	case fn.IsFnInterp():
		return st.applyInterp(fn, args)
	case fn.IsKeyword():
		return applyKeyword(fn, args)
	default:
		exception.Raise(exception.New(exception.TypeError, "cannot call a non-function value"))
		panic("unreachable")
	}
}

// applyKeyword implements keyword-as-function lookup: `(:k m)` looks `:k`
// up in `m`, missing keys (or a non-map m) falling back to `nil` or the
// caller-supplied default `(:k m default)`.
func applyKeyword(kw value.Value, args []value.Value) value.Value {
	if len(args) < 1 || len(args) > 2 {
		exception.Raise(exception.New(exception.ArityError, "keyword lookup expects 1 or 2 argument(s), got %d", len(args)))
	}
	m := args[0]
	if m.IsMap() {
		if v, ok := collections.MapGet(m, kw); ok {
			return v
		}
	}
	if len(args) == 2 {
		return args[1]
	}
	return value.Nil
}

func (st *State) applyInterp(fn value.Value, args []value.Value) value.Value {
	obj := fn.Obj
	nparams := len(obj.Params)
	if obj.Variadic {
		if len(args) < nparams {
			exception.Raise(arityErr(obj, len(args)))
		}
	} else if len(args) != nparams {
		exception.Raise(arityErr(obj, len(args)))
	}

	frame := collections.NewEnvFrame(obj.Env)
	for i, p := range obj.Params {
		frame = collections.EnvExtend(st.Heap, frame, p, args[i])
	}
	slotCount := nparams
	if obj.Variadic {
		rest := collections.ListFromSlice(args[nparams:])
		frame = collections.EnvExtend(st.Heap, frame, obj.RestParam, rest)
		slotCount++
	}

	target := &recurTarget{arity: slotCount}
	st.recurStack = append(st.recurStack, target)
	defer st.popRecurTarget()

	for {
		result, signal := st.runBodyCatchingRecur(obj.Body, frame, target)
		if signal == nil {
			return result
		}
		i := 0
		for _, p := range obj.Params {
			frame = collections.EnvExtend(st.Heap, frame, p, signal.values[i])
			i++
		}
		if obj.Variadic {
			frame = collections.EnvExtend(st.Heap, frame, obj.RestParam, signal.values[i])
		}
	}
}

func arityErr(obj *value.Heap, got int) *exception.Exception {
	name := obj.FnName
	if name == "" {
		name = "fn"
	}
	return exception.New(exception.ArityError, "%s expects %d argument(s), got %d", name, len(obj.Params), got)
}
