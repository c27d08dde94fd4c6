package eval

import (
	"tinyclj/pkg/collections"
	"tinyclj/pkg/exception"
	"tinyclj/pkg/value"
)

func (st *State) evalList(form value.Value, env value.Value, tail bool) value.Value {
	if form.IsNil() {
		return value.Nil
	}
	head := form.Obj.Car
	args := form.Obj.Cdr

	if head.IsSymbol() && head.Obj.NS == "" {
		switch head.Obj.Name {
		case "def":
			return st.evalDef(args, env)
		case "defn":
			return st.evalDefn(args, env)
		case "fn":
			return st.evalFn(args, env, "")
		case "let":
			return st.evalLet(args, env, tail)
		case "if":
			return st.evalIf(args, env, tail)
		case "do":
			return st.evalDo(collections.ListToSlice(args), env, tail)
		case "quote":
			return collections.ListFirst(args)
		case "quasiquote":
			return st.evalQuasiquote(collections.ListFirst(args), env)
		case "loop":
			return st.evalLoop(args, env)
		case "recur":
			return st.evalRecur(args, env, tail)
		case "try":
			return st.evalTry(args, env)
		case "throw":
			return st.evalThrow(args, env)
		case "cond":
			return st.evalCond(args, env, tail)
		case "when":
			return st.evalWhen(args, env, tail)
		case "when-not":
			return st.evalWhenNot(args, env, tail)
		case "->":
			return st.evalThread(args, env, tail, false)
		case "->>":
			return st.evalThread(args, env, tail, true)
		case "ns":
			return st.evalNs(args)
		}
	}
	return st.evalApply(form, env)
}

func symName(v value.Value) string {
	if !v.IsSymbol() {
		return ""
	}
	return v.Obj.Name
}

func (st *State) evalDef(args value.Value, env value.Value) value.Value {
	sym := collections.ListFirst(args)
	if !sym.IsSymbol() {
		exception.Raise(exception.New(exception.TypeError, "def requires a symbol, got %v", sym))
	}
	rest := collections.ListRest(args)
	var val value.Value
	if rest.IsNil() {
		val = value.Nil
	} else {
		val = st.evalTail(collections.ListFirst(rest), env, false)
	}
	st.Namespaces.GetOrCreate(st.CurrentNS).Define(sym.Obj.Name, val)
	return sym
}

// evalDefn desugars `(defn sym [params] body...)` to `(def sym (fn
// [params] body...))`, matching §4.3.3 literally.
func (st *State) evalDefn(args value.Value, env value.Value) value.Value {
	sym := collections.ListFirst(args)
	if !sym.IsSymbol() {
		exception.Raise(exception.New(exception.TypeError, "defn requires a symbol name"))
	}
	rest := collections.ListRest(args)
	fnVal := st.evalFn(rest, env, sym.Obj.Name)
	st.Namespaces.GetOrCreate(st.CurrentNS).Define(sym.Obj.Name, fnVal)
	return sym
}

func (st *State) evalFn(args value.Value, env value.Value, name string) value.Value {
	paramsForm := collections.ListFirst(args)
	if !paramsForm.IsVector() {
		exception.Raise(exception.New(exception.TypeError, "fn requires a parameter vector"))
	}
	params, rest, variadic := splitParams(paramsForm)
	body := collections.ListToSlice(collections.ListRest(args))
	fnv := value.Value{Tag: value.TagHeap, Obj: value.Alloc(value.Heap{
		Kind:       value.KindFnInterp,
		Params:     params,
		RestParam:  rest,
		Variadic:   variadic,
		Body:       body,
		Env:        st.Heap.Retain(env),
		FnName:     name,
		RecurArity: len(params),
	})}
	return st.Heap.Autorelease(fnv)
}

// splitParams separates a `[a b & rest]` parameter vector into its fixed
// parameters and optional trailing rest symbol.
func splitParams(v value.Value) (params []value.Value, rest value.Value, variadic bool) {
	items := v.Obj.Items
	for i := 0; i < len(items); i++ {
		if symName(items[i]) == "&" {
			if i+1 < len(items) {
				rest = items[i+1]
			}
			return params, rest, true
		}
		params = append(params, items[i])
	}
	return params, value.Nil, false
}

func (st *State) evalLet(args value.Value, env value.Value, tail bool) value.Value {
	bindingsForm := collections.ListFirst(args)
	if !bindingsForm.IsVector() || len(bindingsForm.Obj.Items)%2 != 0 {
		exception.Raise(exception.New(exception.TypeError, "let requires an even-length binding vector"))
	}
	frame := collections.NewEnvFrame(env)
	items := bindingsForm.Obj.Items
	for i := 0; i < len(items); i += 2 {
		k, vForm := items[i], items[i+1]
		v := st.evalTail(vForm, frame, false)
		frame = collections.EnvExtend(st.Heap, frame, k, v)
	}
	return st.evalDo(collections.ListToSlice(collections.ListRest(args)), frame, tail)
}

func (st *State) evalIf(args value.Value, env value.Value, tail bool) value.Value {
	test := collections.ListFirst(args)
	rest := collections.ListRest(args)
	thenForm := collections.ListFirst(rest)
	elseRest := collections.ListRest(rest)

	cond := st.evalTail(test, env, false)
	if cond.Truthy() {
		return st.evalTail(thenForm, env, tail)
	}
	if elseRest.IsNil() {
		return value.Nil
	}
	return st.evalTail(collections.ListFirst(elseRest), env, tail)
}

func (st *State) evalDo(forms []value.Value, env value.Value, tail bool) value.Value {
	if len(forms) == 0 {
		return value.Nil
	}
	for _, f := range forms[:len(forms)-1] {
		st.evalTail(f, env, false)
	}
	return st.evalTail(forms[len(forms)-1], env, tail)
}

// evalNs implements `(ns foo)`: switch the evaluator's current-namespace
// field, creating the namespace on first use (§4.6).
func (st *State) evalNs(args value.Value) value.Value {
	sym := collections.ListFirst(args)
	if !sym.IsSymbol() {
		exception.Raise(exception.New(exception.TypeError, "ns requires a symbol"))
	}
	st.SetCurrentNS(sym.Obj.Name)
	return value.Nil
}

func (st *State) evalThrow(args value.Value, env value.Value) value.Value {
	x := st.evalTail(collections.ListFirst(args), env, false)
	if !x.IsException() {
		exception.Raise(exception.New(exception.TypeError, "throw requires an exception value"))
	}
	exception.Raise(exception.FromValue(x))
	panic("unreachable")
}
