package eval

import (
	"strings"

	"tinyclj/pkg/collections"
	"tinyclj/pkg/exception"
	"tinyclj/pkg/value"
)

type catchClause struct {
	filter string // "" (or "default") matches any exception type
	sym    value.Value
	body   []value.Value
}

// evalTry splits `(try body… (catch T sym handler…) (finally cleanup…))`
// into its body, catch clauses, and an optional finally clause, then
// runs the body under a recovered panic: on a Throw, every pool scope
// opened since try's entry is drained before the matching catch clause
// (if any) runs, exactly mirroring §4.5's handler-stack contract — here
// realized with Go's own call stack standing in for the explicit
// handler-frame stack, since a try's catch clauses are always the
// nearest enclosing recover point by construction of the tree-walking
// evaluator.
func (st *State) evalTry(args value.Value, env value.Value) (result value.Value) {
	allForms := collections.ListToSlice(args)
	var body []value.Value
	var catches []catchClause
	var finallyForms []value.Value

	for _, f := range allForms {
		if f.IsList() && symName(f.Obj.Car) == "catch" {
			rest := collections.ListToSlice(f.Obj.Cdr)
			if len(rest) < 2 {
				exception.Raise(exception.New(exception.TypeError, "catch requires a type and a binding symbol"))
			}
			catches = append(catches, catchClause{
				filter: filterName(rest[0]),
				sym:    rest[1],
				body:   rest[2:],
			})
			continue
		}
		if f.IsList() && symName(f.Obj.Car) == "finally" {
			finallyForms = collections.ListToSlice(f.Obj.Cdr)
			continue
		}
		body = append(body, f)
	}

	entryDepth := st.Heap.Depth()
	st.Heap.EnterScope()

	defer func() {
		r := recover()
		if r == nil {
			st.Heap.ExitScope()
			if len(finallyForms) > 0 {
				st.evalDo(finallyForms, env, false)
			}
			return
		}
		th, ok := r.(exception.Throw)
		if !ok {
			panic(r) // not our concern (e.g. a recurSignal bound for an outer frame)
		}
		st.Heap.UnwindTo(entryDepth)

		for _, c := range catches {
			if !matchesFilter(c.filter, string(th.Exc.ExcType)) {
				continue
			}
			handlerEnv := collections.EnvExtend(st.Heap, collections.NewEnvFrame(env), c.sym, exception.ToValue(th.Exc))
			result = st.evalDo(c.body, handlerEnv, false)
			if len(finallyForms) > 0 {
				st.evalDo(finallyForms, env, false)
			}
			return
		}
		if len(finallyForms) > 0 {
			st.evalDo(finallyForms, env, false)
		}
		panic(r)
	}()

	result = st.evalDo(body, env, false)
	return result
}

func filterName(t value.Value) string {
	if t.IsKeyword() {
		return strings.TrimPrefix(t.Obj.Name, ":")
	}
	if t.IsSymbol() {
		return t.Obj.Name
	}
	return ""
}

func matchesFilter(filter, excType string) bool {
	return filter == "" || filter == "default" || filter == excType
}
