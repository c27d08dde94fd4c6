package eval

import (
	"tinyclj/pkg/collections"
	"tinyclj/pkg/value"
)

// evalQuasiquote expands a quasiquoted form: everything is treated as
// quoted data except subforms wrapped in `unquote` (evaluated in place)
// or `splice-unquote` (evaluated and spliced into the enclosing list).
// Reader macros produce the `quasiquote`/`unquote`/`splice-unquote`
// wrapper forms (§4.2); this is the one place the evaluator interprets
// them, as a supplement the distilled special-form table left implicit.
func (st *State) evalQuasiquote(form value.Value, env value.Value) value.Value {
	switch {
	case form.IsList():
		if symName(form.Obj.Car) == "unquote" {
			return st.evalTail(collections.ListFirst(form.Obj.Cdr), env, false)
		}
		var out []value.Value
		for cur := form; cur.IsList(); cur = cur.Obj.Cdr {
			item := cur.Obj.Car
			if item.IsList() && symName(item.Obj.Car) == "splice-unquote" {
				spliced := st.evalTail(collections.ListFirst(item.Obj.Cdr), env, false)
				out = append(out, collections.ListToSlice(spliced)...)
				continue
			}
			out = append(out, st.evalQuasiquote(item, env))
		}
		return collections.ListFromSlice(out)
	case form.IsVector():
		out := make([]value.Value, 0, len(form.Obj.Items))
		for _, item := range form.Obj.Items {
			if item.IsList() && symName(item.Obj.Car) == "splice-unquote" {
				spliced := st.evalTail(collections.ListFirst(item.Obj.Cdr), env, false)
				out = append(out, collections.ListToSlice(spliced)...)
				continue
			}
			out = append(out, st.evalQuasiquote(item, env))
		}
		return collections.NewVector(out)
	default:
		return form
	}
}
