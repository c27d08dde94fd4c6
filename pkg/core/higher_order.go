package core

import (
	"tinyclj/pkg/collections"
	"tinyclj/pkg/eval"
	"tinyclj/pkg/exception"
	"tinyclj/pkg/value"
)

func installHigherOrder(st *eval.State) {
	define(st, "apply", func(args []value.Value) (value.Value, error) {
		if len(args) < 2 {
			return value.Nil, exception.New(exception.ArityError, "apply requires a function and at least one argument")
		}
		fn := args[0]
		fixed := args[1 : len(args)-1]
		trailing := collections.SeqToSlice(args[len(args)-1])
		callArgs := append(append([]value.Value{}, fixed...), trailing...)
		return st.Apply(fn, callArgs), nil
	})

	define(st, "map", func(args []value.Value) (value.Value, error) {
		if err := requireArity(args, 2); err != nil {
			return value.Nil, err
		}
		fn := args[0]
		items := collections.SeqToSlice(args[1])
		out := make([]value.Value, len(items))
		for i, it := range items {
			out[i] = st.Apply(fn, []value.Value{it})
		}
		return collections.ListFromSlice(out), nil
	})

	define(st, "filter", func(args []value.Value) (value.Value, error) {
		if err := requireArity(args, 2); err != nil {
			return value.Nil, err
		}
		fn := args[0]
		items := collections.SeqToSlice(args[1])
		var out []value.Value
		for _, it := range items {
			if st.Apply(fn, []value.Value{it}).Truthy() {
				out = append(out, it)
			}
		}
		return collections.ListFromSlice(out), nil
	})

	define(st, "reduce", func(args []value.Value) (value.Value, error) {
		if len(args) < 2 || len(args) > 3 {
			return value.Nil, exception.New(exception.ArityError, "reduce requires a function, optional initial value, and a collection")
		}
		fn := args[0]
		var acc value.Value
		var items []value.Value
		if len(args) == 3 {
			acc = args[1]
			items = collections.SeqToSlice(args[2])
		} else {
			items = collections.SeqToSlice(args[1])
			if len(items) == 0 {
				return st.Apply(fn, nil), nil
			}
			acc = items[0]
			items = items[1:]
		}
		for _, it := range items {
			acc = st.Apply(fn, []value.Value{acc, it})
		}
		return acc, nil
	})
}
