package core

import (
	"tinyclj/pkg/eval"
	"tinyclj/pkg/value"
)

func installCompare(st *eval.State) {
	define(st, "=", func(args []value.Value) (value.Value, error) {
		if len(args) == 0 {
			return value.True, nil
		}
		for _, a := range args[1:] {
			if !value.Equal(args[0], a) {
				return value.False, nil
			}
		}
		return value.True, nil
	})

	define(st, "not=", func(args []value.Value) (value.Value, error) {
		for i := 0; i < len(args); i++ {
			for j := i + 1; j < len(args); j++ {
				if value.Equal(args[i], args[j]) {
					return value.False, nil
				}
			}
		}
		return value.True, nil
	})

	define(st, "<", ordered(func(a, b float64) bool { return a < b }))
	define(st, ">", ordered(func(a, b float64) bool { return a > b }))
	define(st, "<=", ordered(func(a, b float64) bool { return a <= b }))
	define(st, ">=", ordered(func(a, b float64) bool { return a >= b }))

	define(st, "not", func(args []value.Value) (value.Value, error) {
		if err := requireArity(args, 1); err != nil {
			return value.Nil, err
		}
		return value.Bool(!args[0].Truthy()), nil
	})
}

func ordered(cmp func(a, b float64) bool) value.NativeFn {
	return func(args []value.Value) (value.Value, error) {
		if _, err := numericArgs(args); err != nil {
			return value.Nil, err
		}
		for i := 0; i+1 < len(args); i++ {
			if !cmp(asFixed(args[i]), asFixed(args[i+1])) {
				return value.False, nil
			}
		}
		return value.True, nil
	}
}
