package core

import (
	"tinyclj/pkg/eval"
	"tinyclj/pkg/value"
)

func predicate(test func(value.Value) bool) value.NativeFn {
	return func(args []value.Value) (value.Value, error) {
		if err := requireArity(args, 1); err != nil {
			return value.Nil, err
		}
		return value.Bool(test(args[0])), nil
	}
}

func installPredicates(st *eval.State) {
	define(st, "nil?", predicate(value.Value.IsNil))
	define(st, "true?", predicate(value.Value.IsTrue))
	define(st, "false?", predicate(value.Value.IsFalse))
	define(st, "number?", predicate(func(v value.Value) bool { return v.IsFixnum() || v.IsFixed() }))
	define(st, "integer?", predicate(value.Value.IsFixnum))
	define(st, "float?", predicate(value.Value.IsFixed))
	define(st, "char?", predicate(value.Value.IsChar))
	define(st, "string?", predicate(value.Value.IsString))
	define(st, "symbol?", predicate(func(v value.Value) bool { return v.IsSymbol() && !v.IsKeyword() }))
	define(st, "keyword?", predicate(value.Value.IsKeyword))
	define(st, "vector?", predicate(value.Value.IsVector))
	define(st, "map?", predicate(value.Value.IsMap))
	define(st, "list?", predicate(func(v value.Value) bool { return v.IsList() || v.IsNil() }))
	define(st, "seq?", predicate(value.Value.IsSeq))
	define(st, "fn?", predicate(value.Value.IsFn))
	define(st, "exception?", predicate(value.Value.IsException))
	define(st, "byte-array?", predicate(value.Value.IsByteArray))

	define(st, "zero?", numericPredicate(func(f float64) bool { return f == 0 }))
	define(st, "pos?", numericPredicate(func(f float64) bool { return f > 0 }))
	define(st, "neg?", numericPredicate(func(f float64) bool { return f < 0 }))
	define(st, "even?", func(args []value.Value) (value.Value, error) {
		if err := requireArity(args, 1); err != nil {
			return value.Nil, err
		}
		return value.Bool(args[0].I%2 == 0), nil
	})
	define(st, "odd?", func(args []value.Value) (value.Value, error) {
		if err := requireArity(args, 1); err != nil {
			return value.Nil, err
		}
		return value.Bool(args[0].I%2 != 0), nil
	})
}

func numericPredicate(test func(float64) bool) value.NativeFn {
	return func(args []value.Value) (value.Value, error) {
		if err := requireArity(args, 1); err != nil {
			return value.Nil, err
		}
		if _, err := numericArgs(args); err != nil {
			return value.Nil, err
		}
		return value.Bool(test(asFixed(args[0]))), nil
	}
}
