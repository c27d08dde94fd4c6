package core

import (
	"tinyclj/pkg/exception"
	"tinyclj/pkg/eval"
	"tinyclj/pkg/value"
)

func numericArgs(args []value.Value) ([]value.Value, error) {
	for _, a := range args {
		if !a.IsFixnum() && !a.IsFixed() {
			return nil, exception.New(exception.TypeError, "expected a number, got %v", a)
		}
	}
	return args, nil
}

// asFixed promotes a to a float64 real, regardless of whether it is a
// fixnum or a fixed-point value.
func asFixed(a value.Value) float64 {
	if a.IsFixed() {
		return a.Float64()
	}
	return float64(a.I)
}

// anyFixed reports whether any argument is a fixed-point real, which
// forces the whole operation to produce a fixed-point result.
func anyFixed(args []value.Value) bool {
	for _, a := range args {
		if a.IsFixed() {
			return true
		}
	}
	return false
}

func installArith(st *eval.State) {
	define(st, "+", func(args []value.Value) (value.Value, error) {
		if _, err := numericArgs(args); err != nil {
			return value.Nil, err
		}
		if anyFixed(args) {
			sum := 0.0
			for _, a := range args {
				sum += asFixed(a)
			}
			return value.Fixed(sum), nil
		}
		var sum int64
		for _, a := range args {
			sum = value.WrapFixnum(sum + a.I)
		}
		return value.Int(sum), nil
	})

	define(st, "-", func(args []value.Value) (value.Value, error) {
		if _, err := numericArgs(args); err != nil {
			return value.Nil, err
		}
		if len(args) == 0 {
			return value.Nil, exception.New(exception.ArityError, "- requires at least one argument")
		}
		if anyFixed(args) {
			if len(args) == 1 {
				return value.Fixed(-asFixed(args[0])), nil
			}
			acc := asFixed(args[0])
			for _, a := range args[1:] {
				acc -= asFixed(a)
			}
			return value.Fixed(acc), nil
		}
		if len(args) == 1 {
			return value.Int(-args[0].I), nil
		}
		acc := args[0].I
		for _, a := range args[1:] {
			acc = value.WrapFixnum(acc - a.I)
		}
		return value.Int(acc), nil
	})

	define(st, "*", func(args []value.Value) (value.Value, error) {
		if _, err := numericArgs(args); err != nil {
			return value.Nil, err
		}
		if anyFixed(args) {
			prod := 1.0
			for _, a := range args {
				prod *= asFixed(a)
			}
			return value.Fixed(prod), nil
		}
		var prod int64 = 1
		for _, a := range args {
			prod = value.WrapFixnum(prod * a.I)
		}
		return value.Int(prod), nil
	})

	define(st, "/", func(args []value.Value) (value.Value, error) {
		if _, err := numericArgs(args); err != nil {
			return value.Nil, err
		}
		if len(args) == 0 {
			return value.Nil, exception.New(exception.ArityError, "/ requires at least one argument")
		}
		divs := args
		first := 1.0
		if len(args) > 1 {
			first = asFixed(args[0])
			divs = args[1:]
		}
		acc := first
		for _, a := range divs {
			d := asFixed(a)
			if d == 0 {
				return value.Nil, exception.New(exception.DivisionByZero, "divide by zero")
			}
			acc /= d
		}
		return value.Fixed(acc), nil
	})

	define(st, "quot", func(args []value.Value) (value.Value, error) {
		if err := requireArity(args, 2); err != nil {
			return value.Nil, err
		}
		if args[1].I == 0 {
			return value.Nil, exception.New(exception.DivisionByZero, "divide by zero")
		}
		return value.Int(args[0].I / args[1].I), nil
	})

	define(st, "rem", func(args []value.Value) (value.Value, error) {
		if err := requireArity(args, 2); err != nil {
			return value.Nil, err
		}
		if args[1].I == 0 {
			return value.Nil, exception.New(exception.DivisionByZero, "divide by zero")
		}
		return value.Int(args[0].I % args[1].I), nil
	})

	define(st, "mod", func(args []value.Value) (value.Value, error) {
		if err := requireArity(args, 2); err != nil {
			return value.Nil, err
		}
		if args[1].I == 0 {
			return value.Nil, exception.New(exception.DivisionByZero, "divide by zero")
		}
		m := args[0].I % args[1].I
		if m != 0 && (m < 0) != (args[1].I < 0) {
			m += args[1].I
		}
		return value.Int(m), nil
	})

	define(st, "inc", func(args []value.Value) (value.Value, error) {
		if err := requireArity(args, 1); err != nil {
			return value.Nil, err
		}
		if args[0].IsFixed() {
			return value.Fixed(asFixed(args[0]) + 1), nil
		}
		return value.Int(args[0].I + 1), nil
	})

	define(st, "dec", func(args []value.Value) (value.Value, error) {
		if err := requireArity(args, 1); err != nil {
			return value.Nil, err
		}
		if args[0].IsFixed() {
			return value.Fixed(asFixed(args[0]) - 1), nil
		}
		return value.Int(args[0].I - 1), nil
	})
}

func requireArity(args []value.Value, n int) error {
	if len(args) != n {
		return exception.New(exception.ArityError, "expected %d argument(s), got %d", n, len(args))
	}
	return nil
}
