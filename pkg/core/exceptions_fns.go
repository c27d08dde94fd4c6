package core

import (
	"tinyclj/pkg/collections"
	"tinyclj/pkg/eval"
	"tinyclj/pkg/exception"
	"tinyclj/pkg/value"
)

func installExceptions(st *eval.State) {
	define(st, "ex-info", func(args []value.Value) (value.Value, error) {
		if len(args) < 1 || len(args) > 2 {
			return value.Nil, exception.New(exception.ArityError, "ex-info requires a message and optional data map")
		}
		if !args[0].IsString() {
			return value.Nil, exception.New(exception.TypeError, "ex-info requires a string message")
		}
		data := value.Nil
		if len(args) == 2 {
			data = args[1]
		}
		exc := &exception.Exception{ExcType: "user", Message: collections.StringValue(args[0]), Data: data}
		return exception.ToValue(exc), nil
	})

	define(st, "ex-data", func(args []value.Value) (value.Value, error) {
		if err := requireArity(args, 1); err != nil {
			return value.Nil, err
		}
		if !args[0].IsException() {
			return value.Nil, nil
		}
		return args[0].Obj.ExcData, nil
	})

	define(st, "ex-message", func(args []value.Value) (value.Value, error) {
		if err := requireArity(args, 1); err != nil {
			return value.Nil, err
		}
		if !args[0].IsException() {
			return value.Nil, nil
		}
		return collections.NewString(args[0].Obj.ExcMessage), nil
	})

	define(st, "ex-type", func(args []value.Value) (value.Value, error) {
		if err := requireArity(args, 1); err != nil {
			return value.Nil, err
		}
		if !args[0].IsException() {
			return value.Nil, nil
		}
		return st.Symbols.Intern("", ":"+args[0].Obj.ExcType), nil
	})

	// assert raises IllegalArgumentException on a falsy condition; an
	// optional second argument supplies the message (defaulting to the
	// generic one below), matching the teacher's `assert` special form
	// generalized into a core-library function.
	define(st, "assert", func(args []value.Value) (value.Value, error) {
		if len(args) < 1 || len(args) > 2 {
			return value.Nil, exception.New(exception.ArityError, "assert requires a condition and an optional message")
		}
		if args[0].Truthy() {
			return value.Nil, nil
		}
		msg := "assert failed"
		if len(args) == 2 && args[1].IsString() {
			msg = collections.StringValue(args[1])
		}
		return value.Nil, exception.New(exception.IllegalArgumentException, "%s", msg)
	})
}
