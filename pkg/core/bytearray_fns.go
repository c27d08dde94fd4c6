package core

import (
	"tinyclj/pkg/collections"
	"tinyclj/pkg/eval"
	"tinyclj/pkg/exception"
	"tinyclj/pkg/value"
)

// installByteArray registers the mutable byte-array primitives §3.3
// names: fixed-length, bounds-checked access, bulk copy, and slice
// (always a fresh copy).
func installByteArray(st *eval.State) {
	define(st, "byte-array", func(args []value.Value) (value.Value, error) {
		switch len(args) {
		case 1:
			if !args[0].IsFixnum() {
				return value.Nil, exception.New(exception.TypeError, "byte-array requires an integer length")
			}
			n := args[0].I
			if n < 0 {
				return value.Nil, exception.New(exception.IllegalArgumentException, "byte-array length must be non-negative")
			}
			return collections.NewByteArray(make([]byte, n)), nil
		default:
			buf := make([]byte, len(args))
			for i, a := range args {
				if !a.IsFixnum() {
					return value.Nil, exception.New(exception.TypeError, "byte-array elements must be integers")
				}
				buf[i] = byte(a.I)
			}
			return collections.NewByteArray(buf), nil
		}
	})

	define(st, "aget", func(args []value.Value) (value.Value, error) {
		if err := requireArity(args, 2); err != nil {
			return value.Nil, err
		}
		if !args[0].IsByteArray() || !args[1].IsFixnum() {
			return value.Nil, exception.New(exception.TypeError, "aget requires a byte array and an integer index")
		}
		v, ok := collections.ByteArrayGet(args[0], int(args[1].I))
		if !ok {
			return value.Nil, exception.New(exception.IndexOutOfBoundsException, "index %d out of bounds", args[1].I)
		}
		return v, nil
	})

	define(st, "aset!", func(args []value.Value) (value.Value, error) {
		if err := requireArity(args, 3); err != nil {
			return value.Nil, err
		}
		if !args[0].IsByteArray() || !args[1].IsFixnum() || !args[2].IsFixnum() {
			return value.Nil, exception.New(exception.TypeError, "aset! requires a byte array, an integer index, and an integer value")
		}
		if !collections.ByteArraySet(args[0], int(args[1].I), byte(args[2].I)) {
			return value.Nil, exception.New(exception.IndexOutOfBoundsException, "index %d out of bounds", args[1].I)
		}
		return args[2], nil
	})

	define(st, "alength", func(args []value.Value) (value.Value, error) {
		if err := requireArity(args, 1); err != nil {
			return value.Nil, err
		}
		if !args[0].IsByteArray() {
			return value.Nil, exception.New(exception.TypeError, "alength requires a byte array")
		}
		return value.Int(int64(collections.ByteArrayLength(args[0]))), nil
	})

	define(st, "aslice", func(args []value.Value) (value.Value, error) {
		if err := requireArity(args, 3); err != nil {
			return value.Nil, err
		}
		if !args[0].IsByteArray() || !args[1].IsFixnum() || !args[2].IsFixnum() {
			return value.Nil, exception.New(exception.TypeError, "aslice requires a byte array and two integer bounds")
		}
		out, ok := collections.ByteArraySlice(args[0], int(args[1].I), int(args[2].I))
		if !ok {
			return value.Nil, exception.New(exception.IndexOutOfBoundsException, "slice [%d %d) out of bounds", args[1].I, args[2].I)
		}
		return out, nil
	})

	define(st, "acopy!", func(args []value.Value) (value.Value, error) {
		if err := requireArity(args, 5); err != nil {
			return value.Nil, err
		}
		dst, dstStart, src, srcStart, n := args[0], args[1], args[2], args[3], args[4]
		if !dst.IsByteArray() || !src.IsByteArray() || !dstStart.IsFixnum() || !srcStart.IsFixnum() || !n.IsFixnum() {
			return value.Nil, exception.New(exception.TypeError, "acopy! requires two byte arrays and three integers")
		}
		if !collections.ByteArrayCopy(dst, int(dstStart.I), src, int(srcStart.I), int(n.I)) {
			return value.Nil, exception.New(exception.IndexOutOfBoundsException, "acopy! range out of bounds")
		}
		return dst, nil
	})
}
