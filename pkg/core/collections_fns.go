package core

import (
	"tinyclj/pkg/collections"
	"tinyclj/pkg/eval"
	"tinyclj/pkg/exception"
	"tinyclj/pkg/value"
)

func installCollections(st *eval.State) {
	define(st, "count", func(args []value.Value) (value.Value, error) {
		if err := requireArity(args, 1); err != nil {
			return value.Nil, err
		}
		return value.Int(int64(collections.Count(args[0]))), nil
	})

	define(st, "first", func(args []value.Value) (value.Value, error) {
		if err := requireArity(args, 1); err != nil {
			return value.Nil, err
		}
		return collections.First(args[0]), nil
	})

	define(st, "rest", func(args []value.Value) (value.Value, error) {
		if err := requireArity(args, 1); err != nil {
			return value.Nil, err
		}
		return collections.Rest(args[0]), nil
	})

	define(st, "next", func(args []value.Value) (value.Value, error) {
		if err := requireArity(args, 1); err != nil {
			return value.Nil, err
		}
		r := collections.Rest(args[0])
		if collections.Count(r) == 0 {
			return value.Nil, nil
		}
		return r, nil
	})

	define(st, "seq", func(args []value.Value) (value.Value, error) {
		if err := requireArity(args, 1); err != nil {
			return value.Nil, err
		}
		return collections.Seq(args[0]), nil
	})

	define(st, "cons", func(args []value.Value) (value.Value, error) {
		if err := requireArity(args, 2); err != nil {
			return value.Nil, err
		}
		return collections.Cons(args[0], collections.Seq(args[1])), nil
	})

	define(st, "conj", func(args []value.Value) (value.Value, error) {
		if len(args) == 0 {
			return value.Nil, exception.New(exception.ArityError, "conj requires at least one argument")
		}
		coll := args[0]
		switch {
		case coll.IsNil(), coll.IsList():
			for _, item := range args[1:] {
				coll = collections.Cons(item, coll)
			}
			return coll, nil
		case coll.IsVector():
			for _, item := range args[1:] {
				coll = collections.VectorConj(st.Heap, coll, item)
			}
			return coll, nil
		default:
			return value.Nil, exception.New(exception.TypeError, "conj: unsupported collection type")
		}
	})

	define(st, "assoc", func(args []value.Value) (value.Value, error) {
		if len(args) < 3 || len(args)%2 != 1 {
			return value.Nil, exception.New(exception.ArityError, "assoc requires a collection and key/value pairs")
		}
		coll := args[0]
		for i := 1; i < len(args); i += 2 {
			k, v := args[i], args[i+1]
			switch {
			case coll.IsMap():
				coll = collections.MapAssoc(st.Heap, coll, k, v)
			case coll.IsVector():
				if !k.IsFixnum() {
					return value.Nil, exception.New(exception.TypeError, "assoc on a vector requires an integer index")
				}
				var err error
				coll, err = collections.VectorAssoc(st.Heap, coll, int(k.I), v)
				if err != nil {
					return value.Nil, err
				}
			default:
				return value.Nil, exception.New(exception.TypeError, "assoc: unsupported collection type")
			}
		}
		return coll, nil
	})

	define(st, "dissoc", func(args []value.Value) (value.Value, error) {
		if len(args) < 1 {
			return value.Nil, exception.New(exception.ArityError, "dissoc requires a map")
		}
		coll := args[0]
		if !coll.IsMap() {
			return value.Nil, exception.New(exception.TypeError, "dissoc requires a map")
		}
		for _, k := range args[1:] {
			coll = collections.MapDissoc(st.Heap, coll, k)
		}
		return coll, nil
	})

	define(st, "get", func(args []value.Value) (value.Value, error) {
		if len(args) < 2 || len(args) > 3 {
			return value.Nil, exception.New(exception.ArityError, "get requires a collection and a key, with optional default")
		}
		coll, k := args[0], args[1]
		def := value.Nil
		if len(args) == 3 {
			def = args[2]
		}
		if coll.IsMap() {
			if v, ok := collections.MapGet(coll, k); ok {
				return v, nil
			}
			return def, nil
		}
		if coll.IsVector() && k.IsFixnum() {
			idx := int(k.I)
			if idx < 0 || idx >= collections.VectorCount(coll) {
				return def, nil
			}
			v, _ := collections.VectorGet(coll, idx)
			return v, nil
		}
		return def, nil
	})

	define(st, "nth", func(args []value.Value) (value.Value, error) {
		if len(args) < 2 || len(args) > 3 {
			return value.Nil, exception.New(exception.ArityError, "nth requires a collection and an index")
		}
		coll, k := args[0], args[1]
		if !k.IsFixnum() {
			return value.Nil, exception.New(exception.TypeError, "nth requires an integer index")
		}
		idx := int(k.I)
		if coll.IsVector() {
			v, err := collections.VectorGet(coll, idx)
			if err != nil {
				if len(args) == 3 {
					return args[2], nil
				}
				return value.Nil, err
			}
			return v, nil
		}
		items := collections.SeqToSlice(coll)
		if idx < 0 || idx >= len(items) {
			if len(args) == 3 {
				return args[2], nil
			}
			return value.Nil, exception.New(exception.IndexOutOfBoundsException, "index %d out of bounds", idx)
		}
		return items[idx], nil
	})

	define(st, "pop", func(args []value.Value) (value.Value, error) {
		if err := requireArity(args, 1); err != nil {
			return value.Nil, err
		}
		if !args[0].IsVector() {
			return value.Nil, exception.New(exception.TypeError, "pop requires a vector")
		}
		return collections.VectorPop(st.Heap, args[0])
	})

	define(st, "peek", func(args []value.Value) (value.Value, error) {
		if err := requireArity(args, 1); err != nil {
			return value.Nil, err
		}
		if !args[0].IsVector() {
			return value.Nil, exception.New(exception.TypeError, "peek requires a vector")
		}
		n := collections.VectorCount(args[0])
		if n == 0 {
			return value.Nil, nil
		}
		v, _ := collections.VectorGet(args[0], n-1)
		return v, nil
	})

	define(st, "vector", func(args []value.Value) (value.Value, error) {
		return collections.NewVector(args), nil
	})

	define(st, "list", func(args []value.Value) (value.Value, error) {
		return collections.ListFromSlice(args), nil
	})

	define(st, "hash-map", func(args []value.Value) (value.Value, error) {
		if len(args)%2 != 0 {
			return value.Nil, exception.New(exception.ArityError, "hash-map requires an even number of arguments")
		}
		pairs := make([]value.MapEntry, 0, len(args)/2)
		for i := 0; i < len(args); i += 2 {
			pairs = append(pairs, value.MapEntry{Key: args[i], Val: args[i+1]})
		}
		return collections.NewMap(pairs), nil
	})

	define(st, "transient", func(args []value.Value) (value.Value, error) {
		if err := requireArity(args, 1); err != nil {
			return value.Nil, err
		}
		switch {
		case args[0].IsVector():
			return collections.TransientVector(args[0]), nil
		case args[0].IsMap():
			return collections.TransientMap(args[0]), nil
		default:
			return value.Nil, exception.New(exception.TypeError, "transient requires a vector or map")
		}
	})

	define(st, "persistent!", func(args []value.Value) (value.Value, error) {
		if err := requireArity(args, 1); err != nil {
			return value.Nil, err
		}
		switch {
		case args[0].IsTransientVector():
			return collections.PersistentVector(args[0])
		case args[0].IsTransientMap():
			return collections.PersistentMap(args[0])
		default:
			return value.Nil, exception.New(exception.TypeError, "persistent! requires a transient")
		}
	})

	define(st, "conj!", func(args []value.Value) (value.Value, error) {
		if len(args) < 1 {
			return value.Nil, exception.New(exception.ArityError, "conj! requires a transient")
		}
		t := args[0]
		if !t.IsTransientVector() {
			return value.Nil, exception.New(exception.TypeError, "conj! requires a transient vector")
		}
		var err error
		for _, item := range args[1:] {
			t, err = collections.ConjBang(t, item)
			if err != nil {
				return value.Nil, err
			}
		}
		return t, nil
	})

	define(st, "assoc!", func(args []value.Value) (value.Value, error) {
		if len(args) < 3 || len(args)%2 != 1 {
			return value.Nil, exception.New(exception.ArityError, "assoc! requires a transient and key/value pairs")
		}
		t := args[0]
		for i := 1; i < len(args); i += 2 {
			var err error
			switch {
			case t.IsTransientVector():
				if !args[i].IsFixnum() {
					return value.Nil, exception.New(exception.TypeError, "assoc! on a transient vector requires an integer index")
				}
				t, err = collections.AssocBangVector(t, int(args[i].I), args[i+1])
			case t.IsTransientMap():
				t, err = collections.AssocBangMap(t, args[i], args[i+1])
			default:
				return value.Nil, exception.New(exception.TypeError, "assoc! requires a transient")
			}
			if err != nil {
				return value.Nil, err
			}
		}
		return t, nil
	})
}
