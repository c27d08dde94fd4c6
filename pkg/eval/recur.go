package eval

import (
	"tinyclj/pkg/collections"
	"tinyclj/pkg/exception"
	"tinyclj/pkg/value"
)

// evalLoop builds the initial binding frame exactly like `let`, then
// repeatedly evaluates body until it either returns normally or a
// `recur` in tail position targets this frame, in which case the
// bindings are replaced and the body runs again — without growing the
// Go call stack, matching the design's O(1) `recur` requirement.
func (st *State) evalLoop(args value.Value, env value.Value) value.Value {
	bindingsForm := collections.ListFirst(args)
	if !bindingsForm.IsVector() || len(bindingsForm.Obj.Items)%2 != 0 {
		exception.Raise(exception.New(exception.TypeError, "loop requires an even-length binding vector"))
	}
	items := bindingsForm.Obj.Items
	arity := len(items) / 2
	body := collections.ListToSlice(collections.ListRest(args))

	frame := collections.NewEnvFrame(env)
	syms := make([]value.Value, arity)
	for i := 0; i < arity; i++ {
		k, vForm := items[i*2], items[i*2+1]
		syms[i] = k
		v := st.evalTail(vForm, frame, false)
		frame = collections.EnvExtend(st.Heap, frame, k, v)
	}

	target := &recurTarget{arity: arity}
	st.recurStack = append(st.recurStack, target)
	defer st.popRecurTarget()

	for {
		result, signal := st.runBodyCatchingRecur(body, frame, target)
		if signal == nil {
			return result
		}
		for i, k := range syms {
			frame = collections.EnvExtend(st.Heap, frame, k, signal.values[i])
		}
	}
}

func (st *State) popRecurTarget() {
	st.recurStack = st.recurStack[:len(st.recurStack)-1]
}

// runBodyCatchingRecur evaluates body as an implicit `do` in tail
// position, catching exactly a recurSignal aimed at target. Any other
// panic (an exception Throw, or a recur aimed at a different target —
// which should not happen given well-nested push/pop) propagates.
func (st *State) runBodyCatchingRecur(body []value.Value, frame value.Value, target *recurTarget) (result value.Value, signal *recurSignal) {
	defer func() {
		if r := recover(); r != nil {
			sig, ok := r.(recurSignal)
			if !ok || sig.target != target {
				panic(r)
			}
			signal = &sig
		}
	}()
	result = st.evalDo(body, frame, true)
	return result, nil
}

func (st *State) evalRecur(args value.Value, env value.Value, tail bool) value.Value {
	if !tail {
		exception.Raise(exception.New(exception.RecurPositionError, "recur must occur in tail position"))
	}
	if len(st.recurStack) == 0 {
		exception.Raise(exception.New(exception.RecurPositionError, "recur called outside a loop or function body"))
	}
	target := st.recurStack[len(st.recurStack)-1]
	argForms := collections.ListToSlice(args)
	if len(argForms) != target.arity {
		exception.Raise(exception.New(exception.ArityError, "recur expects %d argument(s), got %d", target.arity, len(argForms)))
	}
	values := make([]value.Value, len(argForms))
	for i, f := range argForms {
		values[i] = st.evalTail(f, env, false)
	}
	panic(recurSignal{target: target, values: values})
}
