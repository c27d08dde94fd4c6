package eval

import (
	"tinyclj/pkg/reader"
	"tinyclj/pkg/value"
)

// EvalString implements the host API's `eval_string` (§6.1): parse
// exactly one form from source and evaluate it against st, returning
// either its value or the exception that escaped evaluation (or a
// reader error, e.g. an IncompleteInputError the host can use to ask
// for more input).
func (st *State) EvalString(source string) (value.Value, error) {
	r := reader.New(source)
	r.CurrentNS = st.CurrentNS
	form, ok, err := r.ReadForm(st.Symbols)
	if err != nil {
		return value.Nil, err
	}
	if !ok {
		return value.Nil, nil
	}
	return st.Eval(form, value.Nil)
}

// EvalMultiline implements `eval_multiline`: evaluate every complete
// form in source in order, returning true iff every one of them
// succeeded. A reader error on the trailing form (most commonly
// IncompleteInputError) stops evaluation of the forms that follow it,
// matching a REPL's "parse what's complete, evaluate it, surface the
// rest as still-pending" contract.
func (st *State) EvalMultiline(source string) bool {
	r := reader.New(source)
	r.CurrentNS = st.CurrentNS
	ok := true
	for {
		form, found, err := r.ReadForm(st.Symbols)
		if err != nil {
			return false
		}
		if !found {
			return ok
		}
		if _, err := st.Eval(form, value.Nil); err != nil {
			ok = false
		}
	}
}
