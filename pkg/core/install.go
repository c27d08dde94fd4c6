// Package core implements tiny-clj's built-in function library: the
// native (Go-implemented) primitives every other form is built from,
// plus a small self-hosted layer written in tiny-clj itself and loaded
// through the same reader/evaluator as user code, matching the host
// API's `load_core` contract (§6.1): each bootstrap form is evaluated
// independently, and a failing form is caught and reported rather than
// aborting the rest of the load.
package core

import (
	"fmt"

	"tinyclj/pkg/eval"
	"tinyclj/pkg/reader"
	"tinyclj/pkg/value"
)

func define(st *eval.State, name string, fn value.NativeFn) {
	st.Namespaces.GetOrCreate("core").Define(name, value.Value{Tag: value.TagHeap, Obj: &value.Heap{
		// Singleton: a core native function lives for the process
		// lifetime of the namespace it's defined in and is never
		// released, so it is never retained either.
		Kind: value.KindFnNative, Native: fn, NativeName: name, Singleton: true,
	}})
}

// Install registers every native primitive into the "core" namespace.
// It does not touch CurrentNS, so it is safe to call before the host
// picks a working namespace.
func Install(st *eval.State) {
	installArith(st)
	installCompare(st)
	installPredicates(st)
	installCollections(st)
	installByteArray(st)
	installStrings(st)
	installExceptions(st)
	installHigherOrder(st)
}

// LoadCore parses and evaluates every form in the self-hosted bootstrap
// source, in "core", catching and reporting per-form evaluation failures
// rather than aborting the remaining forms — mirroring the ambiguity call
// made in §9's design notes about clojure.core loading. A reader error
// is reported and ends the load.
func LoadCore(st *eval.State) []error {
	prevNS := st.CurrentNS
	st.CurrentNS = "core"
	defer func() { st.CurrentNS = prevNS }()

	r := reader.New(bootstrapSource)
	var errs []error
	for {
		form, ok, err := r.ReadForm(st.Symbols)
		if err != nil {
			errs = append(errs, fmt.Errorf("core bootstrap: %w", err))
			break
		}
		if !ok {
			break
		}
		if _, err := st.Eval(form, value.Nil); err != nil {
			errs = append(errs, fmt.Errorf("core bootstrap: %w", err))
		}
	}
	return errs
}
