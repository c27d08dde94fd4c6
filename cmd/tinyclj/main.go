// Command tinyclj is the reference REPL/batch driver for the tiny-clj
// core: CLI flag parsing, file/expr evaluation, and a line-at-a-time
// REPL loop. None of this is part of the interpreter core itself (see
// pkg/eval, pkg/reader, pkg/core); it is the thin collaborator layer
// the design's §6.2 describes, built with the standard library the way
// the teacher's own CLI driver was.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"

	"tinyclj/pkg/core"
	"tinyclj/pkg/eval"
	"tinyclj/pkg/exception"
	"tinyclj/pkg/namespace"
	"tinyclj/pkg/printer"
	"tinyclj/pkg/reader"
	"tinyclj/pkg/symbol"
	"tinyclj/pkg/value"
)

type exprList []string

func (e *exprList) String() string { return fmt.Sprint([]string(*e)) }
func (e *exprList) Set(s string) error {
	*e = append(*e, s)
	return nil
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin *os.File, stdout, stderr *os.File) int {
	fs := flag.NewFlagSet("tinyclj", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var ns string
	var exprs exprList
	var file string
	var noCore bool
	var repl bool

	fs.StringVar(&ns, "n", "", "starting namespace (default \"user\")")
	fs.Var(&exprs, "e", "evaluate EXPR (may be given multiple times)")
	fs.StringVar(&file, "f", "", "evaluate FILE")
	fs.BoolVar(&noCore, "no-core", false, "skip loading the core library")
	fs.BoolVar(&repl, "repl", false, "enter an interactive REPL after processing -e/-f")

	if err := fs.Parse(args); err != nil {
		return 2
	}

	syms := symbol.NewTable()
	registry := namespace.NewRegistry()
	st := eval.NewState(syms, registry, ns)

	if !noCore {
		core.Install(st)
		for _, err := range core.LoadCore(st) {
			fmt.Fprintln(stderr, err)
		}
	}

	failed := false

	for _, src := range exprs {
		if !evalSource(st, src, stdout, stderr) {
			failed = true
		}
	}

	if file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			fmt.Fprintln(stderr, err)
			failed = true
		} else if !evalSource(st, string(data), stdout, stderr) {
			failed = true
		}
	}

	if repl {
		runREPL(st, stdin, stdout, stderr)
		return 0
	}

	if failed {
		return 1
	}
	return 0
}

// evalSource parses and evaluates every complete form in src, printing
// each result, and reports whether all forms succeeded.
func evalSource(st *eval.State, src string, stdout, stderr *os.File) bool {
	r := reader.New(src)
	r.CurrentNS = st.CurrentNS
	ok := true
	for {
		form, found, err := r.ReadForm(st.Symbols)
		if err != nil {
			fmt.Fprintln(stderr, err)
			return false
		}
		if !found {
			return ok
		}
		result, err := st.Eval(form, value.Nil)
		if err != nil {
			fmt.Fprintln(stderr, err)
			ok = false
			continue
		}
		fmt.Fprintln(stdout, printer.Print(result))
	}
}

func runREPL(st *eval.State, stdin, stdout, stderr *os.File) {
	scanner := bufio.NewScanner(stdin)
	var pending string
	for {
		fmt.Fprintf(stdout, "%s=> ", st.CurrentNS)
		if !scanner.Scan() {
			return
		}
		pending += scanner.Text() + "\n"

		r := reader.New(pending)
		r.CurrentNS = st.CurrentNS
		form, found, err := r.ReadForm(st.Symbols)
		if err != nil {
			// IncompleteInputError (an unclosed list/vector/map/string)
			// means the form may still be completed on the next line;
			// any other reader error is hard and discards the buffer.
			if exc, ok := err.(*exception.Exception); ok && exc.ExcType == exception.IncompleteInputError {
				continue
			}
			fmt.Fprintln(stderr, err)
			pending = ""
			continue
		}
		if !found {
			continue
		}
		result, err := st.Eval(form, value.Nil)
		pending = ""
		if err != nil {
			fmt.Fprintln(stderr, err)
			continue
		}
		fmt.Fprintln(stdout, printer.Print(result))
	}
}
