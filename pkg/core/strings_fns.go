package core

import (
	"strings"

	"tinyclj/pkg/collections"
	"tinyclj/pkg/eval"
	"tinyclj/pkg/printer"
	"tinyclj/pkg/value"
)

func installStrings(st *eval.State) {
	define(st, "str", func(args []value.Value) (value.Value, error) {
		var sb strings.Builder
		for _, a := range args {
			if a.IsString() {
				sb.WriteString(collections.StringValue(a))
				continue
			}
			if a.IsNil() {
				continue
			}
			sb.WriteString(printer.Print(a))
		}
		return collections.NewString(sb.String()), nil
	})

	define(st, "pr-str", func(args []value.Value) (value.Value, error) {
		parts := make([]string, len(args))
		for i, a := range args {
			parts[i] = printer.Print(a)
		}
		return collections.NewString(strings.Join(parts, " ")), nil
	})

	define(st, "print-str", func(args []value.Value) (value.Value, error) {
		parts := make([]string, len(args))
		for i, a := range args {
			if a.IsString() {
				parts[i] = collections.StringValue(a)
			} else {
				parts[i] = printer.Print(a)
			}
		}
		return collections.NewString(strings.Join(parts, " ")), nil
	})
}
