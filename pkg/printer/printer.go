// Package printer renders tiny-clj values as readable text: for every
// value that package reader can also read, Print produces a string that
// reads back to a structurally equal value (§6.4's round-trip
// requirement). Functions and exceptions are printed for diagnostics
// only; they are not expected to round-trip.
package printer

import (
	"fmt"
	"strconv"
	"strings"

	"tinyclj/pkg/value"
)

// Print renders v in its readable textual form.
func Print(v value.Value) string {
	var sb strings.Builder
	write(&sb, v)
	return sb.String()
}

func write(sb *strings.Builder, v value.Value) {
	switch {
	case v.IsNil():
		sb.WriteString("nil")
	case v.IsTrue():
		sb.WriteString("true")
	case v.IsFalse():
		sb.WriteString("false")
	case v.IsFixnum():
		sb.WriteString(strconv.FormatInt(v.I, 10))
	case v.IsFixed():
		writeFixed(sb, v)
	case v.IsChar():
		writeChar(sb, rune(v.I))
	case v.IsString():
		writeString(sb, string(v.Obj.Bytes))
	case v.IsSymbol():
		writeSymbol(sb, v)
	case v.IsVector(), v.IsTransientVector():
		writeSeqLike(sb, "[", "]", v.Obj.Items)
	case v.IsMap(), v.IsTransientMap():
		writeMap(sb, v)
	case v.IsList():
		writeList(sb, v)
	case v.IsFnNative():
		fmt.Fprintf(sb, "#<native-fn %s>", v.Obj.NativeName)
	case v.IsFnInterp():
		name := v.Obj.FnName
		if name == "" {
			name = "anonymous"
		}
		fmt.Fprintf(sb, "#<fn %s>", name)
	case v.IsException():
		fmt.Fprintf(sb, "#<%s: %s>", v.Obj.ExcType, v.Obj.ExcMessage)
	case v.IsByteArray():
		fmt.Fprintf(sb, "#bytes[%d]", len(v.Obj.Bytes))
	default:
		sb.WriteString("#<unknown>")
	}
}

// writeFixed prints the Q16.13 value to four fractional digits, per
// §6.4's default precision.
func writeFixed(sb *strings.Builder, v value.Value) {
	f := v.Float64()
	sb.WriteString(strconv.FormatFloat(f, 'f', 4, 64))
}

func writeChar(sb *strings.Builder, r rune) {
	switch r {
	case '\n':
		sb.WriteString("\\newline")
	case ' ':
		sb.WriteString("\\space")
	case '\t':
		sb.WriteString("\\tab")
	case '\r':
		sb.WriteString("\\return")
	default:
		sb.WriteByte('\\')
		sb.WriteRune(r)
	}
}

func writeString(sb *strings.Builder, s string) {
	sb.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			sb.WriteString(`\"`)
		case '\\':
			sb.WriteString(`\\`)
		case '\n':
			sb.WriteString(`\n`)
		case '\t':
			sb.WriteString(`\t`)
		case '\r':
			sb.WriteString(`\r`)
		default:
			sb.WriteRune(r)
		}
	}
	sb.WriteByte('"')
}

func writeSymbol(sb *strings.Builder, v value.Value) {
	if v.Obj.NS != "" {
		sb.WriteString(v.Obj.NS)
		sb.WriteByte('/')
	}
	sb.WriteString(v.Obj.Name)
}

func writeSeqLike(sb *strings.Builder, open, close string, items []value.Value) {
	sb.WriteString(open)
	for i, it := range items {
		if i > 0 {
			sb.WriteByte(' ')
		}
		write(sb, it)
	}
	sb.WriteString(close)
}

func writeMap(sb *strings.Builder, v value.Value) {
	sb.WriteByte('{')
	for i, p := range v.Obj.Pairs {
		if i > 0 {
			sb.WriteByte(' ')
		}
		write(sb, p.Key)
		sb.WriteByte(' ')
		write(sb, p.Val)
	}
	sb.WriteByte('}')
}

func writeList(sb *strings.Builder, v value.Value) {
	sb.WriteByte('(')
	first := true
	for cur := v; cur.IsList(); cur = cur.Obj.Cdr {
		if !first {
			sb.WriteByte(' ')
		}
		first = false
		write(sb, cur.Obj.Car)
	}
	sb.WriteByte(')')
}
