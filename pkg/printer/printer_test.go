package printer

import (
	"testing"

	"tinyclj/pkg/value"
)

func TestPrintScalars(t *testing.T) {
	tests := []struct {
		v    value.Value
		want string
	}{
		{value.Nil, "nil"},
		{value.True, "true"},
		{value.False, "false"},
		{value.Int(42), "42"},
		{value.Int(-7), "-7"},
		{value.Char('a'), "\\a"},
		{value.Char(' '), "\\space"},
		{value.Char('\n'), "\\newline"},
	}
	for _, tt := range tests {
		if got := Print(tt.v); got != tt.want {
			t.Errorf("Print(%v) = %q, want %q", tt.v, got, tt.want)
		}
	}
}

func TestPrintFixedFourDecimals(t *testing.T) {
	got := Print(value.Fixed(3.5))
	if got != "3.5000" {
		t.Errorf("Print(Fixed(3.5)) = %q, want 3.5000", got)
	}
}

func TestPrintString(t *testing.T) {
	s := value.Value{Tag: value.TagHeap, Obj: &value.Heap{Kind: value.KindString, Bytes: []byte("a\"b\nc")}}
	got := Print(s)
	want := `"a\"b\nc"`
	if got != want {
		t.Errorf("Print(string) = %q, want %q", got, want)
	}
}

func TestPrintVector(t *testing.T) {
	v := value.Value{Tag: value.TagHeap, Obj: &value.Heap{Kind: value.KindVector, Items: []value.Value{value.Int(1), value.Int(2)}}}
	if got := Print(v); got != "[1 2]" {
		t.Errorf("Print(vector) = %q, want [1 2]", got)
	}
}

func TestPrintList(t *testing.T) {
	l := value.Value{Tag: value.TagHeap, Obj: &value.Heap{
		Kind: value.KindList, Car: value.Int(1),
		Cdr: value.Value{Tag: value.TagHeap, Obj: &value.Heap{Kind: value.KindList, Car: value.Int(2), Cdr: value.Nil}},
	}}
	if got := Print(l); got != "(1 2)" {
		t.Errorf("Print(list) = %q, want (1 2)", got)
	}
}

func TestPrintSymbolQualified(t *testing.T) {
	s := value.Value{Tag: value.TagHeap, Obj: &value.Heap{Kind: value.KindSymbol, NS: "core", Name: "foo"}}
	if got := Print(s); got != "core/foo" {
		t.Errorf("Print(qualified symbol) = %q, want core/foo", got)
	}
}

func TestPrintByteArrayPlaceholder(t *testing.T) {
	b := value.Value{Tag: value.TagHeap, Obj: &value.Heap{Kind: value.KindByteArray, Bytes: []byte{1, 2, 3}}}
	if got := Print(b); got != "#bytes[3]" {
		t.Errorf("Print(byte array) = %q, want #bytes[3]", got)
	}
}
