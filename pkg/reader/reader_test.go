package reader

import (
	"testing"

	"tinyclj/pkg/exception"
	"tinyclj/pkg/symbol"
	"tinyclj/pkg/value"
)

func readOne(t *testing.T, src string) value.Value {
	t.Helper()
	r := New(src)
	syms := symbol.NewTable()
	v, ok, err := r.ReadForm(syms)
	if err != nil {
		t.Fatalf("ReadForm(%q) error: %v", src, err)
	}
	if !ok {
		t.Fatalf("ReadForm(%q) found no form", src)
	}
	return v
}

func TestReadFixnum(t *testing.T) {
	v := readOne(t, "42")
	if !v.IsFixnum() || v.I != 42 {
		t.Errorf("got %v, want fixnum 42", v)
	}
	v = readOne(t, "-7")
	if !v.IsFixnum() || v.I != -7 {
		t.Errorf("got %v, want fixnum -7", v)
	}
}

func TestReadFixedPoint(t *testing.T) {
	v := readOne(t, "3.5")
	if !v.IsFixed() {
		t.Fatalf("got %v, want a fixed-point value", v)
	}
	if v.Float64() != 3.5 {
		t.Errorf("Float64() = %v, want 3.5", v.Float64())
	}
}

func TestReadString(t *testing.T) {
	v := readOne(t, `"hello\nworld"`)
	if !v.IsString() {
		t.Fatalf("got %v, want a string", v)
	}
	if string(v.Obj.Bytes) != "hello\nworld" {
		t.Errorf("got %q", v.Obj.Bytes)
	}
}

func TestReadVector(t *testing.T) {
	v := readOne(t, "[1 2 3]")
	if !v.IsVector() || len(v.Obj.Items) != 3 {
		t.Fatalf("got %v, want a 3-element vector", v)
	}
}

func TestReadMap(t *testing.T) {
	v := readOne(t, `{:a 1 :b 2}`)
	if !v.IsMap() || len(v.Obj.Pairs) != 2 {
		t.Fatalf("got %v, want a 2-pair map", v)
	}
}

func TestReadMapOddFormsIsReaderError(t *testing.T) {
	r := New("{:a 1 :b}")
	_, _, err := r.ReadForm(symbol.NewTable())
	if err == nil {
		t.Fatal("an odd number of map forms should be a reader error")
	}
}

func TestReadList(t *testing.T) {
	v := readOne(t, "(+ 1 2)")
	if !v.IsList() {
		t.Fatalf("got %v, want a list", v)
	}
}

func TestReadQuoteExpandsToQuoteForm(t *testing.T) {
	v := readOne(t, "'x")
	if !v.IsList() {
		t.Fatalf("'x should read as a list, got %v", v)
	}
	if v.Obj.Car.Obj.Name != "quote" {
		t.Errorf("head should be 'quote', got %v", v.Obj.Car)
	}
}

func TestReadKeyword(t *testing.T) {
	v := readOne(t, ":foo")
	if !v.IsKeyword() || v.Obj.Name != ":foo" {
		t.Errorf("got %v, want keyword :foo", v)
	}
}

func TestReadAutoResolvedKeywordUsesCurrentNS(t *testing.T) {
	r := New("::foo")
	r.CurrentNS = "user"
	v, _, err := r.ReadForm(symbol.NewTable())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.Obj.Name != ":user/foo" {
		t.Errorf("got %v, want :user/foo", v.Obj.Name)
	}
}

func TestUnclosedListIsIncompleteInputError(t *testing.T) {
	r := New("(+ 1 2")
	_, _, err := r.ReadForm(symbol.NewTable())
	if err == nil {
		t.Fatal("an unclosed list should error")
	}
	exc, ok := err.(*exception.Exception)
	if !ok || exc.ExcType != exception.IncompleteInputError {
		t.Fatalf("expected IncompleteInputError, got %v", err)
	}
}

func TestUnexpectedCloseParenIsHardReaderError(t *testing.T) {
	r := New(")")
	_, _, err := r.ReadForm(symbol.NewTable())
	exc, ok := err.(*exception.Exception)
	if !ok || exc.ExcType != exception.ReaderError {
		t.Fatalf("expected a hard ReaderError, got %v", err)
	}
}

func TestReadFormOnBlankInputReturnsNotFound(t *testing.T) {
	r := New("   ; just a comment\n")
	_, ok, err := r.ReadForm(symbol.NewTable())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Error("blank/comment-only input should report ok=false")
	}
}

func TestReadAllMultipleForms(t *testing.T) {
	r := New("1 2 3")
	out, err := r.ReadAll(symbol.NewTable())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 3 {
		t.Fatalf("expected 3 forms, got %d", len(out))
	}
}

func TestMetadataIsParsedAndDiscarded(t *testing.T) {
	v := readOne(t, "^{:doc \"x\"} foo")
	if !v.IsSymbol() || v.Obj.Name != "foo" {
		t.Errorf("metadata-annotated form should read as the underlying form, got %v", v)
	}
}
