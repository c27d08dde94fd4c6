package symbol

import (
	"testing"

	"tinyclj/pkg/value"
)

func TestInternReturnsSameObjectForSameKey(t *testing.T) {
	tbl := NewTable()
	a := tbl.Intern("", "foo")
	b := tbl.Intern("", "foo")
	if !value.SameObject(a, b) {
		t.Error("interning the same (ns, name) twice should return the identical object")
	}
}

func TestInternDistinguishesNamespaces(t *testing.T) {
	tbl := NewTable()
	a := tbl.Intern("core", "foo")
	b := tbl.Intern("user", "foo")
	if value.SameObject(a, b) {
		t.Error("the same name in different namespaces should intern to distinct symbols")
	}
}

func TestInternedSymbolsAreSingletons(t *testing.T) {
	tbl := NewTable()
	s := tbl.Intern("", "x")
	if !s.Obj.Singleton {
		t.Error("interned symbols must be marked Singleton so stray release calls are safe")
	}
}

func TestInternQualified(t *testing.T) {
	tbl := NewTable()
	v := tbl.InternQualified("ns/name")
	if v.Obj.NS != "ns" || v.Obj.Name != "name" {
		t.Errorf("got ns=%q name=%q, want ns/name", v.Obj.NS, v.Obj.Name)
	}
	bare := tbl.InternQualified("bare")
	if bare.Obj.NS != "" || bare.Obj.Name != "bare" {
		t.Errorf("bare symbol should have empty ns, got ns=%q", bare.Obj.NS)
	}
}

func TestBootstrapSymbolsPreinterned(t *testing.T) {
	tbl := NewTable()
	if !tbl.Is(tbl.Intern("", "if"), "if") {
		t.Error("'if' should be recognized as the bootstrap 'if' symbol")
	}
	if !tbl.Is(tbl.Intern("", "cond"), "cond") {
		t.Error("'cond' should be a preinterned bootstrap symbol")
	}
}

func TestQualifiedName(t *testing.T) {
	tbl := NewTable()
	if got := QualifiedName(tbl.Intern("core", "foo")); got != "core/foo" {
		t.Errorf("QualifiedName = %q, want core/foo", got)
	}
	if got := QualifiedName(tbl.Intern("", "foo")); got != "foo" {
		t.Errorf("QualifiedName = %q, want foo", got)
	}
}
