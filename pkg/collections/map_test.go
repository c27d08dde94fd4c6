package collections

import (
	"testing"

	"tinyclj/pkg/memory"
	"tinyclj/pkg/value"
)

func sym(name string) value.Value {
	return value.Value{Tag: value.TagHeap, Obj: &value.Heap{Kind: value.KindSymbol, Name: name, Singleton: true}}
}

func TestNewMapEmptyIsSingleton(t *testing.T) {
	m := NewMap(nil)
	if !value.SameObject(m, EmptyMap) {
		t.Error("NewMap(nil) should return the EmptyMap singleton")
	}
}

func TestNewMapLastWriteWins(t *testing.T) {
	k := sym("k")
	m := NewMap([]value.MapEntry{
		{Key: k, Val: value.Int(1)},
		{Key: k, Val: value.Int(2)},
	})
	if MapCount(m) != 1 {
		t.Fatalf("duplicate keys should be deduped, count = %d", MapCount(m))
	}
	v, _ := MapGet(m, k)
	if v.I != 2 {
		t.Errorf("last write should win, got %d", v.I)
	}
}

func TestMapAssocMutatesWhenUniquelyOwned(t *testing.T) {
	h := memory.NewHeap()
	m := NewMap([]value.MapEntry{{Key: sym("a"), Val: value.Int(1)}})
	before := m.Obj
	out := MapAssoc(h, m, sym("b"), value.Int(2))
	if out.Obj != before {
		t.Error("a uniquely owned map should be mutated in place")
	}
}

func TestMapAssocCopiesWhenShared(t *testing.T) {
	h := memory.NewHeap()
	m := NewMap([]value.MapEntry{{Key: sym("a"), Val: value.Int(1)}})
	h.Retain(m)
	out := MapAssoc(h, m, sym("b"), value.Int(2))
	if out.Obj == m.Obj {
		t.Error("a shared map must not be mutated in place")
	}
	if MapCount(m) != 1 {
		t.Error("original map must be unaffected")
	}
}

func TestMapAssocOnEmptySingletonAlwaysCopies(t *testing.T) {
	h := memory.NewHeap()
	out := MapAssoc(h, EmptyMap, sym("a"), value.Int(1))
	if out.Obj == EmptyMap.Obj {
		t.Error("assoc on the empty singleton must never mutate it in place")
	}
	if MapCount(EmptyMap) != 0 {
		t.Error("the empty singleton must remain empty")
	}
}

func TestMapDissocRemovesKey(t *testing.T) {
	h := memory.NewHeap()
	m := NewMap([]value.MapEntry{{Key: sym("a"), Val: value.Int(1)}, {Key: sym("b"), Val: value.Int(2)}})
	out := MapDissoc(h, m, sym("a"))
	if MapCount(out) != 1 {
		t.Fatalf("expected 1 key remaining, got %d", MapCount(out))
	}
	if _, ok := MapGet(out, sym("a")); ok {
		t.Error("dissoc'd key should no longer be present")
	}
}

func TestMapDissocMissingKeyIsNoop(t *testing.T) {
	h := memory.NewHeap()
	m := NewMap([]value.MapEntry{{Key: sym("a"), Val: value.Int(1)}})
	out := MapDissoc(h, m, sym("z"))
	if MapCount(out) != 1 {
		t.Error("dissoc of a missing key should not change the map")
	}
}

func TestTransientMapRoundTrip(t *testing.T) {
	m := NewMap([]value.MapEntry{{Key: sym("a"), Val: value.Int(1)}})
	tm := TransientMap(m)
	tm, err := AssocBangMap(tm, sym("b"), value.Int(2))
	if err != nil {
		t.Fatalf("assoc! should succeed: %v", err)
	}
	pm, err := PersistentMap(tm)
	if err != nil {
		t.Fatalf("persistent! should succeed: %v", err)
	}
	if MapCount(pm) != 2 {
		t.Errorf("expected 2 keys, got %d", MapCount(pm))
	}
	if MapCount(m) != 1 {
		t.Error("original map must be unaffected")
	}
	if _, err := AssocBangMap(tm, sym("c"), value.Int(3)); err == nil {
		t.Error("assoc! after persistent! should error")
	}
}
