package collections

import (
	"testing"

	"tinyclj/pkg/value"
)

func TestSeqOverEmptyCollectionsIsNil(t *testing.T) {
	if !Seq(value.Nil).IsNil() {
		t.Error("Seq(nil) should be nil")
	}
	if !Seq(NewVector(nil)).IsNil() {
		t.Error("Seq of an empty vector should be nil")
	}
	if !Seq(NewMap(nil)).IsNil() {
		t.Error("Seq of an empty map should be nil")
	}
}

func TestSeqFirstRestOverVector(t *testing.T) {
	v := NewVector([]value.Value{value.Int(1), value.Int(2), value.Int(3)})
	s := Seq(v)
	if First(s).I != 1 {
		t.Fatalf("First = %d, want 1", First(s).I)
	}
	r := Rest(s)
	if First(r).I != 2 {
		t.Fatalf("second First = %d, want 2", First(r).I)
	}
	r2 := Rest(r)
	if First(r2).I != 3 {
		t.Fatalf("third First = %d, want 3", First(r2).I)
	}
	if !Rest(r2).IsNil() {
		t.Error("Rest of the last element should be Nil")
	}
}

func TestSeqOverString(t *testing.T) {
	s := Seq(NewString("ab"))
	if First(s).I != int64('a') {
		t.Errorf("First of \"ab\" should be the char 'a'")
	}
	r := Rest(s)
	if First(r).I != int64('b') {
		t.Errorf("second element should be 'b'")
	}
}

func TestSeqToSliceWorksAcrossKinds(t *testing.T) {
	v := NewVector([]value.Value{value.Int(1), value.Int(2)})
	got := SeqToSlice(v)
	if len(got) != 2 || got[0].I != 1 || got[1].I != 2 {
		t.Errorf("SeqToSlice(vector) = %v, want [1 2]", got)
	}

	l := ListFromSlice([]value.Value{value.Int(3), value.Int(4)})
	got = SeqToSlice(l)
	if len(got) != 2 || got[0].I != 3 || got[1].I != 4 {
		t.Errorf("SeqToSlice(list) = %v, want [3 4]", got)
	}

	if got := SeqToSlice(value.Nil); len(got) != 0 {
		t.Errorf("SeqToSlice(nil) should be empty, got %v", got)
	}
}

func TestSeqOverMapEntriesYieldsKVPairs(t *testing.T) {
	k := sym("k")
	m := NewMap([]value.MapEntry{{Key: k, Val: value.Int(9)}})
	got := SeqToSlice(m)
	if len(got) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(got))
	}
	if !got[0].IsVector() || VectorCount(got[0]) != 2 {
		t.Fatalf("each map seq element should be a 2-element [k v] vector, got %v", got[0])
	}
}

func TestCountAcrossKinds(t *testing.T) {
	if Count(value.Nil) != 0 {
		t.Error("Count(nil) should be 0")
	}
	if Count(NewVector([]value.Value{value.Int(1), value.Int(2)})) != 2 {
		t.Error("Count of a 2-element vector should be 2")
	}
	if Count(NewString("abc")) != 3 {
		t.Error("Count of a 3-byte ascii string should be 3")
	}
}
