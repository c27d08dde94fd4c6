package value

import "testing"

func TestIntWrapsAtFixnumBoundary(t *testing.T) {
	tests := []struct {
		in   int64
		want int64
	}{
		{0, 0},
		{fixnumMax, fixnumMax},
		{fixnumMin, fixnumMin},
		{fixnumMax + 1, fixnumMin},
		{fixnumMin - 1, fixnumMax},
	}
	for _, tt := range tests {
		got := Int(tt.in)
		if got.I != tt.want {
			t.Errorf("Int(%d).I = %d, want %d", tt.in, got.I, tt.want)
		}
		if got.Tag != TagFixnum {
			t.Errorf("Int(%d).Tag = %v, want TagFixnum", tt.in, got.Tag)
		}
	}
}

func TestInFixnumRange(t *testing.T) {
	if !InFixnumRange(0) || !InFixnumRange(fixnumMax) || !InFixnumRange(fixnumMin) {
		t.Error("boundary values should be in range")
	}
	if InFixnumRange(fixnumMax + 1) {
		t.Error("fixnumMax+1 should be out of range")
	}
}

func TestFixedRoundTrip(t *testing.T) {
	v := Fixed(3.5)
	if !v.IsFixed() {
		t.Fatal("expected a fixed-point value")
	}
	if got := v.Float64(); got != 3.5 {
		t.Errorf("Float64() = %v, want 3.5", got)
	}
}

func TestFixedSaturates(t *testing.T) {
	big := Fixed(1e12)
	small := Fixed(-1e12)
	if big.I != 1<<31-1 {
		t.Errorf("Fixed(1e12).I = %d, want saturated max", big.I)
	}
	if small.I != -(1 << 31) {
		t.Errorf("Fixed(-1e12).I = %d, want saturated min", small.I)
	}
}

func TestNilIsZeroValue(t *testing.T) {
	var zero Value
	if !zero.IsNil() {
		t.Error("zero Value should be nil")
	}
	if !Nil.IsNil() {
		t.Error("Nil should be nil")
	}
}

func TestTruthy(t *testing.T) {
	tests := []struct {
		v    Value
		want bool
	}{
		{Nil, false},
		{False, false},
		{True, true},
		{Int(0), true},
		{Char('a'), true},
	}
	for _, tt := range tests {
		if got := tt.v.Truthy(); got != tt.want {
			t.Errorf("Truthy(%v) = %v, want %v", tt.v, got, tt.want)
		}
	}
}

func TestSameObjectIdentity(t *testing.T) {
	a := Value{Tag: TagHeap, Obj: &Heap{Kind: KindString, Bytes: []byte("x")}}
	b := Value{Tag: TagHeap, Obj: &Heap{Kind: KindString, Bytes: []byte("x")}}
	if SameObject(a, b) {
		t.Error("distinct heap objects should not be SameObject")
	}
	if !SameObject(a, a) {
		t.Error("a value should be SameObject with itself")
	}
	if !SameObject(Nil, Value{}) {
		t.Error("two nils should be SameObject")
	}
}

func TestAllocStampsRefcountOne(t *testing.T) {
	h := Alloc(Heap{Kind: KindString, Bytes: []byte("x")})
	if h.Refcount != 1 {
		t.Errorf("Alloc should stamp Refcount 1, got %d", h.Refcount)
	}
	if h.Singleton {
		t.Error("Alloc should never produce a singleton")
	}
}
