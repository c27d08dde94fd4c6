package exception

import (
	"testing"

	"tinyclj/pkg/value"
)

func TestNewFormatsMessage(t *testing.T) {
	e := New(TypeError, "expected %s, got %d", "a number", 3)
	if e.Message != "expected a number, got 3" {
		t.Errorf("Message = %q", e.Message)
	}
	if e.ExcType != TypeError {
		t.Errorf("ExcType = %v, want TypeError", e.ExcType)
	}
}

func TestAtAttachesLocation(t *testing.T) {
	e := New(ReaderError, "bad token").At("repl", 3, 7)
	if e.File != "repl" || e.Line != 3 || e.Column != 7 {
		t.Errorf("At did not set location fields: %+v", e)
	}
}

func TestToValueFromValueRoundTrip(t *testing.T) {
	orig := New(IllegalArgumentException, "bad arg").WithData(value.Int(5))
	v := ToValue(orig)
	if !v.IsException() {
		t.Fatal("ToValue should produce an EXCEPTION heap value")
	}
	if v.Obj.Refcount != 1 {
		t.Errorf("ToValue's object should start at refcount 1, got %d", v.Obj.Refcount)
	}
	back := FromValue(v)
	if back.ExcType != orig.ExcType || back.Message != orig.Message {
		t.Errorf("round trip mismatch: got %+v, want %+v", back, orig)
	}
	if back.Data.I != 5 {
		t.Errorf("Data did not round-trip, got %v", back.Data)
	}
}

func TestFromValueOnNonExceptionReturnsNil(t *testing.T) {
	if FromValue(value.Int(1)) != nil {
		t.Error("FromValue on a non-exception value should return nil")
	}
}

func TestMatches(t *testing.T) {
	if !Matches("", TypeError) {
		t.Error("an empty filter should match anything")
	}
	if !Matches(TypeError, TypeError) {
		t.Error("a filter should match its own type")
	}
	if Matches(TypeError, ArityError) {
		t.Error("a filter should not match a different type")
	}
}

func TestRaiseRecoverRoundTrip(t *testing.T) {
	defer func() {
		r := recover()
		th, ok := r.(Throw)
		if !ok {
			t.Fatalf("expected a Throw panic payload, got %T", r)
		}
		if th.Exc.ExcType != DivisionByZero {
			t.Errorf("ExcType = %v, want DivisionByZero", th.Exc.ExcType)
		}
	}()
	Raise(New(DivisionByZero, "divide by zero"))
}
