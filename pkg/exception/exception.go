// Package exception implements tiny-clj's typed error taxonomy and its
// non-local escape mechanism. Control transfer out of deeply nested
// evaluation uses Go's panic/recover, the same tagged-escape idiom the
// teacher uses for its own non-local returns: Throw is the one panic
// payload type this module ever panics with, and package eval is the
// only place that recovers it (at try/catch frames and at the top of
// eval-string).
package exception

import (
	"fmt"

	"tinyclj/pkg/value"
)

// Type names the built-in exception taxonomy. Exceptions built by the
// core library's `ex-info` carry the type "user".
type Type string

const (
	ReaderError                Type = "ReaderError"
	IncompleteInputError       Type = "IncompleteInputError"
	ArityError                 Type = "ArityError"
	SymbolResolutionError      Type = "SymbolResolutionError"
	TypeError                  Type = "TypeError"
	NumberFormatException      Type = "NumberFormatException"
	DivisionByZero             Type = "DivisionByZero"
	RecurPositionError         Type = "RecurPositionError"
	TransientUseAfterPersistent Type = "TransientUseAfterPersistent"
	IndexOutOfBoundsException  Type = "IndexOutOfBoundsException"
	IllegalArgumentException   Type = "IllegalArgumentException"
	OutOfMemory                Type = "OutOfMemory"
	DoubleFreeError            Type = "DoubleFreeError"
	BudgetExceeded             Type = "BudgetExceeded"
)

// Exception is both a Go error and the payload tiny-clj's `catch` binds
// to a local when it matches Type.
type Exception struct {
	ExcType Type
	Message string
	File    string
	Line    int
	Column  int
	Data    value.Value
}

func (e *Exception) Error() string {
	if e.File != "" {
		return fmt.Sprintf("%s: %s (%s:%d:%d)", e.ExcType, e.Message, e.File, e.Line, e.Column)
	}
	return fmt.Sprintf("%s: %s", e.ExcType, e.Message)
}

func New(t Type, format string, args ...interface{}) *Exception {
	return &Exception{ExcType: t, Message: fmt.Sprintf(format, args...)}
}

func (e *Exception) At(file string, line, col int) *Exception {
	e.File, e.Line, e.Column = file, line, col
	return e
}

func (e *Exception) WithData(d value.Value) *Exception {
	e.Data = d
	return e
}

// Throw is the panic payload used to unwind the Go call stack for a
// tiny-clj `throw` or a runtime error. Recovered only by package eval.
type Throw struct {
	Exc *Exception
}

// Raise panics with exc wrapped as a Throw; the only sanctioned way
// control escapes a deeply recursive eval.
func Raise(exc *Exception) {
	panic(Throw{Exc: exc})
}

// ToValue renders an Exception as a heap EXCEPTION value so `catch` can
// bind it, and so it can be stored inside other collections (e.g. for
// `ex-data`/`ex-message` accessors in the core library).
func ToValue(e *Exception) value.Value {
	return value.Value{Tag: value.TagHeap, Obj: value.Alloc(value.Heap{
		Kind:       value.KindException,
		ExcType:    string(e.ExcType),
		ExcMessage: e.Message,
		ExcFile:    e.File,
		ExcLine:    e.Line,
		ExcColumn:  e.Column,
		ExcData:    e.Data,
	})}
}

// FromValue extracts an *Exception from a heap EXCEPTION value.
func FromValue(v value.Value) *Exception {
	if !v.IsException() {
		return nil
	}
	return &Exception{
		ExcType: Type(v.Obj.ExcType),
		Message: v.Obj.ExcMessage,
		File:    v.Obj.ExcFile,
		Line:    v.Obj.ExcLine,
		Column:  v.Obj.ExcColumn,
		Data:    v.Obj.ExcData,
	}
}

// Matches reports whether a caught exception's type satisfies a catch
// clause's type filter. "" matches everything.
func Matches(filter Type, excType Type) bool {
	return filter == "" || filter == excType
}
