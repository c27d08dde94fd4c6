// Package reader implements tiny-clj's form reader: a cursor-based
// recursive-descent parser that turns a UTF-8 source string into a
// stream of value.Value forms. It is grounded on the teacher's
// pkg/parser cursor-and-token-run idiom, generalized to the design's
// larger form grammar (vectors, maps, characters, keywords, quote-family
// reader macros, metadata).
package reader

import (
	"unicode/utf8"

	"tinyclj/pkg/exception"
)

// Reader is restartable at form boundaries: repeated ReadForm calls
// return successive forms of the source given to New. The source is
// fixed at construction, so new input needs a new Reader.
type Reader struct {
	src    []byte
	idx    int
	line   int
	column int

	// CurrentNS is consulted only to expand the `::name` keyword
	// shorthand into `:<CurrentNS>/name`; the host sets it before each
	// read to match its current namespace.
	CurrentNS string
}

// New wraps src for reading. Line/column are 1-based, matching the
// convention error messages and REPL prompts use.
func New(src string) *Reader {
	return &Reader{src: []byte(src), line: 1, column: 1}
}

func (r *Reader) eof() bool { return r.idx >= len(r.src) }

func (r *Reader) peekByte() (byte, bool) {
	if r.eof() {
		return 0, false
	}
	return r.src[r.idx], true
}

func (r *Reader) peekByteAt(off int) (byte, bool) {
	if r.idx+off >= len(r.src) {
		return 0, false
	}
	return r.src[r.idx+off], true
}

// advanceByte consumes exactly one byte, tracking line/column. Only safe
// for ASCII delimiters; rune-aware code paths use advanceRune instead.
func (r *Reader) advanceByte() byte {
	b := r.src[r.idx]
	r.idx++
	if b == '\n' {
		r.line++
		r.column = 1
	} else {
		r.column++
	}
	return b
}

// advanceRune consumes one full UTF-8 rune.
func (r *Reader) advanceRune() (rune, error) {
	if r.eof() {
		return 0, r.incomplete("unexpected end of input")
	}
	ru, size := utf8.DecodeRune(r.src[r.idx:])
	if ru == utf8.RuneError && size <= 1 {
		return 0, r.readerErr("invalid UTF-8 sequence")
	}
	for i := 0; i < size; i++ {
		r.advanceByte()
	}
	return ru, nil
}

func (r *Reader) peekRune() rune {
	if r.eof() {
		return utf8.RuneError
	}
	ru, _ := utf8.DecodeRune(r.src[r.idx:])
	return ru
}

func (r *Reader) readerErr(format string, args ...interface{}) error {
	return exception.New(exception.ReaderError, format, args...).At("", r.line, r.column)
}

func (r *Reader) incomplete(format string, args ...interface{}) error {
	return exception.New(exception.IncompleteInputError, format, args...).At("", r.line, r.column)
}

func isWhitespace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r' || b == ',' || b == '\f'
}

// skipIgnorable skips whitespace, commas, and `;` line comments.
func (r *Reader) skipIgnorable() {
	for !r.eof() {
		b := r.src[r.idx]
		switch {
		case isWhitespace(b):
			r.advanceByte()
		case b == ';':
			for !r.eof() && r.src[r.idx] != '\n' {
				r.advanceByte()
			}
		default:
			return
		}
	}
}

// AtEOF reports whether only ignorable trailing input remains.
func (r *Reader) AtEOF() bool {
	r.skipIgnorable()
	return r.eof()
}
