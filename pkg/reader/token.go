package reader

import (
	"strconv"
	"strings"

	"tinyclj/pkg/exception"
	"tinyclj/pkg/symbol"
	"tinyclj/pkg/value"
)

// isSymbolByte reports whether b can appear inside a bare symbol,
// keyword, or number token (the design's single shared charset).
func isSymbolByte(b byte) bool {
	switch {
	case b >= 'a' && b <= 'z', b >= 'A' && b <= 'Z', b >= '0' && b <= '9':
		return true
	}
	switch b {
	case '-', '_', '*', '/', '?', '!', '+', '=', '<', '>', '&', '.', ':':
		return true
	}
	return false
}

func (r *Reader) readRawToken() string {
	start := r.idx
	for !r.eof() && isSymbolByte(r.src[r.idx]) {
		r.advanceByte()
	}
	return string(r.src[start:r.idx])
}

func isIntegerToken(s string) bool {
	i := 0
	if len(s) > 0 && (s[0] == '+' || s[0] == '-') {
		i = 1
	}
	if i >= len(s) {
		return false
	}
	for ; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func isRealToken(s string) bool {
	dot := strings.IndexByte(s, '.')
	if dot < 0 {
		return false
	}
	intPart, fracPart := s[:dot], s[dot+1:]
	if fracPart == "" || strings.ContainsAny(fracPart, "./:") {
		return false
	}
	return isIntegerToken(intPart) && isAllDigits(fracPart)
}

func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// parseToken reads one contiguous symbol-charset run and classifies it
// as an integer, a real, a keyword, nil/true/false, or a plain symbol.
func (r *Reader) parseToken(syms *symbol.Table) (value.Value, error) {
	line, col := r.line, r.column
	tok := r.readRawToken()
	if tok == "" {
		b, _ := r.peekByte()
		return value.Nil, r.readerErr("unexpected character %q", b)
	}

	if strings.HasPrefix(tok, "::") {
		name := tok[2:]
		if r.CurrentNS != "" {
			return syms.Intern("", ":"+r.CurrentNS+"/"+name), nil
		}
		return syms.Intern("", ":"+name), nil
	}
	if strings.HasPrefix(tok, ":") {
		return syms.Intern("", tok), nil
	}
	if isIntegerToken(tok) {
		n, err := strconv.ParseInt(tok, 10, 64)
		if err != nil || !value.InFixnumRange(n) {
			return value.Nil, exception.New(exception.ReaderError,
				"integer literal %q out of 29-bit fixnum range", tok).At("", line, col)
		}
		return value.Int(n), nil
	}
	if isRealToken(tok) {
		f, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return value.Nil, exception.New(exception.ReaderError, "malformed real literal %q", tok).At("", line, col)
		}
		return value.Fixed(f), nil
	}
	switch tok {
	case "nil":
		return value.Nil, nil
	case "true":
		return value.True, nil
	case "false":
		return value.False, nil
	}
	return syms.InternQualified(tok), nil
}
