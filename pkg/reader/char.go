package reader

import "tinyclj/pkg/value"

var namedChars = map[string]rune{
	"newline": '\n',
	"space":   ' ',
	"tab":     '\t',
	"return":  '\r',
}

// parseChar reads a `\x` character literal: a named char (`\newline`,
// `\space`, `\tab`, `\return`), a `\uXXXX` codepoint escape, or a single
// literal rune.
func (r *Reader) parseChar() (value.Value, error) {
	r.advanceByte() // backslash
	if r.eof() {
		return value.Nil, r.incomplete("unterminated character literal")
	}

	start := r.idx
	startLine, startCol := r.line, r.column
	first, err := r.advanceRune()
	if err != nil {
		return value.Nil, err
	}

	// A run of letters after the first may name a special char or a
	// \uXXXX escape; otherwise the literal is exactly one rune.
	if isLetter(first) {
		for !r.eof() && (isLetter(r.peekRune()) || (first == 'u' && r.peekRune() >= '0' && r.peekRune() <= '9')) {
			r.advanceRune()
		}
		word := string(r.src[start:r.idx])
		if len(word) > 1 {
			if first == 'u' {
				hex := word[1:]
				if len(hex) == 4 && isAllHex(hex) {
					n := int64(0)
					for i := 0; i < len(hex); i++ {
						n = n*16 + int64(hexVal(hex[i]))
					}
					return value.Char(rune(n)), nil
				}
			}
			if r, ok := namedChars[word]; ok {
				return value.Char(r), nil
			}
			r.line, r.column = startLine, startCol
			return value.Nil, r.readerErr("unknown character literal \\%s", word)
		}
	}
	return value.Char(first), nil
}

func isLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isAllHex(s string) bool {
	for i := 0; i < len(s); i++ {
		if !isHexDigit(s[i]) {
			return false
		}
	}
	return true
}

func hexVal(b byte) int {
	switch {
	case b >= '0' && b <= '9':
		return int(b - '0')
	case b >= 'a' && b <= 'f':
		return int(b-'a') + 10
	default:
		return int(b-'A') + 10
	}
}
