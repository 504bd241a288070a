package peg

import "unicode/utf8"

// decodeChar decodes the text matched by one Char production of the
// meta-grammar into the single code point it denotes. raw is
// exactly one Char span: either a backslash escape or one unescaped code
// point, never more.
func decodeChar(raw string) rune {
	if raw[0] != '\\' {
		r, _ := utf8.DecodeRuneInString(raw)
		return r
	}

	switch raw[1] {
	case 'n':
		return '\n'
	case 'r':
		return '\r'
	case 't':
		return '\t'
	case '\'', '"', '[', ']', '\\':
		return rune(raw[1])
	default:
		// Octal escape: 1-3 digits, already validated by the meta-grammar's
		// Char rule.
		value := 0
		for _, d := range raw[1:] {
			value = value*8 + int(d-'0')
		}
		return rune(value)
	}
}
