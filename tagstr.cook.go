package tagstr

import (
	"strings"
	"unicode/utf8"
)

// cook applies the backtick-literal escape semantics to one raw chunk,
// producing its cooked counterpart. It is a faithful re-implementation
// of the literal-to-value transform: once the trimmer has edited raw
// text, any host-supplied cooked form is stale and must be rebuilt.
//
// Recognized escapes: \b \t \n \v \f \r, \xHH, \uHHHH, legacy octal
// ([0-3][0-7]{0,2} or [4-7][0-7]?), and backslash + line terminator
// (a line continuation, contributing nothing). Any other escaped
// character yields that character literally; malformed \x and \u fall
// through to the literal rule.
func cook(raw string) string {
	if strings.IndexByte(raw, '\\') < 0 {
		return raw
	}
	var b strings.Builder
	b.Grow(len(raw))
	i := 0
	for i < len(raw) {
		j := strings.IndexByte(raw[i:], '\\')
		if j < 0 {
			b.WriteString(raw[i:])
			break
		}
		b.WriteString(raw[i : i+j])
		i += j + 1
		if i >= len(raw) {
			// Lone trailing backslash: nothing to escape, keep it.
			b.WriteByte('\\')
			break
		}
		i += cookEscape(&b, raw[i:])
	}
	return b.String()
}

// cookEscape writes the cooked form of one escape body (the text after
// the backslash) and returns how many bytes of it were consumed.
func cookEscape(b *strings.Builder, body string) int {
	switch c := body[0]; c {
	case 'b':
		b.WriteByte('\b')
		return 1
	case 't':
		b.WriteByte('\t')
		return 1
	case 'n':
		b.WriteByte('\n')
		return 1
	case 'v':
		b.WriteByte('\v')
		return 1
	case 'f':
		b.WriteByte('\f')
		return 1
	case 'r':
		b.WriteByte('\r')
		return 1
	case 'x':
		if v, ok := hexValue(body[1:], 2); ok {
			b.WriteRune(rune(v))
			return 3
		}
	case 'u':
		if v, ok := hexValue(body[1:], 4); ok {
			b.WriteRune(rune(v))
			return 5
		}
	case '0', '1', '2', '3', '4', '5', '6', '7':
		return cookOctal(b, body)
	case '\n':
		// Line continuation: elided from the cooked form.
		return 1
	case '\r':
		if len(body) > 1 && body[1] == '\n' {
			return 2
		}
		return 1
	}
	r, size := utf8.DecodeRuneInString(body)
	if r == charLineSeparator || r == charParaSeparator {
		return size
	}
	b.WriteRune(r)
	return size
}

// cookOctal consumes a legacy octal escape: one digit 0-3 followed by
// up to two more octal digits, or one digit 4-7 followed by up to one
// more.
func cookOctal(b *strings.Builder, body string) int {
	maxDigits := 3
	if body[0] >= '4' {
		maxDigits = 2
	}
	n := 1
	value := int(body[0] - '0')
	for n < maxDigits && n < len(body) && body[n] >= '0' && body[n] <= '7' {
		value = value*8 + int(body[n]-'0')
		n++
	}
	b.WriteRune(rune(value))
	return n
}

// hexValue parses exactly want hex digits from the front of s.
func hexValue(s string, want int) (int, bool) {
	if len(s) < want {
		return 0, false
	}
	value := 0
	for i := 0; i < want; i++ {
		d := hexDigit(s[i])
		if d < 0 {
			return 0, false
		}
		value = value*16 + d
	}
	return value, true
}

func hexDigit(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10
	}
	return -1
}
