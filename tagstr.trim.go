package tagstr

import (
	"strings"
	"unicode/utf8"
)

// trimConfig holds the trimmer configuration.
type trimConfig struct {
	trimEOLAtStart bool
	trimEOLAtEnd   bool
}

// TrimOption is a functional option for configuring Trim.
type TrimOption func(*trimConfig)

// TrimEOLAtStart removes exactly one leading line terminator from the
// first chunk, if present after dedenting.
func TrimEOLAtStart() TrimOption {
	return func(c *trimConfig) {
		c.trimEOLAtStart = true
	}
}

// TrimEOLAtEnd removes exactly one trailing line terminator from the
// last chunk, if present after dedenting.
func TrimEOLAtEnd() TrimOption {
	return func(c *trimConfig) {
		c.trimEOLAtEnd = true
	}
}

// Trim strips the longest whitespace run common to the start of every
// line across every raw chunk, so a template can be indented to match
// the surrounding code without the indentation leaking into its output.
//
// Trimming only activates when the first raw chunk begins with a line
// terminator; any other sequence is returned verbatim with no copy.
// The first fragment of each chunk is excluded from the common-prefix
// computation, since it follows the opening delimiter or an
// interpolation rather than a line start. Line terminators themselves
// are preserved, so line counts do not change.
//
// The cooked view of the result is re-derived from the trimmed raw text
// with the backtick-literal escape semantics. The result is a fresh,
// cache-ineligible sequence; memoize it by calling Trim from inside a
// tag's static half.
func Trim(chunks *Chunks, opts ...TrimOption) (*Chunks, error) {
	if chunks == nil {
		return nil, NewInvalidInputError(ErrMsgNilChunks)
	}
	if len(chunks.Cooked) != len(chunks.Raw) {
		return nil, NewLengthMismatchError(len(chunks.Cooked), len(chunks.Raw))
	}
	if len(chunks.Raw) == 0 {
		return nil, NewInvalidInputError(ErrMsgEmptyChunks)
	}

	var cfg trimConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	// A template not starting on a fresh line keeps its text verbatim.
	first := chunks.Raw[0]
	if first == "" || terminatorLen(first, 0) == 0 {
		return chunks, nil
	}

	trimmed := make([]string, len(chunks.Raw))
	copy(trimmed, chunks.Raw)

	if prefix := commonIndent(chunks.Raw); prefix != "" {
		for i, chunk := range trimmed {
			trimmed[i] = stripAfterBreaks(chunk, prefix)
		}
	}
	if cfg.trimEOLAtStart {
		trimmed[0] = trimLeadingBreak(trimmed[0])
	}
	if cfg.trimEOLAtEnd {
		last := len(trimmed) - 1
		trimmed[last] = trimTrailingBreak(trimmed[last])
	}

	cooked := make([]string, len(trimmed))
	for i, chunk := range trimmed {
		cooked[i] = cook(chunk)
	}
	return &Chunks{Cooked: cooked, Raw: trimmed}, nil
}

// Dedent applies Trim to a single plain string and returns the trimmed
// text. The text is not escape-processed; it is treated as already
// cooked. Useful for inline backtick literals:
//
//	query := tagstr.Dedent(`
//	    SELECT name
//	    FROM users
//	    `, tagstr.TrimEOLAtStart(), tagstr.TrimEOLAtEnd())
func Dedent(s string, opts ...TrimOption) string {
	trimmed, err := Trim(&Chunks{Cooked: []string{s}, Raw: []string{s}}, opts...)
	if err != nil {
		return s
	}
	return trimmed.Raw[0]
}

// commonIndent folds the leading whitespace run of every line (except
// the first fragment of each chunk) into the longest common prefix,
// short-circuiting as soon as the prefix collapses to empty.
func commonIndent(raw []string) string {
	prefix := ""
	found := false
	for _, chunk := range raw {
		fragments := splitLines(chunk)
		for _, fragment := range fragments[1:] {
			run := leadingWhitespace(fragment)
			if !found {
				prefix = run
				found = true
			} else {
				prefix = commonPrefix(prefix, run)
			}
			if prefix == "" {
				return ""
			}
		}
	}
	return prefix
}

// splitLines splits a chunk on line terminator tokens. The terminators
// themselves are not part of any fragment.
func splitLines(chunk string) []string {
	fragments := make([]string, 0, 1+strings.Count(chunk, "\n"))
	start := 0
	i := 0
	for i < len(chunk) {
		if n := terminatorLen(chunk, i); n > 0 {
			fragments = append(fragments, chunk[start:i])
			i += n
			start = i
			continue
		}
		if chunk[i] < utf8.RuneSelf {
			i++
		} else {
			_, size := utf8.DecodeRuneInString(chunk[i:])
			i += size
		}
	}
	return append(fragments, chunk[start:])
}

// stripAfterBreaks removes one occurrence of prefix immediately after
// every line terminator token in chunk, keeping the terminator.
func stripAfterBreaks(chunk, prefix string) string {
	var b strings.Builder
	b.Grow(len(chunk))
	i := 0
	for i < len(chunk) {
		n := terminatorLen(chunk, i)
		if n == 0 {
			if chunk[i] < utf8.RuneSelf {
				b.WriteByte(chunk[i])
				i++
			} else {
				_, size := utf8.DecodeRuneInString(chunk[i:])
				b.WriteString(chunk[i : i+size])
				i += size
			}
			continue
		}
		b.WriteString(chunk[i : i+n])
		i += n
		if strings.HasPrefix(chunk[i:], prefix) {
			i += len(prefix)
		}
	}
	return b.String()
}

// trimLeadingBreak removes exactly one leading line terminator token.
func trimLeadingBreak(chunk string) string {
	if chunk == "" {
		return chunk
	}
	if n := terminatorLen(chunk, 0); n > 0 {
		return chunk[n:]
	}
	return chunk
}

// trimTrailingBreak removes exactly one trailing line terminator token.
// CRLF counts as a single token.
func trimTrailingBreak(chunk string) string {
	if strings.HasSuffix(chunk, "\r\n") {
		return chunk[:len(chunk)-2]
	}
	for _, t := range []string{"\n", "\r", string(charLineSeparator), string(charParaSeparator)} {
		if strings.HasSuffix(chunk, t) {
			return chunk[:len(chunk)-len(t)]
		}
	}
	return chunk
}

// terminatorLen returns the byte length of the line terminator token
// starting at s[i], or 0 when s[i] does not start one. CRLF is one
// token of length 2.
func terminatorLen(s string, i int) int {
	switch s[i] {
	case '\n':
		return 1
	case '\r':
		if i+1 < len(s) && s[i+1] == '\n' {
			return 2
		}
		return 1
	}
	if s[i] < utf8.RuneSelf {
		return 0
	}
	r, size := utf8.DecodeRuneInString(s[i:])
	if r == charLineSeparator || r == charParaSeparator {
		return size
	}
	return 0
}

// leadingWhitespace returns the leading run of inline whitespace
// (tab, vertical tab, form feed, space, no-break space, BOM).
func leadingWhitespace(s string) string {
	i := 0
	for i < len(s) {
		r, size := utf8.DecodeRuneInString(s[i:])
		switch r {
		case charTab, charVerticalTab, charFormFeed, charSpace, charNoBreakSpace, charBOM:
			i += size
		default:
			return s[:i]
		}
	}
	return s
}

// commonPrefix returns the longest common prefix of two whitespace
// runs, cut at a rune boundary.
func commonPrefix(a, b string) string {
	if len(b) < len(a) {
		a, b = b, a
	}
	i := 0
	for i < len(a) {
		ra, sa := utf8.DecodeRuneInString(a[i:])
		rb, _ := utf8.DecodeRuneInString(b[i:])
		if ra != rb {
			break
		}
		i += sa
	}
	return a[:i]
}
