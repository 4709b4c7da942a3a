package token

import (
	"encoding/hex"
	"strings"
	"unicode"
	"unicode/utf8"
)

// BareKey reports whether a key can appear unquoted: one or more of
// A-Z a-z 0-9 _ -.
func BareKey(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'a' && c <= 'z':
		case c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9':
		case c == '_' || c == '-':
		default:
			return false
		}
	}
	return true
}

// QuoteKey renders a key segment, bare where possible.
func QuoteKey(s string) string {
	if BareKey(s) {
		return s
	}
	return Quote(s)
}

// Quote renders s as a basic "..." string.
func Quote(s string) string {
	d := make([]byte, 1, len(s)+2)
	d[0] = '"'
	for _, r := range s {
		d = appendEscaped(d, r, true)
	}
	return string(append(d, '"'))
}

func appendEscaped(d []byte, r rune, escapeNL bool) []byte {
	switch r {
	case '"':
		return append(d, '\\', '"')
	case '\\':
		return append(d, '\\', '\\')
	case '\b':
		return append(d, '\\', 'b')
	case '\f':
		return append(d, '\\', 'f')
	case '\t':
		return append(d, '\\', 't')
	case '\r':
		return append(d, '\\', 'r')
	case '\n':
		if escapeNL {
			return append(d, '\\', 'n')
		}
		return append(d, '\n')
	}
	if unicode.IsControl(r) {
		ucs := []byte{byte(r >> 8), byte(r)}
		cps := make([]byte, 4)
		hex.Encode(cps, ucs)
		return append(d, '\\', 'u', cps[0], cps[1], cps[2], cps[3])
	}
	return utf8.AppendRune(d, r)
}

// CanLiteral reports whether s may be rendered as a single-line 'literal'
// string: no single quotes and no control characters other than tab.
func CanLiteral(s string) bool {
	for _, r := range s {
		if r == '\'' {
			return false
		}
		if r != '\t' && unicode.IsControl(r) {
			return false
		}
	}
	return true
}

// QuoteLiteral renders s as a 'literal' string. The caller must have
// checked CanLiteral.
func QuoteLiteral(s string) string {
	return "'" + s + "'"
}

// CanMultiLineLiteral reports whether s may be rendered as a '''...'''
// block: no ''' runs, no quote adjacent to either delimiter, no leading
// newline (it would be eaten on re-parse), and no control characters
// other than tab and newline.
func CanMultiLineLiteral(s string) bool {
	if strings.Contains(s, "'''") {
		return false
	}
	if strings.HasPrefix(s, "'") || strings.HasSuffix(s, "'") {
		return false
	}
	if strings.HasPrefix(s, "\n") {
		return false
	}
	for _, r := range s {
		if r != '\t' && r != '\n' && unicode.IsControl(r) {
			return false
		}
	}
	return true
}

func QuoteMultiLineLiteral(s string) string {
	return "'''" + s + "'''"
}

// QuoteMultiLine renders s as a """...""" block keeping interior newlines
// raw. Every third consecutive quote is escaped so no run of three forms
// inside the body, and a leading newline is escaped so a re-parse does not
// strip it.
func QuoteMultiLine(s string) string {
	d := make([]byte, 0, len(s)+6)
	d = append(d, '"', '"', '"')
	quoteRun := 0
	for i, r := range s {
		if r == '"' {
			if quoteRun == 2 {
				d = append(d, '\\', '"')
				quoteRun = 0
			} else {
				d = append(d, '"')
				quoteRun++
			}
			continue
		}
		quoteRun = 0
		if r == '\n' && i == 0 {
			d = append(d, '\\', 'n')
			continue
		}
		d = appendEscaped(d, r, false)
	}
	return string(append(d, '"', '"', '"'))
}
