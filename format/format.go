package format

import (
	"errors"
	"fmt"
	"strings"
)

// Flags controls how the encoder renders a document. Flags is a plain
// value type: it is supplied by the caller and never mutated mid-walk.
type Flags uint8

const (
	// AllowLiteralStrings permits '...' quoting when the string content
	// allows it.
	AllowLiteralStrings Flags = 1 << iota
	// AllowMultiLineStrings permits triple-quoted blocks for strings
	// containing newlines.
	AllowMultiLineStrings
	// AllowValueFormatFlags honors per-value rendering hints such as
	// hexadecimal integers.
	AllowValueFormatFlags
	// Indentation emits leading whitespace per nesting level.
	Indentation
)

// DefaultFlags is the flag set used when the caller supplies none.
const DefaultFlags = AllowLiteralStrings | AllowMultiLineStrings | AllowValueFormatFlags | Indentation

// DefaultIndent is the per-level indent unit.
const DefaultIndent = "    "

var ErrBadFlag = errors.New("bad format flag")

func (f Flags) Has(x Flags) bool { return f&x == x }

func (f Flags) String() string {
	d, err := f.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

var flagNames = []struct {
	flag Flags
	name string
}{
	{AllowLiteralStrings, "literal-strings"},
	{AllowMultiLineStrings, "multi-line-strings"},
	{AllowValueFormatFlags, "value-format-flags"},
	{Indentation, "indentation"},
}

func (f Flags) MarshalText() ([]byte, error) {
	if f == 0 {
		return []byte("none"), nil
	}
	parts := []string{}
	rest := f
	for _, fn := range flagNames {
		if rest.Has(fn.flag) {
			parts = append(parts, fn.name)
			rest &^= fn.flag
		}
	}
	if rest != 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadFlag, rest)
	}
	return []byte(strings.Join(parts, "|")), nil
}

func (f *Flags) UnmarshalText(d []byte) error {
	pf, err := ParseFlags(string(d))
	if err != nil {
		return err
	}
	*f = pf
	return nil
}

func ParseFlags(v string) (Flags, error) {
	if v == "none" {
		return 0, nil
	}
	var res Flags
Parts:
	for _, part := range strings.Split(v, "|") {
		for _, fn := range flagNames {
			if part == fn.name {
				res |= fn.flag
				continue Parts
			}
		}
		return 0, fmt.Errorf("%w: %q", ErrBadFlag, part)
	}
	return res, nil
}

// ValueFormat is a per-value rendering hint carried on a node. Hints are
// honored only when the encoder runs with AllowValueFormatFlags.
type ValueFormat int

const (
	FormatDefault ValueFormat = iota
	FormatBinary
	FormatOctal
	FormatHexadecimal
	FormatHexFloat
)

// Base returns the integer radix a hint requests, 10 for anything else.
func (v ValueFormat) Base() int {
	switch v {
	case FormatBinary:
		return 2
	case FormatOctal:
		return 8
	case FormatHexadecimal:
		return 16
	default:
		return 10
	}
}

func (v ValueFormat) String() string {
	switch v {
	case FormatDefault:
		return "default"
	case FormatBinary:
		return "binary"
	case FormatOctal:
		return "octal"
	case FormatHexadecimal:
		return "hexadecimal"
	case FormatHexFloat:
		return "hex-float"
	default:
		return "<unknown value format>"
	}
}
