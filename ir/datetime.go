package ir

import (
	"github.com/signadot/toml-format/go-toml/token"
)

// Date is a calendar date with no time component.
type Date struct {
	Year  int
	Month int
	Day   int
}

// String renders YYYY-MM-DD with zero-left-padded fields.
func (d Date) String() string {
	b := make([]byte, 0, 10)
	b = token.AppendPadZeros(b, int64(d.Year), 4)
	b = append(b, '-')
	b = token.AppendPadZeros(b, int64(d.Month), 2)
	b = append(b, '-')
	b = token.AppendPadZeros(b, int64(d.Day), 2)
	return string(b)
}

// Time is a wall-clock time with nanosecond precision.
type Time struct {
	Hour       int
	Minute     int
	Second     int
	Nanosecond int
}

// String renders HH:MM:SS, appending sub-second digits with trailing
// zeros stripped when the nanosecond component is non-zero.
func (t Time) String() string {
	b := make([]byte, 0, 18)
	b = token.AppendPadZeros(b, int64(t.Hour), 2)
	b = append(b, ':')
	b = token.AppendPadZeros(b, int64(t.Minute), 2)
	b = append(b, ':')
	b = token.AppendPadZeros(b, int64(t.Second), 2)
	if t.Nanosecond > 0 && t.Nanosecond <= 999999999 {
		b = append(b, '.')
		ns := int64(t.Nanosecond)
		digits := 9
		for ns%10 == 0 {
			ns /= 10
			digits--
		}
		b = token.AppendPadZeros(b, ns, digits)
	}
	return string(b)
}

// TimeOffset is a UTC offset in minutes.
type TimeOffset struct {
	Minutes int
}

// String renders Z for a zero offset, otherwise a signed HH:MM.
func (o TimeOffset) String() string {
	if o.Minutes == 0 {
		return "Z"
	}
	mins := o.Minutes
	b := make([]byte, 0, 6)
	if mins < 0 {
		b = append(b, '-')
		mins = -mins
	} else {
		b = append(b, '+')
	}
	hours := mins / 60
	if hours != 0 {
		b = token.AppendPadZeros(b, int64(hours), 2)
		mins -= hours * 60
	} else {
		b = append(b, '0', '0')
	}
	b = append(b, ':')
	b = token.AppendPadZeros(b, int64(mins), 2)
	return string(b)
}

// DateTime is a date joined with a time and an optional offset. A nil
// Offset means a naive date-time and the suffix is omitted entirely.
type DateTime struct {
	Date   Date
	Time   Time
	Offset *TimeOffset
}

func (dt DateTime) String() string {
	s := dt.Date.String() + "T" + dt.Time.String()
	if dt.Offset != nil {
		s += dt.Offset.String()
	}
	return s
}
