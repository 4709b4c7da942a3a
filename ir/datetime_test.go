package ir

import "testing"

func TestDateString(t *testing.T) {
	tests := []struct {
		d    Date
		want string
	}{
		{Date{2024, 1, 5}, "2024-01-05"},
		{Date{987, 12, 31}, "0987-12-31"},
		{Date{1, 1, 1}, "0001-01-01"},
	}
	for _, tt := range tests {
		if got := tt.d.String(); got != tt.want {
			t.Errorf("%+v = %q, want %q", tt.d, got, tt.want)
		}
	}
}

func TestTimeString(t *testing.T) {
	tests := []struct {
		tm   Time
		want string
	}{
		{Time{0, 0, 0, 0}, "00:00:00"},
		{Time{7, 9, 3, 0}, "07:09:03"},
		{Time{13, 37, 42, 120000000}, "13:37:42.12"},
		{Time{13, 37, 42, 999999999}, "13:37:42.999999999"},
		{Time{13, 37, 42, 1}, "13:37:42.000000001"},
		{Time{13, 37, 42, 500000000}, "13:37:42.5"},
	}
	for _, tt := range tests {
		if got := tt.tm.String(); got != tt.want {
			t.Errorf("%+v = %q, want %q", tt.tm, got, tt.want)
		}
	}
}

func TestTimeOffsetString(t *testing.T) {
	tests := []struct {
		minutes int
		want    string
	}{
		{0, "Z"},
		{60, "+01:00"},
		{-60, "-01:00"},
		{90, "+01:30"},
		{30, "+00:30"},
		{-30, "-00:30"},
		{-330, "-05:30"},
	}
	for _, tt := range tests {
		o := TimeOffset{Minutes: tt.minutes}
		if got := o.String(); got != tt.want {
			t.Errorf("offset %d = %q, want %q", tt.minutes, got, tt.want)
		}
	}
}

func TestDateTimeString(t *testing.T) {
	naive := DateTime{Date: Date{2024, 1, 5}, Time: Time{7, 30, 0, 0}}
	if got := naive.String(); got != "2024-01-05T07:30:00" {
		t.Errorf("naive = %q", got)
	}
	utc := DateTime{Date: Date{2024, 1, 5}, Time: Time{7, 30, 0, 0}, Offset: &TimeOffset{}}
	if got := utc.String(); got != "2024-01-05T07:30:00Z" {
		t.Errorf("utc = %q", got)
	}
	off := DateTime{Date: Date{2024, 1, 5}, Time: Time{7, 30, 0, 500000000}, Offset: &TimeOffset{Minutes: 120}}
	if got := off.String(); got != "2024-01-05T07:30:00.5+02:00" {
		t.Errorf("offset = %q", got)
	}
}
