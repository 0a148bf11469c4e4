package models

import (
	"fmt"
	"time"
)

// DateLayout is the canonical calendar-date form used by both storage backends.
const DateLayout = "2006-01-02"

// Date is a calendar day without a time-of-day component.
// Its string form is lexicographically sortable.
type Date struct {
	year  int
	month time.Month
	day   int
}

// ParseDate parses a YYYY-MM-DD string into a Date.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("%w: invalid date %q, expected YYYY-MM-DD", ErrValidation, s)
	}
	return DateOf(t), nil
}

// DateOf returns the calendar day of t in t's own location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{year: y, month: m, day: d}
}

// DateFromUnixMilli converts an epoch-millisecond timestamp of a local
// midnight into its calendar day. The instant is rounded to the nearest UTC
// midnight, which recovers the day for any offset from UTC-11 to UTC+12.
func DateFromUnixMilli(ms int64) Date {
	return DateOf(time.UnixMilli(ms).UTC().Add(12 * time.Hour))
}

// String returns the YYYY-MM-DD form.
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.year, int(d.month), d.day)
}

// IsZero reports whether d is the zero Date.
func (d Date) IsZero() bool {
	return d == Date{}
}

// Before reports whether d is strictly earlier than other.
func (d Date) Before(other Date) bool {
	return d.String() < other.String()
}

func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Date) UnmarshalText(b []byte) error {
	parsed, err := ParseDate(string(b))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
