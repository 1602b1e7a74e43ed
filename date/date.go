// Package date provides a calendar date with day granularity.
//
// Dates travel as ISO-8601 strings ("2006-01-02") at the boundaries
// (CSV import, JSON datasets) and as Date values everywhere else.
package date

import (
	"encoding/json"
	"fmt"
	"time"
)

// Format is the wire representation of a Date.
const Format = "2006-01-02"

// Date is a calendar day. The zero value is the zero time's day and
// reports IsZero.
type Date struct {
	y int
	m time.Month
	d int
}

// New returns a normalized Date (out-of-range values roll over the
// same way time.Date does).
func New(year int, month time.Month, day int) Date {
	d := Date{year, month, day}
	d.y, d.m, d.d = d.time().Date()
	return d
}

// FromTime returns the calendar day of t in t's location.
func FromTime(t time.Time) Date {
	return New(t.Date())
}

// Parse reads a Date from its strict ISO form ("2006-01-02").
func Parse(s string) (Date, error) {
	t, err := time.Parse(Format, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q (want %s): %w", s, Format, err)
	}
	return New(t.Date()), nil
}

// MustParse is Parse for literals in tests and fixtures. Panics on error.
func MustParse(s string) Date {
	d, err := Parse(s)
	if err != nil {
		panic(err.Error())
	}
	return d
}

// Today returns the current calendar day.
func Today() Date { return New(time.Now().Date()) }

func (d Date) time() time.Time {
	return time.Date(d.y, d.m, d.d, 0, 0, 0, 0, time.UTC)
}

// Year returns the year.
func (d Date) Year() int { return d.y }

// Month returns the month.
func (d Date) Month() time.Month { return d.m }

// Day returns the day of the month.
func (d Date) Day() int { return d.d }

// IsZero reports whether d is the zero Date.
func (d Date) IsZero() bool { return d == Date{} }

// Add returns the date days later (or earlier, if negative).
func (d Date) Add(days int) Date { return New(d.y, d.m, d.d+days) }

// Before reports whether d is before x.
func (d Date) Before(x Date) bool { return d.time().Before(x.time()) }

// After reports whether d is after x.
func (d Date) After(x Date) bool { return d.time().After(x.time()) }

// Compare returns -1, 0 or +1 ordering d against x.
func (d Date) Compare(x Date) int { return d.time().Compare(x.time()) }

// String formats the date in its ISO form.
func (d Date) String() string { return d.time().Format(Format) }

// MarshalJSON encodes the date as an ISO string.
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON decodes an ISO string date.
func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

var (
	_ json.Marshaler   = Date{}
	_ json.Unmarshaler = (*Date)(nil)
)
