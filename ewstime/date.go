package ewstime

import (
	"fmt"
	"time"
)

// Date is a plain calendar date with no timezone; no ambiguity is possible.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// NewDate builds a Date, normalizing out-of-range fields the way time.Date
// does (e.g. month 13 rolls into the next year).
func NewDate(year int, month time.Month, day int) Date {
	y, m, d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC).Date()
	return Date{Year: y, Month: m, Day: d}
}

// ParseDate parses the wire format YYYY-MM-DD. A trailing Z or ±HH:MM is
// accepted but discarded: dates carry no timezone in this model, the suffix
// exists only because some servers echo one back.
func ParseDate(s string) (Date, error) {
	core := s
	if len(core) > 0 && core[len(core)-1] == 'Z' {
		core = core[:len(core)-1]
	} else if hasDesignator(core) {
		core = core[:len(core)-6]
	}
	t, err := time.Parse("2006-01-02", core)
	if err != nil {
		return Date{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}, nil
}

// EWSFormat renders the wire format YYYY-MM-DD.
func (d Date) EWSFormat() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

func (d Date) String() string { return d.EWSFormat() }

// midnight is the date at 00:00 UTC, the anchor for date arithmetic.
func (d Date) midnight() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// Add returns the date shifted by a duration; fractions of a day truncate
// toward the start of the resulting day.
func (d Date) Add(dur time.Duration) Date {
	y, m, day := d.midnight().Add(dur).Date()
	return Date{Year: y, Month: m, Day: day}
}

// AddDays returns the date shifted by n calendar days.
func (d Date) AddDays(n int) Date {
	y, m, day := d.midnight().AddDate(0, 0, n).Date()
	return Date{Year: y, Month: m, Day: day}
}

// Sub returns the difference d - o as a duration (a whole number of days).
func (d Date) Sub(o Date) time.Duration {
	return d.midnight().Sub(o.midnight())
}

// Equal reports whether both dates name the same day.
func (d Date) Equal(o Date) bool { return d == o }

// Before reports whether d precedes o.
func (d Date) Before(o Date) bool { return d.midnight().Before(o.midnight()) }

// After reports whether d follows o.
func (d Date) After(o Date) bool { return d.midnight().After(o.midnight()) }

// Compare orders two dates: -1, 0 or +1.
func (d Date) Compare(o Date) int { return d.midnight().Compare(o.midnight()) }
