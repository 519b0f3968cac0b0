// Package calendar works with whole calendar days. Every value it returns is
// midnight UTC so that days compare with ==, Before and After.
package calendar

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

const (
	// Layout is the day format accepted from clients (DD-MM-YYYY).
	Layout = "02-01-2006"
	// MaxStayNights bounds a single stay.
	MaxStayNights = 365
)

var (
	ErrInvalidRange = errors.New("check-out must not be before check-in")
	ErrStayTooLong  = fmt.Errorf("stay must not exceed %d nights", MaxStayNights)
)

// Day truncates t to midnight UTC of its calendar date.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Parse reads a DD-MM-YYYY day. ISO dates (YYYY-MM-DD) are accepted too.
func Parse(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	t, err := time.Parse(Layout, s)
	if err == nil {
		return t, nil
	}
	if iso, isoErr := time.Parse(time.DateOnly, s); isoErr == nil {
		return iso, nil
	}
	return time.Time{}, err
}

// Format renders a day in the client layout.
func Format(t time.Time) string {
	return Day(t).Format(Layout)
}

// Range is an inclusive span of days [Start, End].
type Range struct {
	Start time.Time
	End   time.Time
}

func NewRange(start, end time.Time) (Range, error) {
	start, end = Day(start), Day(end)
	if end.Before(start) {
		return Range{}, ErrInvalidRange
	}
	if DaysBetween(start, end) > MaxStayNights {
		return Range{}, ErrStayTooLong
	}
	return Range{Start: start, End: end}, nil
}

// Days lists every day from Start to End, both included.
func (r Range) Days() []time.Time {
	if r.End.Before(r.Start) {
		return nil
	}
	days := make([]time.Time, 0, DaysBetween(r.Start, r.End)+1)
	for cur := r.Start; !cur.After(r.End); cur = cur.AddDate(0, 0, 1) {
		days = append(days, cur)
	}
	return days
}

// Nights is the number of nights in the stay, at least one.
func (r Range) Nights() int {
	if n := DaysBetween(r.Start, r.End); n > 0 {
		return n
	}
	return 1
}

// Overlaps reports whether two inclusive ranges share at least one day.
func (r Range) Overlaps(o Range) bool {
	return !r.Start.After(o.End) && !o.Start.After(r.End)
}

func (r Range) Contains(day time.Time) bool {
	day = Day(day)
	return !day.Before(r.Start) && !day.After(r.End)
}

// DaysBetween counts whole calendar days from a to b; negative when b is before a.
// It works on day numbers, so any pair of years is in range.
func DaysBetween(a, b time.Time) int {
	return julianDay(b) - julianDay(a)
}

// julianDay is the Julian day number of t's calendar date.
func julianDay(t time.Time) int {
	y, m, d := t.Date()
	a := (14 - int(m)) / 12
	yy := y + 4800 - a
	mm := int(m) + 12*a - 3
	return d + (153*mm+2)/5 + 365*yy + yy/4 - yy/100 + yy/400 - 32045
}
