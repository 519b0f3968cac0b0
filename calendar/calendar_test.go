package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestParse(t *testing.T) {
	got, err := Parse("05-01-2025")
	require.NoError(t, err)
	assert.Equal(t, day(2025, time.January, 5), got)

	got, err = Parse("2025-01-05")
	require.NoError(t, err)
	assert.Equal(t, day(2025, time.January, 5), got)

	_, err = Parse("31-02-2025")
	assert.Error(t, err)

	_, err = Parse("yesterday")
	assert.Error(t, err)
}

func TestDay_DropsClockAndZone(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*60*60)
	in := time.Date(2025, time.March, 10, 23, 30, 0, 0, loc)
	assert.Equal(t, day(2025, time.March, 10), Day(in))
}

func TestRange_DaysInclusive(t *testing.T) {
	r, err := NewRange(day(2025, time.January, 30), day(2025, time.February, 2))
	require.NoError(t, err)

	days := r.Days()
	require.Len(t, days, 4)
	assert.Equal(t, day(2025, time.January, 30), days[0])
	assert.Equal(t, day(2025, time.February, 2), days[3])
	assert.Equal(t, 3, r.Nights())
}

func TestRange_SingleDay(t *testing.T) {
	r, err := NewRange(day(2025, time.June, 1), day(2025, time.June, 1))
	require.NoError(t, err)
	assert.Len(t, r.Days(), 1)
	assert.Equal(t, 1, r.Nights())
}

func TestNewRange_Reversed(t *testing.T) {
	_, err := NewRange(day(2025, time.June, 2), day(2025, time.June, 1))
	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestRange_Overlaps(t *testing.T) {
	a := Range{Start: day(2025, 1, 1), End: day(2025, 1, 5)}

	assert.True(t, a.Overlaps(Range{Start: day(2025, 1, 5), End: day(2025, 1, 8)}), "touching end is shared day")
	assert.True(t, a.Overlaps(Range{Start: day(2024, 12, 1), End: day(2025, 2, 1)}), "enclosing range")
	assert.False(t, a.Overlaps(Range{Start: day(2025, 1, 6), End: day(2025, 1, 8)}))
	assert.True(t, a.Contains(day(2025, 1, 3)))
	assert.False(t, a.Contains(day(2025, 1, 6)))
}

func TestDaysBetween(t *testing.T) {
	assert.Equal(t, 91, DaysBetween(day(2025, 1, 1), day(2025, 4, 2)))
	assert.Equal(t, -1, DaysBetween(day(2025, 1, 2), day(2025, 1, 1)))
	assert.Equal(t, 366, DaysBetween(day(2024, 1, 1), day(2025, 1, 1)), "leap year")
	assert.Equal(t, 1, DaysBetween(time.Date(2025, 3, 30, 23, 59, 0, 0, time.UTC), day(2025, 3, 31)))
	assert.Equal(t, 739251, DaysBetween(day(1, 1, 1), day(2025, 1, 1)))
	assert.Equal(t, 2912642, DaysBetween(day(2025, 6, 15), day(9999, 12, 31)))
}

func TestNewRange_MaxStay(t *testing.T) {
	r, err := NewRange(day(2025, 6, 15), day(2026, 6, 15))
	require.NoError(t, err)
	assert.Equal(t, MaxStayNights, r.Nights())

	_, err = NewRange(day(2025, 6, 15), day(2026, 6, 16))
	assert.ErrorIs(t, err, ErrStayTooLong)

	_, err = NewRange(day(2025, 6, 15), day(9999, 12, 31))
	assert.ErrorIs(t, err, ErrStayTooLong)
}
