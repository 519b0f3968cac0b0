package services

import (
	"time"

	"github.com/dzoniops/booking-service/calendar"
)

// Clock supplies the current time.
type Clock interface {
	Now() time.Time
}

type ClockFunc func() time.Time

func (f ClockFunc) Now() time.Time { return f() }

var SystemClock Clock = ClockFunc(time.Now)

func today(c Clock) time.Time {
	return calendar.Day(c.Now())
}
