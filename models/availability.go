package models

import (
	"time"

	"github.com/dzoniops/booking-service/calendar"
)

// AvailabilityQuery asks whether Rooms units of a room are free on every day
// of [CheckIn, CheckOut].
type AvailabilityQuery struct {
	RoomId   int64     `json:"room_id"   validate:"gt=0"`
	Rooms    int       `json:"rooms"     validate:"gte=1"`
	CheckIn  time.Time `json:"check_in"  validate:"required"`
	CheckOut time.Time `json:"check_out" validate:"required,gtefield=CheckIn"`
}

func (q AvailabilityQuery) Range() calendar.Range {
	return calendar.Range{Start: calendar.Day(q.CheckIn), End: calendar.Day(q.CheckOut)}
}

// Availability is an accepted check: Peak units are already taken on the
// busiest overlapping day, Free = Count - Peak.
type Availability struct {
	RoomId int64 `json:"room_id"`
	Count  int   `json:"count"`
	Peak   int   `json:"peak"`
	Free   int   `json:"free"`
}
