package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/dzoniops/booking-service/calendar"
	"github.com/dzoniops/booking-service/models"
)

func stay(roomID int64, rooms int, from, to time.Time, status models.ReservationStatus) models.Reservation {
	r := models.Reservation{RoomId: roomID, Rooms: rooms, CheckIn: from, CheckOut: to, Status: status}
	r.SetBookedDates(calendar.Range{Start: from, End: to}.Days())
	return r
}

func jan(d int) time.Time {
	return time.Date(2025, time.January, d, 0, 0, 0, 0, time.UTC)
}

func TestPeakFor_SumsPerDayAndTakesMax(t *testing.T) {
	reservations := []models.Reservation{
		stay(1, 2, jan(1), jan(3), models.StatusBooked),
		stay(1, 1, jan(3), jan(5), models.StatusConfirmed),
		stay(1, 1, jan(4), jan(4), models.StatusCheckIn),
		stay(2, 3, jan(1), jan(2), models.StatusBooked),
	}

	assert.Equal(t, map[int64]int{1: 3}, PeakFor(reservations, 1))
	assert.Equal(t, map[int64]int{1: 3, 2: 3}, PeakFor(reservations, 0))
}

func TestPeakFor_IgnoresCancelled(t *testing.T) {
	reservations := []models.Reservation{
		stay(1, 2, jan(1), jan(3), models.StatusBooked),
		stay(1, 5, jan(2), jan(2), models.StatusCancelled),
	}
	assert.Equal(t, 2, PeakFor(reservations, 1)[1])
}

func TestPeakFor_ExpandsRangeWithoutStoredDates(t *testing.T) {
	r := models.Reservation{RoomId: 1, Rooms: 2, CheckIn: jan(1), CheckOut: jan(2), Status: models.StatusBooked}
	other := stay(1, 1, jan(2), jan(6), models.StatusBooked)
	assert.Equal(t, 3, PeakFor([]models.Reservation{r, other}, 1)[1])
}

func TestPeakFor_Empty(t *testing.T) {
	assert.Empty(t, PeakFor(nil, 1))
}
