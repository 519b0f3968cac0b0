package services

import (
	"context"
	"time"

	"github.com/dzoniops/booking-service/calendar"
	"github.com/dzoniops/booking-service/models"
	"github.com/dzoniops/booking-service/repository"
)

// Ledger reports how many units of a room are already taken.
type Ledger struct {
	store repository.ReservationRepository
}

func NewLedger(store repository.ReservationRepository) *Ledger {
	return &Ledger{store: store}
}

// PeakOccupancy returns, per room, the highest number of units booked on a
// single day by the reservations overlapping [from, to]. The maximum runs over
// every stored day of those reservations, not only the days inside [from, to],
// so a check can be stricter than the requested window requires.
func (l *Ledger) PeakOccupancy(
	ctx context.Context,
	roomID int64,
	from, to time.Time,
) (map[int64]int, error) {
	reservations, err := l.store.ListOverlapping(ctx, roomID, calendar.Day(from), calendar.Day(to))
	if err != nil {
		return nil, wrapError(Internal, err, "list overlapping reservations")
	}
	return PeakFor(reservations, roomID), nil
}

// PeakFor folds reservations into per-room peak occupancy. roomID 0 keeps every room.
func PeakFor(reservations []models.Reservation, roomID int64) map[int64]int {
	type slot struct {
		day  int64
		room int64
	}
	usage := make(map[slot]int)
	for _, r := range reservations {
		if r.Status.Cancelled() {
			continue
		}
		if roomID != 0 && r.RoomId != roomID {
			continue
		}
		for _, d := range r.Stay() {
			usage[slot{day: d.Unix(), room: r.RoomId}] += r.Rooms
		}
	}

	peak := make(map[int64]int)
	for s, units := range usage {
		if units > peak[s.room] {
			peak[s.room] = units
		}
	}
	return peak
}
