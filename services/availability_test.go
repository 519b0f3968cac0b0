package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dzoniops/booking-service/models"
)

func query(roomID int64, rooms int, from, to time.Time) models.AvailabilityQuery {
	return models.AvailabilityQuery{RoomId: roomID, Rooms: rooms, CheckIn: from, CheckOut: to}
}

func TestCheck_FullyBooked(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.book(t, 2, "01-01-2025", "05-01-2025")
	f.book(t, 1, "01-01-2025", "05-01-2025")

	for _, units := range []int{1, 2, 3} {
		_, err := f.svc.Checker().Check(ctx, query(f.room.ID, units, jan(1), jan(5)))
		assert.ErrorIs(t, err, ErrNoRoomsAvailable, "units=%d", units)
	}
}

func TestCheck_NonOverlappingRangesAreIndependent(t *testing.T) {
	f := newFixture(t)
	f.book(t, 3, "01-01-2025", "05-01-2025")

	a, err := f.svc.Checker().Check(context.Background(), query(f.room.ID, 3, jan(10), jan(15)))
	require.NoError(t, err)
	assert.Equal(t, 0, a.Peak)
	assert.Equal(t, 3, a.Free)
}

func TestCheck_SharedDayScenario(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.book(t, 2, "01-01-2025", "03-01-2025")

	_, err := f.svc.Checker().Check(ctx, query(f.room.ID, 2, jan(3), jan(5)))
	assert.ErrorIs(t, err, ErrInsufficientRooms)

	a, err := f.svc.Checker().Check(ctx, query(f.room.ID, 1, jan(3), jan(5)))
	require.NoError(t, err)
	assert.Equal(t, 2, a.Peak)
	assert.Equal(t, 1, a.Free)
}

func TestCheck_AdjacentStays(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.book(t, 3, "01-01-2025", "05-01-2025")

	_, err := f.svc.Checker().Check(ctx, query(f.room.ID, 1, jan(5), jan(7)))
	assert.ErrorIs(t, err, ErrNoRoomsAvailable, "check-out day is still booked")

	_, err = f.svc.Checker().Check(ctx, query(f.room.ID, 3, jan(6), jan(7)))
	assert.NoError(t, err)
}

func TestCheck_Rejections(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.svc.Checker().Check(ctx, query(f.room.ID, 4, jan(1), jan(2)))
	assert.ErrorIs(t, err, ErrCapacityExceeded)

	_, err = f.svc.Checker().Check(ctx, query(404, 1, jan(1), jan(2)))
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = f.svc.Checker().Check(ctx, query(f.room.ID, 1, jan(5), jan(2)))
	assert.ErrorIs(t, err, ErrValidation)

	_, err = f.svc.Checker().Check(ctx, query(f.room.ID, 0, jan(1), jan(2)))
	assert.ErrorIs(t, err, ErrValidation)
}

func TestCheck_CancelledDoesNotHoldInventory(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	r := f.book(t, 3, "01-01-2025", "05-01-2025")

	cancelled := models.StatusCancelled
	_, err := f.svc.Update(ctx, r.ID, UpdateReservation{Status: &cancelled}, owner)
	require.NoError(t, err)

	_, err = f.svc.Checker().Check(ctx, query(f.room.ID, 3, jan(1), jan(5)))
	assert.NoError(t, err)
}
