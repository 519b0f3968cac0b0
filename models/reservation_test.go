package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReservation_StayFromBookedDates(t *testing.T) {
	r := Reservation{RoomId: 7, Rooms: 2}
	days := []time.Time{
		time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC),
	}
	r.SetBookedDates(days)

	require.Len(t, r.BookedDates, 2)
	assert.Equal(t, int64(7), r.BookedDates[0].RoomId)
	assert.Equal(t, 2, r.BookedDates[1].Rooms)
	assert.Equal(t, days, r.Stay())
}

func TestReservation_StayFallsBackToRange(t *testing.T) {
	r := Reservation{
		CheckIn:  time.Date(2025, 3, 30, 15, 0, 0, 0, time.UTC),
		CheckOut: time.Date(2025, 4, 1, 10, 0, 0, 0, time.UTC),
	}
	stay := r.Stay()
	require.Len(t, stay, 3)
	assert.Equal(t, time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC), stay[2])
}

func TestGuestDetails_FullName(t *testing.T) {
	assert.Equal(t, "Ms Ana Petrovic", GuestDetails{Title: "Ms", FirstName: "Ana", LastName: "Petrovic"}.FullName())
	assert.Equal(t, "Ana", GuestDetails{FirstName: "Ana"}.FullName())
	assert.Equal(t, "", GuestDetails{}.FullName())
}

func TestProperty_FindExtra(t *testing.T) {
	p := Property{Extras: []Extra{{Facility: "wifi", Price: 200, Single: true}}}
	e, ok := p.FindExtra("wifi")
	require.True(t, ok)
	assert.Equal(t, 200.0, e.Price)
	_, ok = p.FindExtra("spa")
	assert.False(t, ok)
}
