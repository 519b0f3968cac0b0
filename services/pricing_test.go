package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dzoniops/booking-service/models"
)

var scenarioRoom = &models.Room{
	ID:    1,
	Count: 3,
	Price: models.RoomPrice{Single: 1000, Couple: 1800, Child: 500},
}

func TestQuote_Scenario(t *testing.T) {
	b, err := Quote(scenarioRoom, QuoteInput{
		Adults:     4,
		Children:   2,
		TotalRooms: 3,
		TotalDays:  2,
		Extras:     []models.Extra{{Facility: "wifi", Price: 200, Single: true}},
	})
	require.NoError(t, err)

	assert.Equal(t, 1, b.Child.Units)
	assert.Equal(t, 500.0, b.Child.Total)
	assert.Equal(t, 2, b.Single.Units)
	assert.Equal(t, 2000.0, b.Single.Total)
	assert.Equal(t, 1, b.Couple.Units)
	assert.Equal(t, 1800.0, b.Couple.Total)
	assert.Equal(t, 4300.0, b.TotalRoomPrice)
	require.Len(t, b.Extras, 1)
	assert.Equal(t, 200.0, b.Extras[0].TotalPrice)
	assert.Equal(t, 4500.0, b.TotalPerDay)
	assert.Equal(t, 9000.0, b.GrandTotal)
}

func TestQuote_IsPure(t *testing.T) {
	in := QuoteInput{
		Adults:     3,
		Children:   3,
		TotalRooms: 2,
		TotalDays:  4,
		Extras:     []models.Extra{{Facility: "breakfast", Price: 150}},
	}
	first, err := Quote(scenarioRoom, in)
	require.NoError(t, err)
	second, err := Quote(scenarioRoom, in)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestQuote_OccupancyBoundaries(t *testing.T) {
	b, err := Quote(scenarioRoom, QuoteInput{Adults: 3, TotalRooms: 3, TotalDays: 1})
	require.NoError(t, err)
	assert.Zero(t, b.Couple.Total)
	assert.Equal(t, 3, b.Single.Units)

	b, err = Quote(scenarioRoom, QuoteInput{Adults: 4, TotalRooms: 3, TotalDays: 1})
	require.NoError(t, err)
	assert.Equal(t, 1, b.Couple.Units)
	assert.Equal(t, 2, b.Single.Units)

	b, err = Quote(scenarioRoom, QuoteInput{Adults: 6, TotalRooms: 3, TotalDays: 1})
	require.NoError(t, err)
	assert.Equal(t, 3, b.Couple.Units)
	assert.Zero(t, b.Single.Units)

	b, err = Quote(scenarioRoom, QuoteInput{Adults: 1, TotalRooms: 2, TotalDays: 1})
	require.NoError(t, err)
	assert.Equal(t, 2000.0, b.Single.Total, "every room billed as single")

	_, err = Quote(scenarioRoom, QuoteInput{Adults: 7, TotalRooms: 3, TotalDays: 1})
	assert.ErrorIs(t, err, ErrInvalidOccupancy)
}

func TestQuote_ChildUnitsRoundUp(t *testing.T) {
	b, err := Quote(scenarioRoom, QuoteInput{Adults: 1, Children: 3, TotalRooms: 1, TotalDays: 1})
	require.NoError(t, err)
	assert.Equal(t, 2, b.Child.Units)
	assert.Equal(t, 1000.0, b.Child.Total)

	b, err = Quote(scenarioRoom, QuoteInput{Adults: 1, TotalRooms: 1, TotalDays: 1})
	require.NoError(t, err)
	assert.Zero(t, b.Child.Units)
	assert.Equal(t, "Children accommodation in 0 rooms", b.Child.Label)
}

func TestQuote_PerPersonExtras(t *testing.T) {
	b, err := Quote(scenarioRoom, QuoteInput{
		Adults:     2,
		Children:   1,
		TotalRooms: 2,
		TotalDays:  3,
		Extras: []models.Extra{
			{Facility: "breakfast", Price: 150},
			{Facility: "parking", Price: 100, Single: true},
		},
	})
	require.NoError(t, err)
	require.Len(t, b.Extras, 2)
	assert.Equal(t, 450.0, b.Extras[0].TotalPrice)
	assert.Equal(t, 100.0, b.Extras[1].TotalPrice)
	assert.Equal(t, 550.0, b.ExtrasTotal)
	// 500 child + 2000 single + 550 extras
	assert.Equal(t, 3050.0, b.TotalPerDay)
	assert.Equal(t, 9150.0, b.GrandTotal)
}

func TestQuote_Validation(t *testing.T) {
	cases := []QuoteInput{
		{Adults: 1, TotalRooms: 0, TotalDays: 1},
		{Adults: 1, TotalRooms: 1, TotalDays: 0},
		{Adults: -1, TotalRooms: 1, TotalDays: 1},
		{Adults: 1, TotalRooms: 1, TotalDays: 1, Extras: []models.Extra{{Facility: "spa", Price: -5}}},
	}
	for _, in := range cases {
		_, err := Quote(scenarioRoom, in)
		assert.ErrorIs(t, err, ErrValidation, "%+v", in)
	}

	_, err := Quote(&models.Room{Price: models.RoomPrice{Single: -1}}, QuoteInput{TotalRooms: 1, TotalDays: 1})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestPricer_QuoteRoom(t *testing.T) {
	f := newFixture(t)
	p := NewPricer(f.catalog, nil)
	ctx := context.Background()

	b, err := p.QuoteRoom(ctx, f.room.ID, QuoteRequest{
		Adults:     4,
		Children:   2,
		TotalRooms: 3,
		CheckIn:    "01-07-2025",
		CheckOut:   "03-07-2025",
		Extras:     []string{"wifi"},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, b.TotalDays)
	assert.Equal(t, 9000.0, b.GrandTotal)

	_, err = p.QuoteRoom(ctx, f.room.ID, QuoteRequest{Adults: 1, TotalRooms: 1, TotalDays: 1, Extras: []string{"spa"}})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = p.QuoteRoom(ctx, 999, QuoteRequest{Adults: 1, TotalRooms: 1, TotalDays: 1})
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = p.QuoteRoom(ctx, f.room.ID, QuoteRequest{Adults: 1, TotalRooms: 1})
	assert.ErrorIs(t, err, ErrValidation, "no days and no dates")

	_, err = p.QuoteRoom(ctx, f.room.ID, QuoteRequest{Adults: 1, TotalRooms: 1, CheckIn: "05-07-2025", CheckOut: "01-07-2025"})
	assert.ErrorIs(t, err, ErrValidation)
}
