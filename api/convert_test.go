package api

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/timestamppb"
	"google.golang.org/protobuf/types/known/wrapperspb"
	"gorm.io/datatypes"

	pb "github.com/dzoniops/booking-service/api/booking/v1"
	"github.com/dzoniops/booking-service/calendar"
	"github.com/dzoniops/booking-service/models"
)

func day(m time.Month, d int) time.Time {
	return time.Date(2025, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDayString(t *testing.T) {
	assert.Equal(t, "01-07-2025", DayString(timestamppb.New(day(7, 1))))
	assert.Equal(t, "01-07-2025", DayString(timestamppb.New(day(7, 1).Add(23*time.Hour))))
	assert.Empty(t, DayString(nil))
	assert.Nil(t, Day(time.Time{}))
	assert.Equal(t, day(7, 1), Day(day(7, 1).Add(5*time.Hour)).AsTime())
}

func TestReservationToPb(t *testing.T) {
	r := &models.Reservation{
		ID:            7,
		RoomId:        3,
		PropertyId:    2,
		UserId:        30,
		Rooms:         2,
		CheckIn:       day(7, 1),
		CheckOut:      day(7, 3),
		Status:        models.StatusConfirmed,
		PaymentStatus: models.PaymentPaid,
		Mode:          models.ModeOnline,
		GuestDetails:  models.GuestDetails{FirstName: "Ana", LastName: "Petrovic"},
		PriceBreakdown: datatypes.NewJSONType(models.PriceBreakdown{
			Adults:     2,
			Couple:     models.LineItem{Label: "couple", Units: 1, Rate: 1800, Total: 1800},
			Extras:     []models.ExtraCharge{{Facility: "wifi", Price: 200, Single: true, TotalPrice: 200}},
			GrandTotal: 6000,
		}),
		GrandTotal: 6000,
		Feedback:   &models.Feedback{Rating: 4, Review: "quiet"},
	}
	r.SetBookedDates(calendar.Range{Start: r.CheckIn, End: r.CheckOut}.Days())

	out := ReservationToPb(r)
	assert.Equal(t, int64(7), out.Id)
	assert.Equal(t, int32(2), out.Rooms)
	assert.Equal(t, "confirmed", out.Status)
	assert.Equal(t, "paid", out.PaymentStatus)
	assert.Equal(t, day(7, 1), out.CheckIn.AsTime())
	require.Len(t, out.BookedDates, 3)
	assert.Equal(t, day(7, 3), out.BookedDates[2].AsTime())
	assert.Equal(t, "Ana", out.GuestDetails.FirstName)
	assert.Equal(t, int32(1), out.PriceBreakdown.Couple.Units)
	require.Len(t, out.PriceBreakdown.Extras, 1)
	assert.Equal(t, 4.0, out.Feedback.Rating)
	assert.Nil(t, out.BookingDate)

	// survives the wire
	data, err := proto.Marshal(out)
	require.NoError(t, err)
	var back pb.Reservation
	require.NoError(t, proto.Unmarshal(data, &back))
	assert.True(t, proto.Equal(out, &back))

	assert.Equal(t, *BreakdownFromPb(out.PriceBreakdown), r.PriceBreakdown.Data())
}

func TestCreateFromPb(t *testing.T) {
	req := CreateFromPb(&pb.CreateReservationRequest{
		RoomId:   3,
		Rooms:    1,
		CheckIn:  timestamppb.New(day(7, 1)),
		CheckOut: timestamppb.New(day(7, 3)),
		Mode:     "offline",
		Adults:   2,
		Extras:   []string{"wifi"},
	})
	assert.Equal(t, "01-07-2025", req.CheckIn)
	assert.Equal(t, "03-07-2025", req.CheckOut)
	assert.Equal(t, models.ModeOffline, req.Mode)
	assert.Equal(t, 2, req.Adults)
	assert.Nil(t, req.PriceBreakdown)

	missing := CreateFromPb(&pb.CreateReservationRequest{RoomId: 3})
	assert.Empty(t, missing.CheckIn)
}

func TestUpdateFromPb(t *testing.T) {
	empty := UpdateFromPb(&pb.UpdateReservationRequest{Id: 1})
	assert.Nil(t, empty.CheckIn)
	assert.Nil(t, empty.Rooms)
	assert.Nil(t, empty.Email)
	assert.Nil(t, empty.Feedback)

	patch := UpdateFromPb(&pb.UpdateReservationRequest{
		Id:            1,
		CheckOut:      timestamppb.New(day(7, 5)),
		Rooms:         wrapperspb.Int32(3),
		PaymentStatus: wrapperspb.String("paid"),
		Email:         wrapperspb.String(""),
		Feedback:      &pb.FeedbackInput{Rating: 5, Review: "great"},
	})
	require.NotNil(t, patch.CheckOut)
	assert.Equal(t, "05-07-2025", *patch.CheckOut)
	assert.Nil(t, patch.CheckIn)
	assert.Equal(t, 3, *patch.Rooms)
	assert.Equal(t, models.PaymentPaid, *patch.PaymentStatus)
	require.NotNil(t, patch.Email, "an explicit empty email clears it")
	assert.Empty(t, *patch.Email)
	assert.Equal(t, 5.0, patch.Feedback.Rating)
}

func TestCatalogMapping(t *testing.T) {
	room := &models.Room{
		ID:         4,
		PropertyId: 2,
		Type:       "deluxe",
		Facilities: datatypes.NewJSONType([]string{"tv"}),
		Price:      models.RoomPrice{Single: 1000, Couple: 1800, Child: 500},
		Count:      3,
	}
	got := RoomFromPb(RoomToPb(room))
	assert.Equal(t, room.Price, got.Price)
	assert.Equal(t, 3, got.Count)
	assert.Equal(t, []string{"tv"}, got.Facilities.Data())

	property := &models.Property{
		ID:            2,
		Name:          "Seaside",
		OwnedBy:       10,
		AverageRating: 4.5,
		RatingCount:   2,
		Extras:        []models.Extra{{ID: 1, PropertyId: 2, Facility: "wifi", Price: 200, Single: true}},
	}
	assert.Equal(t, property, PropertyFromPb(PropertyToPb(property)))
}
