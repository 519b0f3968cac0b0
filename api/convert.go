// Package api maps between the booking.v1 wire messages and the domain types.
package api

//go:generate protoc -I . --go_out=. --go_opt=paths=source_relative --go-grpc_out=. --go-grpc_opt=paths=source_relative booking/v1/booking.proto

import (
	"time"

	"google.golang.org/protobuf/types/known/timestamppb"
	"gorm.io/datatypes"

	pb "github.com/dzoniops/booking-service/api/booking/v1"
	"github.com/dzoniops/booking-service/calendar"
	"github.com/dzoniops/booking-service/models"
	"github.com/dzoniops/booking-service/services"
)

// Day renders a calendar day as midnight UTC. The zero time maps to nil.
func Day(t time.Time) *timestamppb.Timestamp {
	if t.IsZero() {
		return nil
	}
	return timestamppb.New(calendar.Day(t))
}

// DayString formats a wire day the way the services validate it. A missing
// day becomes "", which the validators reject where a date is required.
func DayString(ts *timestamppb.Timestamp) string {
	if ts == nil {
		return ""
	}
	return calendar.Format(ts.AsTime())
}

func stamp(t time.Time) *timestamppb.Timestamp {
	if t.IsZero() {
		return nil
	}
	return timestamppb.New(t)
}

func GuestToPb(g models.GuestDetails) *pb.GuestDetails {
	return &pb.GuestDetails{Title: g.Title, FirstName: g.FirstName, LastName: g.LastName}
}

func GuestFromPb(g *pb.GuestDetails) models.GuestDetails {
	return models.GuestDetails{Title: g.GetTitle(), FirstName: g.GetFirstName(), LastName: g.GetLastName()}
}

func lineToPb(l models.LineItem) *pb.LineItem {
	return &pb.LineItem{Label: l.Label, Units: int32(l.Units), Rate: l.Rate, Total: l.Total}
}

func lineFromPb(l *pb.LineItem) models.LineItem {
	return models.LineItem{Label: l.GetLabel(), Units: int(l.GetUnits()), Rate: l.GetRate(), Total: l.GetTotal()}
}

func BreakdownToPb(b models.PriceBreakdown) *pb.PriceBreakdown {
	out := &pb.PriceBreakdown{
		Adults:         int32(b.Adults),
		Children:       int32(b.Children),
		TotalRooms:     int32(b.TotalRooms),
		TotalDays:      int32(b.TotalDays),
		Child:          lineToPb(b.Child),
		Single:         lineToPb(b.Single),
		Couple:         lineToPb(b.Couple),
		TotalRoomPrice: b.TotalRoomPrice,
		ExtrasTotal:    b.ExtrasTotal,
		TotalPerDay:    b.TotalPerDay,
		GrandTotal:     b.GrandTotal,
	}
	for _, e := range b.Extras {
		out.Extras = append(out.Extras, &pb.ExtraCharge{
			Facility:   e.Facility,
			Price:      e.Price,
			Single:     e.Single,
			TotalPrice: e.TotalPrice,
		})
	}
	return out
}

// BreakdownFromPb returns nil for a missing breakdown.
func BreakdownFromPb(b *pb.PriceBreakdown) *models.PriceBreakdown {
	if b == nil {
		return nil
	}
	out := &models.PriceBreakdown{
		Adults:         int(b.Adults),
		Children:       int(b.Children),
		TotalRooms:     int(b.TotalRooms),
		TotalDays:      int(b.TotalDays),
		Child:          lineFromPb(b.Child),
		Single:         lineFromPb(b.Single),
		Couple:         lineFromPb(b.Couple),
		TotalRoomPrice: b.TotalRoomPrice,
		ExtrasTotal:    b.ExtrasTotal,
		TotalPerDay:    b.TotalPerDay,
		GrandTotal:     b.GrandTotal,
	}
	for _, e := range b.Extras {
		out.Extras = append(out.Extras, models.ExtraCharge{
			Facility:   e.GetFacility(),
			Price:      e.GetPrice(),
			Single:     e.GetSingle(),
			TotalPrice: e.GetTotalPrice(),
		})
	}
	return out
}

func ReservationToPb(r *models.Reservation) *pb.Reservation {
	out := &pb.Reservation{
		Id:             r.ID,
		RoomId:         r.RoomId,
		PropertyId:     r.PropertyId,
		UserId:         r.UserId,
		Rooms:          int32(r.Rooms),
		BookingDate:    stamp(r.BookingDate),
		CheckIn:        Day(r.CheckIn),
		CheckOut:       Day(r.CheckOut),
		Status:         string(r.Status),
		PaymentStatus:  string(r.PaymentStatus),
		Mode:           string(r.Mode),
		Type:           r.Type,
		BookedBy:       r.BookedBy,
		Email:          r.Email,
		Phone:          r.Phone,
		GuestDetails:   GuestToPb(r.GuestDetails),
		PriceBreakdown: BreakdownToPb(r.PriceBreakdown.Data()),
		GrandTotal:     r.GrandTotal,
	}
	for _, d := range r.Stay() {
		out.BookedDates = append(out.BookedDates, Day(d))
	}
	if r.Feedback != nil {
		out.Feedback = &pb.Feedback{
			Rating:    r.Feedback.Rating,
			Review:    r.Feedback.Review,
			GuestName: r.Feedback.GuestName,
			CreatedAt: stamp(r.Feedback.CreatedAt),
		}
	}
	return out
}

func ReservationsToPb(in []models.Reservation) []*pb.Reservation {
	reservations := make([]*pb.Reservation, len(in))
	for i := range in {
		reservations[i] = ReservationToPb(&in[i])
	}
	return reservations
}

func AvailabilityToPb(a *models.Availability) *pb.Availability {
	return &pb.Availability{
		RoomId: a.RoomId,
		Count:  int32(a.Count),
		Peak:   int32(a.Peak),
		Free:   int32(a.Free),
	}
}

func PaymentsToPb(p services.PaymentSummary) *pb.PaymentSummary {
	return &pb.PaymentSummary{Expected: p.Expected, Collected: p.Collected, Due: p.Due}
}

func OverviewToPb(ov services.Overview) *pb.Overview {
	return &pb.Overview{
		TotalReservations: int32(ov.TotalReservations),
		Upcoming:          ReservationsToPb(ov.Upcoming),
		Booked:            ReservationsToPb(ov.Booked),
		Confirmed:         ReservationsToPb(ov.Confirmed),
		Today:             ReservationsToPb(ov.Today),
		Active:            ReservationsToPb(ov.Active),
		Past:              ReservationsToPb(ov.Past),
		Offline:           ReservationsToPb(ov.Offline),
		Online:            ReservationsToPb(ov.Online),
	}
}

func QuoteFromPb(req *pb.QuoteRequest) services.QuoteRequest {
	return services.QuoteRequest{
		Adults:     int(req.Adults),
		Children:   int(req.Children),
		TotalRooms: int(req.TotalRooms),
		TotalDays:  int(req.TotalDays),
		CheckIn:    DayString(req.CheckIn),
		CheckOut:   DayString(req.CheckOut),
		Extras:     req.Extras,
	}
}

func CreateFromPb(req *pb.CreateReservationRequest) services.CreateReservation {
	return services.CreateReservation{
		RoomId:         req.RoomId,
		UserId:         req.UserId,
		Rooms:          int(req.Rooms),
		CheckIn:        DayString(req.CheckIn),
		CheckOut:       DayString(req.CheckOut),
		Mode:           models.BookingMode(req.Mode),
		Email:          req.Email,
		Phone:          req.Phone,
		GuestDetails:   GuestFromPb(req.GuestDetails),
		Adults:         int(req.Adults),
		Children:       int(req.Children),
		TotalDays:      int(req.TotalDays),
		Extras:         req.Extras,
		PriceBreakdown: BreakdownFromPb(req.PriceBreakdown),
	}
}

// UpdateFromPb keeps unset wire fields nil so they are left untouched.
func UpdateFromPb(req *pb.UpdateReservationRequest) services.UpdateReservation {
	var patch services.UpdateReservation
	if req.CheckIn != nil {
		in := DayString(req.CheckIn)
		patch.CheckIn = &in
	}
	if req.CheckOut != nil {
		out := DayString(req.CheckOut)
		patch.CheckOut = &out
	}
	if req.Rooms != nil {
		rooms := int(req.Rooms.GetValue())
		patch.Rooms = &rooms
	}
	if req.Status != nil {
		st := models.ReservationStatus(req.Status.GetValue())
		patch.Status = &st
	}
	if req.PaymentStatus != nil {
		ps := models.PaymentStatus(req.PaymentStatus.GetValue())
		patch.PaymentStatus = &ps
	}
	if req.Email != nil {
		email := req.Email.GetValue()
		patch.Email = &email
	}
	if req.Phone != nil {
		phone := req.Phone.GetValue()
		patch.Phone = &phone
	}
	if req.GuestDetails != nil {
		g := GuestFromPb(req.GuestDetails)
		patch.GuestDetails = &g
	}
	if req.Feedback != nil {
		patch.Feedback = &services.FeedbackInput{
			Rating:    req.Feedback.Rating,
			Review:    req.Feedback.Review,
			GuestName: req.Feedback.GuestName,
		}
	}
	return patch
}

func FilterFromPb(req *pb.ListReservationsRequest) models.ReservationFilter {
	return models.ReservationFilter{
		UserId:     req.UserId,
		PropertyId: req.PropertyId,
		OwnerId:    req.OwnerId,
		RoomId:     req.RoomId,
	}
}

func RoomToPb(r *models.Room) *pb.Room {
	return &pb.Room{
		Id:               r.ID,
		PropertyId:       r.PropertyId,
		Type:             r.Type,
		BedConfiguration: r.BedConfiguration,
		Facilities:       r.Facilities.Data(),
		PriceSingle:      r.Price.Single,
		PriceCouple:      r.Price.Couple,
		PriceChild:       r.Price.Child,
		Count:            int32(r.Count),
		Images:           r.Images.Data(),
	}
}

func RoomFromPb(r *pb.Room) *models.Room {
	return &models.Room{
		ID:               r.Id,
		PropertyId:       r.PropertyId,
		Type:             r.Type,
		BedConfiguration: r.BedConfiguration,
		Facilities:       datatypes.NewJSONType(r.Facilities),
		Price: models.RoomPrice{
			Single: r.PriceSingle,
			Couple: r.PriceCouple,
			Child:  r.PriceChild,
		},
		Count:  int(r.Count),
		Images: datatypes.NewJSONType(r.Images),
	}
}

func PropertyToPb(p *models.Property) *pb.Property {
	out := &pb.Property{
		Id:            p.ID,
		Name:          p.Name,
		OwnedBy:       p.OwnedBy,
		AverageRating: p.AverageRating,
		RatingCount:   int32(p.RatingCount),
	}
	for _, e := range p.Extras {
		out.Extras = append(out.Extras, &pb.Extra{Id: e.ID, Facility: e.Facility, Price: e.Price, Single: e.Single})
	}
	return out
}

func PropertyFromPb(p *pb.Property) *models.Property {
	out := &models.Property{
		ID:            p.Id,
		Name:          p.Name,
		OwnedBy:       p.OwnedBy,
		AverageRating: p.AverageRating,
		RatingCount:   int(p.RatingCount),
	}
	for _, e := range p.Extras {
		out.Extras = append(out.Extras, models.Extra{
			ID:         e.Id,
			PropertyId: p.Id,
			Facility:   e.Facility,
			Price:      e.Price,
			Single:     e.Single,
		})
	}
	return out
}
