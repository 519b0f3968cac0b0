package server

import (
	"bytes"
	"context"
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"

	"github.com/dzoniops/booking-service/api"
	pb "github.com/dzoniops/booking-service/api/booking/v1"
	"github.com/dzoniops/booking-service/models"
	"github.com/dzoniops/booking-service/services"
)

// ReservationServer exposes the reservation services over gRPC.
type ReservationServer struct {
	pb.UnimplementedReservationServiceServer
	Reservations *services.ReservationService
	Dashboard    *services.Dashboard
	Exporter     *services.Exporter
}

var _ pb.ReservationServiceServer = (*ReservationServer)(nil)

func (s *ReservationServer) CheckAvailability(
	ctx context.Context,
	req *pb.CheckAvailabilityRequest,
) (*pb.Availability, error) {
	if req.CheckIn == nil || req.CheckOut == nil {
		return nil, status.Error(codes.InvalidArgument, "check_in and check_out are required")
	}
	av, err := s.Reservations.Checker().Check(ctx, models.AvailabilityQuery{
		RoomId:   req.RoomId,
		Rooms:    int(req.Rooms),
		CheckIn:  req.CheckIn.AsTime(),
		CheckOut: req.CheckOut.AsTime(),
	})
	if err != nil {
		return nil, toStatus(err)
	}
	return api.AvailabilityToPb(av), nil
}

func (s *ReservationServer) Quote(ctx context.Context, req *pb.QuoteRequest) (*pb.PriceBreakdown, error) {
	b, err := s.Reservations.Pricer().QuoteRoom(ctx, req.RoomId, api.QuoteFromPb(req))
	if err != nil {
		return nil, toStatus(err)
	}
	return api.BreakdownToPb(*b), nil
}

func (s *ReservationServer) CreateReservation(
	ctx context.Context,
	req *pb.CreateReservationRequest,
) (*pb.Reservation, error) {
	actor, err := callerOf(ctx)
	if err != nil {
		return nil, err
	}
	r, err := s.Reservations.Create(ctx, actor, api.CreateFromPb(req))
	if err != nil {
		return nil, toStatus(err)
	}
	return api.ReservationToPb(r), nil
}

func (s *ReservationServer) GetReservation(ctx context.Context, req *pb.IdRequest) (*pb.Reservation, error) {
	actor, err := callerOf(ctx)
	if err != nil {
		return nil, err
	}
	r, err := s.Reservations.View(ctx, req.Id, actor)
	if err != nil {
		return nil, toStatus(err)
	}
	return api.ReservationToPb(r), nil
}

func (s *ReservationServer) UpdateReservation(
	ctx context.Context,
	req *pb.UpdateReservationRequest,
) (*pb.Reservation, error) {
	actor, err := callerOf(ctx)
	if err != nil {
		return nil, err
	}
	r, err := s.Reservations.Update(ctx, req.Id, api.UpdateFromPb(req), actor)
	if err != nil {
		return nil, toStatus(err)
	}
	return api.ReservationToPb(r), nil
}

func (s *ReservationServer) DeleteReservation(ctx context.Context, req *pb.IdRequest) (*emptypb.Empty, error) {
	actor, err := callerOf(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.Reservations.Delete(ctx, req.Id, actor); err != nil {
		return nil, toStatus(err)
	}
	return &emptypb.Empty{}, nil
}

// ListReservations scopes the filter to the caller: guests only see their own
// bookings and property managers only their own properties.
func (s *ReservationServer) ListReservations(
	ctx context.Context,
	req *pb.ListReservationsRequest,
) (*pb.ReservationList, error) {
	actor, err := callerOf(ctx)
	if err != nil {
		return nil, err
	}
	filter := api.FilterFromPb(req)
	switch {
	case actor.IsAdmin():
	case actor.Manages():
		filter.OwnerId = actor.ID
	default:
		filter.UserId = actor.ID
	}
	reservations, err := s.Reservations.List(ctx, filter)
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.ReservationList{Reservations: api.ReservationsToPb(reservations)}, nil
}

func (s *ReservationServer) BookingHistory(ctx context.Context, req *pb.IdRequest) (*pb.ReservationList, error) {
	actor, err := callerOf(ctx)
	if err != nil {
		return nil, err
	}
	userID := req.Id
	if userID == 0 || !actor.IsAdmin() {
		userID = actor.ID
	}
	history, err := s.Reservations.History(ctx, userID)
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.ReservationList{Reservations: api.ReservationsToPb(history)}, nil
}

func (s *ReservationServer) CancelledReservations(
	ctx context.Context,
	req *pb.OwnerRequest,
) (*pb.ReservationList, error) {
	owner, err := ownerScope(ctx, req)
	if err != nil {
		return nil, err
	}
	reservations, err := s.Reservations.CancelledDue(ctx, owner)
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.ReservationList{Reservations: api.ReservationsToPb(reservations)}, nil
}

func (s *ReservationServer) PaymentDashboard(
	ctx context.Context,
	req *pb.OwnerRequest,
) (*pb.PaymentSummary, error) {
	owner, err := ownerScope(ctx, req)
	if err != nil {
		return nil, err
	}
	payments, err := s.Dashboard.Payments(ctx, owner)
	if err != nil {
		return nil, toStatus(err)
	}
	return api.PaymentsToPb(payments), nil
}

func (s *ReservationServer) ReservationOverview(
	ctx context.Context,
	req *pb.OwnerRequest,
) (*pb.Overview, error) {
	owner, err := ownerScope(ctx, req)
	if err != nil {
		return nil, err
	}
	ov, err := s.Dashboard.Overview(ctx, owner)
	if err != nil {
		return nil, toStatus(err)
	}
	return api.OverviewToPb(ov), nil
}

func (s *ReservationServer) ExportOverview(ctx context.Context, req *pb.OwnerRequest) (*pb.ExportResponse, error) {
	owner, err := ownerScope(ctx, req)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := s.Exporter.Overview(ctx, owner, &buf); err != nil {
		return nil, toStatus(err)
	}
	name := "reservations.xlsx"
	if owner != 0 {
		name = fmt.Sprintf("reservations-owner-%d.xlsx", owner)
	}
	return &pb.ExportResponse{FileName: name, Workbook: buf.Bytes()}, nil
}

func callerOf(ctx context.Context) (models.Actor, error) {
	actor, ok := ActorFromContext(ctx)
	if !ok {
		return models.Actor{}, status.Error(codes.Unauthenticated, "no caller in context")
	}
	return actor, nil
}

// ownerScope resolves which owner's properties a dashboard call covers.
// Managers are pinned to their own properties; only admins may pick.
func ownerScope(ctx context.Context, req *pb.OwnerRequest) (int64, error) {
	actor, err := callerOf(ctx)
	if err != nil {
		return 0, err
	}
	switch {
	case actor.IsAdmin():
		return req.OwnerId, nil
	case actor.Manages():
		return actor.ID, nil
	}
	return 0, status.Error(codes.PermissionDenied, "dashboards are for property managers")
}
