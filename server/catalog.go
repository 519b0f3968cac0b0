package server

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"

	"github.com/dzoniops/booking-service/api"
	pb "github.com/dzoniops/booking-service/api/booking/v1"
	"github.com/dzoniops/booking-service/services"
)

// CatalogServer serves rooms and properties to other booking nodes.
type CatalogServer struct {
	pb.UnimplementedCatalogServiceServer
	Catalog services.Catalog
}

var _ pb.CatalogServiceServer = (*CatalogServer)(nil)

func (s *CatalogServer) GetRoom(ctx context.Context, req *pb.IdRequest) (*pb.Room, error) {
	room, err := s.Catalog.GetRoom(ctx, req.Id)
	if err != nil {
		return nil, toStatus(services.Lookup(err, "room %d", req.Id))
	}
	return api.RoomToPb(room), nil
}

func (s *CatalogServer) GetProperty(ctx context.Context, req *pb.IdRequest) (*pb.Property, error) {
	property, err := s.Catalog.GetProperty(ctx, req.Id)
	if err != nil {
		return nil, toStatus(services.Lookup(err, "property %d", req.Id))
	}
	return api.PropertyToPb(property), nil
}

func (s *CatalogServer) RecordRating(ctx context.Context, req *pb.RecordRatingRequest) (*emptypb.Empty, error) {
	if req.Rating < 0 || req.Rating > 5 {
		return nil, status.Errorf(codes.InvalidArgument, "rating %v is outside 0..5", req.Rating)
	}
	if err := s.Catalog.RecordRating(ctx, req.PropertyId, req.Rating); err != nil {
		return nil, toStatus(services.Lookup(err, "property %d", req.PropertyId))
	}
	return &emptypb.Empty{}, nil
}

// PropertiesOwnedBy lists the ids of an owner's properties, empty when there are none.
func (s *CatalogServer) PropertiesOwnedBy(ctx context.Context, req *pb.OwnerRequest) (*pb.PropertyIds, error) {
	if req.OwnerId == 0 {
		return nil, status.Error(codes.InvalidArgument, "owner_id is required")
	}
	ids, err := s.Catalog.PropertiesOwnedBy(ctx, req.OwnerId)
	if err != nil {
		return nil, toStatus(services.Lookup(err, "properties of owner %d", req.OwnerId))
	}
	return &pb.PropertyIds{Ids: ids}, nil
}
