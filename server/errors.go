package server

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/dzoniops/booking-service/services"
)

// toStatus maps core error kinds onto gRPC status codes.
func toStatus(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok {
		return err
	}
	if errors.Is(err, context.Canceled) {
		return status.Error(codes.Canceled, err.Error())
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return status.Error(codes.DeadlineExceeded, err.Error())
	}

	var code codes.Code
	switch services.KindOf(err) {
	case services.NotFound:
		code = codes.NotFound
	case services.AccessDenied:
		code = codes.PermissionDenied
	case services.CapacityExceeded, services.NoRoomsAvailable, services.InsufficientRooms:
		code = codes.FailedPrecondition
	case services.InvalidOccupancy, services.ValidationError, services.InvalidTransition:
		code = codes.InvalidArgument
	default:
		code = codes.Internal
	}
	return status.Error(code, err.Error())
}
