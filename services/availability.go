package services

import (
	"context"
	"time"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"github.com/dzoniops/booking-service/calendar"
	"github.com/dzoniops/booking-service/models"
	"github.com/dzoniops/booking-service/repository"
	"github.com/dzoniops/booking-service/utils"
)

// Catalog resolves rooms and properties. It is served by the local database
// or by a remote catalog service.
type Catalog interface {
	GetRoom(ctx context.Context, id int64) (*models.Room, error)
	GetProperty(ctx context.Context, id int64) (*models.Property, error)
	RecordRating(ctx context.Context, propertyID int64, rating float64) error
	PropertiesOwnedBy(ctx context.Context, ownerID int64) ([]int64, error)
}

type AvailabilityChecker struct {
	catalog Catalog
	store   repository.ReservationRepository
	metrics *Metrics
	logger  log.Logger
}

func NewAvailabilityChecker(
	catalog Catalog,
	store repository.ReservationRepository,
	metrics *Metrics,
	logger log.Logger,
) *AvailabilityChecker {
	if logger == nil {
		logger = log.NewNopLogger()
	}
	utils.InitValidator()
	return &AvailabilityChecker{
		catalog: catalog,
		store:   store,
		metrics: metrics,
		logger:  log.With(logger, "component", "availability"),
	}
}

// Check decides whether q.Rooms units of the room are free for the whole stay.
func (c *AvailabilityChecker) Check(ctx context.Context, q models.AvailabilityQuery) (*models.Availability, error) {
	if err := utils.Validate.Struct(q); err != nil {
		return nil, wrapError(ValidationError, err, "invalid availability query")
	}
	room, err := c.catalog.GetRoom(ctx, q.RoomId)
	if err != nil {
		return nil, lookupError(err, "room %d", q.RoomId)
	}
	return c.Evaluate(ctx, c.store, room, q.Rooms, q.Range())
}

// Evaluate runs the decision for an already loaded room against store, which
// may be bound to a transaction.
func (c *AvailabilityChecker) Evaluate(
	ctx context.Context,
	store repository.ReservationRepository,
	room *models.Room,
	units int,
	stay calendar.Range,
) (*models.Availability, error) {
	if units > room.Count {
		return nil, c.reject(newError(CapacityExceeded,
			"requested %d rooms but room %d has only %d", units, room.ID, room.Count))
	}

	peaks, err := NewLedger(store).PeakOccupancy(ctx, room.ID, stay.Start, stay.End)
	if err != nil {
		return nil, err
	}
	peak := peaks[room.ID]
	if peak >= room.Count {
		return nil, c.reject(newError(NoRoomsAvailable,
			"no rooms available between %s and %s", calendar.Format(stay.Start), calendar.Format(stay.End)))
	}
	if free := room.Count - peak; free < units {
		return nil, c.reject(newError(InsufficientRooms,
			"only %d rooms available between %s and %s", free, calendar.Format(stay.Start), calendar.Format(stay.End)))
	}

	return &models.Availability{
		RoomId: room.ID,
		Count:  room.Count,
		Peak:   peak,
		Free:   room.Count - peak,
	}, nil
}

func (c *AvailabilityChecker) reject(err *Error) error {
	c.metrics.rejected(err.Kind)
	level.Debug(c.logger).Log("msg", "availability rejected", "reason", err.Kind, "err", err)
	return err
}

// stayOf normalizes a check-in/check-out pair into a day range.
func stayOf(checkIn, checkOut time.Time) (calendar.Range, error) {
	stay, err := calendar.NewRange(checkIn, checkOut)
	if err != nil {
		return calendar.Range{}, wrapError(ValidationError, err, "invalid stay")
	}
	return stay, nil
}
