package notify

import (
	"time"

	"github.com/google/uuid"

	"github.com/dzoniops/booking-service/models"
)

const KindReservationCreated = "reservation.created"

// Event is a domain event waiting in the outbox.
type Event struct {
	ID           uuid.UUID          `json:"id"`
	Kind         string             `json:"kind"`
	OccurredAt   time.Time          `json:"occurred_at"`
	PropertyName string             `json:"property_name"`
	Reservation  models.Reservation `json:"reservation"`
}

func NewReservationCreated(r models.Reservation, propertyName string, at time.Time) Event {
	return Event{
		ID:           uuid.New(),
		Kind:         KindReservationCreated,
		OccurredAt:   at.UTC(),
		PropertyName: propertyName,
		Reservation:  r,
	}
}
