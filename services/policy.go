package services

import "github.com/dzoniops/booking-service/models"

type Action string

const (
	ActionUpdate   Action = "update"
	ActionDelete   Action = "delete"
	ActionFeedback Action = "feedback"
	ActionView     Action = "view"
)

// ReservationResource is what an action is checked against. Property may be
// nil when the catalog could not resolve it.
type ReservationResource struct {
	Reservation *models.Reservation
	Property    *models.Property
}

type Authorizer interface {
	CanAct(actor models.Actor, action Action, resource ReservationResource) bool
}

// RolePolicy grants admins everything, lets approved property admins and
// agents manage reservations of properties they own, and lets a guest review
// their own stay.
type RolePolicy struct{}

func (RolePolicy) CanAct(actor models.Actor, action Action, res ReservationResource) bool {
	if actor.IsAdmin() {
		return true
	}
	owns := actor.Manages() && res.Property != nil && res.Property.OwnedBy == actor.ID
	booker := res.Reservation != nil && actor.ID != 0 && res.Reservation.UserId == actor.ID

	switch action {
	case ActionUpdate, ActionDelete:
		return owns
	case ActionFeedback:
		return owns || booker
	case ActionView:
		return owns || booker
	}
	return false
}
