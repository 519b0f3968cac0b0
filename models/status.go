package models

import "strings"

type ReservationStatus string

const (
	StatusBooked    ReservationStatus = "booked"
	StatusConfirmed ReservationStatus = "confirmed"
	StatusCheckIn   ReservationStatus = "check-in"
	StatusCheckOut  ReservationStatus = "check-out"
	StatusCancelled ReservationStatus = "cancelled"
)

var statusTransitions = map[ReservationStatus][]ReservationStatus{
	StatusBooked:    {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCheckIn},
	StatusCheckIn:   {StatusCheckOut},
}

func (s ReservationStatus) Valid() bool {
	switch s {
	case StatusBooked, StatusConfirmed, StatusCheckIn, StatusCheckOut, StatusCancelled:
		return true
	}
	return false
}

// CanTransition reports whether a reservation may move from s to next.
// Writing the current value again is always allowed.
func (s ReservationStatus) CanTransition(next ReservationStatus) bool {
	if s == next {
		return true
	}
	for _, allowed := range statusTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Cancelled also matches legacy "cancelled-by-..." variants.
func (s ReservationStatus) Cancelled() bool {
	return strings.HasPrefix(strings.ToLower(string(s)), "cancel")
}

type PaymentStatus string

const (
	PaymentDue           PaymentStatus = "due"
	PaymentPartiallyPaid PaymentStatus = "partially-paid"
	PaymentPaid          PaymentStatus = "paid"
)

var paymentTransitions = map[PaymentStatus][]PaymentStatus{
	PaymentDue:           {PaymentPartiallyPaid, PaymentPaid},
	PaymentPartiallyPaid: {PaymentPaid},
}

func (p PaymentStatus) Valid() bool {
	switch p {
	case PaymentDue, PaymentPartiallyPaid, PaymentPaid:
		return true
	}
	return false
}

func (p PaymentStatus) CanTransition(next PaymentStatus) bool {
	if p == next {
		return true
	}
	for _, allowed := range paymentTransitions[p] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Settled reports whether any money was collected ("paid" in any form).
func (p PaymentStatus) Settled() bool {
	return strings.Contains(strings.ToLower(string(p)), "paid")
}

type BookingMode string

const (
	ModeOnline  BookingMode = "online"
	ModeOffline BookingMode = "offline"
)
