package services

import (
	"context"
	"strings"
	"time"

	"github.com/dzoniops/booking-service/calendar"
	"github.com/dzoniops/booking-service/models"
)

type PaymentSummary struct {
	Expected  float64 `json:"expected"`
	Collected float64 `json:"collected"`
	Due       float64 `json:"due"`
}

type Overview struct {
	TotalReservations int                  `json:"total_reservations"`
	Upcoming          []models.Reservation `json:"upcoming"`
	Booked            []models.Reservation `json:"booked"`
	Confirmed         []models.Reservation `json:"confirmed"`
	Today             []models.Reservation `json:"today"`
	Active            []models.Reservation `json:"active"`
	Past              []models.Reservation `json:"past"`
	Offline           []models.Reservation `json:"offline"`
	Online            []models.Reservation `json:"online"`
}

// Lister lists reservations under the retention rule.
// *ReservationService satisfies it.
type Lister interface {
	List(ctx context.Context, filter models.ReservationFilter) ([]models.Reservation, error)
}

// Dashboard folds reservations into payment totals and status buckets.
// ownerID 0 means every property.
type Dashboard struct {
	reservations Lister
	clock        Clock
}

func NewDashboard(reservations Lister, clock Clock) *Dashboard {
	if clock == nil {
		clock = SystemClock
	}
	return &Dashboard{reservations: reservations, clock: clock}
}

func (d *Dashboard) Payments(ctx context.Context, ownerID int64) (PaymentSummary, error) {
	reservations, err := d.reservations.List(ctx, models.ReservationFilter{OwnerId: ownerID})
	if err != nil {
		return PaymentSummary{}, asInternal(err, "list reservations")
	}
	return SummarizePayments(reservations), nil
}

func SummarizePayments(reservations []models.Reservation) PaymentSummary {
	var sum PaymentSummary
	for _, r := range reservations {
		total := grandTotal(r)
		switch r.Status {
		case models.StatusBooked:
			sum.Expected += total
			if r.PaymentStatus == models.PaymentDue {
				sum.Due += total
			}
		case models.StatusConfirmed:
			sum.Expected += total
			if r.PaymentStatus.Settled() {
				sum.Collected += total
			}
		}
	}
	return sum
}

func (d *Dashboard) Overview(ctx context.Context, ownerID int64) (Overview, error) {
	reservations, err := d.reservations.List(ctx, models.ReservationFilter{OwnerId: ownerID})
	if err != nil {
		return Overview{}, asInternal(err, "list reservations")
	}
	return BuildOverview(reservations, today(d.clock)), nil
}

// BuildOverview buckets reservations relative to the given day.
func BuildOverview(reservations []models.Reservation, day time.Time) Overview {
	day = calendar.Day(day)
	ov := Overview{TotalReservations: len(reservations)}
	for _, r := range reservations {
		checkIn := calendar.Day(r.CheckIn)
		if containsFold(string(r.Status), "book") && !checkIn.Before(day) {
			ov.Upcoming = append(ov.Upcoming, r)
		}
		switch r.Status {
		case models.StatusBooked:
			if r.PaymentStatus == models.PaymentDue {
				ov.Booked = append(ov.Booked, r)
			}
		case models.StatusConfirmed:
			if r.PaymentStatus == models.PaymentPaid {
				ov.Confirmed = append(ov.Confirmed, r)
			}
			if checkIn.Equal(day) {
				ov.Today = append(ov.Today, r)
			}
		case models.StatusCheckIn:
			ov.Active = append(ov.Active, r)
		case models.StatusCheckOut:
			ov.Past = append(ov.Past, r)
		}
		switch r.Mode {
		case models.ModeOffline:
			ov.Offline = append(ov.Offline, r)
		case models.ModeOnline:
			ov.Online = append(ov.Online, r)
		}
	}
	return ov
}

func grandTotal(r models.Reservation) float64 {
	if r.GrandTotal != 0 {
		return r.GrandTotal
	}
	return r.PriceBreakdown.Data().GrandTotal
}

func containsFold(s, sub string) bool {
	return strings.Contains(strings.ToLower(s), sub)
}
