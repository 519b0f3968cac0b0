package models

import (
	"time"

	"gorm.io/datatypes"

	"github.com/dzoniops/booking-service/calendar"
)

type GuestDetails struct {
	Title     string `json:"title"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// FullName joins the non-empty parts of the guest name.
func (g GuestDetails) FullName() string {
	name := ""
	for _, part := range []string{g.Title, g.FirstName, g.LastName} {
		if part == "" {
			continue
		}
		if name != "" {
			name += " "
		}
		name += part
	}
	return name
}

// Feedback is the guest review left on a stay. A reservation has at most one.
type Feedback struct {
	ID            int64     `json:"-"          gorm:"primaryKey"`
	ReservationId int64     `json:"-"          gorm:"not null;uniqueIndex"`
	Rating        float64   `json:"rating"     validate:"min=0,max=5"`
	Review        string    `json:"review"`
	GuestName     string    `json:"guest_name"`
	CreatedAt     time.Time `json:"created_at"`
}

// BookedDate is one day of a reservation's stay.
type BookedDate struct {
	ID            int64          `json:"-"     gorm:"primaryKey"`
	ReservationId int64          `json:"-"     gorm:"not null;index"`
	RoomId        int64          `json:"-"     gorm:"not null;index:idx_booked_dates_room_date"`
	Date          datatypes.Date `json:"date"  gorm:"not null;index:idx_booked_dates_room_date"`
	Rooms         int            `json:"rooms" gorm:"not null"`
}

type Reservation struct {
	ID             int64                              `json:"id"              gorm:"primaryKey"`
	RoomId         int64                              `json:"room_id"         gorm:"not null;index"`
	PropertyId     int64                              `json:"property_id"     gorm:"not null;index"`
	UserId         int64                              `json:"user_id"         gorm:"index"`
	Rooms          int                                `json:"rooms"           gorm:"not null"`
	BookingDate    time.Time                          `json:"booking_date"`
	CheckIn        time.Time                          `json:"check_in"        gorm:"type:date;not null;index"`
	CheckOut       time.Time                          `json:"check_out"       gorm:"type:date;not null;index"`
	BookedDates    []BookedDate                       `json:"booked_dates"    gorm:"foreignKey:ReservationId;constraint:OnDelete:CASCADE"`
	Status         ReservationStatus                  `json:"status"          gorm:"type:varchar(32);not null;default:'booked';index"`
	PaymentStatus  PaymentStatus                      `json:"payment_status"  gorm:"type:varchar(32);not null;default:'due';index"`
	Mode           BookingMode                        `json:"mode"            gorm:"type:varchar(16)"`
	Type           string                             `json:"type"`
	BookedBy       string                             `json:"booked_by"`
	Email          string                             `json:"email"`
	Phone          string                             `json:"phone"`
	GuestDetails   GuestDetails                       `json:"guest_details"   gorm:"embedded;embeddedPrefix:guest_"`
	PriceBreakdown datatypes.JSONType[PriceBreakdown] `json:"price_breakdown"`
	GrandTotal     float64                            `json:"grand_total"     gorm:"not null;default:0"`
	Feedback       *Feedback                          `json:"feedback"        gorm:"foreignKey:ReservationId;constraint:OnDelete:CASCADE"`
	CreatedAt      time.Time                          `json:"created_at"`
	UpdatedAt      time.Time                          `json:"updated_at"`
}

// Stay returns the booked days, falling back to the check-in/check-out span
// for rows stored without explicit dates.
func (r *Reservation) Stay() []time.Time {
	if len(r.BookedDates) > 0 {
		days := make([]time.Time, 0, len(r.BookedDates))
		for _, d := range r.BookedDates {
			days = append(days, calendar.Day(time.Time(d.Date)))
		}
		return days
	}
	return calendar.Range{Start: calendar.Day(r.CheckIn), End: calendar.Day(r.CheckOut)}.Days()
}

// SetBookedDates replaces the stay days with one row per day.
func (r *Reservation) SetBookedDates(days []time.Time) {
	r.BookedDates = make([]BookedDate, 0, len(days))
	for _, d := range days {
		r.BookedDates = append(r.BookedDates, BookedDate{
			RoomId: r.RoomId,
			Date:   datatypes.Date(d),
			Rooms:  r.Rooms,
		})
	}
}

// ReservationFilter narrows reservation listings. Zero fields are ignored.
// OwnerId is resolved against the catalog into PropertyIds before the store
// is queried; a non-nil empty PropertyIds matches nothing.
type ReservationFilter struct {
	UserId      int64
	PropertyId  int64
	OwnerId     int64
	PropertyIds []int64
	RoomId      int64
	Statuses    []ReservationStatus
}
