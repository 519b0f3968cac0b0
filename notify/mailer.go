package notify

import (
	"context"
	"fmt"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

type Message struct {
	To      string
	Subject string
	Body    string
}

type Mailer interface {
	Send(ctx context.Context, ev Event) error
}

// ConfirmationMessage renders the booking confirmation for a created reservation.
func ConfirmationMessage(ev Event) Message {
	r := ev.Reservation
	name := r.GuestDetails.FullName()
	if name == "" {
		name = r.BookedBy
	}
	return Message{
		To:      r.Email,
		Subject: "Booking Confirmation",
		Body: fmt.Sprintf(
			"Dear %s, your booking at %s is confirmed. Check-in: %d %s %d.",
			name,
			ev.PropertyName,
			r.CheckIn.Day(),
			r.CheckIn.Month(),
			r.CheckIn.Year(),
		),
	}
}

// LogMailer writes messages to the log instead of sending them.
type LogMailer struct {
	logger log.Logger
}

func NewLogMailer(logger log.Logger) *LogMailer {
	if logger == nil {
		logger = log.NewNopLogger()
	}
	return &LogMailer{logger: log.With(logger, "component", "mailer")}
}

func (m *LogMailer) Send(_ context.Context, ev Event) error {
	if ev.Kind != KindReservationCreated {
		return fmt.Errorf("no template for event kind %q", ev.Kind)
	}
	msg := ConfirmationMessage(ev)
	if msg.To == "" {
		return fmt.Errorf("reservation %d has no email", ev.Reservation.ID)
	}
	return level.Info(m.logger).Log(
		"msg", "mail sent",
		"event", ev.ID,
		"to", msg.To,
		"subject", msg.Subject,
		"body", msg.Body,
	)
}
