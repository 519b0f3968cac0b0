package notify

import (
	"bytes"
	"context"
	"testing"

	"github.com/go-kit/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfirmationMessage(t *testing.T) {
	msg := ConfirmationMessage(testEvent())

	assert.Equal(t, "ana@example.com", msg.To)
	assert.Equal(t, "Booking Confirmation", msg.Subject)
	assert.Equal(t, "Dear Ms Ana Petrovic, your booking at Seaside is confirmed. Check-in: 14 March 2025.", msg.Body)
}

func TestLogMailer_Send(t *testing.T) {
	var buf bytes.Buffer
	m := NewLogMailer(log.NewLogfmtLogger(&buf))

	require.NoError(t, m.Send(context.Background(), testEvent()))
	assert.Contains(t, buf.String(), "to=ana@example.com")
	assert.Contains(t, buf.String(), "component=mailer")

	ev := testEvent()
	ev.Reservation.Email = ""
	assert.Error(t, m.Send(context.Background(), ev))

	ev.Kind = "user.created"
	assert.Error(t, m.Send(context.Background(), ev))
}
