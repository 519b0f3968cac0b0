package notify

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dzoniops/booking-service/models"
)

func testEvent() Event {
	r := models.Reservation{
		ID:           42,
		RoomId:       3,
		Rooms:        2,
		Email:        "ana@example.com",
		CheckIn:      time.Date(2025, time.March, 14, 0, 0, 0, 0, time.UTC),
		CheckOut:     time.Date(2025, time.March, 16, 0, 0, 0, 0, time.UTC),
		GuestDetails: models.GuestDetails{Title: "Ms", FirstName: "Ana", LastName: "Petrovic"},
	}
	return NewReservationCreated(r, "Seaside", time.Date(2025, time.March, 1, 9, 0, 0, 0, time.UTC))
}

func TestChannelOutbox_PublishIsNonBlocking(t *testing.T) {
	o := NewChannelOutbox(1)
	ctx := context.Background()

	require.NoError(t, o.Publish(ctx, testEvent()))
	assert.ErrorIs(t, o.Publish(ctx, testEvent()), ErrOutboxFull)

	ev, err := o.Receive(ctx)
	require.NoError(t, err)
	assert.Equal(t, KindReservationCreated, ev.Kind)
}

func TestChannelOutbox_ReceiveHonorsContext(t *testing.T) {
	o := NewChannelOutbox(1)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := o.Receive(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestRedisOutbox_RoundTrip(t *testing.T) {
	client, mock := redismock.NewClientMock()
	o := NewRedisOutbox(client, "reservation:outbox")
	ctx := context.Background()

	ev := testEvent()
	payload, err := json.Marshal(ev)
	require.NoError(t, err)

	mock.ExpectLPush("reservation:outbox", string(payload)).SetVal(1)
	require.NoError(t, o.Publish(ctx, ev))

	mock.ExpectBRPop(5*time.Second, "reservation:outbox").RedisNil()
	mock.ExpectBRPop(5*time.Second, "reservation:outbox").SetVal([]string{"reservation:outbox", string(payload)})
	got, err := o.Receive(ctx)
	require.NoError(t, err)

	assert.Equal(t, ev.ID, got.ID)
	assert.Equal(t, ev.Kind, got.Kind)
	assert.True(t, ev.OccurredAt.Equal(got.OccurredAt))
	assert.Equal(t, int64(42), got.Reservation.ID)
	assert.Equal(t, "Seaside", got.PropertyName)
	assert.True(t, ev.Reservation.CheckIn.Equal(got.Reservation.CheckIn))

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisOutbox_PublishError(t *testing.T) {
	client, mock := redismock.NewClientMock()
	o := NewRedisOutbox(client, "reservation:outbox")

	ev := testEvent()
	payload, err := json.Marshal(ev)
	require.NoError(t, err)
	mock.ExpectLPush("reservation:outbox", string(payload)).SetErr(errors.New("connection refused"))

	err = o.Publish(context.Background(), ev)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection refused")
}
