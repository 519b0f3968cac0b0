package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dzoniops/booking-service/models"
	"github.com/dzoniops/booking-service/notify"
)

func TestCreate_PersistsAndPublishes(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	r, err := f.svc.Create(ctx, owner, CreateReservation{
		RoomId:       f.room.ID,
		UserId:       guest.ID,
		Rooms:        3,
		CheckIn:      "01-07-2025",
		CheckOut:     "03-07-2025",
		Mode:         models.ModeOffline,
		Email:        "ana@example.com",
		GuestDetails: models.GuestDetails{FirstName: "Ana", LastName: "Petrovic"},
		Adults:       4,
		Children:     2,
		Extras:       []string{"wifi"},
	})
	require.NoError(t, err)

	assert.NotZero(t, r.ID)
	assert.Equal(t, f.property.ID, r.PropertyId)
	assert.Equal(t, guest.ID, r.UserId)
	assert.Equal(t, "owner", r.BookedBy)
	assert.Equal(t, string(models.RolePropertyAdmin), r.Type)
	assert.Equal(t, models.StatusBooked, r.Status)
	assert.Equal(t, models.PaymentDue, r.PaymentStatus)
	assert.Equal(t, 9000.0, r.GrandTotal)
	assert.Equal(t, 2, r.PriceBreakdown.Data().TotalDays)

	stored, err := f.svc.Get(ctx, r.ID)
	require.NoError(t, err)
	days := stored.Stay()
	require.Len(t, days, 3)
	assert.Equal(t, time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC), days[0])
	assert.Equal(t, time.Date(2025, time.July, 3, 0, 0, 0, 0, time.UTC), days[2])

	ev, err := f.outbox.Receive(ctx)
	require.NoError(t, err)
	assert.Equal(t, notify.KindReservationCreated, ev.Kind)
	assert.Equal(t, r.ID, ev.Reservation.ID)
	assert.Equal(t, "Seaside", ev.PropertyName)
}

func TestCreate_OnlineGuestBooking(t *testing.T) {
	f := newFixture(t)
	r, err := f.svc.Create(context.Background(), guest, CreateReservation{
		RoomId:         f.room.ID,
		UserId:         999,
		Rooms:          1,
		CheckIn:        "2025-07-01",
		CheckOut:       "2025-07-01",
		PriceBreakdown: &models.PriceBreakdown{GrandTotal: 1200},
	})
	require.NoError(t, err)

	assert.Equal(t, guest.ID, r.UserId, "guests cannot book on behalf of others")
	assert.Equal(t, models.ModeOnline, r.Mode)
	assert.Empty(t, r.Type)
	assert.Equal(t, 1200.0, r.GrandTotal)
	assert.Len(t, r.BookedDates, 1)
}

func TestCreate_Failures(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.svc.Create(ctx, guest, CreateReservation{RoomId: 404, Rooms: 1, CheckIn: "01-07-2025", CheckOut: "02-07-2025"})
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = f.svc.Create(ctx, guest, CreateReservation{RoomId: f.room.ID, Rooms: 1, CheckIn: "07/01/2025", CheckOut: "02-07-2025"})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = f.svc.Create(ctx, guest, CreateReservation{RoomId: f.room.ID, Rooms: 1, CheckIn: "05-07-2025", CheckOut: "02-07-2025"})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = f.svc.Create(ctx, guest, CreateReservation{RoomId: f.room.ID, Rooms: 0, CheckIn: "01-07-2025", CheckOut: "02-07-2025"})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = f.svc.Create(ctx, guest, CreateReservation{RoomId: f.room.ID, Rooms: 1, CheckIn: "01-07-2025", CheckOut: "02-07-2025", Mode: "phone"})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = f.svc.Create(ctx, guest, CreateReservation{RoomId: f.room.ID, Rooms: 1, Adults: 3, CheckIn: "01-07-2025", CheckOut: "02-07-2025"})
	assert.ErrorIs(t, err, ErrInvalidOccupancy)

	_, err = f.svc.Create(ctx, guest, CreateReservation{RoomId: f.room.ID, Rooms: 4, CheckIn: "01-07-2025", CheckOut: "02-07-2025"})
	assert.ErrorIs(t, err, ErrCapacityExceeded)

	f.book(t, 3, "01-07-2025", "02-07-2025")
	_, err = f.svc.Create(ctx, guest, CreateReservation{RoomId: f.room.ID, Rooms: 1, CheckIn: "02-07-2025", CheckOut: "04-07-2025"})
	assert.ErrorIs(t, err, ErrNoRoomsAvailable)
	assert.Equal(t, int64(1), f.count(t))
}

func TestCreate_PublishFailureDoesNotFail(t *testing.T) {
	f := newFixture(t, WithPublisher(failingPublisher{}))

	r, err := f.svc.Create(context.Background(), guest, CreateReservation{
		RoomId: f.room.ID, Rooms: 1, CheckIn: "01-07-2025", CheckOut: "02-07-2025",
	})
	require.NoError(t, err)
	assert.NotZero(t, r.ID)
	assert.Equal(t, int64(1), f.count(t))
}

func TestCreate_ConcurrentBookingsNeverOverbook(t *testing.T) {
	f := newFixture(t)

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		accepted int
	)
	for i := 0; i < 6; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.svc.Create(context.Background(), guest, CreateReservation{
				RoomId: f.room.ID, Rooms: 1, CheckIn: "10-08-2025", CheckOut: "12-08-2025",
			})
			if err == nil {
				mu.Lock()
				accepted++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, f.room.Count, accepted)
	assert.Equal(t, int64(f.room.Count), f.count(t))
}

func TestUpdate_Authorization(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	r := f.book(t, 1, "01-07-2025", "02-07-2025")
	confirmed := models.StatusConfirmed

	_, err := f.svc.Update(ctx, r.ID, UpdateReservation{Status: &confirmed}, stranger)
	assert.ErrorIs(t, err, ErrAccessDenied)
	_, err = f.svc.Update(ctx, r.ID, UpdateReservation{Status: &confirmed}, guest)
	assert.ErrorIs(t, err, ErrAccessDenied)
	_, err = f.svc.Update(ctx, 404, UpdateReservation{Status: &confirmed}, owner)
	assert.ErrorIs(t, err, ErrNotFound)

	got, err := f.svc.Update(ctx, r.ID, UpdateReservation{Status: &confirmed}, owner)
	require.NoError(t, err)
	assert.Equal(t, models.StatusConfirmed, got.Status)

	checkIn := models.StatusCheckIn
	_, err = f.svc.Update(ctx, r.ID, UpdateReservation{Status: &checkIn}, admin)
	require.NoError(t, err)
}

func TestUpdate_Transitions(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	r := f.book(t, 1, "01-07-2025", "02-07-2025")

	checkOut := models.StatusCheckOut
	_, err := f.svc.Update(ctx, r.ID, UpdateReservation{Status: &checkOut}, owner)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	unknown := models.ReservationStatus("teleported")
	_, err = f.svc.Update(ctx, r.ID, UpdateReservation{Status: &unknown}, owner)
	assert.ErrorIs(t, err, ErrValidation)

	paid := models.PaymentPaid
	due := models.PaymentDue
	got, err := f.svc.Update(ctx, r.ID, UpdateReservation{PaymentStatus: &paid}, owner)
	require.NoError(t, err)
	assert.Equal(t, models.PaymentPaid, got.PaymentStatus)
	_, err = f.svc.Update(ctx, r.ID, UpdateReservation{PaymentStatus: &due}, owner)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	stored, err := f.svc.Get(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusBooked, stored.Status)
	assert.Equal(t, models.PaymentPaid, stored.PaymentStatus)
}

func TestUpdate_DatesRebuildBookedDates(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	r := f.book(t, 1, "01-07-2025", "02-07-2025")

	out := "05-07-2025"
	rooms := 2
	_, err := f.svc.Update(ctx, r.ID, UpdateReservation{CheckOut: &out, Rooms: &rooms}, owner)
	require.NoError(t, err)

	stored, err := f.svc.Get(ctx, r.ID)
	require.NoError(t, err)
	require.Len(t, stored.BookedDates, 5)
	assert.Equal(t, 2, stored.BookedDates[4].Rooms)
	assert.Equal(t, time.Date(2025, time.July, 5, 0, 0, 0, 0, time.UTC), stored.CheckOut.UTC())

	bad := "30-06-2025"
	_, err = f.svc.Update(ctx, r.ID, UpdateReservation{CheckOut: &bad}, owner)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestUpdate_FeedbackOnceAndRating(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	ratings := []float64{5, 4, 2.5, 3}
	for i, rating := range ratings {
		r := f.book(t, 1, daysAgo(10+i), daysAgo(9+i))
		_, err := f.svc.Update(ctx, r.ID, UpdateReservation{Feedback: &FeedbackInput{Rating: rating, Review: "ok"}}, guest)
		require.NoError(t, err)

		_, err = f.svc.Update(ctx, r.ID, UpdateReservation{Feedback: &FeedbackInput{Rating: 1}}, guest)
		assert.ErrorIs(t, err, ErrValidation, "second feedback")
	}

	property, err := f.catalog.GetProperty(ctx, f.property.ID)
	require.NoError(t, err)
	assert.Equal(t, len(ratings), property.RatingCount)
	assert.InDelta(t, 3.625, property.AverageRating, 1e-9)

	r := f.book(t, 1, daysAgo(2), daysAgo(1))
	_, err = f.svc.Update(ctx, r.ID, UpdateReservation{Feedback: &FeedbackInput{Rating: 9}}, guest)
	assert.ErrorIs(t, err, ErrValidation)
	_, err = f.svc.Update(ctx, r.ID, UpdateReservation{Feedback: &FeedbackInput{Rating: 4}}, stranger)
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestDelete(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	r := f.book(t, 1, "01-07-2025", "02-07-2025")

	assert.ErrorIs(t, f.svc.Delete(ctx, r.ID, guest), ErrAccessDenied)
	require.NoError(t, f.svc.Delete(ctx, r.ID, owner))
	assert.ErrorIs(t, f.svc.Delete(ctx, r.ID, owner), ErrNotFound)
	assert.Zero(t, f.count(t))
}

func TestList_PurgesExpired(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	old := f.book(t, 1, daysAgo(91), daysAgo(88))
	recent := f.book(t, 1, daysAgo(89), daysAgo(87))

	got, err := f.svc.List(ctx, models.ReservationFilter{})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, recent.ID, got[0].ID)

	_, err = f.svc.Get(ctx, old.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, int64(1), f.count(t))
}

func TestSweepExpired(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.book(t, 1, daysAgo(120), daysAgo(118))
	f.book(t, 1, daysAgo(91), daysAgo(91))
	f.book(t, 1, daysAgo(90), daysAgo(90))

	n, err := f.svc.SweepExpired(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
	assert.Equal(t, int64(1), f.count(t))
}

func TestRunExpirySweep_StopsOnCancel(t *testing.T) {
	f := newFixture(t)
	f.book(t, 1, daysAgo(100), daysAgo(99))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- f.svc.RunExpirySweep(ctx, 5*time.Millisecond) }()

	require.Eventually(t, func() bool { return f.count(t) == 0 }, time.Second, 5*time.Millisecond)
	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("sweep did not stop")
	}
}

func TestHistoryAndCancelledDue(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	first := f.book(t, 1, daysAgo(30), daysAgo(28))
	second := f.book(t, 1, daysAgo(10), daysAgo(8))
	f.book(t, 1, daysAgo(1), "20-06-2025")

	history, err := f.svc.History(ctx, guest.ID)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, second.ID, history[0].ID)
	assert.Equal(t, first.ID, history[1].ID)

	cancelled := models.StatusCancelled
	_, err = f.svc.Update(ctx, first.ID, UpdateReservation{Status: &cancelled}, owner)
	require.NoError(t, err)

	due, err := f.svc.CancelledDue(ctx, owner.ID)
	require.NoError(t, err)
	require.Len(t, due, 1)
	assert.Equal(t, first.ID, due[0].ID)

	none, err := f.svc.CancelledDue(ctx, stranger.ID)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestView(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	r := f.book(t, 1, "01-07-2025", "02-07-2025")

	for _, actor := range []models.Actor{guest, owner, admin} {
		got, err := f.svc.View(ctx, r.ID, actor)
		require.NoError(t, err, actor.Username)
		assert.Equal(t, r.ID, got.ID)
	}

	_, err := f.svc.View(ctx, r.ID, stranger)
	assert.ErrorIs(t, err, ErrAccessDenied)

	_, err = f.svc.View(ctx, r.ID+100, admin)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdate_FeedbackRemoteRatingFailure(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	remote := &remoteCatalog{local: f.catalog, failRatings: 1}
	svc := NewReservationService(f.store, remote, WithClock(ClockFunc(func() time.Time { return fixedNow })))
	r := f.book(t, 1, daysAgo(3), daysAgo(2))

	review := UpdateReservation{Feedback: &FeedbackInput{Rating: 4, Review: "quiet"}}
	_, err := svc.Update(ctx, r.ID, review, guest)
	require.Error(t, err)
	assert.Equal(t, Internal, KindOf(err))

	var feedback int64
	require.NoError(t, f.db.Model(&models.Feedback{}).Count(&feedback).Error)
	assert.Zero(t, feedback, "feedback rolled back with the rating")
	assert.Empty(t, remote.ratings)

	got, err := svc.Update(ctx, r.ID, review, guest)
	require.NoError(t, err)
	require.NotNil(t, got.Feedback)

	require.NoError(t, f.db.Model(&models.Feedback{}).Count(&feedback).Error)
	assert.Equal(t, int64(1), feedback)
	assert.Equal(t, []float64{4}, remote.ratings)
}

func TestUpdate_FeedbackLocalRatingFailure(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	r := f.book(t, 1, daysAgo(3), daysAgo(2))

	require.NoError(t, f.db.Exec("DELETE FROM properties WHERE id = ?", f.property.ID).Error)

	email := "new@example.com"
	_, err := f.svc.Update(ctx, r.ID, UpdateReservation{
		Email:    &email,
		Feedback: &FeedbackInput{Rating: 5},
	}, admin)
	assert.ErrorIs(t, err, ErrNotFound)

	got, err := f.svc.Get(ctx, r.ID)
	require.NoError(t, err)
	assert.Nil(t, got.Feedback)
	assert.Equal(t, "ana@example.com", got.Email, "patch rolled back")
}

func TestStayLengthIsBounded(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.svc.Create(ctx, guest, CreateReservation{RoomId: f.room.ID, Rooms: 1, CheckIn: "15-06-2025", CheckOut: "16-06-2026"})
	assert.ErrorIs(t, err, ErrValidation)
	_, err = f.svc.Create(ctx, guest, CreateReservation{RoomId: f.room.ID, Rooms: 1, CheckIn: "15-06-2025", CheckOut: "31-12-9999"})
	assert.ErrorIs(t, err, ErrValidation)
	assert.Zero(t, f.count(t))

	r := f.book(t, 1, "15-06-2025", "15-06-2026")
	far := "20-06-2026"
	_, err = f.svc.Update(ctx, r.ID, UpdateReservation{CheckOut: &far}, owner)
	assert.ErrorIs(t, err, ErrValidation)
}
