package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/dzoniops/booking-service/calendar"
	"github.com/dzoniops/booking-service/db"
	"github.com/dzoniops/booking-service/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: gormlogger.Discard})
	require.NoError(t, err)
	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	// every pooled connection would get its own empty in-memory database
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.Migrate(gdb))
	return gdb
}

func day(m time.Month, d int) time.Time {
	return time.Date(2025, m, d, 0, 0, 0, 0, time.UTC)
}

func reservation(roomID int64, rooms int, from, to time.Time, status models.ReservationStatus) *models.Reservation {
	r := &models.Reservation{
		RoomId:        roomID,
		PropertyId:    1,
		Rooms:         rooms,
		CheckIn:       from,
		CheckOut:      to,
		Status:        status,
		PaymentStatus: models.PaymentDue,
		Mode:          models.ModeOnline,
	}
	r.SetBookedDates(calendar.Range{Start: from, End: to}.Days())
	return r
}

func TestCatalog_RecordRating(t *testing.T) {
	ctx := context.Background()
	repo := NewGormCatalogRepository(newTestDB(t))

	p := &models.Property{Name: "Seaside", OwnedBy: 9, Extras: []models.Extra{{Facility: "wifi", Price: 200, Single: true}}}
	require.NoError(t, repo.CreateProperty(ctx, p))

	for _, rating := range []float64{4, 5, 3, 2} {
		require.NoError(t, repo.RecordRating(ctx, p.ID, rating))
	}

	got, err := repo.GetProperty(ctx, p.ID)
	require.NoError(t, err)
	assert.InDelta(t, 3.5, got.AverageRating, 1e-9)
	assert.Equal(t, 4, got.RatingCount)
	require.Len(t, got.Extras, 1)
	assert.Equal(t, "wifi", got.Extras[0].Facility)

	err = repo.RecordRating(ctx, 999, 5)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

func TestCatalog_GetRoom(t *testing.T) {
	ctx := context.Background()
	repo := NewGormCatalogRepository(newTestDB(t))

	room := &models.Room{PropertyId: 1, Type: "double", Count: 3, Price: models.RoomPrice{Single: 1000, Couple: 1800, Child: 500}}
	require.NoError(t, repo.CreateRoom(ctx, room))

	got, err := repo.GetRoom(ctx, room.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, got.Count)
	assert.Equal(t, 1800.0, got.Price.Couple)

	_, err = repo.GetRoom(ctx, 404)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestReservation_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	repo := NewGormReservationRepository(newTestDB(t))

	r := reservation(1, 2, day(1, 1), day(1, 3), models.StatusBooked)
	r.PriceBreakdown = datatypesBreakdown(9000)
	r.GuestDetails = models.GuestDetails{FirstName: "Ana", LastName: "Petrovic"}
	require.NoError(t, repo.Create(ctx, r))
	require.NotZero(t, r.ID)

	got, err := repo.GetByID(ctx, r.ID)
	require.NoError(t, err)
	require.Len(t, got.BookedDates, 3)
	assert.Equal(t, day(1, 1), calendar.Day(time.Time(got.BookedDates[0].Date)))
	assert.Equal(t, 9000.0, got.PriceBreakdown.Data().GrandTotal)
	assert.Equal(t, "Ana Petrovic", got.GuestDetails.FullName())
	assert.Nil(t, got.Feedback)

	_, err = repo.GetByID(ctx, 12345)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestReservation_ListOverlapping(t *testing.T) {
	ctx := context.Background()
	repo := NewGormReservationRepository(newTestDB(t))

	inside := reservation(1, 1, day(1, 1), day(1, 5), models.StatusBooked)
	touching := reservation(1, 1, day(1, 10), day(1, 12), models.StatusConfirmed)
	cancelled := reservation(1, 3, day(1, 2), day(1, 4), models.StatusCancelled)
	otherRoom := reservation(2, 1, day(1, 3), day(1, 4), models.StatusBooked)
	later := reservation(1, 1, day(2, 1), day(2, 2), models.StatusBooked)
	for _, r := range []*models.Reservation{inside, touching, cancelled, otherRoom, later} {
		require.NoError(t, repo.Create(ctx, r))
	}

	got, err := repo.ListOverlapping(ctx, 1, day(1, 5), day(1, 10))
	require.NoError(t, err)
	ids := []int64{}
	for _, r := range got {
		ids = append(ids, r.ID)
		assert.NotEmpty(t, r.BookedDates)
	}
	assert.ElementsMatch(t, []int64{inside.ID, touching.ID}, ids)

	all, err := repo.ListOverlapping(ctx, 0, day(1, 3), day(1, 3))
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestReservation_UpdateReplacesDates(t *testing.T) {
	ctx := context.Background()
	repo := NewGormReservationRepository(newTestDB(t))

	r := reservation(1, 1, day(3, 1), day(3, 3), models.StatusBooked)
	require.NoError(t, repo.Create(ctx, r))

	r.CheckOut = day(3, 5)
	r.Status = models.StatusConfirmed
	r.SetBookedDates(calendar.Range{Start: r.CheckIn, End: r.CheckOut}.Days())
	require.NoError(t, repo.Update(ctx, r, true))

	got, err := repo.GetByID(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusConfirmed, got.Status)
	assert.Len(t, got.BookedDates, 5)

	got.PaymentStatus = models.PaymentPaid
	require.NoError(t, repo.Update(ctx, got, false))
	again, err := repo.GetByID(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, models.PaymentPaid, again.PaymentStatus)
	assert.Len(t, again.BookedDates, 5)
}

func TestReservation_ListFilters(t *testing.T) {
	ctx := context.Background()
	gdb := newTestDB(t)
	catalog := NewGormCatalogRepository(gdb)
	repo := NewGormReservationRepository(gdb)

	mine := &models.Property{Name: "Mine", OwnedBy: 7}
	theirs := &models.Property{Name: "Theirs", OwnedBy: 8}
	require.NoError(t, catalog.CreateProperty(ctx, mine))
	require.NoError(t, catalog.CreateProperty(ctx, theirs))

	a := reservation(1, 1, day(1, 1), day(1, 2), models.StatusBooked)
	a.PropertyId, a.UserId = mine.ID, 100
	b := reservation(2, 1, day(1, 3), day(1, 4), models.StatusConfirmed)
	b.PropertyId, b.UserId = theirs.ID, 100
	c := reservation(1, 1, day(1, 5), day(1, 6), models.StatusCheckOut)
	c.PropertyId, c.UserId = mine.ID, 200
	for _, r := range []*models.Reservation{a, b, c} {
		require.NoError(t, repo.Create(ctx, r))
	}

	ids, err := catalog.PropertiesOwnedBy(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, []int64{mine.ID}, ids)

	owned, err := repo.List(ctx, models.ReservationFilter{PropertyIds: ids})
	require.NoError(t, err)
	require.Len(t, owned, 2)
	assert.Equal(t, c.ID, owned[0].ID, "newest check-in first")

	none, err := catalog.PropertiesOwnedBy(ctx, 404)
	require.NoError(t, err)
	require.NotNil(t, none)
	nothing, err := repo.List(ctx, models.ReservationFilter{PropertyIds: none})
	require.NoError(t, err)
	assert.Empty(t, nothing)

	byUser, err := repo.List(ctx, models.ReservationFilter{UserId: 100})
	require.NoError(t, err)
	assert.Len(t, byUser, 2)

	byStatus, err := repo.List(ctx, models.ReservationFilter{Statuses: []models.ReservationStatus{models.StatusCheckOut}})
	require.NoError(t, err)
	require.Len(t, byStatus, 1)
	assert.Equal(t, c.ID, byStatus[0].ID)

	all, err := repo.List(ctx, models.ReservationFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestReservation_Deletes(t *testing.T) {
	ctx := context.Background()
	gdb := newTestDB(t)
	repo := NewGormReservationRepository(gdb)

	old := reservation(1, 1, day(1, 1), day(1, 2), models.StatusCheckOut)
	recent := reservation(1, 1, day(6, 1), day(6, 2), models.StatusBooked)
	require.NoError(t, repo.Create(ctx, old))
	require.NoError(t, repo.Create(ctx, recent))
	require.NoError(t, repo.AddFeedback(ctx, &models.Feedback{ReservationId: old.ID, Rating: 4}))

	n, err := repo.DeleteCheckedInBefore(ctx, day(3, 1))
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	var orphans int64
	require.NoError(t, gdb.Model(&models.BookedDate{}).Where("reservation_id = ?", old.ID).Count(&orphans).Error)
	assert.Zero(t, orphans)
	require.NoError(t, gdb.Model(&models.Feedback{}).Where("reservation_id = ?", old.ID).Count(&orphans).Error)
	assert.Zero(t, orphans)

	require.NoError(t, repo.Delete(ctx, recent.ID))
	assert.ErrorIs(t, repo.Delete(ctx, recent.ID), gorm.ErrRecordNotFound)
}

func TestReservation_FeedbackUnique(t *testing.T) {
	ctx := context.Background()
	repo := NewGormReservationRepository(newTestDB(t))

	r := reservation(1, 1, day(1, 1), day(1, 2), models.StatusCheckOut)
	require.NoError(t, repo.Create(ctx, r))
	require.NoError(t, repo.AddFeedback(ctx, &models.Feedback{ReservationId: r.ID, Rating: 5, Review: "great"}))
	assert.Error(t, repo.AddFeedback(ctx, &models.Feedback{ReservationId: r.ID, Rating: 1}))

	got, err := repo.GetByID(ctx, r.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Feedback)
	assert.Equal(t, "great", got.Feedback.Review)
}

func TestReservation_WithinRoomLock(t *testing.T) {
	ctx := context.Background()
	repo := NewGormReservationRepository(newTestDB(t))

	boom := errors.New("boom")
	err := repo.WithinRoomLock(ctx, 1, func(tx ReservationRepository) error {
		if err := tx.Create(ctx, reservation(1, 1, day(1, 1), day(1, 2), models.StatusBooked)); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	all, err := repo.List(ctx, models.ReservationFilter{})
	require.NoError(t, err)
	assert.Empty(t, all, "rolled back")

	err = repo.WithinRoomLock(ctx, 1, func(tx ReservationRepository) error {
		existing, err := tx.ListOverlapping(ctx, 1, day(1, 1), day(1, 2))
		if err != nil {
			return err
		}
		assert.Empty(t, existing)
		return tx.Create(ctx, reservation(1, 1, day(1, 1), day(1, 2), models.StatusBooked))
	})
	require.NoError(t, err)

	all, err = repo.List(ctx, models.ReservationFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestReservation_WithinTx(t *testing.T) {
	ctx := context.Background()
	gdb := newTestDB(t)
	repo := NewGormReservationRepository(gdb)
	catalog := NewGormCatalogRepository(gdb)

	p := &models.Property{Name: "Seaside", OwnedBy: 9}
	require.NoError(t, catalog.CreateProperty(ctx, p))
	r := reservation(1, 1, day(1, 1), day(1, 2), models.StatusCheckOut)
	r.PropertyId = p.ID
	require.NoError(t, repo.Create(ctx, r))

	boom := errors.New("boom")
	err := repo.WithinTx(ctx, func(tx ReservationRepository, txCatalog CatalogRepository) error {
		if err := tx.AddFeedback(ctx, &models.Feedback{ReservationId: r.ID, Rating: 4}); err != nil {
			return err
		}
		if err := txCatalog.RecordRating(ctx, p.ID, 4); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	got, err := repo.GetByID(ctx, r.ID)
	require.NoError(t, err)
	assert.Nil(t, got.Feedback, "feedback rolled back")
	prop, err := catalog.GetProperty(ctx, p.ID)
	require.NoError(t, err)
	assert.Zero(t, prop.RatingCount, "rating rolled back")

	err = repo.WithinTx(ctx, func(tx ReservationRepository, txCatalog CatalogRepository) error {
		if err := tx.AddFeedback(ctx, &models.Feedback{ReservationId: r.ID, Rating: 4}); err != nil {
			return err
		}
		return txCatalog.RecordRating(ctx, p.ID, 4)
	})
	require.NoError(t, err)

	got, err = repo.GetByID(ctx, r.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Feedback)
	prop, err = catalog.GetProperty(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, prop.RatingCount)
	assert.InDelta(t, 4.0, prop.AverageRating, 1e-9)
}
