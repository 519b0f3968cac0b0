package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/dzoniops/booking-service/db"
	"github.com/dzoniops/booking-service/models"
	"github.com/dzoniops/booking-service/notify"
	"github.com/dzoniops/booking-service/repository"
)

var (
	fixedNow = time.Date(2025, time.June, 15, 10, 30, 0, 0, time.UTC)

	owner    = models.Actor{ID: 10, Username: "owner", Role: models.RolePropertyAdmin, Approved: true}
	guest    = models.Actor{ID: 30, Username: "ana", Role: models.RoleUser}
	stranger = models.Actor{ID: 11, Username: "other", Role: models.RolePropertyAdmin, Approved: true}
	admin    = models.Actor{ID: 1, Username: "root", Role: models.RoleAdmin}
)

type fixture struct {
	db       *gorm.DB
	catalog  *repository.GormCatalogRepository
	store    *repository.GormReservationRepository
	property *models.Property
	room     *models.Room
	outbox   *notify.ChannelOutbox
	svc      *ReservationService
}

func newFixture(t *testing.T, opts ...ServiceOption) *fixture {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: gormlogger.Discard})
	require.NoError(t, err)
	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.Migrate(gdb))

	f := &fixture{
		db:      gdb,
		catalog: repository.NewGormCatalogRepository(gdb),
		store:   repository.NewGormReservationRepository(gdb),
		outbox:  notify.NewChannelOutbox(64),
	}

	ctx := context.Background()
	f.property = &models.Property{
		Name:    "Seaside",
		OwnedBy: owner.ID,
		Extras: []models.Extra{
			{Facility: "wifi", Price: 200, Single: true},
			{Facility: "breakfast", Price: 150},
		},
	}
	require.NoError(t, f.catalog.CreateProperty(ctx, f.property))
	f.room = &models.Room{
		PropertyId: f.property.ID,
		Type:       "deluxe",
		Count:      3,
		Price:      models.RoomPrice{Single: 1000, Couple: 1800, Child: 500},
	}
	require.NoError(t, f.catalog.CreateRoom(ctx, f.room))

	base := []ServiceOption{
		WithClock(ClockFunc(func() time.Time { return fixedNow })),
		WithPublisher(f.outbox),
	}
	f.svc = NewReservationService(f.store, f.catalog, append(base, opts...)...)
	return f
}

func (f *fixture) book(t *testing.T, rooms int, checkIn, checkOut string) *models.Reservation {
	t.Helper()
	r, err := f.svc.Create(context.Background(), guest, CreateReservation{
		RoomId:   f.room.ID,
		Rooms:    rooms,
		CheckIn:  checkIn,
		CheckOut: checkOut,
		Email:    "ana@example.com",
	})
	require.NoError(t, err)
	return r
}

func (f *fixture) count(t *testing.T) int64 {
	t.Helper()
	var n int64
	require.NoError(t, f.db.Model(&models.Reservation{}).Count(&n).Error)
	return n
}

// daysAgo renders today minus n days as DD-MM-YYYY.
func daysAgo(n int) string {
	return fixedNow.AddDate(0, 0, -n).Format("02-01-2006")
}

type failingPublisher struct{}

func (failingPublisher) Publish(context.Context, notify.Event) error {
	return errors.New("broker down")
}

// remoteCatalog behaves like the gRPC catalog client: rooms and properties
// are read from local, ownership and ratings live outside the database.
type remoteCatalog struct {
	local       *repository.GormCatalogRepository
	owned       map[int64][]int64
	failRatings int
	ratings     []float64
}

func (c *remoteCatalog) GetRoom(ctx context.Context, id int64) (*models.Room, error) {
	return c.local.GetRoom(ctx, id)
}

func (c *remoteCatalog) GetProperty(ctx context.Context, id int64) (*models.Property, error) {
	return c.local.GetProperty(ctx, id)
}

func (c *remoteCatalog) RecordRating(_ context.Context, _ int64, rating float64) error {
	if c.failRatings > 0 {
		c.failRatings--
		return errors.New("catalog unavailable")
	}
	c.ratings = append(c.ratings, rating)
	return nil
}

func (c *remoteCatalog) PropertiesOwnedBy(_ context.Context, ownerID int64) ([]int64, error) {
	return append([]int64{}, c.owned[ownerID]...), nil
}
