//go:build integration

package db

import (
	"context"
	"log"
	"os"
	"testing"
	"time"

	"github.com/docker/go-connections/nat"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/gorm"

	"github.com/dzoniops/booking-service/config"
	"github.com/dzoniops/booking-service/models"
)

var testDB *gorm.DB

func setup() (testcontainers.Container, error) {
	if err := godotenv.Load("../.env"); err != nil {
		log.Println("no .env file, using defaults")
	}
	os.Setenv("AUTH_DISABLED", "true")
	if os.Getenv("PGPASSWORD") == "" {
		os.Setenv("PGPASSWORD", "postgres")
	}
	req := testcontainers.ContainerRequest{
		Image:        "postgres:12",
		ExposedPorts: []string{"5432/tcp"},
		AutoRemove:   true,
		Env: map[string]string{
			"POSTGRES_USER":     getenv("PGUSER", "postgres"),
			"POSTGRES_PASSWORD": os.Getenv("PGPASSWORD"),
			"POSTGRES_DB":       getenv("PGDATABASE", "reservations"),
		},
		WaitingFor: wait.ForListeningPort("5432/tcp"),
	}
	postgres, err := testcontainers.GenericContainer(
		context.Background(),
		testcontainers.GenericContainerRequest{
			ContainerRequest: req,
			Started:          true,
		},
	)
	if err != nil {
		return nil, err
	}
	host, err := postgres.Host(context.Background())
	if err != nil {
		return postgres, err
	}
	dbPort, err := postgres.MappedPort(context.Background(), nat.Port("5432/tcp"))
	if err != nil {
		return postgres, err
	}
	os.Setenv("PGHOST", host)
	os.Setenv("PGPORT", dbPort.Port())

	cfg, err := config.Load()
	if err != nil {
		return postgres, err
	}
	// the port is listening before postgres accepts logins
	for i := 0; i < 20; i++ {
		testDB, err = InitDB(&cfg.DB)
		if err == nil {
			break
		}
		time.Sleep(500 * time.Millisecond)
	}
	return postgres, err
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func TestMain(m *testing.M) {
	container, err := setup()
	if err != nil {
		log.Fatal("error:", err)
	}
	code := m.Run()
	_ = container.Terminate(context.Background())
	os.Exit(code)
}

func TestMigrate_ReservationRoundTrip(t *testing.T) {
	property := models.Property{Name: "Seaside", OwnedBy: 1}
	require.NoError(t, testDB.Create(&property).Error)
	room := models.Room{PropertyId: property.ID, Type: "double", Count: 3}
	require.NoError(t, testDB.Create(&room).Error)

	checkIn := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	checkOut := time.Date(2025, 1, 3, 0, 0, 0, 0, time.UTC)
	reservation := models.Reservation{
		RoomId:        room.ID,
		PropertyId:    property.ID,
		Rooms:         2,
		CheckIn:       checkIn,
		CheckOut:      checkOut,
		Status:        models.StatusBooked,
		PaymentStatus: models.PaymentDue,
	}
	reservation.SetBookedDates([]time.Time{checkIn, checkIn.AddDate(0, 0, 1), checkOut})
	require.NoError(t, testDB.Create(&reservation).Error)

	var got models.Reservation
	require.NoError(t, testDB.Preload("BookedDates").First(&got, reservation.ID).Error)
	require.Len(t, got.BookedDates, 3)
	require.Equal(t, checkIn, got.CheckIn.UTC())
	require.Equal(t, models.StatusBooked, got.Status)

	require.NoError(t, testDB.Delete(&got).Error)
	var left int64
	testDB.Model(&models.BookedDate{}).Where("reservation_id = ?", reservation.ID).Count(&left)
	require.Zero(t, left)
}
