package services

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/dzoniops/booking-service/models"
)

func res(id int64, status models.ReservationStatus, payment models.PaymentStatus, mode models.BookingMode, checkIn time.Time, total float64) models.Reservation {
	return models.Reservation{
		ID:            id,
		Status:        status,
		PaymentStatus: payment,
		Mode:          mode,
		CheckIn:       checkIn,
		CheckOut:      checkIn.AddDate(0, 0, 1),
		GrandTotal:    total,
	}
}

func ids(rs []models.Reservation) []int64 {
	out := []int64{}
	for _, r := range rs {
		out = append(out, r.ID)
	}
	return out
}

func TestSummarizePayments(t *testing.T) {
	day := fixedNow
	reservations := []models.Reservation{
		res(1, models.StatusBooked, models.PaymentDue, models.ModeOnline, day, 100),
		res(2, models.StatusBooked, models.PaymentPartiallyPaid, models.ModeOnline, day, 50),
		res(3, models.StatusConfirmed, models.PaymentPaid, models.ModeOffline, day, 300),
		res(4, models.StatusConfirmed, models.PaymentDue, models.ModeOnline, day, 40),
		res(5, models.StatusCheckOut, models.PaymentPaid, models.ModeOnline, day, 1000),
		res(6, models.StatusCancelled, models.PaymentDue, models.ModeOnline, day, 70),
	}

	sum := SummarizePayments(reservations)
	assert.Equal(t, 490.0, sum.Expected)
	assert.Equal(t, 300.0, sum.Collected)
	assert.Equal(t, 100.0, sum.Due)

	assert.Equal(t, PaymentSummary{}, SummarizePayments(nil))
}

func TestBuildOverview(t *testing.T) {
	today := time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)
	reservations := []models.Reservation{
		res(1, models.StatusBooked, models.PaymentDue, models.ModeOnline, today.AddDate(0, 0, 3), 0),
		res(2, models.StatusBooked, models.PaymentPaid, models.ModeOffline, today.AddDate(0, 0, -3), 0),
		res(3, models.StatusConfirmed, models.PaymentPaid, models.ModeOnline, today, 0),
		res(4, models.StatusConfirmed, models.PaymentDue, models.ModeOnline, today.AddDate(0, 0, 1), 0),
		res(5, models.StatusCheckIn, models.PaymentPaid, models.ModeOffline, today.AddDate(0, 0, -1), 0),
		res(6, models.StatusCheckOut, models.PaymentPaid, models.ModeOnline, today.AddDate(0, 0, -9), 0),
		res(7, models.StatusBooked, models.PaymentDue, models.ModeOnline, today, 0),
		res(8, models.StatusConfirmed, models.PaymentPartiallyPaid, models.ModeOffline, today.AddDate(0, 0, 2), 0),
	}

	ov := BuildOverview(reservations, fixedNow)
	assert.Equal(t, 8, ov.TotalReservations)
	assert.Equal(t, []int64{1, 7}, ids(ov.Upcoming))
	assert.Equal(t, []int64{1, 7}, ids(ov.Booked))
	assert.Equal(t, []int64{3}, ids(ov.Confirmed), "only fully paid confirmations")
	assert.Equal(t, []int64{3}, ids(ov.Today))
	assert.Equal(t, []int64{5}, ids(ov.Active))
	assert.Equal(t, []int64{6}, ids(ov.Past))
	assert.Equal(t, []int64{2, 5, 8}, ids(ov.Offline))
	assert.Equal(t, []int64{1, 3, 4, 6, 7}, ids(ov.Online))
}

func TestDashboard_OwnerScope(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	other := &models.Property{Name: "Hills", OwnedBy: stranger.ID}
	require.NoError(t, f.catalog.CreateProperty(ctx, other))
	otherRoom := &models.Room{PropertyId: other.ID, Count: 2, Price: models.RoomPrice{Single: 80}}
	require.NoError(t, f.catalog.CreateRoom(ctx, otherRoom))

	_, err := f.svc.Create(ctx, guest, CreateReservation{RoomId: f.room.ID, Rooms: 1, Adults: 1, CheckIn: "20-06-2025", CheckOut: "22-06-2025"})
	require.NoError(t, err)
	_, err = f.svc.Create(ctx, guest, CreateReservation{RoomId: otherRoom.ID, Rooms: 1, Adults: 1, CheckIn: "20-06-2025", CheckOut: "21-06-2025"})
	require.NoError(t, err)

	d := NewDashboard(f.svc, ClockFunc(func() time.Time { return fixedNow }))

	mine, err := d.Payments(ctx, owner.ID)
	require.NoError(t, err)
	assert.Equal(t, 2000.0, mine.Expected)
	assert.Equal(t, 2000.0, mine.Due)
	assert.Zero(t, mine.Collected)

	global, err := d.Payments(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, 2080.0, global.Expected)

	nobody, err := d.Payments(ctx, 4242)
	require.NoError(t, err)
	assert.Equal(t, PaymentSummary{}, nobody)

	ov, err := d.Overview(ctx, owner.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, ov.TotalReservations)
	assert.Len(t, ov.Upcoming, 1)
}

func TestExporter_Overview(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.book(t, 1, "20-06-2025", "21-06-2025")

	var buf bytes.Buffer
	e := NewExporter(NewDashboard(f.svc, ClockFunc(func() time.Time { return fixedNow })))
	require.NoError(t, e.Overview(ctx, owner.ID, &buf))

	wb, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer wb.Close()

	assert.Contains(t, wb.GetSheetList(), "Summary")
	assert.Contains(t, wb.GetSheetList(), "Upcoming")

	total, err := wb.GetCellValue("Summary", "B2")
	require.NoError(t, err)
	assert.Equal(t, "1", total)

	rows, err := wb.GetRows("Upcoming")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Check-in", rows[0][6])
	assert.Equal(t, "20-06-2025", rows[1][6])
}

func TestDashboard_SkipsExpired(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	book := func(checkIn, checkOut string) *models.Reservation {
		r, err := f.svc.Create(ctx, guest, CreateReservation{RoomId: f.room.ID, Rooms: 1, Adults: 1, CheckIn: checkIn, CheckOut: checkOut})
		require.NoError(t, err)
		return r
	}
	book(daysAgo(200), daysAgo(199))
	recent := book("20-06-2025", "21-06-2025")
	require.Equal(t, int64(2), f.count(t))

	d := NewDashboard(f.svc, ClockFunc(func() time.Time { return fixedNow }))

	payments, err := d.Payments(ctx, owner.ID)
	require.NoError(t, err)
	assert.Equal(t, 1000.0, payments.Expected)
	assert.Equal(t, int64(1), f.count(t), "expired booking purged")

	book(daysAgo(200), daysAgo(199))
	ov, err := d.Overview(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, ov.TotalReservations)
	assert.Equal(t, []int64{recent.ID}, ids(ov.Upcoming))

	book(daysAgo(200), daysAgo(199))
	var buf bytes.Buffer
	require.NoError(t, NewExporter(d).Overview(ctx, owner.ID, &buf))
	wb, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer wb.Close()
	total, err := wb.GetCellValue("Summary", "B2")
	require.NoError(t, err)
	assert.Equal(t, "1", total)
	expected, err := wb.GetCellValue("Summary", "B3")
	require.NoError(t, err)
	assert.Equal(t, "1000", expected)
	assert.Equal(t, int64(1), f.count(t))
}

func TestDashboard_RemoteCatalogOwnerScope(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.book(t, 1, "20-06-2025", "21-06-2025")

	remote := &remoteCatalog{local: f.catalog, owned: map[int64][]int64{owner.ID: {f.property.ID}}}
	svc := NewReservationService(f.store, remote, WithClock(ClockFunc(func() time.Time { return fixedNow })))

	// properties live only in the remote catalog
	require.NoError(t, f.db.Exec("DELETE FROM extras").Error)
	require.NoError(t, f.db.Exec("DELETE FROM properties").Error)

	ov, err := NewDashboard(svc, ClockFunc(func() time.Time { return fixedNow })).Overview(ctx, owner.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, ov.TotalReservations)

	nobody, err := NewDashboard(svc, nil).Payments(ctx, stranger.ID)
	require.NoError(t, err)
	assert.Equal(t, PaymentSummary{}, nobody)
}
