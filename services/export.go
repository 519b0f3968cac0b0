package services

import (
	"context"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/dzoniops/booking-service/calendar"
	"github.com/dzoniops/booking-service/models"
)

const summarySheet = "Summary"

var reservationHeader = []any{
	"ID", "Room", "Property", "Guest", "Booked by", "Rooms",
	"Check-in", "Check-out", "Status", "Payment", "Mode", "Grand total",
}

// Exporter writes dashboard data as an XLSX workbook.
type Exporter struct {
	dashboard *Dashboard
}

func NewExporter(dashboard *Dashboard) *Exporter {
	return &Exporter{dashboard: dashboard}
}

// Overview writes a summary sheet followed by one sheet per reservation bucket.
func (e *Exporter) Overview(ctx context.Context, ownerID int64, w io.Writer) error {
	payments, err := e.dashboard.Payments(ctx, ownerID)
	if err != nil {
		return err
	}
	ov, err := e.dashboard.Overview(ctx, ownerID)
	if err != nil {
		return err
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return wrapError(Internal, err, "rename sheet")
	}
	summary := [][]any{
		{"Metric", "Value"},
		{"Total reservations", ov.TotalReservations},
		{"Expected payment", payments.Expected},
		{"Collected payment", payments.Collected},
		{"Due payment", payments.Due},
	}
	for i, row := range summary {
		if err := f.SetSheetRow(summarySheet, fmt.Sprintf("A%d", i+1), &row); err != nil {
			return wrapError(Internal, err, "write summary")
		}
	}

	buckets := []struct {
		name string
		rows []models.Reservation
	}{
		{"Upcoming", ov.Upcoming},
		{"Booked", ov.Booked},
		{"Confirmed", ov.Confirmed},
		{"Today", ov.Today},
		{"Active", ov.Active},
		{"Past", ov.Past},
		{"Online", ov.Online},
		{"Offline", ov.Offline},
	}
	for _, b := range buckets {
		if err := writeReservations(f, b.name, b.rows); err != nil {
			return wrapError(Internal, err, "write sheet %s", b.name)
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return wrapError(Internal, err, "write workbook")
	}
	return nil
}

func writeReservations(f *excelize.File, sheet string, reservations []models.Reservation) error {
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}
	if err := f.SetSheetRow(sheet, "A1", &reservationHeader); err != nil {
		return err
	}
	for i, r := range reservations {
		row := []any{
			r.ID,
			r.RoomId,
			r.PropertyId,
			r.GuestDetails.FullName(),
			r.BookedBy,
			r.Rooms,
			calendar.Format(r.CheckIn),
			calendar.Format(r.CheckOut),
			string(r.Status),
			string(r.PaymentStatus),
			string(r.Mode),
			grandTotal(r),
		}
		if err := f.SetSheetRow(sheet, fmt.Sprintf("A%d", i+2), &row); err != nil {
			return err
		}
	}
	return nil
}
