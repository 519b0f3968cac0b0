package services

import (
	"context"
	"fmt"

	"github.com/dzoniops/booking-service/calendar"
	"github.com/dzoniops/booking-service/models"
	"github.com/dzoniops/booking-service/utils"
)

type QuoteInput struct {
	Adults     int
	Children   int
	TotalRooms int
	Extras     []models.Extra
	TotalDays  int
}

// Quote prices a stay. Two children share one child unit, and a room holds at
// most two adults: adults beyond one per room turn single rooms into couple rooms.
func Quote(room *models.Room, in QuoteInput) (*models.PriceBreakdown, error) {
	if err := validateQuote(room, in); err != nil {
		return nil, err
	}

	childUnits := (in.Children + 1) / 2
	singleUnits, coupleUnits := in.TotalRooms, 0
	if in.Adults > in.TotalRooms {
		excess := in.Adults - in.TotalRooms
		if excess > in.TotalRooms {
			return nil, newError(InvalidOccupancy,
				"%d adults do not fit in %d rooms", in.Adults, in.TotalRooms)
		}
		coupleUnits = excess
		singleUnits = in.TotalRooms - excess
	}

	b := &models.PriceBreakdown{
		Adults:     in.Adults,
		Children:   in.Children,
		TotalRooms: in.TotalRooms,
		TotalDays:  in.TotalDays,
		Child:      lineItem("Children accommodation", childUnits, room.Price.Child),
		Single:     lineItem("Single occupancy", singleUnits, room.Price.Single),
		Couple:     lineItem("Couple occupancy", coupleUnits, room.Price.Couple),
		Extras:     make([]models.ExtraCharge, 0, len(in.Extras)),
	}
	b.TotalRoomPrice = b.Child.Total + b.Single.Total + b.Couple.Total

	people := float64(in.Adults + in.Children)
	for _, e := range in.Extras {
		charge := models.ExtraCharge{Facility: e.Facility, Price: e.Price, Single: e.Single, TotalPrice: e.Price}
		if !e.Single {
			charge.TotalPrice = e.Price * people
		}
		b.Extras = append(b.Extras, charge)
		b.ExtrasTotal += charge.TotalPrice
	}

	b.TotalPerDay = b.TotalRoomPrice + b.ExtrasTotal
	b.GrandTotal = b.TotalPerDay * float64(in.TotalDays)
	return b, nil
}

func lineItem(label string, units int, rate float64) models.LineItem {
	return models.LineItem{
		Label: fmt.Sprintf("%s in %d rooms", label, units),
		Units: units,
		Rate:  rate,
		Total: float64(units) * rate,
	}
}

func validateQuote(room *models.Room, in QuoteInput) error {
	switch {
	case room == nil:
		return newError(ValidationError, "room is required")
	case in.TotalRooms < 1:
		return newError(ValidationError, "total rooms must be at least 1")
	case in.TotalDays < 1:
		return newError(ValidationError, "total days must be at least 1")
	case in.Adults < 0 || in.Children < 0:
		return newError(ValidationError, "guest counts must not be negative")
	case room.Price.Single < 0 || room.Price.Couple < 0 || room.Price.Child < 0:
		return newError(ValidationError, "room %d has a negative rate", room.ID)
	}
	for _, e := range in.Extras {
		if e.Price < 0 {
			return newError(ValidationError, "extra %q has a negative price", e.Facility)
		}
	}
	return nil
}

// QuoteRequest asks for the price of a room. Extras are facility names offered
// by the room's property. TotalDays falls back to the nights between the dates.
type QuoteRequest struct {
	Adults     int      `json:"adults"      validate:"gte=0"`
	Children   int      `json:"children"    validate:"gte=0"`
	TotalRooms int      `json:"total_rooms" validate:"gte=1"`
	TotalDays  int      `json:"total_days"  validate:"gte=0"`
	CheckIn    string   `json:"check_in"    validate:"omitempty,ddmmyyyy"`
	CheckOut   string   `json:"check_out"   validate:"omitempty,ddmmyyyy"`
	Extras     []string `json:"extras"`
}

type Pricer struct {
	catalog Catalog
	metrics *Metrics
}

func NewPricer(catalog Catalog, metrics *Metrics) *Pricer {
	utils.InitValidator()
	return &Pricer{catalog: catalog, metrics: metrics}
}

func (p *Pricer) QuoteRoom(ctx context.Context, roomID int64, req QuoteRequest) (*models.PriceBreakdown, error) {
	if err := utils.Validate.Struct(req); err != nil {
		return nil, wrapError(ValidationError, err, "invalid quote request")
	}
	room, err := p.catalog.GetRoom(ctx, roomID)
	if err != nil {
		return nil, lookupError(err, "room %d", roomID)
	}

	in := QuoteInput{
		Adults:     req.Adults,
		Children:   req.Children,
		TotalRooms: req.TotalRooms,
		TotalDays:  req.TotalDays,
	}
	if in.TotalDays == 0 && req.CheckIn != "" && req.CheckOut != "" {
		stay, err := parseStay(req.CheckIn, req.CheckOut)
		if err != nil {
			return nil, err
		}
		in.TotalDays = stay.Nights()
	}
	if len(req.Extras) > 0 {
		property, err := p.catalog.GetProperty(ctx, room.PropertyId)
		if err != nil {
			return nil, lookupError(err, "property %d", room.PropertyId)
		}
		if in.Extras, err = resolveExtras(property, req.Extras); err != nil {
			return nil, err
		}
	}

	b, err := Quote(room, in)
	if err != nil {
		return nil, err
	}
	p.metrics.quoted()
	return b, nil
}

func resolveExtras(property *models.Property, facilities []string) ([]models.Extra, error) {
	extras := make([]models.Extra, 0, len(facilities))
	for _, name := range facilities {
		e, ok := property.FindExtra(name)
		if !ok {
			return nil, newError(ValidationError, "property %d does not offer %q", property.ID, name)
		}
		extras = append(extras, e)
	}
	return extras, nil
}

func parseStay(checkIn, checkOut string) (calendar.Range, error) {
	in, err := calendar.Parse(checkIn)
	if err != nil {
		return calendar.Range{}, wrapError(ValidationError, err, "invalid check-in %q", checkIn)
	}
	out, err := calendar.Parse(checkOut)
	if err != nil {
		return calendar.Range{}, wrapError(ValidationError, err, "invalid check-out %q", checkOut)
	}
	return stayOf(in, out)
}
