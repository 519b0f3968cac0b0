package utils

import (
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/dzoniops/booking-service/calendar"
	"github.com/dzoniops/booking-service/models"
)

var (
	Validate *validator.Validate
	once     sync.Once
)

// InitValidator builds the shared validator. Calling it again is a no-op.
func InitValidator() {
	once.Do(func() {
		Validate = validator.New()
		Validate.RegisterValidation("ddmmyyyy", DayString)
		Validate.RegisterValidation("booking-mode", BookingMode)
	})
}

// DayString accepts a DD-MM-YYYY (or ISO) calendar day.
func DayString(fl validator.FieldLevel) bool {
	_, err := calendar.Parse(fl.Field().String())
	return err == nil
}

func BookingMode(fl validator.FieldLevel) bool {
	switch models.BookingMode(fl.Field().String()) {
	case models.ModeOnline, models.ModeOffline:
		return true
	}
	return false
}
