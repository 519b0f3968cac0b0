package repository

import (
	"gorm.io/datatypes"

	"github.com/dzoniops/booking-service/models"
)

func datatypesBreakdown(total float64) datatypes.JSONType[models.PriceBreakdown] {
	return datatypes.NewJSONType(models.PriceBreakdown{GrandTotal: total, TotalDays: 1})
}
