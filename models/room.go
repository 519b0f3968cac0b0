package models

import (
	"time"

	"gorm.io/datatypes"
)

// RoomPrice holds the day rates of a room type.
type RoomPrice struct {
	Single float64 `json:"single" validate:"min=0"`
	Couple float64 `json:"couple" validate:"min=0"`
	Child  float64 `json:"child"  validate:"min=0"`
}

type Room struct {
	ID               int64                        `json:"id"                gorm:"primaryKey"`
	PropertyId       int64                        `json:"property_id"       gorm:"not null;index"`
	Type             string                       `json:"type"`
	BedConfiguration string                       `json:"bed_configuration"`
	Facilities       datatypes.JSONType[[]string] `json:"facilities"`
	Price            RoomPrice                    `json:"price"             gorm:"embedded;embeddedPrefix:price_"`
	Count            int                          `json:"count"             gorm:"not null;default:0"`
	Images           datatypes.JSONType[[]string] `json:"images"`
	CreatedAt        time.Time                    `json:"created_at"`
	UpdatedAt        time.Time                    `json:"updated_at"`
}
