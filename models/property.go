package models

import "time"

// Extra is an addable charge a property offers on top of the room rate.
// Single extras are a flat charge, the others are billed per person.
type Extra struct {
	ID         int64   `json:"id"          gorm:"primaryKey"`
	PropertyId int64   `json:"property_id" gorm:"not null;index"`
	Facility   string  `json:"facility"    gorm:"type:varchar(128);not null"`
	Price      float64 `json:"price"`
	Single     bool    `json:"single"`
}

type Property struct {
	ID            int64     `json:"id"             gorm:"primaryKey"`
	Name          string    `json:"name"`
	OwnedBy       int64     `json:"owned_by"       gorm:"not null;index"`
	AverageRating float64   `json:"average_rating" gorm:"not null;default:0"`
	RatingCount   int       `json:"rating_count"   gorm:"not null;default:0"`
	Extras        []Extra   `json:"extras"         gorm:"foreignKey:PropertyId;constraint:OnDelete:CASCADE"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// FindExtra looks up an offered extra by facility name.
func (p *Property) FindExtra(facility string) (Extra, bool) {
	for _, e := range p.Extras {
		if e.Facility == facility {
			return e, true
		}
	}
	return Extra{}, false
}
