package models

// LineItem is one priced row of a quote. Rows with Units == 0 are kept so the
// client can render the whole breakdown.
type LineItem struct {
	Label string  `json:"label"`
	Units int     `json:"units"`
	Rate  float64 `json:"rate"`
	Total float64 `json:"total"`
}

type ExtraCharge struct {
	Facility   string  `json:"facility"`
	Price      float64 `json:"price"`
	Single     bool    `json:"single"`
	TotalPrice float64 `json:"total_price"`
}

// PriceBreakdown is an itemized quote for a stay. Room and extras totals are
// per day, GrandTotal covers all TotalDays.
type PriceBreakdown struct {
	Adults         int           `json:"adults"`
	Children       int           `json:"children"`
	TotalRooms     int           `json:"total_rooms"`
	TotalDays      int           `json:"total_days"`
	Child          LineItem      `json:"child"`
	Single         LineItem      `json:"single"`
	Couple         LineItem      `json:"couple"`
	TotalRoomPrice float64       `json:"total_room_price"`
	Extras         []ExtraCharge `json:"extras"`
	ExtrasTotal    float64       `json:"extras_total"`
	TotalPerDay    float64       `json:"total_per_day"`
	GrandTotal     float64       `json:"grand_total"`
}
