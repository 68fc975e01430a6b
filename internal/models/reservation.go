package models

import "time"

// Reservation is a guest's booking, joined with the booked property's
// title, nightly cost and average review rating.
type Reservation struct {
	ID            int64     `json:"id"`
	GuestID       int64     `json:"guest_id"`
	PropertyID    int64     `json:"property_id"`
	StartDate     time.Time `json:"start_date"`
	EndDate       time.Time `json:"end_date"`
	Title         string    `json:"title"`
	CostPerNight  int64     `json:"cost_per_night"`
	AverageRating float64   `json:"average_rating"`
}
