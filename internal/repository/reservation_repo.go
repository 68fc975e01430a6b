package repository

import (
	"context"
	"database/sql"
	"fmt"

	"lightbnb/internal/models"
)

type ReservationRepository struct {
	db *sql.DB
}

func NewReservationRepository(db *sql.DB) *ReservationRepository {
	return &ReservationRepository{db: db}
}

var _ Reservations = (*ReservationRepository)(nil)

// Grouping by both ids keeps one row per reservation even when a guest has
// booked the same property more than once.
const selectGuestReservationsSQL = `
	SELECT reservations.id, reservations.guest_id, reservations.property_id,
		reservations.start_date, reservations.end_date,
		properties.title, properties.cost_per_night,
		avg(property_reviews.rating) AS average_rating
	FROM reservations
	JOIN properties ON reservations.property_id = properties.id
	JOIN property_reviews ON properties.id = property_reviews.property_id
	WHERE reservations.guest_id = $1
	GROUP BY properties.id, reservations.id
	ORDER BY reservations.start_date
	LIMIT $2
`

// ListForGuest returns up to limit reservations of a guest ordered by start
// date, each with the property's title, nightly cost and average rating.
func (r *ReservationRepository) ListForGuest(ctx context.Context, guestID int64, limit int) ([]models.Reservation, error) {
	rows, err := r.db.QueryContext(ctx, selectGuestReservationsSQL, guestID, normalizeLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("select reservations for guest %d: %w", guestID, err)
	}
	defer rows.Close()

	out := make([]models.Reservation, 0, normalizeLimit(limit))
	for rows.Next() {
		var res models.Reservation
		if err := rows.Scan(
			&res.ID,
			&res.GuestID,
			&res.PropertyID,
			&res.StartDate,
			&res.EndDate,
			&res.Title,
			&res.CostPerNight,
			&res.AverageRating,
		); err != nil {
			return nil, fmt.Errorf("scan reservation for guest %d: %w", guestID, err)
		}
		res.StartDate = res.StartDate.UTC()
		res.EndDate = res.EndDate.UTC()
		out = append(out, res)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate reservations for guest %d: %w", guestID, err)
	}
	return out, nil
}
