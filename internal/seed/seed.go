// Package seed loads the static JSON fixture file into an empty store.
//
// Relations inside the file (owner_id, guest_id, property_id,
// reservation_id) are 1-based positions in the corresponding fixture list,
// not database ids; Apply maps them onto the ids the store generates.
package seed

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"
)

type User struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"` // bcrypt hash
}

type Property struct {
	OwnerID           int    `json:"owner_id"`
	Title             string `json:"title"`
	Description       string `json:"description"`
	ThumbnailPhotoURL string `json:"thumbnail_photo_url"`
	CoverPhotoURL     string `json:"cover_photo_url"`
	CostPerNight      int64  `json:"cost_per_night"`
	ParkingSpaces     int    `json:"parking_spaces"`
	NumberOfBathrooms int    `json:"number_of_bathrooms"`
	NumberOfBedrooms  int    `json:"number_of_bedrooms"`
	Country           string `json:"country"`
	Street            string `json:"street"`
	City              string `json:"city"`
	Province          string `json:"province"`
	PostCode          string `json:"post_code"`
}

type Reservation struct {
	GuestID    int    `json:"guest_id"`
	PropertyID int    `json:"property_id"`
	StartDate  string `json:"start_date"` // YYYY-MM-DD
	EndDate    string `json:"end_date"`
}

type Review struct {
	GuestID       int    `json:"guest_id"`
	PropertyID    int    `json:"property_id"`
	ReservationID int    `json:"reservation_id"`
	Rating        int    `json:"rating"`
	Message       string `json:"message"`
}

type Fixtures struct {
	Users           []User        `json:"users"`
	Properties      []Property    `json:"properties"`
	Reservations    []Reservation `json:"reservations"`
	PropertyReviews []Review      `json:"property_reviews"`
}

const dateLayout = "2006-01-02"

// Load reads and validates a fixture file.
func Load(path string) (*Fixtures, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file %q: %w", path, err)
	}
	var f Fixtures
	if err := json.Unmarshal(b, &f); err != nil {
		return nil, fmt.Errorf("parse seed file %q: %w", path, err)
	}
	if err := f.validate(); err != nil {
		return nil, fmt.Errorf("seed file %q: %w", path, err)
	}
	return &f, nil
}

func checkRef(kind string, i, ref, n int) error {
	if ref < 1 || ref > n {
		return fmt.Errorf("%s %d references position %d, have %d", kind, i+1, ref, n)
	}
	return nil
}

func (f *Fixtures) validate() error {
	for i, p := range f.Properties {
		if err := checkRef("property owner", i, p.OwnerID, len(f.Users)); err != nil {
			return err
		}
	}
	for i, r := range f.Reservations {
		if err := checkRef("reservation guest", i, r.GuestID, len(f.Users)); err != nil {
			return err
		}
		if err := checkRef("reservation property", i, r.PropertyID, len(f.Properties)); err != nil {
			return err
		}
		if _, err := time.Parse(dateLayout, r.StartDate); err != nil {
			return fmt.Errorf("reservation %d start_date: %w", i+1, err)
		}
		if _, err := time.Parse(dateLayout, r.EndDate); err != nil {
			return fmt.Errorf("reservation %d end_date: %w", i+1, err)
		}
	}
	for i, rv := range f.PropertyReviews {
		if err := checkRef("review guest", i, rv.GuestID, len(f.Users)); err != nil {
			return err
		}
		if err := checkRef("review property", i, rv.PropertyID, len(f.Properties)); err != nil {
			return err
		}
		if err := checkRef("review reservation", i, rv.ReservationID, len(f.Reservations)); err != nil {
			return err
		}
		if rv.Rating < 0 || rv.Rating > 5 {
			return fmt.Errorf("review %d rating %d out of range 0..5", i+1, rv.Rating)
		}
	}
	return nil
}

const (
	countUsersSQL = `SELECT count(*) FROM users`

	insertUserSQL = `INSERT INTO users (name, email, password) VALUES ($1, $2, $3) RETURNING id`

	insertPropertySQL = `
		INSERT INTO properties (owner_id, title, description, thumbnail_photo_url, cover_photo_url,
			cost_per_night, parking_spaces, number_of_bathrooms, number_of_bedrooms,
			country, street, city, province, post_code)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING id
	`

	insertReservationSQL = `INSERT INTO reservations (start_date, end_date, property_id, guest_id) VALUES ($1, $2, $3, $4) RETURNING id`

	insertReviewSQL = `INSERT INTO property_reviews (guest_id, property_id, reservation_id, rating, message) VALUES ($1, $2, $3, $4, $5)`
)

// Apply inserts the fixtures in a single transaction if the users table is
// empty. It reports whether anything was written.
func Apply(ctx context.Context, db *sql.DB, f *Fixtures) (bool, error) {
	if err := f.validate(); err != nil {
		return false, err
	}

	var n int
	if err := db.QueryRowContext(ctx, countUsersSQL).Scan(&n); err != nil {
		return false, fmt.Errorf("count users: %w", err)
	}
	if n > 0 {
		return false, nil
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("begin seed transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	userIDs := make([]int64, len(f.Users))
	for i, u := range f.Users {
		if err := tx.QueryRowContext(ctx, insertUserSQL, u.Name, strings.ToLower(u.Email), u.Password).Scan(&userIDs[i]); err != nil {
			return false, fmt.Errorf("seed user %q: %w", u.Email, err)
		}
	}

	propertyIDs := make([]int64, len(f.Properties))
	for i, p := range f.Properties {
		if err := tx.QueryRowContext(ctx, insertPropertySQL,
			userIDs[p.OwnerID-1],
			p.Title,
			p.Description,
			p.ThumbnailPhotoURL,
			p.CoverPhotoURL,
			p.CostPerNight,
			p.ParkingSpaces,
			p.NumberOfBathrooms,
			p.NumberOfBedrooms,
			p.Country,
			p.Street,
			p.City,
			p.Province,
			p.PostCode,
		).Scan(&propertyIDs[i]); err != nil {
			return false, fmt.Errorf("seed property %q: %w", p.Title, err)
		}
	}

	reservationIDs := make([]int64, len(f.Reservations))
	for i, r := range f.Reservations {
		start, _ := time.Parse(dateLayout, r.StartDate)
		end, _ := time.Parse(dateLayout, r.EndDate)
		if err := tx.QueryRowContext(ctx, insertReservationSQL,
			start, end, propertyIDs[r.PropertyID-1], userIDs[r.GuestID-1],
		).Scan(&reservationIDs[i]); err != nil {
			return false, fmt.Errorf("seed reservation %d: %w", i+1, err)
		}
	}

	for i, rv := range f.PropertyReviews {
		if _, err := tx.ExecContext(ctx, insertReviewSQL,
			userIDs[rv.GuestID-1],
			propertyIDs[rv.PropertyID-1],
			reservationIDs[rv.ReservationID-1],
			rv.Rating,
			rv.Message,
		); err != nil {
			return false, fmt.Errorf("seed review %d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("commit seed transaction: %w", err)
	}
	return true, nil
}
