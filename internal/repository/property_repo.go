package repository

import (
	"context"
	"database/sql"
	"fmt"
	"math"
	"strings"

	"lightbnb/internal/models"
)

type PropertyRepository struct {
	db *sql.DB
}

func NewPropertyRepository(db *sql.DB) *PropertyRepository {
	return &PropertyRepository{db: db}
}

var _ Properties = (*PropertyRepository)(nil)

// centsPerUnit converts filter prices (major units) to stored cost_per_night.
const centsPerUnit = 100

func toCents(major float64) int64 {
	return int64(math.Round(major * centsPerUnit))
}

const (
	propertyColumns = `properties.id, properties.owner_id, properties.title, properties.description,
		properties.thumbnail_photo_url, properties.cover_photo_url, properties.cost_per_night,
		properties.parking_spaces, properties.number_of_bathrooms, properties.number_of_bedrooms,
		properties.country, properties.street, properties.city, properties.province,
		properties.post_code, properties.active`

	searchPropertiesBaseSQL = `SELECT ` + propertyColumns + `, avg(property_reviews.rating) AS average_rating
		FROM properties
		JOIN property_reviews ON properties.id = property_reviews.property_id`

	insertPropertySQL = `
		INSERT INTO properties (owner_id, title, description, thumbnail_photo_url, cover_photo_url,
			cost_per_night, parking_spaces, number_of_bathrooms, number_of_bedrooms,
			country, street, city, province, post_code)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING id, owner_id, title, description, thumbnail_photo_url, cover_photo_url,
			cost_per_night, parking_spaces, number_of_bathrooms, number_of_bedrooms,
			country, street, city, province, post_code, active
	`
)

// buildSearchQuery renders the search statement for f. Only the filters that
// are set contribute clauses; the result is valid SQL for any combination.
func buildSearchQuery(f models.PropertyFilter, limit int) (string, []any) {
	var b queryBuilder

	if f.City != "" {
		b.Where("properties.city LIKE %s", "%"+f.City+"%")
	}
	if f.OwnerID != 0 {
		b.Where("properties.owner_id = %s", f.OwnerID)
	}
	// A price range needs both bounds; a lone bound is ignored.
	if f.MinimumPricePerNight != 0 && f.MaximumPricePerNight != 0 {
		b.Where("properties.cost_per_night >= %s AND properties.cost_per_night <= %s",
			toCents(f.MinimumPricePerNight), toCents(f.MaximumPricePerNight))
	}
	if f.MinimumRating != 0 {
		b.Having("avg(property_reviews.rating) >= %s", f.MinimumRating)
	}

	var q strings.Builder
	q.WriteString(searchPropertiesBaseSQL)
	q.WriteString(b.WhereClause())
	q.WriteString(" GROUP BY properties.id")
	q.WriteString(b.HavingClause())
	q.WriteString(" ORDER BY properties.cost_per_night")
	q.WriteString(" LIMIT " + b.Placeholder(normalizeLimit(limit)))

	return q.String(), b.Args()
}

// Search returns up to limit properties matching f, cheapest first, each with
// its average review rating. Properties without reviews are not listed.
func (r *PropertyRepository) Search(ctx context.Context, f models.PropertyFilter, limit int) ([]models.Property, error) {
	q, args := buildSearchQuery(f, limit)

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("search properties: %w", err)
	}
	defer rows.Close()

	out := make([]models.Property, 0, normalizeLimit(limit))
	for rows.Next() {
		p, err := scanProperty(rows, true)
		if err != nil {
			return nil, fmt.Errorf("scan property: %w", err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate properties: %w", err)
	}
	return out, nil
}

// Create stores a new listing; the id comes from the store's sequence.
func (r *PropertyRepository) Create(ctx context.Context, in models.NewProperty) (models.Property, error) {
	row := r.db.QueryRowContext(ctx, insertPropertySQL,
		in.OwnerID,
		in.Title,
		in.Description,
		in.ThumbnailPhotoURL,
		in.CoverPhotoURL,
		in.CostPerNight,
		in.ParkingSpaces,
		in.NumberOfBathrooms,
		in.NumberOfBedrooms,
		in.Country,
		in.Street,
		in.City,
		in.Province,
		in.PostCode,
	)
	p, err := scanProperty(row, false)
	if err != nil {
		return models.Property{}, fmt.Errorf("insert property %q: %w", in.Title, classify(err))
	}
	return p, nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanProperty(s rowScanner, withRating bool) (models.Property, error) {
	var p models.Property
	dest := []any{
		&p.ID,
		&p.OwnerID,
		&p.Title,
		&p.Description,
		&p.ThumbnailPhotoURL,
		&p.CoverPhotoURL,
		&p.CostPerNight,
		&p.ParkingSpaces,
		&p.NumberOfBathrooms,
		&p.NumberOfBedrooms,
		&p.Country,
		&p.Street,
		&p.City,
		&p.Province,
		&p.PostCode,
		&p.Active,
	}
	if withRating {
		dest = append(dest, &p.AverageRating)
	}
	err := s.Scan(dest...)
	return p, err
}
