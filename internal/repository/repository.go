package repository

import (
	"context"
	"database/sql"

	"lightbnb/internal/models"
)

// DefaultLimit is used when a list operation is called with a non-positive limit.
const DefaultLimit = 10

type Users interface {
	GetByEmail(ctx context.Context, email string) (models.User, error)
	GetByID(ctx context.Context, id int64) (models.User, error)
	Create(ctx context.Context, u models.NewUser) (models.User, error)
}

type Reservations interface {
	ListForGuest(ctx context.Context, guestID int64, limit int) ([]models.Reservation, error)
}

type Properties interface {
	Search(ctx context.Context, f models.PropertyFilter, limit int) ([]models.Property, error)
	Create(ctx context.Context, p models.NewProperty) (models.Property, error)
}

type Repository struct {
	Users        Users
	Reservations Reservations
	Properties   Properties
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		Users:        NewUserRepository(db),
		Reservations: NewReservationRepository(db),
		Properties:   NewPropertyRepository(db),
	}
}

func normalizeLimit(limit int) int {
	if limit <= 0 {
		return DefaultLimit
	}
	return limit
}
