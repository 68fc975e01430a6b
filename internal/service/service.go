package service

import (
	"context"
	"errors"
	"fmt"

	"lightbnb/internal/logger"
	"lightbnb/internal/models"
	"lightbnb/internal/repository"

	"github.com/go-playground/validator/v10"
)

// ErrInvalidInput is returned when arguments fail validation before any
// query is issued.
var ErrInvalidInput = errors.New("invalid input")

// Users exposes account lookups and sign-up.
type Users interface {
	SignUp(ctx context.Context, name, email, password string) (models.User, error)
	GetByEmail(ctx context.Context, email string) (models.User, error)
	GetByID(ctx context.Context, id int64) (models.User, error)
}

// Reservations exposes a guest's booking history.
type Reservations interface {
	ListForGuest(ctx context.Context, guestID int64, limit int) ([]models.Reservation, error)
}

// Properties exposes listing search and creation.
type Properties interface {
	Search(ctx context.Context, f models.PropertyFilter, limit int) ([]models.Property, error)
	Add(ctx context.Context, p models.NewProperty) (models.Property, error)
}

type Service struct {
	Users
	Reservations
	Properties
}

// NewService wires the repository layer into concrete services. A nil log
// discards output.
func NewService(repos *repository.Repository, log *logger.Logger) *Service {
	if log == nil {
		log = logger.Nop()
	}
	v := validator.New()
	return &Service{
		Users:        NewUserService(repos.Users, v, log.Component("users")),
		Reservations: NewReservationService(repos.Reservations, log.Component("reservations")),
		Properties:   NewPropertyService(repos.Properties, v, log.Component("properties")),
	}
}

// invalid wraps a validation failure so callers can match ErrInvalidInput.
func invalid(err error) error {
	return fmt.Errorf("%w: %v", ErrInvalidInput, err)
}
