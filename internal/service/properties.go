package service

import (
	"context"
	"errors"
	"strings"

	"lightbnb/internal/logger"
	"lightbnb/internal/models"
	"lightbnb/internal/repository"

	"github.com/go-playground/validator/v10"
)

type PropertyService struct {
	repo     repository.Properties
	validate *validator.Validate
	log      *logger.Logger
}

func NewPropertyService(repo repository.Properties, v *validator.Validate, log *logger.Logger) *PropertyService {
	return &PropertyService{repo: repo, validate: v, log: log}
}

var errPriceRange = errors.New("minimum_price_per_night exceeds maximum_price_per_night")

// Search lists properties matching f, cheapest first. City is matched as
// supplied.
func (s *PropertyService) Search(ctx context.Context, f models.PropertyFilter, limit int) ([]models.Property, error) {
	if err := s.validate.Struct(f); err != nil {
		return nil, invalid(err)
	}
	if f.MinimumPricePerNight > 0 && f.MaximumPricePerNight > 0 && f.MinimumPricePerNight > f.MaximumPricePerNight {
		return nil, invalid(errPriceRange)
	}
	if limit <= 0 {
		limit = repository.DefaultLimit
	}

	out, err := s.repo.Search(ctx, f, limit)
	if err != nil {
		s.log.Errorw("property_search_failed", "filter", f, "limit", limit, "err", err)
		return nil, err
	}
	s.log.Debugw("property_search", "filter", f, "limit", limit, "count", len(out))
	return out, nil
}

// Add validates and stores a new listing; the store assigns its id.
func (s *PropertyService) Add(ctx context.Context, p models.NewProperty) (models.Property, error) {
	p.Title = strings.TrimSpace(p.Title)
	p.City = strings.TrimSpace(p.City)
	if err := s.validate.Struct(p); err != nil {
		return models.Property{}, invalid(err)
	}

	out, err := s.repo.Create(ctx, p)
	if err != nil {
		s.log.Errorw("property_add_failed", "owner_id", p.OwnerID, "title", p.Title, "err", err)
		return models.Property{}, err
	}
	s.log.Infow("property_added", "property_id", out.ID, "owner_id", out.OwnerID)
	return out, nil
}
