package service

import (
	"context"
	"fmt"

	"lightbnb/internal/logger"
	"lightbnb/internal/models"
	"lightbnb/internal/repository"
)

type ReservationService struct {
	repo repository.Reservations
	log  *logger.Logger
}

func NewReservationService(repo repository.Reservations, log *logger.Logger) *ReservationService {
	return &ReservationService{repo: repo, log: log}
}

// ListForGuest returns at most limit reservations of the guest ordered by
// start date. A non-positive limit means repository.DefaultLimit.
func (s *ReservationService) ListForGuest(ctx context.Context, guestID int64, limit int) ([]models.Reservation, error) {
	if guestID <= 0 {
		return nil, invalid(fmt.Errorf("guest id must be positive, got %d", guestID))
	}
	if limit <= 0 {
		limit = repository.DefaultLimit
	}

	out, err := s.repo.ListForGuest(ctx, guestID, limit)
	if err != nil {
		s.log.Errorw("reservations_list_failed", "guest_id", guestID, "limit", limit, "err", err)
		return nil, err
	}
	s.log.Debugw("reservations_listed", "guest_id", guestID, "count", len(out))
	return out, nil
}
