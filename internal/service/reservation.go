// Package service contains the business operations of the reservation service.
// Services orchestrate repo calls; no SQL lives here.
package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/pkordes/reservation-service/internal/domain"
	"github.com/pkordes/reservation-service/internal/repo"
)

// DefaultSeedNames are inserted by Seed when the server starts against an
// empty store.
var DefaultSeedNames = []string{
	"Julia", "Mia", "Phil", "Dave", "Pieter",
	"Bridget", "Stéphane", "Josh", "Jennifer",
}

// ReservationService implements the operations behind every presentation surface.
type ReservationService struct {
	repo repo.ReservationRepo
}

// NewReservationService constructs a ReservationService backed by r.
func NewReservationService(r repo.ReservationRepo) *ReservationService {
	return &ReservationService{repo: r}
}

// Create persists a new reservation for name. Names are not validated and
// duplicates are allowed.
func (s *ReservationService) Create(ctx context.Context, name string) (domain.Reservation, error) {
	created, err := s.repo.Save(ctx, domain.NewReservation(name))
	if err != nil {
		return domain.Reservation{}, fmt.Errorf("service.ReservationService.Create: %w", err)
	}
	return created, nil
}

// Update renames an existing reservation.
// Returns domain.ErrNotFound if r.ID does not exist.
func (s *ReservationService) Update(ctx context.Context, r domain.Reservation) (domain.Reservation, error) {
	if r.IsNew() {
		return domain.Reservation{}, fmt.Errorf("service.ReservationService.Update: %w: id is required", domain.ErrValidation)
	}
	updated, err := s.repo.Save(ctx, r)
	if err != nil {
		return domain.Reservation{}, fmt.Errorf("service.ReservationService.Update: %w", err)
	}
	return updated, nil
}

// GetByID returns the reservation with id; found is false when there is none.
func (s *ReservationService) GetByID(ctx context.Context, id int64) (domain.Reservation, bool, error) {
	r, found, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Reservation{}, false, fmt.Errorf("service.ReservationService.GetByID: %w", err)
	}
	return r, found, nil
}

// List returns every reservation.
func (s *ReservationService) List(ctx context.Context) ([]domain.Reservation, error) {
	all, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.ReservationService.List: %w", err)
	}
	return all, nil
}

// FindByName returns reservations whose name matches exactly.
func (s *ReservationService) FindByName(ctx context.Context, name string) ([]domain.Reservation, error) {
	matches, err := s.repo.FindByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("service.ReservationService.FindByName: %w", err)
	}
	return matches, nil
}

// Delete removes a reservation. Returns domain.ErrNotFound if it does not exist.
func (s *ReservationService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("service.ReservationService.Delete: %w", err)
	}
	return nil
}

// Seed inserts one reservation per name, sequentially and in order, and
// returns how many were inserted. It is a no-op when the store already holds
// rows so restarting against a persistent database does not duplicate them.
// The first failed insert aborts seeding.
func (s *ReservationService) Seed(ctx context.Context, names []string) (int, error) {
	existing, err := s.repo.FindAll(ctx)
	if err != nil {
		return 0, fmt.Errorf("service.ReservationService.Seed: %w", err)
	}
	if len(existing) > 0 {
		slog.InfoContext(ctx, "store already populated; skipping seed", "count", len(existing))
		return 0, nil
	}

	for i, name := range names {
		if _, err := s.repo.Save(ctx, domain.NewReservation(name)); err != nil {
			return i, fmt.Errorf("service.ReservationService.Seed: %q: %w", name, err)
		}
	}
	slog.InfoContext(ctx, "seeded reservations", "count", len(names))
	return len(names), nil
}
