package service

import (
	"context"
	"errors"

	"github.com/ecotrack-iot/ecotrack-backend/internal/pickups/domain"
)

// PickupStore is implemented by the pickup repository.
type PickupStore interface {
	GetByID(ctx context.Context, id int64) (*domain.Pickup, error)
	ListByWorker(ctx context.Context, workerID int64) ([]domain.Pickup, error)
	MarkCollected(ctx context.Context, id int64) (*domain.Pickup, error)
}

// PickupService handles the worker-facing pickup lifecycle.
type PickupService struct {
	pickups PickupStore
}

func NewPickupService(pickups PickupStore) *PickupService {
	return &PickupService{pickups: pickups}
}

// ListForWorker returns the pickups assigned to the calling worker.
func (s *PickupService) ListForWorker(ctx context.Context, workerID int64) ([]domain.Pickup, error) {
	return s.pickups.ListByWorker(ctx, workerID)
}

// Confirm transitions a pickup from pending to collected on behalf of the
// assigned worker. Confirming an already-collected pickup is a no-op that
// returns the current state.
func (s *PickupService) Confirm(ctx context.Context, pickupID, workerID int64) (*domain.Pickup, error) {
	pickup, err := s.pickups.GetByID(ctx, pickupID)
	if err != nil {
		return nil, err
	}

	if pickup.WorkerID != workerID {
		return nil, domain.ErrNotAssignedWorker
	}

	if pickup.Status == domain.StatusCollected {
		return pickup, nil
	}

	updated, err := s.pickups.MarkCollected(ctx, pickupID)
	if err != nil {
		// Lost a race with a concurrent confirmation: the row is already
		// collected, which is the idempotent success case.
		if errors.Is(err, domain.ErrPickupNotFound) {
			return s.pickups.GetByID(ctx, pickupID)
		}
		return nil, err
	}
	return updated, nil
}
