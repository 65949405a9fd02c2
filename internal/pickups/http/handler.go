package http

import (
	"context"

	"github.com/ecotrack-iot/ecotrack-backend/internal/pickups/domain"
)

// PickupService is implemented by the pickup service.
type PickupService interface {
	ListForWorker(ctx context.Context, workerID int64) ([]domain.Pickup, error)
	Confirm(ctx context.Context, pickupID, workerID int64) (*domain.Pickup, error)
}

// Handler bundles the dependencies for worker pickup endpoints.
type Handler struct {
	pickups PickupService
}

func New(pickups PickupService) *Handler {
	return &Handler{pickups: pickups}
}
