package http

import (
	"context"

	"github.com/ecotrack-iot/ecotrack-backend/internal/waste/domain"
	"github.com/ecotrack-iot/ecotrack-backend/internal/waste/service"
)

// Ingestor is implemented by the ingest service.
type Ingestor interface {
	Ingest(ctx context.Context, ev domain.TelemetryEvent) (*service.IngestResult, error)
}

// LedgerReader is implemented by the ledger repository.
type LedgerReader interface {
	ListByUser(ctx context.Context, userID int64) ([]domain.WasteLogEntry, error)
}

// RewardReader is implemented by the reward repository.
type RewardReader interface {
	ListByUser(ctx context.Context, userID int64) ([]domain.RewardAccount, error)
}

// Handler bundles the dependencies for waste endpoints.
type Handler struct {
	ingestor Ingestor
	ledger   LedgerReader
	rewards  RewardReader
}

func New(ingestor Ingestor, ledger LedgerReader, rewards RewardReader) *Handler {
	return &Handler{ingestor: ingestor, ledger: ledger, rewards: rewards}
}
