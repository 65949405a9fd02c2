package service

import (
	"context"
	"errors"
	"time"

	devdomain "github.com/ecotrack-iot/ecotrack-backend/internal/devices/domain"
	iddomain "github.com/ecotrack-iot/ecotrack-backend/internal/identity/domain"
	pudomain "github.com/ecotrack-iot/ecotrack-backend/internal/pickups/domain"
	"github.com/ecotrack-iot/ecotrack-backend/internal/storage/postgres"
	"github.com/ecotrack-iot/ecotrack-backend/internal/waste/domain"
)

// TxRunner runs a function inside a single database transaction.
type TxRunner interface {
	RunInTx(ctx context.Context, fn func(q postgres.Querier) error) error
}

// DeviceStore is implemented by the device repository.
type DeviceStore interface {
	GetByDeviceID(ctx context.Context, deviceID string) (*devdomain.Device, error)
	MarkSeen(ctx context.Context, q postgres.Querier, id int64, at time.Time) error
}

// UserStore is implemented by the identity repository.
type UserStore interface {
	GetByID(ctx context.Context, id int64) (*iddomain.User, error)
	FirstWorker(ctx context.Context) (*iddomain.User, error)
}

// LedgerStore is implemented by the ledger repository.
type LedgerStore interface {
	Append(ctx context.Context, q postgres.Querier, userID int64, wasteType string, weight float64, points int, ts time.Time) (*domain.WasteLogEntry, error)
}

// RewardStore is implemented by the reward repository.
type RewardStore interface {
	AddPoints(ctx context.Context, q postgres.Querier, userID int64, points int) (*domain.RewardAccount, error)
}

// PickupCreator is implemented by the pickup repository.
type PickupCreator interface {
	Create(ctx context.Context, q postgres.Querier, householdID, workerID int64) (*pudomain.Pickup, error)
}

// IngestResult reports what one telemetry event produced.
type IngestResult struct {
	Entry  *domain.WasteLogEntry
	Reward *domain.RewardAccount
	Pickup *pudomain.Pickup
}

// IngestService orchestrates the telemetry ingestion workflow: resolve the
// device and its household owner, convert weight to points, append to the
// ledger, update the reward balance and assign a pickup. All writes happen in
// one transaction so a failure leaves no partial state behind.
type IngestService struct {
	tx      TxRunner
	devices DeviceStore
	users   UserStore
	ledger  LedgerStore
	rewards RewardStore
	pickups PickupCreator
}

func NewIngestService(tx TxRunner, devices DeviceStore, users UserStore, ledger LedgerStore, rewards RewardStore, pickups PickupCreator) *IngestService {
	return &IngestService{
		tx:      tx,
		devices: devices,
		users:   users,
		ledger:  ledger,
		rewards: rewards,
		pickups: pickups,
	}
}

// Ingest processes one telemetry event.
//
// Known gap: there is no idempotency key, so a retried submission is counted
// twice (two ledger entries, doubled points, a second pickup).
func (s *IngestService) Ingest(ctx context.Context, ev domain.TelemetryEvent) (*IngestResult, error) {
	if ev.Weight <= 0 {
		return nil, domain.ErrInvalidWeight
	}

	device, err := s.devices.GetByDeviceID(ctx, ev.DeviceID)
	if err != nil {
		return nil, err
	}

	owner, err := s.users.GetByID(ctx, device.UserID)
	if err != nil {
		if errors.Is(err, iddomain.ErrUserNotFound) {
			return nil, domain.ErrNotHousehold
		}
		return nil, err
	}
	if owner.Role != iddomain.RoleHousehold {
		return nil, domain.ErrNotHousehold
	}

	points := domain.PointsFor(ev.Weight)

	ts := ev.Timestamp
	if ts.IsZero() {
		ts = time.Now().UTC()
	}

	// Worker selection is deliberately simple: the worker with the lowest id.
	// No worker at all means the event still counts, just without a pickup.
	worker, err := s.users.FirstWorker(ctx)
	if err != nil && !errors.Is(err, iddomain.ErrUserNotFound) {
		return nil, err
	}

	res := &IngestResult{}

	err = s.tx.RunInTx(ctx, func(q postgres.Querier) error {
		entry, err := s.ledger.Append(ctx, q, owner.ID, ev.WasteType, ev.Weight, points, ts)
		if err != nil {
			return err
		}
		res.Entry = entry

		reward, err := s.rewards.AddPoints(ctx, q, owner.ID, points)
		if err != nil {
			return err
		}
		res.Reward = reward

		if err := s.devices.MarkSeen(ctx, q, device.ID, time.Now().UTC()); err != nil {
			return err
		}

		if worker != nil {
			pickup, err := s.pickups.Create(ctx, q, owner.ID, worker.ID)
			if err != nil {
				return err
			}
			res.Pickup = pickup
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return res, nil
}
