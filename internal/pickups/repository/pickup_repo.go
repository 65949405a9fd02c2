package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/ecotrack-iot/ecotrack-backend/internal/pickups/domain"
	"github.com/ecotrack-iot/ecotrack-backend/internal/storage/postgres"
)

// PickupRepository provides persistence for pickup assignments.
type PickupRepository struct {
	db *sql.DB
}

func NewPickupRepository(db *sql.DB) *PickupRepository {
	return &PickupRepository{db: db}
}

const pickupColumns = `id, household_id, worker_id, status, date`

// Create inserts a new pending pickup. It takes a Querier so the ingestion
// workflow can run it inside its transaction.
func (r *PickupRepository) Create(ctx context.Context, q postgres.Querier, householdID, workerID int64) (*domain.Pickup, error) {
	const stmt = `
INSERT INTO pickups (household_id, worker_id, status)
VALUES ($1, $2, 'pending')
RETURNING ` + pickupColumns + `;
`
	var p domain.Pickup
	err := q.QueryRowContext(ctx, stmt, householdID, workerID).
		Scan(&p.ID, &p.HouseholdID, &p.WorkerID, &p.Status, &p.Date)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PickupRepository) GetByID(ctx context.Context, id int64) (*domain.Pickup, error) {
	const q = `SELECT ` + pickupColumns + ` FROM pickups WHERE id = $1;`

	var p domain.Pickup
	err := r.db.QueryRowContext(ctx, q, id).
		Scan(&p.ID, &p.HouseholdID, &p.WorkerID, &p.Status, &p.Date)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrPickupNotFound
		}
		return nil, err
	}
	return &p, nil
}

// ListByWorker returns all pickups assigned to the given worker, newest first.
func (r *PickupRepository) ListByWorker(ctx context.Context, workerID int64) ([]domain.Pickup, error) {
	const q = `SELECT ` + pickupColumns + ` FROM pickups WHERE worker_id = $1 ORDER BY date DESC;`

	rows, err := r.db.QueryContext(ctx, q, workerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.Pickup, 0, 16)
	for rows.Next() {
		var p domain.Pickup
		if err := rows.Scan(&p.ID, &p.HouseholdID, &p.WorkerID, &p.Status, &p.Date); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// MarkCollected flips a pending pickup to collected and returns the updated
// row. ErrPickupNotFound means the pickup does not exist or was already
// collected; callers that need to distinguish load the row first.
func (r *PickupRepository) MarkCollected(ctx context.Context, id int64) (*domain.Pickup, error) {
	const stmt = `
UPDATE pickups
SET status = 'collected'
WHERE id = $1 AND status = 'pending'
RETURNING ` + pickupColumns + `;
`
	var p domain.Pickup
	err := r.db.QueryRowContext(ctx, stmt, id).
		Scan(&p.ID, &p.HouseholdID, &p.WorkerID, &p.Status, &p.Date)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrPickupNotFound
		}
		return nil, err
	}
	return &p, nil
}
