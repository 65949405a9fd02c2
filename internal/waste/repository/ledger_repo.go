package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/ecotrack-iot/ecotrack-backend/internal/storage/postgres"
	"github.com/ecotrack-iot/ecotrack-backend/internal/waste/domain"
)

// LedgerRepository provides persistence for the append-only waste ledger.
type LedgerRepository struct {
	db *sql.DB
}

func NewLedgerRepository(db *sql.DB) *LedgerRepository {
	return &LedgerRepository{db: db}
}

// Append inserts one ledger entry. It takes a Querier so the ingestion
// workflow can run it inside its transaction.
func (r *LedgerRepository) Append(ctx context.Context, q postgres.Querier, userID int64, wasteType string, weight float64, points int, ts time.Time) (*domain.WasteLogEntry, error) {
	const stmt = `
INSERT INTO waste_logs (user_id, waste_type, weight, points, timestamp)
VALUES ($1, $2, $3, $4, $5)
RETURNING id, user_id, waste_type, weight, points, timestamp;
`
	var e domain.WasteLogEntry
	err := q.QueryRowContext(ctx, stmt, userID, wasteType, weight, points, ts).
		Scan(&e.ID, &e.UserID, &e.WasteType, &e.Weight, &e.Points, &e.Timestamp)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// ListByUser returns a user's ledger entries, newest first.
func (r *LedgerRepository) ListByUser(ctx context.Context, userID int64) ([]domain.WasteLogEntry, error) {
	const q = `
SELECT id, user_id, waste_type, weight, points, timestamp
FROM waste_logs
WHERE user_id = $1
ORDER BY timestamp DESC;
`
	rows, err := r.db.QueryContext(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.WasteLogEntry, 0, 16)
	for rows.Next() {
		var e domain.WasteLogEntry
		if err := rows.Scan(&e.ID, &e.UserID, &e.WasteType, &e.Weight, &e.Points, &e.Timestamp); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// TotalWeight returns the sum of all logged weights in kilograms.
func (r *LedgerRepository) TotalWeight(ctx context.Context) (float64, error) {
	const q = `SELECT COALESCE(SUM(weight), 0) FROM waste_logs;`
	var total float64
	if err := r.db.QueryRowContext(ctx, q).Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}
