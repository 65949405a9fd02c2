package repository

import (
	"context"
	"database/sql"

	"github.com/ecotrack-iot/ecotrack-backend/internal/storage/postgres"
	"github.com/ecotrack-iot/ecotrack-backend/internal/waste/domain"
)

// RewardRepository provides persistence for per-user reward balances.
type RewardRepository struct {
	db *sql.DB
}

func NewRewardRepository(db *sql.DB) *RewardRepository {
	return &RewardRepository{db: db}
}

// AddPoints adds points to the user's balance, creating the account on first
// award. It takes a Querier so the ingestion workflow can run it inside its
// transaction.
func (r *RewardRepository) AddPoints(ctx context.Context, q postgres.Querier, userID int64, points int) (*domain.RewardAccount, error) {
	const stmt = `
INSERT INTO rewards (user_id, points, redeemed)
VALUES ($1, $2, false)
ON CONFLICT (user_id) DO UPDATE
SET points = rewards.points + EXCLUDED.points
RETURNING id, user_id, points, redeemed;
`
	var a domain.RewardAccount
	err := q.QueryRowContext(ctx, stmt, userID, points).
		Scan(&a.ID, &a.UserID, &a.Points, &a.Redeemed)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// ListByUser returns the user's reward accounts (at most one under the
// current schema).
func (r *RewardRepository) ListByUser(ctx context.Context, userID int64) ([]domain.RewardAccount, error) {
	const q = `SELECT id, user_id, points, redeemed FROM rewards WHERE user_id = $1;`

	rows, err := r.db.QueryContext(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.RewardAccount, 0, 1)
	for rows.Next() {
		var a domain.RewardAccount
		if err := rows.Scan(&a.ID, &a.UserID, &a.Points, &a.Redeemed); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
