package postgres

import (
	"context"
	"database/sql"
	"fmt"
)

// Migrate creates the schema if it does not exist yet. Statements are
// idempotent so it is safe to run on every startup.
func Migrate(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id BIGSERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			email TEXT NOT NULL UNIQUE,
			phone TEXT NOT NULL UNIQUE,
			address TEXT NOT NULL DEFAULT '',
			role TEXT NOT NULL CHECK (role IN ('household', 'worker', 'admin')),
			password_hash TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		);`,
		`CREATE TABLE IF NOT EXISTS devices (
			id BIGSERIAL PRIMARY KEY,
			device_id TEXT NOT NULL UNIQUE,
			user_id BIGINT NOT NULL REFERENCES users(id),
			status TEXT NOT NULL DEFAULT 'offline' CHECK (status IN ('online', 'offline')),
			last_seen_at TIMESTAMPTZ
		);`,
		`CREATE TABLE IF NOT EXISTS waste_logs (
			id BIGSERIAL PRIMARY KEY,
			user_id BIGINT NOT NULL REFERENCES users(id),
			waste_type TEXT NOT NULL,
			weight DOUBLE PRECISION NOT NULL CHECK (weight >= 0),
			points INTEGER NOT NULL,
			timestamp TIMESTAMPTZ NOT NULL DEFAULT now()
		);`,
		`CREATE TABLE IF NOT EXISTS rewards (
			id BIGSERIAL PRIMARY KEY,
			user_id BIGINT NOT NULL UNIQUE REFERENCES users(id),
			points INTEGER NOT NULL DEFAULT 0,
			redeemed BOOLEAN NOT NULL DEFAULT false
		);`,
		`CREATE TABLE IF NOT EXISTS pickups (
			id BIGSERIAL PRIMARY KEY,
			household_id BIGINT NOT NULL REFERENCES users(id),
			worker_id BIGINT NOT NULL REFERENCES users(id),
			status TEXT NOT NULL DEFAULT 'pending' CHECK (status IN ('pending', 'collected')),
			date TIMESTAMPTZ NOT NULL DEFAULT now()
		);`,
		`CREATE INDEX IF NOT EXISTS idx_waste_logs_user_id ON waste_logs(user_id);`,
		`CREATE INDEX IF NOT EXISTS idx_pickups_worker_id ON pickups(worker_id);`,
	}

	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}

	return nil
}
