package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/ecotrack-iot/ecotrack-backend/internal/devices/domain"
	"github.com/ecotrack-iot/ecotrack-backend/internal/storage/postgres"
)

// DeviceRepository provides persistence operations for registered devices.
type DeviceRepository struct {
	db *sql.DB
}

func NewDeviceRepository(db *sql.DB) *DeviceRepository {
	return &DeviceRepository{db: db}
}

const deviceColumns = `id, device_id, user_id, status, last_seen_at`

// GetByDeviceID looks a device up by its external hardware identifier.
func (r *DeviceRepository) GetByDeviceID(ctx context.Context, deviceID string) (*domain.Device, error) {
	const q = `SELECT ` + deviceColumns + ` FROM devices WHERE device_id = $1;`

	var d domain.Device
	err := r.db.QueryRowContext(ctx, q, deviceID).
		Scan(&d.ID, &d.DeviceID, &d.UserID, &d.Status, &d.LastSeenAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrDeviceNotFound
		}
		return nil, err
	}
	return &d, nil
}

// List returns all devices ordered by id.
func (r *DeviceRepository) List(ctx context.Context) ([]domain.Device, error) {
	const q = `SELECT ` + deviceColumns + ` FROM devices ORDER BY id ASC;`

	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.Device, 0, 16)
	for rows.Next() {
		var d domain.Device
		if err := rows.Scan(&d.ID, &d.DeviceID, &d.UserID, &d.Status, &d.LastSeenAt); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// MarkSeen marks a device online and stamps its last telemetry time. It takes
// a Querier so ingestion can include it in the same transaction as the writes
// it accompanies.
func (r *DeviceRepository) MarkSeen(ctx context.Context, q postgres.Querier, id int64, at time.Time) error {
	const stmt = `UPDATE devices SET status = 'online', last_seen_at = $2 WHERE id = $1;`
	_, err := q.ExecContext(ctx, stmt, id, at)
	return err
}

// MarkStaleOffline flips devices to offline when their last telemetry is older
// than cutoff, returning how many rows changed.
func (r *DeviceRepository) MarkStaleOffline(ctx context.Context, cutoff time.Time) (int64, error) {
	const stmt = `
UPDATE devices
SET status = 'offline'
WHERE status = 'online' AND (last_seen_at IS NULL OR last_seen_at < $1);
`
	result, err := r.db.ExecContext(ctx, stmt, cutoff)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
