package domain

import "time"

const (
	StatusOnline  = "online"
	StatusOffline = "offline"
)

// Device maps an externally supplied hardware identifier to the household
// account that owns it.
type Device struct {
	ID         int64      `json:"id"`
	DeviceID   string     `json:"device_id"`
	UserID     int64      `json:"user_id"`
	Status     string     `json:"status"`
	LastSeenAt *time.Time `json:"last_seen_at,omitempty"`
}
