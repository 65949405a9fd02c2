package domain

import (
	"math"
	"time"
)

// PointsPerKg is the fixed reward scale: 20 points per kilogram.
const PointsPerKg = 20

// PointsFor converts a weight in kilograms to reward points, rounded to the
// nearest integer.
func PointsFor(weight float64) int {
	return int(math.Round(weight * PointsPerKg))
}

// TelemetryEvent is one waste-disposal reading submitted by a device.
// A zero Timestamp means the server assigns the ingestion time.
type TelemetryEvent struct {
	DeviceID  string
	WasteType string
	Weight    float64
	Timestamp time.Time
}

// WasteLogEntry is an immutable, append-only ledger record.
type WasteLogEntry struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	WasteType string    `json:"waste_type"`
	Weight    float64   `json:"weight"`
	Points    int       `json:"points"`
	Timestamp time.Time `json:"timestamp"`
}

// RewardAccount is the running point balance for one user.
type RewardAccount struct {
	ID       int64 `json:"id"`
	UserID   int64 `json:"user_id"`
	Points   int   `json:"points"`
	Redeemed bool  `json:"redeemed"`
}
