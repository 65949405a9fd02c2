package domain

import "time"

const (
	StatusPending   = "pending"
	StatusCollected = "collected"
)

// Pickup is a household-to-worker work item for physical waste collection.
// Status moves pending -> collected and collected is terminal.
type Pickup struct {
	ID          int64     `json:"id"`
	HouseholdID int64     `json:"household_id"`
	WorkerID    int64     `json:"worker_id"`
	Status      string    `json:"status"`
	Date        time.Time `json:"date"`
}
