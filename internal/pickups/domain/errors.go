package domain

import "errors"

var (
	ErrPickupNotFound = errors.New("pickup not found")

	// ErrNotAssignedWorker means the caller is a worker but not the one this
	// pickup was assigned to.
	ErrNotAssignedWorker = errors.New("pickup assigned to a different worker")
)
