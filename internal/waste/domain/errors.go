package domain

import "errors"

var (
	// ErrNotHousehold means the device exists but its owner is not a
	// household account, so it cannot report waste.
	ErrNotHousehold = errors.New("device not linked to a household user")

	ErrInvalidWeight = errors.New("weight must be positive")
)
