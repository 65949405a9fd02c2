package domain

import "errors"

var (
	ErrUserNotFound  = errors.New("user not found")
	ErrDuplicateUser = errors.New("email or phone already registered")
	ErrInvalidRole   = errors.New("invalid role")
)
