package domain

import "time"

// Role is assigned at registration and never changes afterwards.
type Role string

const (
	RoleHousehold Role = "household"
	RoleWorker    Role = "worker"
	RoleAdmin     Role = "admin"
)

func (r Role) Valid() bool {
	return r == RoleHousehold || r == RoleWorker || r == RoleAdmin
}

// User represents a registered account. PasswordHash is never serialized.
type User struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	Address      string    `json:"address"`
	Role         Role      `json:"role"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// CreateUserRequest carries registration data into the repository.
type CreateUserRequest struct {
	Name         string
	Email        string
	Phone        string
	Address      string
	Role         Role
	PasswordHash string
}
