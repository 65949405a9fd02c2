package http

import (
	"context"

	"github.com/ecotrack-iot/ecotrack-backend/internal/auth"
	"github.com/ecotrack-iot/ecotrack-backend/internal/identity/domain"
)

// UserStore is implemented by the identity repository.
type UserStore interface {
	Create(ctx context.Context, req domain.CreateUserRequest) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

// Handler bundles the dependencies for authentication endpoints.
type Handler struct {
	users  UserStore
	tokens *auth.TokenIssuer
}

func New(users UserStore, tokens *auth.TokenIssuer) *Handler {
	return &Handler{users: users, tokens: tokens}
}
