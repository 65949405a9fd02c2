package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"github.com/ecotrack-iot/ecotrack-backend/internal/identity/domain"
)

// UserRepository provides persistence operations for user accounts.
type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

const userColumns = `id, name, email, phone, address, role, password_hash, created_at`

// Create inserts a new user. Duplicate email or phone maps to ErrDuplicateUser.
func (r *UserRepository) Create(ctx context.Context, req domain.CreateUserRequest) (*domain.User, error) {
	if !req.Role.Valid() {
		return nil, domain.ErrInvalidRole
	}

	const q = `
INSERT INTO users (name, email, phone, address, role, password_hash)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING ` + userColumns + `;
`
	var u domain.User
	err := r.db.QueryRowContext(ctx, q, req.Name, req.Email, req.Phone, req.Address, req.Role, req.PasswordHash).
		Scan(&u.ID, &u.Name, &u.Email, &u.Phone, &u.Address, &u.Role, &u.PasswordHash, &u.CreatedAt)
	if err != nil {
		// unique violation on email/phone
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domain.ErrDuplicateUser
		}
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	const q = `SELECT ` + userColumns + ` FROM users WHERE id = $1;`
	return r.scanOne(r.db.QueryRowContext(ctx, q, id))
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	const q = `SELECT ` + userColumns + ` FROM users WHERE email = $1;`
	return r.scanOne(r.db.QueryRowContext(ctx, q, email))
}

// FirstWorker returns the worker with the lowest id, or ErrUserNotFound when
// no worker account exists. The lowest-id tie-break keeps pickup assignment
// deterministic instead of depending on table scan order.
func (r *UserRepository) FirstWorker(ctx context.Context) (*domain.User, error) {
	const q = `SELECT ` + userColumns + ` FROM users WHERE role = 'worker' ORDER BY id ASC LIMIT 1;`
	return r.scanOne(r.db.QueryRowContext(ctx, q))
}

// CountHouseholds returns the number of household accounts.
func (r *UserRepository) CountHouseholds(ctx context.Context) (int64, error) {
	const q = `SELECT count(id) FROM users WHERE role = 'household';`
	var n int64
	if err := r.db.QueryRowContext(ctx, q).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

func (r *UserRepository) scanOne(row *sql.Row) (*domain.User, error) {
	var u domain.User
	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.Phone, &u.Address, &u.Role, &u.PasswordHash, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}
