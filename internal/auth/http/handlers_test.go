package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecotrack-iot/ecotrack-backend/internal/auth"
	"github.com/ecotrack-iot/ecotrack-backend/internal/identity/domain"
)

type fakeUserStore struct {
	byEmail map[string]*domain.User
	nextID  int64
}

func (f *fakeUserStore) Create(_ context.Context, req domain.CreateUserRequest) (*domain.User, error) {
	if _, exists := f.byEmail[req.Email]; exists {
		return nil, domain.ErrDuplicateUser
	}
	f.nextID++
	u := &domain.User{
		ID:           f.nextID,
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		Address:      req.Address,
		Role:         req.Role,
		PasswordHash: req.PasswordHash,
		CreatedAt:    time.Now().UTC(),
	}
	f.byEmail[req.Email] = u
	return u, nil
}

func (f *fakeUserStore) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	u, ok := f.byEmail[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return u, nil
}

func setupAuthRouter() (*gin.Engine, *fakeUserStore, *auth.TokenIssuer) {
	gin.SetMode(gin.TestMode)
	store := &fakeUserStore{byEmail: make(map[string]*domain.User)}
	issuer := auth.NewTokenIssuer("test-secret", "ecotrack", 30*time.Minute)

	r := gin.New()
	New(store, issuer).Register(r.Group("/api/auth"))
	return r, store, issuer
}

func postJSON(t *testing.T, r *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func validRegistration() gin.H {
	return gin.H{
		"name":     "Ada Green",
		"email":    "ada@example.com",
		"phone":    "+3312345678",
		"address":  "1 Compost Lane",
		"role":     "household",
		"password": "super-secret-1",
	}
}

func TestRegister_Success(t *testing.T) {
	r, store, _ := setupAuthRouter()

	w := postJSON(t, r, "/api/auth/register", validRegistration())
	assert.Equal(t, http.StatusCreated, w.Code)

	u := store.byEmail["ada@example.com"]
	require.NotNil(t, u)
	assert.Equal(t, domain.RoleHousehold, u.Role)
	assert.NotEqual(t, "super-secret-1", u.PasswordHash, "password must be hashed")
	assert.NotContains(t, w.Body.String(), u.PasswordHash)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	r, _, _ := setupAuthRouter()

	w := postJSON(t, r, "/api/auth/register", validRegistration())
	require.Equal(t, http.StatusCreated, w.Code)

	w = postJSON(t, r, "/api/auth/register", validRegistration())
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestRegister_InvalidRole(t *testing.T) {
	r, _, _ := setupAuthRouter()

	body := validRegistration()
	body["role"] = "superuser"
	w := postJSON(t, r, "/api/auth/register", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRegister_ShortPassword(t *testing.T) {
	r, _, _ := setupAuthRouter()

	body := validRegistration()
	body["password"] = "short"
	w := postJSON(t, r, "/api/auth/register", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLogin_Success(t *testing.T) {
	r, _, issuer := setupAuthRouter()

	w := postJSON(t, r, "/api/auth/register", validRegistration())
	require.Equal(t, http.StatusCreated, w.Code)

	w = postJSON(t, r, "/api/auth/login", gin.H{
		"email":    "ada@example.com",
		"password": "super-secret-1",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "bearer", resp.TokenType)

	claims, err := issuer.ParseToken(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", claims.Subject)
	assert.Equal(t, "household", claims.Role)
}

func TestLogin_WrongPassword(t *testing.T) {
	r, _, _ := setupAuthRouter()

	w := postJSON(t, r, "/api/auth/register", validRegistration())
	require.Equal(t, http.StatusCreated, w.Code)

	w = postJSON(t, r, "/api/auth/login", gin.H{
		"email":    "ada@example.com",
		"password": "wrong-password",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLogin_UnknownEmail(t *testing.T) {
	r, _, _ := setupAuthRouter()

	w := postJSON(t, r, "/api/auth/login", gin.H{
		"email":    "nobody@example.com",
		"password": "whatever-123",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
