package auth

import (
	"github.com/gin-gonic/gin"

	"github.com/ecotrack-iot/ecotrack-backend/internal/identity/domain"
)

const ctxUserKey = "current_user"

// CurrentUser returns the authenticated user set by RequireAuth, or nil when
// the request is unauthenticated.
func CurrentUser(c *gin.Context) *domain.User {
	v, ok := c.Get(ctxUserKey)
	if !ok {
		return nil
	}
	u, ok := v.(*domain.User)
	if !ok {
		return nil
	}
	return u
}

// SetCurrentUser stores the authenticated user on the request context.
func SetCurrentUser(c *gin.Context, u *domain.User) {
	c.Set(ctxUserKey, u)
}
