package http

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ecotrack-iot/ecotrack-backend/internal/analytics/service"
)

// SummaryProvider is implemented by the analytics service.
type SummaryProvider interface {
	Summary(ctx context.Context) (*service.Summary, error)
}

// Handler bundles the dependencies for admin analytics endpoints.
type Handler struct {
	analytics SummaryProvider
}

func New(analytics SummaryProvider) *Handler {
	return &Handler{analytics: analytics}
}

// Register attaches analytics routes. The caller group is expected to require
// the admin role.
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.GET("/analytics", h.summary)
}

func (h *Handler) summary(c *gin.Context) {
	summary, err := h.analytics.Summary(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, summary)
}
