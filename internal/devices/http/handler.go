package http

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ecotrack-iot/ecotrack-backend/internal/devices/domain"
)

// DeviceLister is implemented by the device repository.
type DeviceLister interface {
	List(ctx context.Context) ([]domain.Device, error)
}

// Handler bundles the dependencies for device administration endpoints.
type Handler struct {
	devices DeviceLister
}

func New(devices DeviceLister) *Handler {
	return &Handler{devices: devices}
}

// RegisterAdmin attaches the device listing route. The caller group is
// expected to require the admin role.
func (h *Handler) RegisterAdmin(rg *gin.RouterGroup) {
	rg.GET("/devices", h.list)
}

func (h *Handler) list(c *gin.Context) {
	devices, err := h.devices.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"devices": devices})
}
