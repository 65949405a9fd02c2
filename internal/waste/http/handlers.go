package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ecotrack-iot/ecotrack-backend/internal/auth"
	devdomain "github.com/ecotrack-iot/ecotrack-backend/internal/devices/domain"
	"github.com/ecotrack-iot/ecotrack-backend/internal/waste/domain"
)

type uploadReq struct {
	DeviceID  string     `json:"device_id" binding:"required"`
	WasteType string     `json:"waste_type" binding:"required"`
	Weight    float64    `json:"weight" binding:"required,gt=0"`
	Timestamp *time.Time `json:"timestamp"`
}

func (h *Handler) upload(c *gin.Context) {
	var req uploadReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	ev := domain.TelemetryEvent{
		DeviceID:  req.DeviceID,
		WasteType: req.WasteType,
		Weight:    req.Weight,
	}
	if req.Timestamp != nil {
		ev.Timestamp = *req.Timestamp
	}

	res, err := h.ingestor.Ingest(c.Request.Context(), ev)
	if err != nil {
		switch {
		case errors.Is(err, devdomain.ErrDeviceNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "device not found"})
		case errors.Is(err, domain.ErrNotHousehold):
			c.JSON(http.StatusBadRequest, gin.H{"error": "device not linked to a household user"})
		case errors.Is(err, domain.ErrInvalidWeight):
			c.JSON(http.StatusBadRequest, gin.H{"error": "weight must be positive"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	msg := "waste log processed and reward updated"
	if res.Pickup != nil {
		msg = "waste log processed, reward updated, and pickup created"
	}
	c.JSON(http.StatusOK, gin.H{"message": msg})
}

func (h *Handler) listWasteLogs(c *gin.Context) {
	user := auth.CurrentUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	logs, err := h.ledger.ListByUser(c.Request.Context(), user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"waste_logs": logs})
}

func (h *Handler) listRewards(c *gin.Context) {
	user := auth.CurrentUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	rewards, err := h.rewards.ListByUser(c.Request.Context(), user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"rewards": rewards})
}
