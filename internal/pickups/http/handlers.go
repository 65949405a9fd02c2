package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ecotrack-iot/ecotrack-backend/internal/auth"
	"github.com/ecotrack-iot/ecotrack-backend/internal/pickups/domain"
)

func (h *Handler) list(c *gin.Context) {
	user := auth.CurrentUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	pickups, err := h.pickups.ListForWorker(c.Request.Context(), user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"pickups": pickups})
}

func (h *Handler) confirm(c *gin.Context) {
	user := auth.CurrentUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid pickup id"})
		return
	}

	pickup, err := h.pickups.Confirm(c.Request.Context(), id, user.ID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrPickupNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "pickup not found"})
		case errors.Is(err, domain.ErrNotAssignedWorker):
			c.JSON(http.StatusForbidden, gin.H{"error": "pickup assigned to a different worker"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"pickup": pickup})
}
