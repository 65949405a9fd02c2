package http

import "github.com/gin-gonic/gin"

// Register attaches worker pickup routes. The caller group is expected to
// require the worker role.
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.GET("/pickups", h.list)
	rg.POST("/pickups/:id/confirm", h.confirm)
}
