package http

import "github.com/gin-gonic/gin"

// Register attaches authentication routes to the given router group.
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.POST("/register", h.register)
	rg.POST("/login", h.login)
}
