package http

import "github.com/gin-gonic/gin"

// RegisterDevice attaches the telemetry ingestion route. The endpoint is
// unauthenticated: devices have no credentials in the current design.
func (h *Handler) RegisterDevice(rg *gin.RouterGroup) {
	rg.POST("/upload", h.upload)
}

// RegisterHousehold attaches household read routes. The caller group is
// expected to require the household role.
func (h *Handler) RegisterHousehold(rg *gin.RouterGroup) {
	rg.GET("/waste-logs", h.listWasteLogs)
	rg.GET("/rewards", h.listRewards)
}
