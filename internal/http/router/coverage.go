package router

import (
	"github.com/gin-gonic/gin"

	"linguagraph.app/insight/internal/http/handler"
)

// CoverageRouter sets up coverage analytics routes
func CoverageRouter(rg *gin.RouterGroup, h *handler.CoverageHandler) {
	rg.GET("/report", h.Report)
}
