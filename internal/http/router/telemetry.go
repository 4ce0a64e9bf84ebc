package router

import (
	"github.com/gin-gonic/gin"

	"linguagraph.app/insight/internal/http/handler"
)

// TelemetryRouter sets up the usage telemetry routes. Error patterns
// live under /errors rather than /usage because they aggregate a
// different table.
func TelemetryRouter(v1 *gin.RouterGroup, h *handler.TelemetryHandler) {
	usage := v1.Group("/usage")
	{
		usage.GET("/stats", h.Stats)
		usage.GET("/sessions", h.Sessions)
		usage.GET("/proficiency", h.ProficiencyTrend)
	}

	v1.GET("/errors/patterns", h.ErrorPatterns)
}
