package router

import (
	"github.com/gin-gonic/gin"

	"linguagraph.app/insight/internal/http/handler"
)

// SchemaRouter sets up introspection routes
func SchemaRouter(v1 *gin.RouterGroup, h *handler.SchemaHandler) {
	v1.GET("/schema", h.Describe)
	v1.GET("/operations", h.Operations)
}
