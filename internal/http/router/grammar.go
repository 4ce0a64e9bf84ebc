package router

import (
	"github.com/gin-gonic/gin"

	"linguagraph.app/insight/internal/http/handler"
)

// GrammarRouter sets up grammar feature routes
func GrammarRouter(rg *gin.RouterGroup, h *handler.GrammarHandler) {
	rg.GET("/features/:id/prerequisites", h.PrerequisiteTree)
}
