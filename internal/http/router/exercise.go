package router

import (
	"github.com/gin-gonic/gin"

	"linguagraph.app/insight/internal/http/handler"
)

// ExerciseRouter sets up exercise listing routes
func ExerciseRouter(rg *gin.RouterGroup, h *handler.ExerciseHandler) {
	rg.GET("", h.List)
}
