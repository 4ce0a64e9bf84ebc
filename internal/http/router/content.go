package router

import (
	"github.com/gin-gonic/gin"

	"linguagraph.app/insight/internal/http/handler"
)

// ContentRouter sets up content browsing routes
func ContentRouter(rg *gin.RouterGroup, h *handler.ContentHandler) {
	rg.GET("", h.Browse)
}
