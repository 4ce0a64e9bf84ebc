package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"linguagraph.app/insight/internal/http/dto"
	"linguagraph.app/insight/internal/prereq"
	"linguagraph.app/insight/internal/service"
)

type GrammarHandler struct {
	graphService service.GraphService
}

func NewGrammarHandler(graphService service.GraphService) *GrammarHandler {
	return &GrammarHandler{graphService: graphService}
}

func (h *GrammarHandler) PrerequisiteTree(c *gin.Context) {
	ctx := c.Request.Context()

	featureID := c.Param("id")
	if featureID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "feature id is required"})
		return
	}

	node, err := h.graphService.PrerequisiteTree(ctx, featureID)
	if err != nil {
		if errors.Is(err, prereq.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "grammar feature not found"})
			return
		}
		slog.ErrorContext(ctx, "prerequisite resolution failed", "feature_id", featureID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to resolve prerequisites"})
		return
	}

	c.JSON(http.StatusOK, dto.ToPrerequisiteNodeResponse(node))
}
