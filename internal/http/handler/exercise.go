package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"linguagraph.app/insight/internal/http/dto"
	"linguagraph.app/insight/internal/model"
	"linguagraph.app/insight/internal/service"
	"linguagraph.app/insight/internal/store"
)

type ExerciseHandler struct {
	exerciseService service.ExerciseService
}

func NewExerciseHandler(exerciseService service.ExerciseService) *ExerciseHandler {
	return &ExerciseHandler{exerciseService: exerciseService}
}

func (h *ExerciseHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.ListExercisesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		slog.WarnContext(ctx, "invalid exercises query", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	filters := store.ExerciseFilters{Limit: req.Limit}
	if req.FeatureID != "" {
		filters.FeatureID = &req.FeatureID
	}
	if req.Type != "" {
		exerciseType := model.ExerciseType(req.Type)
		filters.Type = &exerciseType
	}

	exercises, err := h.exerciseService.List(ctx, filters)
	if err != nil {
		slog.ErrorContext(ctx, "exercise listing failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list exercises"})
		return
	}

	resp := make([]dto.ExerciseResponse, 0, len(exercises))
	for _, e := range exercises {
		resp = append(resp, dto.ToExerciseResponse(e))
	}
	c.JSON(http.StatusOK, gin.H{"exercises": resp, "count": len(resp)})
}
