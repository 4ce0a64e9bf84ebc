package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"linguagraph.app/insight/internal/http/dto"
	"linguagraph.app/insight/internal/service"
)

type CoverageHandler struct {
	coverageService service.CoverageService
}

func NewCoverageHandler(coverageService service.CoverageService) *CoverageHandler {
	return &CoverageHandler{coverageService: coverageService}
}

func (h *CoverageHandler) Report(c *gin.Context) {
	ctx := c.Request.Context()

	report, err := h.coverageService.Report(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "coverage report failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build coverage report"})
		return
	}

	c.JSON(http.StatusOK, dto.ToCoverageReportResponse(report))
}
