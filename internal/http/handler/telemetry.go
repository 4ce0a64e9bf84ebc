package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"linguagraph.app/insight/internal/http/dto"
	"linguagraph.app/insight/internal/service"
)

const defaultStatsPeriod = "week"

type TelemetryHandler struct {
	telemetryService service.TelemetryService
}

func NewTelemetryHandler(telemetryService service.TelemetryService) *TelemetryHandler {
	return &TelemetryHandler{telemetryService: telemetryService}
}

func (h *TelemetryHandler) Stats(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.UsageStatsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		slog.WarnContext(ctx, "invalid usage stats query", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Period == "" {
		req.Period = defaultStatsPeriod
	}

	stats, err := h.telemetryService.Stats(ctx, req.Period)
	if err != nil {
		slog.ErrorContext(ctx, "usage stats failed", "period", req.Period, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to aggregate usage stats"})
		return
	}

	c.JSON(http.StatusOK, dto.ToUsageStatsResponse(stats))
}

func (h *TelemetryHandler) Sessions(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.ListSessionsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		slog.WarnContext(ctx, "invalid sessions query", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var since *time.Time
	if req.Since != "" {
		t, err := time.Parse(time.RFC3339, req.Since)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "since must be RFC 3339"})
			return
		}
		since = &t
	}

	sessions, err := h.telemetryService.Sessions(ctx, since, req.Limit)
	if err != nil {
		slog.ErrorContext(ctx, "session listing failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list sessions"})
		return
	}

	resp := make([]dto.SessionSummaryResponse, 0, len(sessions))
	for _, s := range sessions {
		resp = append(resp, dto.ToSessionSummaryResponse(s))
	}
	c.JSON(http.StatusOK, gin.H{"sessions": resp, "count": len(resp)})
}

func (h *TelemetryHandler) ProficiencyTrend(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.ProficiencyTrendRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		slog.WarnContext(ctx, "invalid proficiency trend query", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	points, err := h.telemetryService.ProficiencyTrend(ctx, req.Skill)
	if err != nil {
		slog.ErrorContext(ctx, "proficiency trend failed", "skill", req.Skill, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build proficiency trend"})
		return
	}

	resp := make([]dto.ProficiencyPointResponse, 0, len(points))
	for _, p := range points {
		resp = append(resp, dto.ToProficiencyPointResponse(p))
	}
	c.JSON(http.StatusOK, gin.H{"skill": req.Skill, "points": resp})
}

func (h *TelemetryHandler) ErrorPatterns(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.ErrorPatternsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		slog.WarnContext(ctx, "invalid error patterns query", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	patterns, err := h.telemetryService.ErrorPatterns(ctx, req.MinCount)
	if err != nil {
		slog.ErrorContext(ctx, "error pattern aggregation failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to aggregate error patterns"})
		return
	}

	resp := make([]dto.ErrorPatternResponse, 0, len(patterns))
	for _, p := range patterns {
		resp = append(resp, dto.ToErrorPatternResponse(p))
	}
	c.JSON(http.StatusOK, gin.H{"patterns": resp, "count": len(resp)})
}
