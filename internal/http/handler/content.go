package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"linguagraph.app/insight/internal/cefr"
	"linguagraph.app/insight/internal/http/dto"
	"linguagraph.app/insight/internal/model"
	"linguagraph.app/insight/internal/service"
)

type ContentHandler struct {
	contentService service.ContentService
}

func NewContentHandler(contentService service.ContentService) *ContentHandler {
	return &ContentHandler{contentService: contentService}
}

func (h *ContentHandler) Browse(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.BrowseContentRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		slog.WarnContext(ctx, "invalid content browse query", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	filters := service.BrowseFilters{Limit: req.Limit}
	if req.Level != "" {
		band, ok := cefr.Parse(req.Level)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown CEFR level"})
			return
		}
		filters.Level = &band
	}
	if req.Topic != "" {
		filters.Topic = &req.Topic
	}
	if req.Type != "" {
		contentType := model.ContentType(req.Type)
		filters.Type = &contentType
	}

	items, err := h.contentService.Browse(ctx, filters)
	if err != nil {
		slog.ErrorContext(ctx, "content browse failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list content"})
		return
	}

	resp := make([]dto.ContentItemResponse, 0, len(items))
	for _, item := range items {
		resp = append(resp, dto.ToContentItemResponse(item, string(cefr.BandOf(item.DifficultyScore))))
	}
	c.JSON(http.StatusOK, gin.H{"items": resp, "count": len(resp)})
}
