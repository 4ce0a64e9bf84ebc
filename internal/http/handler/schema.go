package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"linguagraph.app/insight/internal/http/dto"
	"linguagraph.app/insight/internal/ops"
	"linguagraph.app/insight/internal/service"
)

type SchemaHandler struct {
	schemaService service.SchemaService
}

func NewSchemaHandler(schemaService service.SchemaService) *SchemaHandler {
	return &SchemaHandler{schemaService: schemaService}
}

func (h *SchemaHandler) Describe(c *gin.Context) {
	ctx := c.Request.Context()

	columns, err := h.schemaService.Describe(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "schema introspection failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to describe schema"})
		return
	}

	resp := make([]dto.ColumnInfoResponse, 0, len(columns))
	for _, col := range columns {
		resp = append(resp, dto.ToColumnInfoResponse(col))
	}
	c.JSON(http.StatusOK, gin.H{"columns": resp})
}

// Operations serves the static operation registry; no service behind it.
func (h *SchemaHandler) Operations(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"operations": ops.Registry()})
}
