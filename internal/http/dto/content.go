package dto

import (
	"time"

	"linguagraph.app/insight/internal/model"
)

// BrowseContentRequest carries the query parameters of a content
// browse. Omitting level selects the band-stratified sampling path.
type BrowseContentRequest struct {
	Level string `form:"level" json:"level,omitempty" binding:"omitempty,oneof=A1 A2 B1 B2 C1 C2" jsonschema:"enum=A1,enum=A2,enum=B1,enum=B2,enum=C1,enum=C2,description=Optional CEFR level filter; omit for a band-balanced sample"`
	Topic string `form:"topic" json:"topic,omitempty" binding:"omitempty,max=120" jsonschema:"description=Optional topic label filter"`
	Type  string `form:"type" json:"type,omitempty" binding:"omitempty,oneof=audio text" jsonschema:"enum=audio,enum=text,description=Optional content type filter"`
	Limit int    `form:"limit" json:"limit,omitempty" binding:"omitempty,min=1,max=100" jsonschema:"minimum=1,maximum=100,description=Requested result count; a band-balanced sample may exceed it by up to five rows"`
}

type ContentItemResponse struct {
	ID              string    `json:"id"`
	Type            string    `json:"type"`
	Title           string    `json:"title"`
	DifficultyScore float64   `json:"difficulty_score"`
	CEFRLevel       string    `json:"cefr_level"`
	Topic           string    `json:"topic"`
	GrammarFeatures []string  `json:"grammar_features,omitempty"`
	DurationSeconds int       `json:"duration_seconds"`
	CreatedAt       time.Time `json:"created_at"`
}

func ToContentItemResponse(item model.ContentItem, level string) ContentItemResponse {
	return ContentItemResponse{
		ID:              item.ID,
		Type:            string(item.Type),
		Title:           item.Title,
		DifficultyScore: item.DifficultyScore,
		CEFRLevel:       level,
		Topic:           item.Topic,
		GrammarFeatures: item.Tags.GrammarFeatures,
		DurationSeconds: item.DurationSeconds,
		CreatedAt:       item.CreatedAt,
	}
}
