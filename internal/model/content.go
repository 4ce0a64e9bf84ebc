package model

import "time"

type ContentType string

const (
	ContentTypeAudio ContentType = "audio"
	ContentTypeText  ContentType = "text"
)

// ContentItem is the read projection of one catalog item.
type ContentItem struct {
	ID              string      `json:"id"`
	Type            ContentType `json:"type"`
	Title           string      `json:"title"`
	DifficultyScore float64     `json:"difficulty_score"`
	Topic           string      `json:"topic"`
	Tags            TagPayload  `json:"tags"`
	DurationSeconds int         `json:"duration_seconds"`
	CreatedAt       time.Time   `json:"created_at"`
}

// TagPayload is the structured tag column of a content item. Absent or
// empty feature lists are normal and mean the item references nothing.
type TagPayload struct {
	GrammarFeatures []string `json:"grammar_features,omitempty"`
}
