package model

import "time"

// UsageStats is an aggregate over anonymized usage sessions for one
// reporting period.
type UsageStats struct {
	Period          string  `json:"period"`
	SessionCount    int64   `json:"session_count"`
	UniqueUsers     int64   `json:"unique_users"`
	TotalSeconds    int64   `json:"total_seconds"`
	ItemsCompleted  int64   `json:"items_completed"`
	AverageAccuracy float64 `json:"average_accuracy"`
}

// SessionSummary is one anonymized usage session.
type SessionSummary struct {
	ID              string    `json:"id"`
	UserHash        string    `json:"user_hash"`
	StartedAt       time.Time `json:"started_at"`
	DurationSeconds int       `json:"duration_seconds"`
	ItemsCompleted  int       `json:"items_completed"`
	Accuracy        float64   `json:"accuracy"`
}

// ProficiencyPoint is one point of a learner-population proficiency
// trend for a given skill.
type ProficiencyPoint struct {
	Skill      string    `json:"skill"`
	Score      float64   `json:"score"`
	RecordedAt time.Time `json:"recorded_at"`
}

// ErrorPattern aggregates error events by tag, optionally tied to the
// grammar feature the errors occurred on.
type ErrorPattern struct {
	ErrorTag  string `json:"error_tag"`
	FeatureID string `json:"feature_id,omitempty"`
	Count     int64  `json:"count"`
}
