package dto

import (
	"time"

	"linguagraph.app/insight/internal/model"
)

type UsageStatsRequest struct {
	Period string `form:"period" json:"period,omitempty" binding:"omitempty,oneof=day week month" jsonschema:"enum=day,enum=week,enum=month,description=Reporting period; defaults to week"`
}

type UsageStatsResponse struct {
	Period          string  `json:"period"`
	SessionCount    int64   `json:"session_count"`
	UniqueUsers     int64   `json:"unique_users"`
	TotalSeconds    int64   `json:"total_seconds"`
	ItemsCompleted  int64   `json:"items_completed"`
	AverageAccuracy float64 `json:"average_accuracy"`
}

func ToUsageStatsResponse(stats *model.UsageStats) UsageStatsResponse {
	return UsageStatsResponse{
		Period:          stats.Period,
		SessionCount:    stats.SessionCount,
		UniqueUsers:     stats.UniqueUsers,
		TotalSeconds:    stats.TotalSeconds,
		ItemsCompleted:  stats.ItemsCompleted,
		AverageAccuracy: stats.AverageAccuracy,
	}
}

type ListSessionsRequest struct {
	Since string `form:"since" json:"since,omitempty" binding:"omitempty" jsonschema:"format=date-time,description=Only sessions started at or after this instant"`
	Limit int32  `form:"limit" json:"limit,omitempty" binding:"omitempty,min=1,max=200" jsonschema:"minimum=1,maximum=200,description=Maximum rows returned"`
}

type SessionSummaryResponse struct {
	ID              string    `json:"id"`
	UserHash        string    `json:"user_hash"`
	StartedAt       time.Time `json:"started_at"`
	DurationSeconds int       `json:"duration_seconds"`
	ItemsCompleted  int       `json:"items_completed"`
	Accuracy        float64   `json:"accuracy"`
}

func ToSessionSummaryResponse(s model.SessionSummary) SessionSummaryResponse {
	return SessionSummaryResponse(s)
}

type ProficiencyTrendRequest struct {
	Skill string `form:"skill" json:"skill" binding:"required,oneof=listening reading writing speaking grammar" jsonschema:"enum=listening,enum=reading,enum=writing,enum=speaking,enum=grammar,description=Skill whose population trend to report"`
}

type ProficiencyPointResponse struct {
	Skill      string    `json:"skill"`
	Score      float64   `json:"score"`
	RecordedAt time.Time `json:"recorded_at"`
}

func ToProficiencyPointResponse(p model.ProficiencyPoint) ProficiencyPointResponse {
	return ProficiencyPointResponse(p)
}

type ErrorPatternsRequest struct {
	MinCount int64 `form:"min_count" json:"min_count,omitempty" binding:"omitempty,min=1" jsonschema:"minimum=1,description=Only patterns with at least this many occurrences"`
}

type ErrorPatternResponse struct {
	ErrorTag  string `json:"error_tag"`
	FeatureID string `json:"feature_id,omitempty"`
	Count     int64  `json:"count"`
}

func ToErrorPatternResponse(p model.ErrorPattern) ErrorPatternResponse {
	return ErrorPatternResponse(p)
}
