package service

import (
	"context"
	"time"

	"linguagraph.app/insight/internal/model"
	"linguagraph.app/insight/internal/store"
)

// MaxSessionLimit caps session listings regardless of what the caller
// asks for.
const MaxSessionLimit = 200

// TelemetryService exposes the anonymized usage views. These are thin
// parameter-to-filter translations; the store owns the aggregation SQL.
type TelemetryService interface {
	Stats(ctx context.Context, period string) (*model.UsageStats, error)
	Sessions(ctx context.Context, since *time.Time, limit int32) ([]model.SessionSummary, error)
	ProficiencyTrend(ctx context.Context, skill string) ([]model.ProficiencyPoint, error)
	ErrorPatterns(ctx context.Context, minCount int64) ([]model.ErrorPattern, error)
}

type telemetryService struct {
	telemetry store.TelemetryStore
}

func NewTelemetryService(telemetry store.TelemetryStore) TelemetryService {
	return &telemetryService{telemetry: telemetry}
}

func (s *telemetryService) Stats(ctx context.Context, period string) (*model.UsageStats, error) {
	return s.telemetry.UsageStats(ctx, period)
}

func (s *telemetryService) Sessions(ctx context.Context, since *time.Time, limit int32) ([]model.SessionSummary, error) {
	if limit < 1 || limit > MaxSessionLimit {
		limit = MaxSessionLimit
	}
	return s.telemetry.ListSessions(ctx, since, limit)
}

func (s *telemetryService) ProficiencyTrend(ctx context.Context, skill string) ([]model.ProficiencyPoint, error) {
	return s.telemetry.ProficiencyTrend(ctx, skill)
}

func (s *telemetryService) ErrorPatterns(ctx context.Context, minCount int64) ([]model.ErrorPattern, error) {
	return s.telemetry.ErrorPatterns(ctx, minCount)
}
