package store

import (
	"context"
	"errors"
	"time"

	"linguagraph.app/insight/internal/cefr"
	"linguagraph.app/insight/internal/model"
)

// ErrNotFound is returned when a requested entity does not exist
var ErrNotFound = errors.New("not found")

// FeatureStore reads the grammar-feature catalog
type FeatureStore interface {
	ListAll(ctx context.Context) ([]model.GrammarFeature, error)
	GetByID(ctx context.Context, id string) (*model.GrammarFeature, error)
}

// ContentFilters narrows a candidate-content listing. Nil fields are
// not applied. Band translates to a difficulty-score range.
type ContentFilters struct {
	Topic *string
	Type  *model.ContentType
	Band  *cefr.Band
	Limit int32
}

// ContentStore reads content items and their tag projections
type ContentStore interface {
	ListTagPayloads(ctx context.Context) ([]model.TagPayload, error)
	ListCandidates(ctx context.Context, filters ContentFilters) ([]model.ContentItem, error)
}

// TelemetryStore reads anonymized usage telemetry
type TelemetryStore interface {
	UsageStats(ctx context.Context, period string) (*model.UsageStats, error)
	ListSessions(ctx context.Context, since *time.Time, limit int32) ([]model.SessionSummary, error)
	ProficiencyTrend(ctx context.Context, skill string) ([]model.ProficiencyPoint, error)
	ErrorPatterns(ctx context.Context, minCount int64) ([]model.ErrorPattern, error)
}

// ExerciseFilters narrows an exercise listing. Nil fields are not
// applied.
type ExerciseFilters struct {
	FeatureID *string
	Type      *model.ExerciseType
	Limit     int32
}

// ExerciseStore reads practice exercises
type ExerciseStore interface {
	List(ctx context.Context, filters ExerciseFilters) ([]model.Exercise, error)
}

// SchemaStore introspects the readable tables
type SchemaStore interface {
	DescribeTables(ctx context.Context) ([]model.ColumnInfo, error)
}
