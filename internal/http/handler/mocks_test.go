package handler_test

import (
	"context"
	"time"

	"linguagraph.app/insight/internal/model"
	"linguagraph.app/insight/internal/service"
	"linguagraph.app/insight/internal/store"
)

type mockGraphService struct {
	prerequisiteTreeFn func(ctx context.Context, featureID string) (*model.PrerequisiteNode, error)
}

func (m *mockGraphService) PrerequisiteTree(ctx context.Context, featureID string) (*model.PrerequisiteNode, error) {
	if m.prerequisiteTreeFn != nil {
		return m.prerequisiteTreeFn(ctx, featureID)
	}
	return nil, nil
}

type mockCoverageService struct {
	reportFn func(ctx context.Context) (model.CoverageReport, error)
}

func (m *mockCoverageService) Report(ctx context.Context) (model.CoverageReport, error) {
	if m.reportFn != nil {
		return m.reportFn(ctx)
	}
	return model.CoverageReport{}, nil
}

type mockContentService struct {
	browseFn func(ctx context.Context, filters service.BrowseFilters) ([]model.ContentItem, error)
}

func (m *mockContentService) Browse(ctx context.Context, filters service.BrowseFilters) ([]model.ContentItem, error) {
	if m.browseFn != nil {
		return m.browseFn(ctx, filters)
	}
	return nil, nil
}

type mockTelemetryService struct {
	statsFn            func(ctx context.Context, period string) (*model.UsageStats, error)
	sessionsFn         func(ctx context.Context, since *time.Time, limit int32) ([]model.SessionSummary, error)
	proficiencyTrendFn func(ctx context.Context, skill string) ([]model.ProficiencyPoint, error)
	errorPatternsFn    func(ctx context.Context, minCount int64) ([]model.ErrorPattern, error)
}

func (m *mockTelemetryService) Stats(ctx context.Context, period string) (*model.UsageStats, error) {
	if m.statsFn != nil {
		return m.statsFn(ctx, period)
	}
	return &model.UsageStats{Period: period}, nil
}

func (m *mockTelemetryService) Sessions(ctx context.Context, since *time.Time, limit int32) ([]model.SessionSummary, error) {
	if m.sessionsFn != nil {
		return m.sessionsFn(ctx, since, limit)
	}
	return nil, nil
}

func (m *mockTelemetryService) ProficiencyTrend(ctx context.Context, skill string) ([]model.ProficiencyPoint, error) {
	if m.proficiencyTrendFn != nil {
		return m.proficiencyTrendFn(ctx, skill)
	}
	return nil, nil
}

func (m *mockTelemetryService) ErrorPatterns(ctx context.Context, minCount int64) ([]model.ErrorPattern, error) {
	if m.errorPatternsFn != nil {
		return m.errorPatternsFn(ctx, minCount)
	}
	return nil, nil
}

type mockExerciseService struct {
	listFn func(ctx context.Context, filters store.ExerciseFilters) ([]model.Exercise, error)
}

func (m *mockExerciseService) List(ctx context.Context, filters store.ExerciseFilters) ([]model.Exercise, error) {
	if m.listFn != nil {
		return m.listFn(ctx, filters)
	}
	return nil, nil
}

type mockSchemaService struct {
	describeFn func(ctx context.Context) ([]model.ColumnInfo, error)
}

func (m *mockSchemaService) Describe(ctx context.Context) ([]model.ColumnInfo, error) {
	if m.describeFn != nil {
		return m.describeFn(ctx)
	}
	return nil, nil
}
