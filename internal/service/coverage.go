package service

import (
	"context"
	"fmt"
	"log/slog"

	"linguagraph.app/insight/common/logger"
	"linguagraph.app/insight/internal/coverage"
	"linguagraph.app/insight/internal/model"
	"linguagraph.app/insight/internal/store"
)

// CoverageService reports content coverage of the grammar catalog.
type CoverageService interface {
	Report(ctx context.Context) (model.CoverageReport, error)
}

type coverageService struct {
	catalog store.FeatureStore
	content store.ContentStore
}

func NewCoverageService(catalog store.FeatureStore, content store.ContentStore) CoverageService {
	return &coverageService{catalog: catalog, content: content}
}

// Report fetches both inputs sequentially, then reconciles in memory.
// Either fetch failing fails the request; the reconciliation itself has
// no error cases.
func (s *coverageService) Report(ctx context.Context) (model.CoverageReport, error) {
	op := "coverage.report"
	ctx = logger.WithLogFields(ctx, logger.LogFields{
		Operation: &op,
		Component: "insight.service.coverage",
	})

	features, err := s.catalog.ListAll(ctx)
	if err != nil {
		return model.CoverageReport{}, fmt.Errorf("fetching grammar catalog: %w", err)
	}

	payloads, err := s.content.ListTagPayloads(ctx)
	if err != nil {
		return model.CoverageReport{}, fmt.Errorf("fetching content tags: %w", err)
	}

	report := coverage.Reconcile(features, payloads)

	slog.DebugContext(ctx, "coverage reconciled",
		"features", report.Summary.TotalFeatures,
		"gaps", report.Summary.Gaps,
		"items", len(payloads))
	return report, nil
}
