package service

import (
	"context"
	"fmt"
	"log/slog"

	"linguagraph.app/insight/common/logger"
	"linguagraph.app/insight/internal/model"
	"linguagraph.app/insight/internal/prereq"
	"linguagraph.app/insight/internal/store"
)

// GraphService resolves prerequisite structure for grammar features.
type GraphService interface {
	PrerequisiteTree(ctx context.Context, featureID string) (*model.PrerequisiteNode, error)
}

type graphService struct {
	catalog store.FeatureStore
}

func NewGraphService(catalog store.FeatureStore) GraphService {
	return &graphService{catalog: catalog}
}

// PrerequisiteTree fetches the full catalog snapshot, then runs the
// pure resolver over it. prereq.ErrNotFound flows through for the
// transport layer to turn into a 404.
func (s *graphService) PrerequisiteTree(ctx context.Context, featureID string) (*model.PrerequisiteNode, error) {
	op := "grammar.prerequisite_tree"
	ctx = logger.WithLogFields(ctx, logger.LogFields{
		Operation: &op,
		FeatureID: &featureID,
		Component: "insight.service.graph",
	})

	features, err := s.catalog.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching grammar catalog: %w", err)
	}

	node, err := prereq.Resolve(featureID, prereq.NewFeatureTable(features))
	if err != nil {
		return nil, err
	}

	slog.DebugContext(ctx, "prerequisite tree resolved",
		"feature_id", featureID, "catalog_size", len(features))
	return node, nil
}
