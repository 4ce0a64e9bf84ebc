package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"linguagraph.app/insight/internal/model"
)

type featureStore struct {
	pool *pgxpool.Pool
}

const selectFeatures = `
SELECT id, name, cefr_level, category, COALESCE(prerequisites, '{}')
FROM grammar_features
ORDER BY id`

const selectFeatureByID = `
SELECT id, name, cefr_level, category, COALESCE(prerequisites, '{}')
FROM grammar_features
WHERE id = $1`

func (s *featureStore) ListAll(ctx context.Context) ([]model.GrammarFeature, error) {
	rows, err := s.pool.Query(ctx, selectFeatures)
	if err != nil {
		return nil, fmt.Errorf("listing grammar features: %w", err)
	}
	defer rows.Close()

	var features []model.GrammarFeature
	for rows.Next() {
		var f model.GrammarFeature
		if err := rows.Scan(&f.ID, &f.Name, &f.Band, &f.Category, &f.Prerequisites); err != nil {
			return nil, fmt.Errorf("scanning grammar feature: %w", err)
		}
		features = append(features, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading grammar features: %w", err)
	}
	return features, nil
}

func (s *featureStore) GetByID(ctx context.Context, id string) (*model.GrammarFeature, error) {
	var f model.GrammarFeature
	err := s.pool.QueryRow(ctx, selectFeatureByID, id).
		Scan(&f.ID, &f.Name, &f.Band, &f.Category, &f.Prerequisites)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("getting grammar feature %q: %w", id, err)
	}
	return &f, nil
}
