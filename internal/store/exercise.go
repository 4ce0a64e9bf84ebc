package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"linguagraph.app/insight/internal/model"
)

type exerciseStore struct {
	pool *pgxpool.Pool
}

func (s *exerciseStore) List(ctx context.Context, filters ExerciseFilters) ([]model.Exercise, error) {
	var (
		conds []string
		args  []any
	)

	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if filters.FeatureID != nil {
		conds = append(conds, "feature_id = "+arg(*filters.FeatureID))
	}
	if filters.Type != nil {
		conds = append(conds, "exercise_type = "+arg(string(*filters.Type)))
	}

	query := `
SELECT id, feature_id, exercise_type, prompt, difficulty_score
FROM exercises`
	if len(conds) > 0 {
		query += "\nWHERE " + strings.Join(conds, " AND ")
	}
	query += "\nORDER BY difficulty_score ASC, id ASC"
	if filters.Limit > 0 {
		query += "\nLIMIT " + arg(filters.Limit)
	}

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing exercises: %w", err)
	}
	defer rows.Close()

	var exercises []model.Exercise
	for rows.Next() {
		var e model.Exercise
		if err := rows.Scan(&e.ID, &e.FeatureID, &e.Type, &e.Prompt, &e.DifficultyScore); err != nil {
			return nil, fmt.Errorf("scanning exercise: %w", err)
		}
		exercises = append(exercises, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading exercises: %w", err)
	}
	return exercises, nil
}
