package store

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"linguagraph.app/insight/internal/cefr"
	"linguagraph.app/insight/internal/model"
)

type contentStore struct {
	pool *pgxpool.Pool
}

const selectTagPayloads = `
SELECT COALESCE(tags, '{}'::jsonb)
FROM content_items`

func (s *contentStore) ListTagPayloads(ctx context.Context) ([]model.TagPayload, error) {
	rows, err := s.pool.Query(ctx, selectTagPayloads)
	if err != nil {
		return nil, fmt.Errorf("listing content tags: %w", err)
	}
	defer rows.Close()

	var payloads []model.TagPayload
	for rows.Next() {
		var p model.TagPayload
		if err := rows.Scan(&p); err != nil {
			return nil, fmt.Errorf("scanning content tags: %w", err)
		}
		payloads = append(payloads, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading content tags: %w", err)
	}
	return payloads, nil
}

// ListCandidates assembles the filter predicates as numbered
// placeholders; filter values never reach the SQL text.
func (s *contentStore) ListCandidates(ctx context.Context, filters ContentFilters) ([]model.ContentItem, error) {
	var (
		conds []string
		args  []any
	)

	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if filters.Topic != nil {
		conds = append(conds, "topic = "+arg(*filters.Topic))
	}
	if filters.Type != nil {
		conds = append(conds, "content_type = "+arg(string(*filters.Type)))
	}
	if filters.Band != nil {
		lo, hi := cefr.ScoreRange(*filters.Band)
		if !math.IsInf(lo, -1) {
			conds = append(conds, "difficulty_score > "+arg(lo))
		}
		if !math.IsInf(hi, 1) {
			conds = append(conds, "difficulty_score <= "+arg(hi))
		}
	}

	query := `
SELECT id, content_type, title, difficulty_score, topic,
       COALESCE(tags, '{}'::jsonb), duration_seconds, created_at
FROM content_items`
	if len(conds) > 0 {
		query += "\nWHERE " + strings.Join(conds, " AND ")
	}
	query += "\nORDER BY created_at ASC"
	if filters.Limit > 0 {
		query += "\nLIMIT " + arg(filters.Limit)
	}

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing content candidates: %w", err)
	}
	defer rows.Close()

	var items []model.ContentItem
	for rows.Next() {
		var item model.ContentItem
		err := rows.Scan(&item.ID, &item.Type, &item.Title, &item.DifficultyScore,
			&item.Topic, &item.Tags, &item.DurationSeconds, &item.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("scanning content item: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading content items: %w", err)
	}
	return items, nil
}
