package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"linguagraph.app/insight/internal/model"
)

type schemaStore struct {
	pool *pgxpool.Pool
}

// Only the read tables this API serves are introspectable.
const selectColumns = `
SELECT table_name, column_name, data_type, is_nullable = 'YES'
FROM information_schema.columns
WHERE table_schema = 'public'
  AND table_name = ANY($1)
ORDER BY table_name, ordinal_position`

var readableTables = []string{
	"grammar_features",
	"content_items",
	"usage_sessions",
	"proficiency_snapshots",
	"exercises",
	"error_events",
}

func (s *schemaStore) DescribeTables(ctx context.Context) ([]model.ColumnInfo, error) {
	rows, err := s.pool.Query(ctx, selectColumns, readableTables)
	if err != nil {
		return nil, fmt.Errorf("describing tables: %w", err)
	}
	defer rows.Close()

	var columns []model.ColumnInfo
	for rows.Next() {
		var c model.ColumnInfo
		if err := rows.Scan(&c.TableName, &c.ColumnName, &c.DataType, &c.Nullable); err != nil {
			return nil, fmt.Errorf("scanning column info: %w", err)
		}
		columns = append(columns, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading column info: %w", err)
	}
	return columns, nil
}
