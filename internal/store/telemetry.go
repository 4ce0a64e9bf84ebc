package store

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"linguagraph.app/insight/internal/model"
)

type telemetryStore struct {
	pool *pgxpool.Pool
}

// Periods accepted by UsageStats. date_trunc handles the bucketing, so
// the period string itself is validated here and never interpolated.
var validPeriods = map[string]struct{}{
	"day":   {},
	"week":  {},
	"month": {},
}

const selectUsageStats = `
SELECT COUNT(*),
       COUNT(DISTINCT user_hash),
       COALESCE(SUM(duration_seconds), 0),
       COALESCE(SUM(items_completed), 0),
       COALESCE(AVG(accuracy), 0)
FROM usage_sessions
WHERE started_at >= date_trunc($1, now())`

func (s *telemetryStore) UsageStats(ctx context.Context, period string) (*model.UsageStats, error) {
	if _, ok := validPeriods[period]; !ok {
		return nil, fmt.Errorf("invalid period %q", period)
	}

	stats := model.UsageStats{Period: period}
	err := s.pool.QueryRow(ctx, selectUsageStats, period).Scan(
		&stats.SessionCount, &stats.UniqueUsers, &stats.TotalSeconds,
		&stats.ItemsCompleted, &stats.AverageAccuracy)
	if err != nil {
		return nil, fmt.Errorf("aggregating usage stats: %w", err)
	}
	return &stats, nil
}

const selectSessions = `
SELECT id, user_hash, started_at, duration_seconds, items_completed, accuracy
FROM usage_sessions
WHERE started_at >= $1
ORDER BY started_at DESC
LIMIT $2`

func (s *telemetryStore) ListSessions(ctx context.Context, since *time.Time, limit int32) ([]model.SessionSummary, error) {
	from := time.Time{}
	if since != nil {
		from = *since
	}

	rows, err := s.pool.Query(ctx, selectSessions, from, limit)
	if err != nil {
		return nil, fmt.Errorf("listing sessions: %w", err)
	}
	defer rows.Close()

	var sessions []model.SessionSummary
	for rows.Next() {
		var sess model.SessionSummary
		err := rows.Scan(&sess.ID, &sess.UserHash, &sess.StartedAt,
			&sess.DurationSeconds, &sess.ItemsCompleted, &sess.Accuracy)
		if err != nil {
			return nil, fmt.Errorf("scanning session: %w", err)
		}
		sessions = append(sessions, sess)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading sessions: %w", err)
	}
	return sessions, nil
}

const selectProficiencyTrend = `
SELECT skill, AVG(score), date_trunc('week', recorded_at) AS week
FROM proficiency_snapshots
WHERE skill = $1
GROUP BY skill, week
ORDER BY week ASC`

func (s *telemetryStore) ProficiencyTrend(ctx context.Context, skill string) ([]model.ProficiencyPoint, error) {
	rows, err := s.pool.Query(ctx, selectProficiencyTrend, skill)
	if err != nil {
		return nil, fmt.Errorf("listing proficiency trend: %w", err)
	}
	defer rows.Close()

	var points []model.ProficiencyPoint
	for rows.Next() {
		var p model.ProficiencyPoint
		if err := rows.Scan(&p.Skill, &p.Score, &p.RecordedAt); err != nil {
			return nil, fmt.Errorf("scanning proficiency point: %w", err)
		}
		points = append(points, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading proficiency trend: %w", err)
	}
	return points, nil
}

const selectErrorPatterns = `
SELECT error_tag, COALESCE(feature_id, ''), COUNT(*) AS n
FROM error_events
GROUP BY error_tag, feature_id
HAVING COUNT(*) >= $1
ORDER BY n DESC, error_tag ASC`

func (s *telemetryStore) ErrorPatterns(ctx context.Context, minCount int64) ([]model.ErrorPattern, error) {
	if minCount < 1 {
		minCount = 1
	}

	rows, err := s.pool.Query(ctx, selectErrorPatterns, minCount)
	if err != nil {
		return nil, fmt.Errorf("aggregating error patterns: %w", err)
	}
	defer rows.Close()

	var patterns []model.ErrorPattern
	for rows.Next() {
		var p model.ErrorPattern
		if err := rows.Scan(&p.ErrorTag, &p.FeatureID, &p.Count); err != nil {
			return nil, fmt.Errorf("scanning error pattern: %w", err)
		}
		patterns = append(patterns, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading error patterns: %w", err)
	}
	return patterns, nil
}
