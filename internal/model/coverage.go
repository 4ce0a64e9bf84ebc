package model

import "linguagraph.app/insight/internal/cefr"

// CoverageRow reports how much published content exercises one grammar
// feature. Gap is true iff no content references the feature.
type CoverageRow struct {
	FeatureID    string    `json:"feature_id"`
	Name         string    `json:"name"`
	Band         cefr.Band `json:"cefr_level"`
	Category     string    `json:"category"`
	ContentCount int       `json:"content_count"`
	Gap          bool      `json:"gap"`
}

type CoverageSummary struct {
	TotalFeatures   int `json:"total_features"`
	Covered         int `json:"covered"`
	Gaps            int `json:"gaps"`
	CoveragePercent int `json:"coverage_percent"`
}

// CoverageReport is recomputed per request and never persisted.
// Invariant: Covered + Gaps == TotalFeatures.
type CoverageReport struct {
	Rows    []CoverageRow   `json:"rows"`
	Summary CoverageSummary `json:"summary"`
}
