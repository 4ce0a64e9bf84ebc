package dto

import "linguagraph.app/insight/internal/model"

type CoverageRowResponse struct {
	FeatureID    string `json:"feature_id"`
	Name         string `json:"name"`
	CEFRLevel    string `json:"cefr_level"`
	Category     string `json:"category"`
	ContentCount int    `json:"content_count"`
	Gap          bool   `json:"gap"`
}

type CoverageSummaryResponse struct {
	TotalFeatures   int `json:"total_features"`
	Covered         int `json:"covered"`
	Gaps            int `json:"gaps"`
	CoveragePercent int `json:"coverage_percent"`
}

type CoverageReportResponse struct {
	Rows    []CoverageRowResponse   `json:"rows"`
	Summary CoverageSummaryResponse `json:"summary"`
}

func ToCoverageReportResponse(report model.CoverageReport) CoverageReportResponse {
	rows := make([]CoverageRowResponse, 0, len(report.Rows))
	for _, row := range report.Rows {
		rows = append(rows, CoverageRowResponse{
			FeatureID:    row.FeatureID,
			Name:         row.Name,
			CEFRLevel:    string(row.Band),
			Category:     row.Category,
			ContentCount: row.ContentCount,
			Gap:          row.Gap,
		})
	}
	return CoverageReportResponse{
		Rows: rows,
		Summary: CoverageSummaryResponse{
			TotalFeatures:   report.Summary.TotalFeatures,
			Covered:         report.Summary.Covered,
			Gaps:            report.Summary.Gaps,
			CoveragePercent: report.Summary.CoveragePercent,
		},
	}
}
