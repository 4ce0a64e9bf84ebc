package coverage

import (
	"math"
	"sort"

	"linguagraph.app/insight/internal/cefr"
	"linguagraph.app/insight/internal/model"
)

// Reconcile joins the grammar catalog against content tag annotations
// and reports how many items reference each feature.
//
// The two inputs are processed independently: pass one folds the tag
// payloads into a feature-ID frequency table, pass two walks the catalog
// and joins each feature against that table. IDs referenced by content
// but absent from the catalog are counted and then ignored — the report
// is feature-keyed. An empty catalog yields an empty report with a zero
// summary.
func Reconcile(features []model.GrammarFeature, payloads []model.TagPayload) model.CoverageReport {
	counts := countReferences(payloads)

	rows := make([]model.CoverageRow, 0, len(features))
	for _, f := range features {
		n := counts[f.ID]
		rows = append(rows, model.CoverageRow{
			FeatureID:    f.ID,
			Name:         f.Name,
			Band:         f.Band,
			Category:     f.Category,
			ContentCount: n,
			Gap:          n == 0,
		})
	}

	// Within a band, gaps surface first. Stable keeps catalog order for
	// equal keys.
	sort.SliceStable(rows, func(i, j int) bool {
		ri, rj := cefr.Rank(rows[i].Band), cefr.Rank(rows[j].Band)
		if ri != rj {
			return ri < rj
		}
		return rows[i].ContentCount < rows[j].ContentCount
	})

	return model.CoverageReport{
		Rows:    rows,
		Summary: summarize(rows),
	}
}

func countReferences(payloads []model.TagPayload) map[string]int {
	counts := make(map[string]int)
	for _, p := range payloads {
		for _, id := range p.GrammarFeatures {
			counts[id]++
		}
	}
	return counts
}

func summarize(rows []model.CoverageRow) model.CoverageSummary {
	s := model.CoverageSummary{TotalFeatures: len(rows)}
	for _, row := range rows {
		if row.Gap {
			s.Gaps++
		} else {
			s.Covered++
		}
	}
	if s.TotalFeatures > 0 {
		s.CoveragePercent = int(math.Floor(100*float64(s.Covered)/float64(s.TotalFeatures) + 0.5))
	}
	return s
}
