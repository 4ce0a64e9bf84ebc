package sampling

import (
	"sort"

	"linguagraph.app/insight/internal/cefr"
	"linguagraph.app/insight/internal/model"
)

// Stratify draws a band-balanced slice from candidate content, used when
// the caller supplies no explicit level filter.
//
// Candidates are partitioned by the band of their difficulty score and
// each band keeps at most ceil(totalLimit/6) of its earliest-created
// items. The result is ordered by (difficulty asc, created asc) and may
// exceed totalLimit by up to 5 items when totalLimit is not a multiple
// of 6 — the cap is a per-band allocation, not a global truncation, so
// no single band can crowd out the rest.
func Stratify(candidates []model.ContentItem, totalLimit int) []model.ContentItem {
	if totalLimit < 1 || len(candidates) == 0 {
		return []model.ContentItem{}
	}

	perBand := (totalLimit + len(cefr.Bands) - 1) / len(cefr.Bands)

	groups := make(map[cefr.Band][]model.ContentItem, len(cefr.Bands))
	for _, item := range candidates {
		band := cefr.BandOf(item.DifficultyScore)
		groups[band] = append(groups[band], item)
	}

	result := make([]model.ContentItem, 0, perBand*len(cefr.Bands))
	for _, band := range cefr.Bands {
		group := groups[band]
		sort.SliceStable(group, func(i, j int) bool {
			return group[i].CreatedAt.Before(group[j].CreatedAt)
		})
		if len(group) > perBand {
			group = group[:perBand]
		}
		result = append(result, group...)
	}

	sort.SliceStable(result, func(i, j int) bool {
		if result[i].DifficultyScore != result[j].DifficultyScore {
			return result[i].DifficultyScore < result[j].DifficultyScore
		}
		return result[i].CreatedAt.Before(result[j].CreatedAt)
	})

	return result
}
