package cefr

import "math"

// Band is one of the six CEFR proficiency levels.
type Band string

const (
	BandA1 Band = "A1"
	BandA2 Band = "A2"
	BandB1 Band = "B1"
	BandB2 Band = "B2"
	BandC1 Band = "C1"
	BandC2 Band = "C2"

	// BandUnknown marks entities whose level could not be determined,
	// e.g. a prerequisite reference with no catalog entry.
	BandUnknown Band = "unknown"
)

// Bands lists the six levels in ascending order.
var Bands = []Band{BandA1, BandA2, BandB1, BandB2, BandC1, BandC2}

// Upper difficulty-score bound for each band. Scores above the C1 bound
// fall into C2, which has no upper bound.
const (
	maxA1 = 2.0
	maxA2 = 3.5
	maxB1 = 5.0
	maxB2 = 7.0
	maxC1 = 9.0
)

// BandOf maps a continuous difficulty score to exactly one band.
// Boundary scores belong to the lower band.
func BandOf(score float64) Band {
	switch {
	case score <= maxA1:
		return BandA1
	case score <= maxA2:
		return BandA2
	case score <= maxB1:
		return BandB1
	case score <= maxB2:
		return BandB2
	case score <= maxC1:
		return BandC1
	default:
		return BandC2
	}
}

// Rank returns the fixed sort rank of a band, A1=0 through C2=5.
// Band comparisons must always go through Rank — lexical order happens
// to agree for the six level names but is not part of the contract.
// Unknown bands rank after C2.
func Rank(b Band) int {
	switch b {
	case BandA1:
		return 0
	case BandA2:
		return 1
	case BandB1:
		return 2
	case BandB2:
		return 3
	case BandC1:
		return 4
	case BandC2:
		return 5
	default:
		return 6
	}
}

// ScoreRange returns the inclusive difficulty-score interval covered by a
// band, used when translating a level filter into a score predicate.
// C2 has no upper bound; unknown bands cover the whole line.
func ScoreRange(b Band) (lo, hi float64) {
	switch b {
	case BandA1:
		return math.Inf(-1), maxA1
	case BandA2:
		return maxA1, maxA2
	case BandB1:
		return maxA2, maxB1
	case BandB2:
		return maxB1, maxB2
	case BandC1:
		return maxB2, maxC1
	case BandC2:
		return maxC1, math.Inf(1)
	default:
		return math.Inf(-1), math.Inf(1)
	}
}

// Parse returns the band matching a level string, or false when the
// string names no known level.
func Parse(s string) (Band, bool) {
	for _, b := range Bands {
		if string(b) == s {
			return b, true
		}
	}
	return BandUnknown, false
}
