package vikor

import (
	"sort"

	"github.com/ijalalfrz/fuzzy-vikor-service/internal/pkg/fuzzy"
)

// ranking keys
const (
	RankByS = "s"
	RankByR = "r"
	RankByQ = "q"
)

// DefuzzifyAll converts a fuzzy vector to crisp values.
func DefuzzifyAll(values []fuzzy.TriangularNumber) []float64 {
	crisp := make([]float64, len(values))
	for i, v := range values {
		crisp[i] = fuzzy.Defuzzify(v)
	}

	return crisp
}

// RankAlternatives builds the three ascending rankings by S, R and Q.
// Lower is better in all three; ties keep the input order.
func RankAlternatives(labels []string, s, r, q []float64) (byS, byR, byQ []RankedAlternative) {
	rows := make([]RankedAlternative, len(q))
	for i := range rows {
		rows[i] = RankedAlternative{
			AltIndex: i,
			AltLabel: labelAt(labels, i),
			S:        s[i],
			R:        r[i],
			Q:        q[i],
		}
	}

	byS = SortAlternatives(rows, RankByS)
	byR = SortAlternatives(rows, RankByR)
	byQ = SortAlternatives(rows, RankByQ)

	return byS, byR, byQ
}

// SortAlternatives returns a sorted copy of rows ordered ascending by the
// given key. Unknown keys sort by Q.
func SortAlternatives(rows []RankedAlternative, key string) []RankedAlternative {
	sorted := make([]RankedAlternative, len(rows))
	copy(sorted, rows)

	switch key {
	case RankByS:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].S < sorted[j].S
		})
	case RankByR:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].R < sorted[j].R
		})
	default:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Q < sorted[j].Q
		})
	}

	return sorted
}

func labelAt(labels []string, i int) string {
	if i < len(labels) {
		return labels[i]
	}

	return ""
}
