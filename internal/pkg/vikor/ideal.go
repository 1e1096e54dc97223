package vikor

import "github.com/ijalalfrz/fuzzy-vikor-service/internal/pkg/fuzzy"

// ResolveIdeal returns the best (f*) and worst (f°) value of every criterion
// across alternatives. Benefit criteria take the componentwise max as ideal,
// cost criteria the componentwise min.
func ResolveIdeal(ratings [][]fuzzy.TriangularNumber, benefit []bool) (ideal, nadir []fuzzy.TriangularNumber) {
	ideal = make([]fuzzy.TriangularNumber, len(benefit))
	nadir = make([]fuzzy.TriangularNumber, len(benefit))

	for j := range benefit {
		lo, hi := fuzzy.PositiveInfinity, fuzzy.NegativeInfinity
		for i := range ratings {
			lo = fuzzy.Min(lo, ratings[i][j])
			hi = fuzzy.Max(hi, ratings[i][j])
		}

		if benefit[j] {
			ideal[j], nadir[j] = hi, lo
		} else {
			ideal[j], nadir[j] = lo, hi
		}
	}

	return ideal, nadir
}
