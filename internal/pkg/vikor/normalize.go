package vikor

import "github.com/ijalalfrz/fuzzy-vikor-service/internal/pkg/fuzzy"

// criterionSpread is the crisp denominator of the normalized distance:
// u* - l° for benefit criteria, u° - l* for cost criteria.
func criterionSpread(ideal, nadir fuzzy.TriangularNumber, benefit bool) float64 {
	if benefit {
		return ideal.U - nadir.L
	}

	return nadir.U - ideal.L
}

// NormalizeDistances computes the normalized fuzzy distance d_ij of every
// alternative from the ideal of every criterion.
//
//	benefit: (f* - f_ij) / (u* - l°)
//	cost:    (f_ij - f*) / (u° - l*)
//
// A zero spread yields fuzzy zero through fuzzy.Divide.
func NormalizeDistances(ratings [][]fuzzy.TriangularNumber,
	ideal, nadir []fuzzy.TriangularNumber, benefit []bool) [][]fuzzy.TriangularNumber {
	diffs := make([][]fuzzy.TriangularNumber, len(ratings))

	for i := range ratings {
		diffs[i] = make([]fuzzy.TriangularNumber, len(benefit))
		for j := range benefit {
			var numerator fuzzy.TriangularNumber
			if benefit[j] {
				numerator = fuzzy.Subtract(ideal[j], ratings[i][j])
			} else {
				numerator = fuzzy.Subtract(ratings[i][j], ideal[j])
			}

			diffs[i][j] = fuzzy.Divide(numerator, criterionSpread(ideal[j], nadir[j], benefit[j]))
		}
	}

	return diffs
}
