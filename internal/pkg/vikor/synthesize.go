package vikor

import (
	"math"

	"github.com/ijalalfrz/fuzzy-vikor-service/internal/pkg/fuzzy"
)

// SynthesizeSR weighs every normalized distance by its criterion weight and
// folds the weighted vector into S (fuzzy sum, group utility) and R (fuzzy
// componentwise max, individual regret). Without criteria R is fuzzy zero.
func SynthesizeSR(weights []fuzzy.TriangularNumber, diffs [][]fuzzy.TriangularNumber) (s, r []fuzzy.TriangularNumber) {
	s = make([]fuzzy.TriangularNumber, len(diffs))
	r = make([]fuzzy.TriangularNumber, len(diffs))

	weighted := make([]fuzzy.TriangularNumber, len(weights))
	for i := range diffs {
		for j := range weights {
			weighted[j] = fuzzy.Multiply(weights[j], diffs[i][j])
		}

		s[i] = fuzzy.Sum(weighted)
		if len(weighted) == 0 {
			r[i] = fuzzy.Zero
			continue
		}
		r[i] = fuzzy.Fold(weighted[1:], weighted[0], fuzzy.Max)
	}

	return s, r
}

// spread returns min(l) and max(u) over values, the crisp ideal lower bound
// and nadir upper bound of an S or R vector.
func spread(values []fuzzy.TriangularNumber) (starL, nadirU float64) {
	starL, nadirU = math.Inf(1), math.Inf(-1)
	for _, v := range values {
		starL = math.Min(starL, v.L)
		nadirU = math.Max(nadirU, v.U)
	}

	return starL, nadirU
}

// SynthesizeQ blends S and R into the compromise index
//
//	Q_i = v * (S_i - S*) / (S°u - S*l) + (1 - v) * (R_i - R*) / (R°u - R*l)
//
// where S*, R* are the componentwise minima across alternatives.
func SynthesizeQ(s, r []fuzzy.TriangularNumber, v float64) []fuzzy.TriangularNumber {
	sStar := fuzzy.Fold(s, fuzzy.PositiveInfinity, fuzzy.Min)
	rStar := fuzzy.Fold(r, fuzzy.PositiveInfinity, fuzzy.Min)

	sStarL, sNadirU := spread(s)
	rStarL, rNadirU := spread(r)

	q := make([]fuzzy.TriangularNumber, len(s))
	for i := range s {
		utility := fuzzy.Scale(fuzzy.Divide(fuzzy.Subtract(s[i], sStar), sNadirU-sStarL), v)
		regret := fuzzy.Scale(fuzzy.Divide(fuzzy.Subtract(r[i], rStar), rNadirU-rStarL), 1-v)
		q[i] = fuzzy.Add(utility, regret)
	}

	return q
}
