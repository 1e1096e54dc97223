package vikor

import (
	"math"

	"github.com/ijalalfrz/fuzzy-vikor-service/internal/pkg/fuzzy"
	"github.com/ijalalfrz/fuzzy-vikor-service/internal/pkg/term"
)

// Aggregate merges expert opinions on one item into a group value:
// the smallest lower bound, the mean middle value and the largest upper bound.
func Aggregate(values []fuzzy.TriangularNumber) fuzzy.TriangularNumber {
	if len(values) == 0 {
		return fuzzy.Zero
	}

	agg := fuzzy.TriangularNumber{L: math.Inf(1), U: math.Inf(-1)}
	for _, v := range values {
		agg.L = math.Min(agg.L, v.L)
		agg.M += v.M
		agg.U = math.Max(agg.U, v.U)
	}
	agg.M /= float64(len(values))

	return agg
}

// AggregateWeights aggregates criteria importance across experts.
// tri is indexed [expert][criterion].
func AggregateWeights(tri [][]fuzzy.TriangularNumber, numCriteria int) []fuzzy.TriangularNumber {
	weights := make([]fuzzy.TriangularNumber, numCriteria)
	column := make([]fuzzy.TriangularNumber, len(tri))

	for j := range weights {
		for e := range tri {
			column[e] = tri[e][j]
		}
		weights[j] = Aggregate(column)
	}

	return weights
}

// AggregateRatings aggregates alternative ratings across experts.
// tri is indexed [expert][alternative][criterion].
func AggregateRatings(tri [][][]fuzzy.TriangularNumber, numAlternatives, numCriteria int) [][]fuzzy.TriangularNumber {
	ratings := make([][]fuzzy.TriangularNumber, numAlternatives)
	column := make([]fuzzy.TriangularNumber, len(tri))

	for i := range ratings {
		ratings[i] = make([]fuzzy.TriangularNumber, numCriteria)
		for j := range ratings[i] {
			for e := range tri {
				column[e] = tri[e][i][j]
			}
			ratings[i][j] = Aggregate(column)
		}
	}

	return ratings
}

// resolveCriteria maps criteria short names to triangular numbers and
// reports every miss.
func resolveCriteria(inputs [][]string, dict term.Dictionary) ([][]fuzzy.TriangularNumber, []Diagnostic) {
	var diags []Diagnostic

	out := make([][]fuzzy.TriangularNumber, len(inputs))
	for e, row := range inputs {
		out[e] = make([]fuzzy.TriangularNumber, len(row))
		for j, shortName := range row {
			tri, ok := dict.Resolve(shortName)
			if !ok {
				diags = append(diags, termNotFound(j, "criterion", shortName, e))
			}
			out[e][j] = tri
		}
	}

	return out, diags
}

// resolveAlternatives is resolveCriteria for the rating matrices.
func resolveAlternatives(inputs [][][]string, dict term.Dictionary) ([][][]fuzzy.TriangularNumber, []Diagnostic) {
	var diags []Diagnostic

	out := make([][][]fuzzy.TriangularNumber, len(inputs))
	for e, matrix := range inputs {
		out[e] = make([][]fuzzy.TriangularNumber, len(matrix))
		for i, row := range matrix {
			out[e][i] = make([]fuzzy.TriangularNumber, len(row))
			for j, shortName := range row {
				tri, ok := dict.Resolve(shortName)
				if !ok {
					diags = append(diags, termNotFound(i, "alternative", shortName, e))
				}
				out[e][i][j] = tri
			}
		}
	}

	return out, diags
}
