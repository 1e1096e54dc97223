//go:build unit

package vikor

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/ijalalfrz/fuzzy-vikor-service/internal/pkg/fuzzy"
)

var approx = cmpopts.EquateApprox(0, 1e-9)

func TestAggregate_Closure(t *testing.T) {
	aggregateRequest := func(values []fuzzy.TriangularNumber, want fuzzy.TriangularNumber) func(t *testing.T) {
		return func(t *testing.T) {
			got := Aggregate(values)
			if diff := cmp.Diff(want, got, approx); diff != "" {
				t.Fatalf("Aggregate mismatch (-want +got):\n%s", diff)
			}
		}
	}

	t.Run("min_mean_max", aggregateRequest([]fuzzy.TriangularNumber{
		fuzzy.New(0, 0.5, 1),
		fuzzy.New(0.2, 0.5, 0.8),
		fuzzy.New(0.1, 0.5, 0.9),
	}, fuzzy.New(0, 0.5, 1)))

	t.Run("mean_of_middle", aggregateRequest([]fuzzy.TriangularNumber{
		fuzzy.New(0.1, 0.3, 0.5),
		fuzzy.New(0.5, 0.7, 0.9),
	}, fuzzy.New(0.1, 0.5, 0.9)))

	t.Run("single_expert", aggregateRequest([]fuzzy.TriangularNumber{fuzzy.New(0.2, 0.4, 0.6)}, fuzzy.New(0.2, 0.4, 0.6)))
	t.Run("no_experts", aggregateRequest(nil, fuzzy.Zero))
}

func TestAggregateMatrices(t *testing.T) {
	weights := AggregateWeights([][]fuzzy.TriangularNumber{
		{fuzzy.New(0, 0.1, 0.3), fuzzy.New(0.5, 0.7, 0.9)},
		{fuzzy.New(0.1, 0.3, 0.5), fuzzy.New(0.7, 0.9, 1)},
	}, 2)

	want := []fuzzy.TriangularNumber{fuzzy.New(0, 0.2, 0.5), fuzzy.New(0.5, 0.8, 1)}
	if diff := cmp.Diff(want, weights, approx); diff != "" {
		t.Fatalf("AggregateWeights mismatch (-want +got):\n%s", diff)
	}

	ratings := AggregateRatings([][][]fuzzy.TriangularNumber{
		{{fuzzy.New(0, 0, 0.2)}, {fuzzy.New(0.8, 0.9, 1)}},
		{{fuzzy.New(0.2, 0.4, 0.6)}, {fuzzy.New(0.6, 0.8, 1)}},
	}, 2, 1)

	wantRatings := [][]fuzzy.TriangularNumber{
		{fuzzy.New(0, 0.2, 0.6)},
		{fuzzy.New(0.6, 0.85, 1)},
	}
	if diff := cmp.Diff(wantRatings, ratings, approx); diff != "" {
		t.Fatalf("AggregateRatings mismatch (-want +got):\n%s", diff)
	}
}

func TestResolveIdeal_Closure(t *testing.T) {
	worse := fuzzy.New(0, 0.2, 0.4)
	better := fuzzy.New(0.4, 0.6, 0.8)
	ratings := [][]fuzzy.TriangularNumber{{worse}, {better}}

	idealRequest := func(benefit bool, wantIdeal, wantNadir fuzzy.TriangularNumber) func(t *testing.T) {
		return func(t *testing.T) {
			ideal, nadir := ResolveIdeal(ratings, []bool{benefit})
			if diff := cmp.Diff([]fuzzy.TriangularNumber{wantIdeal}, ideal); diff != "" {
				t.Fatalf("ideal mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff([]fuzzy.TriangularNumber{wantNadir}, nadir); diff != "" {
				t.Fatalf("nadir mismatch (-want +got):\n%s", diff)
			}
		}
	}

	t.Run("benefit", idealRequest(true, better, worse))
	t.Run("cost", idealRequest(false, worse, better))

	t.Run("componentwise_not_ordering", func(t *testing.T) {
		ideal, nadir := ResolveIdeal([][]fuzzy.TriangularNumber{
			{fuzzy.New(0, 0.9, 1)},
			{fuzzy.New(0.3, 0.4, 0.5)},
		}, []bool{true})
		if ideal[0] != fuzzy.New(0.3, 0.9, 1) || nadir[0] != fuzzy.New(0, 0.4, 0.5) {
			t.Fatalf("unexpected ideal %v nadir %v", ideal[0], nadir[0])
		}
	})
}

func TestNormalizeDistances_Closure(t *testing.T) {
	normalizeRequest := func(ratings [][]fuzzy.TriangularNumber, benefit []bool,
		want [][]fuzzy.TriangularNumber) func(t *testing.T) {
		return func(t *testing.T) {
			ideal, nadir := ResolveIdeal(ratings, benefit)
			got := NormalizeDistances(ratings, ideal, nadir, benefit)
			if diff := cmp.Diff(want, got, approx); diff != "" {
				t.Fatalf("NormalizeDistances mismatch (-want +got):\n%s", diff)
			}
		}
	}

	ratings := [][]fuzzy.TriangularNumber{
		{fuzzy.New(0, 0.2, 0.4)},
		{fuzzy.New(0.4, 0.6, 0.8)},
	}

	t.Run("benefit", normalizeRequest(ratings, []bool{true}, [][]fuzzy.TriangularNumber{
		{fuzzy.New(0, 0.5, 1)},
		{fuzzy.New(-0.5, 0, 0.5)},
	}))

	t.Run("cost", normalizeRequest(ratings, []bool{false}, [][]fuzzy.TriangularNumber{
		{fuzzy.New(-0.5, 0, 0.5)},
		{fuzzy.New(0, 0.5, 1)},
	}))

	t.Run("crisp_tie_falls_back_to_zero", normalizeRequest([][]fuzzy.TriangularNumber{
		{fuzzy.New(0.5, 0.5, 0.5)},
		{fuzzy.New(0.5, 0.5, 0.5)},
	}, []bool{true}, [][]fuzzy.TriangularNumber{
		{fuzzy.Zero},
		{fuzzy.Zero},
	}))
}

func TestSynthesizeSR_Closure(t *testing.T) {
	synthesizeRequest := func(weights []fuzzy.TriangularNumber, diffs [][]fuzzy.TriangularNumber,
		wantS, wantR []fuzzy.TriangularNumber) func(t *testing.T) {
		return func(t *testing.T) {
			s, r := SynthesizeSR(weights, diffs)
			if diff := cmp.Diff(wantS, s, approx); diff != "" {
				t.Fatalf("S mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(wantR, r, approx); diff != "" {
				t.Fatalf("R mismatch (-want +got):\n%s", diff)
			}
		}
	}

	t.Run("sum_and_max", synthesizeRequest(
		[]fuzzy.TriangularNumber{fuzzy.New(1, 1, 1), fuzzy.New(0.5, 0.5, 0.5)},
		[][]fuzzy.TriangularNumber{{fuzzy.New(0, 0.5, 1), fuzzy.New(0.2, 0.4, 0.6)}},
		[]fuzzy.TriangularNumber{fuzzy.New(0.1, 0.7, 1.3)},
		[]fuzzy.TriangularNumber{fuzzy.New(0.1, 0.5, 1)},
	))

	t.Run("no_criteria", synthesizeRequest(
		nil,
		[][]fuzzy.TriangularNumber{{}, {}},
		[]fuzzy.TriangularNumber{fuzzy.Zero, fuzzy.Zero},
		[]fuzzy.TriangularNumber{fuzzy.Zero, fuzzy.Zero},
	))
}

func TestSynthesizeQ(t *testing.T) {
	s := []fuzzy.TriangularNumber{fuzzy.New(0, 0.2, 0.4), fuzzy.New(0.2, 0.4, 0.6)}
	r := []fuzzy.TriangularNumber{fuzzy.New(0, 0.1, 0.2), fuzzy.New(0.1, 0.2, 0.3)}

	t.Run("pure_utility", func(t *testing.T) {
		q := SynthesizeQ(s, r, 1)
		// S* = (0, 0.2, 0.4), spread = 0.6 - 0
		want := []fuzzy.TriangularNumber{
			fuzzy.Divide(fuzzy.Subtract(s[0], s[0]), 0.6),
			fuzzy.Divide(fuzzy.Subtract(s[1], s[0]), 0.6),
		}
		if diff := cmp.Diff(want, q, approx); diff != "" {
			t.Fatalf("Q mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("pure_regret", func(t *testing.T) {
		q := SynthesizeQ(s, r, 0)
		want := []fuzzy.TriangularNumber{
			fuzzy.Divide(fuzzy.Subtract(r[0], r[0]), 0.3),
			fuzzy.Divide(fuzzy.Subtract(r[1], r[0]), 0.3),
		}
		if diff := cmp.Diff(want, q, approx); diff != "" {
			t.Fatalf("Q mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("zero_spread", func(t *testing.T) {
		crisp := []fuzzy.TriangularNumber{fuzzy.New(1, 1, 1), fuzzy.New(1, 1, 1)}
		q := SynthesizeQ(crisp, crisp, 0.5)
		if diff := cmp.Diff([]fuzzy.TriangularNumber{fuzzy.Zero, fuzzy.Zero}, q); diff != "" {
			t.Fatalf("Q mismatch (-want +got):\n%s", diff)
		}
	})
}
