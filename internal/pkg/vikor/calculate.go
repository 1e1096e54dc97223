package vikor

import (
	"errors"
	"fmt"
	"math"
	"net/http"

	"github.com/ijalalfrz/fuzzy-vikor-service/internal/pkg/exception"
	"github.com/ijalalfrz/fuzzy-vikor-service/internal/pkg/matrix"
)

// default label prefixes for synthesized labels
const (
	AlternativeLabelPrefix = "Alternative"
	CriterionLabelPrefix   = "Criterion"
	ExpertLabelPrefix      = "Expert"
)

var (
	ErrInvalidInput = exception.ApplicationError{
		StatusCode: http.StatusBadRequest,
		Message:    "invalid calculation input",
	}

	ErrCalculationFailed = exception.ApplicationError{
		StatusCode: http.StatusInternalServerError,
		Message:    "calculation failed",
	}
)

// Calculate runs the Fuzzy VIKOR pipeline:
//
//  1. resolve judgments through the term dictionaries
//  2. aggregate criteria weights and alternative ratings across experts
//  3. resolve ideal and nadir per criterion
//  4. normalize distances from the ideal
//  5. synthesize S and R
//  6. synthesize Q
//  7. defuzzify S, R, Q
//  8. rank by S, R, Q
//  9. select the compromise set
//
// The result is all or nothing: malformed input is rejected before any
// computation and a failure inside the pipeline returns no partial result.
func Calculate(in Input) (res Results, err error) {
	if err := ValidateInput(in); err != nil {
		return Results{}, err
	}

	defer func() {
		if rvr := recover(); rvr != nil {
			res = Results{}
			err = ErrCalculationFailed.WithCause(fmt.Errorf("%v", rvr))
		}
	}()

	return calculate(in), nil
}

func calculate(in Input) Results {
	cfg := in.Config

	criteriaTri, diags := resolveCriteria(in.Judgments.CriteriaInputs, in.Dictionaries.Criteria)
	alternativeTri, altDiags := resolveAlternatives(in.Judgments.AlternativeInputs, in.Dictionaries.Alternatives)
	diags = append(diags, altDiags...)

	weights := AggregateWeights(criteriaTri, cfg.NumCriteria)
	ratings := AggregateRatings(alternativeTri, cfg.NumAlternatives, cfg.NumCriteria)

	ideal, nadir := ResolveIdeal(ratings, cfg.BenefitCost)
	diffs := NormalizeDistances(ratings, ideal, nadir, cfg.BenefitCost)

	s, r := SynthesizeSR(weights, diffs)
	q := SynthesizeQ(s, r, cfg.V)
	diags = append(diags, spreadDiagnostics(ideal, nadir, cfg.BenefitCost, s, r)...)

	crispS, crispR, crispQ := DefuzzifyAll(s), DefuzzifyAll(r), DefuzzifyAll(q)

	labels := cfg.AlternativeLabels
	if labels == nil {
		labels = matrix.ResizeLabels(nil, cfg.NumAlternatives, AlternativeLabelPrefix)
	}
	byS, byR, byQ := RankAlternatives(labels, crispS, crispR, crispQ)

	return Results{
		AggregatedWeights: weights,
		AggregatedRatings: ratings,
		Ideal:             ideal,
		Nadir:             nadir,
		NormalizedDiff:    diffs,
		S:                 s,
		R:                 r,
		Q:                 q,
		CrispS:            crispS,
		CrispR:            crispR,
		CrispQ:            crispQ,
		RankedByS:         byS,
		RankedByR:         byR,
		RankedByQ:         byQ,
		Compromise:        SelectCompromise(byS, byR, byQ),
		Diagnostics:       diags,
	}
}

// ValidateInput checks counts, v and that every slice matches the counts.
// Labels may be nil, in which case defaults are synthesized.
func ValidateInput(in Input) error {
	cfg := in.Config

	invalid := func(format string, args ...any) error {
		return ErrInvalidInput.WithCause(fmt.Errorf(format, args...))
	}

	switch {
	case cfg.NumAlternatives < 1:
		return invalid("num_alternatives must be positive, got %d", cfg.NumAlternatives)
	case cfg.NumCriteria < 1:
		return invalid("num_criteria must be positive, got %d", cfg.NumCriteria)
	case cfg.NumExperts < 1:
		return invalid("num_experts must be positive, got %d", cfg.NumExperts)
	case math.IsNaN(cfg.V) || cfg.V < 0 || cfg.V > 1:
		return invalid("v must be within [0, 1], got %v", cfg.V)
	case len(cfg.BenefitCost) != cfg.NumCriteria:
		return invalid("benefit_cost: expected %d criteria, got %d", cfg.NumCriteria, len(cfg.BenefitCost))
	}

	labels := []struct {
		name   string
		labels []string
		want   int
	}{
		{"alternative_labels", cfg.AlternativeLabels, cfg.NumAlternatives},
		{"criteria_labels", cfg.CriteriaLabels, cfg.NumCriteria},
		{"expert_labels", cfg.ExpertLabels, cfg.NumExperts},
	}
	for _, l := range labels {
		if l.labels != nil && len(l.labels) != l.want {
			return invalid("%s: expected %d labels, got %d", l.name, l.want, len(l.labels))
		}
	}

	if err := checkCriteriaShape(in.Judgments.CriteriaInputs, cfg); err != nil {
		return ErrInvalidInput.WithCause(err)
	}

	if err := checkAlternativeShape(in.Judgments.AlternativeInputs, cfg); err != nil {
		return ErrInvalidInput.WithCause(err)
	}

	return nil
}

func checkCriteriaShape(inputs [][]string, cfg Config) error {
	if len(inputs) != cfg.NumExperts {
		return fmt.Errorf("criteria_inputs: expected %d experts, got %d", cfg.NumExperts, len(inputs))
	}

	for e, row := range inputs {
		if len(row) != cfg.NumCriteria {
			return fmt.Errorf("criteria_inputs[%d]: expected %d criteria, got %d", e, cfg.NumCriteria, len(row))
		}
	}

	return nil
}

func checkAlternativeShape(inputs [][][]string, cfg Config) error {
	if len(inputs) != cfg.NumExperts {
		return fmt.Errorf("alternative_inputs: expected %d experts, got %d", cfg.NumExperts, len(inputs))
	}

	var errs []error
	for e, m := range inputs {
		if len(m) != cfg.NumAlternatives {
			errs = append(errs, fmt.Errorf("alternative_inputs[%d]: expected %d alternatives, got %d",
				e, cfg.NumAlternatives, len(m)))
			continue
		}
		for i, row := range m {
			if len(row) != cfg.NumCriteria {
				errs = append(errs, fmt.Errorf("alternative_inputs[%d][%d]: expected %d criteria, got %d",
					e, i, cfg.NumCriteria, len(row)))
			}
		}
	}

	return errors.Join(errs...)
}
