package vikor

import (
	"slices"

	"github.com/ijalalfrz/fuzzy-vikor-service/internal/pkg/fuzzy"
	"github.com/ijalalfrz/fuzzy-vikor-service/internal/pkg/matrix"
	"github.com/ijalalfrz/fuzzy-vikor-service/internal/pkg/term"
)

// DefaultV weighs group utility and individual regret equally (consensus).
const DefaultV = 0.5

// Config holds the problem dimensions and static settings of a calculation.
type Config struct {
	NumAlternatives   int      `json:"num_alternatives"`
	NumCriteria       int      `json:"num_criteria"`
	NumExperts        int      `json:"num_experts"`
	V                 float64  `json:"v"`
	BenefitCost       []bool   `json:"benefit_cost"`
	AlternativeLabels []string `json:"alternative_labels"`
	CriteriaLabels    []string `json:"criteria_labels"`
	ExpertLabels      []string `json:"expert_labels"`
}

// Dictionaries resolves short names for both judgment kinds.
type Dictionaries struct {
	Criteria     term.Dictionary `json:"criteria"`
	Alternatives term.Dictionary `json:"alternatives"`
}

// Judgments holds the expert inputs as term short names.
type Judgments struct {
	// [expert][criterion]
	CriteriaInputs [][]string `json:"criteria_inputs"`
	// [expert][alternative][criterion]
	AlternativeInputs [][][]string `json:"alternative_inputs"`
}

// Input is everything one calculation needs.
type Input struct {
	Config       Config       `json:"config"`
	Dictionaries Dictionaries `json:"dictionaries"`
	Judgments    Judgments    `json:"judgments"`
}

// RankedAlternative is one row of a ranking list. The three lists share the
// row type and differ only in sort key.
type RankedAlternative struct {
	AltIndex int     `json:"alt_index"`
	AltLabel string  `json:"alt_label"`
	S        float64 `json:"s"`
	R        float64 `json:"r"`
	Q        float64 `json:"q"`
}

// Compromise is the outcome of the two acceptance conditions.
type Compromise struct {
	Advantage           float64             `json:"advantage"`
	Threshold           float64             `json:"threshold"`
	AcceptableAdvantage bool                `json:"acceptable_advantage"`
	AcceptableStability bool                `json:"acceptable_stability"`
	Set                 []RankedAlternative `json:"set"`
}

// Labels returns the alternative labels of the compromise set.
func (c Compromise) Labels() []string {
	labels := make([]string, len(c.Set))
	for i, alt := range c.Set {
		labels[i] = alt.AltLabel
	}

	return labels
}

// diagnostic kinds
const (
	DiagnosticTermNotFound = "term_not_found"
	DiagnosticZeroSpread   = "zero_spread"
)

// pipeline stages named in diagnostics
const (
	StageAggregation   = "aggregation"
	StageNormalization = "normalization"
	StageQSynthesis    = "q_synthesis"
)

// Diagnostic flags degenerate input that was handled by a silent fallback.
// It never changes the computed numbers.
type Diagnostic struct {
	Kind    string `json:"kind"`
	Stage   string `json:"stage"`
	Index   int    `json:"index"`
	Message string `json:"message"`
}

// Results is the complete snapshot of one calculation, step by step.
type Results struct {
	// step 2
	AggregatedWeights []fuzzy.TriangularNumber   `json:"aggregated_weights"`
	AggregatedRatings [][]fuzzy.TriangularNumber `json:"aggregated_ratings"`
	// step 3
	Ideal []fuzzy.TriangularNumber `json:"ideal"`
	Nadir []fuzzy.TriangularNumber `json:"nadir"`
	// step 4
	NormalizedDiff [][]fuzzy.TriangularNumber `json:"normalized_diff"`
	// step 5, 6
	S []fuzzy.TriangularNumber `json:"s"`
	R []fuzzy.TriangularNumber `json:"r"`
	Q []fuzzy.TriangularNumber `json:"q"`
	// step 7
	CrispS []float64 `json:"crisp_s"`
	CrispR []float64 `json:"crisp_r"`
	CrispQ []float64 `json:"crisp_q"`
	// step 8
	RankedByS []RankedAlternative `json:"ranked_by_s"`
	RankedByR []RankedAlternative `json:"ranked_by_r"`
	RankedByQ []RankedAlternative `json:"ranked_by_q"`
	// step 9
	Compromise Compromise `json:"compromise"`

	Diagnostics []Diagnostic `json:"diagnostics,omitempty"`
}

// Clone returns a copy of r that shares no slices with it.
func (r Results) Clone() Results {
	out := r

	out.AggregatedWeights = slices.Clone(r.AggregatedWeights)
	out.AggregatedRatings = matrix.Clone2D(r.AggregatedRatings)
	out.Ideal = slices.Clone(r.Ideal)
	out.Nadir = slices.Clone(r.Nadir)
	out.NormalizedDiff = matrix.Clone2D(r.NormalizedDiff)
	out.S = slices.Clone(r.S)
	out.R = slices.Clone(r.R)
	out.Q = slices.Clone(r.Q)
	out.CrispS = slices.Clone(r.CrispS)
	out.CrispR = slices.Clone(r.CrispR)
	out.CrispQ = slices.Clone(r.CrispQ)
	out.RankedByS = slices.Clone(r.RankedByS)
	out.RankedByR = slices.Clone(r.RankedByR)
	out.RankedByQ = slices.Clone(r.RankedByQ)
	out.Compromise.Set = slices.Clone(r.Compromise.Set)
	out.Diagnostics = slices.Clone(r.Diagnostics)

	return out
}
