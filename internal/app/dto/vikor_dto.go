package dto

import (
	"fmt"
	"net/http"

	"github.com/ijalalfrz/fuzzy-vikor-service/internal/pkg/term"
	"github.com/ijalalfrz/fuzzy-vikor-service/internal/pkg/vikor"
)

type CalculateRequest struct {
	NumAlternatives int      `json:"num_alternatives" validate:"required,min=1,max=20"`
	NumCriteria     int      `json:"num_criteria" validate:"required,min=1,max=20"`
	NumExperts      int      `json:"num_experts" validate:"required,min=1,max=20"`
	V               *float64 `json:"v,omitempty" validate:"omitempty,gte=0,lte=1"`
	BenefitCost     []bool   `json:"benefit_cost" validate:"required"`

	AlternativeLabels []string `json:"alternative_labels,omitempty"`
	CriteriaLabels    []string `json:"criteria_labels,omitempty"`
	ExpertLabels      []string `json:"expert_labels,omitempty"`

	CriteriaTerms    []term.Term `json:"criteria_terms,omitempty"`
	AlternativeTerms []term.Term `json:"alternative_terms,omitempty"`

	// [expert][criterion]
	CriteriaInputs [][]string `json:"criteria_inputs" validate:"required"`
	// [expert][alternative][criterion]
	AlternativeInputs [][][]string `json:"alternative_inputs" validate:"required"`
}

func (c *CalculateRequest) Bind(_ *http.Request) error {
	if err := c.Validate(); err != nil {
		return fmt.Errorf("error validate request: %w", err)
	}

	return nil
}

// Validate checks field rules and any supplied term collection. Matrix
// shapes are checked by the calculation itself.
func (c *CalculateRequest) Validate() error {
	if err := ValidateFields(c); err != nil {
		return err
	}

	if c.CriteriaTerms != nil {
		if report := term.Validate(c.CriteriaTerms); !report.Valid {
			return TermReportError("criteria_terms", report)
		}
	}

	if c.AlternativeTerms != nil {
		if report := term.Validate(c.AlternativeTerms); !report.Valid {
			return TermReportError("alternative_terms", report)
		}
	}

	return nil
}

// ToInput builds the calculation input, filling in defaults for v and the
// term collections. Supplied collections are normalized the same way saving
// them would.
func (c CalculateRequest) ToInput(defaultV float64) vikor.Input {
	v := defaultV
	if c.V != nil {
		v = *c.V
	}

	criteriaTerms := term.DefaultCriteriaTerms()
	if c.CriteriaTerms != nil {
		criteriaTerms = term.Normalize(c.CriteriaTerms)
	}

	alternativeTerms := term.DefaultAlternativeTerms()
	if c.AlternativeTerms != nil {
		alternativeTerms = term.Normalize(c.AlternativeTerms)
	}

	return vikor.Input{
		Config: vikor.Config{
			NumAlternatives:   c.NumAlternatives,
			NumCriteria:       c.NumCriteria,
			NumExperts:        c.NumExperts,
			V:                 v,
			BenefitCost:       c.BenefitCost,
			AlternativeLabels: c.AlternativeLabels,
			CriteriaLabels:    c.CriteriaLabels,
			ExpertLabels:      c.ExpertLabels,
		},
		Dictionaries: vikor.Dictionaries{
			Criteria:     term.NewDictionary(criteriaTerms),
			Alternatives: term.NewDictionary(alternativeTerms),
		},
		Judgments: vikor.Judgments{
			CriteriaInputs:    c.CriteriaInputs,
			AlternativeInputs: c.AlternativeInputs,
		},
	}
}

type CalculateMetadata struct {
	CalculationID     string `json:"calculation_id"`
	CacheHit          bool   `json:"cache_hit"`
	CalculationTimeMs int    `json:"calculation_time_ms"`
}

type CalculateResponse struct {
	Results  vikor.Results     `json:"results"`
	Metadata CalculateMetadata `json:"metadata"`
}
