package dto

import (
	"fmt"
	"net/http"
)

// ResizeRequest carries the current editor state and the target dimensions.
// Empty fill values default to the first term of the default collections.
type ResizeRequest struct {
	NumAlternatives int `json:"num_alternatives" validate:"required,min=1,max=20"`
	NumCriteria     int `json:"num_criteria" validate:"required,min=1,max=20"`
	NumExperts      int `json:"num_experts" validate:"required,min=1,max=20"`

	AlternativeLabels []string     `json:"alternative_labels"`
	CriteriaLabels    []string     `json:"criteria_labels"`
	ExpertLabels      []string     `json:"expert_labels"`
	BenefitCost       []bool       `json:"benefit_cost"`
	CriteriaInputs    [][]string   `json:"criteria_inputs"`
	AlternativeInputs [][][]string `json:"alternative_inputs"`
	CriteriaFill      string       `json:"criteria_fill,omitempty"`
	AlternativeFill   string       `json:"alternative_fill,omitempty"`
}

func (r *ResizeRequest) Bind(_ *http.Request) error {
	if err := ValidateFields(r); err != nil {
		return fmt.Errorf("error validate request: %w", err)
	}

	return nil
}

type ResizeResponse struct {
	NumAlternatives   int          `json:"num_alternatives"`
	NumCriteria       int          `json:"num_criteria"`
	NumExperts        int          `json:"num_experts"`
	AlternativeLabels []string     `json:"alternative_labels"`
	CriteriaLabels    []string     `json:"criteria_labels"`
	ExpertLabels      []string     `json:"expert_labels"`
	BenefitCost       []bool       `json:"benefit_cost"`
	CriteriaInputs    [][]string   `json:"criteria_inputs"`
	AlternativeInputs [][][]string `json:"alternative_inputs"`
}
