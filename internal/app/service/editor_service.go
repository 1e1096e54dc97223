package service

import (
	"context"

	"github.com/ijalalfrz/fuzzy-vikor-service/internal/app/dto"
	"github.com/ijalalfrz/fuzzy-vikor-service/internal/pkg/matrix"
	"github.com/ijalalfrz/fuzzy-vikor-service/internal/pkg/term"
	"github.com/ijalalfrz/fuzzy-vikor-service/internal/pkg/vikor"
)

// DefaultTerms godoc
// @Summary      Default term collections
// @Tags         Terms
// @Success      200      {object}  dto.DefaultTermsResponse
// @Router       /api/v1/vikor/terms/defaults [get]
func (s *VikorService) DefaultTerms(_ context.Context) dto.DefaultTermsResponse {
	return dto.DefaultTermsResponse{
		CriteriaTerms:    term.DefaultCriteriaTerms(),
		AlternativeTerms: term.DefaultAlternativeTerms(),
	}
}

// ValidateTerms reports every problem of a collection without saving it.
// ValidateTerms godoc
// @Summary      Validate a term collection
// @Tags         Terms
// @Param        request  body      dto.TermsRequest  true  "Terms"
// @Success      200      {object}  dto.ValidateTermsResponse
// @Router       /api/v1/vikor/terms/validate [post]
func (s *VikorService) ValidateTerms(_ context.Context, req dto.TermsRequest) dto.ValidateTermsResponse {
	return term.Validate(req.Terms)
}

// SaveTerms validates and normalizes a collection, assigning IDs to new terms.
// SaveTerms godoc
// @Summary      Save a term collection
// @Tags         Terms
// @Param        request  body      dto.TermsRequest  true  "Terms"
// @Success      200      {object}  dto.SaveTermsResponse
// @Failure      400      {object}  dto.ErrorResponse
// @Router       /api/v1/vikor/terms/save [post]
func (s *VikorService) SaveTerms(_ context.Context, req dto.TermsRequest) (dto.SaveTermsResponse, error) {
	saved, report := term.Save(req.Terms)
	if !report.Valid {
		return dto.SaveTermsResponse{}, dto.TermReportError("terms", report)
	}

	return dto.SaveTermsResponse{Terms: term.EnsureIDs(saved)}, nil
}

// ResizeMatrix resizes labels, benefit flags and both judgment matrices to
// the requested counts, keeping every cell that still fits.
// ResizeMatrix godoc
// @Summary      Resize the judgment matrices
// @Tags         Matrix
// @Param        request  body      dto.ResizeRequest  true  "State and target counts"
// @Success      200      {object}  dto.ResizeResponse
// @Failure      400      {object}  dto.ErrorResponse
// @Router       /api/v1/vikor/matrix/resize [post]
func (s *VikorService) ResizeMatrix(_ context.Context, req dto.ResizeRequest) dto.ResizeResponse {
	criteriaFill := req.CriteriaFill
	if criteriaFill == "" {
		criteriaFill = term.DefaultShortName(term.DefaultCriteriaTerms(), term.FallbackCriteriaShortName)
	}

	alternativeFill := req.AlternativeFill
	if alternativeFill == "" {
		alternativeFill = term.DefaultShortName(term.DefaultAlternativeTerms(), term.FallbackAlternativeShortName)
	}

	m, n, k := req.NumAlternatives, req.NumCriteria, req.NumExperts

	return dto.ResizeResponse{
		NumAlternatives:   m,
		NumCriteria:       n,
		NumExperts:        k,
		AlternativeLabels: matrix.ResizeLabels(req.AlternativeLabels, m, vikor.AlternativeLabelPrefix),
		CriteriaLabels:    matrix.ResizeLabels(req.CriteriaLabels, n, vikor.CriterionLabelPrefix),
		ExpertLabels:      matrix.ResizeLabels(req.ExpertLabels, k, vikor.ExpertLabelPrefix),
		BenefitCost:       matrix.Resize(req.BenefitCost, n, true),
		CriteriaInputs:    matrix.Resize2D(req.CriteriaInputs, k, n, criteriaFill),
		AlternativeInputs: matrix.Resize3D(req.AlternativeInputs, k, m, n, alternativeFill),
	}
}
