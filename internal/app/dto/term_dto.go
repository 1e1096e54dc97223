package dto

import (
	"fmt"
	"net/http"
	"sort"

	"github.com/ijalalfrz/fuzzy-vikor-service/internal/pkg/exception"
	"github.com/ijalalfrz/fuzzy-vikor-service/internal/pkg/term"
)

var ErrInvalidTerms = exception.ApplicationError{
	StatusCode: http.StatusBadRequest,
	Message:    "invalid term collection",
}

type TermsRequest struct {
	Terms []term.Term `json:"terms" validate:"required"`
}

func (t *TermsRequest) Bind(_ *http.Request) error {
	if err := ValidateFields(t); err != nil {
		return fmt.Errorf("error validate request: %w", err)
	}

	return nil
}

type DefaultTermsResponse struct {
	CriteriaTerms    []term.Term `json:"criteria_terms"`
	AlternativeTerms []term.Term `json:"alternative_terms"`
}

type ValidateTermsResponse = term.Report

type SaveTermsResponse struct {
	Terms []term.Term `json:"terms"`
}

// TermReportError converts a failing report into a 400 with one detail per
// problem. Details are sorted by term key then field so responses are stable.
func TermReportError(path string, report term.Report) exception.ApplicationError {
	var fields []exception.FieldError

	for _, msg := range report.Global {
		fields = append(fields, exception.FieldError{Path: path, Message: msg})
	}

	keys := make([]string, 0, len(report.Errors))
	for key := range report.Errors {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		names := make([]string, 0, len(report.Errors[key]))
		for name := range report.Errors[key] {
			names = append(names, name)
		}
		sort.Strings(names)

		for _, name := range names {
			fields = append(fields, exception.FieldError{
				Path:    fmt.Sprintf("%s.%s", path, key),
				Field:   name,
				Message: report.Errors[key][name],
			})
		}
	}

	return ErrInvalidTerms.WithFields(fields...)
}
