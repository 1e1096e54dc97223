package term

import "github.com/ijalalfrz/fuzzy-vikor-service/internal/pkg/fuzzy"

// fill values used when a collection is empty
const (
	FallbackCriteriaShortName    = "M"
	FallbackAlternativeShortName = "F"
)

// DefaultCriteriaTerms is the importance scale for criteria weights.
func DefaultCriteriaTerms() []Term {
	return []Term{
		{ID: "c-vl", Name: "Very Low (VL)", ShortName: "VL", Tri: fuzzy.New(0.0, 0.1, 0.3)},
		{ID: "c-l", Name: "Low (L)", ShortName: "L", Tri: fuzzy.New(0.1, 0.3, 0.5)},
		{ID: "c-m", Name: "Medium (M)", ShortName: "M", Tri: fuzzy.New(0.3, 0.5, 0.7)},
		{ID: "c-h", Name: "High (H)", ShortName: "H", Tri: fuzzy.New(0.5, 0.7, 0.9)},
		{ID: "c-vh", Name: "Very High (VH)", ShortName: "VH", Tri: fuzzy.New(0.7, 0.9, 1.0)},
	}
}

// DefaultAlternativeTerms is the rating scale for alternatives.
func DefaultAlternativeTerms() []Term {
	return []Term{
		{ID: "a-vp", Name: "Very Poor (VP)", ShortName: "VP", Tri: fuzzy.New(0.0, 0.0, 0.2)},
		{ID: "a-p", Name: "Poor (P)", ShortName: "P", Tri: fuzzy.New(0.0, 0.2, 0.4)},
		{ID: "a-f", Name: "Fair (F)", ShortName: "F", Tri: fuzzy.New(0.2, 0.4, 0.6)},
		{ID: "a-g", Name: "Good (G)", ShortName: "G", Tri: fuzzy.New(0.4, 0.6, 0.8)},
		{ID: "a-vg", Name: "Very Good (VG)", ShortName: "VG", Tri: fuzzy.New(0.6, 0.8, 1.0)},
		{ID: "a-e", Name: "Excellent (E)", ShortName: "E", Tri: fuzzy.New(0.8, 0.9, 1.0)},
	}
}
