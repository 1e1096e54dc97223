package term

import "github.com/ijalalfrz/fuzzy-vikor-service/internal/pkg/fuzzy"

// Normalize rescales the whole collection into [0, 1] when any upper bound
// exceeds 1, dividing every component of every term by the largest u.
// Collections already within range are returned unchanged (as a copy).
func Normalize(terms []Term) []Term {
	out := Clone(terms)
	if len(out) == 0 {
		return out
	}

	maxU := out[0].Tri.U
	for _, t := range out[1:] {
		if t.Tri.U > maxU {
			maxU = t.Tri.U
		}
	}

	if maxU <= 1 {
		return out
	}

	for i := range out {
		out[i].Tri = fuzzy.Divide(out[i].Tri, maxU)
	}

	return out
}

// Save validates the collection and, when valid, returns it normalized.
// Invalid collections return a nil slice with the failing report.
func Save(terms []Term) ([]Term, Report) {
	report := Validate(terms)
	if !report.Valid {
		return nil, report
	}

	return Normalize(terms), report
}
