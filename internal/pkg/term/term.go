package term

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/ijalalfrz/fuzzy-vikor-service/internal/pkg/exception"
	"github.com/ijalalfrz/fuzzy-vikor-service/internal/pkg/fuzzy"
)

// MinTerms is the smallest collection the editor accepts.
const MinTerms = 2

var (
	ErrMinimumTerms = exception.ApplicationError{
		StatusCode: http.StatusBadRequest,
		Message:    fmt.Sprintf("a term collection needs at least %d terms", MinTerms),
	}

	ErrTermNotFound = exception.ApplicationError{
		StatusCode: http.StatusNotFound,
		Message:    "term not found",
	}
)

// Term is a linguistic term such as "High (H)" mapped to a triangular number.
// ShortName is the lookup key used in judgment matrices.
type Term struct {
	ID        string                 `json:"id" yaml:"id"`
	Name      string                 `json:"name" yaml:"name" validate:"required"`
	ShortName string                 `json:"short_name" yaml:"short_name" validate:"required"`
	Tri       fuzzy.TriangularNumber `json:"tri" yaml:"tri"`
}

// key identifies a term inside validation reports.
func (t Term) key(index int) string {
	if t.ID != "" {
		return t.ID
	}

	return "#" + strconv.Itoa(index)
}

// Dictionary maps short names to triangular numbers.
type Dictionary map[string]fuzzy.TriangularNumber

// NewDictionary derives a dictionary from a term collection. For duplicated
// short names the first term wins.
func NewDictionary(terms []Term) Dictionary {
	dict := make(Dictionary, len(terms))
	for _, t := range terms {
		if _, ok := dict[t.ShortName]; ok {
			continue
		}
		dict[t.ShortName] = t.Tri
	}

	return dict
}

// Lookup is total: unknown short names resolve to fuzzy zero. This keeps
// half-filled judgment matrices computable.
func (d Dictionary) Lookup(shortName string) fuzzy.TriangularNumber {
	tri, _ := d.Resolve(shortName)
	return tri
}

// Resolve is Lookup that also reports whether the short name was found.
func (d Dictionary) Resolve(shortName string) (fuzzy.TriangularNumber, bool) {
	tri, ok := d[shortName]
	if !ok {
		return fuzzy.Zero, false
	}

	return tri, true
}

// Clone returns an independent copy of the dictionary.
func (d Dictionary) Clone() Dictionary {
	out := make(Dictionary, len(d))
	for k, v := range d {
		out[k] = v
	}

	return out
}

// DefaultShortName returns the short name of the first term, used to fill new
// judgment cells, or fallback for an empty collection.
func DefaultShortName(terms []Term, fallback string) string {
	if len(terms) == 0 || terms[0].ShortName == "" {
		return fallback
	}

	return terms[0].ShortName
}

// EnsureIDs returns a copy of terms where every term has an ID.
func EnsureIDs(terms []Term) []Term {
	out := Clone(terms)
	for i := range out {
		if out[i].ID == "" {
			out[i].ID = uuid.New().String()
		}
	}

	return out
}

// Clone copies a term collection.
func Clone(terms []Term) []Term {
	if terms == nil {
		return nil
	}

	out := make([]Term, len(terms))
	copy(out, terms)

	return out
}

// Add appends a term, assigning an ID when missing.
func Add(terms []Term, t Term) []Term {
	if t.ID == "" {
		t.ID = uuid.New().String()
	}

	return append(Clone(terms), t)
}

// Update replaces the term with the same ID.
func Update(terms []Term, t Term) ([]Term, error) {
	out := Clone(terms)
	for i := range out {
		if out[i].ID == t.ID {
			out[i] = t
			return out, nil
		}
	}

	return nil, exception.ApplicationError{
		StatusCode: ErrTermNotFound.StatusCode,
		Message:    ErrTermNotFound.Message,
		Cause:      errors.New("id " + t.ID),
	}
}

// Remove deletes the term with the given ID. Collections at the MinTerms
// floor cannot shrink.
func Remove(terms []Term, id string) ([]Term, error) {
	if len(terms) <= MinTerms {
		return nil, ErrMinimumTerms
	}

	out := make([]Term, 0, len(terms)-1)
	found := false
	for _, t := range terms {
		if t.ID == id && !found {
			found = true
			continue
		}
		out = append(out, t)
	}

	if !found {
		return nil, exception.ApplicationError{
			StatusCode: ErrTermNotFound.StatusCode,
			Message:    ErrTermNotFound.Message,
			Cause:      errors.New("id " + id),
		}
	}

	return out, nil
}
