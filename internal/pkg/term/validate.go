package term

import (
	"errors"
	"math"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/ijalalfrz/fuzzy-vikor-service/internal/pkg/fuzzy"
)

// messages shown next to the offending field
const (
	MsgRequired   = "required"
	MsgDuplicate  = "duplicate"
	MsgLowerMid   = "l <= m"
	MsgMidUpper   = "m <= u"
	MsgDegenerate = "l != u"
	MsgNotFinite  = "finite number"
)

// FieldErrors maps a field name (name, short_name, l, m, u) to its message.
type FieldErrors map[string]string

// Report is the outcome of validating a term collection. Errors is keyed by
// term ID, or "#<index>" for terms without one.
type Report struct {
	Valid  bool                   `json:"valid"`
	Errors map[string]FieldErrors `json:"errors,omitempty"`
	Global []string               `json:"global_errors,omitempty"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	v.RegisterStructValidation(triangularStructLevel, fuzzy.TriangularNumber{})

	return v
}

// triangularStructLevel enforces l <= m <= u and rejects single point numbers.
// NaN compares false against everything, so non-finite components are
// rejected first and the ordering checks are skipped.
func triangularStructLevel(sl validator.StructLevel) {
	tri, ok := sl.Current().Interface().(fuzzy.TriangularNumber)
	if !ok {
		return
	}

	if !tri.IsFinite() {
		for _, c := range []struct {
			value       float64
			field, name string
		}{{tri.L, "l", "L"}, {tri.M, "m", "M"}, {tri.U, "u", "U"}} {
			if math.IsNaN(c.value) || math.IsInf(c.value, 0) {
				sl.ReportError(c.value, c.field, c.name, "finite", "")
			}
		}
		return
	}

	if tri.L > tri.M {
		sl.ReportError(tri.L, "l", "L", "ltefield", "m")
	}
	if tri.M > tri.U {
		sl.ReportError(tri.M, "m", "M", "ltefield", "u")
	}
	if tri.L == tri.U {
		sl.ReportError(tri.L, "l", "L", "nefield", "u")
		sl.ReportError(tri.U, "u", "U", "nefield", "l")
	}
}

// Validate checks a term collection the way the term editor does before
// saving: names and short names present, short names unique, finite bounds
// with l <= m <= u and l != u, and at least MinTerms terms.
func Validate(terms []Term) Report {
	report := Report{Valid: true, Errors: map[string]FieldErrors{}}

	if len(terms) < MinTerms {
		report.Valid = false
		report.Global = append(report.Global, ErrMinimumTerms.Message)
	}

	seen := make(map[string]struct{}, len(terms))
	for i, t := range terms {
		fields := FieldErrors{}

		if err := validate.Struct(t); err != nil {
			var verrs validator.ValidationErrors
			if !errors.As(err, &verrs) {
				fields["term"] = err.Error()
			}
			for _, fe := range verrs {
				fields[fe.Field()] = fieldMessage(fe)
			}
		}

		if t.ShortName != "" {
			if _, dup := seen[t.ShortName]; dup {
				fields["short_name"] = MsgDuplicate
			}
			seen[t.ShortName] = struct{}{}
		}

		if len(fields) > 0 {
			report.Valid = false
			report.Errors[t.key(i)] = fields
		}
	}

	if len(report.Errors) == 0 {
		report.Errors = nil
	}

	return report
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return MsgRequired
	case "nefield":
		return MsgDegenerate
	case "finite":
		return MsgNotFinite
	case "ltefield":
		if fe.Field() == "l" {
			return MsgLowerMid
		}
		return MsgMidUpper
	default:
		return fe.Error()
	}
}
