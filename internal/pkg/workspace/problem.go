package workspace

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"sort"
	"strings"

	"github.com/ijalalfrz/fuzzy-vikor-service/internal/pkg/exception"
	"github.com/ijalalfrz/fuzzy-vikor-service/internal/pkg/matrix"
	"github.com/ijalalfrz/fuzzy-vikor-service/internal/pkg/term"
	"gopkg.in/yaml.v3"
)

var ErrInvalidProblem = exception.ApplicationError{
	StatusCode: http.StatusBadRequest,
	Message:    "invalid problem file",
}

// Problem is the YAML description of a complete decision problem.
//
// Alternative judgments are [expert][alternative][criterion] unless
// CriterionMajor is set, in which case each expert's sheet is
// [criterion][alternative], the way judgments are usually collected.
type Problem struct {
	V                    *float64         `yaml:"v"`
	Alternatives         []string         `yaml:"alternatives"`
	Experts              []string         `yaml:"experts"`
	Criteria             []CriterionEntry `yaml:"criteria"`
	CriteriaTerms        []term.Term      `yaml:"criteria_terms"`
	AlternativeTerms     []term.Term      `yaml:"alternative_terms"`
	CriteriaJudgments    [][]string       `yaml:"criteria_judgments"`
	AlternativeJudgments [][][]string     `yaml:"alternative_judgments"`
	CriterionMajor       bool             `yaml:"criterion_major"`
}

// CriterionEntry names a criterion. Benefit defaults to true.
type CriterionEntry struct {
	Label   string `yaml:"label"`
	Benefit *bool  `yaml:"benefit"`
}

// LoadProblem reads and decodes a problem file.
func LoadProblem(path string) (Problem, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Problem{}, fmt.Errorf("read problem: %w", err)
	}

	return ParseProblem(data)
}

// ParseProblem decodes YAML, rejecting unknown keys.
func ParseProblem(data []byte) (Problem, error) {
	var p Problem

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	if err := dec.Decode(&p); err != nil {
		if errors.Is(err, io.EOF) {
			return Problem{}, ErrInvalidProblem.WithCause(errors.New("empty document"))
		}
		return Problem{}, ErrInvalidProblem.WithCause(err)
	}

	return p, nil
}

// Build creates a workspace holding the problem. Omitted judgments keep the
// workspace defaults.
func (p Problem) Build() (*Workspace, error) {
	w, err := New(len(p.Alternatives), len(p.Criteria), len(p.Experts))
	if err != nil {
		return nil, ErrInvalidProblem.WithCause(err)
	}

	if p.V != nil {
		if err := w.SetV(*p.V); err != nil {
			return nil, ErrInvalidProblem.WithCause(err)
		}
	}

	if err := p.applyTerms(w); err != nil {
		return nil, err
	}

	if err := p.applyLabels(w); err != nil {
		return nil, err
	}

	if err := p.applyJudgments(w); err != nil {
		return nil, ErrInvalidProblem.WithCause(err)
	}

	return w, nil
}

func (p Problem) applyTerms(w *Workspace) error {
	if len(p.CriteriaTerms) > 0 {
		if report := w.SaveCriteriaTerms(p.CriteriaTerms); !report.Valid {
			return ErrInvalidProblem.WithCause(fmt.Errorf("criteria_terms: %s", describeReport(report)))
		}
	}

	if len(p.AlternativeTerms) > 0 {
		if report := w.SaveAlternativeTerms(p.AlternativeTerms); !report.Valid {
			return ErrInvalidProblem.WithCause(fmt.Errorf("alternative_terms: %s", describeReport(report)))
		}
	}

	return nil
}

func (p Problem) applyLabels(w *Workspace) error {
	for i, label := range p.Alternatives {
		if err := w.SetLabel(LabelAlternative, i, label); err != nil {
			return ErrInvalidProblem.WithCause(err)
		}
	}

	for i, label := range p.Experts {
		if err := w.SetLabel(LabelExpert, i, label); err != nil {
			return ErrInvalidProblem.WithCause(err)
		}
	}

	for j, c := range p.Criteria {
		if c.Label != "" {
			if err := w.SetLabel(LabelCriterion, j, c.Label); err != nil {
				return ErrInvalidProblem.WithCause(err)
			}
		}

		if c.Benefit != nil {
			if err := w.SetBenefit(j, *c.Benefit); err != nil {
				return ErrInvalidProblem.WithCause(err)
			}
		}
	}

	return nil
}

func (p Problem) applyJudgments(w *Workspace) error {
	m, n, k := len(p.Alternatives), len(p.Criteria), len(p.Experts)

	if len(p.CriteriaJudgments) > 0 {
		if err := checkShape2D("criteria_judgments", p.CriteriaJudgments, k, n); err != nil {
			return err
		}

		for e, row := range p.CriteriaJudgments {
			for j, name := range row {
				if err := w.SetCriteriaJudgment(e, j, name); err != nil {
					return err
				}
			}
		}
	}

	if len(p.AlternativeJudgments) == 0 {
		return nil
	}

	if len(p.AlternativeJudgments) != k {
		return fmt.Errorf("alternative_judgments: want %d experts, got %d", k, len(p.AlternativeJudgments))
	}

	for e, sheet := range p.AlternativeJudgments {
		path := fmt.Sprintf("alternative_judgments[%d]", e)

		if p.CriterionMajor {
			if err := checkShape2D(path, sheet, n, m); err != nil {
				return err
			}
			sheet = matrix.Transpose(sheet)
		} else if err := checkShape2D(path, sheet, m, n); err != nil {
			return err
		}

		for i, row := range sheet {
			for j, name := range row {
				if err := w.SetAlternativeJudgment(e, i, j, name); err != nil {
					return err
				}
			}
		}
	}

	return nil
}

func checkShape2D(path string, rows [][]string, wantRows, wantCols int) error {
	if len(rows) != wantRows {
		return fmt.Errorf("%s: want %d rows, got %d", path, wantRows, len(rows))
	}

	for r, row := range rows {
		if len(row) != wantCols {
			return fmt.Errorf("%s[%d]: want %d columns, got %d", path, r, wantCols, len(row))
		}
	}

	return nil
}

// describeReport flattens a failing report into one line, sorted by key.
func describeReport(report term.Report) string {
	parts := append([]string{}, report.Global...)

	keys := make([]string, 0, len(report.Errors))
	for key := range report.Errors {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		fields := make([]string, 0, len(report.Errors[key]))
		for field, msg := range report.Errors[key] {
			fields = append(fields, field+" "+msg)
		}
		sort.Strings(fields)
		parts = append(parts, fmt.Sprintf("%s: %s", key, strings.Join(fields, ", ")))
	}

	return strings.Join(parts, "; ")
}
