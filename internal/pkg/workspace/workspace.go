// Package workspace holds the editable state of one decision problem: its
// dimensions, term collections, expert judgments and the latest result.
package workspace

import (
	"fmt"
	"math"
	"net/http"
	"sync"

	"github.com/ijalalfrz/fuzzy-vikor-service/internal/pkg/exception"
	"github.com/ijalalfrz/fuzzy-vikor-service/internal/pkg/matrix"
	"github.com/ijalalfrz/fuzzy-vikor-service/internal/pkg/term"
	"github.com/ijalalfrz/fuzzy-vikor-service/internal/pkg/vikor"
)

// label kinds accepted by SetLabel
const (
	LabelAlternative = "alternative"
	LabelCriterion   = "criterion"
	LabelExpert      = "expert"
)

var (
	ErrNoResults = exception.ApplicationError{
		StatusCode: http.StatusNotFound,
		Message:    "no calculation results yet",
	}

	ErrInvalidCounts = exception.ApplicationError{
		StatusCode: http.StatusBadRequest,
		Message:    "counts must be positive",
	}

	ErrOutOfRange = exception.ApplicationError{
		StatusCode: http.StatusBadRequest,
		Message:    "index out of range",
	}

	ErrInvalidV = exception.ApplicationError{
		StatusCode: http.StatusBadRequest,
		Message:    "v must be within [0, 1]",
	}

	ErrUnknownLabelKind = exception.ApplicationError{
		StatusCode: http.StatusBadRequest,
		Message:    "unknown label kind",
	}
)

// Workspace is safe for concurrent use. Calculate works on a snapshot so
// edits made while it runs are never observed halfway.
type Workspace struct {
	mu sync.RWMutex

	cfg               vikor.Config
	criteriaTerms     []term.Term
	alternativeTerms  []term.Term
	criteriaInputs    [][]string
	alternativeInputs [][][]string

	results *vikor.Results
	// calcSeq numbers Calculate snapshots; resultSeq is the snapshot the
	// stored result came from.
	calcSeq   uint64
	resultSeq uint64
}

// New creates a workspace with the default term collections, every criterion
// marked as benefit and every judgment set to the first term.
func New(alternatives, criteria, experts int) (*Workspace, error) {
	w := &Workspace{
		criteriaTerms:    term.DefaultCriteriaTerms(),
		alternativeTerms: term.DefaultAlternativeTerms(),
	}
	w.cfg.V = vikor.DefaultV

	if err := w.SetCounts(alternatives, criteria, experts); err != nil {
		return nil, err
	}

	return w, nil
}

// SetCounts resizes labels, benefit flags and both judgment matrices. Kept
// cells survive, new cells get defaults. Calling it twice with the same
// counts is a no-op.
func (w *Workspace) SetCounts(alternatives, criteria, experts int) error {
	if alternatives < 1 || criteria < 1 || experts < 1 {
		return ErrInvalidCounts.WithCause(fmt.Errorf("got alternatives=%d criteria=%d experts=%d",
			alternatives, criteria, experts))
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	w.cfg.NumAlternatives = alternatives
	w.cfg.NumCriteria = criteria
	w.cfg.NumExperts = experts

	w.cfg.AlternativeLabels = matrix.ResizeLabels(w.cfg.AlternativeLabels, alternatives, vikor.AlternativeLabelPrefix)
	w.cfg.CriteriaLabels = matrix.ResizeLabels(w.cfg.CriteriaLabels, criteria, vikor.CriterionLabelPrefix)
	w.cfg.ExpertLabels = matrix.ResizeLabels(w.cfg.ExpertLabels, experts, vikor.ExpertLabelPrefix)
	w.cfg.BenefitCost = matrix.Resize(w.cfg.BenefitCost, criteria, true)

	w.criteriaInputs = matrix.Resize2D(w.criteriaInputs, experts, criteria, w.criteriaFill())
	w.alternativeInputs = matrix.Resize3D(w.alternativeInputs, experts, alternatives, criteria, w.alternativeFill())

	return nil
}

func (w *Workspace) SetV(v float64) error {
	if math.IsNaN(v) || v < 0 || v > 1 {
		return ErrInvalidV.WithCause(fmt.Errorf("got %v", v))
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	w.cfg.V = v
	return nil
}

// SetBenefit marks criterion as benefit (true) or cost (false).
func (w *Workspace) SetBenefit(criterion int, benefit bool) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := checkIndex("criterion", criterion, w.cfg.NumCriteria); err != nil {
		return err
	}

	w.cfg.BenefitCost[criterion] = benefit
	return nil
}

func (w *Workspace) SetLabel(kind string, index int, label string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	var labels []string
	switch kind {
	case LabelAlternative:
		labels = w.cfg.AlternativeLabels
	case LabelCriterion:
		labels = w.cfg.CriteriaLabels
	case LabelExpert:
		labels = w.cfg.ExpertLabels
	default:
		return ErrUnknownLabelKind.WithCause(fmt.Errorf("%q", kind))
	}

	if err := checkIndex(kind, index, len(labels)); err != nil {
		return err
	}

	labels[index] = label
	return nil
}

// SetCriteriaJudgment records how expert rates the importance of criterion.
// The short name is not checked against the dictionary; unknown names resolve
// to fuzzy zero at calculation time and are reported as diagnostics.
func (w *Workspace) SetCriteriaJudgment(expert, criterion int, shortName string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := checkIndex("expert", expert, w.cfg.NumExperts); err != nil {
		return err
	}
	if err := checkIndex("criterion", criterion, w.cfg.NumCriteria); err != nil {
		return err
	}

	w.criteriaInputs[expert][criterion] = shortName
	return nil
}

func (w *Workspace) SetAlternativeJudgment(expert, alternative, criterion int, shortName string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := checkIndex("expert", expert, w.cfg.NumExperts); err != nil {
		return err
	}
	if err := checkIndex("alternative", alternative, w.cfg.NumAlternatives); err != nil {
		return err
	}
	if err := checkIndex("criterion", criterion, w.cfg.NumCriteria); err != nil {
		return err
	}

	w.alternativeInputs[expert][alternative][criterion] = shortName
	return nil
}

// SaveCriteriaTerms replaces the criteria collection when terms are valid.
// The report is returned either way; on failure nothing changes.
func (w *Workspace) SaveCriteriaTerms(terms []term.Term) term.Report {
	saved, report := term.Save(terms)
	if !report.Valid {
		return report
	}

	w.mu.Lock()
	w.criteriaTerms = term.EnsureIDs(saved)
	w.mu.Unlock()

	return report
}

func (w *Workspace) SaveAlternativeTerms(terms []term.Term) term.Report {
	saved, report := term.Save(terms)
	if !report.Valid {
		return report
	}

	w.mu.Lock()
	w.alternativeTerms = term.EnsureIDs(saved)
	w.mu.Unlock()

	return report
}

// Reset keeps the dimensions and term collections but restores default
// labels, marks every criterion as benefit, sets v back to its default and
// refills both matrices with the first term of each collection.
func (w *Workspace) Reset() {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.cfg.V = vikor.DefaultV
	w.cfg.AlternativeLabels = matrix.ResizeLabels(nil, w.cfg.NumAlternatives, vikor.AlternativeLabelPrefix)
	w.cfg.CriteriaLabels = matrix.ResizeLabels(nil, w.cfg.NumCriteria, vikor.CriterionLabelPrefix)
	w.cfg.ExpertLabels = matrix.ResizeLabels(nil, w.cfg.NumExperts, vikor.ExpertLabelPrefix)
	w.cfg.BenefitCost = matrix.Resize(nil, w.cfg.NumCriteria, true)

	w.criteriaInputs = matrix.New2D(w.cfg.NumExperts, w.cfg.NumCriteria, w.criteriaFill())
	w.alternativeInputs = matrix.New3D(w.cfg.NumExperts, w.cfg.NumAlternatives, w.cfg.NumCriteria, w.alternativeFill())
	w.results = nil
	// runs still in flight started before the reset
	w.resultSeq = w.calcSeq
}

// Calculate runs the pipeline on a snapshot of the current state. The stored
// result is replaced only when the run succeeds and no run started later has
// stored its result already. The returned value is the caller's own copy.
func (w *Workspace) Calculate() (vikor.Results, error) {
	w.mu.Lock()
	w.calcSeq++
	seq := w.calcSeq
	in := w.input()
	w.mu.Unlock()

	res, err := vikor.Calculate(in)
	if err != nil {
		return vikor.Results{}, err
	}

	w.store(seq, res.Clone())

	return res, nil
}

func (w *Workspace) store(seq uint64, res vikor.Results) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if seq <= w.resultSeq {
		return
	}

	w.results = &res
	w.resultSeq = seq
}

// Results returns a copy of the latest successful calculation.
func (w *Workspace) Results() (vikor.Results, error) {
	w.mu.RLock()
	defer w.mu.RUnlock()

	if w.results == nil {
		return vikor.Results{}, ErrNoResults
	}

	return w.results.Clone(), nil
}

// Input returns a deep copy of the calculation input the workspace holds.
func (w *Workspace) Input() vikor.Input {
	w.mu.RLock()
	defer w.mu.RUnlock()

	return w.input()
}

func (w *Workspace) input() vikor.Input {
	cfg := w.cfg
	cfg.BenefitCost = matrix.Resize(w.cfg.BenefitCost, len(w.cfg.BenefitCost), true)
	cfg.AlternativeLabels = matrix.Resize(w.cfg.AlternativeLabels, len(w.cfg.AlternativeLabels), "")
	cfg.CriteriaLabels = matrix.Resize(w.cfg.CriteriaLabels, len(w.cfg.CriteriaLabels), "")
	cfg.ExpertLabels = matrix.Resize(w.cfg.ExpertLabels, len(w.cfg.ExpertLabels), "")

	return vikor.Input{
		Config: cfg,
		Dictionaries: vikor.Dictionaries{
			Criteria:     term.NewDictionary(w.criteriaTerms),
			Alternatives: term.NewDictionary(w.alternativeTerms),
		},
		Judgments: vikor.Judgments{
			CriteriaInputs:    matrix.Clone2D(w.criteriaInputs),
			AlternativeInputs: matrix.Clone3D(w.alternativeInputs),
		},
	}
}

func (w *Workspace) CriteriaTerms() []term.Term {
	w.mu.RLock()
	defer w.mu.RUnlock()

	return term.Clone(w.criteriaTerms)
}

func (w *Workspace) AlternativeTerms() []term.Term {
	w.mu.RLock()
	defer w.mu.RUnlock()

	return term.Clone(w.alternativeTerms)
}

func (w *Workspace) criteriaFill() string {
	return term.DefaultShortName(w.criteriaTerms, term.FallbackCriteriaShortName)
}

func (w *Workspace) alternativeFill() string {
	return term.DefaultShortName(w.alternativeTerms, term.FallbackAlternativeShortName)
}

func checkIndex(name string, index, n int) error {
	if index < 0 || index >= n {
		return ErrOutOfRange.WithCause(fmt.Errorf("%s index %d, want [0, %d)", name, index, n))
	}

	return nil
}
