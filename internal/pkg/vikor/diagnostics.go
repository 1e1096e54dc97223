package vikor

import (
	"fmt"

	"github.com/ijalalfrz/fuzzy-vikor-service/internal/pkg/fuzzy"
)

func termNotFound(index int, kind, shortName string, expert int) Diagnostic {
	return Diagnostic{
		Kind:    DiagnosticTermNotFound,
		Stage:   StageAggregation,
		Index:   index,
		Message: fmt.Sprintf("expert %d: %s term %q not found, using fuzzy zero", expert, kind, shortName),
	}
}

// spreadDiagnostics reports every division that fell back to fuzzy zero.
// Index is the criterion for normalization and -1 for the Q stage.
func spreadDiagnostics(ideal, nadir []fuzzy.TriangularNumber, benefit []bool,
	s, r []fuzzy.TriangularNumber) []Diagnostic {
	var diags []Diagnostic

	for j := range benefit {
		if criterionSpread(ideal[j], nadir[j], benefit[j]) == 0 {
			diags = append(diags, Diagnostic{
				Kind:    DiagnosticZeroSpread,
				Stage:   StageNormalization,
				Index:   j,
				Message: fmt.Sprintf("criterion %d: ideal and nadir spread is zero, distances set to fuzzy zero", j),
			})
		}
	}

	if lo, hi := spread(s); len(s) > 0 && hi-lo == 0 {
		diags = append(diags, Diagnostic{
			Kind:    DiagnosticZeroSpread,
			Stage:   StageQSynthesis,
			Index:   -1,
			Message: "S spread is zero, group utility term set to fuzzy zero",
		})
	}

	if lo, hi := spread(r); len(r) > 0 && hi-lo == 0 {
		diags = append(diags, Diagnostic{
			Kind:    DiagnosticZeroSpread,
			Stage:   StageQSynthesis,
			Index:   -1,
			Message: "R spread is zero, individual regret term set to fuzzy zero",
		})
	}

	return diags
}
