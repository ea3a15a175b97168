package hard

import (
	"fmt"

	"github.com/Hadrian1992/HarmonogramMaster/pkg/scheduler/constraint"
	"github.com/Hadrian1992/HarmonogramMaster/pkg/scheduler/constraint/base"
)

// MinDemand is H7: every date with a positive demand figure must have
// at least that many employees assigned.
type MinDemand struct {
	base.Rule
}

// NewMinDemand builds H7.
func NewMinDemand() *MinDemand {
	return &MinDemand{base.New("minimum-daily-demand", "H7", constraint.CategoryHard, 100)}
}

// Evaluate checks every demand-bearing date.
func (r *MinDemand) Evaluate(ctx *constraint.Context) (bool, int, []constraint.Violation) {
	valid := true
	penalty := 0
	var violations []constraint.Violation

	for date, need := range ctx.Demand {
		if need <= 0 {
			continue
		}
		got := len(ctx.DateAssignments(date))
		if got < need {
			valid = false
			shortfall := need - got
			penalty += r.Weight() * shortfall
			violations = append(violations, r.Violation("", date,
				fmt.Sprintf("only %d of %d required employees assigned on %s", got, need, date), r.Weight()*shortfall))
		}
	}
	return valid, penalty, violations
}

// EvaluateAssignment never rejects: adding an assignment can only help
// demand coverage, never hurt it.
func (r *MinDemand) EvaluateAssignment(ctx *constraint.Context, a constraint.Assignment) (bool, int) {
	return true, 0
}
