// Package soft implements the S1-S6 soft rules: each contributes a
// non-negative penalty term to the objective; none blocks a candidate
// assignment outright.
package soft

import (
	"fmt"

	"github.com/Hadrian1992/HarmonogramMaster/pkg/scheduler/constraint"
	"github.com/Hadrian1992/HarmonogramMaster/pkg/scheduler/constraint/base"
)

// HourBalancing is S1: penalty = max(total hours) - min(total hours)
// across every employee who has at least one assignment.
type HourBalancing struct {
	base.Rule
}

// NewHourBalancing builds S1 with the spec's fixed weight of 10.
func NewHourBalancing() *HourBalancing {
	return &HourBalancing{base.New("hour-balancing", "S1", constraint.CategorySoft, 10)}
}

// Evaluate computes the max-min spread of horizon hours.
func (r *HourBalancing) Evaluate(ctx *constraint.Context) (bool, int, []constraint.Violation) {
	var max, min float64
	first := true
	for _, emp := range ctx.Employees {
		if len(ctx.EmployeeAssignments(emp.ID)) == 0 {
			continue
		}
		hours := ctx.HoursInRange(emp.ID, ctx.Horizon.Start, ctx.Horizon.End)
		if first {
			max, min = hours, hours
			first = false
			continue
		}
		if hours > max {
			max = hours
		}
		if hours < min {
			min = hours
		}
	}
	if first {
		return true, 0, nil
	}
	spread := int(max - min)
	penalty := r.Weight() * spread
	if penalty == 0 {
		return true, 0, nil
	}
	return true, penalty, []constraint.Violation{r.Violation("", "",
		fmt.Sprintf("hour spread across roster is %.1fh (max %.1f, min %.1f)", max-min, max, min), penalty)}
}

// EvaluateAssignment has no local signal for a global max-min spread;
// the full-schedule Evaluate pass is authoritative for scoring.
func (r *HourBalancing) EvaluateAssignment(ctx *constraint.Context, a constraint.Assignment) (bool, int) {
	return true, 0
}
