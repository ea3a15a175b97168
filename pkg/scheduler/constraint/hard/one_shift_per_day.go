// Package hard implements the H1-H11 hard rules: every one must hold
// for a schedule to be feasible.
package hard

import (
	"fmt"

	"github.com/Hadrian1992/HarmonogramMaster/pkg/scheduler/constraint"
	"github.com/Hadrian1992/HarmonogramMaster/pkg/scheduler/constraint/base"
)

// OneShiftPerDay is H1: for each (employee, date), at most one shift.
type OneShiftPerDay struct {
	base.Rule
}

// NewOneShiftPerDay builds H1.
func NewOneShiftPerDay() *OneShiftPerDay {
	return &OneShiftPerDay{base.New("one-shift-per-day", "H1", constraint.CategoryHard, 100)}
}

// Evaluate walks the full assignment list counting per-(employee,date)
// occurrences, since ctx's indexes collapse duplicates into the last
// write.
func (r *OneShiftPerDay) Evaluate(ctx *constraint.Context) (bool, int, []constraint.Violation) {
	counts := make(map[string]int, len(ctx.Assignments))
	for _, a := range ctx.Assignments {
		counts[a.EmployeeID+"|"+a.Date]++
	}

	valid := true
	var violations []constraint.Violation
	penalty := 0
	for _, a := range ctx.Assignments {
		key := a.EmployeeID + "|" + a.Date
		if counts[key] > 1 {
			valid = false
			penalty += r.Weight()
			violations = append(violations, r.Violation(a.EmployeeID, a.Date,
				fmt.Sprintf("employee %s has more than one shift on %s", a.EmployeeID, a.Date), r.Weight()))
			counts[key] = 0 // report once per (employee,date)
		}
	}
	return valid, penalty, violations
}

// EvaluateAssignment rejects a if the employee is already assigned on
// that date.
func (r *OneShiftPerDay) EvaluateAssignment(ctx *constraint.Context, a constraint.Assignment) (bool, int) {
	if ctx.WorksOn(a.EmployeeID, a.Date) {
		return false, r.Weight()
	}
	return true, 0
}
