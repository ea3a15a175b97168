package hard

import (
	"fmt"

	"github.com/Hadrian1992/HarmonogramMaster/pkg/model"
	"github.com/Hadrian1992/HarmonogramMaster/pkg/scheduler/constraint"
	"github.com/Hadrian1992/HarmonogramMaster/pkg/scheduler/constraint/base"
)

// WeeklyRest is H3 (simplified): every employee must have at least one
// non-working day per ISO calendar week that intersects the horizon.
// A safe under-approximation of a genuine 35-hour continuous rest
// window (see the decision recorded for this rule).
type WeeklyRest struct {
	base.Rule
}

// NewWeeklyRest builds H3.
func NewWeeklyRest() *WeeklyRest {
	return &WeeklyRest{base.New("weekly-rest-35h", "H3", constraint.CategoryHard, 100)}
}

func (r *WeeklyRest) weeks(ctx *constraint.Context) []struct {
	Week  model.ISOWeek
	Dates []string
} {
	return model.GroupDatesByISOWeek(model.ExpandDateRange(ctx.Horizon))
}

// Evaluate flags any (employee, week) pair where every horizon date in
// that week is worked.
func (r *WeeklyRest) Evaluate(ctx *constraint.Context) (bool, int, []constraint.Violation) {
	valid := true
	penalty := 0
	var violations []constraint.Violation

	weeks := r.weeks(ctx)
	for _, emp := range ctx.Employees {
		for _, wk := range weeks {
			allWorked := true
			for _, d := range wk.Dates {
				if !ctx.WorksOn(emp.ID, d) {
					allWorked = false
					break
				}
			}
			if allWorked {
				valid = false
				penalty += r.Weight()
				violations = append(violations, r.Violation(emp.ID, wk.Dates[0],
					fmt.Sprintf("employee %s has no day off in ISO week %d-%02d", emp.ID, wk.Week.Year, wk.Week.Week), r.Weight()))
			}
		}
	}
	return valid, penalty, violations
}

// EvaluateAssignment rejects a if the employee already works every
// other horizon date in a's ISO week, making this the week's last
// remaining day off.
func (r *WeeklyRest) EvaluateAssignment(ctx *constraint.Context, a constraint.Assignment) (bool, int) {
	target := model.ISOWeekOf(a.Date)
	for _, wk := range r.weeks(ctx) {
		if wk.Week != target {
			continue
		}
		for _, d := range wk.Dates {
			if d == a.Date {
				continue
			}
			if !ctx.WorksOn(a.EmployeeID, d) {
				return true, 0
			}
		}
		return false, r.Weight()
	}
	return true, 0
}
