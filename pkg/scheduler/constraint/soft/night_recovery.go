package soft

import (
	"fmt"

	"github.com/Hadrian1992/HarmonogramMaster/pkg/model"
	"github.com/Hadrian1992/HarmonogramMaster/pkg/scheduler/constraint"
	"github.com/Hadrian1992/HarmonogramMaster/pkg/scheduler/constraint/base"
)

// NightRecovery is S6: across every sliding 4-date window (d1,d2,d3,d4)
// of the horizon, working two consecutive nights on d1 and d2 followed
// by a worked d3 costs a 100-point penalty. The symmetric day-4 term
// is omitted (see the decision recorded for this rule).
type NightRecovery struct {
	base.Rule
}

// NewNightRecovery builds S6 with the spec's fixed weight of 100.
func NewNightRecovery() *NightRecovery {
	return &NightRecovery{base.New("night-recovery", "S6", constraint.CategorySoft, 100)}
}

func (r *NightRecovery) isNight(ctx *constraint.Context, employeeID, date string) bool {
	a, ok := ctx.AssignmentOn(employeeID, date)
	if !ok {
		return false
	}
	st, err := ctx.ShiftType(a.ShiftID)
	return err == nil && st.InNightZone()
}

// Evaluate slides a 4-date window (using only d1-d3) across the
// horizon for every employee.
func (r *NightRecovery) Evaluate(ctx *constraint.Context) (bool, int, []constraint.Violation) {
	dates := model.ExpandDateRange(ctx.Horizon)
	penalty := 0
	var violations []constraint.Violation

	if len(dates) < 4 {
		return true, 0, nil
	}

	for _, emp := range ctx.Employees {
		for i := 0; i+3 < len(dates); i++ {
			d1, d2, d3 := dates[i], dates[i+1], dates[i+2]
			if r.isNight(ctx, emp.ID, d1) && r.isNight(ctx, emp.ID, d2) && ctx.WorksOn(emp.ID, d3) {
				penalty += r.Weight()
				violations = append(violations, r.Violation(emp.ID, d3,
					fmt.Sprintf("employee %s works %s after two consecutive nights on %s/%s", emp.ID, d3, d1, d2), r.Weight()))
			}
		}
	}
	return true, penalty, violations
}

// EvaluateAssignment charges the penalty if a lands on d3 of a
// two-consecutive-night window for its employee.
func (r *NightRecovery) EvaluateAssignment(ctx *constraint.Context, a constraint.Assignment) (bool, int) {
	d2 := model.PreviousDate(a.Date)
	d1 := model.PreviousDate(d2)
	if r.isNight(ctx, a.EmployeeID, d1) && r.isNight(ctx, a.EmployeeID, d2) {
		return true, r.Weight()
	}
	return true, 0
}
