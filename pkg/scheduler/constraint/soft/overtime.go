package soft

import (
	"fmt"

	"github.com/Hadrian1992/HarmonogramMaster/pkg/model"
	"github.com/Hadrian1992/HarmonogramMaster/pkg/scheduler/constraint"
	"github.com/Hadrian1992/HarmonogramMaster/pkg/scheduler/constraint/base"
)

// Overtime is the soft half of S5: hours over 40 per ISO week are
// penalized at 50 per hour. The 48-hour hard cap is the companion
// hard rule.
type Overtime struct {
	base.Rule
	threshold float64
}

// NewOvertime builds the soft overtime rule with the spec's fixed
// 40-hour threshold and 50-per-hour weight.
func NewOvertime() *Overtime {
	return &Overtime{base.New("weekly-overtime", "S5", constraint.CategorySoft, 50), 40}
}

// Evaluate sums each employee's per-ISO-week excess over 40 hours.
func (r *Overtime) Evaluate(ctx *constraint.Context) (bool, int, []constraint.Violation) {
	penalty := 0
	var violations []constraint.Violation

	weeks := model.GroupDatesByISOWeek(model.ExpandDateRange(ctx.Horizon))
	for _, emp := range ctx.Employees {
		for _, wk := range weeks {
			hours := ctx.HoursInRange(emp.ID, wk.Dates[0], wk.Dates[len(wk.Dates)-1])
			if hours > r.threshold {
				excess := int(hours - r.threshold)
				p := r.Weight() * excess
				penalty += p
				violations = append(violations, r.Violation(emp.ID, wk.Dates[0],
					fmt.Sprintf("employee %s works %.1fh in ISO week %d-%02d, %dh over threshold", emp.ID, hours, wk.Week.Year, wk.Week.Week, excess), p))
			}
		}
	}
	return true, penalty, violations
}

// EvaluateAssignment approximates the marginal overtime cost of a by
// checking whether it pushes the employee's current ISO-week hours
// past the 40-hour threshold.
func (r *Overtime) EvaluateAssignment(ctx *constraint.Context, a constraint.Assignment) (bool, int) {
	st, err := ctx.ShiftType(a.ShiftID)
	if err != nil || st.Kind != model.KindWork {
		return true, 0
	}
	wk := model.ISOWeekOf(a.Date)
	for _, group := range model.GroupDatesByISOWeek(model.ExpandDateRange(ctx.Horizon)) {
		if group.Week != wk {
			continue
		}
		before := ctx.HoursInRange(a.EmployeeID, group.Dates[0], group.Dates[len(group.Dates)-1])
		after := before + st.Hours
		if after <= r.threshold {
			return true, 0
		}
		excessAfter := after - r.threshold
		excessBefore := before - r.threshold
		if excessBefore < 0 {
			excessBefore = 0
		}
		return true, r.Weight() * int(excessAfter-excessBefore)
	}
	return true, 0
}
