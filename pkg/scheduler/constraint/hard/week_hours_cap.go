package hard

import (
	"fmt"

	"github.com/Hadrian1992/HarmonogramMaster/pkg/model"
	"github.com/Hadrian1992/HarmonogramMaster/pkg/scheduler/constraint"
	"github.com/Hadrian1992/HarmonogramMaster/pkg/scheduler/constraint/base"
)

// WeekHoursCap is the hard half of S5: weekly hours, grouped by ISO
// week, may not exceed 48. The soft 40h-overtime penalty is the
// companion soft rule.
type WeekHoursCap struct {
	base.Rule
	cap float64
}

// NewWeekHoursCap builds the 48-hour weekly cap.
func NewWeekHoursCap() *WeekHoursCap {
	return &WeekHoursCap{base.New("week-hours-cap-48h", "H_WEEK48", constraint.CategoryHard, 100), 48}
}

// Evaluate sums each employee's worked hours per ISO week against the cap.
func (r *WeekHoursCap) Evaluate(ctx *constraint.Context) (bool, int, []constraint.Violation) {
	valid := true
	penalty := 0
	var violations []constraint.Violation

	weeks := model.GroupDatesByISOWeek(model.ExpandDateRange(ctx.Horizon))
	for _, emp := range ctx.Employees {
		for _, wk := range weeks {
			hours := ctx.HoursInRange(emp.ID, wk.Dates[0], wk.Dates[len(wk.Dates)-1])
			if hours > r.cap {
				valid = false
				excess := int(hours - r.cap)
				penalty += r.Weight() * excess
				violations = append(violations, r.Violation(emp.ID, wk.Dates[0],
					fmt.Sprintf("employee %s works %.1fh in ISO week %d-%02d, over the 48h cap", emp.ID, hours, wk.Week.Year, wk.Week.Week), r.Weight()*excess))
			}
		}
	}
	return valid, penalty, violations
}

// EvaluateAssignment rejects a if it pushes the employee's ISO-week
// total past 48 hours.
func (r *WeekHoursCap) EvaluateAssignment(ctx *constraint.Context, a constraint.Assignment) (bool, int) {
	st, err := ctx.ShiftType(a.ShiftID)
	if err != nil || st.Kind != model.KindWork {
		return true, 0
	}
	wk := model.ISOWeekOf(a.Date)
	for _, group := range model.GroupDatesByISOWeek(model.ExpandDateRange(ctx.Horizon)) {
		if group.Week != wk {
			continue
		}
		hours := ctx.HoursInRange(a.EmployeeID, group.Dates[0], group.Dates[len(group.Dates)-1]) + st.Hours
		if hours > r.cap {
			return false, r.Weight() * int(hours-r.cap)
		}
	}
	return true, 0
}
