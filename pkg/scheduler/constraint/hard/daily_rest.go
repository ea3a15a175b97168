package hard

import (
	"fmt"

	"github.com/Hadrian1992/HarmonogramMaster/pkg/model"
	"github.com/Hadrian1992/HarmonogramMaster/pkg/scheduler/constraint"
	"github.com/Hadrian1992/HarmonogramMaster/pkg/scheduler/constraint/base"
)

// DailyRest is H2: 11-hour rest between consecutive worked shifts,
// including against the history shift on the first horizon day.
type DailyRest struct {
	base.Rule
	minHours float64
}

// NewDailyRest builds H2 with the spec's fixed 11-hour minimum.
func NewDailyRest() *DailyRest {
	return &DailyRest{base.New("daily-rest-11h", "H2", constraint.CategoryHard, 100), 11}
}

// Evaluate checks every employee's consecutive-day pairs across the
// horizon, plus the first day against history.
func (r *DailyRest) Evaluate(ctx *constraint.Context) (bool, int, []constraint.Violation) {
	valid := true
	penalty := 0
	var violations []constraint.Violation

	dates := model.ExpandDateRange(ctx.Horizon)
	if len(dates) == 0 {
		return true, 0, nil
	}

	for _, emp := range ctx.Employees {
		if ctx.HistoryKnown[emp.ID] {
			if cur, ok := ctx.AssignmentOn(emp.ID, dates[0]); ok {
				if st, err := ctx.ShiftType(cur.ShiftID); err == nil {
					gap := model.Gap(ctx.History[emp.ID], st)
					if gap < r.minHours {
						valid = false
						penalty += r.Weight()
						violations = append(violations, r.Violation(emp.ID, dates[0],
							fmt.Sprintf("employee %s has only %.1fh rest before the horizon's first shift", emp.ID, gap), r.Weight()))
					}
				}
			}
		}

		for i := 0; i < len(dates)-1; i++ {
			prevA, ok1 := ctx.AssignmentOn(emp.ID, dates[i])
			nextA, ok2 := ctx.AssignmentOn(emp.ID, dates[i+1])
			if !ok1 || !ok2 {
				continue
			}
			prevSt, err1 := ctx.ShiftType(prevA.ShiftID)
			nextSt, err2 := ctx.ShiftType(nextA.ShiftID)
			if err1 != nil || err2 != nil {
				continue
			}
			gap := model.Gap(prevSt, nextSt)
			if gap < r.minHours {
				valid = false
				penalty += r.Weight()
				violations = append(violations, r.Violation(emp.ID, dates[i+1],
					fmt.Sprintf("employee %s has only %.1fh rest between %s and %s", emp.ID, gap, dates[i], dates[i+1]), r.Weight()))
			}
		}
	}
	return valid, penalty, violations
}

// EvaluateAssignment checks a's marginal rest gap against the
// employee's adjacent-day assignment (or history, on the first day).
func (r *DailyRest) EvaluateAssignment(ctx *constraint.Context, a constraint.Assignment) (bool, int) {
	st, err := ctx.ShiftType(a.ShiftID)
	if err != nil {
		return true, 0
	}

	if prevA, ok := ctx.AssignmentOn(a.EmployeeID, model.PreviousDate(a.Date)); ok {
		if prevSt, err := ctx.ShiftType(prevA.ShiftID); err == nil {
			if model.Gap(prevSt, st) < r.minHours {
				return false, r.Weight()
			}
		}
	} else if a.Date == ctx.Horizon.Start && ctx.HistoryKnown[a.EmployeeID] {
		if model.Gap(ctx.History[a.EmployeeID], st) < r.minHours {
			return false, r.Weight()
		}
	}

	if nextA, ok := ctx.AssignmentOn(a.EmployeeID, model.NextDate(a.Date)); ok {
		if nextSt, err := ctx.ShiftType(nextA.ShiftID); err == nil {
			if model.Gap(st, nextSt) < r.minHours {
				return false, r.Weight()
			}
		}
	}

	return true, 0
}
