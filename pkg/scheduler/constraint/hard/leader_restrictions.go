package hard

import (
	"fmt"

	"github.com/Hadrian1992/HarmonogramMaster/pkg/model"
	"github.com/Hadrian1992/HarmonogramMaster/pkg/scheduler/constraint"
	"github.com/Hadrian1992/HarmonogramMaster/pkg/scheduler/constraint/base"
)

// LeaderRestrictions is H10: a LIDER employee may not work weekends,
// may not start before 8:00, and may not work past 20:00 or a night
// shift.
type LeaderRestrictions struct {
	base.Rule
}

// NewLeaderRestrictions builds H10.
func NewLeaderRestrictions() *LeaderRestrictions {
	return &LeaderRestrictions{base.New("leader-restrictions", "H10", constraint.CategoryHard, 100)}
}

func (r *LeaderRestrictions) forbidden(ctx *constraint.Context, emp *model.Employee, date string, st model.ShiftType) (bool, string) {
	if !emp.IsLeader(ctx.EmployeeRoles) {
		return false, ""
	}
	if model.IsWeekend(date) {
		return true, fmt.Sprintf("leader %s may not work weekends (%s)", emp.ID, date)
	}
	if st.Kind == model.KindWork && st.Start < 8 {
		return true, fmt.Sprintf("leader %s may not start before 8:00 (%s)", emp.ID, date)
	}
	if st.Kind == model.KindWork && (st.End > 20 || st.Night) {
		return true, fmt.Sprintf("leader %s may not work past 20:00 or a night shift (%s)", emp.ID, date)
	}
	return false, ""
}

// Evaluate checks every leader's assignments against the restrictions.
func (r *LeaderRestrictions) Evaluate(ctx *constraint.Context) (bool, int, []constraint.Violation) {
	valid := true
	penalty := 0
	var violations []constraint.Violation

	for _, a := range ctx.Assignments {
		emp := ctx.GetEmployee(a.EmployeeID)
		if emp == nil {
			continue
		}
		st, err := ctx.ShiftType(a.ShiftID)
		if err != nil || st.Kind != model.KindWork {
			continue
		}
		if bad, msg := r.forbidden(ctx, emp, a.Date, st); bad {
			valid = false
			penalty += r.Weight()
			violations = append(violations, r.Violation(a.EmployeeID, a.Date, msg, r.Weight()))
		}
	}
	return valid, penalty, violations
}

// EvaluateAssignment rejects a directly if it would breach a
// restriction.
func (r *LeaderRestrictions) EvaluateAssignment(ctx *constraint.Context, a constraint.Assignment) (bool, int) {
	emp := ctx.GetEmployee(a.EmployeeID)
	if emp == nil {
		return true, 0
	}
	st, err := ctx.ShiftType(a.ShiftID)
	if err != nil {
		return true, 0
	}
	if bad, _ := r.forbidden(ctx, emp, a.Date, st); bad {
		return false, r.Weight()
	}
	return true, 0
}
