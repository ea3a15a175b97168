package hard

import (
	"fmt"

	"github.com/Hadrian1992/HarmonogramMaster/pkg/model"
	"github.com/Hadrian1992/HarmonogramMaster/pkg/scheduler/constraint"
	"github.com/Hadrian1992/HarmonogramMaster/pkg/scheduler/constraint/base"
)

// LeaderSupport is H11: whenever a LIDER works a day shift, at least
// one WYCHOWAWCA must be working a shift covering the afternoon.
type LeaderSupport struct {
	base.Rule
}

// NewLeaderSupport builds H11.
func NewLeaderSupport() *LeaderSupport {
	return &LeaderSupport{base.New("leader-support", "H11", constraint.CategoryHard, 100)}
}

func (r *LeaderSupport) hasSupport(ctx *constraint.Context, date string) bool {
	for _, a := range ctx.DateAssignments(date) {
		emp := ctx.GetEmployee(a.EmployeeID)
		if emp == nil || !emp.IsSupport() {
			continue
		}
		if st, err := ctx.ShiftType(a.ShiftID); err == nil && st.CoversAfternoonSupport() {
			return true
		}
	}
	return false
}

func (r *LeaderSupport) leaderWorksDay(ctx *constraint.Context, date string) bool {
	for _, a := range ctx.DateAssignments(date) {
		emp := ctx.GetEmployee(a.EmployeeID)
		if emp == nil || !emp.IsLeader(ctx.EmployeeRoles) {
			continue
		}
		if st, err := ctx.ShiftType(a.ShiftID); err == nil && st.IsLeaderDayShift() {
			return true
		}
	}
	return false
}

func (r *LeaderSupport) noSupportPossible(ctx *constraint.Context) bool {
	for _, e := range ctx.Employees {
		if e.IsSupport() {
			return false
		}
	}
	return true
}

// Evaluate checks every horizon date where a leader works a day shift
// for a supporting WYCHOWAWCA.
func (r *LeaderSupport) Evaluate(ctx *constraint.Context) (bool, int, []constraint.Violation) {
	valid := true
	penalty := 0
	var violations []constraint.Violation

	for _, d := range model.ExpandDateRange(ctx.Horizon) {
		if r.leaderWorksDay(ctx, d) && !r.hasSupport(ctx, d) {
			valid = false
			penalty += r.Weight()
			violations = append(violations, r.Violation("", d,
				fmt.Sprintf("leader works %s with no supporting wychowawca", d), r.Weight()))
		}
	}
	return valid, penalty, violations
}

// EvaluateAssignment is a weaker, order-independent marginal check:
// assigning a leader to a day shift is only rejected outright when the
// roster has no WYCHOWAWCA at all, since support may be assigned to
// the same date later in construction. The full Evaluate pass catches
// the remaining, order-dependent cases.
func (r *LeaderSupport) EvaluateAssignment(ctx *constraint.Context, a constraint.Assignment) (bool, int) {
	emp := ctx.GetEmployee(a.EmployeeID)
	if emp == nil || !emp.IsLeader(ctx.EmployeeRoles) {
		return true, 0
	}
	st, err := ctx.ShiftType(a.ShiftID)
	if err != nil || !st.IsLeaderDayShift() {
		return true, 0
	}
	if r.noSupportPossible(ctx) {
		return false, r.Weight()
	}
	return true, 0
}
