package hard

import (
	"fmt"

	"github.com/Hadrian1992/HarmonogramMaster/pkg/model"
	"github.com/Hadrian1992/HarmonogramMaster/pkg/scheduler/constraint"
	"github.com/Hadrian1992/HarmonogramMaster/pkg/scheduler/constraint/base"
)

// NightPresence is H9: every date needs at least one night-shift
// assignment. Subsumed by H8's night zone but kept as an explicit rule
// to surface its own violation name.
type NightPresence struct {
	base.Rule
}

// NewNightPresence builds H9.
func NewNightPresence() *NightPresence {
	return &NightPresence{base.New("night-shift-present", "H9", constraint.CategoryHard, 100)}
}

// Evaluate checks every horizon date for at least one night assignment.
func (r *NightPresence) Evaluate(ctx *constraint.Context) (bool, int, []constraint.Violation) {
	valid := true
	penalty := 0
	var violations []constraint.Violation

	for _, d := range model.ExpandDateRange(ctx.Horizon) {
		found := false
		for _, a := range ctx.DateAssignments(d) {
			if st, err := ctx.ShiftType(a.ShiftID); err == nil && st.InNightZone() {
				found = true
				break
			}
		}
		if !found {
			valid = false
			penalty += r.Weight()
			violations = append(violations, r.Violation("", d,
				fmt.Sprintf("no night shift assigned on %s", d), r.Weight()))
		}
	}
	return valid, penalty, violations
}

// EvaluateAssignment never rejects: adding a night shift can only help.
func (r *NightPresence) EvaluateAssignment(ctx *constraint.Context, a constraint.Assignment) (bool, int) {
	return true, 0
}
