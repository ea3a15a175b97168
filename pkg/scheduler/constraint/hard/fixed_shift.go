package hard

import (
	"fmt"

	"github.com/Hadrian1992/HarmonogramMaster/pkg/model"
	"github.com/Hadrian1992/HarmonogramMaster/pkg/scheduler/constraint"
	"github.com/Hadrian1992/HarmonogramMaster/pkg/scheduler/constraint/base"
)

// FixedShift is H5: a hard SHIFT/FIXED/FIXED_SHIFT constraint pins
// x[employee,date,value] = 1.
type FixedShift struct {
	base.Rule
}

// NewFixedShift builds H5.
func NewFixedShift() *FixedShift {
	return &FixedShift{base.New("fixed-shift-pin", "H5", constraint.CategoryHard, 100)}
}

func (r *FixedShift) pins(ctx *constraint.Context) []model.Constraint {
	var out []model.Constraint
	for _, c := range ctx.Constraints {
		if c.Kind.IsFixedShift() && c.Hard {
			out = append(out, c)
		}
	}
	return out
}

// Evaluate checks that every pinned (employee, date) actually carries
// the pinned shift value.
func (r *FixedShift) Evaluate(ctx *constraint.Context) (bool, int, []constraint.Violation) {
	valid := true
	penalty := 0
	var violations []constraint.Violation

	for _, c := range r.pins(ctx) {
		a, ok := ctx.AssignmentOn(c.EmployeeID, c.Date)
		if !ok || a.ShiftID != c.Value {
			valid = false
			penalty += r.Weight()
			violations = append(violations, r.Violation(c.EmployeeID, c.Date,
				fmt.Sprintf("employee %s is not pinned to shift %s on %s", c.EmployeeID, c.Value, c.Date), r.Weight()))
		}
	}
	return valid, penalty, violations
}

// EvaluateAssignment rejects a if a pin exists for its (employee,date)
// with a different shift value, and rejects leaving a pinned slot
// unfilled is caught by Evaluate instead (EvaluateAssignment only
// judges the assignment actually offered).
func (r *FixedShift) EvaluateAssignment(ctx *constraint.Context, a constraint.Assignment) (bool, int) {
	for _, c := range r.pins(ctx) {
		if c.EmployeeID == a.EmployeeID && c.Date == a.Date && c.Value != a.ShiftID {
			return false, r.Weight()
		}
	}
	return true, 0
}
