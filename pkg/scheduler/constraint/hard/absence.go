package hard

import (
	"fmt"

	"github.com/Hadrian1992/HarmonogramMaster/pkg/model"
	"github.com/Hadrian1992/HarmonogramMaster/pkg/scheduler/constraint"
	"github.com/Hadrian1992/HarmonogramMaster/pkg/scheduler/constraint/base"
)

// Absence is H6: an ABSENCE constraint forces zero assignments across
// its date or date range.
type Absence struct {
	base.Rule
}

// NewAbsence builds H6.
func NewAbsence() *Absence {
	return &Absence{base.New("absence", "H6", constraint.CategoryHard, 100)}
}

func (r *Absence) blockedDates(ctx *constraint.Context, employeeID string) map[string]bool {
	blocked := make(map[string]bool)
	for _, c := range ctx.Constraints {
		if c.Kind != model.KindAbsence || c.EmployeeID != employeeID {
			continue
		}
		for _, d := range c.Dates(ctx.Horizon) {
			blocked[d] = true
		}
	}
	return blocked
}

// Evaluate checks every employee against their own absence dates.
func (r *Absence) Evaluate(ctx *constraint.Context) (bool, int, []constraint.Violation) {
	valid := true
	penalty := 0
	var violations []constraint.Violation

	for _, emp := range ctx.Employees {
		for d := range r.blockedDates(ctx, emp.ID) {
			if ctx.WorksOn(emp.ID, d) {
				valid = false
				penalty += r.Weight()
				violations = append(violations, r.Violation(emp.ID, d,
					fmt.Sprintf("employee %s is assigned on absence date %s", emp.ID, d), r.Weight()))
			}
		}
	}
	return valid, penalty, violations
}

// EvaluateAssignment rejects a if its date is one of the employee's
// absence dates.
func (r *Absence) EvaluateAssignment(ctx *constraint.Context, a constraint.Assignment) (bool, int) {
	if r.blockedDates(ctx, a.EmployeeID)[a.Date] {
		return false, r.Weight()
	}
	return true, 0
}
