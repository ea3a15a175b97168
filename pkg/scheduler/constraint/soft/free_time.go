package soft

import (
	"fmt"

	"github.com/Hadrian1992/HarmonogramMaster/pkg/model"
	"github.com/Hadrian1992/HarmonogramMaster/pkg/scheduler/constraint"
	"github.com/Hadrian1992/HarmonogramMaster/pkg/scheduler/constraint/base"
)

// FreeTime is S4: every soft FREE_TIME constraint contributes one
// penalty unit per date in its range the employee is actually worked.
type FreeTime struct {
	base.Rule
}

// NewFreeTime builds S4 with the spec's fixed weight of 20.
func NewFreeTime() *FreeTime {
	return &FreeTime{base.New("free-time", "S4", constraint.CategorySoft, 20)}
}

func (r *FreeTime) constraints(ctx *constraint.Context) []model.Constraint {
	var out []model.Constraint
	for _, c := range ctx.Constraints {
		if c.Kind == model.KindFreeTime && !c.Hard {
			out = append(out, c)
		}
	}
	return out
}

// Evaluate scans every soft FREE_TIME constraint's dates for violations.
func (r *FreeTime) Evaluate(ctx *constraint.Context) (bool, int, []constraint.Violation) {
	penalty := 0
	var violations []constraint.Violation

	for _, c := range r.constraints(ctx) {
		for _, d := range c.Dates(ctx.Horizon) {
			if ctx.WorksOn(c.EmployeeID, d) {
				penalty += r.Weight()
				violations = append(violations, r.Violation(c.EmployeeID, d,
					fmt.Sprintf("employee %s works %s despite a free-time request", c.EmployeeID, d), r.Weight()))
			}
		}
	}
	return true, penalty, violations
}

// EvaluateAssignment adds a penalty unit if a falls within the
// employee's own free-time request.
func (r *FreeTime) EvaluateAssignment(ctx *constraint.Context, a constraint.Assignment) (bool, int) {
	for _, c := range r.constraints(ctx) {
		if c.EmployeeID != a.EmployeeID {
			continue
		}
		for _, d := range c.Dates(ctx.Horizon) {
			if d == a.Date {
				return true, r.Weight()
			}
		}
	}
	return true, 0
}
