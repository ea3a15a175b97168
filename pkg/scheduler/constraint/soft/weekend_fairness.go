package soft

import (
	"fmt"

	"github.com/Hadrian1992/HarmonogramMaster/pkg/model"
	"github.com/Hadrian1992/HarmonogramMaster/pkg/scheduler/constraint"
	"github.com/Hadrian1992/HarmonogramMaster/pkg/scheduler/constraint/base"
)

// WeekendFairness is S2: penalty = max(weekend days) - min(weekend
// days) across the roster.
type WeekendFairness struct {
	base.Rule
}

// NewWeekendFairness builds S2 with the spec's fixed weight of 5.
func NewWeekendFairness() *WeekendFairness {
	return &WeekendFairness{base.New("weekend-fairness", "S2", constraint.CategorySoft, 5)}
}

func weekendCount(ctx *constraint.Context, employeeID string) int {
	count := 0
	for _, a := range ctx.EmployeeAssignments(employeeID) {
		if model.IsWeekend(a.Date) {
			count++
		}
	}
	return count
}

// Evaluate computes the max-min spread of weekend days worked.
func (r *WeekendFairness) Evaluate(ctx *constraint.Context) (bool, int, []constraint.Violation) {
	if len(ctx.Employees) == 0 {
		return true, 0, nil
	}
	max, min := -1, -1
	for _, emp := range ctx.Employees {
		c := weekendCount(ctx, emp.ID)
		if max < 0 {
			max, min = c, c
			continue
		}
		if c > max {
			max = c
		}
		if c < min {
			min = c
		}
	}
	spread := max - min
	penalty := r.Weight() * spread
	if penalty == 0 {
		return true, 0, nil
	}
	return true, penalty, []constraint.Violation{r.Violation("", "",
		fmt.Sprintf("weekend-day spread across roster is %d (max %d, min %d)", spread, max, min), penalty)}
}

// EvaluateAssignment has no local signal for a global max-min spread.
func (r *WeekendFairness) EvaluateAssignment(ctx *constraint.Context, a constraint.Assignment) (bool, int) {
	return true, 0
}
