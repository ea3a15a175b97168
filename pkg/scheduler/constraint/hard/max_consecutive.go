package hard

import (
	"fmt"

	"github.com/Hadrian1992/HarmonogramMaster/pkg/model"
	"github.com/Hadrian1992/HarmonogramMaster/pkg/scheduler/constraint"
	"github.com/Hadrian1992/HarmonogramMaster/pkg/scheduler/constraint/base"
)

// MaxConsecutiveDays is H4: over every sliding window of 6 consecutive
// horizon dates, an employee may work at most 5.
type MaxConsecutiveDays struct {
	base.Rule
	window   int
	maxWork  int
}

// NewMaxConsecutiveDays builds H4 with the spec's fixed 6-day window
// and 5-day cap.
func NewMaxConsecutiveDays() *MaxConsecutiveDays {
	return &MaxConsecutiveDays{base.New("max-5-consecutive-days", "H4", constraint.CategoryHard, 100), 6, 5}
}

func (r *MaxConsecutiveDays) windowsContaining(dates []string, date string) [][]string {
	var out [][]string
	idx := -1
	for i, d := range dates {
		if d == date {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil
	}
	for start := idx - r.window + 1; start <= idx; start++ {
		if start < 0 || start+r.window > len(dates) {
			continue
		}
		out = append(out, dates[start:start+r.window])
	}
	return out
}

// Evaluate slides the 6-day window across the horizon for every
// employee.
func (r *MaxConsecutiveDays) Evaluate(ctx *constraint.Context) (bool, int, []constraint.Violation) {
	dates := model.ExpandDateRange(ctx.Horizon)
	valid := true
	penalty := 0
	var violations []constraint.Violation

	if len(dates) < r.window {
		return true, 0, nil
	}

	for _, emp := range ctx.Employees {
		for start := 0; start+r.window <= len(dates); start++ {
			window := dates[start : start+r.window]
			worked := 0
			for _, d := range window {
				if ctx.WorksOn(emp.ID, d) {
					worked++
				}
			}
			if worked > r.maxWork {
				valid = false
				excess := worked - r.maxWork
				penalty += r.Weight() * excess
				violations = append(violations, r.Violation(emp.ID, window[0],
					fmt.Sprintf("employee %s works %d of %d days in window starting %s", emp.ID, worked, r.window, window[0]), r.Weight()*excess))
			}
		}
	}
	return valid, penalty, violations
}

// EvaluateAssignment rejects a if any 6-day window containing a.Date
// would exceed 5 worked days once a is added.
func (r *MaxConsecutiveDays) EvaluateAssignment(ctx *constraint.Context, a constraint.Assignment) (bool, int) {
	dates := model.ExpandDateRange(ctx.Horizon)
	for _, window := range r.windowsContaining(dates, a.Date) {
		worked := 0
		for _, d := range window {
			if d == a.Date || ctx.WorksOn(a.EmployeeID, d) {
				worked++
			}
		}
		if worked > r.maxWork {
			return false, r.Weight() * (worked - r.maxWork)
		}
	}
	return true, 0
}
