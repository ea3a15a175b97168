// Package solver implements the constructive phase of the search
// driver: a day-by-day greedy builder that fills demand while keeping
// every candidate assignment hard-feasible online.
package solver

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/Hadrian1992/HarmonogramMaster/pkg/logger"
	"github.com/Hadrian1992/HarmonogramMaster/pkg/model"
	"github.com/Hadrian1992/HarmonogramMaster/pkg/scheduler/constraint"
	"github.com/Hadrian1992/HarmonogramMaster/pkg/scheduler/variable"
)

// Solver builds an initial candidate schedule.
type Solver interface {
	Solve(ctx context.Context, schedCtx *constraint.Context, input *model.SolverInput) (*Result, error)
	Name() string
}

// Result is the constructive builder's output: the assignment set it
// produced plus bookkeeping the search driver logs and reports.
type Result struct {
	Assignments []constraint.Assignment
	Statistics  Statistics
	Duration    time.Duration
}

// Statistics summarizes one constructive pass.
type Statistics struct {
	TotalAssignments  int
	DatesWithShortfall int
	Iterations        int
}

// GreedySolver fills demand day by day, assigning the least-worked
// eligible employee to each open slot and rejecting any candidate the
// hard-rule manager would refuse. Every hard rule's single-assignment
// check runs; the ones that can refuse a candidate are H1-H6, H10, H11
// and the 48h weekly cap (H7, H8 and H9 never refuse one).
type GreedySolver struct {
	constraintManager *constraint.Manager
	logger            *logger.SchedulerLogger
	maxIterations     int
}

// NewGreedySolver builds a constructive solver bound to cm.
func NewGreedySolver(cm *constraint.Manager) *GreedySolver {
	return &GreedySolver{
		constraintManager: cm,
		logger:            logger.NewSchedulerLogger(),
		maxIterations:     100000,
	}
}

// Name identifies this solver implementation.
func (s *GreedySolver) Name() string { return "GreedySolver" }

// SetMaxIterations overrides the iteration safety cap.
func (s *GreedySolver) SetMaxIterations(max int) { s.maxIterations = max }

// Solve fills every date's demand, preferring employees with the
// fewest worked hours so far, skipping any candidate that would
// violate a hard rule. Shortfalls (no eligible candidate left) are
// recorded in Statistics rather than failing the pass outright — the
// local-search phase may still find a feasible arrangement an earlier
// greedy choice foreclosed.
func (s *GreedySolver) Solve(ctx context.Context, schedCtx *constraint.Context, input *model.SolverInput) (*Result, error) {
	start := time.Now()

	if len(input.Employees) == 0 {
		return nil, fmt.Errorf("solver: no employees in roster")
	}

	vars := variable.Build(input)
	byDate := make(map[string][]variable.Variable)
	for _, v := range vars {
		byDate[v.Date] = append(byDate[v.Date], v)
	}

	dates := input.DateList()
	hoursWorked := make(map[string]float64, len(input.Employees))
	for _, e := range input.Employees {
		hoursWorked[e.ID] = 0
	}

	result := &Result{}
	iterations := 0

	for _, date := range dates {
		if ctx.Err() != nil {
			return result, ctx.Err()
		}

		target := input.Demand[date]
		assignedToday := 0

		options := byDate[date]
		sort.SliceStable(options, func(i, j int) bool {
			return options[i].EmployeeID < options[j].EmployeeID
		})

		working := make(map[string]bool)

		for assignedToday < target {
			iterations++
			if iterations > s.maxIterations {
				break
			}

			candidate := s.bestCandidate(schedCtx, options, working, hoursWorked)
			if candidate == nil {
				result.Statistics.DatesWithShortfall++
				break
			}

			assignment := constraint.Assignment{EmployeeID: candidate.EmployeeID, Date: candidate.Date, ShiftID: candidate.ShiftID}
			schedCtx.AddAssignment(assignment)
			result.Assignments = append(result.Assignments, assignment)

			if st, err := schedCtx.ShiftType(candidate.ShiftID); err == nil && st.Kind == model.KindWork {
				hoursWorked[candidate.EmployeeID] += st.Hours
			}
			working[candidate.EmployeeID] = true
			assignedToday++
		}
	}

	result.Statistics.TotalAssignments = len(result.Assignments)
	result.Statistics.Iterations = iterations
	result.Duration = time.Since(start)
	return result, nil
}

// bestCandidate picks the least-worked employee among options not yet
// assigned today whose assignment the hard-rule manager accepts.
func (s *GreedySolver) bestCandidate(schedCtx *constraint.Context, options []variable.Variable, working map[string]bool, hours map[string]float64) *variable.Variable {
	var eligible []variable.Variable
	for _, v := range options {
		if working[v.EmployeeID] {
			continue
		}
		eligible = append(eligible, v)
	}
	sort.SliceStable(eligible, func(i, j int) bool {
		return hours[eligible[i].EmployeeID] < hours[eligible[j].EmployeeID]
	})

	for i := range eligible {
		v := eligible[i]
		assignment := constraint.Assignment{EmployeeID: v.EmployeeID, Date: v.Date, ShiftID: v.ShiftID}
		if ok, reason := s.constraintManager.CanAssign(schedCtx, assignment); !ok {
			s.logger.ConstraintViolation("construction", fmt.Sprintf("employee %s on %s: %s", v.EmployeeID, v.Date, reason))
			continue
		}
		return &eligible[i]
	}
	return nil
}
