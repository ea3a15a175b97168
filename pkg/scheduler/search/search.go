// Package search orchestrates one scheduler run: construct an initial
// schedule, improve it with local search, and map the outcome onto
// the spec's SUCCESS/FAILED/TIMEOUT status discriminant.
package search

import (
	"context"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/Hadrian1992/HarmonogramMaster/pkg/logger"
	"github.com/Hadrian1992/HarmonogramMaster/pkg/model"
	"github.com/Hadrian1992/HarmonogramMaster/pkg/scheduler/constraint"
	hardrules "github.com/Hadrian1992/HarmonogramMaster/pkg/scheduler/constraint/hard"
	softrules "github.com/Hadrian1992/HarmonogramMaster/pkg/scheduler/constraint/soft"
	"github.com/Hadrian1992/HarmonogramMaster/pkg/scheduler/optimizer"
	"github.com/Hadrian1992/HarmonogramMaster/pkg/scheduler/solver"
	"github.com/Hadrian1992/HarmonogramMaster/pkg/scheduler/variable"
)

// Config tunes the early-stop policy and wall-clock cap, per spec
// §4.4/§9's EARLY_STOP_* environment variables.
type Config struct {
	EarlyStopEnabled     bool
	ScoreThreshold       int
	MinSolutions         int
	NoImprovementTimeout time.Duration
	WallClockCap         time.Duration
}

// DefaultConfig returns the spec's documented defaults.
func DefaultConfig() Config {
	return Config{
		EarlyStopEnabled:     true,
		ScoreThreshold:       800,
		MinSolutions:         10,
		NoImprovementTimeout: 600 * time.Second,
		WallClockCap:         1800 * time.Second,
	}
}

// buildManager registers every hard (H1-H11, 48h cap) and soft
// (S1-S6) rule.
func buildManager() *constraint.Manager {
	m := constraint.NewManager()
	for _, r := range hardrules.All() {
		m.Register(r)
	}
	for _, r := range softrules.All() {
		m.Register(r)
	}
	return m
}

// Solve runs the full construct-then-improve pipeline. It is
// deterministic for a given seed: every random choice made by the
// constructive and local-search phases derives from one *rand.Rand
// seeded here, never from wall-clock time or global state.
func Solve(ctx context.Context, input *model.SolverInput, cfg Config, seed int64) (*model.SolverOutput, error) {
	runID := uuid.New().String()
	log := logger.NewSchedulerLogger()
	rng := rand.New(rand.NewSource(seed))
	start := time.Now()

	solveCtx, cancel := context.WithTimeout(ctx, cfg.WallClockCap)
	defer cancel()

	horizon := input.DateRange
	schedCtx := constraint.NewContext(input.Employees, input.Constraints, horizon, input.Demand)

	dayBefore := model.PreviousDate(horizon.Start)
	for _, emp := range input.Employees {
		if st, ok := model.HistoryShift(input.ExistingSchedule, emp.ID, dayBefore); ok {
			schedCtx.SetHistory(emp.ID, st)
		}
	}

	manager := buildManager()
	log.StartSolve(runID, len(input.Employees), len(input.DateList()), seed)

	greedy := solver.NewGreedySolver(manager)
	constructed, err := greedy.Solve(solveCtx, schedCtx, input)
	if err != nil {
		return infeasibleOutput(err.Error()), nil
	}

	evaluator := optimizer.NewManagerEvaluator(manager, schedCtx)
	penalty, feasible, violations := evaluator.Evaluate(constructed.Assignments)
	initial := &optimizer.Solution{Assignments: constructed.Assignments, Penalty: penalty, HardFeasible: feasible, Violations: violations}

	vars := variable.Build(input)

	optCfg := optimizer.Config{
		MaxIterations:        500000,
		MaxTime:              cfg.WallClockCap,
		InitialTemp:          10,
		CoolingRate:          0.995,
		TabuSize:             200,
		NeighborhoodSize:     20,
		EarlyStopEnabled:     cfg.EarlyStopEnabled,
		ScoreThreshold:       cfg.ScoreThreshold,
		MinSolutions:         cfg.MinSolutions,
		NoImprovementTimeout: cfg.NoImprovementTimeout,
	}

	ls := optimizer.NewLocalSearchOptimizer(optCfg, evaluator, rng, log)
	best, incumbentCount, err := ls.Optimize(solveCtx, initial, vars, 0, runID)
	if err != nil && err != context.DeadlineExceeded && err != context.Canceled {
		return nil, err
	}

	duration := time.Since(start)
	status, outcomeErr := classify(best, incumbentCount, solveCtx.Err() != nil)
	out := toOutput(input, best, status, outcomeErr, duration)

	log.SolveComplete(runID, string(status), duration, best.Penalty)
	return out, nil
}

// classify maps the optimizer's terminal Solution onto the spec's
// outcome discriminant: optimal/feasible success, or failure with an
// explanatory message.
func classify(best *optimizer.Solution, incumbentCount int, timedOut bool) (model.SolverStatus, string) {
	if best == nil || !best.HardFeasible {
		return model.StatusFailed, "no hard-feasible schedule was found"
	}
	if timedOut {
		return model.StatusSuccess, "Solution is feasible but not optimal"
	}
	return model.StatusSuccess, ""
}

func toOutput(input *model.SolverInput, best *optimizer.Solution, status model.SolverStatus, warning string, duration time.Duration) *model.SolverOutput {
	out := &model.SolverOutput{
		Status:   status,
		Schedule: map[string]map[string]string{},
		Stats: model.SolveStats{
			SolveTimeSeconds: duration.Seconds(),
		},
	}

	if best == nil {
		out.Stats.Status = "INFEASIBLE"
		errMsg := "no hard-feasible schedule was found"
		out.Error = &errMsg
		return out
	}

	for _, a := range best.Assignments {
		if out.Schedule[a.EmployeeID] == nil {
			out.Schedule[a.EmployeeID] = map[string]string{}
		}
		out.Schedule[a.EmployeeID][a.Date] = a.ShiftID
	}

	out.Stats.ObjectiveValue = best.Penalty
	out.Stats.NumConflicts = len(best.Violations)

	switch {
	case status == model.StatusFailed:
		out.Stats.Status = "INFEASIBLE"
		errMsg := warning
		if errMsg == "" {
			errMsg = "no hard-feasible schedule was found"
		}
		out.Error = &errMsg
	case warning != "":
		out.Stats.Status = "FEASIBLE"
		out.Violations = append(out.Violations, warning)
	default:
		out.Stats.Status = "OPTIMAL"
	}

	return out
}

// infeasibleOutput builds a FAILED output for a construction-phase
// error (e.g. an empty roster), never a crash.
func infeasibleOutput(reason string) *model.SolverOutput {
	return &model.SolverOutput{
		Status:   model.StatusFailed,
		Schedule: map[string]map[string]string{},
		Stats:    model.SolveStats{Status: "INFEASIBLE"},
		Error:    &reason,
	}
}
