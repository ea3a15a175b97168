package optimizer

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/Hadrian1992/HarmonogramMaster/pkg/scheduler/constraint"
	"github.com/Hadrian1992/HarmonogramMaster/pkg/scheduler/variable"
)

// countingEvaluator scores an assignment set by its length alone, so
// tests can reason about the optimizer's control flow without pulling
// in the full rule manager.
type countingEvaluator struct {
	target int
}

func (e *countingEvaluator) Evaluate(assignments []constraint.Assignment) (int, bool, []constraint.Violation) {
	penalty := abs(len(assignments) - e.target)
	return penalty, penalty == 0, nil
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func testVars() []variable.Variable {
	var out []variable.Variable
	for _, emp := range []string{"e1", "e2", "e3"} {
		for _, d := range []string{"2026-01-05", "2026-01-06"} {
			out = append(out, variable.Variable{EmployeeID: emp, Date: d, ShiftID: "8-16"})
		}
	}
	return out
}

func TestLocalSearchOptimizer_ImprovesTowardTarget(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	evaluator := &countingEvaluator{target: 3}
	cfg := Config{MaxIterations: 2000, MaxTime: time.Second, InitialTemp: 5, CoolingRate: 0.99, TabuSize: 50, NeighborhoodSize: 10}
	opt := NewLocalSearchOptimizer(cfg, evaluator, rng, nil)

	initial := &Solution{Assignments: nil, Penalty: 3, HardFeasible: false}
	best, _, err := opt.Optimize(context.Background(), initial, testVars(), 0, "test-run")
	if err != nil {
		t.Fatalf("Optimize returned an error: %v", err)
	}
	if best.Penalty >= initial.Penalty {
		t.Errorf("expected the optimizer to improve on the initial penalty, got %d >= %d", best.Penalty, initial.Penalty)
	}
}

func TestLocalSearchOptimizer_StopsOnEarlyStopThreshold(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	evaluator := &countingEvaluator{target: 1}
	cfg := Config{
		MaxIterations: 500000, MaxTime: 5 * time.Second, InitialTemp: 5, CoolingRate: 0.999,
		TabuSize: 50, NeighborhoodSize: 10,
		EarlyStopEnabled: true, ScoreThreshold: 1, MinSolutions: 1, NoImprovementTimeout: 50 * time.Millisecond,
	}
	opt := NewLocalSearchOptimizer(cfg, evaluator, rng, nil)

	initial := &Solution{Assignments: nil, Penalty: 6, HardFeasible: false}
	start := time.Now()
	_, _, err := opt.Optimize(context.Background(), initial, testVars(), 0, "test-run")
	elapsed := time.Since(start)
	if err != nil {
		t.Fatalf("Optimize returned an error: %v", err)
	}
	if elapsed >= cfg.MaxTime {
		t.Errorf("expected the early-stop score threshold to cut the run short of MaxTime (%s), took %s", cfg.MaxTime, elapsed)
	}
}

// feasibilityCapEvaluator diverges penalty from feasibility: penalty
// keeps falling as the assignment list grows, but feasibility is lost
// past a fixed size — so an infeasible candidate can outscore a
// feasible one on raw penalty alone, the exact split
// countingEvaluator can't exercise.
type feasibilityCapEvaluator struct {
	feasibleMaxSize int
}

func (e *feasibilityCapEvaluator) Evaluate(assignments []constraint.Assignment) (int, bool, []constraint.Violation) {
	penalty := 100 - len(assignments)
	feasible := len(assignments) <= e.feasibleMaxSize
	return penalty, feasible, nil
}

func TestLocalSearchOptimizer_NeverOverwritesFeasibleBestWithInfeasible(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	vars := testVars()
	evaluator := &feasibilityCapEvaluator{feasibleMaxSize: 2}
	cfg := Config{MaxIterations: 3000, MaxTime: time.Second, InitialTemp: 5, CoolingRate: 0.995, TabuSize: 50, NeighborhoodSize: 10}
	opt := NewLocalSearchOptimizer(cfg, evaluator, rng, nil)

	initial := &Solution{
		Assignments:  []constraint.Assignment{{EmployeeID: "e1", Date: "2026-01-05", ShiftID: "8-16"}, {EmployeeID: "e2", Date: "2026-01-05", ShiftID: "8-16"}},
		Penalty:      98,
		HardFeasible: true,
	}
	best, _, err := opt.Optimize(context.Background(), initial, vars, 0, "test-run")
	if err != nil {
		t.Fatalf("Optimize returned an error: %v", err)
	}
	if !best.HardFeasible {
		t.Fatalf("best must stay hard-feasible once a feasible incumbent was found, got penalty %d feasible=%v", best.Penalty, best.HardFeasible)
	}
	if best.Penalty != 98 {
		t.Errorf("expected the best feasible incumbent's penalty to stay at its optimum 98, got %d", best.Penalty)
	}
}

func TestTabuList_EvictsOldestOnOverflow(t *testing.T) {
	tl := NewTabuList(2)
	tl.Add(1)
	tl.Add(2)
	tl.Add(3)
	if tl.Contains(1) {
		t.Error("expected key 1 to have been evicted")
	}
	if !tl.Contains(2) || !tl.Contains(3) {
		t.Error("expected keys 2 and 3 to remain tabu")
	}
}
