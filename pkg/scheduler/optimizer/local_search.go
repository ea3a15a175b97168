package optimizer

import (
	"context"
	"hash/fnv"
	"math"
	"math/rand"
	"time"

	"github.com/Hadrian1992/HarmonogramMaster/pkg/logger"
	"github.com/Hadrian1992/HarmonogramMaster/pkg/scheduler/constraint"
	"github.com/Hadrian1992/HarmonogramMaster/pkg/scheduler/variable"
)

// Config tunes the simulated-annealing/tabu local-search phase. Every
// field is supplied by the caller (the search driver); there is no
// package-level default carrying hidden state.
type Config struct {
	MaxIterations    int
	MaxTime          time.Duration
	InitialTemp      float64
	CoolingRate      float64
	TabuSize         int
	NeighborhoodSize int

	// EarlyStopEnabled, ScoreThreshold, MinSolutions and
	// NoImprovementTimeout mirror spec's EARLY_STOP_* policy: once at
	// least MinSolutions incumbents have been found AND either the
	// latest incumbent's penalty is below ScoreThreshold, or no
	// strict improvement has landed for NoImprovementTimeout, the
	// search stops early.
	EarlyStopEnabled     bool
	ScoreThreshold       int
	MinSolutions         int
	NoImprovementTimeout time.Duration
}

// Solution is a candidate schedule plus its last-evaluated score.
type Solution struct {
	Assignments  []constraint.Assignment
	Penalty      int
	HardFeasible bool
	Violations   []constraint.Violation
}

// Clone deep-copies a solution's assignment slice.
func (s *Solution) Clone() *Solution {
	clone := &Solution{
		Assignments:  make([]constraint.Assignment, len(s.Assignments)),
		Penalty:      s.Penalty,
		HardFeasible: s.HardFeasible,
	}
	copy(clone.Assignments, s.Assignments)
	return clone
}

// Evaluator scores a candidate assignment set against the full rule
// manager. Kept as an interface, mirroring the teacher's
// ConstraintEvaluator, so tests can substitute a stub scorer.
type Evaluator interface {
	Evaluate(assignments []constraint.Assignment) (penalty int, hardFeasible bool, violations []constraint.Violation)
}

// managerEvaluator adapts a constraint.Manager + constraint.Context
// pair to the Evaluator interface.
type managerEvaluator struct {
	manager *constraint.Manager
	ctx     *constraint.Context
}

// NewManagerEvaluator builds the production Evaluator used by the
// search driver.
func NewManagerEvaluator(manager *constraint.Manager, ctx *constraint.Context) Evaluator {
	return &managerEvaluator{manager: manager, ctx: ctx}
}

func (e *managerEvaluator) Evaluate(assignments []constraint.Assignment) (int, bool, []constraint.Violation) {
	e.ctx.SetAssignments(assignments)
	result := e.manager.Evaluate(e.ctx)
	return result.TotalPenalty, result.IsValid, append(result.HardViolations, result.SoftViolations...)
}

// Incumbent reports one improved-or-accepted solution during search,
// used for observability (spec's IncumbentFound logging hook).
type Incumbent struct {
	Count     int
	Penalty   int
	WallTime  time.Duration
	Feasible  bool
}

// LocalSearchOptimizer runs the simulated-annealing/tabu improvement
// loop over a constructive initial solution.
type LocalSearchOptimizer struct {
	config    Config
	evaluator Evaluator
	neighbors *NeighborhoodGenerator
	tabuList  *TabuList
	rng         *rand.Rand
	logger      *logger.SchedulerLogger
	OnIncumbent func(Incumbent)
}

// NewLocalSearchOptimizer builds an optimizer. rng must be seeded by
// the caller from the solve's single seed — spec's determinism
// requirement forbids any wall-clock-seeded randomness here.
func NewLocalSearchOptimizer(config Config, evaluator Evaluator, rng *rand.Rand, log *logger.SchedulerLogger) *LocalSearchOptimizer {
	return &LocalSearchOptimizer{
		config:    config,
		evaluator: evaluator,
		neighbors: NewNeighborhoodGenerator(rng),
		tabuList:  NewTabuList(config.TabuSize),
		rng:       rng,
		logger:    log,
	}
}

// Optimize runs the search loop starting from initial, returning the
// best hard-feasible solution found (or initial, if nothing better
// with equal-or-better feasibility was found). It stops on context
// cancellation, the wall-clock cap, or a plateau of no improvement.
func (o *LocalSearchOptimizer) Optimize(ctx context.Context, initial *Solution, vars []variable.Variable, plateauIterations int, runID string) (*Solution, int, error) {
	start := time.Now()

	current := initial.Clone()
	best := current.Clone()

	temperature := o.config.InitialTemp
	noImprovement := 0
	incumbents := 0
	lastImprovement := start

	for i := 0; i < o.config.MaxIterations; i++ {
		select {
		case <-ctx.Done():
			return best, incumbents, ctx.Err()
		default:
		}
		if time.Since(start) > o.config.MaxTime {
			break
		}
		if o.config.EarlyStopEnabled && incumbents >= o.config.MinSolutions {
			if best.Penalty < o.config.ScoreThreshold {
				break
			}
			if o.config.NoImprovementTimeout > 0 && time.Since(lastImprovement) >= o.config.NoImprovementTimeout {
				break
			}
		}

		neighborAssignments := o.neighbors.GenerateBatch(current.Assignments, vars, o.config.NeighborhoodSize)
		if len(neighborAssignments) == 0 {
			continue
		}

		bestNeighbor := o.evaluateBest(neighborAssignments)
		if bestNeighbor == nil {
			continue
		}

		moveKey := hashAssignments(bestNeighbor.Assignments)
		inTabu := o.tabuList.Contains(moveKey)

		accept := false
		switch {
		case bestNeighbor.Penalty < current.Penalty:
			accept = true
		case !inTabu:
			delta := float64(bestNeighbor.Penalty - current.Penalty)
			if o.rng.Float64() < boltzmannProbability(delta, temperature) {
				accept = true
			}
		}

		if accept {
			current = bestNeighbor
			o.tabuList.Add(moveKey)

			if betterThan(current, best) {
				best = current.Clone()
				incumbents++
				noImprovement = 0
				lastImprovement = time.Now()
				if o.logger != nil {
					o.logger.IncumbentFound(runID, incumbents, best.Penalty, time.Since(start))
				}
				if o.OnIncumbent != nil {
					o.OnIncumbent(Incumbent{Count: incumbents, Penalty: best.Penalty, WallTime: time.Since(start), Feasible: best.HardFeasible})
				}
			} else {
				noImprovement++
			}
		} else {
			noImprovement++
		}

		if plateauIterations > 0 && noImprovement >= plateauIterations {
			break
		}

		temperature *= o.config.CoolingRate
	}

	return best, incumbents, nil
}

func (o *LocalSearchOptimizer) evaluateBest(candidates [][]constraint.Assignment) *Solution {
	var best *Solution
	for _, assignments := range candidates {
		penalty, feasible, violations := o.evaluator.Evaluate(assignments)
		sol := &Solution{Assignments: assignments, Penalty: penalty, HardFeasible: feasible, Violations: violations}
		if best == nil || betterThan(sol, best) {
			best = sol
		}
	}
	return best
}

// betterThan prefers hard-feasible solutions outright, then lower
// penalty among solutions of equal feasibility.
func betterThan(a, b *Solution) bool {
	if a.HardFeasible != b.HardFeasible {
		return a.HardFeasible
	}
	return a.Penalty < b.Penalty
}

func hashAssignments(assignments []constraint.Assignment) uint64 {
	if len(assignments) == 0 {
		return 0
	}
	h := fnv.New64a()
	for _, a := range assignments {
		h.Write([]byte(a.EmployeeID))
		h.Write([]byte(a.Date))
		h.Write([]byte(a.ShiftID))
	}
	return h.Sum64()
}

// boltzmannProbability is the simulated-annealing acceptance
// probability for a worse candidate (delta > 0).
func boltzmannProbability(delta, temperature float64) float64 {
	if delta <= 0 {
		return 1.0
	}
	if temperature <= 0 {
		return 0.0
	}
	return math.Exp(-delta / temperature)
}

// TabuList is a fixed-size FIFO set of recently-visited move hashes.
type TabuList struct {
	items   map[uint64]struct{}
	order   []uint64
	maxSize int
}

// NewTabuList builds an empty tabu list of the given capacity.
func NewTabuList(size int) *TabuList {
	if size <= 0 {
		size = 1
	}
	return &TabuList{items: make(map[uint64]struct{}), order: make([]uint64, 0, size), maxSize: size}
}

// Add records key as tabu, evicting the oldest entry if at capacity.
func (t *TabuList) Add(key uint64) {
	if _, exists := t.items[key]; exists {
		return
	}
	if len(t.order) >= t.maxSize {
		oldest := t.order[0]
		t.order = t.order[1:]
		delete(t.items, oldest)
	}
	t.items[key] = struct{}{}
	t.order = append(t.order, key)
}

// Contains reports whether key is currently tabu.
func (t *TabuList) Contains(key uint64) bool {
	_, exists := t.items[key]
	return exists
}

// Clear empties the tabu list.
func (t *TabuList) Clear() {
	t.items = make(map[uint64]struct{})
	t.order = t.order[:0]
}
