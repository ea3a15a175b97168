// Package optimizer implements the simulated-annealing/tabu
// local-search improvement phase of the search driver, operating over
// constraint.Assignment candidate schedules.
package optimizer

import (
	"math/rand"

	"github.com/Hadrian1992/HarmonogramMaster/pkg/scheduler/constraint"
	"github.com/Hadrian1992/HarmonogramMaster/pkg/scheduler/variable"
)

// MoveType identifies a neighborhood move.
type MoveType int

const (
	MoveSwapEmployee MoveType = iota // trade the employee between two assignments
	MoveRelocateShift                // change one assignment's shift
	MoveInsert                       // add an unused (employee,date,shift) variable
	MoveRemove                       // drop one assignment
	MoveSwapShift                    // trade the shift between two assignments
	MoveChain                        // rotate employees across a short chain of assignments
)

// NeighborhoodGenerator proposes candidate moves. All randomness comes
// from the injected *rand.Rand so a solve is reproducible for a given
// seed.
type NeighborhoodGenerator struct {
	rng         *rand.Rand
	moveWeights map[MoveType]float64
}

// NewNeighborhoodGenerator builds a generator driven entirely by rng;
// the caller owns seeding it (spec's per-seed determinism requirement
// rules out seeding from wall-clock time here).
func NewNeighborhoodGenerator(rng *rand.Rand) *NeighborhoodGenerator {
	return &NeighborhoodGenerator{
		rng: rng,
		moveWeights: map[MoveType]float64{
			MoveSwapEmployee:  0.30,
			MoveRelocateShift: 0.25,
			MoveInsert:        0.15,
			MoveRemove:        0.10,
			MoveSwapShift:     0.10,
			MoveChain:         0.10,
		},
	}
}

// GenerateNeighbor proposes one candidate move, returning a new
// assignment slice (the current one is left untouched) or nil if no
// applicable move could be generated.
func (n *NeighborhoodGenerator) GenerateNeighbor(current []constraint.Assignment, vars []variable.Variable) []constraint.Assignment {
	if len(current) == 0 && len(vars) == 0 {
		return nil
	}

	switch n.selectMoveType() {
	case MoveSwapEmployee:
		return n.swapEmployee(current)
	case MoveRelocateShift:
		return n.relocateShift(current, vars)
	case MoveInsert:
		return n.insert(current, vars)
	case MoveRemove:
		return n.remove(current)
	case MoveSwapShift:
		return n.swapShift(current)
	case MoveChain:
		return n.chain(current)
	default:
		return n.swapEmployee(current)
	}
}

func (n *NeighborhoodGenerator) selectMoveType() MoveType {
	order := []MoveType{MoveSwapEmployee, MoveRelocateShift, MoveInsert, MoveRemove, MoveSwapShift, MoveChain}
	r := n.rng.Float64()
	cumulative := 0.0
	for _, mt := range order {
		cumulative += n.moveWeights[mt]
		if r < cumulative {
			return mt
		}
	}
	return MoveSwapEmployee
}

func clone(current []constraint.Assignment) []constraint.Assignment {
	out := make([]constraint.Assignment, len(current))
	copy(out, current)
	return out
}

func (n *NeighborhoodGenerator) swapEmployee(current []constraint.Assignment) []constraint.Assignment {
	if len(current) < 2 {
		return nil
	}
	neighbor := clone(current)
	i := n.rng.Intn(len(neighbor))
	j := n.rng.Intn(len(neighbor))
	for j == i {
		j = n.rng.Intn(len(neighbor))
	}
	neighbor[i].EmployeeID, neighbor[j].EmployeeID = neighbor[j].EmployeeID, neighbor[i].EmployeeID
	return neighbor
}

func (n *NeighborhoodGenerator) swapShift(current []constraint.Assignment) []constraint.Assignment {
	if len(current) < 2 {
		return nil
	}
	neighbor := clone(current)
	i := n.rng.Intn(len(neighbor))
	j := n.rng.Intn(len(neighbor))
	for j == i {
		j = n.rng.Intn(len(neighbor))
	}
	neighbor[i].ShiftID, neighbor[j].ShiftID = neighbor[j].ShiftID, neighbor[i].ShiftID
	return neighbor
}

func (n *NeighborhoodGenerator) relocateShift(current []constraint.Assignment, vars []variable.Variable) []constraint.Assignment {
	if len(current) == 0 || len(vars) == 0 {
		return nil
	}
	neighbor := clone(current)
	idx := n.rng.Intn(len(neighbor))
	emp := neighbor[idx].EmployeeID

	var options []variable.Variable
	for _, v := range vars {
		if v.EmployeeID == emp && v.Date == neighbor[idx].Date && v.ShiftID != neighbor[idx].ShiftID {
			options = append(options, v)
		}
	}
	if len(options) == 0 {
		return nil
	}
	neighbor[idx].ShiftID = options[n.rng.Intn(len(options))].ShiftID
	return neighbor
}

func (n *NeighborhoodGenerator) insert(current []constraint.Assignment, vars []variable.Variable) []constraint.Assignment {
	if len(vars) == 0 {
		return nil
	}
	assigned := make(map[string]bool, len(current))
	for _, a := range current {
		assigned[a.EmployeeID+"|"+a.Date] = true
	}

	var free []variable.Variable
	for _, v := range vars {
		if !assigned[v.EmployeeID+"|"+v.Date] {
			free = append(free, v)
		}
	}
	if len(free) == 0 {
		return nil
	}
	pick := free[n.rng.Intn(len(free))]
	neighbor := clone(current)
	neighbor = append(neighbor, constraint.Assignment{EmployeeID: pick.EmployeeID, Date: pick.Date, ShiftID: pick.ShiftID})
	return neighbor
}

func (n *NeighborhoodGenerator) remove(current []constraint.Assignment) []constraint.Assignment {
	if len(current) <= 1 {
		return nil
	}
	neighbor := clone(current)
	idx := n.rng.Intn(len(neighbor))
	neighbor = append(neighbor[:idx], neighbor[idx+1:]...)
	return neighbor
}

func (n *NeighborhoodGenerator) chain(current []constraint.Assignment) []constraint.Assignment {
	if len(current) < 3 {
		return nil
	}
	neighbor := clone(current)
	chainLen := 2 + n.rng.Intn(3)
	if chainLen > len(neighbor) {
		chainLen = len(neighbor)
	}
	indices := make([]int, chainLen)
	for i := range indices {
		indices[i] = n.rng.Intn(len(neighbor))
	}
	first := neighbor[indices[0]].EmployeeID
	for i := 0; i < chainLen-1; i++ {
		neighbor[indices[i]].EmployeeID = neighbor[indices[i+1]].EmployeeID
	}
	neighbor[indices[chainLen-1]].EmployeeID = first
	return neighbor
}

// GenerateBatch proposes up to count neighbors, skipping moves that
// could not be generated.
func (n *NeighborhoodGenerator) GenerateBatch(current []constraint.Assignment, vars []variable.Variable, count int) [][]constraint.Assignment {
	results := make([][]constraint.Assignment, 0, count)
	for i := 0; i < count; i++ {
		if neighbor := n.GenerateNeighbor(current, vars); neighbor != nil {
			results = append(results, neighbor)
		}
	}
	return results
}

// SetMoveWeights overrides the default move-selection weights.
func (n *NeighborhoodGenerator) SetMoveWeights(weights map[MoveType]float64) {
	n.moveWeights = weights
}
