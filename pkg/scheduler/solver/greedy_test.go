package solver

import (
	"context"
	"testing"

	"github.com/Hadrian1992/HarmonogramMaster/pkg/model"
	"github.com/Hadrian1992/HarmonogramMaster/pkg/scheduler/constraint"
	hardrules "github.com/Hadrian1992/HarmonogramMaster/pkg/scheduler/constraint/hard"
)

func buildManager(t *testing.T) *constraint.Manager {
	t.Helper()
	m := constraint.NewManager()
	for _, r := range hardrules.All() {
		m.Register(r)
	}
	return m
}

func TestGreedySolver_FillsDemandWithLeastWorkedFirst(t *testing.T) {
	input := &model.SolverInput{
		Employees: []model.Employee{
			{ID: "e1", Name: "Anna", AllowedShifts: []string{"8-16"}},
			{ID: "e2", Name: "Jan", AllowedShifts: []string{"8-16"}},
		},
		DateRange: model.DateRange{Start: "2026-01-05", End: "2026-01-05"},
		Demand:    map[string]int{"2026-01-05": 1},
	}

	manager := buildManager(t)
	schedCtx := constraint.NewContext(input.Employees, input.Constraints, input.DateRange, input.Demand)
	s := NewGreedySolver(manager)

	result, err := s.Solve(context.Background(), schedCtx, input)
	if err != nil {
		t.Fatalf("Solve returned an error: %v", err)
	}
	if len(result.Assignments) != 1 {
		t.Fatalf("expected exactly 1 assignment, got %d", len(result.Assignments))
	}
}

func TestGreedySolver_RejectsEmptyRoster(t *testing.T) {
	input := &model.SolverInput{
		DateRange: model.DateRange{Start: "2026-01-05", End: "2026-01-05"},
	}
	manager := buildManager(t)
	schedCtx := constraint.NewContext(nil, nil, input.DateRange, nil)
	s := NewGreedySolver(manager)

	if _, err := s.Solve(context.Background(), schedCtx, input); err == nil {
		t.Error("expected an error for an empty roster")
	}
}

func TestGreedySolver_RecordsShortfallWhenDemandUnmet(t *testing.T) {
	input := &model.SolverInput{
		Employees: []model.Employee{{ID: "e1", Name: "Anna", AllowedShifts: []string{"8-16"}}},
		DateRange: model.DateRange{Start: "2026-01-05", End: "2026-01-05"},
		Demand:    map[string]int{"2026-01-05": 2},
	}

	manager := buildManager(t)
	schedCtx := constraint.NewContext(input.Employees, input.Constraints, input.DateRange, input.Demand)
	s := NewGreedySolver(manager)

	result, err := s.Solve(context.Background(), schedCtx, input)
	if err != nil {
		t.Fatalf("Solve returned an error: %v", err)
	}
	if result.Statistics.DatesWithShortfall == 0 {
		t.Error("expected a recorded shortfall when only one employee can cover demand of 2")
	}
}
