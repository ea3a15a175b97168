package search

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/Hadrian1992/HarmonogramMaster/pkg/model"
)

func testConfig() Config {
	cfg := DefaultConfig()
	cfg.WallClockCap = 2 * time.Second
	return cfg
}

// Scenario 1: night-to-morning rejection. A worked "20-8" the day
// before the horizon starts; gap(20-8, 8-16) is 0h, so A must not be
// scheduled "8-16" on the horizon's first day.
func TestSolve_NightToMorningRejection(t *testing.T) {
	var existing model.ExistingSchedule
	raw := `{"employees":[{"id":"A","shifts":{"2024-12-31":"20-8"}}]}`
	if err := json.Unmarshal([]byte(raw), &existing); err != nil {
		t.Fatalf("unmarshal existingSchedule: %v", err)
	}

	input := &model.SolverInput{
		Employees: []model.Employee{{ID: "A", Name: "A", AllowedShifts: []string{"20-8", "8-16"}}},
		DateRange: model.DateRange{Start: "2025-01-01", End: "2025-01-02"},
		Demand:    map[string]int{"2025-01-01": 1, "2025-01-02": 1},
		ExistingSchedule: &existing,
	}

	out, err := Solve(context.Background(), input, testConfig(), 1)
	if err != nil {
		t.Fatalf("Solve returned an error: %v", err)
	}
	if shift := out.Schedule["A"]["2025-01-01"]; shift == "8-16" {
		t.Errorf("A must not take 8-16 on the first horizon day after a 20-8 history shift, got %q", shift)
	}
}

// Scenario 2: coverage infeasibility. A single employee who can only
// ever work "8-16" can never cover the night zone, so no hard-feasible
// schedule exists.
func TestSolve_CoverageInfeasibility(t *testing.T) {
	input := &model.SolverInput{
		Employees: []model.Employee{{ID: "e1", Name: "Solo", AllowedShifts: []string{"8-16"}}},
		DateRange: model.DateRange{Start: "2025-01-01", End: "2025-01-01"},
		Demand:    map[string]int{"2025-01-01": 1},
	}

	out, err := Solve(context.Background(), input, testConfig(), 1)
	if err != nil {
		t.Fatalf("Solve returned an error: %v", err)
	}
	if out.Status != model.StatusFailed {
		t.Errorf("expected FAILED status, got %q", out.Status)
	}
	if out.Error == nil {
		t.Error("expected an error message explaining the infeasibility")
	}
}

// Scenario 3: leader alone. A LIDER with no WYCHOWAWCA in the roster
// can never satisfy H11, so the week is infeasible.
func TestSolve_LeaderAlone(t *testing.T) {
	input := &model.SolverInput{
		Employees: []model.Employee{{ID: "L", Name: "Leader", Roles: []model.Role{model.RoleLider}, AllowedShifts: []string{"8-16"}}},
		DateRange: model.DateRange{Start: "2026-01-05", End: "2026-01-09"}, // Mon-Fri
		Demand: map[string]int{
			"2026-01-05": 1, "2026-01-06": 1, "2026-01-07": 1, "2026-01-08": 1, "2026-01-09": 1,
		},
	}

	out, err := Solve(context.Background(), input, testConfig(), 1)
	if err != nil {
		t.Fatalf("Solve returned an error: %v", err)
	}
	if out.Status != model.StatusFailed {
		t.Errorf("expected FAILED status for a leader with no support, got %q", out.Status)
	}
}

// Scenario 4: fixed shift honored. A hard SHIFT constraint pins A to
// "14-22" on a specific date; the solver must respect it verbatim.
func TestSolve_FixedShiftHonored(t *testing.T) {
	input := &model.SolverInput{
		Employees: []model.Employee{{ID: "A", Name: "A", AllowedShifts: []string{"14-22"}}},
		DateRange: model.DateRange{Start: "2025-01-03", End: "2025-01-03"},
		Demand:    map[string]int{"2025-01-03": 1},
		Constraints: []model.Constraint{
			{Kind: model.KindShift, EmployeeID: "A", Date: "2025-01-03", Value: "14-22", Hard: true},
		},
	}

	out, err := Solve(context.Background(), input, testConfig(), 1)
	if err != nil {
		t.Fatalf("Solve returned an error: %v", err)
	}
	if got := out.Schedule["A"]["2025-01-03"]; got != "14-22" {
		t.Errorf("expected A pinned to 14-22 on 2025-01-03, got %q", got)
	}
}

// Scenario 5: weekly overtime minimized. Two interchangeable employees
// cover a 7-day, one-per-day demand; the balance penalty must keep
// either of them under 6 assigned shifts.
func TestSolve_WeeklyOvertimeMinimized(t *testing.T) {
	dates := []string{
		"2026-01-05", "2026-01-06", "2026-01-07", "2026-01-08",
		"2026-01-09", "2026-01-10", "2026-01-11",
	}
	demand := make(map[string]int, len(dates))
	for _, d := range dates {
		demand[d] = 1
	}

	input := &model.SolverInput{
		Employees: []model.Employee{
			{ID: "e1", Name: "Anna", AllowedShifts: []string{"8-16"}},
			{ID: "e2", Name: "Jan", AllowedShifts: []string{"8-16"}},
		},
		DateRange: model.DateRange{Start: dates[0], End: dates[len(dates)-1]},
		Demand:    demand,
	}

	out, err := Solve(context.Background(), input, testConfig(), 1)
	if err != nil {
		t.Fatalf("Solve returned an error: %v", err)
	}
	for emp, days := range out.Schedule {
		if len(days) > 5 {
			t.Errorf("employee %s assigned %d shifts in a 7-day week, want <= 5", emp, len(days))
		}
	}
}

// Scenario 6: early stop. With the default threshold (800) and
// min-solutions (10), the search must terminate without exhausting
// its iteration budget once a feasible incumbent is cheap to find.
func TestSolve_EarlyStopTerminatesPromptly(t *testing.T) {
	dates := []string{"2026-01-05", "2026-01-06", "2026-01-07"}
	demand := map[string]int{dates[0]: 1, dates[1]: 1, dates[2]: 1}

	input := &model.SolverInput{
		Employees: []model.Employee{
			{ID: "e1", Name: "Anna", AllowedShifts: []string{"8-16", "16-24", "0-8"}},
			{ID: "e2", Name: "Jan", AllowedShifts: []string{"8-16", "16-24", "0-8"}},
			{ID: "e3", Name: "Ola", AllowedShifts: []string{"8-16", "16-24", "0-8"}},
		},
		DateRange: model.DateRange{Start: dates[0], End: dates[2]},
		Demand:    demand,
	}

	cfg := testConfig()
	cfg.EarlyStopEnabled = true
	cfg.ScoreThreshold = 800
	cfg.MinSolutions = 10

	start := time.Now()
	out, err := Solve(context.Background(), input, cfg, 1)
	elapsed := time.Since(start)
	if err != nil {
		t.Fatalf("Solve returned an error: %v", err)
	}
	if elapsed >= cfg.WallClockCap {
		t.Errorf("expected early stop to terminate well before the %s wall-clock cap, took %s", cfg.WallClockCap, elapsed)
	}
	if out.Stats.ObjectiveValue >= 800 && out.Status == model.StatusSuccess {
		t.Logf("objective %d did not drop below threshold; early stop may have exited on the no-improvement timeout instead", out.Stats.ObjectiveValue)
	}
}
