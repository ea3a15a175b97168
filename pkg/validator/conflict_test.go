package validator

import (
	"testing"

	"github.com/Hadrian1992/HarmonogramMaster/pkg/model"
)

func shiftConstraint(empID, date, shiftID string) model.Constraint {
	return model.Constraint{Kind: model.KindShift, EmployeeID: empID, Date: date, Value: shiftID, Hard: true}
}

func TestValidate_NoViolationsOnRestedRoster(t *testing.T) {
	employees := []model.Employee{
		{ID: "e1", Name: "Anna", AllowedShifts: []string{"8-16"}},
		{ID: "e2", Name: "Jan", AllowedShifts: []string{"16-24"}},
		{ID: "e3", Name: "Ola", AllowedShifts: []string{"0-8"}},
	}
	input := &model.SolverInput{
		Employees: employees,
		DateRange: model.DateRange{Start: "2026-01-01", End: "2026-01-01"},
		Constraints: []model.Constraint{
			shiftConstraint("e1", "2026-01-01", "8-16"),
			shiftConstraint("e2", "2026-01-01", "16-24"),
			shiftConstraint("e3", "2026-01-01", "0-8"),
		},
	}

	v := New(employees)
	violations := v.Validate(input)
	if len(violations) != 0 {
		t.Errorf("expected no violations, got %d: %+v", len(violations), violations)
	}
}

func TestValidate_DailyRestViolation(t *testing.T) {
	employees := []model.Employee{{ID: "e1", Name: "Anna", AllowedShifts: []string{"16-24", "0-8"}}}
	input := &model.SolverInput{
		Employees: employees,
		DateRange: model.DateRange{Start: "2026-01-01", End: "2026-01-02"},
		Constraints: []model.Constraint{
			shiftConstraint("e1", "2026-01-01", "16-24"),
			shiftConstraint("e1", "2026-01-02", "0-8"),
		},
	}

	v := New(employees)
	violations := v.Validate(input)

	found := false
	for _, vio := range violations {
		if vio.Rule == "11h Rest" {
			found = true
		}
	}
	if !found {
		t.Error("expected an 11h Rest daily-rest violation")
	}
}

func TestValidate_CoverageZoneViolation(t *testing.T) {
	employees := []model.Employee{{ID: "e1", Name: "Anna", AllowedShifts: []string{"8-16"}}}
	input := &model.SolverInput{
		Employees: employees,
		DateRange: model.DateRange{Start: "2026-01-01", End: "2026-01-01"},
		Constraints: []model.Constraint{
			shiftConstraint("e1", "2026-01-01", "8-16"),
		},
	}

	v := New(employees)
	violations := v.Validate(input)

	found := false
	for _, vio := range violations {
		if vio.Rule == "H8" {
			found = true
		}
	}
	if !found {
		t.Error("expected an H8 coverage-zone violation (no night coverage)")
	}
}

func TestValidate_MaxConsecutiveResetsAfterEmit(t *testing.T) {
	employees := []model.Employee{{ID: "e1", Name: "Anna", AllowedShifts: []string{"8-16"}}}
	dates := []string{
		"2026-01-01", "2026-01-02", "2026-01-03", "2026-01-04",
		"2026-01-05", "2026-01-06", "2026-01-07", "2026-01-08",
	}
	var constraints []model.Constraint
	for _, d := range dates {
		constraints = append(constraints, shiftConstraint("e1", d, "8-16"))
	}
	input := &model.SolverInput{
		Employees:   employees,
		DateRange:   model.DateRange{Start: dates[0], End: dates[len(dates)-1]},
		Constraints: constraints,
	}

	v := New(employees)
	violations := v.Validate(input)

	count := 0
	for _, vio := range violations {
		if vio.Rule == "H4" {
			count++
		}
	}
	if count != 1 {
		t.Errorf("expected exactly one H4 violation for an 8-day unbroken streak, got %d", count)
	}
}

func TestValidate_LeaderRestrictionWeekend(t *testing.T) {
	employees := []model.Employee{{ID: "e1", Name: "Anna", Roles: []model.Role{model.RoleLider}, AllowedShifts: []string{"8-16"}}}
	// 2026-01-03 is a Saturday.
	input := &model.SolverInput{
		Employees: employees,
		DateRange: model.DateRange{Start: "2026-01-03", End: "2026-01-03"},
		Constraints: []model.Constraint{
			shiftConstraint("e1", "2026-01-03", "8-16"),
		},
	}

	v := New(employees)
	violations := v.Validate(input)

	found := false
	for _, vio := range violations {
		if vio.Rule == "H10" {
			found = true
		}
	}
	if !found {
		t.Error("expected an H10 violation for a leader working a weekend")
	}
}

func TestValidate_NightToMorningExactlyOneViolation(t *testing.T) {
	employees := []model.Employee{{ID: "x", Name: "X", AllowedShifts: []string{"20-8", "8-16"}}}
	input := &model.SolverInput{
		Employees: employees,
		DateRange: model.DateRange{Start: "2026-02-01", End: "2026-02-02"},
		Constraints: []model.Constraint{
			shiftConstraint("x", "2026-02-01", "20-8"),
			shiftConstraint("x", "2026-02-02", "8-16"),
		},
	}

	v := New(employees)
	violations := v.Validate(input)

	var restViolations []Violation
	for _, vio := range violations {
		if vio.Rule == "11h Rest" {
			restViolations = append(restViolations, vio)
		}
	}
	if len(restViolations) != 1 {
		t.Fatalf("expected exactly one 11h Rest violation, got %d: %+v", len(restViolations), restViolations)
	}
	if restViolations[0].Date != "2026-02-02" {
		t.Errorf("expected the violation dated on the second day, got %q", restViolations[0].Date)
	}
}

func TestValidate_NoNightAssigneeCoverageViolation(t *testing.T) {
	employees := []model.Employee{
		{ID: "e1", Name: "Anna", AllowedShifts: []string{"8-16"}},
		{ID: "e2", Name: "Jan", AllowedShifts: []string{"16-24"}},
	}
	input := &model.SolverInput{
		Employees: employees,
		DateRange: model.DateRange{Start: "2026-02-01", End: "2026-02-01"},
		Constraints: []model.Constraint{
			shiftConstraint("e1", "2026-02-01", "8-16"),
			shiftConstraint("e2", "2026-02-01", "16-24"),
		},
	}

	v := New(employees)
	violations := v.Validate(input)

	found := false
	for _, vio := range violations {
		if vio.Rule == "H8" && vio.Date == "2026-02-01" {
			found = true
		}
	}
	if !found {
		t.Error("expected an H8 coverage violation for the uncovered night zone")
	}
}

func TestValidate_LeaderAloneWeakened(t *testing.T) {
	employees := []model.Employee{
		{ID: "e1", Name: "Anna", Roles: []model.Role{model.RoleLider}, AllowedShifts: []string{"8-16"}},
	}
	input := &model.SolverInput{
		Employees: employees,
		DateRange: model.DateRange{Start: "2026-01-05", End: "2026-01-05"},
		Constraints: []model.Constraint{
			shiftConstraint("e1", "2026-01-05", "8-16"),
		},
	}

	v := New(employees)
	violations := v.Validate(input)

	found := false
	for _, vio := range violations {
		if vio.Rule == "H11" {
			found = true
		}
	}
	if !found {
		t.Error("expected an H11 violation when a leader works alone with no support")
	}
}

// TestValidate_LeaderAloneLegacyNoRoleTags covers the un-roled roster
// path (anyRoleTags == false, leader identified by the name fallback):
// the leader's own shift must not count as its own support.
func TestValidate_LeaderAloneLegacyNoRoleTags(t *testing.T) {
	employees := []model.Employee{
		{ID: "e1", Name: "Maria Pankowska", AllowedShifts: []string{"8-16"}},
	}
	input := &model.SolverInput{
		Employees: employees,
		DateRange: model.DateRange{Start: "2026-01-05", End: "2026-01-05"},
		Constraints: []model.Constraint{
			shiftConstraint("e1", "2026-01-05", "8-16"),
		},
	}

	v := New(employees)
	violations := v.Validate(input)

	found := false
	for _, vio := range violations {
		if vio.Rule == "H11" {
			found = true
		}
	}
	if !found {
		t.Error("expected an H11 violation: the legacy leader's own shift must not count as its own support")
	}
}
