package model

import (
	"encoding/json"
	"fmt"
	"time"
)

// ShiftRecord is the tagged union spec §9 calls for: an existingSchedule
// entry is either a bare shift-id string or an object carrying type,
// startHour and endHour explicitly. Both fold into a ShiftType.
type ShiftRecord struct {
	raw string
}

// UnmarshalJSON accepts either a JSON string or a
// {"type","startHour","endHour"} object.
func (r *ShiftRecord) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		r.raw = s
		return nil
	}

	var obj struct {
		Type      string `json:"type"`
		StartHour *int   `json:"startHour"`
		EndHour   *int   `json:"endHour"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return fmt.Errorf("model: shift-record must be a string or an object: %w", err)
	}
	if obj.Type != "WORK" || obj.StartHour == nil || obj.EndHour == nil {
		// Any other type value (L4, UW, W, ...) is non-working; encode it
		// directly as its own code so ShiftType() resolves to KindNonWork.
		if obj.Type != "" && obj.Type != "WORK" {
			r.raw = obj.Type
			return nil
		}
		return fmt.Errorf("model: WORK shift-record object requires startHour and endHour")
	}
	r.raw = fmt.Sprintf("%d-%d", *obj.StartHour, *obj.EndHour)
	return nil
}

// ShiftType resolves the tagged record into a parsed ShiftType.
func (r ShiftRecord) ShiftType() (ShiftType, error) {
	return ParseShiftType(r.raw)
}

// EmployeeSchedule is one employee's slice of existingSchedule: a map
// from date to shift-record.
type EmployeeSchedule struct {
	ID     string                 `json:"id"`
	Shifts map[string]ShiftRecord `json:"shifts"`
}

// ExistingSchedule carries the prior schedule used for history
// extraction, keyed by employee.
type ExistingSchedule struct {
	Employees []EmployeeSchedule `json:"employees"`
}

// SolverInput is the full payload both CLIs accept on stdin, per
// spec §6. Demand maps YYYY-MM-DD to a minimum headcount.
type SolverInput struct {
	Employees        []Employee        `json:"employees" validate:"required,dive"`
	Constraints      []Constraint      `json:"constraints"`
	DateRange        DateRange         `json:"dateRange" validate:"required"`
	Demand           map[string]int    `json:"demand,omitempty"`
	ExistingSchedule *ExistingSchedule `json:"existingSchedule,omitempty"`
}

// Validate enforces the SolverInput invariants from spec §3: every
// constraint's employee id, if set, must exist; every demand date must
// lie within the range; the range itself must not be inverted.
func (in *SolverInput) Validate() error {
	if in.DateRange.Start == "" || in.DateRange.End == "" {
		return fmt.Errorf("model: dateRange.start and dateRange.end are required")
	}
	if in.DateRange.Start > in.DateRange.End {
		return fmt.Errorf("model: dateRange is inverted: start %s is after end %s", in.DateRange.Start, in.DateRange.End)
	}

	known := make(map[string]bool, len(in.Employees))
	for _, e := range in.Employees {
		known[e.ID] = true
	}
	for i, c := range in.Constraints {
		if c.EmployeeID != "" && !known[c.EmployeeID] {
			return fmt.Errorf("model: constraints[%d]: unknown employeeId %q", i, c.EmployeeID)
		}
		if err := c.Validate(); err != nil {
			return fmt.Errorf("model: constraints[%d]: %w", i, err)
		}
	}
	for date := range in.Demand {
		if date < in.DateRange.Start || date > in.DateRange.End {
			return fmt.Errorf("model: demand date %q lies outside dateRange", date)
		}
	}
	return nil
}

// DateList returns every YYYY-MM-DD date in the inclusive horizon.
func (in *SolverInput) DateList() []string {
	return ExpandDateRange(in.DateRange)
}

// ExpandDateRange enumerates every date in an inclusive range.
func ExpandDateRange(r DateRange) []string {
	start, err := time.Parse("2006-01-02", r.Start)
	if err != nil {
		return nil
	}
	end, err := time.Parse("2006-01-02", r.End)
	if err != nil {
		return nil
	}
	var out []string
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		out = append(out, d.Format("2006-01-02"))
	}
	return out
}

// PreviousDate returns the calendar day before date.
func PreviousDate(date string) string {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return ""
	}
	return t.AddDate(0, 0, -1).Format("2006-01-02")
}

// NextDate returns the calendar day after date.
func NextDate(date string) string {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return ""
	}
	return t.AddDate(0, 0, 1).Format("2006-01-02")
}

// Weekday returns the time.Weekday for a YYYY-MM-DD date, or -1 if the
// date cannot be parsed.
func Weekday(date string) time.Weekday {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return -1
	}
	return t.Weekday()
}

// IsWeekend reports Saturday/Sunday for a YYYY-MM-DD date.
func IsWeekend(date string) bool {
	w := Weekday(date)
	return w == time.Saturday || w == time.Sunday
}

// ISOWeek identifies an (iso_year, iso_week_number) pair per spec's
// GLOSSARY definition of ISO week.
type ISOWeek struct {
	Year int
	Week int
}

// ISOWeekOf returns the ISO week containing date.
func ISOWeekOf(date string) ISOWeek {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return ISOWeek{}
	}
	y, w := t.ISOWeek()
	return ISOWeek{Year: y, Week: w}
}

// GroupDatesByISOWeek buckets a date list by ISO calendar week,
// preserving the order weeks are first encountered.
func GroupDatesByISOWeek(dates []string) []struct {
	Week  ISOWeek
	Dates []string
} {
	index := make(map[ISOWeek]int)
	var groups []struct {
		Week  ISOWeek
		Dates []string
	}
	for _, d := range dates {
		wk := ISOWeekOf(d)
		if i, ok := index[wk]; ok {
			groups[i].Dates = append(groups[i].Dates, d)
			continue
		}
		index[wk] = len(groups)
		groups = append(groups, struct {
			Week  ISOWeek
			Dates []string
		}{Week: wk, Dates: []string{d}})
	}
	return groups
}

// SolverStatus is the outcome discriminant of a scheduler run.
type SolverStatus string

const (
	StatusSuccess SolverStatus = "SUCCESS"
	StatusFailed  SolverStatus = "FAILED"
	StatusTimeout SolverStatus = "TIMEOUT"
)

// SolveStats mirrors the spec §6 stats envelope.
type SolveStats struct {
	SolveTimeSeconds float64 `json:"solve_time"`
	Status           string  `json:"status"` // OPTIMAL/FEASIBLE/INFEASIBLE/...
	ObjectiveValue   int     `json:"objective_value"`
	NumConflicts     int     `json:"num_conflicts"`
	NumBranches      int     `json:"num_branches"`
}

// SolverOutput is the scheduler's stdout payload, per spec §6.
type SolverOutput struct {
	Status     SolverStatus        `json:"status"`
	Schedule   map[string]map[string]string `json:"schedule"`
	Stats      SolveStats          `json:"stats"`
	Violations []string            `json:"violations,omitempty"`
	Error      *string             `json:"error"`
}
