// Package constraint defines the rule interface and evaluation context
// shared by the hard (H1-H11) and soft (S1-S6) rule packages, and by the
// search driver that evaluates candidate schedules against them.
package constraint

import (
	"github.com/Hadrian1992/HarmonogramMaster/pkg/model"
)

// Type identifies a rule by its spec tag (H1, H2, ..., S1, S6, ...).
type Type string

// Category distinguishes rules that must hold (Hard) from rules that
// only contribute a penalty (Soft).
type Category string

const (
	CategoryHard Category = "hard"
	CategorySoft Category = "soft"
)

// Assignment is one (employee, date, shift) triple in a candidate
// schedule — the realized value of a decision variable x[e,d,s] = 1.
type Assignment struct {
	EmployeeID string
	Date       string
	ShiftID    string
}

// Rule is satisfied by every hard and soft rule implementation.
// Evaluate walks the full current schedule; EvaluateAssignment checks
// only the marginal effect of adding a single assignment, used by the
// constructive builder to keep every candidate hard-feasible online.
type Rule interface {
	Name() string
	Type() Type
	Category() Category
	Weight() int
	Evaluate(ctx *Context) (valid bool, penalty int, violations []Violation)
	EvaluateAssignment(ctx *Context, a Assignment) (valid bool, penalty int)
}

// Violation is a single rule breach, shaped to serialize directly as a
// validator output record (spec §4.5/§6).
type Violation struct {
	Rule       string `json:"rule"`
	EmployeeID string `json:"employee,omitempty"`
	Date       string `json:"date,omitempty"`
	Message    string `json:"message"`
	Severity   string `json:"severity,omitempty"`
	Penalty    int    `json:"-"`
}

// Context is the evaluation context passed to every rule: the static
// roster/constraint/demand input, plus the candidate schedule being
// built or evaluated.
type Context struct {
	Employees        []model.Employee
	EmployeeRoles    bool // AnyRoleTagsPresent(Employees), cached
	Constraints      []model.Constraint
	Horizon          model.DateRange
	Demand           map[string]int
	History          map[string]model.ShiftType // employeeID -> day-before-horizon shift
	HistoryKnown     map[string]bool

	Assignments []Assignment

	shiftTypeCache    map[string]model.ShiftType
	employeeIndex     map[string]*model.Employee
	byEmployee        map[string][]Assignment
	byDate            map[string][]Assignment
	byEmployeeAndDate map[string]Assignment // key: employeeID+"|"+date
}

// NewContext builds an empty evaluation context for the given input
// shape. Assignments are added afterward via SetAssignments/AddAssignment.
func NewContext(employees []model.Employee, constraints []model.Constraint, horizon model.DateRange, demand map[string]int) *Context {
	ctx := &Context{
		Employees:      employees,
		EmployeeRoles:  model.AnyRoleTagsPresent(employees),
		Constraints:    constraints,
		Horizon:        horizon,
		Demand:         demand,
		History:        make(map[string]model.ShiftType),
		HistoryKnown:   make(map[string]bool),
		shiftTypeCache: make(map[string]model.ShiftType),
		employeeIndex:  make(map[string]*model.Employee, len(employees)),
	}
	for i := range employees {
		ctx.employeeIndex[employees[i].ID] = &employees[i]
	}
	ctx.rebuildIndexes()
	return ctx
}

// SetHistory records the day-before-horizon shift for an employee, if
// known (spec §4.2 H2 first-day check).
func (c *Context) SetHistory(employeeID string, st model.ShiftType) {
	c.History[employeeID] = st
	c.HistoryKnown[employeeID] = true
}

// GetEmployee looks up an employee by id.
func (c *Context) GetEmployee(id string) *model.Employee {
	return c.employeeIndex[id]
}

// ShiftType parses and memoizes a shift id.
func (c *Context) ShiftType(id string) (model.ShiftType, error) {
	if st, ok := c.shiftTypeCache[id]; ok {
		return st, nil
	}
	st, err := model.ParseShiftType(id)
	if err != nil {
		return st, err
	}
	c.shiftTypeCache[id] = st
	return st, nil
}

// SetAssignments replaces the full candidate schedule.
func (c *Context) SetAssignments(assignments []Assignment) {
	c.Assignments = assignments
	c.rebuildIndexes()
}

// AddAssignment appends a single assignment and updates indexes.
func (c *Context) AddAssignment(a Assignment) {
	c.Assignments = append(c.Assignments, a)
	c.byEmployee[a.EmployeeID] = append(c.byEmployee[a.EmployeeID], a)
	c.byDate[a.Date] = append(c.byDate[a.Date], a)
	c.byEmployeeAndDate[a.EmployeeID+"|"+a.Date] = a
}

func (c *Context) rebuildIndexes() {
	c.byEmployee = make(map[string][]Assignment)
	c.byDate = make(map[string][]Assignment)
	c.byEmployeeAndDate = make(map[string]Assignment)
	for _, a := range c.Assignments {
		c.byEmployee[a.EmployeeID] = append(c.byEmployee[a.EmployeeID], a)
		c.byDate[a.Date] = append(c.byDate[a.Date], a)
		c.byEmployeeAndDate[a.EmployeeID+"|"+a.Date] = a
	}
}

// EmployeeAssignments returns every assignment for an employee.
func (c *Context) EmployeeAssignments(employeeID string) []Assignment {
	return c.byEmployee[employeeID]
}

// DateAssignments returns every assignment on a date.
func (c *Context) DateAssignments(date string) []Assignment {
	return c.byDate[date]
}

// AssignmentOn returns the (single) assignment for an employee on a
// date, if any — H1 guarantees at most one.
func (c *Context) AssignmentOn(employeeID, date string) (Assignment, bool) {
	a, ok := c.byEmployeeAndDate[employeeID+"|"+date]
	return a, ok
}

// WorksOn reports whether the employee has any assignment on date.
func (c *Context) WorksOn(employeeID, date string) bool {
	_, ok := c.byEmployeeAndDate[employeeID+"|"+date]
	return ok
}

// HoursInRange sums worked hours for an employee across an inclusive
// date range (both bounds YYYY-MM-DD, compared lexically which is
// correct for that format).
func (c *Context) HoursInRange(employeeID, start, end string) float64 {
	var total float64
	for _, a := range c.byEmployee[employeeID] {
		if a.Date < start || a.Date > end {
			continue
		}
		if st, err := c.ShiftType(a.ShiftID); err == nil && st.Kind == model.KindWork {
			total += st.Hours
		}
	}
	return total
}

// Result aggregates a full-schedule Evaluate() pass across every
// registered rule.
type Result struct {
	IsValid        bool
	TotalPenalty   int
	HardViolations []Violation
	SoftViolations []Violation
	Score          float64
}

// CalculateScore derives a 0-100 satisfaction score from the total
// penalty relative to the largest penalty this schedule could have
// accrued.
func (r *Result) CalculateScore(maxPenalty int) {
	if maxPenalty <= 0 {
		r.Score = 100
		return
	}
	r.Score = 100 * float64(maxPenalty-r.TotalPenalty) / float64(maxPenalty)
	if r.Score < 0 {
		r.Score = 0
	}
}
