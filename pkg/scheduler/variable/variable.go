// Package variable materializes the decision-variable universe the
// search driver works over: every (employee, date, shift) triple the
// constructive builder and local search are allowed to consider.
package variable

import "github.com/Hadrian1992/HarmonogramMaster/pkg/model"

// Variable is one candidate x[employee,date,shift] decision variable.
type Variable struct {
	EmployeeID string
	Date       string
	ShiftID    string
}

// Build materializes every variable permitted by the input: for each
// employee and each horizon date, one variable per shift the employee
// is allowed to work.
func Build(input *model.SolverInput) []Variable {
	dates := input.DateList()
	var out []Variable
	for _, emp := range input.Employees {
		for _, d := range dates {
			for _, shiftID := range emp.AllowedShifts {
				out = append(out, Variable{EmployeeID: emp.ID, Date: d, ShiftID: shiftID})
			}
		}
	}
	return out
}

// ByEmployeeAndDate indexes variables for fast "what can employee e
// work on date d" lookups.
func ByEmployeeAndDate(vars []Variable) map[string][]Variable {
	idx := make(map[string][]Variable)
	for _, v := range vars {
		key := v.EmployeeID + "|" + v.Date
		idx[key] = append(idx[key], v)
	}
	return idx
}

// ByEmployee indexes variables by employee id only.
func ByEmployee(vars []Variable) map[string][]Variable {
	idx := make(map[string][]Variable)
	for _, v := range vars {
		idx[v.EmployeeID] = append(idx[v.EmployeeID], v)
	}
	return idx
}
