// Package base provides the embeddable scaffolding shared by every hard
// and soft rule implementation: name, type, category and weight
// bookkeeping, plus a violation constructor.
package base

import (
	"github.com/Hadrian1992/HarmonogramMaster/pkg/scheduler/constraint"
)

// Rule is embedded by every concrete hard/soft rule. It supplies the
// constraint.Rule identity methods so each rule file need only
// implement Evaluate and EvaluateAssignment.
type Rule struct {
	RuleName     string
	RuleType     constraint.Type
	RuleCategory constraint.Category
	RuleWeight   int
}

// New builds a base rule with the given identity and weight.
func New(name string, typ constraint.Type, cat constraint.Category, weight int) Rule {
	return Rule{RuleName: name, RuleType: typ, RuleCategory: cat, RuleWeight: weight}
}

func (r Rule) Name() string                 { return r.RuleName }
func (r Rule) Type() constraint.Type        { return r.RuleType }
func (r Rule) Category() constraint.Category { return r.RuleCategory }
func (r Rule) Weight() int                  { return r.RuleWeight }

// Violation builds a violation record tagged with this rule's name and
// a severity derived from its category.
func (r Rule) Violation(employeeID, date, message string, penalty int) constraint.Violation {
	severity := "warning"
	if r.RuleCategory == constraint.CategoryHard {
		severity = "error"
	}
	return constraint.Violation{
		Rule:       r.RuleName,
		EmployeeID: employeeID,
		Date:       date,
		Message:    message,
		Severity:   severity,
		Penalty:    penalty,
	}
}
