package constraint

import (
	"fmt"
	"sort"
	"sync"

	"github.com/Hadrian1992/HarmonogramMaster/pkg/logger"
)

// Manager holds every registered rule and drives full-schedule or
// single-assignment evaluation against them.
type Manager struct {
	rules  []Rule
	mu     sync.RWMutex
	logger *logger.SchedulerLogger
}

// NewManager creates an empty rule manager.
func NewManager() *Manager {
	return &Manager{
		rules:  make([]Rule, 0),
		logger: logger.NewSchedulerLogger(),
	}
}

// Register adds a rule, replacing any existing rule of the same Type.
// Hard rules sort ahead of soft rules; within a category, higher
// weight sorts first.
func (m *Manager) Register(r Rule) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, existing := range m.rules {
		if existing.Type() == r.Type() {
			m.rules[i] = r
			return
		}
	}
	m.rules = append(m.rules, r)

	sort.Slice(m.rules, func(i, j int) bool {
		a, b := m.rules[i], m.rules[j]
		if a.Category() != b.Category() {
			return a.Category() == CategoryHard
		}
		return a.Weight() > b.Weight()
	})
}

// GetAll returns a defensive copy of the registered rules.
func (m *Manager) GetAll() []Rule {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]Rule, len(m.rules))
	copy(out, m.rules)
	return out
}

// GetByCategory filters registered rules by category.
func (m *Manager) GetByCategory(cat Category) []Rule {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []Rule
	for _, r := range m.rules {
		if r.Category() == cat {
			out = append(out, r)
		}
	}
	return out
}

// Clear removes every registered rule.
func (m *Manager) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rules = make([]Rule, 0)
}

// Count returns the number of registered rules.
func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.rules)
}

// Evaluate runs every registered rule against the full schedule in ctx.
func (m *Manager) Evaluate(ctx *Context) *Result {
	m.mu.RLock()
	rules := make([]Rule, len(m.rules))
	copy(rules, m.rules)
	m.mu.RUnlock()

	result := &Result{IsValid: true}
	maxPenalty := 0

	for _, r := range rules {
		valid, penalty, violations := r.Evaluate(ctx)
		maxPenalty += r.Weight() * 100

		if !valid || penalty > 0 {
			result.TotalPenalty += penalty
			for _, v := range violations {
				if r.Category() == CategoryHard {
					result.IsValid = false
					result.HardViolations = append(result.HardViolations, v)
					m.logger.ConstraintViolation(r.Name(), v.Message)
				} else {
					result.SoftViolations = append(result.SoftViolations, v)
				}
			}
		}
	}

	result.CalculateScore(maxPenalty)
	return result
}

// CanAssign checks only the hard rules' marginal effect of adding a.
// Used by the constructive builder to keep every candidate feasible.
func (m *Manager) CanAssign(ctx *Context, a Assignment) (bool, string) {
	for _, r := range m.GetByCategory(CategoryHard) {
		if valid, _ := r.EvaluateAssignment(ctx, a); !valid {
			return false, fmt.Sprintf("violates hard rule: %s", r.Name())
		}
	}
	return true, ""
}

// Penalty computes the marginal soft penalty of adding a, summed
// across every registered soft rule.
func (m *Manager) Penalty(ctx *Context, a Assignment) int {
	total := 0
	for _, r := range m.GetByCategory(CategorySoft) {
		_, p := r.EvaluateAssignment(ctx, a)
		total += p
	}
	return total
}
