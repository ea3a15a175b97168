package constraint

import (
	"testing"

	"github.com/Hadrian1992/HarmonogramMaster/pkg/model"
)

type mockRule struct {
	name     string
	typ      Type
	category Category
	weight   int
	pass     bool
	penalty  int
}

func (m *mockRule) Name() string     { return m.name }
func (m *mockRule) Type() Type       { return m.typ }
func (m *mockRule) Category() Category { return m.category }
func (m *mockRule) Weight() int {
	if m.weight == 0 {
		return 100
	}
	return m.weight
}

func (m *mockRule) Evaluate(ctx *Context) (bool, int, []Violation) {
	if m.pass {
		return true, 0, nil
	}
	return false, m.penalty, []Violation{{Rule: m.name, Message: "mock violation", Penalty: m.penalty}}
}

func (m *mockRule) EvaluateAssignment(ctx *Context, a Assignment) (bool, int) {
	return m.pass, m.penalty
}

func TestManagerRegister(t *testing.T) {
	m := NewManager()
	m.Register(&mockRule{name: "test", typ: "test_type", category: CategoryHard})
	if got := len(m.GetAll()); got != 1 {
		t.Errorf("expected 1 rule, got %d", got)
	}
}

func TestManagerGetByCategory(t *testing.T) {
	m := NewManager()
	m.Register(&mockRule{name: "hard1", typ: "hard1", category: CategoryHard})
	m.Register(&mockRule{name: "soft1", typ: "soft1", category: CategorySoft})

	if got := len(m.GetByCategory(CategoryHard)); got != 1 {
		t.Errorf("expected 1 hard rule, got %d", got)
	}
	if got := len(m.GetByCategory(CategorySoft)); got != 1 {
		t.Errorf("expected 1 soft rule, got %d", got)
	}
}

func TestManagerEvaluate(t *testing.T) {
	m := NewManager()
	m.Register(&mockRule{name: "pass", typ: "pass_type", category: CategoryHard, pass: true})

	ctx := NewContext(nil, nil, model.DateRange{Start: "2026-01-11", End: "2026-01-17"}, nil)
	result := m.Evaluate(ctx)
	if result.TotalPenalty != 0 {
		t.Errorf("expected 0 penalty, got %d", result.TotalPenalty)
	}
	if !result.IsValid {
		t.Error("expected valid result")
	}
}

func TestManagerRegisterReplacesSameType(t *testing.T) {
	m := NewManager()
	m.Register(&mockRule{name: "v1", typ: "same", category: CategoryHard, weight: 10})
	m.Register(&mockRule{name: "v2", typ: "same", category: CategoryHard, weight: 20})

	all := m.GetAll()
	if len(all) != 1 {
		t.Fatalf("expected 1 rule after replace, got %d", len(all))
	}
	if all[0].Name() != "v2" {
		t.Errorf("expected replaced rule v2, got %s", all[0].Name())
	}
}

func TestManagerClear(t *testing.T) {
	m := NewManager()
	m.Register(&mockRule{name: "test", typ: "test", category: CategoryHard})
	m.Clear()
	if len(m.GetAll()) != 0 {
		t.Error("expected 0 rules after clear")
	}
}

func TestManagerCount(t *testing.T) {
	m := NewManager()
	if m.Count() != 0 {
		t.Error("expected 0 count for empty manager")
	}
	m.Register(&mockRule{name: "c1", typ: "c1", category: CategoryHard})
	m.Register(&mockRule{name: "c2", typ: "c2", category: CategorySoft})
	if m.Count() != 2 {
		t.Errorf("expected 2 count, got %d", m.Count())
	}
}
