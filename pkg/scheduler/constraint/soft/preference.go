package soft

import (
	"github.com/Hadrian1992/HarmonogramMaster/pkg/scheduler/constraint"
	"github.com/Hadrian1992/HarmonogramMaster/pkg/scheduler/constraint/base"
)

// Preference is S3: currently a no-op hook over soft PREFERENCE
// constraints, left as a deliberate zero-penalty placeholder pending
// future extension (see the decision recorded for this rule).
type Preference struct {
	base.Rule
}

// NewPreference builds S3.
func NewPreference() *Preference {
	return &Preference{base.New("employee-preference", "S3", constraint.CategorySoft, 3)}
}

// Evaluate always returns zero contribution.
func (r *Preference) Evaluate(ctx *constraint.Context) (bool, int, []constraint.Violation) {
	return true, 0, nil
}

// EvaluateAssignment always returns zero contribution.
func (r *Preference) EvaluateAssignment(ctx *constraint.Context, a constraint.Assignment) (bool, int) {
	return true, 0
}
