package hard

import (
	"fmt"

	"github.com/Hadrian1992/HarmonogramMaster/pkg/model"
	"github.com/Hadrian1992/HarmonogramMaster/pkg/scheduler/constraint"
	"github.com/Hadrian1992/HarmonogramMaster/pkg/scheduler/constraint/base"
)

// CoverageZones is H8: every day needs at least one employee in each
// of the morning, afternoon and night coverage zones.
type CoverageZones struct {
	base.Rule
}

// NewCoverageZones builds H8.
func NewCoverageZones() *CoverageZones {
	return &CoverageZones{base.New("coverage-zones", "H8", constraint.CategoryHard, 100)}
}

// Evaluate checks every horizon date for all three zones.
func (r *CoverageZones) Evaluate(ctx *constraint.Context) (bool, int, []constraint.Violation) {
	valid := true
	penalty := 0
	var violations []constraint.Violation

	for _, d := range model.ExpandDateRange(ctx.Horizon) {
		var morning, afternoon, night bool
		for _, a := range ctx.DateAssignments(d) {
			st, err := ctx.ShiftType(a.ShiftID)
			if err != nil {
				continue
			}
			morning = morning || st.InMorningZone()
			afternoon = afternoon || st.InAfternoonZone()
			night = night || st.InNightZone()
		}
		zones := []struct {
			name    string
			covered bool
		}{
			{"morning", morning},
			{"afternoon", afternoon},
			{"night", night},
		}
		for _, z := range zones {
			if !z.covered {
				valid = false
				penalty += r.Weight()
				violations = append(violations, r.Violation("", d,
					fmt.Sprintf("no employee covers the %s zone on %s", z.name, d), r.Weight()))
			}
		}
	}
	return valid, penalty, violations
}

// EvaluateAssignment never rejects: adding coverage can only help.
func (r *CoverageZones) EvaluateAssignment(ctx *constraint.Context, a constraint.Assignment) (bool, int) {
	return true, 0
}
