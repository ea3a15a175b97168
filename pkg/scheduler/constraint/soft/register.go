package soft

import "github.com/Hadrian1992/HarmonogramMaster/pkg/scheduler/constraint"

// All returns every soft rule (S1-S6), in a stable order, ready to
// register with a constraint.Manager.
func All() []constraint.Rule {
	return []constraint.Rule{
		NewHourBalancing(),
		NewWeekendFairness(),
		NewPreference(),
		NewFreeTime(),
		NewOvertime(),
		NewNightRecovery(),
	}
}
