package hard

import "github.com/Hadrian1992/HarmonogramMaster/pkg/scheduler/constraint"

// All returns every hard rule (H1-H11 plus the 48h weekly cap), in a
// stable order, ready to register with a constraint.Manager.
func All() []constraint.Rule {
	return []constraint.Rule{
		NewOneShiftPerDay(),
		NewDailyRest(),
		NewWeeklyRest(),
		NewMaxConsecutiveDays(),
		NewFixedShift(),
		NewAbsence(),
		NewMinDemand(),
		NewCoverageZones(),
		NewNightPresence(),
		NewLeaderRestrictions(),
		NewLeaderSupport(),
		NewWeekHoursCap(),
	}
}
