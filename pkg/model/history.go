package model

// HistoryShift returns the employee's shift on the day immediately
// preceding the planning horizon, if the existing schedule says
// anything about it. Only KindWork and KindContact records carry
// meaningful history; a KindNonWork record (L4, UW, W, ...) is treated
// the same as "no history known" for the H2 rest check, since an
// absence day imposes no rest-gap obligation of its own.
//
// ok is false when nothing is known, in which case spec §4.2/§8 says
// the first-day rest check is skipped silently.
func HistoryShift(existing *ExistingSchedule, employeeID, dayBeforeHorizon string) (st ShiftType, ok bool) {
	if existing == nil {
		return ShiftType{}, false
	}
	for _, es := range existing.Employees {
		if es.ID != employeeID {
			continue
		}
		record, present := es.Shifts[dayBeforeHorizon]
		if !present {
			return ShiftType{}, false
		}
		parsed, err := record.ShiftType()
		if err != nil || parsed.Kind == KindNonWork {
			return ShiftType{}, false
		}
		return parsed, true
	}
	return ShiftType{}, false
}
