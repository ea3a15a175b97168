// Package validator implements the stateless schedule checker: given
// an already-assigned schedule (encoded as SHIFT/FIXED/FIXED_SHIFT
// constraints), it walks the rule subset that makes sense without a
// search session and reports structured violations.
package validator

import (
	"fmt"
	"sort"

	"github.com/Hadrian1992/HarmonogramMaster/pkg/model"
)

// Violation is one rule breach, serialized directly as a validator
// output record.
type Violation struct {
	Rule       string `json:"rule"`
	EmployeeID string `json:"employee,omitempty"`
	Date       string `json:"date,omitempty"`
	Message    string `json:"message"`
}

// Validator walks an assigned schedule for "11h Rest" (pairwise, no history),
// H8 (coverage zones), H4 (max 5 consecutive, with counter reset),
// H10 (leader restrictions) and a weakened H11 (support count > 0).
type Validator struct {
	employees     []model.Employee
	employeeIndex map[string]*model.Employee
	anyRoleTags   bool
}

// New builds a Validator over the given roster.
func New(employees []model.Employee) *Validator {
	v := &Validator{
		employees:     employees,
		employeeIndex: make(map[string]*model.Employee, len(employees)),
		anyRoleTags:   model.AnyRoleTagsPresent(employees),
	}
	for i := range employees {
		v.employeeIndex[employees[i].ID] = &employees[i]
	}
	return v
}

// schedule is the per-employee, per-date shift assignment extracted
// from the input's SHIFT/FIXED/FIXED_SHIFT constraints.
type schedule struct {
	byEmployeeDate map[string]string   // employeeID|date -> shiftID
	datesByEmp     map[string][]string // employeeID -> sorted dates with an assignment
}

func buildSchedule(constraints []model.Constraint) *schedule {
	s := &schedule{
		byEmployeeDate: make(map[string]string),
		datesByEmp:     make(map[string][]string),
	}
	for _, c := range constraints {
		if !c.Kind.IsFixedShift() || c.EmployeeID == "" || c.Date == "" || c.Value == "" {
			continue
		}
		key := c.EmployeeID + "|" + c.Date
		s.byEmployeeDate[key] = c.Value
		s.datesByEmp[c.EmployeeID] = append(s.datesByEmp[c.EmployeeID], c.Date)
	}
	for emp := range s.datesByEmp {
		sort.Strings(s.datesByEmp[emp])
	}
	return s
}

func (s *schedule) shiftOn(employeeID, date string) (string, bool) {
	id, ok := s.byEmployeeDate[employeeID+"|"+date]
	return id, ok
}

// Validate walks input's encoded schedule across its date range and
// returns every violation found. Parse failures on an individual
// shift id are skipped rather than aborting the whole pass — a
// malformed single cell should not hide every other finding.
func (v *Validator) Validate(input *model.SolverInput) []Violation {
	sched := buildSchedule(input.Constraints)
	dates := input.DateList()

	var violations []Violation
	violations = append(violations, v.checkDailyRest(sched, dates)...)
	violations = append(violations, v.checkCoverageZones(sched, dates)...)
	violations = append(violations, v.checkMaxConsecutive(sched, dates)...)
	violations = append(violations, v.checkLeaderRestrictions(sched, dates)...)
	violations = append(violations, v.checkLeaderSupport(sched, dates)...)
	return violations
}

// checkDailyRest is H2, pairwise consecutive days only — the
// validator receives no history input by contract, so the first
// horizon day is never checked against a day −1 shift.
func (v *Validator) checkDailyRest(sched *schedule, dates []string) []Violation {
	var out []Violation
	for _, emp := range v.employees {
		for i := 0; i < len(dates)-1; i++ {
			curID, ok1 := sched.shiftOn(emp.ID, dates[i])
			nextID, ok2 := sched.shiftOn(emp.ID, dates[i+1])
			if !ok1 || !ok2 {
				continue
			}
			curSt, err1 := model.ParseShiftType(curID)
			nextSt, err2 := model.ParseShiftType(nextID)
			if err1 != nil || err2 != nil || curSt.Kind != model.KindWork || nextSt.Kind != model.KindWork {
				continue
			}
			if gap := model.Gap(curSt, nextSt); gap < 11 {
				out = append(out, Violation{
					Rule:       "11h Rest",
					EmployeeID: emp.ID,
					Date:       dates[i+1],
					Message:    fmt.Sprintf("only %.1fh rest between %s and %s", gap, dates[i], dates[i+1]),
				})
			}
		}
	}
	return out
}

// checkCoverageZones is H8.
func (v *Validator) checkCoverageZones(sched *schedule, dates []string) []Violation {
	var out []Violation
	for _, d := range dates {
		var morning, afternoon, night bool
		for _, emp := range v.employees {
			id, ok := sched.shiftOn(emp.ID, d)
			if !ok {
				continue
			}
			st, err := model.ParseShiftType(id)
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
				out = append(out, Violation{Rule: "H8", Date: d, Message: fmt.Sprintf("no employee covers the %s zone on %s", z.name, d)})
			}
		}
	}
	return out
}

// checkMaxConsecutive is H4, walked as a running streak counter (not a
// sliding window): the counter resets to zero immediately after
// emitting a violation, so the 6th, 7th, ... day of an unbroken streak
// is not separately reported — only the day the streak first exceeds
// five is.
func (v *Validator) checkMaxConsecutive(sched *schedule, dates []string) []Violation {
	var out []Violation
	for _, emp := range v.employees {
		streak := 0
		streakStart := ""
		for _, d := range dates {
			if id, ok := sched.shiftOn(emp.ID, d); ok {
				if st, err := model.ParseShiftType(id); err == nil && st.Kind != model.KindWork {
					streak = 0
					continue
				}
				if streak == 0 {
					streakStart = d
				}
				streak++
				if streak > 5 {
					out = append(out, Violation{
						Rule:       "H4",
						EmployeeID: emp.ID,
						Date:       d,
						Message:    fmt.Sprintf("employee %s works more than 5 consecutive days starting %s", emp.ID, streakStart),
					})
					streak = 0
				}
			} else {
				streak = 0
			}
		}
	}
	return out
}

// checkLeaderRestrictions is H10.
func (v *Validator) checkLeaderRestrictions(sched *schedule, dates []string) []Violation {
	var out []Violation
	for _, emp := range v.employees {
		if !emp.IsLeader(v.anyRoleTags) {
			continue
		}
		for _, d := range dates {
			id, ok := sched.shiftOn(emp.ID, d)
			if !ok {
				continue
			}
			st, err := model.ParseShiftType(id)
			if err != nil || st.Kind != model.KindWork {
				continue
			}
			if model.IsWeekend(d) {
				out = append(out, Violation{Rule: "H10", EmployeeID: emp.ID, Date: d, Message: fmt.Sprintf("leader %s may not work weekends", emp.ID)})
				continue
			}
			if st.Start < 8 {
				out = append(out, Violation{Rule: "H10", EmployeeID: emp.ID, Date: d, Message: fmt.Sprintf("leader %s may not start before 8:00", emp.ID)})
				continue
			}
			if st.End > 20 || st.Night {
				out = append(out, Violation{Rule: "H10", EmployeeID: emp.ID, Date: d, Message: fmt.Sprintf("leader %s may not work past 20:00 or a night shift", emp.ID)})
			}
		}
	}
	return out
}

// checkLeaderSupport is the weakened H11: support count > 0 on the
// date regardless of role/time, since the validator has no
// construction-time opportunity to reject an un-roled roster and must
// tolerate the legacy data shape (no WYCHOWAWCA tag at all) noted in
// spec §9.
func (v *Validator) checkLeaderSupport(sched *schedule, dates []string) []Violation {
	var out []Violation
	for _, d := range dates {
		leaderWorks := false
		leaderID := ""
		for _, emp := range v.employees {
			if !emp.IsLeader(v.anyRoleTags) {
				continue
			}
			if id, ok := sched.shiftOn(emp.ID, d); ok {
				if st, err := model.ParseShiftType(id); err == nil && st.IsLeaderDayShift() {
					leaderWorks = true
					leaderID = emp.ID
					break
				}
			}
		}
		if !leaderWorks {
			continue
		}
		supportPresent := 0
		for _, emp := range v.employees {
			if emp.ID == leaderID {
				continue
			}
			if _, ok := sched.shiftOn(emp.ID, d); ok {
				supportPresent++
			}
		}
		if supportPresent == 0 {
			out = append(out, Violation{Rule: "H11", Date: d, Message: fmt.Sprintf("leader works %s with no supporting wychowawca", d)})
		}
	}
	return out
}
