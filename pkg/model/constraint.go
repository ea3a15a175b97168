package model

import "fmt"

// ConstraintKind enumerates the tagged variants of Constraint, per
// spec §3/§9: the original's shared record with optional fields
// collapses here into a fixed set of kind-specific fields instead of a
// single "value" blob.
type ConstraintKind string

const (
	KindAbsence     ConstraintKind = "ABSENCE"
	KindPreference  ConstraintKind = "PREFERENCE"
	KindShift       ConstraintKind = "SHIFT"
	KindFixed       ConstraintKind = "FIXED"
	KindFixedShift  ConstraintKind = "FIXED_SHIFT"
	KindFreeTime    ConstraintKind = "FREE_TIME"
	KindDemand      ConstraintKind = "DEMAND"
	KindCustom      ConstraintKind = "CUSTOM"
)

// IsFixedShift reports whether this kind pins a specific shift, per
// spec §4.2 H5: SHIFT, FIXED and FIXED_SHIFT are synonyms.
func (k ConstraintKind) IsFixedShift() bool {
	return k == KindShift || k == KindFixed || k == KindFixedShift
}

// DateRange is an inclusive (start, end) pair of YYYY-MM-DD dates.
type DateRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// Constraint is the tagged record described in spec §3. EmployeeID,
// Date and Range are optional depending on Kind; Value carries a shift
// id for SHIFT/FIXED/FIXED_SHIFT constraints.
type Constraint struct {
	Kind        ConstraintKind `json:"type"`
	EmployeeID  string         `json:"employeeId,omitempty"`
	Date        string         `json:"date,omitempty"`
	Range       *DateRange     `json:"dateRange,omitempty"`
	Value       string         `json:"value,omitempty"`
	Description string         `json:"description,omitempty"`
	Hard        bool           `json:"isHard,omitempty"`
}

// Validate enforces the construction-time invariants spec §3/§9 call
// out: FREE_TIME requires hard=false and a range; ABSENCE is always
// hard; SHIFT/FIXED/FIXED_SHIFT requires employee, date and value.
func (c *Constraint) Validate() error {
	switch c.Kind {
	case KindFreeTime:
		if c.Hard {
			return fmt.Errorf("model: FREE_TIME constraint must be soft (isHard=false)")
		}
		if c.Range == nil {
			return fmt.Errorf("model: FREE_TIME constraint requires a dateRange")
		}
	case KindAbsence:
		c.Hard = true
		if c.EmployeeID == "" {
			return fmt.Errorf("model: ABSENCE constraint requires employeeId")
		}
		if c.Date == "" && c.Range == nil {
			return fmt.Errorf("model: ABSENCE constraint requires date or dateRange")
		}
	default:
		if c.Kind.IsFixedShift() {
			if c.EmployeeID == "" || c.Date == "" || c.Value == "" {
				return fmt.Errorf("model: %s constraint requires employeeId, date and value", c.Kind)
			}
		}
	}
	return nil
}

// Dates expands a constraint's Date/Range into the concrete list of
// YYYY-MM-DD strings it applies to. A Range is clipped to horizon; a
// single Date is returned as is, even when it lies outside horizon.
func (c *Constraint) Dates(horizon DateRange) []string {
	if c.Date != "" {
		return []string{c.Date}
	}
	if c.Range != nil {
		return ExpandDateRange(clipRange(*c.Range, horizon))
	}
	return nil
}

func clipRange(r, horizon DateRange) DateRange {
	if r.Start < horizon.Start {
		r.Start = horizon.Start
	}
	if r.End > horizon.End {
		r.End = horizon.End
	}
	return r
}
