// Package model defines the core domain value types shared by the scheduler
// and the validator: shift types, employees, constraints and the solver's
// input/output envelopes.
package model

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind distinguishes the three ways a shift string can resolve.
type Kind string

const (
	// KindWork is an ordinary worked shift with a start and end hour.
	KindWork Kind = "WORK"
	// KindContact is a "K"-prefixed history code: worked N hours with no
	// fixed boundaries. Only ever seen in existingSchedule history entries.
	KindContact Kind = "CONTACT"
	// KindNonWork is an absence/off code: L4, UW, W, NN, WYCH, ...
	KindNonWork Kind = "NONWORK"
)

// nonWorkCodes are the reserved absence/off markers from spec §3/§6.
// The raw code is kept on the parsed ShiftType for validator diagnostics.
var nonWorkCodes = map[string]bool{
	"W": true, "L4": true, "UW": true, "UZ": true, "UM": true,
	"UB": true, "OP": true, "NN": true, "WYCH": true, "USW": true,
}

// ShiftType is a named contiguous interval (start_hour, end_hour). It
// crosses midnight iff start > end, in which case it is necessarily a
// night shift.
type ShiftType struct {
	ID    string // the original string this was parsed from, e.g. "14-22"
	Kind  Kind
	Start int // hour in [0,24], meaningful only when Kind == KindWork
	End   int
	Hours float64
	Night bool
}

// ParseShiftType parses a shift id. Work shifts are "START-END" with
// integer hours in [0,24]; contact-hour history codes are "K<N>"; the
// fixed set of absence/off codes parse as non-working.
func ParseShiftType(id string) (ShiftType, error) {
	if nonWorkCodes[id] {
		return ShiftType{ID: id, Kind: KindNonWork}, nil
	}
	if strings.HasPrefix(id, "K") && len(id) > 1 {
		if n, err := strconv.Atoi(id[1:]); err == nil {
			return ShiftType{ID: id, Kind: KindContact, Hours: float64(n)}, nil
		}
	}

	parts := strings.SplitN(id, "-", 2)
	if len(parts) != 2 {
		return ShiftType{}, fmt.Errorf("model: invalid shift id %q: expected START-END", id)
	}
	start, err := strconv.Atoi(parts[0])
	if err != nil {
		return ShiftType{}, fmt.Errorf("model: invalid shift id %q: bad start hour: %w", id, err)
	}
	end, err := strconv.Atoi(parts[1])
	if err != nil {
		return ShiftType{}, fmt.Errorf("model: invalid shift id %q: bad end hour: %w", id, err)
	}
	if start < 0 || start > 24 || end < 0 || end > 24 {
		return ShiftType{}, fmt.Errorf("model: invalid shift id %q: hours must be in [0,24]", id)
	}

	st := ShiftType{ID: id, Kind: KindWork, Start: start, End: end}
	switch {
	case start < end:
		st.Hours = float64(end - start)
	case start > end:
		st.Hours = float64((24 - start) + end)
		st.Night = true
	default:
		// start == end: a full 24h shift, treated as a day shift of 24 hours.
		st.Hours = 24
	}
	if start >= 19 || end <= 8 {
		st.Night = true
	}
	return st, nil
}

// MustParseShiftType panics on a malformed id; only used for literal
// shift ids known at construction time (e.g. from seed fixtures/tests).
func MustParseShiftType(id string) ShiftType {
	st, err := ParseShiftType(id)
	if err != nil {
		panic(err)
	}
	return st
}

// CrossesMidnight reports whether the shift's end hour is on the
// following calendar day.
func (s ShiftType) CrossesMidnight() bool {
	return s.Kind == KindWork && s.Start > s.End
}

// Gap returns the rest gap in hours between the end of prev and the
// start of next, per spec §4.2 H2: if prev crosses midnight the gap is
// measured directly from prev's end hour to next's start hour;
// otherwise it is the hours remaining in prev's day plus next's start
// hour. Only meaningful when both are worked shifts.
func Gap(prev, next ShiftType) float64 {
	if prev.Kind != KindWork || next.Kind != KindWork {
		return 24
	}
	if prev.CrossesMidnight() {
		return float64(next.Start - prev.End)
	}
	return float64((24 - prev.End) + next.Start)
}

// InMorningZone reports membership in the H8 "morning" coverage zone:
// any shift with 6 <= start < 14.
func (s ShiftType) InMorningZone() bool {
	return s.Kind == KindWork && s.Start >= 6 && s.Start < 14
}

// InAfternoonZone reports membership in the H8 "afternoon" coverage
// zone: start in [12,20), or a shift starting before 14 and ending
// after 16.
func (s ShiftType) InAfternoonZone() bool {
	if s.Kind != KindWork {
		return false
	}
	if s.Start >= 12 && s.Start < 20 {
		return true
	}
	return s.Start < 14 && s.coversHourOfDay(16)
}

// coversHourOfDay reports whether the shift's wall-clock span (treating
// a midnight-crossing shift as ending at 24) covers the given hour
// of the shift's start day.
func (s ShiftType) coversHourOfDay(hour int) bool {
	end := s.End
	if s.CrossesMidnight() {
		end = 24
	}
	return s.Start < hour && end > hour
}

// InNightZone reports membership in the H8/H9 "night" coverage zone.
func (s ShiftType) InNightZone() bool {
	return s.Kind == KindWork && s.Night
}

// IsAbsence reports whether this shift code represents a non-working
// day.
func (s ShiftType) IsAbsence() bool {
	return s.Kind == KindNonWork
}

// CoversAfternoonSupport reports the H11 "covers the afternoon" test
// for a WYCHOWAWCA support shift: start < 20 and end >= 14.
func (s ShiftType) CoversAfternoonSupport() bool {
	if s.Kind != KindWork {
		return false
	}
	end := s.End
	if s.CrossesMidnight() {
		end = 24 + s.End
	}
	return s.Start < 20 && end >= 14
}

// IsLeaderDayShift reports the H11 trigger condition: a shift starting
// before 20:00, i.e. not purely a night shift.
func (s ShiftType) IsLeaderDayShift() bool {
	return s.Kind == KindWork && s.Start < 20
}
