package model

import "testing"

func TestParseShiftType_Work(t *testing.T) {
	tests := []struct {
		name     string
		id       string
		hours    float64
		night    bool
		crosses  bool
	}{
		{"morning shift", "8-16", 8, false, false},
		{"afternoon shift", "14-22", 8, false, false},
		{"midnight-crossing night shift", "22-6", 8, true, true},
		{"short morning block", "6-10", 4, false, false},
		{"boundary night start", "19-23", 4, true, false},
		{"boundary night end", "2-8", 6, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st, err := ParseShiftType(tt.id)
			if err != nil {
				t.Fatalf("ParseShiftType(%q) error: %v", tt.id, err)
			}
			if st.ID != tt.id {
				t.Errorf("ID = %q, want %q", st.ID, tt.id)
			}
			if st.Hours != tt.hours {
				t.Errorf("Hours = %v, want %v", st.Hours, tt.hours)
			}
			if st.Night != tt.night {
				t.Errorf("Night = %v, want %v", st.Night, tt.night)
			}
			if st.CrossesMidnight() != tt.crosses {
				t.Errorf("CrossesMidnight() = %v, want %v", st.CrossesMidnight(), tt.crosses)
			}
		})
	}
}

func TestParseShiftType_NonWorkAndContact(t *testing.T) {
	st, err := ParseShiftType("L4")
	if err != nil {
		t.Fatalf("ParseShiftType(L4) error: %v", err)
	}
	if st.Kind != KindNonWork {
		t.Errorf("Kind = %v, want KindNonWork", st.Kind)
	}

	st, err = ParseShiftType("K6")
	if err != nil {
		t.Fatalf("ParseShiftType(K6) error: %v", err)
	}
	if st.Kind != KindContact || st.Hours != 6 {
		t.Errorf("got %+v, want Kind=CONTACT Hours=6", st)
	}
}

func TestParseShiftType_Invalid(t *testing.T) {
	for _, id := range []string{"", "8", "25-30", "abc-def"} {
		if _, err := ParseShiftType(id); err == nil {
			t.Errorf("ParseShiftType(%q): expected error, got nil", id)
		}
	}
}

func TestParseShiftType_RoundTrip(t *testing.T) {
	st := MustParseShiftType("8-16")
	if st.ID != "8-16" {
		t.Errorf("round-trip ID = %q, want 8-16", st.ID)
	}
}

func TestGap(t *testing.T) {
	tests := []struct {
		name string
		prev string
		next string
		want float64
	}{
		{"tight next-day gap", "16-24", "0-4", 0},
		{"8h gap", "8-16", "0-8", 8},
		{"crossing shift gap", "22-6", "14-22", 8},
		{"back to back crossing", "22-6", "6-14", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prev := MustParseShiftType(tt.prev)
			next := MustParseShiftType(tt.next)
			if got := Gap(prev, next); got != tt.want {
				t.Errorf("Gap(%s, %s) = %v, want %v", tt.prev, tt.next, got, tt.want)
			}
		})
	}
}

func TestCoverageZones(t *testing.T) {
	morning := MustParseShiftType("8-16")
	if !morning.InMorningZone() {
		t.Error("8-16 should be in the morning zone")
	}
	if morning.InNightZone() {
		t.Error("8-16 should not be in the night zone")
	}

	afternoon := MustParseShiftType("12-20")
	if !afternoon.InAfternoonZone() {
		t.Error("12-20 should be in the afternoon zone")
	}

	spanning := MustParseShiftType("10-17")
	if !spanning.InAfternoonZone() {
		t.Error("10-17 should cover the afternoon zone by duration")
	}

	night := MustParseShiftType("20-6")
	if !night.InNightZone() {
		t.Error("20-6 should be in the night zone")
	}
}

func TestCoversAfternoonSupport(t *testing.T) {
	support := MustParseShiftType("12-20")
	if !support.CoversAfternoonSupport() {
		t.Error("12-20 should cover afternoon support")
	}
	morningOnly := MustParseShiftType("6-12")
	if morningOnly.CoversAfternoonSupport() {
		t.Error("6-12 ends before 14:00, should not cover afternoon support")
	}
}

func TestIsLeaderDayShift(t *testing.T) {
	day := MustParseShiftType("8-16")
	if !day.IsLeaderDayShift() {
		t.Error("8-16 should count as a leader day shift")
	}
	night := MustParseShiftType("20-4")
	if night.IsLeaderDayShift() {
		t.Error("20-4 starts at/after 20:00, should not count as a day shift")
	}
}
