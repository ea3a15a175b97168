package model

import "testing"

func TestHasRole(t *testing.T) {
	e := &Employee{Roles: []Role{RoleLider}}
	if !e.HasRole(RoleLider) {
		t.Error("expected HasRole(LIDER) to be true")
	}
	if e.HasRole(RoleWychowawca) {
		t.Error("expected HasRole(WYCHOWAWCA) to be false")
	}
}

func TestIsLeader_RoleTagged(t *testing.T) {
	leader := &Employee{ID: "e1", Name: "Anna", Roles: []Role{RoleLider}}
	other := &Employee{ID: "e2", Name: "Jan"}

	if !leader.IsLeader(true) {
		t.Error("expected role-tagged employee with LIDER to be identified as leader")
	}
	if other.IsLeader(true) {
		t.Error("expected employee without LIDER role to not be identified as leader")
	}
}

func TestIsLeader_LegacyFallback(t *testing.T) {
	// When no employee in the roster carries any role tag at all, the
	// legacy name-substring match applies instead.
	legacy := &Employee{ID: "e1", Name: "Maria Pankowska"}
	other := &Employee{ID: "e2", Name: "Jan Kowalski"}

	if !legacy.IsLeader(false) {
		t.Error("expected legacy name match to identify Maria Pankowska as leader")
	}
	if other.IsLeader(false) {
		t.Error("expected Jan Kowalski to not match the legacy leader name")
	}
}

func TestIsSupport(t *testing.T) {
	support := &Employee{Roles: []Role{RoleWychowawca}}
	other := &Employee{Roles: []Role{RoleMedyk}}

	if !support.IsSupport() {
		t.Error("expected WYCHOWAWCA employee to be identified as support")
	}
	if other.IsSupport() {
		t.Error("expected non-WYCHOWAWCA employee to not be identified as support")
	}
}

func TestAllowsShift(t *testing.T) {
	e := &Employee{AllowedShifts: []string{"8-16", "16-24"}}

	if !e.AllowsShift("8-16") {
		t.Error("expected 8-16 to be allowed")
	}
	if e.AllowsShift("0-8") {
		t.Error("expected 0-8 to not be allowed")
	}
}

func TestAnyRoleTagsPresent(t *testing.T) {
	noneTagged := []Employee{{ID: "e1"}, {ID: "e2"}}
	if AnyRoleTagsPresent(noneTagged) {
		t.Error("expected no role tags present")
	}

	oneTagged := []Employee{{ID: "e1"}, {ID: "e2", Roles: []Role{RoleLider}}}
	if !AnyRoleTagsPresent(oneTagged) {
		t.Error("expected at least one role tag present")
	}
}
