package authz

import (
	"strings"
	"testing"

	"github.com/gearguard/maintenance-system/internal/core/domain"
)

func admin() domain.Principal      { return domain.Principal{ID: "u-admin", Role: domain.RoleAdmin} }
func manager() domain.Principal    { return domain.Principal{ID: "u-mgr", Role: domain.RoleManager} }
func technician() domain.Principal { return domain.Principal{ID: "u-tech", Role: domain.RoleTechnician} }

func newRequest(status domain.RequestStatus, technicianID, createdBy string) *domain.MaintenanceRequest {
	return &domain.MaintenanceRequest{
		ID:           "req-1",
		Subject:      "Broken spindle",
		Status:       status,
		TechnicianID: technicianID,
		CreatedBy:    createdBy,
	}
}

// ---------------------------------------------------------------------------
// CanCreateRequest
// ---------------------------------------------------------------------------

func TestCanCreateRequest(t *testing.T) {
	cases := []struct {
		name    string
		user    domain.Principal
		allowed bool
	}{
		{"manager", manager(), true},
		{"technician", technician(), true},
		{"admin", admin(), false},
		{"unauthenticated", domain.Principal{}, false},
		{"unknown role", domain.Principal{ID: "x", Role: "ghost"}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d := CanCreateRequest(tc.user)
			if d.Allowed != tc.allowed {
				t.Fatalf("allowed=%v, want %v (reason: %s)", d.Allowed, tc.allowed, d.Reason)
			}
			if !d.Allowed && d.Reason == "" {
				t.Fatal("denial must carry a reason")
			}
		})
	}
}

// ---------------------------------------------------------------------------
// CanViewRequest
// ---------------------------------------------------------------------------

func TestCanViewRequest_AdminAndManagerSeeAll(t *testing.T) {
	req := newRequest(domain.StatusNew, "someone-else", "another")

	for _, user := range []domain.Principal{admin(), manager()} {
		if d := CanViewRequest(user, req); !d.Allowed {
			t.Fatalf("%s should see any request, denied: %s", user.Role, d.Reason)
		}
	}
}

func TestCanViewRequest_TechnicianScope(t *testing.T) {
	tech := technician()

	assigned := newRequest(domain.StatusInProgress, tech.ID, "creator-1")
	if d := CanViewRequest(tech, assigned); !d.Allowed {
		t.Fatalf("technician should see assigned request: %s", d.Reason)
	}

	created := newRequest(domain.StatusNew, "", tech.ID)
	if d := CanViewRequest(tech, created); !d.Allowed {
		t.Fatalf("technician should see own created request: %s", d.Reason)
	}

	unrelated := newRequest(domain.StatusNew, "", "creator-1")
	d := CanViewRequest(tech, unrelated)
	if d.Allowed {
		t.Fatal("technician must not see unrelated request")
	}
	if d.Reason != "You can only view requests assigned to you or created by you" {
		t.Fatalf("unexpected reason: %q", d.Reason)
	}
}

// Scenario from the rules: U1 (technician) created R, U2 (technician) is
// neither assigned nor creator.
func TestCanViewRequest_CreatorVersusStranger(t *testing.T) {
	u1 := domain.Principal{ID: "u1", Role: domain.RoleTechnician}
	u2 := domain.Principal{ID: "u2", Role: domain.RoleTechnician}
	req := newRequest(domain.StatusNew, "", u1.ID)

	if d := CanViewRequest(u2, req); d.Allowed {
		t.Fatal("U2 is neither assigned nor creator, must be denied")
	}
	if d := CanViewRequest(u1, req); !d.Allowed {
		t.Fatalf("U1 created the request, must be allowed: %s", d.Reason)
	}
}

// ---------------------------------------------------------------------------
// CanAssignTechnician / CanSelfAssign
// ---------------------------------------------------------------------------

func TestCanAssignTechnician(t *testing.T) {
	req := newRequest(domain.StatusRepaired, "other-tech", "creator")

	// Assignment alone does not depend on status: managers may assign in
	// any state.
	if d := CanAssignTechnician(manager(), req); !d.Allowed {
		t.Fatalf("manager should assign in any status: %s", d.Reason)
	}

	d := CanAssignTechnician(technician(), req)
	if d.Allowed {
		t.Fatal("technician must not assign others")
	}
	if d.Reason != "Technicians cannot assign other technicians. Use self-assignment for your own tasks." {
		t.Fatalf("unexpected reason: %q", d.Reason)
	}

	d = CanAssignTechnician(admin(), req)
	if d.Allowed {
		t.Fatal("admin must not assign")
	}
	if d.Reason != "Admins cannot assign or work on maintenance requests" {
		t.Fatalf("unexpected reason: %q", d.Reason)
	}
}

func TestCanSelfAssign_NewUnassigned(t *testing.T) {
	req := newRequest(domain.StatusNew, "", "creator")
	if d := CanSelfAssign(technician(), req); !d.Allowed {
		t.Fatalf("technician should self-assign a New unassigned request: %s", d.Reason)
	}
}

func TestCanSelfAssign_OnlyTechnicians(t *testing.T) {
	req := newRequest(domain.StatusNew, "", "creator")

	d := CanSelfAssign(manager(), req)
	if d.Allowed {
		t.Fatal("manager must not self-assign")
	}
	if d.Reason != "Only technicians can self-assign tasks" {
		t.Fatalf("unexpected reason: %q", d.Reason)
	}

	if d := CanSelfAssign(admin(), req); d.Allowed {
		t.Fatal("admin must not self-assign")
	}
}

func TestCanSelfAssign_RequiresNewStatus(t *testing.T) {
	for _, status := range []domain.RequestStatus{domain.StatusInProgress, domain.StatusRepaired, domain.StatusScrap} {
		req := newRequest(status, "", "creator")
		d := CanSelfAssign(technician(), req)
		if d.Allowed {
			t.Fatalf("self-assign must be denied for status %s", status)
		}
		if !strings.Contains(d.Reason, string(status)) {
			t.Fatalf("reason should name the status %q, got %q", status, d.Reason)
		}
	}
}

// Re-assigning yourself to a request you already hold must fail, not
// succeed idempotently.
func TestCanSelfAssign_AlreadyAssignedDenied(t *testing.T) {
	tech := technician()
	req := newRequest(domain.StatusNew, tech.ID, "creator")

	d := CanSelfAssign(tech, req)
	if d.Allowed {
		t.Fatal("repeat self-assign must be denied")
	}
	if d.Reason != "You are already assigned to this request" {
		t.Fatalf("unexpected reason: %q", d.Reason)
	}
}

// ---------------------------------------------------------------------------
// CanMoveStatus
// ---------------------------------------------------------------------------

func TestCanMoveStatus_ManagerUnrestricted(t *testing.T) {
	statuses := []domain.RequestStatus{
		domain.StatusNew, domain.StatusInProgress, domain.StatusRepaired, domain.StatusScrap,
	}
	// Manager may move between any pair, including In Progress → Scrap and
	// the In Progress → New reopen.
	for _, from := range statuses {
		for _, to := range statuses {
			req := newRequest(from, "", "creator")
			if d := CanMoveStatus(manager(), req, to); !d.Allowed {
				t.Fatalf("manager %s → %s should be allowed: %s", from, to, d.Reason)
			}
		}
	}
}

func TestCanMoveStatus_AdminNever(t *testing.T) {
	req := newRequest(domain.StatusNew, "", "creator")
	d := CanMoveStatus(admin(), req, domain.StatusInProgress)
	if d.Allowed {
		t.Fatal("admin must not move status")
	}
	if d.Reason != "Admins cannot modify maintenance request status" {
		t.Fatalf("unexpected reason: %q", d.Reason)
	}
}

func TestCanMoveStatus_TechnicianEdges(t *testing.T) {
	tech := technician()

	cases := []struct {
		from    domain.RequestStatus
		to      domain.RequestStatus
		allowed bool
	}{
		{domain.StatusNew, domain.StatusInProgress, true},
		{domain.StatusNew, domain.StatusRepaired, false},
		{domain.StatusNew, domain.StatusScrap, false},
		{domain.StatusInProgress, domain.StatusRepaired, true},
		{domain.StatusInProgress, domain.StatusNew, true}, // reopen
		{domain.StatusInProgress, domain.StatusScrap, false},
		{domain.StatusRepaired, domain.StatusNew, false},
		{domain.StatusRepaired, domain.StatusInProgress, false},
		{domain.StatusScrap, domain.StatusNew, false},
		// Identity transitions are permitted no-ops.
		{domain.StatusNew, domain.StatusNew, true},
		{domain.StatusInProgress, domain.StatusInProgress, true},
		{domain.StatusRepaired, domain.StatusRepaired, true},
	}

	for _, tc := range cases {
		req := newRequest(tc.from, tech.ID, "creator")
		d := CanMoveStatus(tech, req, tc.to)
		if d.Allowed != tc.allowed {
			t.Errorf("technician %s → %s: allowed=%v, want %v (reason: %s)", tc.from, tc.to, d.Allowed, tc.allowed, d.Reason)
		}
		if !tc.allowed && tc.from != tc.to {
			want := "Cannot move request from"
			if !strings.HasPrefix(d.Reason, want) {
				t.Errorf("%s → %s: reason should name both states, got %q", tc.from, tc.to, d.Reason)
			}
		}
	}
}

func TestCanMoveStatus_TechnicianMustBeAssigned(t *testing.T) {
	req := newRequest(domain.StatusNew, "other-tech", "creator")
	d := CanMoveStatus(technician(), req, domain.StatusInProgress)
	if d.Allowed {
		t.Fatal("technician must not move a request assigned to someone else")
	}
	if d.Reason != "You can only manage requests assigned to you" {
		t.Fatalf("unexpected reason: %q", d.Reason)
	}
}

func TestCanMoveStatus_UnknownStatus(t *testing.T) {
	req := newRequest(domain.StatusNew, "", "creator")
	d := CanMoveStatus(manager(), req, "Exploded")
	if d.Allowed {
		t.Fatal("unknown status must be denied")
	}
	if d.Reason != "Invalid status: Exploded" {
		t.Fatalf("unexpected reason: %q", d.Reason)
	}
}

// ---------------------------------------------------------------------------
// CanUpdateFields
// ---------------------------------------------------------------------------

func TestCanUpdateFields_ManagerAnyField(t *testing.T) {
	req := newRequest(domain.StatusInProgress, "someone", "creator")
	fields := []string{"subject", "equipment_id", "priority", "notes"}
	if d := CanUpdateFields(manager(), req, fields); !d.Allowed {
		t.Fatalf("manager should update any field: %s", d.Reason)
	}
}

func TestCanUpdateFields_AdminNone(t *testing.T) {
	req := newRequest(domain.StatusNew, "", "creator")
	d := CanUpdateFields(admin(), req, []string{"notes"})
	if d.Allowed {
		t.Fatal("admin must not update any field")
	}
	if d.Reason != "Admins cannot update requests" {
		t.Fatalf("unexpected reason: %q", d.Reason)
	}

	// An empty patch carries no field writes and passes trivially.
	if d := CanUpdateFields(admin(), req, nil); !d.Allowed {
		t.Fatalf("empty field set should pass: %s", d.Reason)
	}
}

func TestCanUpdateFields_TechnicianNotesAndInstructionsOnly(t *testing.T) {
	tech := technician()
	own := newRequest(domain.StatusInProgress, tech.ID, "creator")

	if d := CanUpdateFields(tech, own, []string{"notes", "instructions"}); !d.Allowed {
		t.Fatalf("technician should update notes/instructions on own request: %s", d.Reason)
	}

	// Any field outside the permitted set rejects the lot.
	d := CanUpdateFields(tech, own, []string{"notes", "priority"})
	if d.Allowed {
		t.Fatal("priority is outside the technician's field set")
	}
	if d.Reason != "Technicians can only update notes and instructions" {
		t.Fatalf("unexpected reason: %q", d.Reason)
	}

	other := newRequest(domain.StatusInProgress, "someone-else", "creator")
	d = CanUpdateFields(tech, other, []string{"notes"})
	if d.Allowed {
		t.Fatal("technician must not update a request not assigned to them")
	}
	if d.Reason != "You can only update notes and instructions for requests assigned to you" {
		t.Fatalf("unexpected reason: %q", d.Reason)
	}
}

// ---------------------------------------------------------------------------
// CanScrapEquipment / CanDeleteRequest
// ---------------------------------------------------------------------------

func TestCanScrapEquipment(t *testing.T) {
	if d := CanScrapEquipment(manager()); !d.Allowed {
		t.Fatalf("manager should scrap equipment: %s", d.Reason)
	}
	if d := CanScrapEquipment(admin()); !d.Allowed {
		t.Fatalf("admin should scrap equipment: %s", d.Reason)
	}
	d := CanScrapEquipment(technician())
	if d.Allowed {
		t.Fatal("technician must not scrap equipment")
	}
	if d.Reason != "Only managers and admins can scrap equipment" {
		t.Fatalf("unexpected reason: %q", d.Reason)
	}
}

func TestCanDeleteRequest(t *testing.T) {
	if d := CanDeleteRequest(admin()); !d.Allowed {
		t.Fatalf("admin should delete: %s", d.Reason)
	}
	if d := CanDeleteRequest(manager()); !d.Allowed {
		t.Fatalf("manager should delete: %s", d.Reason)
	}
	d := CanDeleteRequest(technician())
	if d.Allowed {
		t.Fatal("technician must not delete")
	}
	if d.Reason != "Only managers and admins can delete requests" {
		t.Fatalf("unexpected reason: %q", d.Reason)
	}
}

// Predicates must be total: nil requests and zero principals deny rather
// than panic.
func TestPredicates_TotalOnMalformedInput(t *testing.T) {
	var nilReq *domain.MaintenanceRequest
	empty := domain.Principal{}

	decisions := []Decision{
		CanViewRequest(empty, nilReq),
		CanViewRequest(technician(), nilReq),
		CanAssignTechnician(empty, nilReq),
		CanSelfAssign(technician(), nilReq),
		CanMoveStatus(technician(), nilReq, domain.StatusInProgress),
		CanUpdateFields(technician(), nilReq, []string{"notes"}),
		CanScrapEquipment(empty),
		CanDeleteRequest(empty),
	}
	for i, d := range decisions {
		if d.Allowed {
			t.Errorf("decision %d: malformed input must deny", i)
		}
		if d.Reason == "" {
			t.Errorf("decision %d: denial must carry a reason", i)
		}
	}
}
