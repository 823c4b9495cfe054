package authz

import (
	"testing"

	"github.com/gearguard/maintenance-system/internal/core/domain"
)

func TestProject_ManagerOnNewRequest(t *testing.T) {
	req := newRequest(domain.StatusNew, "", "creator")
	p := Project(manager(), req)

	want := Permissions{
		CanView:               true,
		CanCreate:             true,
		CanAssignTechnician:   true,
		CanSelfAssign:         false,
		CanMoveStatus:         true,
		CanUpdateNotes:        true,
		CanUpdateInstructions: true,
		CanScrapEquipment:     true,
		CanDelete:             true,
		UserRole:              domain.RoleManager,
	}
	if p != want {
		t.Fatalf("got %+v, want %+v", p, want)
	}
}

func TestProject_AdminOnNewRequest(t *testing.T) {
	req := newRequest(domain.StatusNew, "", "creator")
	p := Project(admin(), req)

	want := Permissions{
		CanView:               true,
		CanCreate:             false,
		CanAssignTechnician:   false,
		CanSelfAssign:         false,
		CanMoveStatus:         false,
		CanUpdateNotes:        false,
		CanUpdateInstructions: false,
		CanScrapEquipment:     true,
		CanDelete:             true,
		UserRole:              domain.RoleAdmin,
	}
	if p != want {
		t.Fatalf("got %+v, want %+v", p, want)
	}
}

func TestProject_TechnicianUnassignedNewRequest(t *testing.T) {
	tech := technician()
	req := newRequest(domain.StatusNew, "", tech.ID)
	p := Project(tech, req)

	want := Permissions{
		CanView:               true, // creator
		CanCreate:             true,
		CanAssignTechnician:   false,
		CanSelfAssign:         true,
		CanMoveStatus:         false, // not yet assigned
		CanUpdateNotes:        false,
		CanUpdateInstructions: false,
		CanScrapEquipment:     false,
		CanDelete:             false,
		UserRole:              domain.RoleTechnician,
	}
	if p != want {
		t.Fatalf("got %+v, want %+v", p, want)
	}
}

// After self-assignment the projection flips: self-assign goes off, status
// moves and notes/instructions come on.
func TestProject_AfterSelfAssign(t *testing.T) {
	tech := technician()
	req := newRequest(domain.StatusNew, tech.ID, tech.ID)
	p := Project(tech, req)

	if p.CanSelfAssign {
		t.Error("self-assign should be off once assigned")
	}
	if !p.CanMoveStatus {
		t.Error("assigned technician should be able to move status on a New request")
	}
	if !p.CanUpdateNotes || !p.CanUpdateInstructions {
		t.Error("assigned technician should be able to update notes and instructions")
	}
}

// The probe target for CanMoveStatus is "In Progress". A technician holding
// a request that is already In Progress keeps the bit via the identity
// transition; a terminal-state request turns it off.
func TestProject_MoveStatusProbe(t *testing.T) {
	tech := technician()

	inProgress := newRequest(domain.StatusInProgress, tech.ID, "creator")
	if p := Project(tech, inProgress); !p.CanMoveStatus {
		t.Error("identity transition should keep canMoveStatus on")
	}

	repaired := newRequest(domain.StatusRepaired, tech.ID, "creator")
	if p := Project(tech, repaired); p.CanMoveStatus {
		t.Error("terminal state has no technician edges, canMoveStatus must be off")
	}
}

func TestProject_NilRequest(t *testing.T) {
	p := Project(manager(), nil)
	if p.CanView {
		t.Error("nil request must not be viewable")
	}
	if !p.CanCreate || !p.CanDelete {
		t.Error("request-independent bits should still reflect the role")
	}
}
