// Package authz is the canonical rule engine for maintenance request
// permissions. Every predicate is pure and total: malformed input yields a
// denial, never a panic. Denial reasons are part of the API contract and are
// returned to callers verbatim.
package authz

import (
	"fmt"

	"github.com/gearguard/maintenance-system/internal/core/domain"
)

// Decision is the result of a permission predicate.
type Decision struct {
	Allowed bool
	Reason  string
}

func allow() Decision { return Decision{Allowed: true} }

func deny(reason string) Decision { return Decision{Allowed: false, Reason: reason} }

const (
	reasonNotAuthenticated = "User not authenticated"
	reasonUnknownRole      = "Unknown role"
)

// CanCreateRequest reports whether the user may create a maintenance
// request. Only managers and technicians create requests; admins administer
// accounts but do not participate in maintenance work.
func CanCreateRequest(user domain.Principal) Decision {
	if user.ID == "" || !user.Role.Valid() {
		return deny(reasonNotAuthenticated)
	}
	if user.Role == domain.RoleManager || user.Role == domain.RoleTechnician {
		return allow()
	}
	return deny("You do not have permission to create maintenance requests")
}

// CanViewRequest reports whether the user may view the request. Admins and
// managers see everything; technicians see only requests assigned to them or
// created by them.
func CanViewRequest(user domain.Principal, req *domain.MaintenanceRequest) Decision {
	if user.ID == "" || !user.Role.Valid() {
		return deny(reasonNotAuthenticated)
	}
	if req == nil {
		return deny("Insufficient permissions")
	}

	switch user.Role {
	case domain.RoleAdmin, domain.RoleManager:
		return allow()
	case domain.RoleTechnician:
		if req.AssignedTo(user.ID) || req.CreatedByUser(user.ID) {
			return allow()
		}
		return deny("You can only view requests assigned to you or created by you")
	}
	return deny("Insufficient permissions")
}

// CanAssignTechnician reports whether the user may assign an arbitrary
// technician to the request. Only managers may; the assignment itself does
// not depend on the request's status.
func CanAssignTechnician(user domain.Principal, req *domain.MaintenanceRequest) Decision {
	if user.ID == "" || !user.Role.Valid() {
		return deny(reasonNotAuthenticated)
	}

	switch user.Role {
	case domain.RoleManager:
		return allow()
	case domain.RoleTechnician:
		return deny("Technicians cannot assign other technicians. Use self-assignment for your own tasks.")
	case domain.RoleAdmin:
		return deny("Admins cannot assign or work on maintenance requests")
	}
	return deny(reasonUnknownRole)
}

// CanSelfAssign reports whether the user may place themselves into the
// technician slot of the request. Only technicians self-assign, only on New
// requests, and never on a request they already hold.
func CanSelfAssign(user domain.Principal, req *domain.MaintenanceRequest) Decision {
	if user.ID == "" || !user.Role.Valid() {
		return deny(reasonNotAuthenticated)
	}
	if user.Role != domain.RoleTechnician {
		return deny("Only technicians can self-assign tasks")
	}
	if req == nil {
		return deny("Insufficient permissions")
	}
	if req.Status != domain.StatusNew {
		return deny(fmt.Sprintf("Cannot self-assign a request with status %q. Only \"New\" requests can be self-assigned.", req.Status))
	}
	if req.AssignedTo(user.ID) {
		return deny("You are already assigned to this request")
	}
	return allow()
}

// CanMoveStatus reports whether the user may move the request to newStatus.
// Managers may perform any transition; technicians only on requests assigned
// to them and only along their workflow edges; admins never change status.
func CanMoveStatus(user domain.Principal, req *domain.MaintenanceRequest, newStatus domain.RequestStatus) Decision {
	if user.ID == "" || !user.Role.Valid() {
		return deny(reasonNotAuthenticated)
	}
	if !newStatus.Valid() {
		return deny(fmt.Sprintf("Invalid status: %s", newStatus))
	}

	switch user.Role {
	case domain.RoleManager:
		return allow()
	case domain.RoleTechnician:
		if req == nil || !req.AssignedTo(user.ID) {
			return deny("You can only manage requests assigned to you")
		}
		if !req.Status.TechnicianCanMove(newStatus) {
			return deny(fmt.Sprintf("Cannot move request from %q to %q", req.Status, newStatus))
		}
		return allow()
	case domain.RoleAdmin:
		return deny("Admins cannot modify maintenance request status")
	}
	return deny(reasonUnknownRole)
}

// CanUpdateFields reports whether the user may update general (non-status,
// non-assignment) fields of the request. Managers may write any field;
// admins may write none; technicians may touch only notes and instructions,
// and only on requests assigned to them.
func CanUpdateFields(user domain.Principal, req *domain.MaintenanceRequest, fields []string) Decision {
	if user.ID == "" || !user.Role.Valid() {
		return deny(reasonNotAuthenticated)
	}
	if len(fields) == 0 {
		return allow()
	}

	switch user.Role {
	case domain.RoleManager:
		return allow()
	case domain.RoleAdmin:
		return deny("Admins cannot update requests")
	case domain.RoleTechnician:
		if req == nil || !req.AssignedTo(user.ID) {
			return deny("You can only update notes and instructions for requests assigned to you")
		}
		for _, f := range fields {
			if f != "notes" && f != "instructions" {
				return deny("Technicians can only update notes and instructions")
			}
		}
		return allow()
	}
	return deny(reasonUnknownRole)
}

// CanScrapEquipment reports whether the user may mark equipment as scrapped.
func CanScrapEquipment(user domain.Principal) Decision {
	if user.ID == "" || !user.Role.Valid() {
		return deny(reasonNotAuthenticated)
	}
	if user.Role == domain.RoleManager || user.Role == domain.RoleAdmin {
		return allow()
	}
	return deny("Only managers and admins can scrap equipment")
}

// CanDeleteRequest reports whether the user may delete the request.
func CanDeleteRequest(user domain.Principal) Decision {
	if user.ID == "" || !user.Role.Valid() {
		return deny(reasonNotAuthenticated)
	}
	if user.Role == domain.RoleAdmin || user.Role == domain.RoleManager {
		return allow()
	}
	return deny("Only managers and admins can delete requests")
}
