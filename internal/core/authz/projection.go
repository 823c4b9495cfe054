package authz

import "github.com/gearguard/maintenance-system/internal/core/domain"

// Permissions is a snapshot of one user's allowed actions on one request.
// It is returned alongside the entity so the frontend can adapt its display
// without re-deriving any rules of its own.
type Permissions struct {
	CanView               bool        `json:"canView"`
	CanCreate             bool        `json:"canCreate"`
	CanAssignTechnician   bool        `json:"canAssignTechnician"`
	CanSelfAssign         bool        `json:"canSelfAssign"`
	CanMoveStatus         bool        `json:"canMoveStatus"`
	CanUpdateNotes        bool        `json:"canUpdateNotes"`
	CanUpdateInstructions bool        `json:"canUpdateInstructions"`
	CanScrapEquipment     bool        `json:"canScrapEquipment"`
	CanDelete             bool        `json:"canDelete"`
	UserRole              domain.Role `json:"userRole"`
}

// Project evaluates every predicate against the current request state.
//
// CanMoveStatus is a capability probe against the fixed representative
// target "In Progress" rather than a reachability check over all states.
// This understates capability for a technician whose request is already
// In Progress (identity transitions keep the probe truthful there), but it
// matches the projection contract the frontend was built against.
func Project(user domain.Principal, req *domain.MaintenanceRequest) Permissions {
	return Permissions{
		CanView:               CanViewRequest(user, req).Allowed,
		CanCreate:             CanCreateRequest(user).Allowed,
		CanAssignTechnician:   CanAssignTechnician(user, req).Allowed,
		CanSelfAssign:         CanSelfAssign(user, req).Allowed,
		CanMoveStatus:         CanMoveStatus(user, req, domain.StatusInProgress).Allowed,
		CanUpdateNotes:        CanUpdateFields(user, req, []string{"notes"}).Allowed,
		CanUpdateInstructions: CanUpdateFields(user, req, []string{"instructions"}).Allowed,
		CanScrapEquipment:     CanScrapEquipment(user).Allowed,
		CanDelete:             CanDeleteRequest(user).Allowed,
		UserRole:              user.Role,
	}
}
