package ports

import (
	"context"
	"time"

	"github.com/gearguard/maintenance-system/internal/core/domain"
)

// RequestFilter carries query parameters for listing maintenance requests.
// InvolvedUserID is set by the service layer for technicians so the query is
// scoped to requests they are assigned to or created.
type RequestFilter struct {
	InvolvedUserID string // empty = no scoping (admin/manager)
	Status         string // optional: filter by request status
	TeamID         string // optional: filter by maintenance team
}

// RequestRepository defines persistence operations for maintenance requests.
type RequestRepository interface {
	Create(ctx context.Context, r *domain.MaintenanceRequest) (*domain.MaintenanceRequest, error)
	FindByID(ctx context.Context, id string) (*domain.MaintenanceRequest, error)
	List(ctx context.Context, filter RequestFilter) ([]*domain.MaintenanceRequest, error)
	// Update persists the full document. The orchestrator performs
	// read-modify-write without a version check; see DESIGN.md.
	Update(ctx context.Context, r *domain.MaintenanceRequest) error
	Delete(ctx context.Context, id string) error
	// FindOverdue returns requests still open (New or In Progress) whose
	// scheduled date is before now.
	FindOverdue(ctx context.Context, now time.Time) ([]*domain.MaintenanceRequest, error)
}
