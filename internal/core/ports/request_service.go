package ports

import (
	"context"
	"time"

	"github.com/gearguard/maintenance-system/internal/core/authz"
	"github.com/gearguard/maintenance-system/internal/core/domain"
)

// CreateRequestInput carries all data needed to create a maintenance request.
// TechnicianID is honoured only when the acting user is a manager; for
// everyone else the request starts unassigned.
type CreateRequestInput struct {
	Subject         string
	EquipmentID     string
	Category        string
	MaintenanceType domain.MaintenanceType
	TeamID          string
	TechnicianID    string
	RequestDate     time.Time
	ScheduledDate   time.Time
	DurationHours   float64
	Priority        domain.Priority
	Company         string
	Notes           string
	Instructions    string
}

// RequestPatch is a partial update: nil means "no change requested".
// TechnicianID set to the empty string clears the assignment.
type RequestPatch struct {
	Subject         *string
	EquipmentID     *string
	Category        *string
	MaintenanceType *string
	TeamID          *string
	TechnicianID    *string
	ScheduledDate   *time.Time
	DurationHours   *float64
	Priority        *string
	Company         *string
	Status          *string
	Notes           *string
	Instructions    *string
}

// GeneralFields returns the names of the non-status, non-assignment fields
// present in the patch, for the field-level permission pass.
func (p RequestPatch) GeneralFields() []string {
	var fields []string
	add := func(name string, present bool) {
		if present {
			fields = append(fields, name)
		}
	}
	add("subject", p.Subject != nil)
	add("equipment_id", p.EquipmentID != nil)
	add("category", p.Category != nil)
	add("maintenance_type", p.MaintenanceType != nil)
	add("team_id", p.TeamID != nil)
	add("scheduled_date", p.ScheduledDate != nil)
	add("duration_hours", p.DurationHours != nil)
	add("priority", p.Priority != nil)
	add("company", p.Company != nil)
	add("notes", p.Notes != nil)
	add("instructions", p.Instructions != nil)
	return fields
}

// RequestView pairs a request with the acting user's permission snapshot.
type RequestView struct {
	Request     *domain.MaintenanceRequest
	Permissions authz.Permissions
}

// OverdueResult summarises an overdue sweep.
type OverdueResult struct {
	Checked           int
	NotificationsSent int
}

// RequestService defines the use-case operations over maintenance requests.
type RequestService interface {
	Create(ctx context.Context, actor domain.Principal, in CreateRequestInput) (*RequestView, error)
	GetByID(ctx context.Context, actor domain.Principal, id string) (*RequestView, error)
	List(ctx context.Context, actor domain.Principal, status string) ([]*domain.MaintenanceRequest, error)
	Update(ctx context.Context, actor domain.Principal, id string, patch RequestPatch) (*RequestView, error)
	Delete(ctx context.Context, actor domain.Principal, id string) error
	CheckOverdue(ctx context.Context, actor domain.Principal, now time.Time) (*OverdueResult, error)
}
