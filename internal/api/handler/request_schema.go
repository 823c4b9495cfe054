package handler

import (
	"time"

	"github.com/gearguard/maintenance-system/internal/core/authz"
)

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request types ---

type createRequestRequest struct {
	Subject         string    `json:"subject"          validate:"required"`
	EquipmentID     string    `json:"equipment_id"     validate:"required"`
	Category        string    `json:"category"         validate:"required"`
	MaintenanceType string    `json:"maintenance_type" validate:"required,oneof=Corrective Preventive"`
	TeamID          string    `json:"team_id"          validate:"required"`
	TechnicianID    string    `json:"technician_id"`
	RequestDate     time.Time `json:"request_date"`
	ScheduledDate   time.Time `json:"scheduled_date"`
	DurationHours   float64   `json:"duration_hours"   validate:"gte=0"`
	Priority        string    `json:"priority"         validate:"omitempty,oneof=Low Medium High Critical"`
	Company         string    `json:"company"          validate:"required"`
	Notes           string    `json:"notes"`
	Instructions    string    `json:"instructions"`
}

// updateRequestRequest is a partial patch: absent fields mean "no change".
// technician_id present as the empty string clears the assignment.
type updateRequestRequest struct {
	Subject         *string    `json:"subject"`
	EquipmentID     *string    `json:"equipment_id"`
	Category        *string    `json:"category"`
	MaintenanceType *string    `json:"maintenance_type" validate:"omitempty,oneof=Corrective Preventive"`
	TeamID          *string    `json:"team_id"`
	TechnicianID    *string    `json:"technician_id"`
	ScheduledDate   *time.Time `json:"scheduled_date"`
	DurationHours   *float64   `json:"duration_hours" validate:"omitempty,gte=0"`
	Priority        *string    `json:"priority"       validate:"omitempty,oneof=Low Medium High Critical"`
	Company         *string    `json:"company"`
	Status          *string    `json:"status"         validate:"omitempty,oneof=New 'In Progress' Repaired Scrap"`
	Notes           *string    `json:"notes"`
	Instructions    *string    `json:"instructions"`
}

// --- Response types ---

// requestResponse is the full request view. Permissions is the acting
// user's snapshot computed server-side; the frontend only renders it.
type requestResponse struct {
	ID              string             `json:"id"`
	Subject         string             `json:"subject"`
	CreatedBy       string             `json:"created_by"`
	EquipmentID     string             `json:"equipment_id"`
	Category        string             `json:"category"`
	MaintenanceType string             `json:"maintenance_type"`
	TeamID          string             `json:"team_id"`
	TechnicianID    string             `json:"technician_id,omitempty"`
	RequestDate     time.Time          `json:"request_date"`
	ScheduledDate   *time.Time         `json:"scheduled_date,omitempty"`
	DurationHours   float64            `json:"duration_hours"`
	Priority        string             `json:"priority"`
	Company         string             `json:"company"`
	Status          string             `json:"status"`
	Notes           string             `json:"notes,omitempty"`
	Instructions    string             `json:"instructions,omitempty"`
	CreatedAt       time.Time          `json:"created_at"`
	UpdatedAt       time.Time          `json:"updated_at"`
	Permissions     *authz.Permissions `json:"permissions,omitempty"`
}

type listRequestsResponse struct {
	Data  []requestResponse `json:"data"`
	Total int               `json:"total"`
}

type deleteResponse struct {
	Message string `json:"message"`
}

type overdueResponse struct {
	Checked           int    `json:"checked"`
	NotificationsSent int    `json:"notifications_sent"`
	Message           string `json:"message"`
}
