package domain

import (
	"errors"
	"fmt"
	"time"
)

// RequestStatus represents the lifecycle state of a maintenance request.
type RequestStatus string

const (
	StatusNew        RequestStatus = "New"
	StatusInProgress RequestStatus = "In Progress"
	StatusRepaired   RequestStatus = "Repaired"
	StatusScrap      RequestStatus = "Scrap"
)

// Valid reports whether the status is one of the four known states.
func (s RequestStatus) Valid() bool {
	switch s {
	case StatusNew, StatusInProgress, StatusRepaired, StatusScrap:
		return true
	}
	return false
}

// IsTerminal reports whether no further transitions are permitted from s.
func (s RequestStatus) IsTerminal() bool {
	return s == StatusRepaired || s == StatusScrap
}

// technicianTransitions defines the state machine edges available to
// technicians. Managers are not bound by this map: they may move a request
// between any two states, including directly to Scrap.
var technicianTransitions = map[RequestStatus][]RequestStatus{
	StatusNew:        {StatusInProgress},
	StatusInProgress: {StatusRepaired, StatusNew},
	StatusRepaired:   {},
	StatusScrap:      {},
}

// TechnicianCanMove reports whether a technician may transition a request
// from s to next. A transition to the current status is a permitted no-op.
func (s RequestStatus) TechnicianCanMove(next RequestStatus) bool {
	if next == s {
		return true
	}
	for _, allowed := range technicianTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// MaintenanceType distinguishes planned from breakdown maintenance.
type MaintenanceType string

const (
	TypeCorrective MaintenanceType = "Corrective"
	TypePreventive MaintenanceType = "Preventive"
)

// Priority ranks the urgency of a maintenance request.
type Priority string

const (
	PriorityLow      Priority = "Low"
	PriorityMedium   Priority = "Medium"
	PriorityHigh     Priority = "High"
	PriorityCritical Priority = "Critical"
)

var (
	ErrRequestNotFound   = errors.New("maintenance request not found")
	ErrEquipmentNotFound = errors.New("equipment not found")
	ErrTeamNotFound      = errors.New("team not found")
	ErrWorkCenterNotFound = errors.New("work center not found")
	ErrUserNotFound      = errors.New("user not found")
	ErrUserExists        = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrForbidden         = errors.New("access forbidden")
	ErrInvalidStatus     = errors.New("invalid status")
)

// ForbiddenError is a permission denial carrying the human-readable reason
// produced by the rule engine. The reason string is part of the API contract
// and is surfaced to the caller verbatim.
type ForbiddenError struct {
	Reason string
}

func (e *ForbiddenError) Error() string { return e.Reason }

// Is makes errors.Is(err, ErrForbidden) match any ForbiddenError.
func (e *ForbiddenError) Is(target error) bool { return target == ErrForbidden }

// Forbidden wraps a denial reason into an error.
func Forbidden(reason string) error { return &ForbiddenError{Reason: reason} }

// InvalidStatusError reports a status value outside the known enumeration.
type InvalidStatusError struct {
	Value string
}

func (e *InvalidStatusError) Error() string { return fmt.Sprintf("Invalid status: %s", e.Value) }

func (e *InvalidStatusError) Is(target error) bool { return target == ErrInvalidStatus }

// MaintenanceRequest is the core aggregate root.
type MaintenanceRequest struct {
	ID              string          `json:"id" bson:"_id,omitempty"`
	Subject         string          `json:"subject" bson:"subject"`
	CreatedBy       string          `json:"created_by" bson:"created_by"`
	EquipmentID     string          `json:"equipment_id" bson:"equipment_id"`
	Category        string          `json:"category" bson:"category"`
	MaintenanceType MaintenanceType `json:"maintenance_type" bson:"maintenance_type"`
	TeamID          string          `json:"team_id" bson:"team_id"`
	// TechnicianID is empty until a technician is assigned.
	TechnicianID  string        `json:"technician_id,omitempty" bson:"technician_id,omitempty"`
	RequestDate   time.Time     `json:"request_date" bson:"request_date"`
	ScheduledDate time.Time     `json:"scheduled_date,omitempty" bson:"scheduled_date,omitempty"`
	DurationHours float64       `json:"duration_hours" bson:"duration_hours"`
	Priority      Priority      `json:"priority" bson:"priority"`
	Company       string        `json:"company" bson:"company"`
	Status        RequestStatus `json:"status" bson:"status"`
	Notes         string        `json:"notes,omitempty" bson:"notes,omitempty"`
	Instructions  string        `json:"instructions,omitempty" bson:"instructions,omitempty"`
	CreatedAt     time.Time     `json:"created_at" bson:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at" bson:"updated_at"`
}

// AssignedTo reports whether the request is assigned to the given user.
func (r *MaintenanceRequest) AssignedTo(userID string) bool {
	return r.TechnicianID != "" && r.TechnicianID == userID
}

// CreatedByUser reports whether the request was created by the given user.
func (r *MaintenanceRequest) CreatedByUser(userID string) bool {
	return r.CreatedBy != "" && r.CreatedBy == userID
}
