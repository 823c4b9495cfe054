package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/gearguard/maintenance-system/internal/api/metrics"
	"github.com/gearguard/maintenance-system/internal/core/authz"
	"github.com/gearguard/maintenance-system/internal/core/domain"
	"github.com/gearguard/maintenance-system/internal/core/ports"
)

// OverdueDeduper suppresses repeat overdue notifications for the same
// request within a TTL (backed by Redis).
type OverdueDeduper interface {
	AlreadyNotified(ctx context.Context, requestID string) (bool, error)
	MarkNotified(ctx context.Context, requestID string) error
}

// RequestService orchestrates all mutations of maintenance requests. Every
// change goes through the authz predicates and the status transition graph;
// a single disallowed sub-change voids the whole mutation.
type RequestService struct {
	repo       ports.RequestRepository
	equipment  ports.EquipmentRepository
	dispatcher ports.NotificationDispatcher
	dedup      OverdueDeduper
	logger     zerolog.Logger
}

func NewRequestService(
	repo ports.RequestRepository,
	equipment ports.EquipmentRepository,
	dispatcher ports.NotificationDispatcher,
	dedup OverdueDeduper,
	logger zerolog.Logger,
) *RequestService {
	return &RequestService{
		repo:       repo,
		equipment:  equipment,
		dispatcher: dispatcher,
		dedup:      dedup,
		logger:     logger,
	}
}

// Create creates a new maintenance request. Requests always start in New;
// only managers may pre-assign a technician at creation time.
func (s *RequestService) Create(ctx context.Context, actor domain.Principal, in ports.CreateRequestInput) (*ports.RequestView, error) {
	if d := authz.CanCreateRequest(actor); !d.Allowed {
		return nil, s.denied("create", d)
	}

	technicianID := ""
	if in.TechnicianID != "" && actor.Role == domain.RoleManager {
		technicianID = in.TechnicianID
	}

	now := time.Now().UTC()
	requestDate := in.RequestDate
	if requestDate.IsZero() {
		requestDate = now
	}
	priority := in.Priority
	if priority == "" {
		priority = domain.PriorityMedium
	}

	req := &domain.MaintenanceRequest{
		Subject:         in.Subject,
		CreatedBy:       actor.ID,
		EquipmentID:     in.EquipmentID,
		Category:        in.Category,
		MaintenanceType: in.MaintenanceType,
		TeamID:          in.TeamID,
		TechnicianID:    technicianID,
		RequestDate:     requestDate,
		ScheduledDate:   in.ScheduledDate,
		DurationHours:   in.DurationHours,
		Priority:        priority,
		Company:         in.Company,
		Status:          domain.StatusNew,
		Notes:           in.Notes,
		Instructions:    in.Instructions,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	created, err := s.repo.Create(ctx, req)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create maintenance request")
		return nil, err
	}

	metrics.RequestsCreatedTotal.WithLabelValues(string(created.MaintenanceType)).Inc()
	s.logger.Info().
		Str("request_id", created.ID).
		Str("created_by", actor.ID).
		Str("maintenance_type", string(created.MaintenanceType)).
		Msg("maintenance request created")

	if technicianID != "" {
		s.dispatcher.Enqueue(ports.Notification{
			Kind:        ports.NotifyAssigned,
			RequestID:   created.ID,
			RecipientID: technicianID,
			Subject:     created.Subject,
		})
	}

	return &ports.RequestView{Request: created, Permissions: authz.Project(actor, created)}, nil
}

// GetByID retrieves a request with the acting user's permission snapshot.
func (s *RequestService) GetByID(ctx context.Context, actor domain.Principal, id string) (*ports.RequestView, error) {
	req, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if d := authz.CanViewRequest(actor, req); !d.Allowed {
		return nil, s.denied("view", d)
	}

	return &ports.RequestView{Request: req, Permissions: authz.Project(actor, req)}, nil
}

// List returns requests visible to the acting user. Technicians are scoped
// to requests assigned to them or created by them; the scoping is pushed
// into the query rather than filtered after the fact.
func (s *RequestService) List(ctx context.Context, actor domain.Principal, status string) ([]*domain.MaintenanceRequest, error) {
	filter := ports.RequestFilter{Status: status}
	if actor.Role == domain.RoleTechnician {
		filter.InvolvedUserID = actor.ID
	}
	return s.repo.List(ctx, filter)
}

// Update applies a partial patch through a single validation pass. All
// attempted changes are checked before any write; one violation rejects the
// whole patch. Permission checks for later steps see the prospective values
// of earlier ones, so a self-assign combined with a status move in the same
// patch behaves like the two applied in order.
func (s *RequestService) Update(ctx context.Context, actor domain.Principal, id string, patch ports.RequestPatch) (*ports.RequestView, error) {
	req, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if d := authz.CanViewRequest(actor, req); !d.Allowed {
		return nil, s.denied("update", d)
	}

	oldStatus := req.Status
	oldTechnician := req.TechnicianID

	// effective mirrors the request with pending changes applied, so later
	// predicates evaluate against the state earlier steps would produce.
	effective := *req

	// 1. Technician assignment. A technician naming themselves is always
	// classified as a self-assign attempt, even when they already hold the
	// request: repeating a self-assign is a denial, not an idempotent no-op.
	technicianChanged := patch.TechnicianID != nil && *patch.TechnicianID != oldTechnician
	selfAssignAttempt := patch.TechnicianID != nil &&
		*patch.TechnicianID == actor.ID && actor.Role == domain.RoleTechnician
	switch {
	case selfAssignAttempt:
		if d := authz.CanSelfAssign(actor, req); !d.Allowed {
			return nil, s.denied("self_assign", d)
		}
		effective.TechnicianID = actor.ID
	case technicianChanged:
		if d := authz.CanAssignTechnician(actor, req); !d.Allowed {
			return nil, s.denied("assign_technician", d)
		}
		effective.TechnicianID = *patch.TechnicianID
	}

	// 2. Status transition.
	var newStatus domain.RequestStatus
	statusChanged := false
	if patch.Status != nil {
		newStatus = domain.RequestStatus(*patch.Status)
		if !newStatus.Valid() {
			return nil, &domain.InvalidStatusError{Value: *patch.Status}
		}
		if newStatus != oldStatus {
			if d := authz.CanMoveStatus(actor, &effective, newStatus); !d.Allowed {
				return nil, s.denied("move_status", d)
			}
			statusChanged = true
			effective.Status = newStatus
		}
	}

	// 3. Remaining fields, checked as one set (all-or-nothing).
	if d := authz.CanUpdateFields(actor, &effective, patch.GeneralFields()); !d.Allowed {
		return nil, s.denied("update_fields", d)
	}

	// Every check passed: commit the patch atomically.
	applyPatch(req, patch, &effective)
	req.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, req); err != nil {
		s.logger.Error().Err(err).Str("request_id", req.ID).Msg("failed to update maintenance request")
		return nil, err
	}

	if statusChanged {
		metrics.StatusTransitionsTotal.WithLabelValues(string(oldStatus), string(newStatus)).Inc()
		s.logger.Info().
			Str("request_id", req.ID).
			Str("from", string(oldStatus)).
			Str("to", string(newStatus)).
			Str("actor", actor.ID).
			Msg("request status changed")
	}

	s.fireSideEffects(ctx, req, oldStatus, oldTechnician, statusChanged, technicianChanged)

	return &ports.RequestView{Request: req, Permissions: authz.Project(actor, req)}, nil
}

// applyPatch writes all approved patch fields onto req.
func applyPatch(req *domain.MaintenanceRequest, patch ports.RequestPatch, effective *domain.MaintenanceRequest) {
	req.TechnicianID = effective.TechnicianID
	req.Status = effective.Status

	if patch.Subject != nil {
		req.Subject = *patch.Subject
	}
	if patch.EquipmentID != nil {
		req.EquipmentID = *patch.EquipmentID
	}
	if patch.Category != nil {
		req.Category = *patch.Category
	}
	if patch.MaintenanceType != nil {
		req.MaintenanceType = domain.MaintenanceType(*patch.MaintenanceType)
	}
	if patch.TeamID != nil {
		req.TeamID = *patch.TeamID
	}
	if patch.ScheduledDate != nil {
		req.ScheduledDate = *patch.ScheduledDate
	}
	if patch.DurationHours != nil {
		req.DurationHours = *patch.DurationHours
	}
	if patch.Priority != nil {
		req.Priority = domain.Priority(*patch.Priority)
	}
	if patch.Company != nil {
		req.Company = *patch.Company
	}
	if patch.Notes != nil {
		req.Notes = *patch.Notes
	}
	if patch.Instructions != nil {
		req.Instructions = *patch.Instructions
	}
}

// fireSideEffects dispatches notifications and the equipment-scrap call
// after a successful update. All of it is best-effort: failures are logged
// and never roll back the already-persisted mutation.
func (s *RequestService) fireSideEffects(ctx context.Context, req *domain.MaintenanceRequest, oldStatus domain.RequestStatus, oldTechnician string, statusChanged, technicianChanged bool) {
	if technicianChanged && req.TechnicianID != "" && req.TechnicianID != oldTechnician {
		s.dispatcher.Enqueue(ports.Notification{
			Kind:        ports.NotifyAssigned,
			RequestID:   req.ID,
			RecipientID: req.TechnicianID,
			Subject:     req.Subject,
		})
	}

	if !statusChanged {
		return
	}

	if req.Status == domain.StatusRepaired && oldStatus != domain.StatusRepaired {
		s.dispatcher.Enqueue(ports.Notification{
			Kind:        ports.NotifyCompleted,
			RequestID:   req.ID,
			RecipientID: req.CreatedBy,
			Subject:     req.Subject,
		})
	}

	if req.Status == domain.StatusScrap {
		if err := s.equipment.MarkScrapped(ctx, req.EquipmentID, time.Now().UTC()); err != nil {
			s.logger.Warn().Err(err).
				Str("request_id", req.ID).
				Str("equipment_id", req.EquipmentID).
				Msg("failed to mark equipment scrapped")
		} else {
			metrics.EquipmentScrappedTotal.Inc()
		}
	}
}

// Delete removes a request entirely. Only managers and admins may.
func (s *RequestService) Delete(ctx context.Context, actor domain.Principal, id string) error {
	req, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if d := authz.CanDeleteRequest(actor); !d.Allowed {
		return s.denied("delete", d)
	}

	if err := s.repo.Delete(ctx, req.ID); err != nil {
		return err
	}

	s.logger.Info().Str("request_id", req.ID).Str("actor", actor.ID).Msg("maintenance request deleted")
	return nil
}

// CheckOverdue finds open requests past their scheduled date and notifies
// the assigned technicians. Repeat notifications for the same request are
// suppressed by the dedup store.
func (s *RequestService) CheckOverdue(ctx context.Context, actor domain.Principal, now time.Time) (*ports.OverdueResult, error) {
	if actor.Role != domain.RoleManager && actor.Role != domain.RoleAdmin {
		return nil, s.denied("check_overdue", authz.Decision{
			Reason: "Only managers and admins can check overdue requests",
		})
	}

	overdue, err := s.repo.FindOverdue(ctx, now)
	if err != nil {
		return nil, err
	}

	result := &ports.OverdueResult{Checked: len(overdue)}
	for _, req := range overdue {
		if req.TechnicianID == "" {
			continue
		}

		seen, err := s.dedup.AlreadyNotified(ctx, req.ID)
		if err != nil {
			s.logger.Warn().Err(err).Str("request_id", req.ID).Msg("overdue dedup check failed, notifying anyway")
		} else if seen {
			continue
		}

		if err := s.dedup.MarkNotified(ctx, req.ID); err != nil {
			s.logger.Warn().Err(err).Str("request_id", req.ID).Msg("failed to set overdue dedup key")
		}

		s.dispatcher.Enqueue(ports.Notification{
			Kind:        ports.NotifyOverdue,
			RequestID:   req.ID,
			RecipientID: req.TechnicianID,
			Subject:     req.Subject,
		})
		result.NotificationsSent++
	}

	s.logger.Info().
		Int("checked", result.Checked).
		Int("notified", result.NotificationsSent).
		Msg("overdue sweep completed")

	return result, nil
}

// denied converts a predicate denial into a ForbiddenError and records it.
func (s *RequestService) denied(action string, d authz.Decision) error {
	metrics.AuthzDenialsTotal.WithLabelValues(action).Inc()
	s.logger.Debug().Str("action", action).Str("reason", d.Reason).Msg("permission denied")
	return domain.Forbidden(d.Reason)
}
