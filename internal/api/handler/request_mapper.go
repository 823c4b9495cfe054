package handler

import (
	"fmt"

	"github.com/gearguard/maintenance-system/internal/core/authz"
	"github.com/gearguard/maintenance-system/internal/core/domain"
	"github.com/gearguard/maintenance-system/internal/core/ports"
)

// --- Request → Service input ---

func toCreateInput(req createRequestRequest) ports.CreateRequestInput {
	return ports.CreateRequestInput{
		Subject:         req.Subject,
		EquipmentID:     req.EquipmentID,
		Category:        req.Category,
		MaintenanceType: domain.MaintenanceType(req.MaintenanceType),
		TeamID:          req.TeamID,
		TechnicianID:    req.TechnicianID,
		RequestDate:     req.RequestDate,
		ScheduledDate:   req.ScheduledDate,
		DurationHours:   req.DurationHours,
		Priority:        domain.Priority(req.Priority),
		Company:         req.Company,
		Notes:           req.Notes,
		Instructions:    req.Instructions,
	}
}

func toPatch(req updateRequestRequest) ports.RequestPatch {
	return ports.RequestPatch{
		Subject:         req.Subject,
		EquipmentID:     req.EquipmentID,
		Category:        req.Category,
		MaintenanceType: req.MaintenanceType,
		TeamID:          req.TeamID,
		TechnicianID:    req.TechnicianID,
		ScheduledDate:   req.ScheduledDate,
		DurationHours:   req.DurationHours,
		Priority:        req.Priority,
		Company:         req.Company,
		Status:          req.Status,
		Notes:           req.Notes,
		Instructions:    req.Instructions,
	}
}

// --- Domain → HTTP response ---

func toRequestResponse(r *domain.MaintenanceRequest, perms *authz.Permissions) requestResponse {
	resp := requestResponse{
		ID:              r.ID,
		Subject:         r.Subject,
		CreatedBy:       r.CreatedBy,
		EquipmentID:     r.EquipmentID,
		Category:        r.Category,
		MaintenanceType: string(r.MaintenanceType),
		TeamID:          r.TeamID,
		TechnicianID:    r.TechnicianID,
		RequestDate:     r.RequestDate,
		DurationHours:   r.DurationHours,
		Priority:        string(r.Priority),
		Company:         r.Company,
		Status:          string(r.Status),
		Notes:           r.Notes,
		Instructions:    r.Instructions,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
		Permissions:     perms,
	}
	if !r.ScheduledDate.IsZero() {
		sd := r.ScheduledDate
		resp.ScheduledDate = &sd
	}
	return resp
}

func toViewResponse(v *ports.RequestView) requestResponse {
	perms := v.Permissions
	return toRequestResponse(v.Request, &perms)
}

func toListResponse(items []*domain.MaintenanceRequest) listRequestsResponse {
	data := make([]requestResponse, 0, len(items))
	for _, r := range items {
		data = append(data, toRequestResponse(r, nil))
	}
	return listRequestsResponse{Data: data, Total: len(data)}
}

func overdueMessage(r *ports.OverdueResult) string {
	return fmt.Sprintf("Checked %d overdue requests, sent %d notifications", r.Checked, r.NotificationsSent)
}
