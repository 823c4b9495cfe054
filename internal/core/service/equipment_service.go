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

// EquipmentService implements equipment use cases. Route-level RBAC already
// restricts who reaches the mutating endpoints; the scrap operation
// additionally consults the rule engine because it is reachable from the
// request state machine as well.
type EquipmentService struct {
	repo   ports.EquipmentRepository
	logger zerolog.Logger
}

func NewEquipmentService(repo ports.EquipmentRepository, logger zerolog.Logger) *EquipmentService {
	return &EquipmentService{repo: repo, logger: logger}
}

func (s *EquipmentService) Create(ctx context.Context, in ports.CreateEquipmentInput) (*domain.Equipment, error) {
	now := time.Now().UTC()
	eq := &domain.Equipment{
		Name:             in.Name,
		Category:         in.Category,
		SerialNumber:     in.SerialNumber,
		Department:       in.Department,
		Company:          in.Company,
		AssignedEmployee: in.AssignedEmployee,
		TechnicianID:     in.TechnicianID,
		TeamID:           in.TeamID,
		Location:         in.Location,
		WorkCenter:       in.WorkCenter,
		Status:           domain.EquipmentActive,
		Description:      in.Description,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	created, err := s.repo.Create(ctx, eq)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create equipment")
		return nil, err
	}

	s.logger.Info().Str("equipment_id", created.ID).Str("name", created.Name).Msg("equipment registered")
	return created, nil
}

func (s *EquipmentService) GetByID(ctx context.Context, id string) (*domain.Equipment, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *EquipmentService) List(ctx context.Context) ([]*domain.Equipment, error) {
	return s.repo.List(ctx)
}

// Scrap retires a piece of equipment directly (outside the request flow).
func (s *EquipmentService) Scrap(ctx context.Context, actor domain.Principal, id string) (*domain.Equipment, error) {
	if d := authz.CanScrapEquipment(actor); !d.Allowed {
		metrics.AuthzDenialsTotal.WithLabelValues("scrap_equipment").Inc()
		return nil, domain.Forbidden(d.Reason)
	}

	if err := s.repo.MarkScrapped(ctx, id, time.Now().UTC()); err != nil {
		return nil, err
	}
	metrics.EquipmentScrappedTotal.Inc()

	return s.repo.FindByID(ctx, id)
}
