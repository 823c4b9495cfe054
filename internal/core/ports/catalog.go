package ports

import (
	"context"

	"github.com/gearguard/maintenance-system/internal/core/domain"
)

// TeamRepository defines persistence operations for maintenance teams.
type TeamRepository interface {
	Create(ctx context.Context, t *domain.MaintenanceTeam) (*domain.MaintenanceTeam, error)
	FindByID(ctx context.Context, id string) (*domain.MaintenanceTeam, error)
	List(ctx context.Context) ([]*domain.MaintenanceTeam, error)
}

// WorkCenterRepository defines persistence operations for work centers.
type WorkCenterRepository interface {
	Create(ctx context.Context, w *domain.WorkCenter) (*domain.WorkCenter, error)
	List(ctx context.Context) ([]*domain.WorkCenter, error)
}
