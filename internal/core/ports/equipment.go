package ports

import (
	"context"
	"time"

	"github.com/gearguard/maintenance-system/internal/core/domain"
)

// EquipmentRepository defines persistence operations for equipment.
type EquipmentRepository interface {
	Create(ctx context.Context, e *domain.Equipment) (*domain.Equipment, error)
	FindByID(ctx context.Context, id string) (*domain.Equipment, error)
	List(ctx context.Context) ([]*domain.Equipment, error)
	Update(ctx context.Context, e *domain.Equipment) error
	// MarkScrapped sets the equipment status to Scrapped and records the
	// scrap date. Called best-effort when a request moves to Scrap.
	MarkScrapped(ctx context.Context, id string, at time.Time) error
}

// CreateEquipmentInput carries the data for registering equipment.
type CreateEquipmentInput struct {
	Name             string
	Category         string
	SerialNumber     string
	Department       string
	Company          string
	AssignedEmployee string
	TechnicianID     string
	TeamID           string
	Location         string
	WorkCenter       string
	Description      string
}

// EquipmentService defines equipment use cases.
type EquipmentService interface {
	Create(ctx context.Context, in CreateEquipmentInput) (*domain.Equipment, error)
	GetByID(ctx context.Context, id string) (*domain.Equipment, error)
	List(ctx context.Context) ([]*domain.Equipment, error)
	Scrap(ctx context.Context, actor domain.Principal, id string) (*domain.Equipment, error)
}
