package ports

import (
	"context"

	"github.com/gearguard/maintenance-system/internal/core/domain"
)

// AuthService defines registration and login.
type AuthService interface {
	Register(ctx context.Context, username, password, email string, role domain.Role) (*domain.User, error)
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
}
