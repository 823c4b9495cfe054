package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/gearguard/maintenance-system/internal/core/domain"
)

type stubAuthRepo struct {
	mu         sync.Mutex
	byUsername map[string]*domain.User
	nextID     int
}

func newStubAuthRepo() *stubAuthRepo {
	return &stubAuthRepo{byUsername: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	cp := *u
	return &cp
}

func (s *stubAuthRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.byUsername[user.Username]; ok {
		return nil, domain.ErrUserExists
	}
	s.nextID++
	user.ID = fmt.Sprintf("user-%d", s.nextID)
	s.byUsername[user.Username] = cloneUser(user)
	return cloneUser(user), nil
}

func (s *stubAuthRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.byUsername[username]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func TestRegisterAndLogin(t *testing.T) {
	svc := NewAuthService(newStubAuthRepo(), "test-secret", time.Hour)
	ctx := context.Background()

	user, err := svc.Register(ctx, "alice", "s3cret", "alice@plant.example", domain.RoleTechnician)
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if user.ID == "" {
		t.Error("registered user has no ID")
	}
	if user.PasswordHash == "s3cret" {
		t.Error("password stored in plain text")
	}
	if user.Role != domain.RoleTechnician {
		t.Errorf("role = %s, want technician", user.Role)
	}

	token, logged, err := svc.Login(ctx, "alice", "s3cret")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if logged.ID != user.ID {
		t.Errorf("logged in as %s, want %s", logged.ID, user.ID)
	}

	parsed, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token does not verify: %v", err)
	}
	claims := parsed.Claims.(jwt.MapClaims)
	if claims["user_id"] != user.ID {
		t.Errorf("user_id claim = %v, want %s", claims["user_id"], user.ID)
	}
	if claims["role"] != string(domain.RoleTechnician) {
		t.Errorf("role claim = %v, want technician", claims["role"])
	}
}

func TestRegister_DuplicateUsername(t *testing.T) {
	svc := NewAuthService(newStubAuthRepo(), "test-secret", time.Hour)
	ctx := context.Background()

	if _, err := svc.Register(ctx, "bob", "pw", "", domain.RoleManager); err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	_, err := svc.Register(ctx, "bob", "pw2", "", domain.RoleManager)
	if !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestRegister_InvalidInput(t *testing.T) {
	svc := NewAuthService(newStubAuthRepo(), "test-secret", time.Hour)
	ctx := context.Background()

	cases := []struct {
		name     string
		username string
		password string
		role     domain.Role
	}{
		{"empty username", "", "pw", domain.RoleManager},
		{"empty password", "bob", "", domain.RoleManager},
		{"unknown role", "bob", "pw", "superuser"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Register(ctx, tc.username, tc.password, "", tc.role)
			if !errors.Is(err, domain.ErrInvalidCredentials) {
				t.Fatalf("expected ErrInvalidCredentials, got %v", err)
			}
		})
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	svc := NewAuthService(newStubAuthRepo(), "test-secret", time.Hour)
	ctx := context.Background()

	if _, err := svc.Register(ctx, "carol", "right", "", domain.RoleAdmin); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	_, _, err := svc.Login(ctx, "carol", "wrong")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}

	_, _, err = svc.Login(ctx, "nobody", "pw")
	if !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
