package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/gearguard/maintenance-system/internal/core/domain"
)

func invokeRBAC(mw echo.MiddlewareFunc, role string) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if role != "" {
		c.Set("role", role)
	}

	handler := mw(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	_ = handler(c)
	return rec
}

func TestRBAC(t *testing.T) {
	gate := RBAC(domain.RoleManager, domain.RoleAdmin)

	cases := []struct {
		name string
		role string
		want int
	}{
		{"manager allowed", "manager", http.StatusOK},
		{"admin allowed", "admin", http.StatusOK},
		{"technician forbidden", "technician", http.StatusForbidden},
		{"unknown role forbidden", "intruder", http.StatusForbidden},
		{"no role forbidden", "", http.StatusForbidden},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := invokeRBAC(gate, tc.role)
			if rec.Code != tc.want {
				t.Fatalf("status = %d, want %d", rec.Code, tc.want)
			}
		})
	}
}
