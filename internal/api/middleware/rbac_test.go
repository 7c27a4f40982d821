package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/eadirect/ea-catalog/internal/core/domain"
)

func TestRBAC(t *testing.T) {
	cases := []struct {
		name    string
		role    any
		allowed []domain.UserRole
		code    int
	}{
		{"admin on admin route", "admin", []domain.UserRole{domain.RoleAdmin}, http.StatusOK},
		{"user on admin route", "user", []domain.UserRole{domain.RoleAdmin}, http.StatusForbidden},
		{"user on shared route", "user", []domain.UserRole{domain.RoleUser, domain.RoleAdmin}, http.StatusOK},
		{"no role claim", nil, []domain.UserRole{domain.RoleUser}, http.StatusForbidden},
		{"role of wrong type", 1, []domain.UserRole{domain.RoleAdmin}, http.StatusForbidden},
		{"no roles allowed", "admin", nil, http.StatusForbidden},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/v1/users", nil), rec)
			if tc.role != nil {
				c.Set("role", tc.role)
			}

			called := false
			h := RBAC(tc.allowed...)(func(c echo.Context) error {
				called = true
				return c.NoContent(http.StatusOK)
			})
			if err := h(c); err != nil {
				t.Fatalf("handler error: %v", err)
			}

			if rec.Code != tc.code {
				t.Fatalf("expected %d, got %d", tc.code, rec.Code)
			}
			if called != (tc.code == http.StatusOK) {
				t.Fatalf("next handler called=%v with status %d", called, rec.Code)
			}
		})
	}
}
