package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

func appWithRole(role string, guard fiber.Handler) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"role": role})
		c.Locals("user", token)
		return c.Next()
	})
	app.Post("/guarded", guard, func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	return app
}

func TestTeacherRequired(t *testing.T) {
	tests := []struct {
		role string
		want int
	}{
		{"teacher", fiber.StatusOK},
		{"student", fiber.StatusForbidden},
	}
	for _, tt := range tests {
		app := appWithRole(tt.role, TeacherRequired())
		resp, err := app.Test(httptest.NewRequest("POST", "/guarded", nil))
		if err != nil {
			t.Fatalf("request failed: %v", err)
		}
		if resp.StatusCode != tt.want {
			t.Errorf("role %q: status = %d, want %d", tt.role, resp.StatusCode, tt.want)
		}
	}
}

func TestStudentRequired(t *testing.T) {
	tests := []struct {
		role string
		want int
	}{
		{"student", fiber.StatusOK},
		{"teacher", fiber.StatusForbidden},
	}
	for _, tt := range tests {
		app := appWithRole(tt.role, StudentRequired())
		resp, err := app.Test(httptest.NewRequest("POST", "/guarded", nil))
		if err != nil {
			t.Fatalf("request failed: %v", err)
		}
		if resp.StatusCode != tt.want {
			t.Errorf("role %q: status = %d, want %d", tt.role, resp.StatusCode, tt.want)
		}
	}
}
