package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"fiber/khayalethu/app/model"
	"fiber/khayalethu/config"
	"fiber/khayalethu/helper"
)

func guardedApp() *fiber.App {
	app := fiber.New()
	app.Get("/guarded", AdminOnly(), func(c *fiber.Ctx) error {
		return c.SendString(c.Locals("username").(string))
	})
	return app
}

func get(t *testing.T, app *fiber.App, authorization string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	return resp
}

func TestAdminOnly(t *testing.T) {
	config.Env.JWTSecret = "test-secret"

	token, err := helper.GenerateToken(model.AdminUser{
		ID:       uuid.New(),
		Username: "admin",
	})
	if err != nil {
		t.Fatal(err)
	}

	app := guardedApp()

	tests := []struct {
		name          string
		authorization string
		want          int
	}{
		{"valid token", "Bearer " + token, fiber.StatusOK},
		{"no header", "", fiber.StatusUnauthorized},
		{"not bearer", "Basic abc123", fiber.StatusUnauthorized},
		{"garbage token", "Bearer not-a-jwt", fiber.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := get(t, app, tt.authorization)
			if resp.StatusCode != tt.want {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.want)
			}
		})
	}
}

func TestAdminOnlyRejectsForeignSignature(t *testing.T) {
	config.Env.JWTSecret = "first-secret"
	token, err := helper.GenerateToken(model.AdminUser{ID: uuid.New(), Username: "admin"})
	if err != nil {
		t.Fatal(err)
	}

	config.Env.JWTSecret = "second-secret"
	resp := get(t, guardedApp(), "Bearer "+token)
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Errorf("status = %d, want 401 for a token signed with another key", resp.StatusCode)
	}
}
