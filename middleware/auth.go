package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"fiber/khayalethu/app/model"
	"fiber/khayalethu/helper"
)

// AdminOnly guards the dashboard surface: list, status update, export and
// the mail probe. Applicant submission stays public.
func AdminOnly() fiber.Handler {
	return func(c *fiber.Ctx) error {
		bearer := strings.TrimSpace(c.Get("Authorization"))
		if bearer == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(model.ErrorResponse{
				Success: false,
				Message: "Token required",
			})
		}

		if len(bearer) < 7 || !strings.EqualFold(bearer[:7], "Bearer ") {
			return c.Status(fiber.StatusUnauthorized).JSON(model.ErrorResponse{
				Success: false,
				Message: "Invalid bearer token format",
			})
		}
		token := strings.TrimSpace(bearer[7:])

		claims, err := helper.ValidateToken(token)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(model.ErrorResponse{
				Success: false,
				Message: "Invalid token",
			})
		}

		if claims.Role != model.RoleAdmin || claims.Username == "" {
			return c.Status(fiber.StatusForbidden).JSON(model.ErrorResponse{
				Success: false,
				Message: "Admin only",
			})
		}

		c.Locals("user_id", claims.UserID)
		c.Locals("username", claims.Username)
		c.Locals("role", claims.Role)

		return c.Next()
	}
}
