package service

import (
	"github.com/gofiber/fiber/v2"

	"fiber/khayalethu/app/model"
	"fiber/khayalethu/app/repo"
	"fiber/khayalethu/helper"
)

type AuthService struct {
	repo repo.AdminRepository
}

func NewAuthService(r repo.AdminRepository) *AuthService {
	return &AuthService{repo: r}
}

// POST /api/auth/login
func (s *AuthService) Login(c *fiber.Ctx) error {
	var req model.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(model.ErrorResponse{
			Success: false,
			Message: "Invalid input",
		})
	}

	if err := helper.ValidateStruct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(model.ErrorResponse{
			Success: false,
			Message: helper.FormatValidationErrors(err),
		})
	}

	admin, err := s.repo.FindByUsername(req.Username)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(model.ErrorResponse{
			Success: false,
			Message: "Invalid credentials",
		})
	}

	if !helper.CheckPasswordHash(req.Password, admin.PasswordHash) {
		return c.Status(fiber.StatusUnauthorized).JSON(model.ErrorResponse{
			Success: false,
			Message: "Invalid credentials",
		})
	}

	token, err := helper.GenerateToken(*admin)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(model.ErrorResponse{
			Success: false,
			Message: "Failed to generate token",
		})
	}

	return c.JSON(model.SuccessResponse[model.LoginData]{
		Success: true,
		Message: "Login successful",
		Data: model.LoginData{
			Token:    token,
			Username: admin.Username,
			Role:     model.RoleAdmin,
		},
	})
}
