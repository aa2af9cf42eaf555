package authapi

import (
	"github.com/gofiber/fiber/v2"
	"github.com/talenta-pe/talenta/pkg/iam"
	"github.com/talenta-pe/talenta/pkg/iam/auth"
	"github.com/talenta-pe/talenta/pkg/iam/auth/authsrv"
)

type AuthHandlers struct {
	service *authsrv.AuthService
}

func NewAuthHandlers(service *authsrv.AuthService) *AuthHandlers {
	return &AuthHandlers{service: service}
}

func (h *AuthHandlers) RegisterRoutes(router fiber.Router, authMiddleware *auth.TokenMiddleware) {
	authGroup := router.Group("/auth")

	authGroup.Post("/login", h.Login)
	authGroup.Post("/change-password", authMiddleware.Authenticate(), h.ChangePassword)
}

func (h *AuthHandlers) Login(c *fiber.Ctx) error {
	var req authsrv.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	response, err := h.service.Login(c.Context(), req)
	if err != nil {
		return err
	}

	return c.JSON(response)
}

type changePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=8"`
}

func (h *AuthHandlers) ChangePassword(c *fiber.Ctx) error {
	authContext, ok := auth.GetAuthContext(c)
	if !ok {
		return iam.ErrUnauthorized()
	}

	var req changePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := h.service.ChangePassword(c.Context(), authContext.Email, req.CurrentPassword, req.NewPassword); err != nil {
		return err
	}

	return c.JSON(fiber.Map{"message": "Password updated successfully"})
}
