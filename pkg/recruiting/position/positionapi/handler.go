package positionapi

import (
	"github.com/gofiber/fiber/v2"
	"github.com/talenta-pe/talenta/pkg/iam/auth"
	"github.com/talenta-pe/talenta/pkg/iam/scopes"
	"github.com/talenta-pe/talenta/pkg/kernel"
	"github.com/talenta-pe/talenta/pkg/recruiting/position"
	"github.com/talenta-pe/talenta/pkg/recruiting/position/positionsrv"
)

type PositionHandlers struct {
	service *positionsrv.PositionService
}

func NewPositionHandlers(service *positionsrv.PositionService) *PositionHandlers {
	return &PositionHandlers{service: service}
}

func (h *PositionHandlers) RegisterRoutes(router fiber.Router, authMiddleware *auth.TokenMiddleware) {
	positions := router.Group("/positions", authMiddleware.Authenticate())

	positions.Post("/", authMiddleware.RequireScope(scopes.ScopePositionsWrite), h.CreatePosition)
	positions.Get("/", authMiddleware.RequireScope(scopes.ScopePositionsRead), h.ListPositions)
	positions.Get("/:id", authMiddleware.RequireScope(scopes.ScopePositionsRead), h.GetPosition)
	positions.Put("/:id", authMiddleware.RequireScope(scopes.ScopePositionsWrite), h.UpdatePosition)
	positions.Delete("/:id", authMiddleware.RequireScope(scopes.ScopePositionsDelete), h.DeletePosition)
}

func (h *PositionHandlers) CreatePosition(c *fiber.Ctx) error {
	var req position.CreatePositionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	created, err := h.service.CreatePosition(c.Context(), req)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *PositionHandlers) ListPositions(c *fiber.Ctx) error {
	filters := position.ListFilters{}
	if status := c.Query("status"); status != "" {
		s := position.Status(status)
		filters.Status = &s
	}
	if department := c.Query("department"); department != "" {
		filters.Department = &department
	}

	pagination := kernel.PaginationOptions{
		Page:     c.QueryInt("page", 1),
		PageSize: c.QueryInt("page_size", 20),
	}

	result, err := h.service.ListPositions(c.Context(), filters, pagination)
	if err != nil {
		return err
	}

	return c.JSON(result)
}

func (h *PositionHandlers) GetPosition(c *fiber.Ctx) error {
	id := kernel.NewPositionID(c.Params("id"))

	p, err := h.service.GetPosition(c.Context(), id)
	if err != nil {
		return err
	}

	return c.JSON(p)
}

func (h *PositionHandlers) UpdatePosition(c *fiber.Ctx) error {
	id := kernel.NewPositionID(c.Params("id"))

	var req position.UpdatePositionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	updated, err := h.service.UpdatePosition(c.Context(), id, req)
	if err != nil {
		return err
	}

	return c.JSON(updated)
}

func (h *PositionHandlers) DeletePosition(c *fiber.Ctx) error {
	id := kernel.NewPositionID(c.Params("id"))

	if err := h.service.DeletePosition(c.Context(), id); err != nil {
		return err
	}

	return c.JSON(fiber.Map{"message": "Position deleted successfully"})
}
