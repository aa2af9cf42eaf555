package employeeapi

import (
	"github.com/gofiber/fiber/v2"
	"github.com/talenta-pe/talenta/pkg/hr/employee/employeesrv"
	"github.com/talenta-pe/talenta/pkg/iam/auth"
	"github.com/talenta-pe/talenta/pkg/iam/scopes"
	"github.com/talenta-pe/talenta/pkg/kernel"
)

type EmployeeHandlers struct {
	service *employeesrv.EmployeeService
}

func NewEmployeeHandlers(service *employeesrv.EmployeeService) *EmployeeHandlers {
	return &EmployeeHandlers{service: service}
}

func (h *EmployeeHandlers) RegisterRoutes(router fiber.Router, authMiddleware *auth.TokenMiddleware) {
	employees := router.Group("/employees", authMiddleware.Authenticate())

	employees.Get("/", authMiddleware.RequireScope(scopes.ScopeEmployeesRead), h.ListEmployees)
	employees.Get("/:id", authMiddleware.RequireScope(scopes.ScopeEmployeesRead), h.GetEmployee)
	employees.Get("/:id/leave-balance", authMiddleware.RequireScope(scopes.ScopeLeaveRead), h.GetLeaveBalance)
	employees.Post("/:id/deactivate", authMiddleware.RequireScope(scopes.ScopeEmployeesWrite), h.DeactivateEmployee)
}

func (h *EmployeeHandlers) ListEmployees(c *fiber.Ctx) error {
	pagination := kernel.PaginationOptions{
		Page:     c.QueryInt("page", 1),
		PageSize: c.QueryInt("page_size", 20),
	}

	result, err := h.service.ListEmployees(c.Context(), pagination)
	if err != nil {
		return err
	}

	return c.JSON(result)
}

func (h *EmployeeHandlers) GetEmployee(c *fiber.Ctx) error {
	userID := kernel.NewUserID(c.Params("id"))

	e, err := h.service.GetEmployee(c.Context(), userID)
	if err != nil {
		return err
	}

	return c.JSON(e)
}

func (h *EmployeeHandlers) GetLeaveBalance(c *fiber.Ctx) error {
	userID := kernel.NewUserID(c.Params("id"))
	year := c.QueryInt("year", 0)

	balance, err := h.service.GetLeaveBalance(c.Context(), userID, year)
	if err != nil {
		return err
	}

	return c.JSON(balance)
}

func (h *EmployeeHandlers) DeactivateEmployee(c *fiber.Ctx) error {
	userID := kernel.NewUserID(c.Params("id"))

	e, err := h.service.DeactivateEmployee(c.Context(), userID)
	if err != nil {
		return err
	}

	return c.JSON(e)
}
