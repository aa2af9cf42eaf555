package hiringapi

import (
	"github.com/gofiber/fiber/v2"
	"github.com/talenta-pe/talenta/pkg/iam/auth"
	"github.com/talenta-pe/talenta/pkg/iam/scopes"
	"github.com/talenta-pe/talenta/pkg/kernel"
	"github.com/talenta-pe/talenta/pkg/recruiting/hiring/hiringsrv"
)

type HiringHandlers struct {
	service *hiringsrv.HiringService
}

func NewHiringHandlers(service *hiringsrv.HiringService) *HiringHandlers {
	return &HiringHandlers{service: service}
}

func (h *HiringHandlers) RegisterRoutes(router fiber.Router, authMiddleware *auth.TokenMiddleware) {
	candidates := router.Group("/candidates", authMiddleware.Authenticate())

	candidates.Get("/:id/hire-eligibility", authMiddleware.RequireScope(scopes.ScopeHiringRead), h.GetEligibility)
	candidates.Post("/:id/hire", authMiddleware.RequireScope(scopes.ScopeHiringConfirm), h.ConfirmHire)
}

func (h *HiringHandlers) GetEligibility(c *fiber.Ctx) error {
	candidateID := kernel.NewCandidateID(c.Params("id"))

	eval, err := h.service.EvaluateCandidate(c.Context(), candidateID)
	if err != nil {
		return err
	}

	return c.JSON(eval)
}

func (h *HiringHandlers) ConfirmHire(c *fiber.Ctx) error {
	candidateID := kernel.NewCandidateID(c.Params("id"))

	result, err := h.service.ConfirmHire(c.Context(), candidateID)
	if err != nil {
		return err
	}

	return c.JSON(result)
}
