package interviewapi

import (
	"github.com/gofiber/fiber/v2"
	"github.com/talenta-pe/talenta/pkg/iam/auth"
	"github.com/talenta-pe/talenta/pkg/iam/scopes"
	"github.com/talenta-pe/talenta/pkg/kernel"
	"github.com/talenta-pe/talenta/pkg/recruiting/interview"
	"github.com/talenta-pe/talenta/pkg/recruiting/interview/interviewsrv"
)

type InterviewHandlers struct {
	service *interviewsrv.InterviewService
}

func NewInterviewHandlers(service *interviewsrv.InterviewService) *InterviewHandlers {
	return &InterviewHandlers{service: service}
}

func (h *InterviewHandlers) RegisterRoutes(router fiber.Router, authMiddleware *auth.TokenMiddleware) {
	interviews := router.Group("/interviews", authMiddleware.Authenticate())

	interviews.Get("/:id", authMiddleware.RequireScope(scopes.ScopeInterviewsRead), h.GetInterview)
	interviews.Put("/:id", authMiddleware.RequireScope(scopes.ScopeInterviewsWrite), h.UpdateInterview)
	interviews.Delete("/:id", authMiddleware.RequireScope(scopes.ScopeInterviewsDelete), h.DeleteInterview)
	interviews.Post("/:id/feedback-draft", authMiddleware.RequireScope(scopes.ScopeInterviewsWrite), h.SuggestFeedback)

	// El agendado cuelga del candidato: opera sobre su postulación más reciente
	candidates := router.Group("/candidates", authMiddleware.Authenticate())
	candidates.Post("/:id/interviews", authMiddleware.RequireScope(scopes.ScopeInterviewsSchedule), h.ScheduleInterview)

	applications := router.Group("/applications", authMiddleware.Authenticate())
	applications.Get("/:id/interviews", authMiddleware.RequireScope(scopes.ScopeInterviewsRead), h.ListByApplication)
}

func (h *InterviewHandlers) ScheduleInterview(c *fiber.Ctx) error {
	candidateID := kernel.NewCandidateID(c.Params("id"))

	var req interview.ScheduleInterviewRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	created, err := h.service.ScheduleInterview(c.Context(), candidateID, req)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *InterviewHandlers) GetInterview(c *fiber.Ctx) error {
	id := kernel.NewInterviewID(c.Params("id"))

	found, err := h.service.GetInterview(c.Context(), id)
	if err != nil {
		return err
	}

	return c.JSON(found)
}

func (h *InterviewHandlers) ListByApplication(c *fiber.Ctx) error {
	applicationID := kernel.NewApplicationID(c.Params("id"))

	interviews, err := h.service.ListByApplication(c.Context(), applicationID)
	if err != nil {
		return err
	}

	return c.JSON(interviews)
}

func (h *InterviewHandlers) UpdateInterview(c *fiber.Ctx) error {
	id := kernel.NewInterviewID(c.Params("id"))

	var req interview.UpdateInterviewRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	updated, err := h.service.UpdateInterview(c.Context(), id, req)
	if err != nil {
		return err
	}

	return c.JSON(updated)
}

func (h *InterviewHandlers) DeleteInterview(c *fiber.Ctx) error {
	id := kernel.NewInterviewID(c.Params("id"))

	if err := h.service.DeleteInterview(c.Context(), id); err != nil {
		return err
	}

	return c.JSON(fiber.Map{"message": "Interview deleted successfully"})
}

func (h *InterviewHandlers) SuggestFeedback(c *fiber.Ctx) error {
	id := kernel.NewInterviewID(c.Params("id"))

	draft, err := h.service.SuggestFeedback(c.Context(), id)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{"draft": draft})
}
