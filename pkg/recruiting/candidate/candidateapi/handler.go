package candidateapi

import (
	"io"

	"github.com/gofiber/fiber/v2"
	"github.com/talenta-pe/talenta/pkg/iam/auth"
	"github.com/talenta-pe/talenta/pkg/iam/scopes"
	"github.com/talenta-pe/talenta/pkg/kernel"
	"github.com/talenta-pe/talenta/pkg/recruiting/candidate"
	"github.com/talenta-pe/talenta/pkg/recruiting/candidate/candidatesrv"
)

type CandidateHandlers struct {
	service *candidatesrv.CandidateService
}

func NewCandidateHandlers(service *candidatesrv.CandidateService) *CandidateHandlers {
	return &CandidateHandlers{service: service}
}

func (h *CandidateHandlers) RegisterRoutes(router fiber.Router, authMiddleware *auth.TokenMiddleware) {
	candidates := router.Group("/candidates", authMiddleware.Authenticate())

	candidates.Post("/", authMiddleware.RequireScope(scopes.ScopeCandidatesWrite), h.CreateCandidate)
	candidates.Get("/", authMiddleware.RequireScope(scopes.ScopeCandidatesRead), h.ListCandidates)
	candidates.Get("/:id", authMiddleware.RequireScope(scopes.ScopeCandidatesRead), h.GetCandidate)
	candidates.Put("/:id", authMiddleware.RequireScope(scopes.ScopeCandidatesWrite), h.UpdateCandidate)
	candidates.Get("/:id/detail", authMiddleware.RequireScope(scopes.ScopeCandidatesRead), h.GetCandidateDetail)
	candidates.Post("/:id/detail/refresh", authMiddleware.RequireScope(scopes.ScopeCandidatesRead), h.RefreshCandidateDetail)
	candidates.Post("/:id/resume", authMiddleware.RequireScope(scopes.ScopeCandidatesWrite), h.UploadResume)
	candidates.Get("/:id/resume", authMiddleware.RequireScope(scopes.ScopeCandidatesRead), h.DownloadResume)
}

func (h *CandidateHandlers) CreateCandidate(c *fiber.Ctx) error {
	var req candidate.CreateCandidateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	created, err := h.service.CreateCandidate(c.Context(), req)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *CandidateHandlers) ListCandidates(c *fiber.Ctx) error {
	filters := candidate.ListFilters{}
	if status := c.Query("status"); status != "" {
		s := candidate.Status(status)
		filters.Status = &s
	}
	if search := c.Query("search"); search != "" {
		filters.Search = &search
	}

	pagination := kernel.PaginationOptions{
		Page:     c.QueryInt("page", 1),
		PageSize: c.QueryInt("page_size", 20),
	}

	result, err := h.service.ListCandidates(c.Context(), filters, pagination)
	if err != nil {
		return err
	}

	return c.JSON(result)
}

func (h *CandidateHandlers) GetCandidate(c *fiber.Ctx) error {
	id := kernel.NewCandidateID(c.Params("id"))

	found, err := h.service.GetCandidate(c.Context(), id)
	if err != nil {
		return err
	}

	return c.JSON(found)
}

func (h *CandidateHandlers) UpdateCandidate(c *fiber.Ctx) error {
	id := kernel.NewCandidateID(c.Params("id"))

	var req candidate.UpdateCandidateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	updated, err := h.service.UpdateCandidate(c.Context(), id, req)
	if err != nil {
		return err
	}

	return c.JSON(updated)
}

func (h *CandidateHandlers) GetCandidateDetail(c *fiber.Ctx) error {
	id := kernel.NewCandidateID(c.Params("id"))

	detail, err := h.service.GetDetail(c.Context(), id)
	if err != nil {
		return err
	}

	return c.JSON(detail)
}

func (h *CandidateHandlers) RefreshCandidateDetail(c *fiber.Ctx) error {
	id := kernel.NewCandidateID(c.Params("id"))

	detail, err := h.service.RefreshDetail(c.Context(), id)
	if err != nil {
		return err
	}

	return c.JSON(detail)
}

func (h *CandidateHandlers) UploadResume(c *fiber.Ctx) error {
	id := kernel.NewCandidateID(c.Params("id"))

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Missing file upload"})
	}

	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Could not read file upload"})
	}
	defer file.Close()

	updated, err := h.service.UploadResume(c.Context(), id, fileHeader.Filename, fileHeader.Header.Get("Content-Type"), file)
	if err != nil {
		return err
	}

	return c.JSON(updated)
}

func (h *CandidateHandlers) DownloadResume(c *fiber.Ctx) error {
	id := kernel.NewCandidateID(c.Params("id"))

	resume, err := h.service.OpenResume(c.Context(), id)
	if err != nil {
		return err
	}
	defer resume.Close()

	content, err := io.ReadAll(resume)
	if err != nil {
		return err
	}

	c.Set("Content-Type", "application/octet-stream")
	return c.Send(content)
}
