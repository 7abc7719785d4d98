package handler

import (
	"time"

	"staffhub/internal/delivery/http/dto"
	"staffhub/internal/delivery/http/middleware"
	"staffhub/internal/pkg/response"
	"staffhub/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type ProjectHandler struct {
	uc       usecase.ProjectUsecase
	matching usecase.MatchingUsecase
}

type requirementRequest struct {
	SkillID        int64  `json:"skill_id"`
	MinProficiency string `json:"min_proficiency"`
}

type projectRequest struct {
	Name         string               `json:"name"`
	Description  string               `json:"description"`
	StartDate    string               `json:"start_date"`
	EndDate      string               `json:"end_date"`
	Status       string               `json:"status"`
	Requirements []requirementRequest `json:"requirements"`
}

func NewProjectHandler(uc usecase.ProjectUsecase, matching usecase.MatchingUsecase) *ProjectHandler {
	return &ProjectHandler{uc: uc, matching: matching}
}

func (h *ProjectHandler) RegisterRoutes(r fiber.Router, admin fiber.Handler) {
	if r == nil {
		return
	}

	grp := r.Group("/projects")
	grp.Get("/", h.List)
	grp.Post("/", h.Create)
	grp.Delete("/:id", h.Delete, admin)

	grp.Get("/:id/requirements", h.ListRequirements)
	grp.Post("/:id/requirements", h.AddRequirement)
	grp.Delete("/:id/requirements/:reqId", h.RemoveRequirement, admin)

	grp.Get("/:id/matches", h.Matches)
}

func (h *ProjectHandler) List(c fiber.Ctx) error {
	items, err := h.uc.ListProjects(c.Context())
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromProjectsWithRequirements(items))
}

func (h *ProjectHandler) Create(c fiber.Ctx) error {
	var req projectRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, nil, err)
	}

	start, err := parseDate(req.StartDate)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "invalid start_date", nil, err)
	}
	end, err := parseDate(req.EndDate)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "invalid end_date", nil, err)
	}

	reqs := make([]usecase.RequirementInput, 0, len(req.Requirements))
	for _, r := range req.Requirements {
		reqs = append(reqs, usecase.RequirementInput{SkillID: r.SkillID, MinProficiency: r.MinProficiency})
	}

	created, err := h.uc.CreateProject(c.Context(), usecase.ProjectInput{
		Name:         req.Name,
		Description:  req.Description,
		StartDate:    start,
		EndDate:      end,
		Status:       req.Status,
		Requirements: reqs,
	})
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, "Project created successfully", dto.FromProjectWithRequirements(created))
}

func (h *ProjectHandler) Delete(c fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.DeleteProject(c.Context(), id); err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "Project deleted successfully", nil)
}

func (h *ProjectHandler) ListRequirements(c fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}

	items, err := h.uc.ListRequirements(c.Context(), id)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromRequirements(items))
}

func (h *ProjectHandler) AddRequirement(c fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}

	var req requirementRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, nil, err)
	}

	created, err := h.uc.AddRequirement(c.Context(), id, usecase.RequirementInput{
		SkillID:        req.SkillID,
		MinProficiency: req.MinProficiency,
	})
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, "Requirement added successfully", dto.FromRequirement(created))
}

func (h *ProjectHandler) RemoveRequirement(c fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}
	reqID, err := idParam(c, "reqId")
	if err != nil {
		return err
	}

	if err := h.uc.RemoveRequirement(c.Context(), id, reqID); err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "Requirement removed successfully", nil)
}

func (h *ProjectHandler) Matches(c fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}

	items, err := h.matching.FindMatches(c.Context(), id)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromCandidateMatches(items))
}

// parseDate accepts a bare date or a full RFC 3339 timestamp.
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}
