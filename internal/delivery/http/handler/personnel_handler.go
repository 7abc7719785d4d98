package handler

import (
	"staffhub/internal/delivery/http/dto"
	"staffhub/internal/delivery/http/middleware"
	"staffhub/internal/pkg/response"
	"staffhub/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type PersonnelHandler struct {
	uc     usecase.PersonnelUsecase
	skills usecase.PersonnelSkillUsecase
}

type personnelRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Role            string `json:"role"`
	ExperienceLevel string `json:"experience_level"`
	IsAvailable     *bool  `json:"is_available"`
}

type assignSkillRequest struct {
	SkillID          int64  `json:"skill_id"`
	ProficiencyLevel string `json:"proficiency_level"`
}

func NewPersonnelHandler(uc usecase.PersonnelUsecase, skills usecase.PersonnelSkillUsecase) *PersonnelHandler {
	return &PersonnelHandler{uc: uc, skills: skills}
}

func (h *PersonnelHandler) RegisterRoutes(r fiber.Router, admin fiber.Handler) {
	if r == nil {
		return
	}

	grp := r.Group("/personnel")
	grp.Get("/", h.List)
	grp.Post("/", h.Create)
	grp.Put("/:id", h.Update)
	grp.Delete("/:id", h.Delete, admin)

	grp.Get("/:id/skills", h.ListSkills)
	grp.Post("/:id/skills", h.AssignSkill)
	grp.Delete("/:id/skills/:skillId", h.UnassignSkill, admin)
}

func (h *PersonnelHandler) List(c fiber.Ctx) error {
	items, err := h.uc.ListPersonnel(c.Context(), c.Query("role"))
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromPersonnelList(items))
}

func (h *PersonnelHandler) Create(c fiber.Ctx) error {
	var req personnelRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, nil, err)
	}

	created, err := h.uc.CreatePersonnel(c.Context(), toPersonnelInput(req, true))
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, "Personnel created successfully", dto.FromPersonnel(created))
}

func (h *PersonnelHandler) Update(c fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}

	var req personnelRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, nil, err)
	}

	updated, err := h.uc.UpdatePersonnel(c.Context(), id, toPersonnelInput(req, true))
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "Personnel updated successfully", dto.FromPersonnel(updated))
}

func (h *PersonnelHandler) Delete(c fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.DeletePersonnel(c.Context(), id); err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "Personnel deleted successfully", nil)
}

func (h *PersonnelHandler) ListSkills(c fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}

	items, err := h.uc.ListAssignments(c.Context(), id)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromAssignments(items))
}

// AssignSkill upserts. A fresh assignment answers 201, an overwrite
// of the proficiency answers 200.
func (h *PersonnelHandler) AssignSkill(c fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}

	var req assignSkillRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, nil, err)
	}

	res, err := h.skills.Assign(c.Context(), id, usecase.AssignSkillInput{
		SkillID:          req.SkillID,
		ProficiencyLevel: req.ProficiencyLevel,
	})
	if err != nil {
		return mapUsecaseError(err)
	}

	status := fiber.StatusOK
	msg := "Skill assignment updated"
	if res.Created {
		status = fiber.StatusCreated
		msg = "Skill assigned successfully"
	}
	return response.Success(c, status, msg, dto.FromAssignment(res.Assignment))
}

func (h *PersonnelHandler) UnassignSkill(c fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}
	skillID, err := idParam(c, "skillId")
	if err != nil {
		return err
	}

	if err := h.skills.Unassign(c.Context(), id, skillID); err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "Skill unassigned successfully", nil)
}

func toPersonnelInput(req personnelRequest, defaultAvailable bool) usecase.PersonnelInput {
	available := defaultAvailable
	if req.IsAvailable != nil {
		available = *req.IsAvailable
	}
	return usecase.PersonnelInput{
		Name:            req.Name,
		Email:           req.Email,
		Role:            req.Role,
		ExperienceLevel: req.ExperienceLevel,
		IsAvailable:     available,
	}
}
