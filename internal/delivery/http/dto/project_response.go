package dto

import (
	"time"

	"staffhub/internal/domain/project"
	"staffhub/internal/usecase"
)

type RequirementResponse struct {
	ID             int64  `json:"id"`
	ProjectID      int64  `json:"project_id"`
	SkillID        int64  `json:"skill_id"`
	SkillName      string `json:"skill_name"`
	Category       string `json:"category,omitempty"`
	MinProficiency string `json:"min_proficiency"`
}

type ProjectResponse struct {
	ID           int64                 `json:"id"`
	Name         string                `json:"name"`
	Description  string                `json:"description"`
	StartDate    time.Time             `json:"start_date"`
	EndDate      time.Time             `json:"end_date"`
	Status       string                `json:"status"`
	Requirements []RequirementResponse `json:"requirements"`
	CreatedAt    time.Time             `json:"created_at"`
	UpdatedAt    time.Time             `json:"updated_at"`
}

func FromRequirement(r project.Requirement) RequirementResponse {
	return RequirementResponse{
		ID:             r.ID,
		ProjectID:      r.ProjectID,
		SkillID:        r.SkillID,
		SkillName:      r.SkillName,
		Category:       r.Category,
		MinProficiency: string(r.MinProficiency),
	}
}

func FromRequirements(items []project.Requirement) []RequirementResponse {
	out := make([]RequirementResponse, 0, len(items))
	for _, r := range items {
		out = append(out, FromRequirement(r))
	}
	return out
}

func FromProjectWithRequirements(p usecase.ProjectWithRequirements) ProjectResponse {
	return ProjectResponse{
		ID:           p.Project.ID,
		Name:         p.Project.Name,
		Description:  p.Project.Description,
		StartDate:    p.Project.StartDate,
		EndDate:      p.Project.EndDate,
		Status:       p.Project.Status,
		Requirements: FromRequirements(p.Requirements),
		CreatedAt:    p.Project.CreatedAt,
		UpdatedAt:    p.Project.UpdatedAt,
	}
}

func FromProjectsWithRequirements(items []usecase.ProjectWithRequirements) []ProjectResponse {
	out := make([]ProjectResponse, 0, len(items))
	for _, p := range items {
		out = append(out, FromProjectWithRequirements(p))
	}
	return out
}
