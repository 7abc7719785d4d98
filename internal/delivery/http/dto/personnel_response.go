package dto

import (
	"time"

	"staffhub/internal/domain/personnel"
)

type PersonnelResponse struct {
	ID              int64     `json:"id"`
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	Role            string    `json:"role"`
	ExperienceLevel string    `json:"experience_level"`
	IsAvailable     bool      `json:"is_available"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type AssignmentResponse struct {
	PersonnelID      int64     `json:"personnel_id"`
	SkillID          int64     `json:"skill_id"`
	SkillName        string    `json:"skill_name"`
	Category         string    `json:"category"`
	ProficiencyLevel string    `json:"proficiency_level"`
	CreatedAt        time.Time `json:"created_at"`
}

func FromPersonnel(p personnel.Personnel) PersonnelResponse {
	return PersonnelResponse{
		ID:              p.ID,
		Name:            p.Name,
		Email:           p.Email,
		Role:            p.Role,
		ExperienceLevel: p.ExperienceLevel,
		IsAvailable:     p.IsAvailable,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}

func FromPersonnelList(items []personnel.Personnel) []PersonnelResponse {
	out := make([]PersonnelResponse, 0, len(items))
	for _, p := range items {
		out = append(out, FromPersonnel(p))
	}
	return out
}

func FromAssignment(a personnel.Assignment) AssignmentResponse {
	return AssignmentResponse{
		PersonnelID:      a.PersonnelID,
		SkillID:          a.SkillID,
		SkillName:        a.SkillName,
		Category:         a.Category,
		ProficiencyLevel: string(a.Level),
		CreatedAt:        a.CreatedAt,
	}
}

func FromAssignments(items []personnel.Assignment) []AssignmentResponse {
	out := make([]AssignmentResponse, 0, len(items))
	for _, a := range items {
		out = append(out, FromAssignment(a))
	}
	return out
}
