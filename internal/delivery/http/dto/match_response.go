package dto

import "staffhub/internal/usecase"

// MatchResponse is one row of GET /projects/:id/matches, already in
// final order: match_percentage descending, personnel id ascending on
// ties.
type MatchResponse struct {
	PersonnelID       int64  `json:"personnel_id"`
	Name              string `json:"name"`
	Email             string `json:"email"`
	Role              string `json:"role"`
	ExperienceLevel   string `json:"experience_level"`
	MatchedCount      int    `json:"matched_count"`
	TotalRequirements int    `json:"total_requirements"`
	MatchPercentage   int    `json:"match_percentage"`
}

func FromCandidateMatch(m usecase.CandidateMatch) MatchResponse {
	return MatchResponse{
		PersonnelID:       m.Personnel.ID,
		Name:              m.Personnel.Name,
		Email:             m.Personnel.Email,
		Role:              m.Personnel.Role,
		ExperienceLevel:   m.Personnel.ExperienceLevel,
		MatchedCount:      m.MatchedCount,
		TotalRequirements: m.TotalRequired,
		MatchPercentage:   m.MatchPercentage,
	}
}

func FromCandidateMatches(items []usecase.CandidateMatch) []MatchResponse {
	out := make([]MatchResponse, 0, len(items))
	for _, m := range items {
		out = append(out, FromCandidateMatch(m))
	}
	return out
}
