package dto

import "staffhub/internal/repository"

type DashboardStatsResponse struct {
	TotalPersonnel     int64            `json:"total_personnel"`
	AvailablePersonnel int64            `json:"available_personnel"`
	TotalProjects      int64            `json:"total_projects"`
	TotalSkills        int64            `json:"total_skills"`
	ProjectsByStatus   map[string]int64 `json:"projects_by_status"`
}

func FromDashboardStats(s repository.DashboardStats) DashboardStatsResponse {
	byStatus := s.ProjectsByStatus
	if byStatus == nil {
		byStatus = map[string]int64{}
	}
	return DashboardStatsResponse{
		TotalPersonnel:     s.TotalPersonnel,
		AvailablePersonnel: s.AvailablePersonnel,
		TotalProjects:      s.TotalProjects,
		TotalSkills:        s.TotalSkills,
		ProjectsByStatus:   byStatus,
	}
}
