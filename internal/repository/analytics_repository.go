package repository

import (
	"context"

	"staffhub/internal/database"
)

type DashboardStats struct {
	TotalPersonnel     int64
	AvailablePersonnel int64
	TotalProjects      int64
	TotalSkills        int64
	ProjectsByStatus   map[string]int64
}

type AnalyticsRepository interface {
	GetDashboardStats(ctx context.Context) (DashboardStats, error)
}

type PostgresAnalyticsRepository struct {
	db database.DB
}

func NewPostgresAnalyticsRepository(db database.DB) *PostgresAnalyticsRepository {
	return &PostgresAnalyticsRepository{db: db}
}

func (r *PostgresAnalyticsRepository) GetDashboardStats(ctx context.Context) (DashboardStats, error) {
	stats := DashboardStats{ProjectsByStatus: make(map[string]int64)}

	row := r.db.QueryRow(ctx,
		`SELECT
		   (SELECT COUNT(*) FROM personnel),
		   (SELECT COUNT(*) FROM personnel WHERE is_available),
		   (SELECT COUNT(*) FROM projects),
		   (SELECT COUNT(*) FROM skills)`)
	if err := row.Scan(&stats.TotalPersonnel, &stats.AvailablePersonnel, &stats.TotalProjects, &stats.TotalSkills); err != nil {
		return DashboardStats{}, err
	}

	rows, err := r.db.Query(ctx, `SELECT status, COUNT(*) FROM projects GROUP BY status`)
	if err != nil {
		return DashboardStats{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var status string
		var count int64
		if err := rows.Scan(&status, &count); err != nil {
			return DashboardStats{}, err
		}
		stats.ProjectsByStatus[status] = count
	}
	if err := rows.Err(); err != nil {
		return DashboardStats{}, err
	}
	return stats, nil
}
