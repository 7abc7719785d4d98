package repository

import (
	"context"
	"database/sql"
	"errors"

	"staffhub/internal/database"
	"staffhub/internal/domain/project"

	"github.com/jackc/pgx/v5"
)

var ErrProjectNotFound = errors.New("project not found")

type ProjectRepository interface {
	GetAllProjects(ctx context.Context) ([]project.Project, error)
	GetProjectByID(ctx context.Context, id int64) (project.Project, error)
	ExistsByID(ctx context.Context, id int64) (bool, error)
	CreateProject(ctx context.Context, p project.Project) (project.Project, error)
	DeleteProject(ctx context.Context, id int64) error
}

type PostgresProjectRepository struct {
	db database.DB
}

func NewPostgresProjectRepository(db database.DB) *PostgresProjectRepository {
	return &PostgresProjectRepository{db: db}
}

const projectColumns = `id, name, description, start_date, end_date, status, created_at, updated_at`

func (r *PostgresProjectRepository) GetAllProjects(ctx context.Context) ([]project.Project, error) {
	rows, err := r.db.Query(ctx, `SELECT `+projectColumns+` FROM projects ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]project.Project, 0)
	for rows.Next() {
		var p project.Project
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.StartDate, &p.EndDate, &p.Status, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresProjectRepository) GetProjectByID(ctx context.Context, id int64) (project.Project, error) {
	row := r.db.QueryRow(ctx, `SELECT `+projectColumns+` FROM projects WHERE id = $1`, id)

	var p project.Project
	if err := row.Scan(&p.ID, &p.Name, &p.Description, &p.StartDate, &p.EndDate, &p.Status, &p.CreatedAt, &p.UpdatedAt); err != nil {
		if err == sql.ErrNoRows || errors.Is(err, pgx.ErrNoRows) {
			return project.Project{}, ErrProjectNotFound
		}
		return project.Project{}, err
	}
	return p, nil
}

func (r *PostgresProjectRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var exists bool
	row := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM projects WHERE id = $1)`, id)
	if err := row.Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *PostgresProjectRepository) CreateProject(ctx context.Context, p project.Project) (project.Project, error) {
	row := r.db.QueryRow(ctx,
		`INSERT INTO projects (name, description, start_date, end_date, status)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at, updated_at`,
		p.Name, p.Description, p.StartDate, p.EndDate, p.Status)
	if err := row.Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return project.Project{}, err
	}
	return p, nil
}

// DeleteProject cascades the project's requirement rows via the FK.
func (r *PostgresProjectRepository) DeleteProject(ctx context.Context, id int64) error {
	affected, err := r.db.Exec(ctx, `DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrProjectNotFound
	}
	return nil
}
