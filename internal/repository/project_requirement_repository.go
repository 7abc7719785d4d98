package repository

import (
	"context"
	"errors"

	"staffhub/internal/database"
	"staffhub/internal/domain/proficiency"
	"staffhub/internal/domain/project"
)

var ErrRequirementNotFound = errors.New("requirement not found")

// ProjectRequirementRepository manages a project's requirement set.
// Rows are independent single-row inserts/deletes; there is no
// uniqueness on (project_id, skill_id).
type ProjectRequirementRepository interface {
	FindByProjectID(ctx context.Context, projectID int64) ([]project.Requirement, error)
	FindByProjectIDs(ctx context.Context, projectIDs []int64) (map[int64][]project.Requirement, error)
	Create(ctx context.Context, req project.Requirement) (project.Requirement, error)
	CreateMany(ctx context.Context, reqs []project.Requirement) error
	Delete(ctx context.Context, projectID, requirementID int64) error
}

type PostgresProjectRequirementRepository struct {
	db database.DB
}

func NewPostgresProjectRequirementRepository(db database.DB) *PostgresProjectRequirementRepository {
	return &PostgresProjectRequirementRepository{db: db}
}

func (r *PostgresProjectRequirementRepository) FindByProjectID(ctx context.Context, projectID int64) ([]project.Requirement, error) {
	rows, err := r.db.Query(ctx,
		`SELECT pr.id, pr.project_id, pr.skill_id, s.name, s.category, pr.min_proficiency
		 FROM project_requirements pr
		 JOIN skills s ON s.id = pr.skill_id
		 WHERE pr.project_id = $1
		 ORDER BY pr.id ASC`,
		projectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]project.Requirement, 0)
	for rows.Next() {
		req, err := scanRequirement(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, req)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresProjectRequirementRepository) FindByProjectIDs(ctx context.Context, projectIDs []int64) (map[int64][]project.Requirement, error) {
	out := make(map[int64][]project.Requirement, len(projectIDs))
	if len(projectIDs) == 0 {
		return out, nil
	}

	rows, err := r.db.Query(ctx,
		`SELECT pr.id, pr.project_id, pr.skill_id, s.name, s.category, pr.min_proficiency
		 FROM project_requirements pr
		 JOIN skills s ON s.id = pr.skill_id
		 WHERE pr.project_id = ANY($1)
		 ORDER BY pr.project_id ASC, pr.id ASC`,
		projectIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		req, err := scanRequirement(rows)
		if err != nil {
			return nil, err
		}
		out[req.ProjectID] = append(out[req.ProjectID], req)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresProjectRequirementRepository) Create(ctx context.Context, req project.Requirement) (project.Requirement, error) {
	row := r.db.QueryRow(ctx,
		`INSERT INTO project_requirements (project_id, skill_id, min_proficiency)
		 VALUES ($1, $2, $3)
		 RETURNING id`,
		req.ProjectID, req.SkillID, string(req.MinProficiency))
	if err := row.Scan(&req.ID); err != nil {
		return project.Requirement{}, err
	}

	nameRow := r.db.QueryRow(ctx, `SELECT name, category FROM skills WHERE id = $1`, req.SkillID)
	if err := nameRow.Scan(&req.SkillName, &req.Category); err != nil {
		return project.Requirement{}, err
	}
	return req, nil
}

// CreateMany inserts the initial requirement array of a new project
// inside one transaction so a half-written set never survives.
func (r *PostgresProjectRequirementRepository) CreateMany(ctx context.Context, reqs []project.Requirement) error {
	if len(reqs) == 0 {
		return nil
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	for _, req := range reqs {
		if _, err := tx.Exec(ctx,
			`INSERT INTO project_requirements (project_id, skill_id, min_proficiency)
			 VALUES ($1, $2, $3)`,
			req.ProjectID, req.SkillID, string(req.MinProficiency)); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

// Delete is scoped to the owning project: a valid requirement id
// under a different project is still not found.
func (r *PostgresProjectRequirementRepository) Delete(ctx context.Context, projectID, requirementID int64) error {
	affected, err := r.db.Exec(ctx,
		`DELETE FROM project_requirements WHERE id = $1 AND project_id = $2`,
		requirementID, projectID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrRequirementNotFound
	}
	return nil
}

func scanRequirement(rows database.Rows) (project.Requirement, error) {
	var req project.Requirement
	var level string
	if err := rows.Scan(&req.ID, &req.ProjectID, &req.SkillID, &req.SkillName, &req.Category, &level); err != nil {
		return project.Requirement{}, err
	}
	req.MinProficiency = proficiency.Level(level)
	return req, nil
}
