package repository

import (
	"context"
	"database/sql"
	"errors"

	"staffhub/internal/database"
	"staffhub/internal/domain/skill"

	"github.com/jackc/pgx/v5"
)

var (
	ErrSkillNotFound   = errors.New("skill not found")
	ErrSkillNameTaken  = errors.New("skill name already exists")
	ErrSkillReferenced = errors.New("skill referenced by ledger or requirements")
)

type SkillRepository interface {
	GetAllSkills(ctx context.Context) ([]skill.Skill, error)
	GetSkillByID(ctx context.Context, id int64) (skill.Skill, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	ExistsByID(ctx context.Context, id int64) (bool, error)
	IsReferenced(ctx context.Context, id int64) (bool, error)
	CreateSkill(ctx context.Context, s skill.Skill) (skill.Skill, error)
	UpdateSkill(ctx context.Context, s skill.Skill) (skill.Skill, error)
	DeleteSkill(ctx context.Context, id int64) error
	UpsertByName(ctx context.Context, name, category string) (skill.Skill, bool, error)
}

type PostgresSkillRepository struct {
	db database.DB
}

func NewPostgresSkillRepository(db database.DB) *PostgresSkillRepository {
	return &PostgresSkillRepository{db: db}
}

func (r *PostgresSkillRepository) GetAllSkills(ctx context.Context) ([]skill.Skill, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, name, category, COALESCE(description, ''), created_at
		 FROM skills
		 ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]skill.Skill, 0)
	for rows.Next() {
		var s skill.Skill
		if err := rows.Scan(&s.ID, &s.Name, &s.Category, &s.Description, &s.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresSkillRepository) GetSkillByID(ctx context.Context, id int64) (skill.Skill, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, name, category, COALESCE(description, ''), created_at
		 FROM skills
		 WHERE id = $1`, id)

	var s skill.Skill
	if err := row.Scan(&s.ID, &s.Name, &s.Category, &s.Description, &s.CreatedAt); err != nil {
		if err == sql.ErrNoRows || errors.Is(err, pgx.ErrNoRows) {
			return skill.Skill{}, ErrSkillNotFound
		}
		return skill.Skill{}, err
	}
	return s, nil
}

func (r *PostgresSkillRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	var exists bool
	row := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM skills WHERE name = $1)`, name)
	if err := row.Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *PostgresSkillRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var exists bool
	row := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM skills WHERE id = $1)`, id)
	if err := row.Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

// IsReferenced checks both downstream tables holding a skill FK. The
// delete precondition depends on this being a single read, not two.
func (r *PostgresSkillRepository) IsReferenced(ctx context.Context, id int64) (bool, error) {
	var referenced bool
	row := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM personnel_skills WHERE skill_id = $1)
		     OR EXISTS(SELECT 1 FROM project_requirements WHERE skill_id = $1)`, id)
	if err := row.Scan(&referenced); err != nil {
		return false, err
	}
	return referenced, nil
}

func (r *PostgresSkillRepository) CreateSkill(ctx context.Context, s skill.Skill) (skill.Skill, error) {
	row := r.db.QueryRow(ctx,
		`INSERT INTO skills (name, category, description)
		 VALUES ($1, $2, NULLIF($3, ''))
		 RETURNING id, created_at`,
		s.Name, s.Category, s.Description)
	if err := row.Scan(&s.ID, &s.CreatedAt); err != nil {
		return skill.Skill{}, err
	}
	return s, nil
}

func (r *PostgresSkillRepository) UpdateSkill(ctx context.Context, s skill.Skill) (skill.Skill, error) {
	affected, err := r.db.Exec(ctx,
		`UPDATE skills SET name = $1, category = $2, description = NULLIF($3, '')
		 WHERE id = $4`,
		s.Name, s.Category, s.Description, s.ID)
	if err != nil {
		return skill.Skill{}, err
	}
	if affected == 0 {
		return skill.Skill{}, ErrSkillNotFound
	}
	return r.GetSkillByID(ctx, s.ID)
}

func (r *PostgresSkillRepository) DeleteSkill(ctx context.Context, id int64) error {
	affected, err := r.db.Exec(ctx, `DELETE FROM skills WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrSkillNotFound
	}
	return nil
}

// UpsertByName backs the catalog importer: inserts a skill unless the
// name is already present. The bool reports whether a row was created.
func (r *PostgresSkillRepository) UpsertByName(ctx context.Context, name, category string) (skill.Skill, bool, error) {
	row := r.db.QueryRow(ctx,
		`INSERT INTO skills (name, category)
		 VALUES ($1, $2)
		 ON CONFLICT (name) DO NOTHING
		 RETURNING id, name, category, COALESCE(description, ''), created_at`,
		name, category)

	var s skill.Skill
	err := row.Scan(&s.ID, &s.Name, &s.Category, &s.Description, &s.CreatedAt)
	if err == nil {
		return s, true, nil
	}
	if err != sql.ErrNoRows && !errors.Is(err, pgx.ErrNoRows) {
		return skill.Skill{}, false, err
	}

	row = r.db.QueryRow(ctx,
		`SELECT id, name, category, COALESCE(description, ''), created_at
		 FROM skills WHERE name = $1`, name)
	if err := row.Scan(&s.ID, &s.Name, &s.Category, &s.Description, &s.CreatedAt); err != nil {
		return skill.Skill{}, false, err
	}
	return s, false, nil
}
