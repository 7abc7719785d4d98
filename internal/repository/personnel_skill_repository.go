package repository

import (
	"context"
	"errors"

	"staffhub/internal/database"
	"staffhub/internal/domain/personnel"
	"staffhub/internal/domain/proficiency"
)

var ErrAssignmentNotFound = errors.New("assignment not found")

// PersonnelSkillRepository is the ledger: one proficiency per
// (personnel, skill) pair, upserted on re-assignment.
type PersonnelSkillRepository interface {
	FindByPersonnelID(ctx context.Context, personnelID int64) ([]personnel.Assignment, error)
	FindByPersonnelIDs(ctx context.Context, personnelIDs []int64) (map[int64][]personnel.Assignment, error)
	Upsert(ctx context.Context, personnelID, skillID int64, level proficiency.Level) (personnel.Assignment, bool, error)
	Delete(ctx context.Context, personnelID, skillID int64) error
}

type PostgresPersonnelSkillRepository struct {
	db database.DB
}

func NewPostgresPersonnelSkillRepository(db database.DB) *PostgresPersonnelSkillRepository {
	return &PostgresPersonnelSkillRepository{db: db}
}

func (r *PostgresPersonnelSkillRepository) FindByPersonnelID(ctx context.Context, personnelID int64) ([]personnel.Assignment, error) {
	rows, err := r.db.Query(ctx,
		`SELECT ps.personnel_id, ps.skill_id, s.name, s.category, ps.proficiency_level, ps.created_at
		 FROM personnel_skills ps
		 JOIN skills s ON s.id = ps.skill_id
		 WHERE ps.personnel_id = $1
		 ORDER BY s.name ASC`,
		personnelID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]personnel.Assignment, 0)
	for rows.Next() {
		a, err := scanAssignment(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// FindByPersonnelIDs loads the ledger for a whole candidate pool in
// one query, keyed by personnel id. The matcher reads through this.
func (r *PostgresPersonnelSkillRepository) FindByPersonnelIDs(ctx context.Context, personnelIDs []int64) (map[int64][]personnel.Assignment, error) {
	out := make(map[int64][]personnel.Assignment, len(personnelIDs))
	if len(personnelIDs) == 0 {
		return out, nil
	}

	rows, err := r.db.Query(ctx,
		`SELECT ps.personnel_id, ps.skill_id, s.name, s.category, ps.proficiency_level, ps.created_at
		 FROM personnel_skills ps
		 JOIN skills s ON s.id = ps.skill_id
		 WHERE ps.personnel_id = ANY($1)
		 ORDER BY ps.personnel_id ASC, s.name ASC`,
		personnelIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		a, err := scanAssignment(rows)
		if err != nil {
			return nil, err
		}
		out[a.PersonnelID] = append(out[a.PersonnelID], a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Upsert inserts the row or, when the (personnel, skill) pair already
// exists, overwrites its proficiency. The bool reports insert (true)
// versus update (false).
func (r *PostgresPersonnelSkillRepository) Upsert(ctx context.Context, personnelID, skillID int64, level proficiency.Level) (personnel.Assignment, bool, error) {
	row := r.db.QueryRow(ctx,
		`INSERT INTO personnel_skills (personnel_id, skill_id, proficiency_level)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (personnel_id, skill_id)
		 DO UPDATE SET proficiency_level = EXCLUDED.proficiency_level
		 RETURNING (xmax = 0), created_at`,
		personnelID, skillID, string(level))

	var inserted bool
	a := personnel.Assignment{PersonnelID: personnelID, SkillID: skillID, Level: level}
	if err := row.Scan(&inserted, &a.CreatedAt); err != nil {
		return personnel.Assignment{}, false, err
	}

	nameRow := r.db.QueryRow(ctx, `SELECT name, category FROM skills WHERE id = $1`, skillID)
	if err := nameRow.Scan(&a.SkillName, &a.Category); err != nil {
		return personnel.Assignment{}, false, err
	}
	return a, inserted, nil
}

func (r *PostgresPersonnelSkillRepository) Delete(ctx context.Context, personnelID, skillID int64) error {
	affected, err := r.db.Exec(ctx,
		`DELETE FROM personnel_skills WHERE personnel_id = $1 AND skill_id = $2`,
		personnelID, skillID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrAssignmentNotFound
	}
	return nil
}

func scanAssignment(rows database.Rows) (personnel.Assignment, error) {
	var a personnel.Assignment
	var level string
	if err := rows.Scan(&a.PersonnelID, &a.SkillID, &a.SkillName, &a.Category, &level, &a.CreatedAt); err != nil {
		return personnel.Assignment{}, err
	}
	a.Level = proficiency.Level(level)
	return a, nil
}
