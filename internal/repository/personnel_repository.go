package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"staffhub/internal/database"
	"staffhub/internal/domain/personnel"

	"github.com/jackc/pgx/v5"
)

var (
	ErrPersonnelNotFound   = errors.New("personnel not found")
	ErrPersonnelEmailTaken = errors.New("personnel email already exists")
)

type PersonnelFilter struct {
	Role          string
	OnlyAvailable bool
}

type PersonnelRepository interface {
	GetAllPersonnel(ctx context.Context, filter PersonnelFilter) ([]personnel.Personnel, error)
	GetPersonnelByID(ctx context.Context, id int64) (personnel.Personnel, error)
	ExistsByID(ctx context.Context, id int64) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	CreatePersonnel(ctx context.Context, p personnel.Personnel) (personnel.Personnel, error)
	UpdatePersonnel(ctx context.Context, p personnel.Personnel) (personnel.Personnel, error)
	DeletePersonnel(ctx context.Context, id int64) error
}

type PostgresPersonnelRepository struct {
	db database.DB
}

func NewPostgresPersonnelRepository(db database.DB) *PostgresPersonnelRepository {
	return &PostgresPersonnelRepository{db: db}
}

const personnelColumns = `id, name, email, role, experience_level, is_available, created_at, updated_at`

func (r *PostgresPersonnelRepository) GetAllPersonnel(ctx context.Context, filter PersonnelFilter) ([]personnel.Personnel, error) {
	q := `SELECT ` + personnelColumns + ` FROM personnel`
	conds := make([]string, 0, 2)
	args := make([]any, 0, 1)

	if strings.TrimSpace(filter.Role) != "" {
		args = append(args, filter.Role)
		conds = append(conds, `role = $1`)
	}
	if filter.OnlyAvailable {
		conds = append(conds, `is_available = TRUE`)
	}
	if len(conds) > 0 {
		q += ` WHERE ` + strings.Join(conds, ` AND `)
	}
	q += ` ORDER BY id ASC`

	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]personnel.Personnel, 0)
	for rows.Next() {
		var p personnel.Personnel
		if err := rows.Scan(&p.ID, &p.Name, &p.Email, &p.Role, &p.ExperienceLevel, &p.IsAvailable, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresPersonnelRepository) GetPersonnelByID(ctx context.Context, id int64) (personnel.Personnel, error) {
	row := r.db.QueryRow(ctx, `SELECT `+personnelColumns+` FROM personnel WHERE id = $1`, id)

	var p personnel.Personnel
	if err := row.Scan(&p.ID, &p.Name, &p.Email, &p.Role, &p.ExperienceLevel, &p.IsAvailable, &p.CreatedAt, &p.UpdatedAt); err != nil {
		if err == sql.ErrNoRows || errors.Is(err, pgx.ErrNoRows) {
			return personnel.Personnel{}, ErrPersonnelNotFound
		}
		return personnel.Personnel{}, err
	}
	return p, nil
}

func (r *PostgresPersonnelRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var exists bool
	row := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM personnel WHERE id = $1)`, id)
	if err := row.Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *PostgresPersonnelRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	row := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM personnel WHERE email = $1)`, email)
	if err := row.Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *PostgresPersonnelRepository) CreatePersonnel(ctx context.Context, p personnel.Personnel) (personnel.Personnel, error) {
	row := r.db.QueryRow(ctx,
		`INSERT INTO personnel (name, email, role, experience_level, is_available)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at, updated_at`,
		p.Name, p.Email, p.Role, p.ExperienceLevel, p.IsAvailable)
	if err := row.Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return personnel.Personnel{}, err
	}
	return p, nil
}

func (r *PostgresPersonnelRepository) UpdatePersonnel(ctx context.Context, p personnel.Personnel) (personnel.Personnel, error) {
	affected, err := r.db.Exec(ctx,
		`UPDATE personnel
		 SET name = $1, email = $2, role = $3, experience_level = $4, is_available = $5, updated_at = NOW()
		 WHERE id = $6`,
		p.Name, p.Email, p.Role, p.ExperienceLevel, p.IsAvailable, p.ID)
	if err != nil {
		return personnel.Personnel{}, err
	}
	if affected == 0 {
		return personnel.Personnel{}, ErrPersonnelNotFound
	}
	return r.GetPersonnelByID(ctx, p.ID)
}

func (r *PostgresPersonnelRepository) DeletePersonnel(ctx context.Context, id int64) error {
	affected, err := r.db.Exec(ctx, `DELETE FROM personnel WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrPersonnelNotFound
	}
	return nil
}
