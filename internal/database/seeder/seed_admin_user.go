package seeder

import (
	"context"
	"fmt"
	"os"
	"strings"

	"staffhub/internal/database"
	"staffhub/internal/domain/user"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// AdminUserSeeder creates the bootstrap admin account when
// ADMIN_EMAIL/ADMIN_PASSWORD are set and the email is not taken.
type AdminUserSeeder struct{}

func (AdminUserSeeder) Name() string { return "admin_user" }

func (AdminUserSeeder) Run(ctx context.Context, db database.DB) error {
	email := strings.ToLower(strings.TrimSpace(os.Getenv("ADMIN_EMAIL")))
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		return nil
	}

	if err := EnsureTableColumns(ctx, db, "users", "id", "email", "password_hash", "role"); err != nil {
		return err
	}

	var exists bool
	row := db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`, email)
	if err := row.Scan(&exists); err != nil {
		return err
	}
	if exists {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}

	_, err = db.Exec(ctx,
		`INSERT INTO users (id, email, password_hash, role) VALUES ($1, $2, $3, $4)`,
		uuid.New(), email, string(hash), user.RoleAdmin)
	return err
}
