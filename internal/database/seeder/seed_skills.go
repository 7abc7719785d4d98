package seeder

import (
	"context"
	"fmt"

	"staffhub/internal/database"
	"staffhub/internal/domain/skill"
)

type SkillsSeeder struct{}

func (SkillsSeeder) Name() string { return "skills" }

func (SkillsSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "skills", "id", "name", "category", "created_at"); err != nil {
		return err
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	items := []struct {
		Name     string
		Category string
	}{
		{Name: "Go", Category: skill.CategoryProgrammingLanguage},
		{Name: "JavaScript", Category: skill.CategoryProgrammingLanguage},
		{Name: "TypeScript", Category: skill.CategoryProgrammingLanguage},
		{Name: "Python", Category: skill.CategoryProgrammingLanguage},
		{Name: "React", Category: skill.CategoryFramework},
		{Name: "PostgreSQL", Category: skill.CategoryDatabase},
		{Name: "Redis", Category: skill.CategoryDatabase},
		{Name: "Docker", Category: skill.CategoryDevOps},
		{Name: "Kubernetes", Category: skill.CategoryDevOps},
		{Name: "AWS", Category: skill.CategoryCloud},
		{Name: "GCP", Category: skill.CategoryCloud},
		{Name: "Git", Category: skill.CategoryTool},
		{Name: "Communication", Category: skill.CategorySoftSkill},
	}

	for _, it := range items {
		_, err := tx.Exec(
			ctx,
			`INSERT INTO skills (name, category) VALUES ($1, $2) ON CONFLICT (name) DO NOTHING`,
			it.Name,
			it.Category,
		)
		if err != nil {
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
