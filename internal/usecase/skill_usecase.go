package usecase

import (
	"context"
	"errors"
	"strings"

	"staffhub/internal/domain/skill"
	"staffhub/internal/infrastructure/cache"
	"staffhub/internal/repository"
	"staffhub/internal/ws"
)

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrSkillNotFound      = errors.New("skill not found")
	ErrDuplicateSkillName = errors.New("skill name already exists")
	ErrSkillInUse         = errors.New("skill is referenced by personnel or projects")
)

type SkillInput struct {
	Name        string
	Category    string
	Description string
}

type SkillUsecase interface {
	ListSkills(ctx context.Context) ([]skill.Skill, error)
	CreateSkill(ctx context.Context, in SkillInput) (skill.Skill, error)
	UpdateSkill(ctx context.Context, id int64, in SkillInput) (skill.Skill, error)
	DeleteSkill(ctx context.Context, id int64) error
}

type Skill struct {
	repo  repository.SkillRepository
	cache EntityCache
}

func NewSkillUsecase(repo repository.SkillRepository, entityCache EntityCache) *Skill {
	return &Skill{repo: repo, cache: entityCache}
}

func (u *Skill) ListSkills(ctx context.Context) ([]skill.Skill, error) {
	if u.cache != nil {
		var cached []skill.Skill
		if ok, _ := u.cache.GetJSON(ctx, cache.KeySkillsList, &cached); ok {
			return cached, nil
		}
	}

	items, err := u.repo.GetAllSkills(ctx)
	if err != nil {
		return nil, ErrInternal
	}

	if u.cache != nil {
		_ = u.cache.SetJSON(ctx, cache.KeySkillsList, items, 0)
	}
	return items, nil
}

func (u *Skill) CreateSkill(ctx context.Context, in SkillInput) (skill.Skill, error) {
	in, err := normalizeSkillInput(in)
	if err != nil {
		return skill.Skill{}, err
	}

	// Name uniqueness is case-sensitive, matching the unique index.
	exists, err := u.repo.ExistsByName(ctx, in.Name)
	if err != nil {
		return skill.Skill{}, ErrInternal
	}
	if exists {
		return skill.Skill{}, ErrDuplicateSkillName
	}

	created, err := u.repo.CreateSkill(ctx, skill.Skill{
		Name:        in.Name,
		Category:    in.Category,
		Description: in.Description,
	})
	if err != nil {
		return skill.Skill{}, ErrInternal
	}

	u.invalidate(ctx, ws.ActionCreated)
	return created, nil
}

func (u *Skill) UpdateSkill(ctx context.Context, id int64, in SkillInput) (skill.Skill, error) {
	in, err := normalizeSkillInput(in)
	if err != nil {
		return skill.Skill{}, err
	}

	current, err := u.repo.GetSkillByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrSkillNotFound) {
			return skill.Skill{}, ErrSkillNotFound
		}
		return skill.Skill{}, ErrInternal
	}

	if in.Name != current.Name {
		exists, err := u.repo.ExistsByName(ctx, in.Name)
		if err != nil {
			return skill.Skill{}, ErrInternal
		}
		if exists {
			return skill.Skill{}, ErrDuplicateSkillName
		}
	}

	updated, err := u.repo.UpdateSkill(ctx, skill.Skill{
		ID:          id,
		Name:        in.Name,
		Category:    in.Category,
		Description: in.Description,
	})
	if err != nil {
		if errors.Is(err, repository.ErrSkillNotFound) {
			return skill.Skill{}, ErrSkillNotFound
		}
		return skill.Skill{}, ErrInternal
	}

	u.invalidate(ctx, ws.ActionUpdated)
	return updated, nil
}

func (u *Skill) DeleteSkill(ctx context.Context, id int64) error {
	exists, err := u.repo.ExistsByID(ctx, id)
	if err != nil {
		return ErrInternal
	}
	if !exists {
		return ErrSkillNotFound
	}

	referenced, err := u.repo.IsReferenced(ctx, id)
	if err != nil {
		return ErrInternal
	}
	if referenced {
		return ErrSkillInUse
	}

	if err := u.repo.DeleteSkill(ctx, id); err != nil {
		if errors.Is(err, repository.ErrSkillNotFound) {
			return ErrSkillNotFound
		}
		return ErrInternal
	}

	u.invalidate(ctx, ws.ActionDeleted)
	return nil
}

func (u *Skill) invalidate(ctx context.Context, action string) {
	if u.cache != nil {
		u.cache.InvalidateEntityCaches(ctx)
	}
	ws.NotifyEntityChanged(ws.EntitySkill, action)
}

func normalizeSkillInput(in SkillInput) (SkillInput, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Category = strings.TrimSpace(in.Category)
	in.Description = strings.TrimSpace(in.Description)

	if in.Name == "" {
		return SkillInput{}, ErrInvalidInput
	}
	if !skill.ValidCategory(in.Category) {
		return SkillInput{}, ErrInvalidInput
	}
	return in, nil
}
