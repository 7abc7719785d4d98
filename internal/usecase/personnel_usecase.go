package usecase

import (
	"context"
	"errors"
	"strings"

	"staffhub/internal/domain/personnel"
	"staffhub/internal/repository"
	"staffhub/internal/ws"
)

var (
	ErrPersonnelNotFound   = errors.New("personnel not found")
	ErrPersonnelEmailTaken = errors.New("personnel email already exists")
)

type PersonnelInput struct {
	Name            string
	Email           string
	Role            string
	ExperienceLevel string
	IsAvailable     bool
}

type PersonnelUsecase interface {
	ListPersonnel(ctx context.Context, roleFilter string) ([]personnel.Personnel, error)
	CreatePersonnel(ctx context.Context, in PersonnelInput) (personnel.Personnel, error)
	UpdatePersonnel(ctx context.Context, id int64, in PersonnelInput) (personnel.Personnel, error)
	DeletePersonnel(ctx context.Context, id int64) error
	ListAssignments(ctx context.Context, personnelID int64) ([]personnel.Assignment, error)
}

type Personnel struct {
	repo   repository.PersonnelRepository
	ledger repository.PersonnelSkillRepository
	cache  EntityCache
}

func NewPersonnelUsecase(repo repository.PersonnelRepository, ledger repository.PersonnelSkillRepository, entityCache EntityCache) *Personnel {
	return &Personnel{repo: repo, ledger: ledger, cache: entityCache}
}

func (u *Personnel) ListPersonnel(ctx context.Context, roleFilter string) ([]personnel.Personnel, error) {
	items, err := u.repo.GetAllPersonnel(ctx, repository.PersonnelFilter{Role: strings.TrimSpace(roleFilter)})
	if err != nil {
		return nil, ErrInternal
	}
	return items, nil
}

func (u *Personnel) CreatePersonnel(ctx context.Context, in PersonnelInput) (personnel.Personnel, error) {
	in, err := normalizePersonnelInput(in)
	if err != nil {
		return personnel.Personnel{}, err
	}

	taken, err := u.repo.ExistsByEmail(ctx, in.Email)
	if err != nil {
		return personnel.Personnel{}, ErrInternal
	}
	if taken {
		return personnel.Personnel{}, ErrPersonnelEmailTaken
	}

	created, err := u.repo.CreatePersonnel(ctx, personnel.Personnel{
		Name:            in.Name,
		Email:           in.Email,
		Role:            in.Role,
		ExperienceLevel: in.ExperienceLevel,
		IsAvailable:     in.IsAvailable,
	})
	if err != nil {
		return personnel.Personnel{}, ErrInternal
	}

	u.invalidate(ctx, ws.ActionCreated)
	return created, nil
}

func (u *Personnel) UpdatePersonnel(ctx context.Context, id int64, in PersonnelInput) (personnel.Personnel, error) {
	in, err := normalizePersonnelInput(in)
	if err != nil {
		return personnel.Personnel{}, err
	}

	current, err := u.repo.GetPersonnelByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrPersonnelNotFound) {
			return personnel.Personnel{}, ErrPersonnelNotFound
		}
		return personnel.Personnel{}, ErrInternal
	}

	if in.Email != current.Email {
		taken, err := u.repo.ExistsByEmail(ctx, in.Email)
		if err != nil {
			return personnel.Personnel{}, ErrInternal
		}
		if taken {
			return personnel.Personnel{}, ErrPersonnelEmailTaken
		}
	}

	updated, err := u.repo.UpdatePersonnel(ctx, personnel.Personnel{
		ID:              id,
		Name:            in.Name,
		Email:           in.Email,
		Role:            in.Role,
		ExperienceLevel: in.ExperienceLevel,
		IsAvailable:     in.IsAvailable,
	})
	if err != nil {
		if errors.Is(err, repository.ErrPersonnelNotFound) {
			return personnel.Personnel{}, ErrPersonnelNotFound
		}
		return personnel.Personnel{}, ErrInternal
	}

	u.invalidate(ctx, ws.ActionUpdated)
	return updated, nil
}

func (u *Personnel) DeletePersonnel(ctx context.Context, id int64) error {
	if err := u.repo.DeletePersonnel(ctx, id); err != nil {
		if errors.Is(err, repository.ErrPersonnelNotFound) {
			return ErrPersonnelNotFound
		}
		return ErrInternal
	}

	u.invalidate(ctx, ws.ActionDeleted)
	return nil
}

func (u *Personnel) ListAssignments(ctx context.Context, personnelID int64) ([]personnel.Assignment, error) {
	exists, err := u.repo.ExistsByID(ctx, personnelID)
	if err != nil {
		return nil, ErrInternal
	}
	if !exists {
		return nil, ErrPersonnelNotFound
	}

	items, err := u.ledger.FindByPersonnelID(ctx, personnelID)
	if err != nil {
		return nil, ErrInternal
	}
	return items, nil
}

func (u *Personnel) invalidate(ctx context.Context, action string) {
	if u.cache != nil {
		u.cache.InvalidateEntityCaches(ctx)
	}
	ws.NotifyEntityChanged(ws.EntityPersonnel, action)
}

func normalizePersonnelInput(in PersonnelInput) (PersonnelInput, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	in.Role = strings.TrimSpace(in.Role)
	in.ExperienceLevel = strings.TrimSpace(in.ExperienceLevel)

	if len(in.Name) < 3 {
		return PersonnelInput{}, ErrInvalidInput
	}
	if !strings.Contains(in.Email, "@") {
		return PersonnelInput{}, ErrInvalidInput
	}
	if len(in.Role) < 2 {
		return PersonnelInput{}, ErrInvalidInput
	}
	if !personnel.ValidExperienceLevel(in.ExperienceLevel) {
		return PersonnelInput{}, ErrInvalidInput
	}
	return in, nil
}
