package usecase

import (
	"context"
	"errors"

	"staffhub/internal/domain/personnel"
	"staffhub/internal/domain/proficiency"
	"staffhub/internal/repository"
	"staffhub/internal/ws"
)

var (
	ErrInvalidProficiencyLevel = errors.New("invalid proficiency level")
	ErrAssignmentNotFound      = errors.New("assignment not found")
)

type AssignSkillInput struct {
	SkillID          int64
	ProficiencyLevel string
}

// AssignResult reports whether the assign created a new ledger row or
// overwrote an existing one; the HTTP layer maps that to 201 vs 200.
type AssignResult struct {
	Assignment personnel.Assignment
	Created    bool
}

type PersonnelSkillUsecase interface {
	Assign(ctx context.Context, personnelID int64, in AssignSkillInput) (AssignResult, error)
	Unassign(ctx context.Context, personnelID, skillID int64) error
}

type PersonnelSkill struct {
	people repository.PersonnelRepository
	skills repository.SkillRepository
	ledger repository.PersonnelSkillRepository
	cache  EntityCache
}

func NewPersonnelSkillUsecase(
	people repository.PersonnelRepository,
	skills repository.SkillRepository,
	ledger repository.PersonnelSkillRepository,
	entityCache EntityCache,
) *PersonnelSkill {
	return &PersonnelSkill{people: people, skills: skills, ledger: ledger, cache: entityCache}
}

// Assign upserts: at most one ledger row per (personnel, skill) pair,
// re-assignment overwrites the proficiency.
func (u *PersonnelSkill) Assign(ctx context.Context, personnelID int64, in AssignSkillInput) (AssignResult, error) {
	level, ok := proficiency.Parse(in.ProficiencyLevel)
	if !ok {
		return AssignResult{}, ErrInvalidProficiencyLevel
	}

	personExists, err := u.people.ExistsByID(ctx, personnelID)
	if err != nil {
		return AssignResult{}, ErrInternal
	}
	if !personExists {
		return AssignResult{}, ErrPersonnelNotFound
	}

	skillExists, err := u.skills.ExistsByID(ctx, in.SkillID)
	if err != nil {
		return AssignResult{}, ErrInternal
	}
	if !skillExists {
		return AssignResult{}, ErrSkillNotFound
	}

	a, created, err := u.ledger.Upsert(ctx, personnelID, in.SkillID, level)
	if err != nil {
		return AssignResult{}, ErrInternal
	}

	if u.cache != nil {
		u.cache.InvalidateEntityCaches(ctx)
	}
	action := ws.ActionUpdated
	if created {
		action = ws.ActionCreated
	}
	ws.NotifyEntityChanged(ws.EntityAssignment, action)

	return AssignResult{Assignment: a, Created: created}, nil
}

func (u *PersonnelSkill) Unassign(ctx context.Context, personnelID, skillID int64) error {
	personExists, err := u.people.ExistsByID(ctx, personnelID)
	if err != nil {
		return ErrInternal
	}
	if !personExists {
		return ErrPersonnelNotFound
	}

	if err := u.ledger.Delete(ctx, personnelID, skillID); err != nil {
		if errors.Is(err, repository.ErrAssignmentNotFound) {
			return ErrAssignmentNotFound
		}
		return ErrInternal
	}

	if u.cache != nil {
		u.cache.InvalidateEntityCaches(ctx)
	}
	ws.NotifyEntityChanged(ws.EntityAssignment, ws.ActionDeleted)
	return nil
}
