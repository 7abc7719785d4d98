package usecase

import (
	"context"
	"errors"
	"testing"

	"staffhub/internal/domain/proficiency"
)

func TestPersonnelSkillUsecase_Assign_InvalidLevel(t *testing.T) {
	uc := NewPersonnelSkillUsecase(mockPersonnelRepo{exists: true}, mockSkillRepo{exists: true}, mockLedgerRepo{}, nil)
	_, err := uc.Assign(context.Background(), 1, AssignSkillInput{SkillID: 10, ProficiencyLevel: "Wizard"})
	if !errors.Is(err, ErrInvalidProficiencyLevel) {
		t.Fatalf("expected ErrInvalidProficiencyLevel, got %v", err)
	}
}

func TestPersonnelSkillUsecase_Assign_PersonnelNotFound(t *testing.T) {
	uc := NewPersonnelSkillUsecase(mockPersonnelRepo{exists: false}, mockSkillRepo{exists: true}, mockLedgerRepo{}, nil)
	_, err := uc.Assign(context.Background(), 99, AssignSkillInput{SkillID: 10, ProficiencyLevel: "Beginner"})
	if !errors.Is(err, ErrPersonnelNotFound) {
		t.Fatalf("expected ErrPersonnelNotFound, got %v", err)
	}
}

func TestPersonnelSkillUsecase_Assign_SkillNotFound(t *testing.T) {
	uc := NewPersonnelSkillUsecase(mockPersonnelRepo{exists: true}, mockSkillRepo{exists: false}, mockLedgerRepo{}, nil)
	_, err := uc.Assign(context.Background(), 1, AssignSkillInput{SkillID: 99, ProficiencyLevel: "Beginner"})
	if !errors.Is(err, ErrSkillNotFound) {
		t.Fatalf("expected ErrSkillNotFound, got %v", err)
	}
}

func TestPersonnelSkillUsecase_Assign_ReportsCreatedVsUpdated(t *testing.T) {
	c := newFakeCache()

	uc := NewPersonnelSkillUsecase(mockPersonnelRepo{exists: true}, mockSkillRepo{exists: true}, mockLedgerRepo{created: true}, c)
	res, err := uc.Assign(context.Background(), 1, AssignSkillInput{SkillID: 10, ProficiencyLevel: "Advanced"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !res.Created {
		t.Fatalf("expected Created=true for new row")
	}
	if res.Assignment.Level != proficiency.Advanced {
		t.Fatalf("expected Advanced, got %q", res.Assignment.Level)
	}

	uc = NewPersonnelSkillUsecase(mockPersonnelRepo{exists: true}, mockSkillRepo{exists: true}, mockLedgerRepo{created: false}, c)
	res, err = uc.Assign(context.Background(), 1, AssignSkillInput{SkillID: 10, ProficiencyLevel: "Expert"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if res.Created {
		t.Fatalf("expected Created=false for overwrite")
	}
	if c.invalidated != 2 {
		t.Fatalf("expected 2 cache invalidations, got %d", c.invalidated)
	}
}

func TestPersonnelSkillUsecase_Unassign_NotFound(t *testing.T) {
	uc := NewPersonnelSkillUsecase(mockPersonnelRepo{exists: true}, mockSkillRepo{}, mockLedgerRepo{deleted: false}, nil)
	if err := uc.Unassign(context.Background(), 1, 10); !errors.Is(err, ErrAssignmentNotFound) {
		t.Fatalf("expected ErrAssignmentNotFound, got %v", err)
	}
}

func TestPersonnelSkillUsecase_Unassign_Removes(t *testing.T) {
	c := newFakeCache()
	uc := NewPersonnelSkillUsecase(mockPersonnelRepo{exists: true}, mockSkillRepo{}, mockLedgerRepo{deleted: true}, c)
	if err := uc.Unassign(context.Background(), 1, 10); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if c.invalidated != 1 {
		t.Fatalf("expected cache invalidation, got %d", c.invalidated)
	}
}
