package usecase

import (
	"context"
	"errors"
	"io"
	"log"
	"testing"

	"staffhub/internal/domain/personnel"
	"staffhub/internal/domain/proficiency"
	"staffhub/internal/domain/project"
	"staffhub/internal/repository"
)

type mockProjectRepo struct {
	items  []project.Project
	exists bool
	err    error
}

func (m mockProjectRepo) GetAllProjects(context.Context) ([]project.Project, error) {
	return m.items, m.err
}
func (m mockProjectRepo) GetProjectByID(context.Context, int64) (project.Project, error) {
	if len(m.items) == 0 {
		return project.Project{}, repository.ErrProjectNotFound
	}
	return m.items[0], nil
}
func (m mockProjectRepo) ExistsByID(context.Context, int64) (bool, error) { return m.exists, m.err }
func (m mockProjectRepo) CreateProject(_ context.Context, p project.Project) (project.Project, error) {
	p.ID = 1
	return p, m.err
}
func (m mockProjectRepo) DeleteProject(context.Context, int64) error {
	if !m.exists {
		return repository.ErrProjectNotFound
	}
	return m.err
}

type mockRequirementRepo struct {
	items []project.Requirement
	err   error
}

func (m mockRequirementRepo) FindByProjectID(context.Context, int64) ([]project.Requirement, error) {
	return m.items, m.err
}
func (m mockRequirementRepo) FindByProjectIDs(_ context.Context, ids []int64) (map[int64][]project.Requirement, error) {
	out := make(map[int64][]project.Requirement)
	for _, r := range m.items {
		out[r.ProjectID] = append(out[r.ProjectID], r)
	}
	return out, m.err
}
func (m mockRequirementRepo) Create(_ context.Context, r project.Requirement) (project.Requirement, error) {
	r.ID = int64(len(m.items) + 1)
	return r, m.err
}
func (m mockRequirementRepo) CreateMany(context.Context, []project.Requirement) error {
	return m.err
}
func (m mockRequirementRepo) Delete(context.Context, int64, int64) error {
	if len(m.items) == 0 {
		return repository.ErrRequirementNotFound
	}
	return m.err
}

type mockPersonnelRepo struct {
	items      []personnel.Personnel
	exists     bool
	emailTaken bool
	err        error
}

func (m mockPersonnelRepo) GetAllPersonnel(_ context.Context, filter repository.PersonnelFilter) ([]personnel.Personnel, error) {
	if m.err != nil {
		return nil, m.err
	}
	if !filter.OnlyAvailable {
		return m.items, nil
	}
	out := make([]personnel.Personnel, 0, len(m.items))
	for _, p := range m.items {
		if p.IsAvailable {
			out = append(out, p)
		}
	}
	return out, nil
}
func (m mockPersonnelRepo) GetPersonnelByID(context.Context, int64) (personnel.Personnel, error) {
	if len(m.items) == 0 {
		return personnel.Personnel{}, repository.ErrPersonnelNotFound
	}
	return m.items[0], nil
}
func (m mockPersonnelRepo) ExistsByID(context.Context, int64) (bool, error) { return m.exists, m.err }
func (m mockPersonnelRepo) ExistsByEmail(context.Context, string) (bool, error) {
	return m.emailTaken, m.err
}
func (m mockPersonnelRepo) CreatePersonnel(_ context.Context, p personnel.Personnel) (personnel.Personnel, error) {
	p.ID = 1
	return p, m.err
}
func (m mockPersonnelRepo) UpdatePersonnel(_ context.Context, p personnel.Personnel) (personnel.Personnel, error) {
	if len(m.items) == 0 {
		return personnel.Personnel{}, repository.ErrPersonnelNotFound
	}
	return p, m.err
}
func (m mockPersonnelRepo) DeletePersonnel(context.Context, int64) error {
	if !m.exists {
		return repository.ErrPersonnelNotFound
	}
	return m.err
}

type mockLedgerRepo struct {
	byPerson map[int64][]personnel.Assignment
	created  bool
	deleted  bool
	err      error
}

func (m mockLedgerRepo) FindByPersonnelID(_ context.Context, id int64) ([]personnel.Assignment, error) {
	return m.byPerson[id], m.err
}
func (m mockLedgerRepo) FindByPersonnelIDs(context.Context, []int64) (map[int64][]personnel.Assignment, error) {
	return m.byPerson, m.err
}
func (m mockLedgerRepo) Upsert(_ context.Context, personnelID, skillID int64, level proficiency.Level) (personnel.Assignment, bool, error) {
	return personnel.Assignment{PersonnelID: personnelID, SkillID: skillID, Level: level}, m.created, m.err
}
func (m mockLedgerRepo) Delete(context.Context, int64, int64) error {
	if !m.deleted {
		return repository.ErrAssignmentNotFound
	}
	return m.err
}

func discardLogger() *log.Logger { return log.New(io.Discard, "", 0) }

func TestMatchingUsecase_FindMatches_ProjectNotFound(t *testing.T) {
	uc := NewMatchingUsecase(mockProjectRepo{exists: false}, mockRequirementRepo{}, mockPersonnelRepo{}, mockLedgerRepo{}, discardLogger())
	_, err := uc.FindMatches(context.Background(), 42)
	if !errors.Is(err, ErrProjectNotFound) {
		t.Fatalf("expected ErrProjectNotFound, got %v", err)
	}
}

func TestMatchingUsecase_FindMatches_NoRequirements(t *testing.T) {
	uc := NewMatchingUsecase(mockProjectRepo{exists: true}, mockRequirementRepo{}, mockPersonnelRepo{}, mockLedgerRepo{}, discardLogger())
	_, err := uc.FindMatches(context.Background(), 1)
	if !errors.Is(err, ErrNoRequirements) {
		t.Fatalf("expected ErrNoRequirements, got %v", err)
	}
}

func TestMatchingUsecase_FindMatches_RanksAndSorts(t *testing.T) {
	reqs := []project.Requirement{
		{ID: 1, ProjectID: 1, SkillID: 10, SkillName: "Go", MinProficiency: proficiency.Advanced},
		{ID: 2, ProjectID: 1, SkillID: 11, SkillName: "PostgreSQL", MinProficiency: proficiency.Intermediate},
	}
	people := []personnel.Personnel{
		{ID: 1, Name: "Casey", IsAvailable: true},
		{ID: 2, Name: "Robin", IsAvailable: true},
	}
	ledger := map[int64][]personnel.Assignment{
		1: {
			{PersonnelID: 1, SkillID: 10, Level: proficiency.Expert},
			{PersonnelID: 1, SkillID: 11, Level: proficiency.Beginner},
		},
		2: {
			{PersonnelID: 2, SkillID: 10, Level: proficiency.Advanced},
			{PersonnelID: 2, SkillID: 11, Level: proficiency.Intermediate},
		},
	}

	uc := NewMatchingUsecase(
		mockProjectRepo{exists: true},
		mockRequirementRepo{items: reqs},
		mockPersonnelRepo{items: people},
		mockLedgerRepo{byPerson: ledger},
		discardLogger(),
	)

	got, err := uc.FindMatches(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(got))
	}
	if got[0].Personnel.ID != 2 || got[0].MatchPercentage != 100 {
		t.Fatalf("expected personnel 2 at 100%%, got id=%d pct=%d", got[0].Personnel.ID, got[0].MatchPercentage)
	}
	if got[1].Personnel.ID != 1 || got[1].MatchPercentage != 50 {
		t.Fatalf("expected personnel 1 at 50%%, got id=%d pct=%d", got[1].Personnel.ID, got[1].MatchPercentage)
	}
	if got[1].MatchedCount != 1 || got[1].TotalRequired != 2 {
		t.Fatalf("expected 1/2 for personnel 1, got %d/%d", got[1].MatchedCount, got[1].TotalRequired)
	}
}

func TestMatchingUsecase_FindMatches_ExcludesUnavailable(t *testing.T) {
	reqs := []project.Requirement{
		{ID: 1, ProjectID: 1, SkillID: 10, SkillName: "Go", MinProficiency: proficiency.Beginner},
	}
	people := []personnel.Personnel{
		{ID: 1, Name: "Casey", IsAvailable: false},
		{ID: 2, Name: "Robin", IsAvailable: true},
	}
	ledger := map[int64][]personnel.Assignment{
		1: {{PersonnelID: 1, SkillID: 10, Level: proficiency.Expert}},
		2: {{PersonnelID: 2, SkillID: 10, Level: proficiency.Beginner}},
	}

	uc := NewMatchingUsecase(
		mockProjectRepo{exists: true},
		mockRequirementRepo{items: reqs},
		mockPersonnelRepo{items: people},
		mockLedgerRepo{byPerson: ledger},
		discardLogger(),
	)

	got, err := uc.FindMatches(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(got) != 1 || got[0].Personnel.ID != 2 {
		t.Fatalf("expected only available personnel 2, got %+v", got)
	}
}

func TestMatchingUsecase_FindMatches_ZeroMatchersDropped(t *testing.T) {
	reqs := []project.Requirement{
		{ID: 1, ProjectID: 1, SkillID: 10, SkillName: "Go", MinProficiency: proficiency.Expert},
	}
	people := []personnel.Personnel{{ID: 1, Name: "Casey", IsAvailable: true}}
	ledger := map[int64][]personnel.Assignment{
		1: {{PersonnelID: 1, SkillID: 10, Level: proficiency.Beginner}},
	}

	uc := NewMatchingUsecase(
		mockProjectRepo{exists: true},
		mockRequirementRepo{items: reqs},
		mockPersonnelRepo{items: people},
		mockLedgerRepo{byPerson: ledger},
		discardLogger(),
	)

	got, err := uc.FindMatches(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty result, got %+v", got)
	}
}

func TestMatchingUsecase_FindMatches_EmptyPool(t *testing.T) {
	reqs := []project.Requirement{
		{ID: 1, ProjectID: 1, SkillID: 10, SkillName: "Go", MinProficiency: proficiency.Beginner},
	}
	uc := NewMatchingUsecase(
		mockProjectRepo{exists: true},
		mockRequirementRepo{items: reqs},
		mockPersonnelRepo{},
		mockLedgerRepo{},
		discardLogger(),
	)

	got, err := uc.FindMatches(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty result, got %+v", got)
	}
}
