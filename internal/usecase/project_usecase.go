package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"staffhub/internal/domain/proficiency"
	"staffhub/internal/domain/project"
	"staffhub/internal/repository"
	"staffhub/internal/ws"
)

var (
	ErrProjectNotFound     = errors.New("project not found")
	ErrRequirementNotFound = errors.New("requirement not found")
	ErrInvalidDateRange    = errors.New("end date must be after start date")
)

type RequirementInput struct {
	SkillID        int64
	MinProficiency string
}

type ProjectInput struct {
	Name         string
	Description  string
	StartDate    time.Time
	EndDate      time.Time
	Status       string
	Requirements []RequirementInput
}

// ProjectWithRequirements is the list shape: each project resolved
// with its full requirement set, skill names included.
type ProjectWithRequirements struct {
	Project      project.Project
	Requirements []project.Requirement
}

type ProjectUsecase interface {
	ListProjects(ctx context.Context) ([]ProjectWithRequirements, error)
	CreateProject(ctx context.Context, in ProjectInput) (ProjectWithRequirements, error)
	DeleteProject(ctx context.Context, id int64) error
	ListRequirements(ctx context.Context, projectID int64) ([]project.Requirement, error)
	AddRequirement(ctx context.Context, projectID int64, in RequirementInput) (project.Requirement, error)
	RemoveRequirement(ctx context.Context, projectID, requirementID int64) error
}

type Project struct {
	projects repository.ProjectRepository
	reqs     repository.ProjectRequirementRepository
	skills   repository.SkillRepository
	cache    EntityCache
}

func NewProjectUsecase(
	projects repository.ProjectRepository,
	reqs repository.ProjectRequirementRepository,
	skills repository.SkillRepository,
	entityCache EntityCache,
) *Project {
	return &Project{projects: projects, reqs: reqs, skills: skills, cache: entityCache}
}

func (u *Project) ListProjects(ctx context.Context) ([]ProjectWithRequirements, error) {
	items, err := u.projects.GetAllProjects(ctx)
	if err != nil {
		return nil, ErrInternal
	}

	ids := make([]int64, 0, len(items))
	for _, p := range items {
		ids = append(ids, p.ID)
	}

	byProject, err := u.reqs.FindByProjectIDs(ctx, ids)
	if err != nil {
		return nil, ErrInternal
	}

	out := make([]ProjectWithRequirements, 0, len(items))
	for _, p := range items {
		reqs := byProject[p.ID]
		if reqs == nil {
			reqs = []project.Requirement{}
		}
		out = append(out, ProjectWithRequirements{Project: p, Requirements: reqs})
	}
	return out, nil
}

func (u *Project) CreateProject(ctx context.Context, in ProjectInput) (ProjectWithRequirements, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Description = strings.TrimSpace(in.Description)

	if len(in.Name) < 3 || len(in.Description) < 10 {
		return ProjectWithRequirements{}, ErrInvalidInput
	}
	if in.StartDate.IsZero() || in.EndDate.IsZero() {
		return ProjectWithRequirements{}, ErrInvalidInput
	}
	if !in.EndDate.After(in.StartDate) {
		return ProjectWithRequirements{}, ErrInvalidDateRange
	}

	status := strings.TrimSpace(in.Status)
	if status == "" {
		status = project.StatusPlanning
	}
	if !project.ValidStatus(status) {
		return ProjectWithRequirements{}, ErrInvalidInput
	}

	parsed := make([]project.Requirement, 0, len(in.Requirements))
	for _, r := range in.Requirements {
		level, ok := proficiency.Parse(r.MinProficiency)
		if !ok {
			return ProjectWithRequirements{}, ErrInvalidProficiencyLevel
		}
		exists, err := u.skills.ExistsByID(ctx, r.SkillID)
		if err != nil {
			return ProjectWithRequirements{}, ErrInternal
		}
		if !exists {
			return ProjectWithRequirements{}, ErrSkillNotFound
		}
		parsed = append(parsed, project.Requirement{SkillID: r.SkillID, MinProficiency: level})
	}

	created, err := u.projects.CreateProject(ctx, project.Project{
		Name:        in.Name,
		Description: in.Description,
		StartDate:   in.StartDate,
		EndDate:     in.EndDate,
		Status:      status,
	})
	if err != nil {
		return ProjectWithRequirements{}, ErrInternal
	}

	for i := range parsed {
		parsed[i].ProjectID = created.ID
	}
	if err := u.reqs.CreateMany(ctx, parsed); err != nil {
		return ProjectWithRequirements{}, ErrInternal
	}

	reqs, err := u.reqs.FindByProjectID(ctx, created.ID)
	if err != nil {
		return ProjectWithRequirements{}, ErrInternal
	}

	u.invalidate(ctx, ws.EntityProject, ws.ActionCreated)
	return ProjectWithRequirements{Project: created, Requirements: reqs}, nil
}

func (u *Project) DeleteProject(ctx context.Context, id int64) error {
	if err := u.projects.DeleteProject(ctx, id); err != nil {
		if errors.Is(err, repository.ErrProjectNotFound) {
			return ErrProjectNotFound
		}
		return ErrInternal
	}

	u.invalidate(ctx, ws.EntityProject, ws.ActionDeleted)
	return nil
}

func (u *Project) ListRequirements(ctx context.Context, projectID int64) ([]project.Requirement, error) {
	exists, err := u.projects.ExistsByID(ctx, projectID)
	if err != nil {
		return nil, ErrInternal
	}
	if !exists {
		return nil, ErrProjectNotFound
	}

	reqs, err := u.reqs.FindByProjectID(ctx, projectID)
	if err != nil {
		return nil, ErrInternal
	}
	return reqs, nil
}

// AddRequirement is a plain insert: nothing deduplicates rows naming
// the same skill, and the matcher counts every row.
func (u *Project) AddRequirement(ctx context.Context, projectID int64, in RequirementInput) (project.Requirement, error) {
	level, ok := proficiency.Parse(in.MinProficiency)
	if !ok {
		return project.Requirement{}, ErrInvalidProficiencyLevel
	}

	projExists, err := u.projects.ExistsByID(ctx, projectID)
	if err != nil {
		return project.Requirement{}, ErrInternal
	}
	if !projExists {
		return project.Requirement{}, ErrProjectNotFound
	}

	skillExists, err := u.skills.ExistsByID(ctx, in.SkillID)
	if err != nil {
		return project.Requirement{}, ErrInternal
	}
	if !skillExists {
		return project.Requirement{}, ErrSkillNotFound
	}

	created, err := u.reqs.Create(ctx, project.Requirement{
		ProjectID:      projectID,
		SkillID:        in.SkillID,
		MinProficiency: level,
	})
	if err != nil {
		return project.Requirement{}, ErrInternal
	}

	u.invalidate(ctx, ws.EntityRequirement, ws.ActionCreated)
	return created, nil
}

func (u *Project) RemoveRequirement(ctx context.Context, projectID, requirementID int64) error {
	projExists, err := u.projects.ExistsByID(ctx, projectID)
	if err != nil {
		return ErrInternal
	}
	if !projExists {
		return ErrProjectNotFound
	}

	if err := u.reqs.Delete(ctx, projectID, requirementID); err != nil {
		if errors.Is(err, repository.ErrRequirementNotFound) {
			return ErrRequirementNotFound
		}
		return ErrInternal
	}

	u.invalidate(ctx, ws.EntityRequirement, ws.ActionDeleted)
	return nil
}

func (u *Project) invalidate(ctx context.Context, entity, action string) {
	if u.cache != nil {
		u.cache.InvalidateEntityCaches(ctx)
	}
	ws.NotifyEntityChanged(entity, action)
}
