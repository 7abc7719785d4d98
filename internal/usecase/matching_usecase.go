package usecase

import (
	"context"
	"errors"
	"log"

	"staffhub/internal/domain/matching"
	"staffhub/internal/domain/personnel"
	"staffhub/internal/repository"
)

var ErrNoRequirements = errors.New("project has no requirements")

// CandidateMatch pairs a candidate's profile with the computed
// percentage. The slice FindMatches returns is ordered: percentage
// descending, personnel id ascending on ties.
type CandidateMatch struct {
	Personnel       personnel.Personnel
	MatchedCount    int
	TotalRequired   int
	MatchPercentage int
}

type MatchingUsecase interface {
	FindMatches(ctx context.Context, projectID int64) ([]CandidateMatch, error)
}

type Matching struct {
	projects repository.ProjectRepository
	reqs     repository.ProjectRequirementRepository
	people   repository.PersonnelRepository
	ledger   repository.PersonnelSkillRepository
	logger   *log.Logger
}

func NewMatchingUsecase(
	projects repository.ProjectRepository,
	reqs repository.ProjectRequirementRepository,
	people repository.PersonnelRepository,
	ledger repository.PersonnelSkillRepository,
	logger *log.Logger,
) *Matching {
	if logger == nil {
		logger = log.Default()
	}
	return &Matching{projects: projects, reqs: reqs, people: people, ledger: ledger, logger: logger}
}

// FindMatches recomputes from scratch on every call: requirement set,
// available pool, ledger, score. Nothing is cached between calls.
func (u *Matching) FindMatches(ctx context.Context, projectID int64) ([]CandidateMatch, error) {
	exists, err := u.projects.ExistsByID(ctx, projectID)
	if err != nil {
		return nil, ErrInternal
	}
	if !exists {
		return nil, ErrProjectNotFound
	}

	reqRows, err := u.reqs.FindByProjectID(ctx, projectID)
	if err != nil {
		return nil, ErrInternal
	}
	if len(reqRows) == 0 {
		return nil, ErrNoRequirements
	}

	// Availability is a hard precondition: unavailable personnel never
	// enter the pool, whatever their skills.
	pool, err := u.people.GetAllPersonnel(ctx, repository.PersonnelFilter{OnlyAvailable: true})
	if err != nil {
		return nil, ErrInternal
	}
	if len(pool) == 0 {
		return []CandidateMatch{}, nil
	}

	ids := make([]int64, 0, len(pool))
	byID := make(map[int64]personnel.Personnel, len(pool))
	for _, p := range pool {
		ids = append(ids, p.ID)
		byID[p.ID] = p
	}

	ledger, err := u.ledger.FindByPersonnelIDs(ctx, ids)
	if err != nil {
		return nil, ErrInternal
	}

	engineReqs := make([]matching.Requirement, 0, len(reqRows))
	for _, r := range reqRows {
		engineReqs = append(engineReqs, matching.Requirement{
			RequirementID:  r.ID,
			SkillID:        r.SkillID,
			SkillName:      r.SkillName,
			MinProficiency: r.MinProficiency,
		})
	}

	candidates := make([]matching.Candidate, 0, len(pool))
	for _, p := range pool {
		rows := ledger[p.ID]
		skills := make([]matching.CandidateSkill, 0, len(rows))
		for _, a := range rows {
			skills = append(skills, matching.CandidateSkill{SkillID: a.SkillID, Level: a.Level})
		}
		candidates = append(candidates, matching.Candidate{PersonnelID: p.ID, Skills: skills})
	}

	res := matching.Rank(candidates, engineReqs)

	for _, w := range res.Warnings {
		u.logger.Printf("Matching integrity warning | personnel_id=%d skill_id=%d level=%q treated_as_rank=0",
			w.PersonnelID, w.SkillID, string(w.Level))
	}

	out := make([]CandidateMatch, 0, len(res.Matches))
	for _, m := range res.Matches {
		out = append(out, CandidateMatch{
			Personnel:       byID[m.PersonnelID],
			MatchedCount:    m.MatchedCount,
			TotalRequired:   m.TotalRequirements,
			MatchPercentage: m.MatchPercentage,
		})
	}
	return out, nil
}
