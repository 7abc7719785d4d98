package matching

import (
	"math"
	"sort"

	"staffhub/internal/domain/proficiency"
)

// Requirement is one row of a project's requirement set. Rows are not
// deduplicated: two rows for the same skill are two entries in the
// denominator and are each evaluated on their own.
type Requirement struct {
	RequirementID  int64
	SkillID        int64
	SkillName      string
	MinProficiency proficiency.Level
}

// CandidateSkill is one ledger row for a candidate. At most one per
// (candidate, skill) pair.
type CandidateSkill struct {
	SkillID int64
	Level   proficiency.Level
}

// Candidate is an available person under consideration. Callers must
// pre-filter on availability; the engine scores whatever pool it is
// handed.
type Candidate struct {
	PersonnelID int64
	Skills      []CandidateSkill
}

// Match is one scored candidate. MatchPercentage is matched
// requirement rows over total rows, rounded to the nearest integer.
type Match struct {
	PersonnelID       int64
	MatchedCount      int
	TotalRequirements int
	MatchPercentage   int
}

// Warning records a ledger row whose proficiency string is outside
// the scale. The row scores rank 0 and the computation continues.
type Warning struct {
	PersonnelID int64
	SkillID     int64
	Level       proficiency.Level
}

type Result struct {
	Matches  []Match
	Warnings []Warning
}

// Rank scores every candidate against the requirement set, drops
// zero-percentage candidates, and orders the rest by percentage
// descending with personnel id ascending as the tie-break. It reads
// nothing but its arguments and keeps no state across calls.
func Rank(candidates []Candidate, reqs []Requirement) Result {
	res := Result{Matches: make([]Match, 0, len(candidates))}
	if len(reqs) == 0 {
		return res
	}

	total := len(reqs)

	for _, cand := range candidates {
		bySkill := make(map[int64]CandidateSkill, len(cand.Skills))
		for _, cs := range cand.Skills {
			if !proficiency.Known(cs.Level) {
				res.Warnings = append(res.Warnings, Warning{
					PersonnelID: cand.PersonnelID,
					SkillID:     cs.SkillID,
					Level:       cs.Level,
				})
			}
			bySkill[cs.SkillID] = cs
		}

		matched := 0
		for _, r := range reqs {
			cs, ok := bySkill[r.SkillID]
			if !ok {
				continue
			}
			if proficiency.Meets(cs.Level, r.MinProficiency) {
				matched++
			}
		}

		pct := int(math.Round(float64(matched) / float64(total) * 100))
		if pct <= 0 {
			continue
		}

		res.Matches = append(res.Matches, Match{
			PersonnelID:       cand.PersonnelID,
			MatchedCount:      matched,
			TotalRequirements: total,
			MatchPercentage:   pct,
		})
	}

	sort.SliceStable(res.Matches, func(i, j int) bool {
		if res.Matches[i].MatchPercentage != res.Matches[j].MatchPercentage {
			return res.Matches[i].MatchPercentage > res.Matches[j].MatchPercentage
		}
		return res.Matches[i].PersonnelID < res.Matches[j].PersonnelID
	})

	return res
}
