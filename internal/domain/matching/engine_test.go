package matching

import (
	"testing"

	"staffhub/internal/domain/proficiency"
)

func TestRank_PartialAndFullMatch(t *testing.T) {
	// Project needs S1 at Advanced and S2 at Intermediate.
	reqs := []Requirement{
		{RequirementID: 1, SkillID: 1, MinProficiency: proficiency.Advanced},
		{RequirementID: 2, SkillID: 2, MinProficiency: proficiency.Intermediate},
	}

	candidates := []Candidate{
		{PersonnelID: 10, Skills: []CandidateSkill{ // X: 1 of 2
			{SkillID: 1, Level: proficiency.Expert},
			{SkillID: 2, Level: proficiency.Beginner},
		}},
		{PersonnelID: 20, Skills: []CandidateSkill{ // Y: 2 of 2
			{SkillID: 1, Level: proficiency.Expert},
			{SkillID: 2, Level: proficiency.Advanced},
		}},
	}

	res := Rank(candidates, reqs)
	if len(res.Matches) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(res.Matches))
	}
	if res.Matches[0].PersonnelID != 20 || res.Matches[0].MatchPercentage != 100 {
		t.Fatalf("expected Y first at 100%%, got id=%d pct=%d", res.Matches[0].PersonnelID, res.Matches[0].MatchPercentage)
	}
	if res.Matches[1].PersonnelID != 10 || res.Matches[1].MatchPercentage != 50 {
		t.Fatalf("expected X second at 50%%, got id=%d pct=%d", res.Matches[1].PersonnelID, res.Matches[1].MatchPercentage)
	}
	if res.Matches[1].MatchedCount != 1 || res.Matches[1].TotalRequirements != 2 {
		t.Fatalf("expected 1/2 for X, got %d/%d", res.Matches[1].MatchedCount, res.Matches[1].TotalRequirements)
	}
}

func TestRank_ZeroMatchDropped(t *testing.T) {
	reqs := []Requirement{{RequirementID: 1, SkillID: 1, MinProficiency: proficiency.Expert}}
	candidates := []Candidate{
		{PersonnelID: 1, Skills: []CandidateSkill{{SkillID: 1, Level: proficiency.Beginner}}},
		{PersonnelID: 2}, // no skills at all
	}

	res := Rank(candidates, reqs)
	if len(res.Matches) != 0 {
		t.Fatalf("expected empty result, got %d matches", len(res.Matches))
	}
}

func TestRank_SortedDescWithIDTieBreak(t *testing.T) {
	reqs := []Requirement{
		{RequirementID: 1, SkillID: 1, MinProficiency: proficiency.Beginner},
		{RequirementID: 2, SkillID: 2, MinProficiency: proficiency.Beginner},
	}
	full := []CandidateSkill{
		{SkillID: 1, Level: proficiency.Intermediate},
		{SkillID: 2, Level: proficiency.Intermediate},
	}
	half := []CandidateSkill{{SkillID: 1, Level: proficiency.Intermediate}}

	candidates := []Candidate{
		{PersonnelID: 9, Skills: half},
		{PersonnelID: 5, Skills: full},
		{PersonnelID: 3, Skills: full},
	}

	res := Rank(candidates, reqs)
	if len(res.Matches) != 3 {
		t.Fatalf("expected 3 matches, got %d", len(res.Matches))
	}
	for i := 1; i < len(res.Matches); i++ {
		if res.Matches[i].MatchPercentage > res.Matches[i-1].MatchPercentage {
			t.Fatalf("not sorted desc at index %d", i)
		}
	}
	if res.Matches[0].PersonnelID != 3 || res.Matches[1].PersonnelID != 5 {
		t.Fatalf("tie-break by id ascending violated: got %d, %d", res.Matches[0].PersonnelID, res.Matches[1].PersonnelID)
	}
}

func TestRank_DuplicateRequirementRowsInflateDenominator(t *testing.T) {
	// Two rows for the same skill: both count toward the total, and a
	// candidate meeting the skill meets both rows.
	reqs := []Requirement{
		{RequirementID: 1, SkillID: 1, MinProficiency: proficiency.Beginner},
		{RequirementID: 2, SkillID: 1, MinProficiency: proficiency.Expert},
		{RequirementID: 3, SkillID: 2, MinProficiency: proficiency.Beginner},
	}
	candidates := []Candidate{
		{PersonnelID: 1, Skills: []CandidateSkill{{SkillID: 1, Level: proficiency.Advanced}}},
	}

	res := Rank(candidates, reqs)
	if len(res.Matches) != 1 {
		t.Fatalf("expected 1 match, got %d", len(res.Matches))
	}
	m := res.Matches[0]
	if m.TotalRequirements != 3 {
		t.Fatalf("expected denominator 3, got %d", m.TotalRequirements)
	}
	// Advanced meets the Beginner row only.
	if m.MatchedCount != 1 || m.MatchPercentage != 33 {
		t.Fatalf("expected 1/3 = 33%%, got %d/%d = %d%%", m.MatchedCount, m.TotalRequirements, m.MatchPercentage)
	}
}

func TestRank_UnknownLevelWarnsAndFails(t *testing.T) {
	reqs := []Requirement{{RequirementID: 1, SkillID: 1, MinProficiency: proficiency.Beginner}}
	candidates := []Candidate{
		{PersonnelID: 7, Skills: []CandidateSkill{{SkillID: 1, Level: "Ninja"}}},
	}

	res := Rank(candidates, reqs)
	if len(res.Matches) != 0 {
		t.Fatalf("unknown level must not satisfy a requirement")
	}
	if len(res.Warnings) != 1 {
		t.Fatalf("expected 1 integrity warning, got %d", len(res.Warnings))
	}
	w := res.Warnings[0]
	if w.PersonnelID != 7 || w.SkillID != 1 || w.Level != "Ninja" {
		t.Fatalf("unexpected warning contents: %+v", w)
	}
}

func TestRank_EmptyPool(t *testing.T) {
	reqs := []Requirement{{RequirementID: 1, SkillID: 1, MinProficiency: proficiency.Beginner}}
	res := Rank(nil, reqs)
	if len(res.Matches) != 0 || len(res.Warnings) != 0 {
		t.Fatalf("expected empty result for empty pool")
	}
}

func TestRank_PercentageBounds(t *testing.T) {
	reqs := []Requirement{
		{RequirementID: 1, SkillID: 1, MinProficiency: proficiency.Beginner},
		{RequirementID: 2, SkillID: 2, MinProficiency: proficiency.Beginner},
		{RequirementID: 3, SkillID: 3, MinProficiency: proficiency.Beginner},
	}
	candidates := []Candidate{
		{PersonnelID: 1, Skills: []CandidateSkill{{SkillID: 1, Level: proficiency.Expert}}},
		{PersonnelID: 2, Skills: []CandidateSkill{
			{SkillID: 1, Level: proficiency.Expert},
			{SkillID: 2, Level: proficiency.Expert},
			{SkillID: 3, Level: proficiency.Expert},
		}},
	}

	res := Rank(candidates, reqs)
	for _, m := range res.Matches {
		if m.MatchPercentage <= 0 || m.MatchPercentage > 100 {
			t.Fatalf("percentage out of bounds: %d", m.MatchPercentage)
		}
	}
}
