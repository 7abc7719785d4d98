package personnel

import (
	"time"

	"staffhub/internal/domain/proficiency"
)

// ExperienceLevel is seniority, unrelated to per-skill proficiency.
const (
	ExperienceJunior = "Junior"
	ExperienceMid    = "Mid-Level"
	ExperienceSenior = "Senior"
)

var experienceLevels = map[string]struct{}{
	ExperienceJunior: {},
	ExperienceMid:    {},
	ExperienceSenior: {},
}

func ValidExperienceLevel(l string) bool {
	_, ok := experienceLevels[l]
	return ok
}

type Personnel struct {
	ID              int64
	Name            string
	Email           string
	Role            string
	ExperienceLevel string
	IsAvailable     bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Assignment is one ledger row: the proficiency a person holds for a
// skill. Identity is the (PersonnelID, SkillID) pair; assigning the
// same skill again overwrites Level rather than adding a row.
type Assignment struct {
	PersonnelID int64
	SkillID     int64
	SkillName   string
	Category    string
	Level       proficiency.Level
	CreatedAt   time.Time
}
