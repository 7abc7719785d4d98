package project

import (
	"time"

	"staffhub/internal/domain/proficiency"
)

const (
	StatusPlanning  = "Planning"
	StatusActive    = "Active"
	StatusCompleted = "Completed"
)

var statuses = map[string]struct{}{
	StatusPlanning:  {},
	StatusActive:    {},
	StatusCompleted: {},
}

func ValidStatus(s string) bool {
	_, ok := statuses[s]
	return ok
}

type Project struct {
	ID          int64
	Name        string
	Description string
	StartDate   time.Time
	EndDate     time.Time
	Status      string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Requirement is one row of a project's requirement set. Rows are
// added and removed independently; nothing forbids two rows naming
// the same skill, and the matcher counts each row on its own.
type Requirement struct {
	ID             int64
	ProjectID      int64
	SkillID        int64
	SkillName      string
	Category       string
	MinProficiency proficiency.Level
}
