package skill

import "time"

// Skill is a catalog entry. The catalog is shared: personnel ledger
// rows and project requirements both reference it by id.
type Skill struct {
	ID          int64
	Name        string
	Category    string
	Description string
	CreatedAt   time.Time
}

// Categories the catalog accepts. Mirrors the seeded taxonomy.
const (
	CategoryProgrammingLanguage = "Programming Language"
	CategoryFramework           = "Framework"
	CategoryDatabase            = "Database"
	CategoryDevOps              = "DevOps"
	CategoryCloud               = "Cloud"
	CategoryTool                = "Tool"
	CategorySoftSkill           = "Soft Skill"
)

var categories = map[string]struct{}{
	CategoryProgrammingLanguage: {},
	CategoryFramework:           {},
	CategoryDatabase:            {},
	CategoryDevOps:              {},
	CategoryCloud:               {},
	CategoryTool:                {},
	CategorySoftSkill:           {},
}

func ValidCategory(c string) bool {
	_, ok := categories[c]
	return ok
}
