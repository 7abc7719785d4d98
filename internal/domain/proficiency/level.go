package proficiency

import "strings"

// Level is one of the ordered proficiency levels a person can hold for
// a skill, or a requirement can demand as a minimum.
type Level string

const (
	Beginner     Level = "Beginner"
	Intermediate Level = "Intermediate"
	Advanced     Level = "Advanced"
	Expert       Level = "Expert"
)

// rankUnknown is what Rank returns for a level string outside the
// scale. It never satisfies Meets, so a corrupt ledger row can only
// lower a candidate's score, never inflate it.
const rankUnknown = 0

var ranks = map[Level]int{
	Beginner:     1,
	Intermediate: 2,
	Advanced:     3,
	Expert:       4,
}

// Rank maps a level onto its position in the total order (1..4).
// Unrecognized levels rank 0.
func Rank(l Level) int {
	return ranks[l]
}

// Known reports whether l is one of the four scale levels.
func Known(l Level) bool {
	_, ok := ranks[l]
	return ok
}

// Meets reports whether a candidate at level have satisfies a
// requirement demanding at least want.
func Meets(have, want Level) bool {
	return Rank(have) >= Rank(want)
}

// Parse resolves a level string, tolerating surrounding whitespace.
// The boolean is false for anything outside the scale.
func Parse(s string) (Level, bool) {
	l := Level(strings.TrimSpace(s))
	if !Known(l) {
		return l, false
	}
	return l, true
}

// Levels returns the scale in ascending order.
func Levels() []Level {
	return []Level{Beginner, Intermediate, Advanced, Expert}
}
