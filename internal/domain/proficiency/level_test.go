package proficiency

import "testing"

func TestRank_TotalOrder(t *testing.T) {
	lvls := Levels()
	prev := 0
	for _, l := range lvls {
		r := Rank(l)
		if r <= prev {
			t.Fatalf("rank not strictly increasing at %s: got %d after %d", l, r, prev)
		}
		prev = r
	}
	if Rank(Beginner) != 1 || Rank(Expert) != 4 {
		t.Fatalf("unexpected rank bounds: Beginner=%d Expert=%d", Rank(Beginner), Rank(Expert))
	}
}

func TestMeets_ConsistentWithRank(t *testing.T) {
	for _, a := range Levels() {
		for _, b := range Levels() {
			want := Rank(a) >= Rank(b)
			if Meets(a, b) != want {
				t.Fatalf("Meets(%s, %s) = %v, want %v", a, b, !want, want)
			}
		}
	}
}

func TestMeets_Reflexive(t *testing.T) {
	for _, l := range Levels() {
		if !Meets(l, l) {
			t.Fatalf("Meets(%s, %s) = false", l, l)
		}
	}
}

func TestMeets_Transitive(t *testing.T) {
	for _, a := range Levels() {
		for _, b := range Levels() {
			for _, c := range Levels() {
				if Meets(a, b) && Meets(b, c) && !Meets(a, c) {
					t.Fatalf("transitivity broken: %s >= %s >= %s but Meets(%s, %s) = false", a, b, c, a, c)
				}
			}
		}
	}
}

func TestUnknownLevelNeverSatisfies(t *testing.T) {
	bogus := Level("Wizard")
	if Rank(bogus) != 0 {
		t.Fatalf("expected rank 0 for unknown level, got %d", Rank(bogus))
	}
	if Known(bogus) {
		t.Fatalf("expected Known=false for %q", bogus)
	}
	for _, l := range Levels() {
		if Meets(bogus, l) {
			t.Fatalf("unknown level must not satisfy %s", l)
		}
	}
	// An unknown minimum is still met by any known level (rank 0 floor).
	if !Meets(Beginner, bogus) {
		t.Fatalf("known level should meet an unknown minimum")
	}
}

func TestParse(t *testing.T) {
	l, ok := Parse("  Advanced ")
	if !ok || l != Advanced {
		t.Fatalf("Parse trimmed: got %q ok=%v", l, ok)
	}
	if _, ok := Parse("advanced"); ok {
		t.Fatalf("Parse must be case-sensitive")
	}
	if _, ok := Parse(""); ok {
		t.Fatalf("Parse empty must fail")
	}
}
