package extract

import (
	"testing"

	"github.com/reelkit/slotcue/internal/catalog"
	"github.com/reelkit/slotcue/internal/domain/slot"
)

func newExtractor() *Extractor {
	return New(catalog.Default())
}

func TestIdentify_EmptyInput(t *testing.T) {
	filled, missing := newExtractor().Identify("")
	if len(filled) != 0 {
		t.Errorf("expected no filled slots, got %v", filled)
	}
	if len(missing) != len(slot.All()) {
		t.Errorf("expected all %d slots missing, got %d", len(slot.All()), len(missing))
	}
}

func TestIdentify_NonsenseInput(t *testing.T) {
	filled, missing := newExtractor().Identify("xyzzy qwerty plugh")
	if len(filled) != 0 {
		t.Errorf("expected no filled slots, got %v", filled)
	}
	if len(filled)+len(missing) != len(slot.All()) {
		t.Error("filled and missing should partition the enumeration")
	}
}

func TestIdentify_KeysAreValidSlots(t *testing.T) {
	inputs := []string{
		"Recommend a fun action movie",
		"something korean from 2019",
		"a long epic by nolan",
		"", "???", "Ich möchte einen Film sehen",
	}
	for _, input := range inputs {
		filled, missing := newExtractor().Identify(input)
		for s := range filled {
			if !s.IsValid() {
				t.Errorf("input %q: invalid filled slot %q", input, s)
			}
		}
		if len(filled)+len(missing) != len(slot.All()) {
			t.Errorf("input %q: filled+missing != enumeration", input)
		}
	}
}

func TestIdentify_FunActionMovie(t *testing.T) {
	filled, missing := newExtractor().Identify("Recommend a fun action movie")

	if filled[slot.Genre] != "Action" {
		t.Errorf("expected genre Action, got %q", filled[slot.Genre])
	}
	if filled[slot.Mood] != "fun" {
		t.Errorf("expected mood fun, got %q", filled[slot.Mood])
	}

	missingSet := make(map[slot.Slot]bool)
	for _, s := range missing {
		missingSet[s] = true
	}
	for _, s := range []slot.Slot{slot.ReleaseEra, slot.Director, slot.Language, slot.Runtime} {
		if !missingSet[s] {
			t.Errorf("expected %s to be missing", s)
		}
	}
}

func TestDetectGenre(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"a sci-fi film", "Sci-Fi"},
		{"some science fiction", "Sci-Fi"},
		{"a superhero movie", "Sci-Fi/Action"},
		{"romance please", "Romance"},
		{"a musical tonight", "Musical"},
		{"good thriller", "Thriller"},
		{"a comedy", "Comedy"},
		// Whole-word matching: "dramatic" must not fill genre drama.
		{"something dramatic", ""},
		{"actions speak louder", ""},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			filled, _ := newExtractor().Identify(tt.input)
			if filled[slot.Genre] != tt.want {
				t.Errorf("genre: expected %q, got %q", tt.want, filled[slot.Genre])
			}
		})
	}
}

func TestDetectGenre_TableOrderBreaksTies(t *testing.T) {
	// Both "sci-fi" and "action" appear; the synonym table lists sci-fi
	// first, so it wins.
	filled, _ := newExtractor().Identify("a sci-fi action movie")
	if filled[slot.Genre] != "Sci-Fi" {
		t.Errorf("expected Sci-Fi from table order, got %q", filled[slot.Genre])
	}
}

func TestDetectMood(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"make me laugh", "fun"},
		{"something dark and brooding", "serious"},
		{"a touching story", "emotional"},
		{"twisty plots please", "mind-bending"},
		{"a big spectacle", "blockbuster"},
		// Substring containment is deliberate: "dramatic" triggers serious.
		{"something dramatic", "serious"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			filled, _ := newExtractor().Identify(tt.input)
			if filled[slot.Mood] != tt.want {
				t.Errorf("mood: expected %q, got %q", tt.want, filled[slot.Mood])
			}
		})
	}
}

func TestDetectMood_FirstMoodWins(t *testing.T) {
	// "funny" (fun) and "dark" (serious) both appear; fun comes first in
	// the table.
	filled, _ := newExtractor().Identify("a funny but dark movie")
	if filled[slot.Mood] != "fun" {
		t.Errorf("expected fun from table order, got %q", filled[slot.Mood])
	}
}

func TestDetectDirector(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"last name", "anything by nolan", "Christopher Nolan"},
		{"full name", "I love christopher nolan films", "Christopher Nolan"},
		{"catalog order tie-break", "nolan or whedon?", "Christopher Nolan"},
		{"not in catalog", "anything by spielberg", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filled, _ := newExtractor().Identify(tt.input)
			if filled[slot.Director] != tt.want {
				t.Errorf("director: expected %q, got %q", tt.want, filled[slot.Director])
			}
		})
	}
}

func TestDetectDirector_LastNameSubstring(t *testing.T) {
	// "short" contains "ho", the last name of Bong Joon Ho. The detector
	// is plain substring matching, so this fills director too.
	filled, _ := newExtractor().Identify("a short film")
	if filled[slot.Director] != "Bong Joon Ho" {
		t.Errorf("expected substring match on 'ho', got %q", filled[slot.Director])
	}
}

func TestDetectReleaseEra(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"explicit year", "something from 2019 maybe", "2019"},
		{"year beats decade word", "2008, not the usual 1990s stuff", "2008"},
		// A bare "1990" is a 4-digit year hit, stored literally; the
		// label path only runs when no year matched.
		{"bare year stored literally", "I grew up on 1990 movies", "1990"},
		{"decade label", "the 1990s had the best films", "1990s"},
		{"2010s label", "the 2010s were great", "2010s"},
		{"classic label", "a classic film", "classic"},
		{"no era", "just a movie", ""},
		{"three digit number", "the 201 best films", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filled, _ := newExtractor().Identify(tt.input)
			if filled[slot.ReleaseEra] != tt.want {
				t.Errorf("release_era: expected %q, got %q", tt.want, filled[slot.ReleaseEra])
			}
		})
	}
}

func TestDetectLanguage(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"korean", "a korean movie", "Korean"},
		{"english", "english only please", "English"},
		// The overrides run catalog-pass, korean, english in that order,
		// so a literal "english" wins even when "korean" is present.
		{"english beats korean", "korean or english", "English"},
		{"no language", "a quiet film", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filled, _ := newExtractor().Identify(tt.input)
			if filled[slot.Language] != tt.want {
				t.Errorf("language: expected %q, got %q", tt.want, filled[slot.Language])
			}
		})
	}
}

func TestDetectRuntime(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"short word", "a short film", "short"},
		{"long word", "a long movie", "long"},
		{"epic", "an epic tale", "long"},
		{"no runtime", "a movie", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filled, _ := newExtractor().Identify(tt.input)
			if filled[slot.Runtime] != tt.want {
				t.Errorf("runtime: expected %q, got %q", tt.want, filled[slot.Runtime])
			}
		})
	}
}

func TestDetectRuntime_MinMatchesBothPatterns(t *testing.T) {
	// "min" appears in both the short and the long pattern. The long
	// check runs second and overwrites, so bare "min" lands on long.
	filled, _ := newExtractor().Identify("around 90 min")
	if filled[slot.Runtime] != "long" {
		t.Errorf("expected long (long check overwrites), got %q", filled[slot.Runtime])
	}
}

func TestDetectRuntime_ShortAndLongTogether(t *testing.T) {
	filled, _ := newExtractor().Identify("short but epic")
	if filled[slot.Runtime] != "long" {
		t.Errorf("expected long to overwrite short, got %q", filled[slot.Runtime])
	}
}

func TestIdentify_CaseInsensitive(t *testing.T) {
	filled, _ := newExtractor().Identify("A FUN ACTION MOVIE BY NOLAN")
	if filled[slot.Genre] != "Action" {
		t.Errorf("expected genre Action, got %q", filled[slot.Genre])
	}
	if filled[slot.Mood] != "fun" {
		t.Errorf("expected mood fun, got %q", filled[slot.Mood])
	}
	if filled[slot.Director] != "Christopher Nolan" {
		t.Errorf("expected director Christopher Nolan, got %q", filled[slot.Director])
	}
}
