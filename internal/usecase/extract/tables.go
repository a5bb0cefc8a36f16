package extract

import "regexp"

// The tables below are ordered slices, not maps: iteration order encodes
// tie-break priority, so the first matching entry wins.

// genreSynonym maps a surface keyword to its canonical genre label.
type genreSynonym struct {
	pattern   *regexp.Regexp
	canonical string
}

func wordPattern(keyword string) *regexp.Regexp {
	return regexp.MustCompile(`\b` + regexp.QuoteMeta(keyword) + `\b`)
}

var genreSynonyms = []genreSynonym{
	{wordPattern("sci-fi"), "Sci-Fi"},
	{wordPattern("science fiction"), "Sci-Fi"},
	{wordPattern("science-fiction"), "Sci-Fi"},
	{wordPattern("action"), "Action"},
	{wordPattern("drama"), "Drama"},
	{wordPattern("romance"), "Romance"},
	{wordPattern("musical"), "Musical"},
	{wordPattern("comedy"), "Comedy"},
	{wordPattern("thriller"), "Thriller"},
	{wordPattern("superhero"), "Sci-Fi/Action"},
}

// moodEntry maps a canonical mood to its trigger substrings. Triggers are
// matched by plain containment, not word boundaries.
type moodEntry struct {
	mood     string
	triggers []string
}

var moodTriggers = []moodEntry{
	{"fun", []string{"fun", "light", "funny", "laugh", "comedic", "entertaining"}},
	{"serious", []string{"serious", "dark", "grim", "heavy", "thoughtful", "dramatic"}},
	{"emotional", []string{"emotional", "touching", "tear", "sad", "romantic"}},
	{"mind-bending", []string{"mind-bending", "twisty", "puzzling", "complex"}},
	{"blockbuster", []string{"blockbuster", "epic", "big", "spectacle"}},
}

var (
	// yearPattern finds an explicit 4-digit year; applied to the raw
	// input, everything else matches against the lowercased text.
	yearPattern = regexp.MustCompile(`\b(19|20)\d{2}\b`)

	// Runtime patterns are checked short-then-long, with the long match
	// overwriting. "min" appears in both alternations, so any input with
	// the bare word "min" ends up as "long".
	shortRuntimePattern = regexp.MustCompile(`\b(short|under ?1 ?hr|< ?60|min)\b`)
	longRuntimePattern  = regexp.MustCompile(`\b(long|epic|over ?2 ?hr|> ?120|min)\b`)
)
