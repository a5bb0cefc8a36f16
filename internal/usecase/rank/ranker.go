// Package rank scores catalog movies against filled preference slots and
// selects the top-K candidates.
package rank

import (
	"sort"
	"strconv"
	"strings"

	"github.com/reelkit/slotcue/internal/catalog"
	"github.com/reelkit/slotcue/internal/domain/candidate"
	"github.com/reelkit/slotcue/internal/domain/era"
	"github.com/reelkit/slotcue/internal/domain/movie"
	"github.com/reelkit/slotcue/internal/domain/slot"
)

// DefaultTopK is the candidate list size when callers don't override it.
const DefaultTopK = 3

// Per-slot score weights. Fixed constants reflecting relative signal
// reliability: an exact director match is the strongest signal, a
// same-decade match the weakest. Scores are summed without
// normalization; mood adds 1 per matching keyword, unbounded.
const (
	genreWeight      = 3
	directorWeight   = 4
	languageWeight   = 2
	exactYearWeight  = 3
	sameDecadeWeight = 2
	eraLabelWeight   = 2
)

// Ranker ranks a fixed catalog against partial preference data.
type Ranker struct {
	cat catalog.Catalog
}

// New creates a ranker over the given catalog.
func New(cat catalog.Catalog) *Ranker {
	return &Ranker{cat: cat}
}

// Retrieve returns at most topK candidates for the filled slots.
//
// With no filled slots it returns the first topK catalog entries in
// catalog order, a deterministic diverse fallback. Otherwise entries are
// scored additively, sorted by (score desc, release year desc; full
// ties keep catalog order), and the positive-score prefix is kept. If
// nothing scores above zero the topK most recent entries are returned
// instead, so the result is never empty for a non-empty catalog and
// topK ≥ 1.
func (r *Ranker) Retrieve(filled slot.Filled, topK int) []candidate.Candidate {
	if topK <= 0 || r.cat.Len() == 0 {
		return nil
	}

	movies := r.cat.Movies()
	if len(filled) == 0 {
		n := min(topK, len(movies))
		out := make([]candidate.Candidate, 0, n)
		for _, m := range movies[:n] {
			out = append(out, candidate.New(0, m))
		}
		return out
	}

	scored := make([]candidate.Candidate, 0, len(movies))
	for _, m := range movies {
		scored = append(scored, candidate.New(score(m, filled), m))
	}

	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].Score() != scored[j].Score() {
			return scored[i].Score() > scored[j].Score()
		}
		return scored[i].Movie().ReleaseYear() > scored[j].Movie().ReleaseYear()
	})

	var top []candidate.Candidate
	for _, c := range scored {
		if c.Score() <= 0 {
			break
		}
		top = append(top, c)
		if len(top) == topK {
			break
		}
	}

	if len(top) == 0 {
		return r.mostRecent(topK)
	}
	return top
}

// mostRecent returns the topK newest catalog entries, the fallback when
// scoring finds no positive match.
func (r *Ranker) mostRecent(topK int) []candidate.Candidate {
	movies := append([]movie.Movie(nil), r.cat.Movies()...)
	sort.SliceStable(movies, func(i, j int) bool {
		return movies[i].ReleaseYear() > movies[j].ReleaseYear()
	})

	n := min(topK, len(movies))
	out := make([]candidate.Candidate, 0, n)
	for _, m := range movies[:n] {
		out = append(out, candidate.New(0, m))
	}
	return out
}

// score sums the per-slot contributions for one movie.
func score(m movie.Movie, filled slot.Filled) int {
	total := 0
	if genre, ok := filled[slot.Genre]; ok && containsFold(m.Genre(), genre) {
		total += genreWeight
	}
	if director, ok := filled[slot.Director]; ok && strings.EqualFold(director, m.Director()) {
		total += directorWeight
	}
	if language, ok := filled[slot.Language]; ok && strings.EqualFold(language, m.Language()) {
		total += languageWeight
	}
	if value, ok := filled[slot.ReleaseEra]; ok {
		total += eraScore(m, value)
	}
	if mood, ok := filled[slot.Mood]; ok {
		total += moodScore(m, mood)
	}
	return total
}

// eraScore handles both literal year values and era labels. A numeric
// value scores the exact year, else the shared decade. A label scores
// only when it ends in "s" and starts with a 4-digit decade whose range
// covers the release year ("classic" fails both guards and never
// scores).
func eraScore(m movie.Movie, value string) int {
	if year, err := strconv.Atoi(value); err == nil {
		if m.ReleaseYear() == year {
			return exactYearWeight
		}
		if m.Decade() == year/10 {
			return sameDecadeWeight
		}
		return 0
	}

	if !strings.HasSuffix(value, "s") || len(value) < 4 {
		return 0
	}
	if _, err := strconv.Atoi(value[:4]); err != nil {
		return 0
	}
	if r, ok := era.ByLabel(value); ok && r.Contains(m.ReleaseYear()) {
		return eraLabelWeight
	}
	return 0
}

// moodScore adds 1 per keyword that mentions the mood (unbounded across
// keywords) and 1 more if the title itself does.
func moodScore(m movie.Movie, mood string) int {
	total := 0
	tokens := strings.Fields(mood)
	for _, keyword := range m.Keywords() {
		if mentionsMood(keyword, mood, tokens) {
			total++
		}
	}
	if containsFold(m.Title(), mood) {
		total++
	}
	return total
}

// mentionsMood reports whether a movie keyword contains the mood string
// or any whitespace-delimited token of it. Deliberately loose substring
// containment; swap this out for stricter matching without touching the
// scoring rules.
func mentionsMood(keyword, mood string, tokens []string) bool {
	kw := strings.ToLower(keyword)
	if strings.Contains(kw, mood) {
		return true
	}
	for _, token := range tokens {
		if strings.Contains(kw, token) {
			return true
		}
	}
	return false
}

// containsFold reports case-insensitive substring containment.
func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}
