// Package candidate defines a scored recommendation candidate.
package candidate

import "github.com/reelkit/slotcue/internal/domain/movie"

// Candidate is a catalog movie with its heuristic score for one ranking
// call. Transient: produced per call, discarded after top-K selection.
type Candidate struct {
	score int
	movie movie.Movie
}

// New creates a scored candidate.
func New(score int, m movie.Movie) Candidate {
	return Candidate{score: score, movie: m}
}

// Score returns the non-negative heuristic score. Fallback candidates
// carry a zero score.
func (c Candidate) Score() int { return c.score }

// Movie returns the underlying catalog entry.
func (c Candidate) Movie() movie.Movie { return c.movie }
