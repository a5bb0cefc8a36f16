// Package movie defines the catalog's immutable movie record.
package movie

// Movie is a single catalog entry. Immutable after construction; every
// component treats it as read-only.
type Movie struct {
	title       string
	genre       string
	releaseYear int
	director    string
	language    string
	keywords    []string
}

// New creates a movie record.
func New(
	title, genre string, releaseYear int,
	director, language string, keywords []string,
) Movie {
	return Movie{
		title: title, genre: genre, releaseYear: releaseYear,
		director: director, language: language, keywords: keywords,
	}
}

// Title returns the movie title, unique within a catalog.
func (m Movie) Title() string { return m.title }

// Genre returns the genre field, possibly "/"-delimited multi-tag
// (e.g., "Sci-Fi/Action").
func (m Movie) Genre() string { return m.genre }

// ReleaseYear returns the release year.
func (m Movie) ReleaseYear() int { return m.releaseYear }

// Director returns the director's full name.
func (m Movie) Director() string { return m.director }

// Language returns the movie's language.
func (m Movie) Language() string { return m.language }

// Keywords returns the ordered descriptive keywords.
func (m Movie) Keywords() []string { return m.keywords }

// Decade returns the release decade (release year with the last digit
// dropped), used for near-era scoring.
func (m Movie) Decade() int { return m.releaseYear / 10 }
