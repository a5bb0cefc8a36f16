// Package catalog provides the fixed, read-only movie catalog and its
// sources. A Catalog is constructed once at startup and passed explicitly
// into the pipeline; nothing mutates it afterwards, so it is safe to
// share across concurrent callers.
package catalog

import "github.com/reelkit/slotcue/internal/domain/movie"

// Catalog is an ordered, fixed sequence of movie records. Catalog order
// is load-bearing: the director and language detectors and the
// empty-slots fallback all iterate it front to back.
type Catalog struct {
	movies []movie.Movie
}

// New creates a catalog from an ordered movie list.
func New(movies []movie.Movie) Catalog {
	return Catalog{movies: movies}
}

// Movies returns the catalog entries in order. Callers must treat the
// slice as read-only.
func (c Catalog) Movies() []movie.Movie { return c.movies }

// Len returns the number of entries.
func (c Catalog) Len() int { return len(c.movies) }

// Default returns the built-in sample catalog.
func Default() Catalog {
	return New([]movie.Movie{
		movie.New("Inception", "Sci-Fi/Action", 2010, "Christopher Nolan", "English",
			[]string{"dream", "thriller", "mind-bending", "heist"}),
		movie.New("Parasite", "Drama/Thriller", 2019, "Bong Joon Ho", "Korean",
			[]string{"family", "social commentary", "dark comedy", "serious"}),
		movie.New("The Avengers", "Sci-Fi/Action", 2012, "Joss Whedon", "English",
			[]string{"superhero", "Marvel", "team-up", "blockbuster"}),
		movie.New("La La Land", "Musical/Romance", 2016, "Damien Chazelle", "English",
			[]string{"music", "love", "dream", "emotional"}),
		movie.New("The Dark Knight", "Action/Drama", 2008, "Christopher Nolan", "English",
			[]string{"superhero", "DC", "philosophical", "serious", "gritty"}),
	})
}
