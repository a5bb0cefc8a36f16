// Package era defines the named release eras shared by the slot
// extractor and the candidate ranker.
package era

// Range is a named, inclusive span of release years.
type Range struct {
	label string
	from  int
	to    int
}

// Label returns the era name (e.g., "2010s", "classic").
func (r Range) Label() string { return r.label }

// Contains reports whether year falls inside the era.
func (r Range) Contains(year int) bool { return year >= r.from && year <= r.to }

// ranges is ordered; the extractor's first-match tie-break depends on it.
var ranges = []Range{
	{label: "1990s", from: 1990, to: 1999},
	{label: "2000s", from: 2000, to: 2009},
	{label: "2010s", from: 2010, to: 2019},
	{label: "2020s", from: 2020, to: 2029},
	{label: "classic", from: 1900, to: 1989},
}

// Ranges returns the known eras in table order.
func Ranges() []Range { return ranges }

// ByLabel looks up an era by its exact label.
func ByLabel(label string) (Range, bool) {
	for _, r := range ranges {
		if r.label == label {
			return r, true
		}
	}
	return Range{}, false
}
