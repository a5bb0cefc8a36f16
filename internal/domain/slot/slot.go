// Package slot defines the preference slots the assistant tries to fill
// from a user utterance.
package slot

// Slot is one recognized dimension of user preference.
type Slot string

// The fixed slot enumeration. All() preserves this order; detection and
// prompt display rely on it.
const (
	Genre      Slot = "genre"
	Mood       Slot = "mood"
	ReleaseEra Slot = "release_era"
	Director   Slot = "director"
	Language   Slot = "language"
	Runtime    Slot = "runtime"
)

// All returns every slot in enumeration order.
func All() []Slot {
	return []Slot{Genre, Mood, ReleaseEra, Director, Language, Runtime}
}

// IsValid checks if the slot is one of the supported values.
func (s Slot) IsValid() bool {
	switch s {
	case Genre, Mood, ReleaseEra, Director, Language, Runtime:
		return true
	}
	return false
}

// String returns the slot name.
func (s Slot) String() string { return string(s) }

// Description returns the human-readable slot description. Used only for
// prompt display, never for matching logic.
func (s Slot) Description() string {
	switch s {
	case Genre:
		return "The genre of the movie (e.g., Action, Drama, Romance, Sci-Fi, Comedy)."
	case Mood:
		return "The desired mood for the movie (e.g., fun, dark, emotional, thought-provoking)."
	case ReleaseEra:
		return "Approximate release era (e.g., 1990s, 2000s, 2010s, modern)."
	case Director:
		return "Prefer a film by a specific director."
	case Language:
		return "Preferred language of the movie (e.g., English, Korean)."
	case Runtime:
		return "Preferred runtime (short < 100 min, medium 100-140, long > 140)."
	}
	return ""
}

// Filled maps detected slots to their normalized values for a single
// turn. At most one value per slot; recomputed fresh from the raw text on
// every call, never carried across turns.
type Filled map[Slot]string

// MissingFrom returns the slots absent from filled, in enumeration order.
// Priority is applied later by the clarification policy, not here.
func MissingFrom(filled Filled) []Slot {
	var missing []Slot
	for _, s := range All() {
		if _, ok := filled[s]; !ok {
			missing = append(missing, s)
		}
	}
	return missing
}
