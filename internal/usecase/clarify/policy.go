// Package clarify selects the single next clarifying question to ask,
// given the turn's slot-fill state and ranked candidates.
package clarify

import (
	"fmt"
	"strings"

	"github.com/reelkit/slotcue/internal/domain/candidate"
	"github.com/reelkit/slotcue/internal/domain/slot"
)

// questionPriority is the fixed order used to pick which missing slot to
// ask about first. It is total over the slot enumeration, so the
// missing-slot branch always produces a question.
var questionPriority = []slot.Slot{
	slot.Genre,
	slot.Mood,
	slot.ReleaseEra,
	slot.Director,
	slot.Language,
	slot.Runtime,
}

// slotQuestions holds the fixed question template per slot. Lookup only;
// priority lives in questionPriority.
var slotQuestions = map[slot.Slot]string{
	slot.Genre:      "Sure — what genre are you in the mood for? (e.g., Action, Drama, Comedy, Romance)",
	slot.Mood:       "Would you like something more light/fun or more serious/intense?",
	slot.ReleaseEra: "Any preference for release era — classic, 1990s, 2000s, 2010s, or recent?",
	slot.Director:   "Do you prefer a specific director or filmmaker? If yes, name them (e.g., Nolan).",
	slot.Language:   "Do you have a preferred language? (e.g., English, Korean, Spanish)",
	slot.Runtime:    "Do you prefer a short (<100 min), medium (100-140 min), or long (>140 min) movie?",
}

const (
	actionQuestion   = "Great — for action, do you want something gritty/realistic or a fun blockbuster?"
	directorQuestion = "Do you want something by %s specifically, or films with a similar tone?"
	moodQuestion     = "You mentioned '%s'. Would you prefer a milder or a stronger version of that mood?"
	confirmQuestion  = "Thanks — one quick check: do you prefer newer releases or are older films okay?"
	starterQuestion  = "Got it — to start, what type of movie would you like (genre, mood, or director)?"
)

// Policy is the stateless clarification decision procedure.
type Policy struct{}

// New creates a clarification policy.
func New() *Policy {
	return &Policy{}
}

// Ask returns exactly one clarifying question. With missing slots it
// asks about the highest-priority one; with everything filled it runs a
// first-match cascade over the filled values. The result is always
// non-empty and contains a "?".
func (p *Policy) Ask(filled slot.Filled, missing []slot.Slot, candidates []candidate.Candidate) string {
	_ = candidates // heuristics currently decide on slot state alone

	if len(missing) > 0 {
		return askMissing(missing)
	}

	if len(filled) > 0 {
		// Case-sensitive by contract: canonical genre labels carry the
		// exact "Action" casing.
		if genre, ok := filled[slot.Genre]; ok && strings.Contains(genre, "Action") {
			return actionQuestion
		}
		if director, ok := filled[slot.Director]; ok {
			return fmt.Sprintf(directorQuestion, director)
		}
		if mood, ok := filled[slot.Mood]; ok {
			return fmt.Sprintf(moodQuestion, mood)
		}
		return confirmQuestion
	}

	// Unreachable while the enumeration is fixed (empty filled implies
	// all six slots missing), kept as the final safety fallback.
	return starterQuestion
}

// askMissing picks the first missing slot in priority order.
func askMissing(missing []slot.Slot) string {
	missingSet := make(map[slot.Slot]struct{}, len(missing))
	for _, s := range missing {
		missingSet[s] = struct{}{}
	}
	for _, s := range questionPriority {
		if _, ok := missingSet[s]; ok {
			return slotQuestions[s]
		}
	}
	// Priority order is total over the enumeration; a non-empty missing
	// list always hits one of the templates above.
	return starterQuestion
}
