// Package extract turns free-text utterances into typed preference
// slots using keyword tables and pattern matching.
package extract

import (
	"strings"

	"github.com/reelkit/slotcue/internal/catalog"
	"github.com/reelkit/slotcue/internal/domain/era"
	"github.com/reelkit/slotcue/internal/domain/slot"
)

// Extractor detects preference slots in user utterances. Director and
// language detection are closed-vocabulary: they only recognize values
// present in the catalog (plus the explicit korean/english overrides).
type Extractor struct {
	cat catalog.Catalog
}

// New creates a slot extractor over the given catalog.
func New(cat catalog.Catalog) *Extractor {
	return &Extractor{cat: cat}
}

// Identify parses one utterance into filled slots plus the complementary
// missing list. Detection never fails: empty or unrecognizable input
// yields an empty Filled map and a full missing list.
func (e *Extractor) Identify(input string) (slot.Filled, []slot.Slot) {
	text := strings.ToLower(input)
	filled := slot.Filled{}

	if genre, ok := detectGenre(text); ok {
		filled[slot.Genre] = genre
	}
	if mood, ok := detectMood(text); ok {
		filled[slot.Mood] = mood
	}
	if director, ok := e.detectDirector(text); ok {
		filled[slot.Director] = director
	}
	if eraValue, ok := detectReleaseEra(input, text); ok {
		filled[slot.ReleaseEra] = eraValue
	}
	if language, ok := e.detectLanguage(text); ok {
		filled[slot.Language] = language
	}
	if runtime, ok := detectRuntime(text); ok {
		filled[slot.Runtime] = runtime
	}

	return filled, slot.MissingFrom(filled)
}

// detectGenre scans the synonym table in order; the first whole-word
// match wins, so table order is the tie-break.
func detectGenre(text string) (string, bool) {
	for _, syn := range genreSynonyms {
		if syn.pattern.MatchString(text) {
			return syn.canonical, true
		}
	}
	return "", false
}

// detectMood returns the first mood whose any trigger substring appears.
func detectMood(text string) (string, bool) {
	for _, entry := range moodTriggers {
		for _, trigger := range entry.triggers {
			if strings.Contains(text, trigger) {
				return entry.mood, true
			}
		}
	}
	return "", false
}

// detectDirector matches catalog directors by last name or full name, in
// catalog order.
func (e *Extractor) detectDirector(text string) (string, bool) {
	for _, m := range e.cat.Movies() {
		director := strings.ToLower(m.Director())
		parts := strings.Fields(director)
		if len(parts) == 0 {
			continue
		}
		lastName := parts[len(parts)-1]
		if strings.Contains(text, lastName) || strings.Contains(text, director) {
			return m.Director(), true
		}
	}
	return "", false
}

// detectReleaseEra prefers an explicit 4-digit year (stored as the
// literal year string) over era labels. The year scan runs on the raw
// input; label matching uses the lowercased text.
func detectReleaseEra(input, text string) (string, bool) {
	if year := yearPattern.FindString(input); year != "" {
		return year, true
	}
	for _, r := range era.Ranges() {
		bare := strings.TrimSuffix(r.Label(), "s")
		if strings.Contains(text, bare) || strings.Contains(text, r.Label()) {
			return r.Label(), true
		}
	}
	return "", false
}

// detectLanguage runs two phases in a fixed order: a catalog-language
// substring pass, then unconditional "korean" and "english" overrides.
// Explicit mentions therefore always beat catalog-derived matches, and
// "english" wins if both literal words appear.
func (e *Extractor) detectLanguage(text string) (string, bool) {
	value := ""
	for _, m := range e.cat.Movies() {
		lang := strings.ToLower(m.Language())
		if lang != "" && strings.Contains(text, lang) {
			value = m.Language()
			break
		}
	}
	if strings.Contains(text, "korean") {
		value = "Korean"
	}
	if strings.Contains(text, "english") {
		value = "English"
	}
	return value, value != ""
}

// detectRuntime applies the short check first and the long check second;
// when both patterns match, the long value overwrites.
func detectRuntime(text string) (string, bool) {
	value := ""
	if shortRuntimePattern.MatchString(text) {
		value = "short"
	}
	if longRuntimePattern.MatchString(text) {
		value = "long"
	}
	return value, value != ""
}
