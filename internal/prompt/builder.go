// Package prompt assembles the dynamic prompt intended for a downstream
// language model. Pure formatting: nothing here influences which
// clarifying question gets asked, and the prompt is never sent anywhere.
package prompt

import (
	"fmt"
	"strings"

	"github.com/reelkit/slotcue/internal/domain/candidate"
	"github.com/reelkit/slotcue/internal/domain/slot"
)

const systemPrompt = `You are a friendly and knowledgeable movie expert. You ask smart, concise clarifying questions that help users get a tailored movie suggestion.
Constraints:
- Always ask at least one clarifying question before recommending a final movie title.
- Keep tone warm, brief and professional.
- When possible, prefer single, specific clarifying questions that are easy to answer (yes/no or short phrases).`

const instruction = "INSTRUCTION (A): You are the assistant. Based on the information above, " +
	"ask exactly one concise, specific clarifying question that will most improve the recommendation. " +
	"The question should be easy to answer (one or two words ideally). Do NOT recommend a movie yet. " +
	"If all slots are already thoroughly filled, ask for a final small confirmation " +
	"(e.g., 'Do you prefer something gritty or light?')."

// Example is one few-shot transcript pair.
type Example struct {
	Input  string
	Output string
}

// FewShotExamples returns the two fixed transcripts included in every
// prompt.
func FewShotExamples() []Example {
	return []Example{
		{
			Input: "I liked the new Nolan movie.",
			Output: "Christopher Nolan's films are fantastic! To help me narrow it down, " +
				"are you in the mood for a more thoughtful thriller (e.g., Inception) " +
				"or a darker, gritty superhero drama (e.g., The Dark Knight)?",
		},
		{
			Input: "Something romantic but upbeat.",
			Output: "Nice — do you prefer musicals (songs integrated in story) or " +
				"romantic comedies (lighthearted, modern)? A one-word answer like " +
				"'musical' or 'rom-com' is perfect.",
		},
	}
}

// Build assembles the multi-section prompt: persona, few-shot examples,
// echoed user input, identified slots, retrieved candidates, and the
// fixed instruction suffix. Sections are joined by blank lines.
func Build(input string, filled slot.Filled, candidates []candidate.Candidate) string {
	parts := []string{systemPrompt, "\nFEW-SHOT EXAMPLES:"}
	for _, ex := range FewShotExamples() {
		parts = append(parts, fmt.Sprintf("User: %s\nAssistant: %s\n", ex.Input, ex.Output))
	}

	parts = append(parts, "USER REQUEST:", strings.TrimSpace(input), "IDENTIFIED SLOTS:")
	if len(filled) > 0 {
		// Enumeration order keeps the listing deterministic.
		for _, s := range slot.All() {
			if value, ok := filled[s]; ok {
				parts = append(parts, fmt.Sprintf("- %s: %s", s, value))
			}
		}
	} else {
		parts = append(parts, "- (none identified)")
	}

	parts = append(parts, "RETRIEVED CANDIDATES (R):", formatCandidates(candidates), "\n"+instruction)

	return strings.Join(parts, "\n\n")
}

// formatCandidates lists the candidates one per line.
func formatCandidates(candidates []candidate.Candidate) string {
	if len(candidates) == 0 {
		return "No strong candidates found in the local DB."
	}
	lines := make([]string, 0, len(candidates))
	for _, c := range candidates {
		m := c.Movie()
		lines = append(lines, fmt.Sprintf("- %s (%d) — genre: %s, director: %s",
			m.Title(), m.ReleaseYear(), m.Genre(), m.Director()))
	}
	return strings.Join(lines, "\n")
}
