// Package assist wires the single-turn pipeline: slot extraction,
// candidate ranking, prompt assembly, and clarification.
package assist

import (
	"context"

	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"

	"github.com/reelkit/slotcue/internal/catalog"
	"github.com/reelkit/slotcue/internal/domain/candidate"
	"github.com/reelkit/slotcue/internal/domain/slot"
	"github.com/reelkit/slotcue/internal/logger"
	"github.com/reelkit/slotcue/internal/prompt"
	"github.com/reelkit/slotcue/internal/usecase/clarify"
	"github.com/reelkit/slotcue/internal/usecase/extract"
	"github.com/reelkit/slotcue/internal/usecase/rank"
)

// Response is everything one turn produces. Candidates, prompt, and
// question are all derived from the same extraction; no state survives
// the call.
type Response struct {
	Input      string
	Filled     slot.Filled
	Missing    []slot.Slot
	Candidates []candidate.Candidate
	Prompt     string
	Question   string
}

// Service runs the assistant pipeline. Stateless per turn and safe for
// concurrent use; the optional response cache is the only shared
// structure and golang-lru handles its own locking.
type Service struct {
	extractor *extract.Extractor
	ranker    *rank.Ranker
	policy    *clarify.Policy
	topK      int
	cache     *lru.Cache[string, Response]
}

// New creates an assist service over the given catalog.
func New(cat catalog.Catalog) *Service {
	return &Service{
		extractor: extract.New(cat),
		ranker:    rank.New(cat),
		policy:    clarify.New(),
		topK:      rank.DefaultTopK,
	}
}

// WithTopK overrides the candidate list size. Values below zero are
// clamped to zero (empty candidate lists, per the ranker contract).
func (s *Service) WithTopK(topK int) *Service {
	s.topK = max(topK, 0)
	return s
}

// WithCache enables response memoization keyed on the raw utterance.
// Sound because the pipeline is pure and deterministic. size <= 0 leaves
// caching disabled.
func (s *Service) WithCache(size int) *Service {
	if size <= 0 {
		return s
	}
	cache, err := lru.New[string, Response](size)
	if err != nil {
		// lru.New only fails on size <= 0, which is guarded above.
		return s
	}
	s.cache = cache
	return s
}

// Respond runs extraction, ranking, prompt assembly, and clarification
// for one utterance. It never fails: unrecognizable input degrades to
// fallback candidates and a starter or priority question.
func (s *Service) Respond(ctx context.Context, input string) Response {
	if s.cache != nil {
		if resp, ok := s.cache.Get(input); ok {
			return resp
		}
	}

	filled, missing := s.extractor.Identify(input)
	candidates := s.ranker.Retrieve(filled, s.topK)
	promptText := prompt.Build(input, filled, candidates)

	logger.FromContext(ctx).Debug("assembled model prompt",
		zap.Int("filled_slots", len(filled)),
		zap.Int("candidates", len(candidates)),
		zap.String("prompt", promptText),
	)

	resp := Response{
		Input:      input,
		Filled:     filled,
		Missing:    missing,
		Candidates: candidates,
		Prompt:     promptText,
		Question:   s.policy.Ask(filled, missing, candidates),
	}

	if s.cache != nil {
		s.cache.Add(input, resp)
	}
	return resp
}
