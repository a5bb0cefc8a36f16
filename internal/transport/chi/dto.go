package chi

import (
	"github.com/reelkit/slotcue/internal/domain/candidate"
	"github.com/reelkit/slotcue/internal/domain/movie"
	assistuc "github.com/reelkit/slotcue/internal/usecase/assist"
)

// Error codes returned in errorResponse.Code.
const (
	codeBadRequest   = "bad_request"
	codeUnauthorized = "unauthorized"
)

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type assistRequest struct {
	Input string `json:"input"`
}

type assistResponse struct {
	Question     string            `json:"question"`
	FilledSlots  map[string]string `json:"filled_slots"`
	MissingSlots []string          `json:"missing_slots"`
	Candidates   []candidateDTO    `json:"candidates"`
	Prompt       string            `json:"prompt,omitempty"`
}

type candidateDTO struct {
	Score int      `json:"score"`
	Movie movieDTO `json:"movie"`
}

type movieDTO struct {
	Title       string   `json:"title"`
	Genre       string   `json:"genre"`
	ReleaseYear int      `json:"release_year"`
	Director    string   `json:"director"`
	Language    string   `json:"language"`
	Keywords    []string `json:"keywords,omitempty"`
}

type catalogResponse struct {
	Items []movieDTO `json:"items"`
}

func movieToDTO(m movie.Movie) movieDTO {
	return movieDTO{
		Title:       m.Title(),
		Genre:       m.Genre(),
		ReleaseYear: m.ReleaseYear(),
		Director:    m.Director(),
		Language:    m.Language(),
		Keywords:    m.Keywords(),
	}
}

func candidateToDTO(c candidate.Candidate) candidateDTO {
	dto := candidateDTO{Score: c.Score(), Movie: movieToDTO(c.Movie())}
	dto.Movie.Keywords = nil // keyword lists stay internal to ranking
	return dto
}

func assistToDTO(resp assistuc.Response, includePrompt bool) assistResponse {
	filled := make(map[string]string, len(resp.Filled))
	for s, v := range resp.Filled {
		filled[string(s)] = v
	}

	missing := make([]string, len(resp.Missing))
	for i, s := range resp.Missing {
		missing[i] = string(s)
	}

	candidates := make([]candidateDTO, len(resp.Candidates))
	for i, c := range resp.Candidates {
		candidates[i] = candidateToDTO(c)
	}

	out := assistResponse{
		Question:     resp.Question,
		FilledSlots:  filled,
		MissingSlots: missing,
		Candidates:   candidates,
	}
	if includePrompt {
		out.Prompt = resp.Prompt
	}
	return out
}
