// Package chi exposes the assist pipeline over HTTP.
package chi

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/reelkit/slotcue/internal/catalog"
	"github.com/reelkit/slotcue/internal/metrics"
	assistuc "github.com/reelkit/slotcue/internal/usecase/assist"
)

// Server handles the HTTP API: one assist operation plus read-only
// catalog and health endpoints. All decision logic stays in the usecase
// layer; handlers only decode, invoke, count, and encode.
type Server struct {
	assist *assistuc.Service
	cat    catalog.Catalog
	logger *zap.Logger
}

// NewServer creates an HTTP API server.
func NewServer(assist *assistuc.Service, cat catalog.Catalog, logger *zap.Logger) *Server {
	return &Server{assist: assist, cat: cat, logger: logger}
}

// Register mounts the API routes on the router.
func (s *Server) Register(r chi.Router) {
	r.Post("/api/v1/assist", s.handleAssist)
	r.Get("/api/v1/catalog", s.handleCatalog)
	r.Get("/healthz", s.handleHealth)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())
}

// handleAssist runs one stateless turn: extract slots, rank candidates,
// choose the clarifying question. An empty input is valid and degrades
// to fallback candidates plus the highest-priority question.
func (s *Server) handleAssist(w http.ResponseWriter, r *http.Request) {
	var req assistRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	includePrompt := r.URL.Query().Get("include_prompt") == "true"

	resp := s.assist.Respond(r.Context(), req.Input)
	observeAssist(resp)

	writeJSON(w, http.StatusOK, assistToDTO(resp, includePrompt))
}

// handleCatalog lists the fixed catalog. Read access only; there are no
// write operations on the catalog surface.
func (s *Server) handleCatalog(w http.ResponseWriter, _ *http.Request) {
	movies := s.cat.Movies()
	items := make([]movieDTO, len(movies))
	for i, m := range movies {
		items[i] = movieToDTO(m)
	}
	writeJSON(w, http.StatusOK, catalogResponse{Items: items})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// observeAssist feeds pipeline counters. A zero-score head candidate
// marks a fallback list: positive-scored results always sort first.
func observeAssist(resp assistuc.Response) {
	metrics.AssistRequestsTotal.Inc()
	for s := range resp.Filled {
		metrics.SlotsFilledTotal.WithLabelValues(string(s)).Inc()
	}
	if len(resp.Candidates) > 0 && resp.Candidates[0].Score() == 0 {
		reason := "no_match"
		if len(resp.Filled) == 0 {
			reason = "no_slots"
		}
		metrics.CandidateFallbacksTotal.WithLabelValues(reason).Inc()
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorResponse{Code: code, Message: message})
}
