package chi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/reelkit/slotcue/internal/catalog"
	assistuc "github.com/reelkit/slotcue/internal/usecase/assist"
)

func newTestRouter() http.Handler {
	cat := catalog.Default()
	srv := NewServer(assistuc.New(cat), cat, zap.NewNop())
	r := chi.NewRouter()
	srv.Register(r)
	return r
}

func doJSON(t *testing.T, handler http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestHandleAssist(t *testing.T) {
	rec := doJSON(t, newTestRouter(), http.MethodPost, "/api/v1/assist",
		`{"input": "Recommend a fun action movie"}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp assistResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.FilledSlots["genre"] != "Action" {
		t.Errorf("expected genre Action, got %q", resp.FilledSlots["genre"])
	}
	if resp.FilledSlots["mood"] != "fun" {
		t.Errorf("expected mood fun, got %q", resp.FilledSlots["mood"])
	}
	if len(resp.Candidates) != 3 {
		t.Errorf("expected 3 candidates, got %d", len(resp.Candidates))
	}
	if !strings.Contains(resp.Question, "release era") {
		t.Errorf("expected the release-era question, got %q", resp.Question)
	}
	if resp.Prompt != "" {
		t.Error("prompt should be omitted unless requested")
	}
	for _, c := range resp.Candidates {
		if len(c.Movie.Keywords) != 0 {
			t.Error("candidate keywords should not leave the API")
		}
	}
}

func TestHandleAssist_IncludePrompt(t *testing.T) {
	rec := doJSON(t, newTestRouter(), http.MethodPost, "/api/v1/assist?include_prompt=true",
		`{"input": "something korean"}`)

	var resp assistResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !strings.Contains(resp.Prompt, "USER REQUEST:") {
		t.Error("expected the assembled prompt in the response")
	}
}

func TestHandleAssist_EmptyInput(t *testing.T) {
	rec := doJSON(t, newTestRouter(), http.MethodPost, "/api/v1/assist", `{"input": ""}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 for empty input, got %d", rec.Code)
	}
	var resp assistResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.MissingSlots) != 6 {
		t.Errorf("expected all 6 slots missing, got %d", len(resp.MissingSlots))
	}
	if len(resp.Candidates) != 3 {
		t.Errorf("expected 3 fallback candidates, got %d", len(resp.Candidates))
	}
	if resp.Question == "" {
		t.Error("expected a question for empty input")
	}
}

func TestHandleAssist_MalformedBody(t *testing.T) {
	rec := doJSON(t, newTestRouter(), http.MethodPost, "/api/v1/assist", `{"input": `)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	var resp errorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Code != codeBadRequest {
		t.Errorf("expected code %q, got %q", codeBadRequest, resp.Code)
	}
}

func TestHandleCatalog(t *testing.T) {
	rec := doJSON(t, newTestRouter(), http.MethodGet, "/api/v1/catalog", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp catalogResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Items) != 5 {
		t.Fatalf("expected 5 catalog entries, got %d", len(resp.Items))
	}
	if resp.Items[0].Title != "Inception" {
		t.Errorf("expected Inception first, got %q", resp.Items[0].Title)
	}
	if len(resp.Items[0].Keywords) == 0 {
		t.Error("catalog listing should include keywords")
	}
}

func TestHandleHealth(t *testing.T) {
	rec := doJSON(t, newTestRouter(), http.MethodGet, "/healthz", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"status":"ok"`) {
		t.Errorf("unexpected health body: %s", rec.Body.String())
	}
}
