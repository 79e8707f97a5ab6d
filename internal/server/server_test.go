package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/framesketch/framesketch/pkg/cache"
	"github.com/framesketch/framesketch/pkg/pipeline"
)

func testServer(t *testing.T) *Server {
	t.Helper()
	logger := log.NewWithOptions(io.Discard, log.Options{})
	runner := pipeline.NewRunner(cache.NewMemoryCache(10), nil, logger)
	return New(runner, logger)
}

func doJSON(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, path, reader)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(rec.Body.Bytes(), &v); err != nil {
		t.Fatalf("decoding response %q: %v", rec.Body.String(), err)
	}
	return v
}

func TestHealth(t *testing.T) {
	h := testServer(t).Handler()
	rec := doJSON(t, h, http.MethodGet, "/health", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	resp := decode[map[string]string](t, rec)
	if resp["status"] != "ok" {
		t.Errorf("status field = %q", resp["status"])
	}
}

func TestVocabularyEndpoints(t *testing.T) {
	h := testServer(t).Handler()

	styles := decode[map[string][]string](t, doJSON(t, h, http.MethodGet, "/styles", nil))
	if len(styles["styles"]) != 4 {
		t.Errorf("styles = %v, want 4 entries", styles["styles"])
	}

	archetypes := decode[map[string][]string](t, doJSON(t, h, http.MethodGet, "/archetypes", nil))
	if len(archetypes["archetypes"]) != 8 {
		t.Errorf("archetypes = %v, want 8 entries", archetypes["archetypes"])
	}
}

func TestTemplates(t *testing.T) {
	h := testServer(t).Handler()

	rec := doJSON(t, h, http.MethodGet, "/templates", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var resp struct {
		Templates []struct {
			ID     string `json:"id"`
			Prompt string `json:"prompt"`
		} `json:"templates"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Templates) != 4 {
		t.Fatalf("got %d templates, want 4", len(resp.Templates))
	}

	one := doJSON(t, h, http.MethodGet, "/templates/"+resp.Templates[0].ID, nil)
	if one.Code != http.StatusOK {
		t.Errorf("template fetch status = %d", one.Code)
	}

	missing := doJSON(t, h, http.MethodGet, "/templates/nope", nil)
	if missing.Code != http.StatusNotFound {
		t.Errorf("missing template status = %d, want 404", missing.Code)
	}
	errResp := decode[errorResponse](t, missing)
	if errResp.Code != "NOT_FOUND" {
		t.Errorf("error code = %q", errResp.Code)
	}
}

func TestGenerate(t *testing.T) {
	srv := testServer(t)
	h := srv.Handler()

	rec := doJSON(t, h, http.MethodPost, "/generate", map[string]any{
		"prompt": "simple login form with email and password",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	resp := decode[generateResponse](t, rec)
	if resp.ID == "" {
		t.Error("response has no id")
	}
	if resp.Classification.Archetype != "form" {
		t.Errorf("archetype = %q, want form", resp.Classification.Archetype)
	}
	if resp.PNG == "" || !strings.HasPrefix(resp.SVG, "<svg") {
		t.Error("missing artifacts in response")
	}
	if resp.Meta.ComponentCount != len(resp.Components) {
		t.Errorf("component count mismatch: %d vs %d", resp.Meta.ComponentCount, len(resp.Components))
	}

	// The generation shows up in stats.
	stats := doJSON(t, h, http.MethodGet, "/stats", nil)
	var statsResp struct {
		TotalGenerations int `json:"total_generations"`
	}
	if err := json.Unmarshal(stats.Body.Bytes(), &statsResp); err != nil {
		t.Fatalf("decode stats: %v", err)
	}
	if statsResp.TotalGenerations != 1 {
		t.Errorf("total_generations = %d, want 1", statsResp.TotalGenerations)
	}
}

func TestGenerateValidation(t *testing.T) {
	h := testServer(t).Handler()

	tests := []struct {
		name string
		body map[string]any
	}{
		{"empty prompt", map[string]any{"prompt": ""}},
		{"long prompt", map[string]any{"prompt": strings.Repeat("a", 1001)}},
		{"bad archetype", map[string]any{"prompt": "p", "archetype": "poster"}},
		{"tiny canvas", map[string]any{"prompt": "p", "width": 10}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doJSON(t, h, http.MethodPost, "/generate", tt.body)
			if rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400: %s", rec.Code, rec.Body.String())
			}
		})
	}
}

func TestAnalyze(t *testing.T) {
	h := testServer(t).Handler()

	rec := doJSON(t, h, http.MethodPost, "/analyze", map[string]any{
		"prompt": "analytics dashboard with charts",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	var cls struct {
		Archetype  string   `json:"archetype"`
		Components []string `json:"components"`
		Confidence float64  `json:"confidence"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &cls); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if cls.Archetype != "dashboard" {
		t.Errorf("archetype = %q, want dashboard", cls.Archetype)
	}
	if len(cls.Components) == 0 {
		t.Error("no components detected")
	}
	if cls.Confidence <= 0 || cls.Confidence > 1 {
		t.Errorf("confidence = %g, want (0, 1]", cls.Confidence)
	}
}

func TestEnhancerEndpoints(t *testing.T) {
	h := testServer(t).Handler()

	status := doJSON(t, h, http.MethodGet, "/enhancer/status", nil)
	if status.Code != http.StatusOK {
		t.Fatalf("status endpoint = %d", status.Code)
	}
	var st struct {
		Available bool `json:"available"`
	}
	if err := json.Unmarshal(status.Body.Bytes(), &st); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if st.Available {
		t.Error("disabled enhancer should report unavailable")
	}

	// Loading a disabled enhancer is a 503, not a crash.
	load := doJSON(t, h, http.MethodPost, "/enhancer/load", nil)
	if load.Code != http.StatusServiceUnavailable {
		t.Errorf("load status = %d, want 503", load.Code)
	}
}
