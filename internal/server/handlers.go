package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/framesketch/framesketch/pkg/buildinfo"
	"github.com/framesketch/framesketch/pkg/errors"
	"github.com/framesketch/framesketch/pkg/pipeline"
	"github.com/framesketch/framesketch/pkg/store"
	"github.com/framesketch/framesketch/pkg/wireframe"
)

// generateResponse is the wire shape of a completed generation.
type generateResponse struct {
	ID             string                   `json:"id"`
	Classification wireframe.Classification `json:"classification"`
	Canvas         wireframe.Canvas         `json:"canvas"`
	Fidelity       wireframe.Fidelity       `json:"fidelity"`
	Components     []wireframe.Component    `json:"components"`
	PNG            string                   `json:"png"`
	SVG            string                   `json:"svg"`
	Meta           pipeline.Meta            `json:"meta"`
	CacheInfo      pipeline.CacheInfo       `json:"cache_info"`
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": buildinfo.Version,
	})
}

func (s *Server) handleStyles(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"styles": wireframe.Fidelities})
}

func (s *Server) handleArchetypes(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"archetypes": wireframe.Archetypes})
}

func (s *Server) handleTemplates(w http.ResponseWriter, r *http.Request) {
	templates, err := s.store.Templates(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"templates": templates})
}

func (s *Server) handleTemplate(w http.ResponseWriter, r *http.Request) {
	tpl, err := s.store.Template(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, tpl)
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	stats, err := s.store.Stats(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var opts pipeline.Options
	if err := json.NewDecoder(r.Body).Decode(&opts); err != nil {
		s.writeError(w, errors.New(errors.ErrCodeInvalidPrompt, "invalid request body: %v", err))
		return
	}

	result, err := s.runner.Execute(r.Context(), opts)
	if err != nil {
		s.writeError(w, err)
		return
	}

	if err := s.store.SaveRecord(r.Context(), store.Record{
		ID:             result.ID,
		Prompt:         opts.Prompt,
		Archetype:      result.Classification.Archetype,
		Fidelity:       result.Fidelity,
		ComponentCount: result.Meta.ComponentCount,
		Enhanced:       result.Meta.AIEnhanced,
		DurationMS:     result.Meta.GenerationTimeMS,
		CreatedAt:      time.Now().UTC(),
	}); err != nil {
		s.logger.Warn("saving generation record failed", "err", err)
	}

	writeJSON(w, http.StatusOK, generateResponse{
		ID:             result.ID,
		Classification: result.Classification,
		Canvas:         result.Canvas,
		Fidelity:       result.Fidelity,
		Components:     result.Components,
		PNG:            encodePNG(result.PNG),
		SVG:            string(result.SVG),
		Meta:           result.Meta,
		CacheInfo:      result.CacheInfo,
	})
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var opts pipeline.Options
	if err := json.NewDecoder(r.Body).Decode(&opts); err != nil {
		s.writeError(w, errors.New(errors.ErrCodeInvalidPrompt, "invalid request body: %v", err))
		return
	}

	cls, err := s.runner.Classify(r.Context(), opts)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, cls)
}

func (s *Server) handleEnhancerStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.enhancer().Status())
}

func (s *Server) handleEnhancerLoad(w http.ResponseWriter, r *http.Request) {
	if err := s.enhancer().Load(r.Context()); err != nil {
		s.writeError(w, errors.Wrap(errors.ErrCodeEnhanceUnavailable, err, "loading models"))
		return
	}
	writeJSON(w, http.StatusOK, s.enhancer().Status())
}

func (s *Server) handleEnhancerUnload(w http.ResponseWriter, r *http.Request) {
	if err := s.enhancer().Unload(r.Context()); err != nil {
		s.writeError(w, errors.Wrap(errors.ErrCodeEnhanceUnavailable, err, "unloading models"))
		return
	}
	writeJSON(w, http.StatusOK, s.enhancer().Status())
}

// writeError maps coded errors onto HTTP statuses.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.IsValidation(err):
		status = http.StatusBadRequest
	case errors.Is(err, errors.ErrCodeNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errors.ErrCodeEnhanceUnavailable):
		status = http.StatusServiceUnavailable
	}
	if status == http.StatusInternalServerError {
		s.logger.Error("request failed", "err", err)
	}
	writeJSON(w, status, errorResponse{
		Code:    string(errors.GetCode(err)),
		Message: errors.UserMessage(err),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
