package pipeline

import (
	"bytes"
	"context"
	"encoding/json"
	"image"
	"testing"

	"github.com/framesketch/framesketch/pkg/cache"
	"github.com/framesketch/framesketch/pkg/enhance"
	"github.com/framesketch/framesketch/pkg/errors"
	"github.com/framesketch/framesketch/pkg/wireframe"
)

func TestOptionsValidation(t *testing.T) {
	tests := []struct {
		name     string
		opts     Options
		wantCode errors.Code
	}{
		{"empty prompt", Options{}, errors.ErrCodeInvalidPrompt},
		{"whitespace prompt", Options{Prompt: "   "}, errors.ErrCodeInvalidPrompt},
		{"bad archetype", Options{Prompt: "p", Archetype: "poster"}, errors.ErrCodeInvalidArchetype},
		{"bad fidelity", Options{Prompt: "p", Fidelity: "ultra"}, errors.ErrCodeInvalidStyle},
		{"canvas too small", Options{Prompt: "p", Width: 100}, errors.ErrCodeInvalidCanvas},
		{"canvas too large", Options{Prompt: "p", Height: 5000}, errors.ErrCodeInvalidCanvas},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.ValidateAndSetDefaults()
			if errors.GetCode(err) != tt.wantCode {
				t.Errorf("code = %q, want %q (err %v)", errors.GetCode(err), tt.wantCode, err)
			}
		})
	}

	opts := Options{Prompt: "login form"}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("valid options rejected: %v", err)
	}
	if opts.Fidelity != wireframe.LowFi {
		t.Errorf("default fidelity = %q, want low-fi", opts.Fidelity)
	}
}

func TestOptionsDefaultAnnotationsAndEnhance(t *testing.T) {
	// Unset fields default on, matching an API request that omits them.
	var opts Options
	if err := json.Unmarshal([]byte(`{"prompt":"login form"}`), &opts); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("ValidateAndSetDefaults() error = %v", err)
	}
	if opts.Annotations == nil || !*opts.Annotations {
		t.Error("unset annotations should default to true")
	}
	if opts.Enhance == nil || !*opts.Enhance {
		t.Error("unset enhance should default to true")
	}

	// An explicit false survives validation.
	off := Options{Prompt: "login form", Annotations: boolPtr(false), Enhance: boolPtr(false)}
	if err := off.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("ValidateAndSetDefaults() error = %v", err)
	}
	if *off.Annotations {
		t.Error("explicit annotations=false should be kept")
	}
	if *off.Enhance {
		t.Error("explicit enhance=false should be kept")
	}
}

func TestExecuteFormPrompt(t *testing.T) {
	runner := NewRunner(cache.NewNullCache(), nil, nil)
	defer runner.Close()

	result, err := runner.Execute(context.Background(), Options{
		Prompt: "simple login form with email and password fields",
	})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if result.Classification.Archetype != wireframe.FormPage {
		t.Errorf("archetype = %q, want form", result.Classification.Archetype)
	}
	if result.Canvas.Width != 600 || result.Canvas.Height != 800 {
		t.Errorf("canvas = %dx%d, want 600x800 suggested size", result.Canvas.Width, result.Canvas.Height)
	}
	if len(result.Components) == 0 {
		t.Fatal("no components placed")
	}
	if len(result.PNG) == 0 || len(result.SVG) == 0 {
		t.Error("missing artifacts")
	}
	if result.ID == "" {
		t.Error("result has no ID")
	}
	if result.Meta.GenerationMethod != MethodAlgorithmic {
		t.Errorf("method = %q, want algorithmic", result.Meta.GenerationMethod)
	}
	if result.Meta.ComponentCount != len(result.Components) {
		t.Errorf("ComponentCount = %d, want %d", result.Meta.ComponentCount, len(result.Components))
	}
	if result.Meta.CanvasSize != "600x800" {
		t.Errorf("CanvasSize = %q, want 600x800", result.Meta.CanvasSize)
	}

	// Everything fits the suggested canvas.
	for _, c := range result.Components {
		if !c.Within(result.Canvas) {
			t.Errorf("%q escapes canvas", c.Label)
		}
	}
}

func TestExecuteExplicitOverrides(t *testing.T) {
	runner := NewRunner(cache.NewNullCache(), nil, nil)
	defer runner.Close()

	result, err := runner.Execute(context.Background(), Options{
		Prompt:    "analytics dashboard with charts and sidebar",
		Archetype: wireframe.Blog,
		Width:     900,
		Height:    1100,
		Fidelity:  wireframe.HighFi,
	})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	// The classifier sees a dashboard, but explicit options win.
	if result.Classification.Archetype != wireframe.Dashboard {
		t.Errorf("classified archetype = %q, want dashboard", result.Classification.Archetype)
	}
	if result.Canvas.Width != 900 || result.Canvas.Height != 1100 {
		t.Errorf("canvas = %dx%d, want explicit 900x1100", result.Canvas.Width, result.Canvas.Height)
	}
	if result.Fidelity != wireframe.HighFi {
		t.Errorf("fidelity = %q, want high-fi", result.Fidelity)
	}

	var hasBlogPosts bool
	for _, c := range result.Components {
		if c.Label == "Blog Posts" {
			hasBlogPosts = true
		}
	}
	if !hasBlogPosts {
		t.Error("explicit blog archetype should use the blog strategy")
	}
}

func TestExecuteDeterministic(t *testing.T) {
	runner := NewRunner(cache.NewNullCache(), nil, nil)
	defer runner.Close()

	opts := Options{Prompt: "landing page with hero and features"}
	a, err := runner.Execute(context.Background(), opts)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	b, err := runner.Execute(context.Background(), opts)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if !bytes.Equal(a.PNG, b.PNG) {
		t.Error("repeated runs produced different PNG bytes")
	}
	if !bytes.Equal(a.SVG, b.SVG) {
		t.Error("repeated runs produced different SVG bytes")
	}
	if a.ID == b.ID {
		t.Error("uncached runs should get distinct IDs")
	}
}

func TestExecuteResultCache(t *testing.T) {
	runner := NewRunner(cache.NewMemoryCache(10), nil, nil)
	defer runner.Close()

	opts := Options{Prompt: "blog with posts and sidebar"}
	first, err := runner.Execute(context.Background(), opts)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if first.CacheInfo.ResultHit {
		t.Error("first run should not hit the result cache")
	}

	second, err := runner.Execute(context.Background(), opts)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !second.CacheInfo.ResultHit {
		t.Error("second run should hit the result cache")
	}
	if second.ID != first.ID {
		t.Errorf("cached run ID = %q, want %q", second.ID, first.ID)
	}
	if !bytes.Equal(first.PNG, second.PNG) || !bytes.Equal(first.SVG, second.SVG) {
		t.Error("cached artifacts differ from originals")
	}

	// Refresh bypasses the cache.
	opts.Refresh = true
	third, err := runner.Execute(context.Background(), opts)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if third.CacheInfo.ResultHit {
		t.Error("refresh run should not hit the result cache")
	}
}

// fixedEnhancer returns a constant image, or fails when broken.
type fixedEnhancer struct {
	broken bool
	calls  int
}

func (f *fixedEnhancer) Load(context.Context) error   { return nil }
func (f *fixedEnhancer) Unload(context.Context) error { return nil }
func (f *fixedEnhancer) Status() enhance.Status       { return enhance.Status{Available: true, Loaded: true} }

func (f *fixedEnhancer) Enhance(_ context.Context, _ string, cond image.Image, _ enhance.Params) (image.Image, error) {
	f.calls++
	if f.broken {
		return nil, enhance.ErrUnavailable
	}
	return image.NewRGBA(cond.Bounds()), nil
}

func TestExecuteEnhanceSuccess(t *testing.T) {
	runner := NewRunner(cache.NewNullCache(), nil, nil)
	defer runner.Close()
	fe := &fixedEnhancer{}
	runner.Enhancer = fe

	result, err := runner.Execute(context.Background(), Options{
		Prompt:  "login form",
		Enhance: boolPtr(true),
	})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if fe.calls != 1 {
		t.Errorf("enhancer called %d times, want 1", fe.calls)
	}
	if !result.Meta.AIEnhanced {
		t.Error("Meta.AIEnhanced = false after successful enhancement")
	}
	if result.Meta.GenerationMethod != MethodAI {
		t.Errorf("method = %q, want ai", result.Meta.GenerationMethod)
	}
	if len(result.SVG) == 0 {
		t.Error("SVG should survive enhancement")
	}
}

func TestExecuteEnhanceFailureAbsorbed(t *testing.T) {
	runner := NewRunner(cache.NewNullCache(), nil, nil)
	defer runner.Close()
	runner.Enhancer = &fixedEnhancer{broken: true}

	result, err := runner.Execute(context.Background(), Options{
		Prompt:  "login form",
		Enhance: boolPtr(true),
	})
	if err != nil {
		t.Fatalf("Execute() should absorb enhancement failure, got %v", err)
	}
	if result.Meta.AIEnhanced {
		t.Error("Meta.AIEnhanced = true after failed enhancement")
	}
	if result.Meta.GenerationMethod != MethodAlgorithmic {
		t.Errorf("method = %q, want algorithmic", result.Meta.GenerationMethod)
	}
	if len(result.PNG) == 0 {
		t.Error("algorithmic PNG should stand after failed enhancement")
	}
}
