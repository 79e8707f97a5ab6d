// Package pipeline provides the core generation pipeline for Framesketch.
//
// This package implements the complete classify → synthesize → render
// pipeline that can be used by CLI and API components. By centralizing this
// logic, we ensure consistent behavior across all entry points and avoid
// code duplication.
//
// # Architecture
//
// The pipeline consists of three stages plus an optional fourth:
//
//  1. Classify: Extract layout intent from the prompt text
//  2. Synthesize: Compute positioned components for the chosen archetype
//  3. Render: Generate PNG and SVG artifacts
//  4. Enhance: Optionally refine the raster through a diffusion sidecar
//
// Enhancement is best-effort: failures are absorbed and the algorithmic
// rendering is returned instead.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{
//	    Prompt: "analytics dashboard with sidebar and four charts",
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	png, svg := result.PNG, result.SVG
//
// Run individual stages:
//
//	cls, err := runner.Classify(ctx, opts)
//	components, err := runner.Synthesize(ctx, cls, opts)
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/framesketch/framesketch/pkg/cache"
	"github.com/framesketch/framesketch/pkg/errors"
	"github.com/framesketch/framesketch/pkg/wireframe"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and API
// =============================================================================

const (
	// DefaultArchetype is assumed when neither the request nor the
	// classifier picks something more specific.
	DefaultArchetype = wireframe.WebDesktop

	// DefaultFidelity is the default visual fidelity.
	DefaultFidelity = wireframe.LowFi
)

// GenerationMethod values recorded in result metadata.
const (
	MethodAlgorithmic = "algorithmic"
	MethodAI          = "ai"
)

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the generation pipeline.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Classify options
	Prompt string `json:"prompt"`

	// Synthesize options. Archetype and the canvas dimensions override the
	// classifier only when set to non-default values.
	Archetype wireframe.Archetype `json:"archetype,omitempty"`
	Width     int                 `json:"width,omitempty"`
	Height    int                 `json:"height,omitempty"`

	// Render options. Annotations defaults to true; leave the field nil to
	// get labeled output, set it to false explicitly for a clean raster.
	Fidelity    wireframe.Fidelity `json:"fidelity,omitempty"`
	Annotations *bool              `json:"annotations,omitempty"`

	// Enhance options. Enhance defaults to true; enhancement is best effort
	// and a missing or failing enhancer never fails the run.
	Enhance       *bool   `json:"enhance,omitempty"`
	Steps         int     `json:"steps,omitempty"`
	GuidanceScale float64 `json:"guidance_scale,omitempty"`

	// Refresh bypasses cached results.
	Refresh bool `json:"refresh,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// ID uniquely identifies this generation.
	ID string `json:"id"`

	// Classification is the intent extracted from the prompt.
	Classification wireframe.Classification `json:"classification"`

	// Canvas is the resolved drawing surface.
	Canvas wireframe.Canvas `json:"canvas"`

	// Fidelity is the resolved visual fidelity.
	Fidelity wireframe.Fidelity `json:"fidelity"`

	// Components are the positioned components in placement order.
	Components []wireframe.Component `json:"components"`

	// Artifacts.
	PNG []byte `json:"png"`
	SVG []byte `json:"svg"`

	// Meta describes how the result was produced.
	Meta Meta `json:"meta"`

	// Stats contains timing information.
	Stats Stats `json:"stats"`

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo `json:"cache_info"`
}

// Meta mirrors the result metadata exposed by the API.
type Meta struct {
	ComponentCount   int    `json:"component_count"`
	CanvasSize       string `json:"canvas_size"`
	GenerationTimeMS int64  `json:"generation_time_ms"`
	AIEnhanced       bool   `json:"ai_enhanced"`
	GenerationMethod string `json:"generation_method"`
}

// Stats contains pipeline execution statistics.
type Stats struct {
	ClassifyTime   time.Duration `json:"classify_time"`
	SynthesizeTime time.Duration `json:"synthesize_time"`
	RenderTime     time.Duration `json:"render_time"`
	EnhanceTime    time.Duration `json:"enhance_time"`
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	ClassifyHit bool `json:"classify_hit"` // Whether classification came from cache
	ResultHit   bool `json:"result_hit"`   // Whether the complete result came from cache
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks required fields and applies defaults.
// This method is idempotent - calling it multiple times has the same effect
// as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}

	if err := errors.ValidatePrompt(o.Prompt); err != nil {
		return err
	}
	if o.Archetype != "" && !o.Archetype.Valid() {
		return errors.New(errors.ErrCodeInvalidArchetype, "unknown archetype: %q", string(o.Archetype))
	}
	if o.Fidelity == "" {
		o.Fidelity = DefaultFidelity
	}
	if !o.Fidelity.Valid() {
		return errors.New(errors.ErrCodeInvalidStyle, "unknown fidelity: %q", string(o.Fidelity))
	}

	if o.Width != 0 {
		if err := errors.ValidateCanvasDim("width", o.Width, wireframe.MinCanvasDim, wireframe.MaxCanvasDim); err != nil {
			return err
		}
	}
	if o.Height != 0 {
		if err := errors.ValidateCanvasDim("height", o.Height, wireframe.MinCanvasDim, wireframe.MaxCanvasDim); err != nil {
			return err
		}
	}

	if o.Annotations == nil {
		o.Annotations = boolPtr(true)
	}
	if o.Enhance == nil {
		o.Enhance = boolPtr(true)
	}

	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}

	o.validated = true
	return nil
}

func boolPtr(b bool) *bool { return &b }

// annotationsEnabled treats an unset field as true.
func (o *Options) annotationsEnabled() bool {
	return o.Annotations == nil || *o.Annotations
}

// enhanceEnabled treats an unset field as true.
func (o *Options) enhanceEnabled() bool {
	return o.Enhance == nil || *o.Enhance
}

// resolveArchetype merges the requested archetype with the classified one.
// An unset or default request defers to the classifier.
func (o *Options) resolveArchetype(classified wireframe.Archetype) wireframe.Archetype {
	if o.Archetype == "" || o.Archetype == DefaultArchetype {
		return classified
	}
	return o.Archetype
}

// resolveCanvas merges the requested canvas with the classifier's suggested
// size. Unset or default dimensions defer to the suggestion.
func (o *Options) resolveCanvas(cls wireframe.Classification) wireframe.Canvas {
	c := wireframe.Canvas{Width: o.Width, Height: o.Height}
	if c.Width == 0 {
		c.Width = wireframe.DefaultWidth
	}
	if c.Height == 0 {
		c.Height = wireframe.DefaultHeight
	}
	if c.IsDefault() && cls.SuggestedWidth > 0 && cls.SuggestedHeight > 0 {
		c.Width = cls.SuggestedWidth
		c.Height = cls.SuggestedHeight
	}
	return c
}

// ResultKeyOpts returns cache key options for the complete result.
func (o *Options) ResultKeyOpts() cache.ResultKeyOpts {
	return cache.ResultKeyOpts{
		Archetype:   string(o.Archetype),
		Fidelity:    string(o.Fidelity),
		Width:       o.Width,
		Height:      o.Height,
		Annotations: o.annotationsEnabled(),
		Enhanced:    o.enhanceEnabled(),
	}
}
