package pipeline

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"image/png"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/framesketch/framesketch/pkg/cache"
	"github.com/framesketch/framesketch/pkg/classify"
	"github.com/framesketch/framesketch/pkg/enhance"
	"github.com/framesketch/framesketch/pkg/layout"
	"github.com/framesketch/framesketch/pkg/observability"
	"github.com/framesketch/framesketch/pkg/render"
	"github.com/framesketch/framesketch/pkg/wireframe"
)

// Runner encapsulates pipeline execution with caching.
// Both CLI and API can use this to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache, enhancer, and logger - it
// doesn't store pipeline results. Multiple goroutines can safely use the
// same Runner with different options.
type Runner struct {
	Cache    cache.Cache
	Keyer    cache.Keyer
	Logger   *log.Logger
	Enhancer enhance.Enhancer

	synth *layout.Synthesizer
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
// The enhancer defaults to disabled; set the Enhancer field to change that.
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:    c,
		Keyer:    keyer,
		Logger:   logger,
		Enhancer: enhance.NewDisabled(),
		synth:    layout.New(),
	}
}

// Execute runs the complete classify → synthesize → render pipeline with
// caching, plus the optional enhancement pass.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	started := time.Now()

	resultKey := r.Keyer.ResultKey(opts.Prompt, opts.ResultKeyOpts())
	if !opts.Refresh {
		if cached := r.cachedResult(ctx, resultKey); cached != nil {
			opts.Logger.Debug("result cache hit", "id", cached.ID)
			return cached, nil
		}
		observability.Cache().OnCacheMiss(ctx, "result")
	}

	result := &Result{ID: uuid.NewString(), Fidelity: opts.Fidelity}

	// Stage 1: Classify
	classifyStart := time.Now()
	cls, classifyHit, err := r.ClassifyWithCacheInfo(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("classify: %w", err)
	}
	result.Classification = cls
	result.Stats.ClassifyTime = time.Since(classifyStart)
	result.CacheInfo.ClassifyHit = classifyHit

	archetype := opts.resolveArchetype(cls.Archetype)
	result.Canvas = opts.resolveCanvas(cls)

	opts.Logger.Info("classified prompt",
		"archetype", archetype,
		"components", len(cls.Components),
		"confidence", cls.Confidence,
		"duration", result.Stats.ClassifyTime)

	// Stage 2: Synthesize
	synthStart := time.Now()
	observability.Pipeline().OnSynthesizeStart(ctx, string(archetype), len(cls.Components))
	components, err := r.synth.Synthesize(archetype, result.Canvas, cls.Components)
	result.Stats.SynthesizeTime = time.Since(synthStart)
	observability.Pipeline().OnSynthesizeComplete(ctx, string(archetype), len(components), result.Stats.SynthesizeTime, err)
	if err != nil {
		return nil, fmt.Errorf("synthesize: %w", err)
	}
	result.Components = components

	opts.Logger.Info("synthesized layout",
		"placed", len(components),
		"duration", result.Stats.SynthesizeTime)

	// Stage 3: Render
	renderStart := time.Now()
	observability.Pipeline().OnRenderStart(ctx, string(opts.Fidelity), result.Canvas.Width, result.Canvas.Height)
	var renderOpts []render.Option
	if opts.annotationsEnabled() {
		renderOpts = append(renderOpts, render.WithAnnotations())
	}
	artifacts, err := render.Render(components, result.Canvas, opts.Fidelity, renderOpts...)
	result.Stats.RenderTime = time.Since(renderStart)
	observability.Pipeline().OnRenderComplete(ctx, string(opts.Fidelity), result.Stats.RenderTime, err)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.PNG = artifacts.PNG
	result.SVG = artifacts.SVG

	opts.Logger.Info("rendered artifacts",
		"png_bytes", len(result.PNG),
		"svg_bytes", len(result.SVG),
		"duration", result.Stats.RenderTime)

	// Stage 4: Enhance (best effort). Skipped without noise when no
	// enhancer is configured.
	result.Meta.GenerationMethod = MethodAlgorithmic
	if opts.enhanceEnabled() && r.Enhancer.Status().Available {
		r.runEnhance(ctx, &opts, artifacts, result)
	}

	result.Meta.ComponentCount = len(components)
	result.Meta.CanvasSize = fmt.Sprintf("%dx%d", result.Canvas.Width, result.Canvas.Height)
	result.Meta.GenerationTimeMS = time.Since(started).Milliseconds()

	r.storeResult(ctx, resultKey, result)
	return result, nil
}

// ClassifyWithCacheInfo analyzes the prompt with caching and returns cache
// hit info.
func (r *Runner) ClassifyWithCacheInfo(ctx context.Context, opts Options) (wireframe.Classification, bool, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return wireframe.Classification{}, false, err
	}

	cacheKey := r.Keyer.ClassificationKey(opts.Prompt)
	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			var cls wireframe.Classification
			if err := json.Unmarshal(data, &cls); err == nil {
				observability.Cache().OnCacheHit(ctx, "classification")
				return cls, true, nil
			}
		}
		observability.Cache().OnCacheMiss(ctx, "classification")
	}

	observability.Pipeline().OnClassifyStart(ctx, opts.Prompt)
	start := time.Now()
	cls := classify.Classify(opts.Prompt)
	observability.Pipeline().OnClassifyComplete(ctx, string(cls.Archetype), time.Since(start), nil)

	if data, err := json.Marshal(cls); err == nil {
		if err := r.Cache.Set(ctx, cacheKey, data, cache.TTLClassification); err == nil {
			observability.Cache().OnCacheSet(ctx, "classification", len(data))
		}
	}
	return cls, false, nil
}

// Classify is a convenience wrapper that discards the cache hit info.
func (r *Runner) Classify(ctx context.Context, opts Options) (wireframe.Classification, error) {
	cls, _, err := r.ClassifyWithCacheInfo(ctx, opts)
	return cls, err
}

// Synthesize places the classified components on the resolved canvas.
func (r *Runner) Synthesize(ctx context.Context, cls wireframe.Classification, opts Options) ([]wireframe.Component, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	return r.synth.Synthesize(opts.resolveArchetype(cls.Archetype), opts.resolveCanvas(cls), cls.Components)
}

// runEnhance attempts the diffusion pass and absorbs every failure: the
// algorithmic rendering already in result stands when enhancement cannot
// deliver.
func (r *Runner) runEnhance(ctx context.Context, opts *Options, artifacts *render.Artifacts, result *Result) {
	params := enhance.Params{Steps: opts.Steps, GuidanceScale: opts.GuidanceScale}.Clamped()

	observability.Enhance().OnEnhanceStart(ctx, params.Steps)
	start := time.Now()
	enhanced, err := r.Enhancer.Enhance(ctx, opts.Prompt, artifacts.Image, params)
	result.Stats.EnhanceTime = time.Since(start)
	observability.Enhance().OnEnhanceComplete(ctx, result.Stats.EnhanceTime, err)

	if err != nil {
		opts.Logger.Warn("enhancement failed, keeping algorithmic rendering", "err", err)
		return
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, enhanced); err != nil {
		opts.Logger.Warn("encoding enhanced image failed, keeping algorithmic rendering", "err", err)
		return
	}

	result.PNG = buf.Bytes()
	result.Meta.AIEnhanced = true
	result.Meta.GenerationMethod = MethodAI
	opts.Logger.Info("enhanced rendering", "duration", result.Stats.EnhanceTime)
}

// cachedResult fetches and decodes a complete cached result, or nil.
func (r *Runner) cachedResult(ctx context.Context, key string) *Result {
	data, hit, err := r.Cache.Get(ctx, key)
	if err != nil || !hit {
		return nil
	}
	var result Result
	if err := json.Unmarshal(data, &result); err != nil {
		return nil
	}
	observability.Cache().OnCacheHit(ctx, "result")
	result.CacheInfo.ResultHit = true
	return &result
}

// storeResult caches the complete result, tolerating failures.
func (r *Runner) storeResult(ctx context.Context, key string, result *Result) {
	data, err := json.Marshal(result)
	if err != nil {
		return
	}
	if err := r.Cache.Set(ctx, key, data, cache.TTLResult); err == nil {
		observability.Cache().OnCacheSet(ctx, "result", len(data))
	}
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
