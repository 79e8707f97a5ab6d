// Package enhance turns algorithmic wireframes into polished renderings via
// an optional diffusion sidecar.
//
// Enhancement is strictly best-effort: the pipeline treats every failure
// here as a signal to keep the algorithmic raster, never as a request
// failure. [ErrUnavailable] marks the conditions the pipeline absorbs
// silently (models not loaded, enhancer disabled, sidecar unreachable).
package enhance

import (
	"context"
	"errors"
	"image"
)

// ErrUnavailable indicates the enhancer cannot serve requests right now.
// Callers fall back to the algorithmic rendering.
var ErrUnavailable = errors.New("enhancer unavailable")

// Parameter bounds and defaults for the diffusion pass.
const (
	DefaultSteps    = 20
	MinSteps        = 1
	MaxSteps        = 50
	DefaultGuidance = 7.5
	MinGuidance     = 1.0
	MaxGuidance     = 20.0
)

// Params tune one enhancement pass.
type Params struct {
	Steps         int
	GuidanceScale float64
}

// Clamped returns a copy with both values forced into their valid ranges,
// substituting defaults for zero values.
func (p Params) Clamped() Params {
	if p.Steps == 0 {
		p.Steps = DefaultSteps
	}
	p.Steps = min(max(p.Steps, MinSteps), MaxSteps)

	if p.GuidanceScale == 0 {
		p.GuidanceScale = DefaultGuidance
	}
	p.GuidanceScale = min(max(p.GuidanceScale, MinGuidance), MaxGuidance)
	return p
}

// Status reports the enhancer's model lifecycle state.
type Status struct {
	Available bool   `json:"available"`
	Loaded    bool   `json:"loaded"`
	Loading   bool   `json:"loading"`
	Device    string `json:"device,omitempty"`
}

// Enhancer produces a high-fidelity rendering conditioned on the algorithmic
// wireframe. Implementations must be safe for concurrent use.
type Enhancer interface {
	// Load prepares the models. Safe to call repeatedly.
	Load(ctx context.Context) error

	// Unload releases model resources.
	Unload(ctx context.Context) error

	// Status reports lifecycle state without side effects.
	Status() Status

	// Enhance renders the prompt conditioned on the wireframe image.
	// Returns ErrUnavailable when models are not loaded.
	Enhance(ctx context.Context, prompt string, condition image.Image, params Params) (image.Image, error)
}
