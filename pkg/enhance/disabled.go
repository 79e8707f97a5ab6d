package enhance

import (
	"context"
	"image"
)

// Disabled is the enhancer used when no sidecar is configured.
// Every operation reports unavailability.
type Disabled struct{}

// NewDisabled creates a disabled enhancer.
func NewDisabled() Enhancer {
	return Disabled{}
}

func (Disabled) Load(context.Context) error   { return ErrUnavailable }
func (Disabled) Unload(context.Context) error { return nil }
func (Disabled) Status() Status               { return Status{} }

func (Disabled) Enhance(context.Context, string, image.Image, Params) (image.Image, error) {
	return nil, ErrUnavailable
}

var _ Enhancer = Disabled{}
