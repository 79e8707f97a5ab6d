package render

import (
	"bytes"
	"image"
	"image/png"

	"github.com/framesketch/framesketch/pkg/errors"
	"github.com/framesketch/framesketch/pkg/wireframe"
)

// Artifacts bundles the outputs of one render pass. Image is the decoded
// raster so callers can post-process without re-decoding PNG.
type Artifacts struct {
	Image image.Image
	PNG   []byte
	SVG   []byte
}

// Option configures a render pass.
type Option func(*renderer)

// WithAnnotations draws each component's label above its box.
func WithAnnotations() Option {
	return func(r *renderer) { r.annotations = true }
}

type renderer struct {
	annotations bool
}

// Render draws the components at the given fidelity and returns the raster
// image, its PNG encoding, and the matching SVG document.
func Render(components []wireframe.Component, canvas wireframe.Canvas, fidelity wireframe.Fidelity, opts ...Option) (*Artifacts, error) {
	if canvas.Width <= 0 || canvas.Height <= 0 {
		return nil, errors.New(errors.ErrCodeInvalidCanvas, "canvas %dx%d is not drawable", canvas.Width, canvas.Height)
	}

	var r renderer
	for _, opt := range opts {
		opt(&r)
	}

	style := StyleFor(fidelity)
	img := renderRaster(components, canvas, style, r.annotations)

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encoding png")
	}

	return &Artifacts{
		Image: img,
		PNG:   buf.Bytes(),
		SVG:   renderSVG(components, canvas, style),
	}, nil
}
