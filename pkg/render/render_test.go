package render

import (
	"bytes"
	"fmt"
	"image/png"
	"strings"
	"testing"

	"github.com/framesketch/framesketch/pkg/errors"
	"github.com/framesketch/framesketch/pkg/layout"
	"github.com/framesketch/framesketch/pkg/wireframe"
)

func sampleComponents(t *testing.T) ([]wireframe.Component, wireframe.Canvas) {
	t.Helper()
	canvas := wireframe.Canvas{Width: 1200, Height: 800}
	components, err := layout.Synthesize(wireframe.WebDesktop, canvas, []wireframe.ComponentType{
		wireframe.TypeHeader, wireframe.TypeNavigation, wireframe.TypeContent, wireframe.TypeFooter,
	})
	if err != nil {
		t.Fatalf("Synthesize() error = %v", err)
	}
	return components, canvas
}

func TestRenderProducesBothFormats(t *testing.T) {
	components, canvas := sampleComponents(t)

	artifacts, err := Render(components, canvas, wireframe.LowFi)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	img, err := png.Decode(bytes.NewReader(artifacts.PNG))
	if err != nil {
		t.Fatalf("png.Decode() error = %v", err)
	}
	bounds := img.Bounds()
	if bounds.Dx() != canvas.Width || bounds.Dy() != canvas.Height {
		t.Errorf("png is %dx%d, want %dx%d", bounds.Dx(), bounds.Dy(), canvas.Width, canvas.Height)
	}

	svg := string(artifacts.SVG)
	if !strings.HasPrefix(svg, "<svg xmlns=") {
		t.Errorf("svg does not start with root element: %.60q", svg)
	}
	if !strings.Contains(svg, fmt.Sprintf(`viewBox="0 0 %d %d"`, canvas.Width, canvas.Height)) {
		t.Error("svg viewBox does not match canvas")
	}
}

func TestRenderSVGGeometryMatchesComponents(t *testing.T) {
	components, canvas := sampleComponents(t)
	svg := string(renderSVG(components, canvas, StyleFor(wireframe.LowFi)))

	for i, c := range components {
		group := fmt.Sprintf(`<g id="%s-%d">`, c.Type, i)
		if !strings.Contains(svg, group) {
			t.Errorf("svg missing group %q", group)
		}
		rect := fmt.Sprintf(`<rect class="wireframe-border" x="%d" y="%d" width="%d" height="%d"/>`,
			c.X, c.Y, c.Width, c.Height)
		if !strings.Contains(svg, rect) {
			t.Errorf("svg missing border rect for %q", c.Label)
		}
		if c.Label != "" && !strings.Contains(svg, ">"+c.Label+"<") {
			t.Errorf("svg missing label text %q", c.Label)
		}
	}
}

func TestRenderSVGEscapesLabels(t *testing.T) {
	components := []wireframe.Component{{
		Type: wireframe.TypeContent, Label: `Q&A <notes>`, X: 0, Y: 0, Width: 100, Height: 100,
	}}
	svg := string(renderSVG(components, wireframe.Canvas{Width: 200, Height: 200}, StyleFor(wireframe.LowFi)))
	if !strings.Contains(svg, "Q&amp;A &lt;notes&gt;") {
		t.Errorf("label not escaped:\n%s", svg)
	}
}

func TestRenderRejectsEmptyCanvas(t *testing.T) {
	_, err := Render(nil, wireframe.Canvas{}, wireframe.LowFi)
	if !errors.Is(err, errors.ErrCodeInvalidCanvas) {
		t.Errorf("error code = %q, want %q", errors.GetCode(err), errors.ErrCodeInvalidCanvas)
	}
}

func TestRenderDeterministic(t *testing.T) {
	components, canvas := sampleComponents(t)

	a, err := Render(components, canvas, wireframe.MidFi, WithAnnotations())
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	b, err := Render(components, canvas, wireframe.MidFi, WithAnnotations())
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if !bytes.Equal(a.PNG, b.PNG) {
		t.Error("repeated renders produced different PNG bytes")
	}
	if !bytes.Equal(a.SVG, b.SVG) {
		t.Error("repeated renders produced different SVG bytes")
	}
}

func TestStyleFor(t *testing.T) {
	tests := []struct {
		fidelity   wireframe.Fidelity
		wantBorder string
		wantWidth  float64
	}{
		{wireframe.LowFi, "#333333", 2},
		{wireframe.MidFi, "#333333", 2},
		{wireframe.HighFi, "#dee2e6", 1},
		{wireframe.Sketch, "#666666", 1},
	}
	for _, tt := range tests {
		t.Run(string(tt.fidelity), func(t *testing.T) {
			s := StyleFor(tt.fidelity)
			if s.Border != tt.wantBorder || s.LineWidth != tt.wantWidth {
				t.Errorf("StyleFor(%s) = border %s width %g, want %s %g",
					tt.fidelity, s.Border, s.LineWidth, tt.wantBorder, tt.wantWidth)
			}
		})
	}
	if StyleFor(wireframe.HighFi).Background != "#ffffff" {
		t.Error("high-fi background should be white")
	}
}

func TestEveryComponentTypeDraws(t *testing.T) {
	canvas := wireframe.Canvas{Width: 400, Height: 400}
	for _, typ := range wireframe.ComponentTypes {
		t.Run(string(typ), func(t *testing.T) {
			components := []wireframe.Component{{
				Type: typ, Label: "Sample", X: 20, Y: 20, Width: 200, Height: 120,
			}}
			if _, err := Render(components, canvas, wireframe.LowFi, WithAnnotations()); err != nil {
				t.Errorf("Render(%s) error = %v", typ, err)
			}
		})
	}
}
