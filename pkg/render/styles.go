package render

import "github.com/framesketch/framesketch/pkg/wireframe"

// Style holds the palette and stroke settings for one fidelity level.
// Colors are CSS hex strings so the raster and vector renderers share them.
type Style struct {
	LineWidth   float64
	Border      string
	Text        string
	TextLight   string
	Background  string
	BgLight     string
	Accent      string
	AccentLight string
}

// baseStyle is the low-fi look and the starting point for every other level.
func baseStyle() Style {
	return Style{
		LineWidth:   2,
		Border:      "#333333",
		Text:        "#333333",
		TextLight:   "#666666",
		Background:  "#f8f9fa",
		BgLight:     "#f1f3f4",
		Accent:      "#007bff",
		AccentLight: "#e3f2fd",
	}
}

// StyleFor returns the style for a fidelity level. Mid-fi keeps the base
// look; unknown levels fall back to it as well.
func StyleFor(f wireframe.Fidelity) Style {
	s := baseStyle()
	switch f {
	case wireframe.HighFi:
		s.LineWidth = 1
		s.Border = "#dee2e6"
		s.Background = "#ffffff"
		s.BgLight = "#f8f9fa"
	case wireframe.Sketch:
		s.LineWidth = 1
		s.Border = "#666666"
		s.Text = "#444444"
	}
	return s
}
