package layout

import "github.com/framesketch/framesketch/pkg/wireframe"

// generic is the fallback strategy for plain web pages. A separate navigation
// bar appears only when both navigation and a header are requested; without a
// header the navigation request is assumed to be part of whatever renders it.
func (s *Synthesizer) generic(requested []wireframe.ComponentType, canvas wireframe.Canvas) []wireframe.Component {
	m := s.m
	var out []wireframe.Component
	currentY := 0

	if contains(requested, wireframe.TypeHeader) {
		out = append(out, wireframe.Component{
			Type:   wireframe.TypeHeader,
			Label:  "Site Header",
			X:      0,
			Y:      0,
			Width:  canvas.Width,
			Height: m.HeaderHeight,
			Properties: wireframe.Properties{
				"logo":       wireframe.Bool(true),
				"navigation": wireframe.Bool(true),
			},
		})
		currentY += m.HeaderHeight
	}

	if contains(requested, wireframe.TypeNavigation) && contains(requested, wireframe.TypeHeader) {
		out = append(out, wireframe.Component{
			Type:   wireframe.TypeNavigation,
			Label:  "Main Navigation",
			X:      0,
			Y:      currentY,
			Width:  canvas.Width,
			Height: m.NavHeight,
			Properties: wireframe.Properties{
				"menu_items": wireframe.StringList("Home", "About", "Services", "Contact"),
			},
		})
		currentY += m.NavHeight + m.Spacing
	}

	if contains(requested, wireframe.TypeContent) {
		out = append(out, wireframe.Component{
			Type:   wireframe.TypeContent,
			Label:  "Main Content",
			X:      m.Margin,
			Y:      currentY,
			Width:  canvas.Width - 2*m.Margin,
			Height: canvas.Height - currentY - m.FooterReserve,
			Properties: wireframe.Properties{
				"scrollable": wireframe.Bool(true),
			},
		})
	}

	if contains(requested, wireframe.TypeFooter) {
		out = append(out, wireframe.Component{
			Type:   wireframe.TypeFooter,
			Label:  "Site Footer",
			X:      0,
			Y:      canvas.Height - m.FooterHeight,
			Width:  canvas.Width,
			Height: m.FooterHeight,
			Properties: wireframe.Properties{
				"copyright": wireframe.Bool(true),
				"links":     wireframe.Bool(true),
			},
		})
	}

	return out
}
