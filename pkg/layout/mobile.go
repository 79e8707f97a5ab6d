package layout

import "github.com/framesketch/framesketch/pkg/wireframe"

// mobileApp stacks a status bar, navigation header, scrollable content, and
// an optional bottom tab bar. The bottom bar appears only when navigation is
// requested more than once: a single "navigation" mention is consumed by the
// top header.
func (s *Synthesizer) mobileApp(requested []wireframe.ComponentType, canvas wireframe.Canvas) []wireframe.Component {
	m := s.m
	var out []wireframe.Component
	currentY := 0

	if contains(requested, wireframe.TypeHeader) {
		out = append(out, wireframe.Component{
			Type:   wireframe.TypeHeader,
			Label:  "Status Bar",
			X:      0,
			Y:      0,
			Width:  canvas.Width,
			Height: m.StatusBarHeight,
			Properties: wireframe.Properties{
				"background": wireframe.String("#f8f9fa"),
				"text":       wireframe.String("9:41 AM"),
			},
		})
		out = append(out, wireframe.Component{
			Type:   wireframe.TypeNavigation,
			Label:  "Navigation Header",
			X:      0,
			Y:      m.StatusBarHeight,
			Width:  canvas.Width,
			Height: m.MobileNavHeight,
			Properties: wireframe.Properties{
				"has_back_button": wireframe.Bool(true),
				"title":           wireframe.String("Screen Title"),
			},
		})
		currentY = m.StatusBarHeight + m.MobileNavHeight + m.Spacing
	}

	if contains(requested, wireframe.TypeContent) {
		out = append(out, wireframe.Component{
			Type:   wireframe.TypeContent,
			Label:  "Main Content",
			X:      m.Margin,
			Y:      currentY,
			Width:  canvas.Width - 2*m.Margin,
			Height: canvas.Height - currentY - m.BottomNavHeight,
			Properties: wireframe.Properties{
				"scrollable": wireframe.Bool(true),
			},
		})
	}

	if occurrences(requested, wireframe.TypeNavigation) > 1 {
		out = append(out, wireframe.Component{
			Type:   wireframe.TypeNavigation,
			Label:  "Bottom Navigation",
			X:      0,
			Y:      canvas.Height - m.BottomNavHeight,
			Width:  canvas.Width,
			Height: m.BottomNavHeight,
			Properties: wireframe.Properties{
				"tabs": wireframe.StringList("Home", "Search", "Profile", "More"),
			},
		})
	}

	return out
}
