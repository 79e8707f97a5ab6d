package layout

import "github.com/framesketch/framesketch/pkg/wireframe"

// blog places a header over a two-column body: a wide post list on the left
// and a fixed-width sidebar flush to the right margin. Both columns leave a
// footer reserve at the bottom even though no footer is emitted.
func (s *Synthesizer) blog(requested []wireframe.ComponentType, canvas wireframe.Canvas) []wireframe.Component {
	m := s.m
	var out []wireframe.Component
	currentY := 0

	if contains(requested, wireframe.TypeHeader) {
		out = append(out, wireframe.Component{
			Type:   wireframe.TypeHeader,
			Label:  "Blog Header",
			X:      0,
			Y:      0,
			Width:  canvas.Width,
			Height: m.BlogHeaderHeight,
			Properties: wireframe.Properties{
				"site_title": wireframe.Bool(true),
				"navigation": wireframe.Bool(true),
				"search":     wireframe.Bool(true),
			},
		})
		currentY += m.BlogHeaderHeight + m.Spacing
	}

	if contains(requested, wireframe.TypeContent) {
		contentWidth := canvas.Width - m.BlogSidebarWidth - 3*m.Margin
		out = append(out, wireframe.Component{
			Type:   wireframe.TypeContent,
			Label:  "Blog Posts",
			X:      m.Margin,
			Y:      currentY,
			Width:  contentWidth,
			Height: canvas.Height - currentY - m.BlogFooterReserve,
			Properties: wireframe.Properties{
				"post_list":  wireframe.Bool(true),
				"pagination": wireframe.Bool(true),
			},
		})
	}

	if contains(requested, wireframe.TypeSidebar) {
		out = append(out, wireframe.Component{
			Type:   wireframe.TypeSidebar,
			Label:  "Blog Sidebar",
			X:      canvas.Width - m.BlogSidebarWidth - m.Margin,
			Y:      currentY,
			Width:  m.BlogSidebarWidth,
			Height: canvas.Height - currentY - m.BlogFooterReserve,
			Properties: wireframe.Properties{
				"recent_posts": wireframe.Bool(true),
				"categories":   wireframe.Bool(true),
				"tags":         wireframe.Bool(true),
			},
		})
	}

	return out
}
