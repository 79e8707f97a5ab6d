package layout

import (
	"strings"

	"github.com/framesketch/framesketch/pkg/wireframe"
)

// landingSections are the three content bands every landing page gets when
// content is requested.
var landingSections = []string{"Features", "Benefits", "Testimonials"}

// landingPage stacks header, hero, content sections, and footer top to
// bottom. The footer sits below whatever came before it rather than being
// pinned to the canvas bottom, so dense pages can exceed the canvas.
func (s *Synthesizer) landingPage(requested []wireframe.ComponentType, canvas wireframe.Canvas) []wireframe.Component {
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
			Height: m.LandingHeaderHeight,
			Properties: wireframe.Properties{
				"logo":       wireframe.Bool(true),
				"navigation": wireframe.Bool(true),
				"cta_button": wireframe.Bool(true),
			},
		})
		currentY = m.LandingHeaderHeight
	}

	if contains(requested, wireframe.TypeHero) {
		out = append(out, wireframe.Component{
			Type:   wireframe.TypeHero,
			Label:  "Hero Section",
			X:      0,
			Y:      currentY,
			Width:  canvas.Width,
			Height: m.HeroHeight,
			Properties: wireframe.Properties{
				"headline":         wireframe.Bool(true),
				"subheadline":      wireframe.Bool(true),
				"cta_button":       wireframe.Bool(true),
				"background_image": wireframe.Bool(true),
			},
		})
		currentY += m.HeroHeight + m.Spacing
	}

	if contains(requested, wireframe.TypeContent) {
		for _, name := range landingSections {
			out = append(out, wireframe.Component{
				Type:   wireframe.TypeContent,
				Label:  name + " Section",
				X:      m.Margin,
				Y:      currentY,
				Width:  canvas.Width - 2*m.Margin,
				Height: m.SectionHeight,
				Properties: wireframe.Properties{
					"section_type": wireframe.String(strings.ToLower(name)),
				},
			})
			currentY += m.SectionHeight + m.Spacing
		}
	}

	if contains(requested, wireframe.TypeFooter) {
		out = append(out, wireframe.Component{
			Type:   wireframe.TypeFooter,
			Label:  "Site Footer",
			X:      0,
			Y:      currentY,
			Width:  canvas.Width,
			Height: m.LandingFooterHeight,
			Properties: wireframe.Properties{
				"links":     wireframe.Bool(true),
				"social":    wireframe.Bool(true),
				"copyright": wireframe.Bool(true),
			},
		})
	}

	return out
}
