package layout

import (
	"fmt"

	"github.com/framesketch/framesketch/pkg/wireframe"
)

// ecommerce places a store header, a category bar, and a product card grid.
// Column count scales with canvas width; cards are taller than wide to leave
// room for title and price under the image.
func (s *Synthesizer) ecommerce(requested []wireframe.ComponentType, canvas wireframe.Canvas) []wireframe.Component {
	m := s.m
	var out []wireframe.Component
	currentY := 0

	if contains(requested, wireframe.TypeHeader) {
		out = append(out, wireframe.Component{
			Type:   wireframe.TypeHeader,
			Label:  "Store Header",
			X:      0,
			Y:      0,
			Width:  canvas.Width,
			Height: m.StoreHeaderHeight,
			Properties: wireframe.Properties{
				"logo":    wireframe.Bool(true),
				"search":  wireframe.Bool(true),
				"cart":    wireframe.Bool(true),
				"account": wireframe.Bool(true),
			},
		})
		currentY += m.StoreHeaderHeight
	}

	if contains(requested, wireframe.TypeNavigation) {
		out = append(out, wireframe.Component{
			Type:   wireframe.TypeNavigation,
			Label:  "Category Navigation",
			X:      0,
			Y:      currentY,
			Width:  canvas.Width,
			Height: m.CategoryNavHeight,
			Properties: wireframe.Properties{
				"categories": wireframe.StringList("Electronics", "Clothing", "Home", "Sports"),
			},
		})
		currentY += m.CategoryNavHeight + m.Spacing
	}

	if contains(requested, wireframe.TypeCard) {
		cols := 2
		switch {
		case canvas.Width > m.WideGridWidth:
			cols = 4
		case canvas.Width > m.MediumGridWidth:
			cols = 3
		}

		cardWidth := (canvas.Width - 2*m.Margin - (cols-1)*m.Spacing) / cols
		cardHeight := cardWidth + m.CardInfoHeight

		for row := 0; row < m.ProductRows; row++ {
			for col := 0; col < cols; col++ {
				n := row*cols + col + 1
				out = append(out, wireframe.Component{
					Type:   wireframe.TypeCard,
					Label:  fmt.Sprintf("Product %d", n),
					X:      m.Margin + col*(cardWidth+m.Spacing),
					Y:      currentY + row*(cardHeight+m.Spacing),
					Width:  cardWidth,
					Height: cardHeight,
					Properties: wireframe.Properties{
						"image":  wireframe.Bool(true),
						"title":  wireframe.Bool(true),
						"price":  wireframe.Bool(true),
						"rating": wireframe.Bool(true),
					},
				})
			}
		}
	}

	return out
}
