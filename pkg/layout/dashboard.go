package layout

import (
	"strings"

	"github.com/framesketch/framesketch/pkg/wireframe"
)

// chartLabels cycle when more charts are requested than named kinds exist.
var chartLabels = []string{"Line Chart", "Bar Chart", "Pie Chart", "Area Chart", "Metric Card"}

// dashboard places a slim header, a fixed-width sidebar, and a chart grid in
// the remaining content area. Up to four charts go in two columns; more get
// three.
func (s *Synthesizer) dashboard(requested []wireframe.ComponentType, canvas wireframe.Canvas) []wireframe.Component {
	m := s.m
	var out []wireframe.Component

	if contains(requested, wireframe.TypeHeader) {
		out = append(out, wireframe.Component{
			Type:   wireframe.TypeHeader,
			Label:  "Dashboard Header",
			X:      0,
			Y:      0,
			Width:  canvas.Width,
			Height: m.DashboardHeaderHeight,
			Properties: wireframe.Properties{
				"logo":      wireframe.Bool(true),
				"user_menu": wireframe.Bool(true),
				"search":    wireframe.Bool(true),
			},
		})
	}

	contentX := 0
	contentWidth := canvas.Width
	if contains(requested, wireframe.TypeSidebar) {
		out = append(out, wireframe.Component{
			Type:   wireframe.TypeSidebar,
			Label:  "Navigation Sidebar",
			X:      0,
			Y:      m.DashboardHeaderHeight,
			Width:  m.SidebarWidth,
			Height: canvas.Height - m.DashboardHeaderHeight,
			Properties: wireframe.Properties{
				"navigation_items": wireframe.StringList("Dashboard", "Analytics", "Users", "Settings"),
			},
		})
		contentX = m.SidebarWidth + m.Spacing
		contentWidth = canvas.Width - m.SidebarWidth - m.Spacing
	}

	if contains(requested, wireframe.TypeChart) {
		count := occurrences(requested, wireframe.TypeChart)
		if count == 0 {
			count = 4
		}

		cols := 2
		if count > 4 {
			cols = 3
		}
		rows := (count + cols - 1) / cols

		areaX := contentX + m.Margin
		areaY := m.DashboardHeaderHeight + m.Margin
		areaWidth := contentWidth - 2*m.Margin
		areaHeight := canvas.Height - m.DashboardHeaderHeight - 2*m.Margin

		chartWidth := (areaWidth - (cols-1)*m.Spacing) / cols
		chartHeight := (areaHeight - (rows-1)*m.Spacing) / rows

		for i := 0; i < count; i++ {
			row := i / cols
			col := i % cols
			label := chartLabels[i%len(chartLabels)]
			out = append(out, wireframe.Component{
				Type:   wireframe.TypeChart,
				Label:  label,
				X:      areaX + col*(chartWidth+m.Spacing),
				Y:      areaY + row*(chartHeight+m.Spacing),
				Width:  chartWidth,
				Height: chartHeight,
				Properties: wireframe.Properties{
					"chart_type": wireframe.String(chartKind(label)),
				},
			})
		}
	}

	return out
}

func chartKind(label string) string {
	return strings.ReplaceAll(strings.ToLower(label), " ", "_")
}
