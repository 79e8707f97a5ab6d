package render

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/framesketch/framesketch/pkg/wireframe"
)

var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
)

// renderSVG writes a class-based SVG document with one group per component.
// Geometry mirrors the raster renderer exactly.
func renderSVG(components []wireframe.Component, canvas wireframe.Canvas, style Style) []byte {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %d %d" width="%d" height="%d">`+"\n",
		canvas.Width, canvas.Height, canvas.Width, canvas.Height)

	writeDefs(&buf, style)
	fmt.Fprintf(&buf, `  <rect width="%d" height="%d" fill="#ffffff"/>`+"\n", canvas.Width, canvas.Height)

	for i, c := range components {
		writeComponent(&buf, c, i)
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func writeDefs(buf *bytes.Buffer, style Style) {
	buf.WriteString("  <defs>\n    <style>\n")
	fmt.Fprintf(buf, "      .wireframe-border { fill: none; stroke: %s; stroke-width: %g; }\n", style.Border, style.LineWidth)
	fmt.Fprintf(buf, "      .wireframe-text { font-family: Arial, sans-serif; font-size: 12px; fill: %s; }\n", style.Text)
	fmt.Fprintf(buf, "      .wireframe-bg { fill: %s; }\n", style.Background)
	fmt.Fprintf(buf, "      .wireframe-accent { fill: %s; }\n", style.Accent)
	buf.WriteString("    </style>\n  </defs>\n")
}

func writeComponent(buf *bytes.Buffer, c wireframe.Component, index int) {
	fmt.Fprintf(buf, `  <g id="%s-%d">`+"\n", c.Type, index)

	if filled(c.Type) {
		fmt.Fprintf(buf, `    <rect class="wireframe-bg" x="%d" y="%d" width="%d" height="%d"/>`+"\n",
			c.X, c.Y, c.Width, c.Height)
	}
	fmt.Fprintf(buf, `    <rect class="wireframe-border" x="%d" y="%d" width="%d" height="%d"/>`+"\n",
		c.X, c.Y, c.Width, c.Height)

	if c.Label != "" {
		fmt.Fprintf(buf, `    <text class="wireframe-text" x="%d" y="%d">%s</text>`+"\n",
			c.X+8, c.Y+20, xmlEscaper.Replace(c.Label))
	}

	buf.WriteString("  </g>\n")

	for _, child := range c.Children {
		writeComponent(buf, child, index)
	}
}

// filled reports whether a component type gets a background rect under its
// border, matching the raster renderer's filled types.
func filled(t wireframe.ComponentType) bool {
	switch t {
	case wireframe.TypeHeader, wireframe.TypeNavigation, wireframe.TypeHero,
		wireframe.TypeSidebar, wireframe.TypeFooter:
		return true
	}
	return false
}
