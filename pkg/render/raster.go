package render

import (
	"image"
	"strings"

	"github.com/fogleman/gg"

	"github.com/framesketch/framesketch/pkg/wireframe"
)

const labelFontSize = 12

// rasterRenderer draws components onto a gg context. All coordinates come
// straight from the synthesizer; drawing never repositions anything.
type rasterRenderer struct {
	dc          *gg.Context
	style       Style
	annotations bool
}

// renderRaster draws every component onto a white canvas and returns the
// image.
func renderRaster(components []wireframe.Component, canvas wireframe.Canvas, style Style, annotations bool) image.Image {
	dc := gg.NewContext(canvas.Width, canvas.Height)
	dc.SetHexColor("#ffffff")
	dc.Clear()
	dc.SetFontFace(loadFace(labelFontSize))

	r := &rasterRenderer{dc: dc, style: style, annotations: annotations}
	for i, c := range components {
		r.draw(c)
		if annotations {
			r.annotate(c, i)
		}
	}
	return dc.Image()
}

func (r *rasterRenderer) draw(c wireframe.Component) {
	switch c.Type {
	case wireframe.TypeHeader:
		r.drawHeader(c)
	case wireframe.TypeNavigation:
		r.drawNavigation(c)
	case wireframe.TypeHero:
		r.drawHero(c)
	case wireframe.TypeContent:
		r.drawContent(c)
	case wireframe.TypeSidebar:
		r.drawSidebar(c)
	case wireframe.TypeFooter:
		r.drawFooter(c)
	case wireframe.TypeForm:
		r.drawFormField(c)
	case wireframe.TypeButton:
		r.drawButton(c)
	case wireframe.TypeCard:
		r.drawCard(c)
	case wireframe.TypeChart:
		r.drawChart(c)
	default:
		r.drawGeneric(c)
	}
	for _, child := range c.Children {
		r.draw(child)
	}
}

// annotate writes the component label just above its box in the accent color.
func (r *rasterRenderer) annotate(c wireframe.Component, _ int) {
	if c.Label == "" {
		return
	}
	r.dc.SetHexColor(r.style.Accent)
	r.dc.DrawString(c.Label, float64(c.X), float64(c.Y)-4)
}

// box strokes the component outline in the border color.
func (r *rasterRenderer) box(c wireframe.Component) {
	r.dc.SetHexColor(r.style.Border)
	r.dc.SetLineWidth(r.style.LineWidth)
	r.dc.DrawRectangle(float64(c.X), float64(c.Y), float64(c.Width), float64(c.Height))
	r.dc.Stroke()
}

// fill paints the component area, then box strokes over it.
func (r *rasterRenderer) fill(c wireframe.Component, hex string) {
	r.dc.SetHexColor(hex)
	r.dc.DrawRectangle(float64(c.X), float64(c.Y), float64(c.Width), float64(c.Height))
	r.dc.Fill()
	r.box(c)
}

// drawHeader reads the navigation, user_menu, account, and title keys.
func (r *rasterRenderer) drawHeader(c wireframe.Component) {
	r.fill(c, r.style.Background)
	x, y := float64(c.X), float64(c.Y)
	w, h := float64(c.Width), float64(c.Height)

	// Logo placeholder on the left.
	r.dc.SetHexColor(r.style.Border)
	r.dc.SetLineWidth(r.style.LineWidth)
	r.dc.DrawRectangle(x+10, y+10, 60, h-20)
	r.dc.Stroke()

	// Navigation item stubs.
	if c.Properties["navigation"].IsTrue() {
		itemW := 50.0
		for i := 0; i < 3; i++ {
			r.dc.DrawRectangle(x+90+float64(i)*(itemW+10), y+h/2-10, itemW, 20)
			r.dc.Stroke()
		}
	}

	// User menu circle on the right.
	if c.Properties["user_menu"].IsTrue() || c.Properties["account"].IsTrue() {
		r.dc.DrawCircle(x+w-30, y+h/2, 12)
		r.dc.Stroke()
	}

	if title, ok := c.Properties["title"].AsString(); ok {
		r.dc.SetHexColor(r.style.Text)
		r.dc.DrawStringAnchored(title, x+w/2, y+h/2, 0.5, 0.4)
	}
}

// drawNavigation reads has_back_button and title, or one of the list keys
// resolved by navItems.
func (r *rasterRenderer) drawNavigation(c wireframe.Component) {
	r.fill(c, r.style.BgLight)
	x, y := float64(c.X), float64(c.Y)
	w, h := float64(c.Width), float64(c.Height)

	if c.Properties["has_back_button"].IsTrue() {
		// Back chevron.
		r.dc.SetHexColor(r.style.Text)
		r.dc.SetLineWidth(r.style.LineWidth)
		r.dc.MoveTo(x+24, y+h/2-8)
		r.dc.LineTo(x+14, y+h/2)
		r.dc.LineTo(x+24, y+h/2+8)
		r.dc.Stroke()
		if title, ok := c.Properties["title"].AsString(); ok {
			r.dc.DrawStringAnchored(title, x+w/2, y+h/2, 0.5, 0.4)
		}
		return
	}

	items := navItems(c)
	if len(items) == 0 {
		return
	}
	slot := w / float64(len(items))
	r.dc.SetHexColor(r.style.Text)
	for i, item := range items {
		r.dc.DrawStringAnchored(item, x+slot*float64(i)+slot/2, y+h/2, 0.5, 0.4)
	}
}

// navItems picks whichever list property the strategy attached.
func navItems(c wireframe.Component) []string {
	for _, key := range []string{"tabs", "categories", "menu_items"} {
		if items, ok := c.Properties[key].AsStringList(); ok && len(items) > 0 {
			return items
		}
	}
	return nil
}

// drawHero reads the background_image and cta_button keys.
func (r *rasterRenderer) drawHero(c wireframe.Component) {
	r.fill(c, r.style.BgLight)
	x, y := float64(c.X), float64(c.Y)
	w, h := float64(c.Width), float64(c.Height)

	// Crossed-box image placeholder fills the top half.
	if c.Properties["background_image"].IsTrue() {
		imgH := h / 2
		r.dc.SetHexColor(r.style.Border)
		r.dc.SetLineWidth(r.style.LineWidth)
		r.dc.DrawRectangle(x+20, y+20, w-40, imgH-20)
		r.dc.Stroke()
		r.dc.MoveTo(x+20, y+20)
		r.dc.LineTo(x+w-20, y+imgH)
		r.dc.MoveTo(x+w-20, y+20)
		r.dc.LineTo(x+20, y+imgH)
		r.dc.Stroke()
	}

	// Headline and subheadline bars.
	r.dc.SetHexColor(r.style.Text)
	r.dc.DrawRectangle(x+w/2-150, y+h/2+30, 300, 16)
	r.dc.Fill()
	r.dc.SetHexColor(r.style.TextLight)
	r.dc.DrawRectangle(x+w/2-100, y+h/2+60, 200, 10)
	r.dc.Fill()

	if c.Properties["cta_button"].IsTrue() {
		r.dc.SetHexColor(r.style.Accent)
		r.dc.DrawRectangle(x+w/2-60, y+h/2+90, 120, 40)
		r.dc.Fill()
	}
}

func (r *rasterRenderer) drawContent(c wireframe.Component) {
	r.box(c)
	// Text line placeholders with varying widths.
	widths := []float64{0.9, 0.75, 0.85, 0.6, 0.8, 0.7}
	r.dc.SetHexColor(r.style.TextLight)
	lineY := float64(c.Y) + 16
	bottom := float64(c.Y+c.Height) - 10
	for i := 0; lineY < bottom; i++ {
		lineW := (float64(c.Width) - 20) * widths[i%len(widths)]
		r.dc.DrawRectangle(float64(c.X)+10, lineY, lineW, 4)
		r.dc.Fill()
		lineY += 20
	}
}

// drawSidebar reads the navigation_items key.
func (r *rasterRenderer) drawSidebar(c wireframe.Component) {
	r.fill(c, r.style.Background)
	items, ok := c.Properties["navigation_items"].AsStringList()
	if !ok {
		items = []string{"Item 1", "Item 2", "Item 3", "Item 4"}
	}
	x, y := float64(c.X), float64(c.Y)
	for i, item := range items {
		itemY := y + 16 + float64(i)*44
		if i == 0 {
			r.dc.SetHexColor(r.style.AccentLight)
			r.dc.DrawRectangle(x+8, itemY-6, float64(c.Width)-16, 32)
			r.dc.Fill()
		}
		r.dc.SetHexColor(r.style.Text)
		r.dc.DrawString(item, x+16, itemY+14)
	}
}

func (r *rasterRenderer) drawFooter(c wireframe.Component) {
	r.fill(c, r.style.Background)
	x, y := float64(c.X), float64(c.Y)
	w, h := float64(c.Width), float64(c.Height)

	// Link stubs across the top, copyright centered below.
	r.dc.SetHexColor(r.style.TextLight)
	for i := 0; i < 4; i++ {
		r.dc.DrawRectangle(x+20+float64(i)*90, y+16, 70, 8)
		r.dc.Fill()
	}
	r.dc.SetHexColor(r.style.Text)
	r.dc.DrawStringAnchored("© 2024 Company Name", x+w/2, y+h-16, 0.5, 0.4)
}

// drawFormField reads the placeholder key, falling back to the label.
func (r *rasterRenderer) drawFormField(c wireframe.Component) {
	r.fill(c, "#ffffff")
	placeholder, ok := c.Properties["placeholder"].AsString()
	if !ok {
		placeholder = c.Label
	}
	r.dc.SetHexColor(r.style.TextLight)
	r.dc.DrawStringAnchored(placeholder, float64(c.X)+8, float64(c.Y)+float64(c.Height)/2, 0, 0.4)
}

// drawButton reads the text and primary keys.
func (r *rasterRenderer) drawButton(c wireframe.Component) {
	x, y := float64(c.X), float64(c.Y)
	w, h := float64(c.Width), float64(c.Height)
	text, _ := c.Properties["text"].AsString()

	if c.Properties["primary"].IsTrue() {
		r.dc.SetHexColor(r.style.Accent)
		r.dc.DrawRectangle(x, y, w, h)
		r.dc.Fill()
		r.dc.SetHexColor("#ffffff")
	} else {
		r.dc.SetHexColor(r.style.Accent)
		r.dc.SetLineWidth(r.style.LineWidth)
		r.dc.DrawRectangle(x, y, w, h)
		r.dc.Stroke()
	}
	if text != "" {
		r.dc.DrawStringAnchored(text, x+w/2, y+h/2, 0.5, 0.4)
	}
}

func (r *rasterRenderer) drawCard(c wireframe.Component) {
	r.box(c)
	x, y := float64(c.X), float64(c.Y)
	w := float64(c.Width)

	// Square image area with crossed lines.
	r.dc.SetHexColor(r.style.BgLight)
	r.dc.DrawRectangle(x, y, w, w)
	r.dc.Fill()
	r.dc.SetHexColor(r.style.Border)
	r.dc.SetLineWidth(r.style.LineWidth)
	r.dc.MoveTo(x, y)
	r.dc.LineTo(x+w, y+w)
	r.dc.MoveTo(x+w, y)
	r.dc.LineTo(x, y+w)
	r.dc.Stroke()

	// Title bar and price below the image.
	r.dc.SetHexColor(r.style.Text)
	r.dc.DrawRectangle(x+10, y+w+12, w-20, 8)
	r.dc.Fill()
	r.dc.SetHexColor(r.style.Accent)
	r.dc.DrawString("$99.99", x+10, y+w+42)
}

// drawChart reads the chart_type key; unrecognized kinds draw the polyline.
func (r *rasterRenderer) drawChart(c wireframe.Component) {
	r.box(c)
	x, y := float64(c.X), float64(c.Y)
	w, h := float64(c.Width), float64(c.Height)

	if c.Label != "" {
		r.dc.SetHexColor(r.style.Text)
		r.dc.DrawString(c.Label, x+10, y+20)
	}

	plotX, plotY := x+20, y+36
	plotW, plotH := w-40, h-56
	if plotW <= 0 || plotH <= 0 {
		return
	}

	kind, _ := c.Properties["chart_type"].AsString()
	r.dc.SetHexColor(r.style.Accent)
	switch {
	case strings.Contains(kind, "bar"):
		bars := []float64{0.4, 0.7, 0.5, 0.9, 0.6}
		barW := plotW / float64(len(bars)*2)
		for i, v := range bars {
			bh := plotH * v
			r.dc.DrawRectangle(plotX+float64(i)*2*barW+barW/2, plotY+plotH-bh, barW, bh)
			r.dc.Fill()
		}
	case strings.Contains(kind, "pie"):
		radius := min(plotW, plotH) / 2
		r.dc.SetLineWidth(r.style.LineWidth)
		r.dc.DrawCircle(plotX+plotW/2, plotY+plotH/2, radius)
		r.dc.Stroke()
		r.dc.MoveTo(plotX+plotW/2, plotY+plotH/2)
		r.dc.LineTo(plotX+plotW/2, plotY+plotH/2-radius)
		r.dc.MoveTo(plotX+plotW/2, plotY+plotH/2)
		r.dc.LineTo(plotX+plotW/2+radius*0.8, plotY+plotH/2+radius*0.3)
		r.dc.Stroke()
	default:
		// Line and area charts share a polyline.
		points := []float64{0.7, 0.4, 0.55, 0.25, 0.45, 0.15}
		step := plotW / float64(len(points)-1)
		r.dc.SetLineWidth(r.style.LineWidth)
		for i, v := range points {
			px := plotX + float64(i)*step
			py := plotY + plotH*v
			if i == 0 {
				r.dc.MoveTo(px, py)
			} else {
				r.dc.LineTo(px, py)
			}
		}
		r.dc.Stroke()
	}
}

// drawGeneric reads no property keys.
func (r *rasterRenderer) drawGeneric(c wireframe.Component) {
	r.box(c)
	r.dc.SetHexColor(r.style.TextLight)
	r.dc.DrawStringAnchored(strings.ToUpper(string(c.Type)),
		float64(c.X)+float64(c.Width)/2, float64(c.Y)+float64(c.Height)/2, 0.5, 0.4)
}
