// Package layout synthesizes positioned wireframe components from a layout
// archetype, a canvas, and a requested component set.
//
// Synthesis is a pure function: no I/O, no randomness, no shared mutable
// state. The same inputs always produce the same component list, which is
// what lets the raster and vector renderers agree on geometry without
// coordinating.
//
// Each archetype selects exactly one placement strategy. Canvases smaller
// than an archetype's implicit minimum are permitted and may produce
// overlapping or negative-space boxes; the synthesizer never clamps.
package layout

import (
	"cmp"
	"slices"

	"github.com/framesketch/framesketch/pkg/errors"
	"github.com/framesketch/framesketch/pkg/wireframe"
)

// componentPriority orders components for placement. Lower sorts first;
// unknown types sort last and keep their relative request order.
var componentPriority = map[wireframe.ComponentType]int{
	wireframe.TypeHeader:     1,
	wireframe.TypeNavigation: 2,
	wireframe.TypeHero:       3,
	wireframe.TypeSidebar:    4,
	wireframe.TypeContent:    5,
	wireframe.TypeForm:       6,
	wireframe.TypeCard:       7,
	wireframe.TypeList:       8,
	wireframe.TypeTable:      9,
	wireframe.TypeChart:      10,
	wireframe.TypeImage:      11,
	wireframe.TypeText:       12,
	wireframe.TypeButton:     13,
	wireframe.TypeFooter:     14,
}

const unknownPriority = 99

// Option configures a Synthesizer.
type Option func(*Synthesizer)

// WithMetrics overrides the default metric set.
func WithMetrics(m Metrics) Option {
	return func(s *Synthesizer) { s.m = m }
}

// Synthesizer places components according to per-archetype strategies.
// The zero-cost construction makes it safe to share across goroutines.
type Synthesizer struct {
	m Metrics
}

// New creates a Synthesizer with the default metrics.
func New(opts ...Option) *Synthesizer {
	s := &Synthesizer{m: DefaultMetrics()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Synthesize places the requested components on the canvas using the
// archetype's strategy and returns them in placement order.
//
// A requested component type outside the canonical set is an
// INVALID_COMPONENT error. An unrecognized archetype falls back to the
// generic strategy rather than failing.
func (s *Synthesizer) Synthesize(archetype wireframe.Archetype, canvas wireframe.Canvas, requested []wireframe.ComponentType) ([]wireframe.Component, error) {
	for _, t := range requested {
		if !t.Valid() {
			return nil, errors.New(errors.ErrCodeInvalidComponent, "unknown component type: %q", string(t))
		}
	}

	ordered := sortByPriority(requested)

	switch archetype {
	case wireframe.MobileApp:
		return s.mobileApp(ordered, canvas), nil
	case wireframe.Dashboard:
		return s.dashboard(ordered, canvas), nil
	case wireframe.LandingPage:
		return s.landingPage(ordered, canvas), nil
	case wireframe.FormPage:
		return s.formPage(ordered, canvas), nil
	case wireframe.Ecommerce:
		return s.ecommerce(ordered, canvas), nil
	case wireframe.Blog:
		return s.blog(ordered, canvas), nil
	default:
		// web-desktop, web-mobile, and anything unrecognized.
		return s.generic(ordered, canvas), nil
	}
}

// Synthesize runs a one-off synthesis with the default metrics.
func Synthesize(archetype wireframe.Archetype, canvas wireframe.Canvas, requested []wireframe.ComponentType) ([]wireframe.Component, error) {
	return New().Synthesize(archetype, canvas, requested)
}

// sortByPriority returns a new slice sorted by the fixed placement priority.
// The sort is stable: equal-priority entries keep their request order.
func sortByPriority(requested []wireframe.ComponentType) []wireframe.ComponentType {
	ordered := slices.Clone(requested)
	slices.SortStableFunc(ordered, func(a, b wireframe.ComponentType) int {
		return cmp.Compare(priorityOf(a), priorityOf(b))
	})
	return ordered
}

func priorityOf(t wireframe.ComponentType) int {
	if p, ok := componentPriority[t]; ok {
		return p
	}
	return unknownPriority
}

// contains reports whether the ordered set includes t.
func contains(components []wireframe.ComponentType, t wireframe.ComponentType) bool {
	return slices.Contains(components, t)
}

// occurrences counts how many times t appears in the request.
func occurrences(components []wireframe.ComponentType, t wireframe.ComponentType) int {
	n := 0
	for _, c := range components {
		if c == t {
			n++
		}
	}
	return n
}
