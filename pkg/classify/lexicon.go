package classify

import (
	_ "embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/framesketch/framesketch/pkg/wireframe"
)

//go:embed lexicon.yaml
var lexiconYAML []byte

// ArchetypePriority fixes the tie-break order among equally-scored
// archetypes: earlier entries win. web-desktop carries no trigger phrases of
// its own and is reachable only through the zero-score fallback probes.
var ArchetypePriority = []wireframe.Archetype{
	wireframe.LandingPage,
	wireframe.Dashboard,
	wireframe.Ecommerce,
	wireframe.FormPage,
	wireframe.Blog,
	wireframe.MobileApp,
	wireframe.WebMobile,
	wireframe.WebDesktop,
}

// styleOrder fixes the probe order for fidelity detection: the first style
// with any phrase hit wins.
var styleOrder = []wireframe.Fidelity{
	wireframe.LowFi,
	wireframe.MidFi,
	wireframe.HighFi,
	wireframe.Sketch,
}

// canvasSize is a suggested canvas dimension pair.
type canvasSize struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// lexicon holds every trigger-phrase table used by the classifier. Built once
// from the embedded YAML document and shared read-only across requests.
type lexicon struct {
	Archetypes   map[wireframe.Archetype][]string          `yaml:"archetypes"`
	Components   map[wireframe.ComponentType][]string      `yaml:"components"`
	Styles       map[wireframe.Fidelity][]string           `yaml:"styles"`
	Requirements map[string][]string                       `yaml:"requirements"`
	Implied      map[wireframe.Archetype][]wireframe.ComponentType `yaml:"implied"`
	Sizes        map[wireframe.Archetype]canvasSize        `yaml:"sizes"`
	Fallbacks    map[wireframe.Archetype][]string          `yaml:"fallbacks"`
}

var (
	tables     *lexicon
	tablesOnce sync.Once
)

// loadTables parses the embedded lexicon exactly once. The embedded document
// is part of the build; a parse failure is a programming error and panics.
func loadTables() *lexicon {
	tablesOnce.Do(func() {
		var lex lexicon
		if err := yaml.Unmarshal(lexiconYAML, &lex); err != nil {
			panic(fmt.Sprintf("classify: parse embedded lexicon: %v", err))
		}
		if err := lex.check(); err != nil {
			panic(fmt.Sprintf("classify: invalid embedded lexicon: %v", err))
		}
		tables = &lex
	})
	return tables
}

// check verifies the lexicon covers every archetype the classifier can emit.
func (l *lexicon) check() error {
	for _, a := range wireframe.Archetypes {
		if _, ok := l.Sizes[a]; !ok {
			return fmt.Errorf("missing size for archetype %s", a)
		}
		if _, ok := l.Implied[a]; !ok {
			return fmt.Errorf("missing implied components for archetype %s", a)
		}
	}
	for a := range l.Archetypes {
		if !a.Valid() {
			return fmt.Errorf("unknown archetype in trigger table: %s", a)
		}
	}
	for t := range l.Components {
		if !t.Valid() {
			return fmt.Errorf("unknown component type in trigger table: %s", t)
		}
	}
	return nil
}

// SuggestedSize returns the fixed per-archetype canvas suggestion.
func SuggestedSize(a wireframe.Archetype) (width, height int) {
	lex := loadTables()
	size, ok := lex.Sizes[a]
	if !ok {
		return wireframe.DefaultWidth, wireframe.DefaultHeight
	}
	return size.Width, size.Height
}

// ImpliedComponents returns the component set implied by an archetype,
// independent of any prompt keywords.
func ImpliedComponents(a wireframe.Archetype) []wireframe.ComponentType {
	lex := loadTables()
	if implied, ok := lex.Implied[a]; ok {
		return implied
	}
	return []wireframe.ComponentType{wireframe.TypeHeader, wireframe.TypeContent}
}
