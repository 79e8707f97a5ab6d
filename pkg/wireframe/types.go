package wireframe

// ComponentType identifies one of the fixed UI component kinds the compiler
// understands. The set is closed: the synthesizer rejects anything else.
type ComponentType string

// The canonical component vocabulary.
const (
	TypeHeader     ComponentType = "header"
	TypeNavigation ComponentType = "navigation"
	TypeHero       ComponentType = "hero"
	TypeSidebar    ComponentType = "sidebar"
	TypeContent    ComponentType = "content"
	TypeFooter     ComponentType = "footer"
	TypeForm       ComponentType = "form"
	TypeButton     ComponentType = "button"
	TypeImage      ComponentType = "image"
	TypeText       ComponentType = "text"
	TypeCard       ComponentType = "card"
	TypeList       ComponentType = "list"
	TypeTable      ComponentType = "table"
	TypeChart      ComponentType = "chart"
)

// ComponentTypes lists the canonical component vocabulary in declaration order.
var ComponentTypes = []ComponentType{
	TypeHeader, TypeNavigation, TypeHero, TypeSidebar, TypeContent,
	TypeFooter, TypeForm, TypeButton, TypeImage, TypeText,
	TypeCard, TypeList, TypeTable, TypeChart,
}

var validComponentTypes = func() map[ComponentType]bool {
	m := make(map[ComponentType]bool, len(ComponentTypes))
	for _, t := range ComponentTypes {
		m[t] = true
	}
	return m
}()

// Valid reports whether t is part of the canonical component vocabulary.
func (t ComponentType) Valid() bool { return validComponentTypes[t] }

// String returns the wire name of the component type.
func (t ComponentType) String() string { return string(t) }

// Archetype identifies one of the fixed layout categories. Each archetype
// selects exactly one placement strategy in the synthesizer.
type Archetype string

// The supported layout archetypes.
const (
	WebDesktop  Archetype = "web-desktop"
	WebMobile   Archetype = "web-mobile"
	MobileApp   Archetype = "mobile-app"
	Dashboard   Archetype = "dashboard"
	LandingPage Archetype = "landing-page"
	FormPage    Archetype = "form"
	Ecommerce   Archetype = "ecommerce"
	Blog        Archetype = "blog"
)

// Archetypes lists all supported archetypes in declaration order.
var Archetypes = []Archetype{
	WebDesktop, WebMobile, MobileApp, Dashboard,
	LandingPage, FormPage, Ecommerce, Blog,
}

var validArchetypes = func() map[Archetype]bool {
	m := make(map[Archetype]bool, len(Archetypes))
	for _, a := range Archetypes {
		m[a] = true
	}
	return m
}()

// Valid reports whether a is a known archetype.
func (a Archetype) Valid() bool { return validArchetypes[a] }

// String returns the wire name of the archetype.
func (a Archetype) String() string { return string(a) }

// Fidelity selects the rendering detail level. It affects stroke widths and
// colors only, never geometry.
type Fidelity string

// The supported fidelity styles.
const (
	LowFi  Fidelity = "low-fi"
	MidFi  Fidelity = "mid-fi"
	HighFi Fidelity = "high-fi"
	Sketch Fidelity = "sketch"
)

// Fidelities lists all supported fidelity styles in declaration order.
var Fidelities = []Fidelity{LowFi, MidFi, HighFi, Sketch}

var validFidelities = func() map[Fidelity]bool {
	m := make(map[Fidelity]bool, len(Fidelities))
	for _, f := range Fidelities {
		m[f] = true
	}
	return m
}()

// Valid reports whether f is a known fidelity style.
func (f Fidelity) Valid() bool { return validFidelities[f] }

// String returns the wire name of the fidelity style.
func (f Fidelity) String() string { return string(f) }
