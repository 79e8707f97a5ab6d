// Package wireframe defines the core data model shared by every stage of the
// wireframe compiler: component types, layout archetypes, fidelity styles,
// positioned components, and canvas dimensions.
//
// Values of these types are created once per request, treated as immutable,
// and passed between the classifier, the layout synthesizer, and the
// renderer. Nothing in this package performs I/O.
package wireframe
