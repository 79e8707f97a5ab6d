// Package render turns a positioned component list into visual artifacts.
//
// # Overview
//
// Two independent renderers share one geometry source:
//
//   - Raster: draws each component onto an in-memory canvas and encodes PNG
//   - Vector: writes a class-based SVG document with one group per component
//
// Both walk the same components in the same order, so a box at (x, y, w, h)
// in the PNG is the same box in the SVG. Fidelity selects a [Style] that
// controls stroke width, palette, and background; it never moves geometry.
//
// # Usage
//
//	artifacts, err := render.Render(components, canvas, wireframe.LowFi,
//	    render.WithAnnotations())
//
// [Render] returns the decoded image together with the encoded PNG and SVG
// bytes so callers can hand the image to post-processing without a decode
// round trip.
package render
