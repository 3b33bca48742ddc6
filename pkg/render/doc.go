// Package render turns a package model into diagram documents.
//
// # Overview
//
// Rendering is a pure function of a [model.Package]: nothing is read from
// disk and nothing is written. Two renderers are provided:
//
//   - [puml]: PlantUML class diagrams, the primary output
//   - [nodelink]: Graphviz DOT source and in-process SVG rendering
//
// # PlantUML
//
//	doc := puml.Render(pkg, puml.Options{})
//
// # Node-Link Diagrams
//
//	dot := nodelink.ToDOT(pkg, nodelink.Options{})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//
// Both renderers walk the model in the same sorted order, so their output is
// stable across runs.
package render
