// Package nodelink renders the class hierarchy of a package as a node-link
// diagram using Graphviz.
//
// # Overview
//
// Where the puml package produces PlantUML source for documentation sites,
// this package produces a directed graph that can be rendered in-process:
// classes are boxes grouped into one cluster per module, and every resolved
// inheritance edge is an arrow from subclass to base.
//
// # Usage
//
//	dot := nodelink.ToDOT(pkg, nodelink.Options{})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//
// # Options
//
//   - Methods: when true, node labels list the class's methods (capped like
//     the PlantUML output).
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering; no external Graphviz installation is required.
package nodelink
