package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/pumlgen/pkg/model"
	"github.com/matzehuels/pumlgen/pkg/render/puml"
)

// Options configures node-link diagram rendering.
type Options struct {
	// Methods includes method names in node labels.
	// When false, only the qualified class name is shown.
	Methods bool

	// MaxMethods caps the listed methods; zero means puml.DefaultMaxMethods.
	MaxMethods int
}

// ToDOT converts a package model to Graphviz DOT. Modules become clusters in
// ascending key order and edges point from subclass to base, in the same
// order as the PlantUML output.
func ToDOT(pkg *model.Package, opts Options) string {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "digraph %q {\n", pkg.Name)
	buf.WriteString("  rankdir=BT;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  edge [arrowhead=empty];\n")
	buf.WriteString("\n")

	for i, module := range pkg.Modules() {
		fmt.Fprintf(&buf, "  subgraph cluster_%d {\n", i)
		fmt.Fprintf(&buf, "    label=%q;\n", clusterLabel(module, pkg.Name))
		buf.WriteString("    style=\"rounded,dashed\";\n")
		for _, c := range pkg.ByModule[module] {
			fmt.Fprintf(&buf, "    %q [label=%q];\n", c.Alias(), fmtLabel(c, opts))
		}
		buf.WriteString("  }\n")
	}

	buf.WriteString("\n")
	for _, e := range pkg.Edges() {
		fmt.Fprintf(&buf, "  %q -> %q;\n", e.From, e.To)
	}

	buf.WriteString("}\n")
	return buf.String()
}

func clusterLabel(module, pkgName string) string {
	if module == "" {
		return pkgName
	}
	return module
}

func fmtLabel(c model.Class, opts Options) string {
	if !opts.Methods || len(c.Methods) == 0 {
		return c.FQName()
	}

	limit := opts.MaxMethods
	if limit <= 0 {
		limit = puml.DefaultMaxMethods
	}
	methods := slices.Sorted(slices.Values(c.Methods))
	parts := []string{c.FQName()}
	for _, m := range methods[:min(limit, len(methods))] {
		parts = append(parts, m+"()")
	}
	if len(methods) > limit {
		parts = append(parts, "…")
	}
	return strings.Join(parts, "\n")
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox rewrites the root svg element so the drawing scales with
// its container instead of using Graphviz's point-based width and height.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}
