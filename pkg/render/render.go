// Package render produces Graphviz visualizations of page navigation graphs.
//
// [ToDOT] converts a graph to DOT text; [RenderSVG] turns DOT into an SVG
// document using the embedded Graphviz engine, so no external binary is
// required.
package render

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/derivative-programming/pagenav/pkg/nav"
)

// Options configures navigation graph rendering.
type Options struct {
	// Starts maps role name to start page. Start pages are highlighted.
	Starts nav.StartPages

	// Distances maps page name to distance from the nearest start page.
	// Pages mapped to [nav.Unreachable] are drawn dashed and grey. When
	// nil, all pages are drawn uniformly.
	Distances map[string]int

	// ShowDistances includes the distance in each node label.
	ShowDistances bool
}

// ToDOT converts a navigation graph to Graphviz DOT format.
// The resulting DOT string can be rendered using [RenderSVG].
func ToDOT(g *nav.Graph, opts Options) string {
	startSet := make(map[string]bool, len(opts.Starts))
	for _, page := range opts.Starts {
		startSet[page] = true
	}

	var buf bytes.Buffer
	buf.WriteString("digraph pages {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=0.6;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	for _, page := range g.Pages() {
		label := fmtLabel(page, opts)
		attrs := fmtAttrs(page, label, startSet, opts)
		fmt.Fprintf(&buf, "  %q [%s];\n", page, strings.Join(attrs, ", "))
	}

	buf.WriteString("\n")
	for _, page := range g.Pages() {
		for _, target := range g.Neighbors(page) {
			fmt.Fprintf(&buf, "  %q -> %q;\n", page, target)
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func fmtLabel(page string, opts Options) string {
	if !opts.ShowDistances || opts.Distances == nil {
		return page
	}
	d, ok := opts.Distances[page]
	if !ok || d == nav.Unreachable {
		return page + "\nunreachable"
	}
	return fmt.Sprintf("%s\nd=%d", page, d)
}

func fmtAttrs(page, label string, startSet map[string]bool, opts Options) []string {
	attrs := []string{fmt.Sprintf("label=%q", label)}
	switch {
	case startSet[page]:
		attrs = append(attrs, "fillcolor=lightblue", "penwidth=2")
	case unreachable(page, opts):
		attrs = append(attrs, "style=\"rounded,filled,dashed\"", "fillcolor=lightgrey", "fontcolor=grey30")
	}
	return attrs
}

func unreachable(page string, opts Options) bool {
	if opts.Distances == nil {
		return false
	}
	d, ok := opts.Distances[page]
	return !ok || d == nav.Unreachable
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(dot string) ([]byte, error) {
	ctx := context.Background()
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

// normalizeViewBox rewrites the SVG root element so the document scales
// cleanly when embedded.
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
