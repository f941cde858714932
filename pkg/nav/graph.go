package nav

import (
	"maps"
	"slices"
)

// Unreachable is the sentinel distance for pages that cannot be reached
// from a given start, and for queries naming pages absent from the graph.
const Unreachable = -1

// Page is a navigable unit (form or report) extracted from the
// application model. Targets lists the destination page names reachable
// through the page's buttons; entries that do not correspond to a known
// page are discarded during Build.
type Page struct {
	Name    string   // unique page name
	Role    string   // role required to visit the page, empty when public
	Targets []string // destination page names of the page's buttons
}

// Graph is an unweighted directed page-navigation graph.
//
// The zero value is not usable - use [Build] to construct one. A built
// Graph is immutable and safe for concurrent readers.
type Graph struct {
	adj   map[string][]string // page name -> sorted unique neighbor names
	roles map[string]string   // page name -> role requirement (empty entries omitted)
}

// Build constructs a Graph from the extracted page set.
//
// Every page becomes a node, including pages with no outgoing
// transitions. Transitions whose target is not among the known page
// names are dropped. Duplicate transitions to the same target collapse
// into a single edge. Self-loops are preserved.
//
// Neighbor lists are sorted lexicographically so that tie-breaks among
// equal-length shortest paths are deterministic across runs.
//
// Pages with duplicate names are merged: their target lists combine
// into one node. The extraction layer is expected to deliver unique
// names; merging keeps a partially inconsistent model non-fatal.
func Build(pages []Page) *Graph {
	g := &Graph{
		adj:   make(map[string][]string, len(pages)),
		roles: make(map[string]string),
	}

	// First pass registers every page so target filtering can see the
	// complete node set.
	targets := make(map[string]map[string]struct{}, len(pages))
	for _, p := range pages {
		if p.Name == "" {
			continue
		}
		if _, ok := targets[p.Name]; !ok {
			targets[p.Name] = make(map[string]struct{})
		}
		if p.Role != "" {
			g.roles[p.Name] = p.Role
		}
	}

	for _, p := range pages {
		if p.Name == "" {
			continue
		}
		for _, t := range p.Targets {
			if _, known := targets[t]; !known {
				continue // target not in this extraction pass
			}
			targets[p.Name][t] = struct{}{}
		}
	}

	for name, set := range targets {
		g.adj[name] = slices.Sorted(maps.Keys(set))
	}

	return g
}

// HasPage reports whether name is a node in the graph.
func (g *Graph) HasPage(name string) bool {
	_, ok := g.adj[name]
	return ok
}

// Pages returns all page names in lexicographic order.
func (g *Graph) Pages() []string {
	return slices.Sorted(maps.Keys(g.adj))
}

// Role returns the role requirement recorded for the page, or the
// empty string when the page is public or unknown.
func (g *Graph) Role(name string) string {
	return g.roles[name]
}

// Neighbors returns the pages directly reachable from name, sorted
// lexicographically. The returned slice is shared with the graph and
// must not be modified. Returns nil for unknown pages.
func (g *Graph) Neighbors(name string) []string {
	return g.adj[name]
}

// PageCount returns the number of pages in the graph.
func (g *Graph) PageCount() int { return len(g.adj) }

// TransitionCount returns the number of distinct directed transitions.
func (g *Graph) TransitionCount() int {
	n := 0
	for _, targets := range g.adj {
		n += len(targets)
	}
	return n
}
