package nav

import (
	"errors"
	"fmt"
	"maps"
	"slices"
)

// ErrNoStartPages is returned by [ComputeDistances] when the start-page
// mapping is empty. Distances are meaningless without at least one
// start page, so the batch fails fast instead of emitting a full set of
// unreachable records.
var ErrNoStartPages = errors.New("no start pages configured")

// StartPages maps a role name to the page designated as that role's
// entry point. The mapping is externally configured and treated as
// read-only input to the engine.
type StartPages map[string]string

// DistanceRecord is the per-page result of a batch computation: the
// minimum hop count from the nearest applicable start page, or
// [Unreachable] when no start page reaches the page.
type DistanceRecord struct {
	Page     string `json:"destinationPage"`
	Distance int    `json:"distance"`
}

// RoleIssue reports a start-page configuration problem for a single
// role. The affected role contributes no distances; other roles still
// do.
type RoleIssue struct {
	Role string // role whose start page is misconfigured
	Page string // configured page name absent from the graph
}

func (i RoleIssue) String() string {
	return fmt.Sprintf("role %q: start page %q not in graph", i.Role, i.Page)
}

// BatchResult holds the output of [ComputeDistances]: one record per
// page sorted by page name, plus any per-role configuration issues
// encountered along the way.
type BatchResult struct {
	Records []DistanceRecord
	Skipped []RoleIssue // roles whose start page was not found
}

// ComputeDistances computes one distance record per page in the graph
// from the per-role start-page mapping.
//
// A single BFS tree is computed per valid start page and each page
// takes the minimum distance across the trees; output is identical to
// evaluating every page independently but costs O(S x (V+E)) instead
// of O(P x S x (V+E)).
//
// Returns [ErrNoStartPages] when starts is empty. Roles whose start
// page is absent from the graph are recorded in the result's Skipped
// list and do not contribute; remaining roles still do. When every role
// is skipped, all records carry [Unreachable].
//
// The computation is a pure function of its inputs: identical graph and
// mapping yield identical records.
func ComputeDistances(g *Graph, starts StartPages) (*BatchResult, error) {
	if len(starts) == 0 {
		return nil, ErrNoStartPages
	}

	result := &BatchResult{}

	var trees []map[string]int
	for _, role := range slices.Sorted(maps.Keys(starts)) {
		page := starts[role]
		if !g.HasPage(page) {
			result.Skipped = append(result.Skipped, RoleIssue{Role: role, Page: page})
			continue
		}
		trees = append(trees, g.distanceTree(page))
	}

	for _, page := range g.Pages() {
		best := Unreachable
		for _, tree := range trees {
			if d, ok := tree[page]; ok && (best == Unreachable || d < best) {
				best = d
			}
		}
		result.Records = append(result.Records, DistanceRecord{Page: page, Distance: best})
	}

	return result, nil
}
