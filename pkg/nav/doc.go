// Package nav implements the page-navigation graph and distance engine.
//
// The engine answers two questions about a modeled application's pages:
// how many button presses it takes to reach a page from the nearest
// role start page, and which exact page sequence a user travels to get
// from one page to another.
//
// # Building a Graph
//
// A [Graph] is built once from a finite set of pages and is immutable
// afterwards. Each page contributes a node even when it has no outgoing
// transitions, so an unreachable page is distinguishable from a page the
// model never defined:
//
//	g := nav.Build([]nav.Page{
//	    {Name: "TacLogin", Targets: []string{"TacDashboard"}},
//	    {Name: "TacDashboard", Targets: []string{"CustomerList", "OrderList"}},
//	    {Name: "CustomerList"},
//	    {Name: "OrderList"},
//	})
//
// Transitions naming a page the model does not define are dropped
// silently: the model is externally maintained and may reference pages
// filtered out of the current extraction pass. Self-referential
// transitions are kept but never affect shortest-path results.
//
// # Queries
//
// [Graph.Distance] and [Graph.Path] run breadth-first search over the
// adjacency map. Distances are hop counts; [Unreachable] (-1) marks
// pages that cannot be reached or names absent from the graph. Neighbor
// lists are sorted at build time, so among equal-length paths the
// lexicographically first one is returned deterministically.
//
// [ComputeDistances] produces one distance record per page by taking,
// for each page, the minimum distance across one BFS tree per
// configured role start page.
//
// # Concurrency
//
// A built Graph holds no mutable state. Any number of goroutines may
// query the same Graph concurrently without synchronization.
package nav
