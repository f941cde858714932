// Package pkg provides the core libraries for pagenav navigation analysis.
//
// # Overview
//
// Pagenav reads an AppDNA application model, builds the directed graph of
// page-to-page navigation, and measures how many clicks each page is away
// from a role's start page. The pkg directory is organized into five main
// areas:
//
//  1. [model] - AppDNA model parsing and page extraction
//  2. [nav] - Graph structure, BFS distances and shortest paths
//  3. [report], [usage] - Side-file output and journey analysis
//  4. [cache], [config], [errors], [observability] - Infrastructure
//  5. [pipeline] - Orchestration (extract → build → compute)
//
// # Architecture
//
// The typical data flow through pagenav:
//
//	AppDNA model file
//	         ↓
//	    [model] package (extract pages and transitions)
//	         ↓
//	    [nav] package (graph structure + BFS queries)
//	         ↓
//	    [report] / [usage] / [render] packages
//	         ↓
//	    JSON side files, DOT/SVG output
//
// # Quick Start
//
// Compute distances for a model:
//
//	pages, err := model.ExtractFile("app-dna.json")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	g := nav.Build(pages)
//	batch, err := nav.ComputeDistances(g, nav.StartPages{"User": "TacLogin"})
//
// Or run the whole pipeline with caching through [pipeline.Runner].
package pkg
