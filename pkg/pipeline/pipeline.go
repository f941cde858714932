// Package pipeline provides the core analysis pipeline for pagenav.
//
// This package implements the complete extract → build → compute pipeline
// that can be used by CLI and API components. By centralizing this logic,
// we ensure consistent behavior across all entry points and avoid code
// duplication.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Extract: Read the AppDNA model and collect its pages and transitions
//  2. Build: Assemble the page navigation graph
//  3. Compute: Run batch shortest-distance analysis from the role start pages
//
// Each stage can be run independently or as part of the complete pipeline.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{
//	    ModelPath: "app-dna.json",
//	    Starts:    nav.StartPages{"User": "TacLogin"},
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	records := result.Batch.Records
//
// Run individual stages:
//
//	// Extract only
//	pages, err := runner.Extract(ctx, opts)
//
//	// Build with existing pages
//	g := runner.BuildGraph(ctx, pages)
//
//	// Compute with existing graph
//	batch, err := runner.Compute(ctx, g, graphHash, starts)
package pipeline

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/derivative-programming/pagenav/pkg/nav"
)

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the analysis pipeline.
// This struct supports JSON serialization for API requests.
type Options struct {
	// ModelPath is the AppDNA model file to analyze.
	ModelPath string `json:"model_path"`

	// Starts maps role name to start page. When empty, Execute fails in
	// the compute stage; extract and build still work.
	Starts nav.StartPages `json:"starts,omitempty"`

	// Refresh bypasses the cache and recomputes all stages.
	Refresh bool `json:"refresh,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Pages are the pages extracted from the model.
	Pages []nav.Page

	// Graph is the navigation graph built from the pages.
	Graph *nav.Graph

	// GraphHash is the content hash of the extracted pages.
	GraphHash string

	// Batch holds the computed distance records and skipped roles.
	Batch *nav.BatchResult

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	PageCount       int
	TransitionCount int
	ExtractTime     time.Duration
	BuildTime       time.Duration
	ComputeTime     time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	ExtractHit   bool // Whether extracted pages came from cache
	DistancesHit bool // Whether distance records came from cache
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks required fields and applies defaults for the
// full pipeline. This method is idempotent - calling it multiple times has
// the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForExtract(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// ValidateForExtract checks required fields for model extraction.
func (o *Options) ValidateForExtract() error {
	if o.ModelPath == "" {
		return fmt.Errorf("model path is required")
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return nil
}
