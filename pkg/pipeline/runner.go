package pipeline

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"slices"
	"time"

	"github.com/charmbracelet/log"

	"github.com/derivative-programming/pagenav/pkg/cache"
	"github.com/derivative-programming/pagenav/pkg/model"
	"github.com/derivative-programming/pagenav/pkg/nav"
	"github.com/derivative-programming/pagenav/pkg/observability"
)

// Runner encapsulates pipeline execution with caching.
// Both CLI and API can use this to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute runs the complete extract → build → compute pipeline with caching.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	r.applyLogger(&opts)

	result := &Result{}

	// Stage 1: Extract
	extractStart := time.Now()
	pages, extractHit, err := r.ExtractWithCacheInfo(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("extract: %w", err)
	}
	result.Pages = pages
	result.Stats.ExtractTime = time.Since(extractStart)
	result.Stats.PageCount = len(pages)
	result.CacheInfo.ExtractHit = extractHit
	result.GraphHash = PagesHash(pages)

	r.Logger.Info("extracted pages",
		"pages", len(pages),
		"duration", result.Stats.ExtractTime)

	// Stage 2: Build
	buildStart := time.Now()
	g := r.BuildGraph(ctx, pages)
	result.Graph = g
	result.Stats.BuildTime = time.Since(buildStart)
	result.Stats.TransitionCount = g.TransitionCount()

	r.Logger.Info("built navigation graph",
		"pages", g.PageCount(),
		"transitions", g.TransitionCount(),
		"duration", result.Stats.BuildTime)

	// Stage 3: Compute
	computeStart := time.Now()
	batch, distHit, err := r.ComputeWithCacheInfo(ctx, g, result.GraphHash, opts.Starts, opts.Refresh)
	if err != nil {
		return nil, fmt.Errorf("compute: %w", err)
	}
	result.Batch = batch
	result.Stats.ComputeTime = time.Since(computeStart)
	result.CacheInfo.DistancesHit = distHit

	r.Logger.Info("computed distances",
		"records", len(batch.Records),
		"skipped", len(batch.Skipped),
		"duration", result.Stats.ComputeTime)

	return result, nil
}

// ExtractWithCacheInfo reads the model with caching and returns cache hit info.
func (r *Runner) ExtractWithCacheInfo(ctx context.Context, opts Options) ([]nav.Page, bool, error) {
	if err := opts.ValidateForExtract(); err != nil {
		return nil, false, err
	}
	r.applyLogger(&opts)

	data, err := os.ReadFile(opts.ModelPath)
	if err != nil {
		return nil, false, fmt.Errorf("read model: %w", err)
	}
	cacheKey := r.Keyer.GraphKey(cache.Hash(data))

	// Try cache first (unless refresh requested)
	if !opts.Refresh {
		if cached, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			var pages []nav.Page
			if err := json.Unmarshal(cached, &pages); err == nil {
				observability.Cache().OnCacheHit(ctx, "graph")
				return pages, true, nil // Cache hit
			}
		}
		observability.Cache().OnCacheMiss(ctx, "graph")
	}

	observability.Engine().OnExtractStart(ctx, opts.ModelPath)
	start := time.Now()

	doc, err := model.Read(bytes.NewReader(data))
	if err != nil {
		observability.Engine().OnExtractComplete(ctx, opts.ModelPath, 0, time.Since(start), err)
		return nil, false, err
	}
	pages := model.ExtractPages(doc)

	observability.Engine().OnExtractComplete(ctx, opts.ModelPath, len(pages), time.Since(start), nil)

	// Cache the result
	if encoded, err := json.Marshal(pages); err == nil {
		_ = r.Cache.Set(ctx, cacheKey, encoded, cache.TTLGraph)
		observability.Cache().OnCacheSet(ctx, "graph", len(encoded))
	}

	return pages, false, nil // Cache miss
}

// Extract is a convenience wrapper that calls ExtractWithCacheInfo and
// discards the cache hit info.
func (r *Runner) Extract(ctx context.Context, opts Options) ([]nav.Page, error) {
	pages, _, err := r.ExtractWithCacheInfo(ctx, opts)
	return pages, err
}

// BuildGraph assembles the navigation graph from extracted pages.
// Building is cheap and deterministic, so it is never cached.
func (r *Runner) BuildGraph(ctx context.Context, pages []nav.Page) *nav.Graph {
	observability.Engine().OnBuildStart(ctx, len(pages))
	start := time.Now()
	g := nav.Build(pages)
	observability.Engine().OnBuildComplete(ctx, g.PageCount(), g.TransitionCount(), time.Since(start))
	return g
}

// ComputeWithCacheInfo runs batch distance analysis with caching and returns
// cache hit info. The graphHash identifies the graph content (see Result.GraphHash).
func (r *Runner) ComputeWithCacheInfo(ctx context.Context, g *nav.Graph, graphHash string, starts nav.StartPages, refresh bool) (*nav.BatchResult, bool, error) {
	cacheKey := r.Keyer.DistanceKey(graphHash, cache.DistanceKeyOpts{
		StartsHash: startsHash(starts),
	})

	// Try cache first
	if !refresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			var batch nav.BatchResult
			if err := json.Unmarshal(data, &batch); err == nil {
				observability.Cache().OnCacheHit(ctx, "distances")
				return &batch, true, nil // Cache hit
			}
		}
		observability.Cache().OnCacheMiss(ctx, "distances")
	}

	observability.Engine().OnComputeStart(ctx, len(starts))
	start := time.Now()

	batch, err := nav.ComputeDistances(g, starts)
	if err != nil {
		observability.Engine().OnComputeComplete(ctx, 0, 0, time.Since(start), err)
		return nil, false, err
	}
	observability.Engine().OnComputeComplete(ctx, len(batch.Records), len(batch.Skipped), time.Since(start), nil)

	// Cache the result
	if data, err := json.Marshal(batch); err == nil {
		_ = r.Cache.Set(ctx, cacheKey, data, cache.TTLDistances)
		observability.Cache().OnCacheSet(ctx, "distances", len(data))
	}

	return batch, false, nil // Cache miss
}

// Compute is a convenience wrapper that calls ComputeWithCacheInfo and
// discards the cache hit info.
func (r *Runner) Compute(ctx context.Context, g *nav.Graph, graphHash string, starts nav.StartPages) (*nav.BatchResult, error) {
	batch, _, err := r.ComputeWithCacheInfo(ctx, g, graphHash, starts, false)
	return batch, err
}

// PathWithCacheInfo finds the shortest path between two pages with caching.
func (r *Runner) PathWithCacheInfo(ctx context.Context, g *nav.Graph, graphHash, from, to string) ([]string, bool) {
	cacheKey := r.Keyer.PathKey(graphHash, from, to)

	if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
		var path []string
		if err := json.Unmarshal(data, &path); err == nil {
			observability.Cache().OnCacheHit(ctx, "path")
			return path, true
		}
	}
	observability.Cache().OnCacheMiss(ctx, "path")

	path := g.Path(from, to)
	if data, err := json.Marshal(path); err == nil {
		_ = r.Cache.Set(ctx, cacheKey, data, cache.TTLPath)
		observability.Cache().OnCacheSet(ctx, "path", len(data))
	}
	return path, false
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}

// PagesHash computes a content hash over extracted pages that is stable
// under model reordering.
func PagesHash(pages []nav.Page) string {
	sorted := slices.Clone(pages)
	slices.SortFunc(sorted, func(a, b nav.Page) int {
		if a.Name < b.Name {
			return -1
		}
		if a.Name > b.Name {
			return 1
		}
		return 0
	})
	data, _ := json.Marshal(sorted)
	return cache.Hash(data)
}

// startsHash computes a content hash over the role start-page mapping.
// encoding/json sorts map keys, so the hash is deterministic.
func startsHash(starts nav.StartPages) string {
	data, _ := json.Marshal(starts)
	return cache.Hash(data)
}
