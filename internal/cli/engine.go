package cli

import (
	"context"
	"fmt"

	"github.com/derivative-programming/pagenav/pkg/config"
	"github.com/derivative-programming/pagenav/pkg/nav"
	"github.com/derivative-programming/pagenav/pkg/pipeline"
)

// engine bundles the loaded configuration, the pipeline runner, and the
// start-page side file for one command invocation.
type engine struct {
	cfg    config.Config
	runner *pipeline.Runner
	starts *config.StartPageFile
}

// openEngine loads configuration, opens the configured cache backend,
// and reads the start-page side file. Callers must Close the engine.
func openEngine(ctx context.Context, opts *rootOpts) (*engine, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, err
	}
	if opts.model != "" {
		cfg.Model = opts.model
	}
	if cfg.Model == "" {
		return nil, fmt.Errorf("no model file: pass --model or set model in %s", config.DefaultFileName)
	}

	c, err := cfg.Cache.OpenCache(ctx)
	if err != nil {
		return nil, fmt.Errorf("open cache: %w", err)
	}

	starts, err := config.LoadStartPages(cfg.ResolveStartPageFile())
	if err != nil {
		_ = c.Close()
		return nil, err
	}

	return &engine{
		cfg:    cfg,
		runner: pipeline.NewRunner(c, nil, loggerFromContext(ctx)),
		starts: starts,
	}, nil
}

// pipelineOptions assembles pipeline options from config and flags.
func (e *engine) pipelineOptions(ctx context.Context, refresh bool) pipeline.Options {
	return pipeline.Options{
		ModelPath: e.cfg.Model,
		Starts:    e.starts.Starts,
		Refresh:   refresh,
		Logger:    loggerFromContext(ctx),
	}
}

// graph extracts the model and builds the navigation graph without
// requiring start pages.
func (e *engine) graph(ctx context.Context, refresh bool) (*nav.Graph, string, error) {
	pages, err := e.runner.Extract(ctx, e.pipelineOptions(ctx, refresh))
	if err != nil {
		return nil, "", err
	}
	return e.runner.BuildGraph(ctx, pages), pipeline.PagesHash(pages), nil
}

// distances runs the full extract, build, and compute pipeline.
func (e *engine) distances(ctx context.Context, refresh bool) (*pipeline.Result, error) {
	return e.runner.Execute(ctx, e.pipelineOptions(ctx, refresh))
}

// Close releases the cache backend.
func (e *engine) Close() error {
	return e.runner.Close()
}
