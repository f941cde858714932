package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/derivative-programming/pagenav/pkg/nav"
	"github.com/derivative-programming/pagenav/pkg/render"
)

const (
	formatDOT = "dot"
	formatSVG = "svg"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output    string // output file path
	format    string // "dot" or "svg"
	distances bool   // include distance labels
}

// newRenderCmd creates the render command for visualizing the
// navigation graph. Start pages are highlighted and, when distance
// labels are enabled, unreachable pages are drawn dashed.
func newRenderCmd(root *rootOpts) *cobra.Command {
	opts := renderOpts{format: formatSVG}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the navigation graph as DOT or SVG",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.format != formatDOT && opts.format != formatSVG {
				return fmt.Errorf("invalid format: %q (must be one of: dot, svg)", opts.format)
			}
			return runRender(cmd, root, &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "out", "o", "", "output file (default: <output_dir>/page-graph.<format>)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", formatSVG, "output format: dot or svg")
	cmd.Flags().BoolVar(&opts.distances, "distances", false, "label each page with its distance from the nearest start page")
	return cmd
}

func runRender(cmd *cobra.Command, root *rootOpts, opts *renderOpts) error {
	ctx := cmd.Context()
	eng, err := openEngine(ctx, root)
	if err != nil {
		return err
	}
	defer eng.Close()

	g, hash, err := eng.graph(ctx, false)
	if err != nil {
		return err
	}

	renderOpts := render.Options{Starts: eng.starts.Starts}
	var records []nav.DistanceRecord
	if opts.distances {
		batch, _, err := eng.runner.ComputeWithCacheInfo(ctx, g, hash, eng.starts.Starts, false)
		if err != nil {
			return err
		}
		records = batch.Records
		renderOpts.Distances = make(map[string]int, len(records))
		for _, rec := range records {
			renderOpts.Distances[rec.Page] = rec.Distance
		}
		renderOpts.ShowDistances = true
	}

	dot := render.ToDOT(g, renderOpts)

	data := []byte(dot)
	if opts.format == formatSVG {
		sp := newSpinnerWithContext(ctx, "Rendering SVG...")
		sp.Start()
		data, err = render.RenderSVG(dot)
		sp.Stop()
		if err != nil {
			return err
		}
	}

	out := opts.output
	if out == "" {
		out = filepath.Join(eng.cfg.OutputDir, "page-graph."+opts.format)
	}
	if err := os.WriteFile(out, data, 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	printSuccess("Rendered %d pages", g.PageCount())
	printStats(g.PageCount(), g.TransitionCount(), false)
	if renderOpts.ShowDistances {
		printDetail("%d of %d pages reachable", reachablePages(records), len(records))
	}
	printFile(out)
	return nil
}

// reachablePages counts pages with a non-negative distance.
func reachablePages(records []nav.DistanceRecord) int {
	n := 0
	for _, rec := range records {
		if rec.Distance != nav.Unreachable {
			n++
		}
	}
	return n
}
