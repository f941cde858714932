package cli

import (
	"errors"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/derivative-programming/pagenav/pkg/nav"
	"github.com/derivative-programming/pagenav/pkg/report"
)

// distancesOpts holds the command-line flags for the distances command.
type distancesOpts struct {
	output  string // output file path for the distance side file
	refresh bool   // bypass the cache and recompute
}

// newDistancesCmd creates the distances command. It runs the full
// extract → build → compute pipeline and writes the distance side file.
func newDistancesCmd(root *rootOpts) *cobra.Command {
	opts := distancesOpts{}

	cmd := &cobra.Command{
		Use:   "distances",
		Short: "Compute page distances from each role's start page",
		Long: `Compute, for every page in the model, the minimum number of clicks
needed to reach it from any role's start page, and write the result as a
JSON side file. Pages no start page can reach are recorded with distance -1.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDistances(cmd, root, &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "out", "o", "", "output file (default: <output_dir>/page-distances.json)")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "bypass the cache and recompute")
	return cmd
}

func runDistances(cmd *cobra.Command, root *rootOpts, opts *distancesOpts) error {
	ctx := cmd.Context()
	eng, err := openEngine(ctx, root)
	if err != nil {
		return err
	}
	defer eng.Close()

	sp := newSpinnerWithContext(ctx, "Computing distances...")
	sp.Start()

	result, err := eng.distances(ctx, opts.refresh)
	sp.Stop()
	if err != nil {
		if errors.Is(err, nav.ErrNoStartPages) {
			printError("No start pages configured in %s", eng.starts.Path())
			printNextStep("Set one with", "pagenav start set <role> <page>")
		}
		return err
	}

	out := opts.output
	if out == "" {
		out = filepath.Join(eng.cfg.OutputDir, "page-distances.json")
	}
	if err := report.WriteDistancesFile(report.NewDistances(result.Batch.Records, time.Now()), out); err != nil {
		return err
	}

	printSuccess("Computed distances for %d pages", len(result.Batch.Records))
	printStats(result.Stats.PageCount, result.Stats.TransitionCount, result.CacheInfo.DistancesHit)
	printFile(out)

	for _, issue := range result.Batch.Skipped {
		printWarning("Skipped role: %s", issue)
	}
	return nil
}
