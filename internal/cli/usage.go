package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/derivative-programming/pagenav/pkg/usage"
)

// newUsageCmd creates the usage command. It replays user journeys over
// the navigation graph and reports how often each page is visited.
func newUsageCmd(root *rootOpts) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "usage <journeys.json>",
		Short: "Analyze page usage across user journeys",
		Long: `Read a JSON list of user journeys (start page and target page per
journey), walk the shortest path for each one, and count how many journeys
pass through each page. Journeys whose target is unreachable are reported
but do not fail the analysis.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUsage(cmd, root, args[0], output)
		},
	}

	cmd.Flags().StringVarP(&output, "out", "o", "", "output file (default: <output_dir>/page-usage.json)")
	return cmd
}

func runUsage(cmd *cobra.Command, root *rootOpts, journeyPath, output string) error {
	ctx := cmd.Context()
	eng, err := openEngine(ctx, root)
	if err != nil {
		return err
	}
	defer eng.Close()

	journeys, err := usage.ReadJourneysFile(journeyPath)
	if err != nil {
		return err
	}

	g, _, err := eng.graph(ctx, false)
	if err != nil {
		return err
	}

	prog := newProgress(loggerFromContext(ctx))
	result := usage.Compute(g, journeys)
	prog.done(fmt.Sprintf("Replayed %d journeys", len(journeys)))

	if output == "" {
		output = filepath.Join(eng.cfg.OutputDir, "page-usage.json")
	}
	if err := usage.WriteResultFile(result, output); err != nil {
		return err
	}

	broken := 0
	for _, p := range result.Paths {
		if !p.Reachable {
			broken++
		}
	}

	printSuccess("Analyzed %d journeys across %d pages", len(journeys), len(result.Usage))
	printFile(output)
	if broken > 0 {
		printWarning("%d journeys have no navigable path", broken)
	}
	return nil
}
