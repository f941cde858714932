package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/derivative-programming/pagenav/pkg/nav"
)

// newPathCmd creates the path command. It prints the shortest click
// path between two pages.
func newPathCmd(root *rootOpts) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "path <from> <to>",
		Short: "Show the shortest navigation path between two pages",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPath(cmd, root, args[0], args[1], asJSON)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the result as JSON")
	return cmd
}

func runPath(cmd *cobra.Command, root *rootOpts, from, to string, asJSON bool) error {
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

	for _, page := range []string{from, to} {
		if !g.HasPage(page) {
			printWarning("Page %q is not in the model", page)
		}
	}

	path, cached := eng.runner.PathWithCacheInfo(ctx, g, hash, from, to)
	distance := g.Distance(from, to)

	if asJSON {
		return json.NewEncoder(os.Stdout).Encode(map[string]any{
			"from":     from,
			"to":       to,
			"distance": distance,
			"path":     path,
		})
	}

	if distance == nav.Unreachable {
		printError("No path from %s to %s", StyleValue.Render(from), StyleValue.Render(to))
		return nil
	}

	steps := make([]string, len(path))
	for i, page := range path {
		steps[i] = StyleValue.Render(page)
	}
	printSuccess("%s clicks", StyleNumber.Render(fmt.Sprintf("%d", distance)))
	printDetail("%s", strings.Join(steps, " "+iconArrow+" "))
	if cached {
		printDetail("(cached)")
	}
	return nil
}
