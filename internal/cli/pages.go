package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/derivative-programming/pagenav/pkg/nav"
)

// pageRow is one row of the pages listing.
type pageRow struct {
	Name     string
	Role     string
	Targets  int
	Distance int
	HasDist  bool
}

// newPagesCmd creates the pages command. It lists every page in the
// model with its role, outgoing transition count, and (when start pages
// are configured) its distance from the nearest start page.
func newPagesCmd(root *rootOpts) *cobra.Command {
	var interactive bool

	cmd := &cobra.Command{
		Use:   "pages",
		Short: "List the pages in the model",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPages(cmd, root, interactive)
		},
	}

	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "browse pages in an interactive table")
	return cmd
}

func runPages(cmd *cobra.Command, root *rootOpts, interactive bool) error {
	ctx := cmd.Context()
	eng, err := openEngine(ctx, root)
	if err != nil {
		return err
	}
	defer eng.Close()

	g, _, err := eng.graph(ctx, false)
	if err != nil {
		return err
	}

	rows := collectPageRows(g, eng.starts.Starts)

	if interactive {
		model := newPageListModel(rows, g, eng.starts.Starts)
		_, err := tea.NewProgram(model).Run()
		return err
	}

	for _, row := range rows {
		printPageRow(row)
	}
	printNewline()
	printStats(g.PageCount(), g.TransitionCount(), false)
	return nil
}

// collectPageRows assembles the listing in sorted page order. Distances
// are filled in only when at least one start page is configured.
func collectPageRows(g *nav.Graph, starts nav.StartPages) []pageRow {
	var distances map[string]int
	if batch, err := nav.ComputeDistances(g, starts); err == nil {
		distances = make(map[string]int, len(batch.Records))
		for _, rec := range batch.Records {
			distances[rec.Page] = rec.Distance
		}
	}

	rows := make([]pageRow, 0, g.PageCount())
	for _, name := range g.Pages() {
		row := pageRow{
			Name:    name,
			Role:    g.Role(name),
			Targets: len(g.Neighbors(name)),
		}
		if distances != nil {
			row.Distance = distances[name]
			row.HasDist = true
		}
		rows = append(rows, row)
	}
	return rows
}

func printPageRow(row pageRow) {
	dist := StyleDim.Render("-")
	if row.HasDist {
		if row.Distance == nav.Unreachable {
			dist = StyleWarning.Render("unreachable")
		} else {
			dist = StyleNumber.Render(fmt.Sprintf("%d", row.Distance))
		}
	}
	role := row.Role
	if role == "" {
		role = StyleDim.Render("(none)")
	}
	fmt.Printf("  %-40s %-16s %3d targets  %s\n", StyleValue.Render(row.Name), role, row.Targets, dist)
}
