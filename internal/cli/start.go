package cli

import (
	"github.com/spf13/cobra"

	"github.com/derivative-programming/pagenav/pkg/errors"
)

// newStartCmd creates the start command group for managing per-role
// start pages in the side file next to the model.
func newStartCmd(root *rootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "start",
		Short: "Manage per-role start pages",
	}

	cmd.AddCommand(newStartSetCmd(root))
	cmd.AddCommand(newStartUnsetCmd(root))
	cmd.AddCommand(newStartListCmd(root))
	return cmd
}

func newStartSetCmd(root *rootOpts) *cobra.Command {
	return &cobra.Command{
		Use:   "set <role> <page>",
		Short: "Set the start page for a role",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			role, page := args[0], args[1]
			if err := errors.ValidateRoleName(role); err != nil {
				return err
			}
			if err := errors.ValidatePageName(page); err != nil {
				return err
			}

			ctx := cmd.Context()
			eng, err := openEngine(ctx, root)
			if err != nil {
				return err
			}
			defer eng.Close()

			// Warn, but allow, pages the model does not know yet.
			if g, _, err := eng.graph(ctx, false); err == nil && !g.HasPage(page) {
				printWarning("Page %q is not in the model", page)
			}

			eng.starts.Set(role, page)
			if err := eng.starts.Save(); err != nil {
				return err
			}
			printSuccess("Start page for %s is now %s", StyleHighlight.Render(role), StyleValue.Render(page))
			printFile(eng.starts.Path())
			return nil
		},
	}
}

func newStartUnsetCmd(root *rootOpts) *cobra.Command {
	return &cobra.Command{
		Use:   "unset <role>",
		Short: "Remove the start page for a role",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, err := openEngine(cmd.Context(), root)
			if err != nil {
				return err
			}
			defer eng.Close()

			role := args[0]
			if _, ok := eng.starts.Starts[role]; !ok {
				printInfo("No start page configured for %s", role)
				return nil
			}
			eng.starts.Remove(role)
			if err := eng.starts.Save(); err != nil {
				return err
			}
			printSuccess("Removed start page for %s", StyleHighlight.Render(role))
			return nil
		},
	}
}

func newStartListCmd(root *rootOpts) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List configured start pages",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, err := openEngine(cmd.Context(), root)
			if err != nil {
				return err
			}
			defer eng.Close()

			if len(eng.starts.Starts) == 0 {
				printInfo("No start pages configured")
				printNextStep("Set one with", "pagenav start set <role> <page>")
				return nil
			}
			for _, role := range eng.starts.Roles() {
				printKeyValue(role, eng.starts.Starts[role])
			}
			return nil
		},
	}
}
