package commands

import (
	"github.com/spf13/cobra"
)

// newInstallCmd installs every dependency declared in the manifest.
func (c *CLI) newInstallCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "install",
		Short: "Validate and install all declared dependencies",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			result, report, err := c.app.Install(cmd.Context())
			if report != nil {
				RenderReport(cmd.OutOrStdout(), report)
			}
			if err != nil {
				return err
			}
			RenderInstallResult(cmd.OutOrStdout(), result)
			return nil
		},
	}
}

// newAddCmd declares a dependency from its identity URI and installs it,
// restoring the manifest if anything fails.
func (c *CLI) newAddCmd() *cobra.Command {
	var alias string

	cmd := &cobra.Command{
		Use:   "add <actr-uri>",
		Short: "Add a dependency by actr:// URI and install it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, report, err := c.app.AddDependency(cmd.Context(), args[0], alias)
			if report != nil {
				RenderReport(cmd.OutOrStdout(), report)
			}
			if err != nil {
				return err
			}
			RenderInstallResult(cmd.OutOrStdout(), result)
			return nil
		},
	}
	cmd.Flags().StringVar(&alias, "alias", "", "Local alias for the dependency (defaults to the service name)")
	return cmd
}
