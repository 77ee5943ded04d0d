package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.actr.dev/actr/internal/core/domain"
)

// newDiscoverCmd lists services advertised by the signaling server.
func (c *CLI) newDiscoverCmd() *cobra.Command {
	var (
		namePattern string
		version     string
		tags        []string
	)

	cmd := &cobra.Command{
		Use:   "discover",
		Short: "List services advertised by the signaling server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var filter *domain.ServiceFilter
			if namePattern != "" || version != "" || len(tags) > 0 {
				filter = &domain.ServiceFilter{
					NamePattern:  namePattern,
					VersionRange: version,
					Tags:         tags,
				}
			}

			services, err := c.app.Discover(cmd.Context(), filter)
			if err != nil {
				return err
			}
			if len(services) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no services found")
				return nil
			}
			RenderServices(cmd.OutOrStdout(), services)
			return nil
		},
	}
	cmd.Flags().StringVar(&namePattern, "name", "", "Glob pattern matched against service names")
	cmd.Flags().StringVar(&version, "version", "", "Version that must equal the advertised version or appear in its tags")
	cmd.Flags().StringSliceVar(&tags, "tag", nil, "Tags that must all be present (repeatable)")
	return cmd
}

// newValidateCmd runs the validation pipeline without installing.
func (c *CLI) newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate declared dependencies without writing anything",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			report, err := c.app.Validate(cmd.Context())
			if err != nil {
				return err
			}
			RenderReport(cmd.OutOrStdout(), report)
			if !report.IsSuccess() {
				return domain.ErrValidationFailed
			}
			return nil
		},
	}
}
