package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yourorg/notioncli/internal/config"
)

func newAuthLogoutCmd(globals *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Remove the stored token for the active profile",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := config.DeleteToken(globals.profile); err != nil {
				return fmt.Errorf("remove credentials: %w", err)
			}
			if _, err := fmt.Fprintf(
				cmd.OutOrStdout(),
				"Removed credentials for profile %q\n",
				globals.profile,
			); err != nil {
				return fmt.Errorf("write confirmation: %w", err)
			}
			return nil
		},
	}
}
