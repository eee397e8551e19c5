package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

type pagesDeleteOptions struct {
	yes bool
}

func newPagesDeleteCmd(globals *globalOptions) *cobra.Command {
	opts := &pagesDeleteOptions{}

	cmd := &cobra.Command{
		Use:   "delete <page-id>",
		Short: "Archive a page",
		Args:  cobra.ExactArgs(1),
		RunE:  opts.run(globals),
	}

	cmd.Flags().BoolVarP(&opts.yes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}

func (opts *pagesDeleteOptions) run(globals *globalOptions) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if !opts.yes {
			ok, err := confirm(cmd, fmt.Sprintf("Archive page %s?", args[0]))
			if err != nil {
				return err
			}
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), "Aborted")
				return nil
			}
		}

		client, err := buildClient(globals.profile)
		if err != nil {
			return err
		}
		if _, err := client.ArchivePage(cmd.Context(), args[0]); err != nil {
			return fmt.Errorf("archive page: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Archived page %s\n", args[0])
		return nil
	}
}
