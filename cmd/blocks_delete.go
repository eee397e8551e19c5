package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

type blocksDeleteOptions struct {
	yes bool
}

func newBlocksDeleteCmd(globals *globalOptions) *cobra.Command {
	opts := &blocksDeleteOptions{}

	cmd := &cobra.Command{
		Use:   "delete <block-id>",
		Short: "Delete (archive) a block",
		Args:  cobra.ExactArgs(1),
		RunE:  opts.run(globals),
	}

	cmd.Flags().BoolVarP(&opts.yes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}

func (opts *blocksDeleteOptions) run(globals *globalOptions) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if !opts.yes {
			ok, err := confirm(cmd, fmt.Sprintf("Delete block %s?", args[0]))
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
		if err := client.DeleteBlock(cmd.Context(), args[0]); err != nil {
			return fmt.Errorf("delete block: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Deleted block %s\n", args[0])
		return nil
	}
}
