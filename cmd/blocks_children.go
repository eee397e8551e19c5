package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newBlocksChildrenCmd(globals *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "children <block-or-page-id>",
		Short: "List the child blocks of a page or block",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := buildClient(globals.profile)
			if err != nil {
				return err
			}
			blocks, err := client.BlockChildrenAll(cmd.Context(), args[0], 0)
			if err != nil {
				return fmt.Errorf("list blocks: %w", err)
			}
			return printResult(cmd, globals, blocks)
		},
	}
}
