package cmd

import "github.com/spf13/cobra"

func newBlocksCmd(globals *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "blocks",
		Short: "Work with Notion blocks",
	}

	cmd.AddCommand(newBlocksChildrenCmd(globals))
	cmd.AddCommand(newBlocksAppendCmd(globals))
	cmd.AddCommand(newBlocksUpdateCmd(globals))
	cmd.AddCommand(newBlocksDeleteCmd(globals))

	return cmd
}
