package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newPagesGetCmd(globals *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "get <page-id>",
		Short: "Retrieve a Notion page",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := buildClient(globals.profile)
			if err != nil {
				return err
			}
			page, err := client.RetrievePage(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("retrieve page: %w", err)
			}
			return printResult(cmd, globals, page)
		},
	}
}
