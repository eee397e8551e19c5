package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yourorg/notioncli/internal/notion"
)

func newDBListCmd(globals *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List databases visible to the integration",
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := buildClient(globals.profile)
			if err != nil {
				return err
			}
			results, err := client.SearchAll(cmd.Context(), notion.SearchRequest{
				Filter: &notion.SearchFilter{Property: "object", Value: "database"},
			})
			if err != nil {
				return fmt.Errorf("list databases: %w", err)
			}
			return printResult(cmd, globals, results)
		},
	}
}
