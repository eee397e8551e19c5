package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newDBGetCmd(globals *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "get <database-id>",
		Short: "Retrieve a database's metadata and schema",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := buildClient(globals.profile)
			if err != nil {
				return err
			}
			db, err := client.RetrieveDatabase(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("retrieve database: %w", err)
			}
			return printResult(cmd, globals, db)
		},
	}
}
