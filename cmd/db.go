package cmd

import "github.com/spf13/cobra"

func newDBCmd(globals *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "db",
		Short: "Work with Notion databases",
	}

	cmd.AddCommand(newDBListCmd(globals))
	cmd.AddCommand(newDBGetCmd(globals))
	cmd.AddCommand(newDBQueryCmd(globals))
	cmd.AddCommand(newDBCreateCmd(globals))
	cmd.AddCommand(newDBCreatePageCmd(globals))
	cmd.AddCommand(newDBExportCmd(globals))

	return cmd
}
