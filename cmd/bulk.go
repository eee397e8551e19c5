package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yourorg/notioncli/internal/bulk"
)

func newBulkCmd(globals *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bulk",
		Short: "File-driven batch operations on pages",
	}

	cmd.AddCommand(newBulkCreateCmd(globals))
	cmd.AddCommand(newBulkUpdateCmd(globals))
	cmd.AddCommand(newBulkDeleteCmd(globals))
	cmd.AddCommand(newBulkListCmd(globals))

	return cmd
}

// reportBatch prints the success count and every collected failure. Failures
// do not change the exit status; the batch itself completed.
func reportBatch(cmd *cobra.Command, verb string, result bulk.Result, dryRun bool) {
	if dryRun {
		verb = "would have " + verb
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s %d items, %d failed\n", verb, result.Succeeded, len(result.Failures))
	for _, failure := range result.Failures {
		fmt.Fprintf(cmd.ErrOrStderr(), "failed: %s: %v\n", failure.Ref, failure.Err)
	}
}
