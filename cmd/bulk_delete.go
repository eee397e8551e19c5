package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yourorg/notioncli/internal/bulk"
)

type bulkDeleteOptions struct {
	input  string
	dryRun bool
	yes    bool
}

func newBulkDeleteCmd(globals *globalOptions) *cobra.Command {
	opts := &bulkDeleteOptions{}

	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Archive pages listed in a CSV or JSON file",
		RunE:  opts.run(globals),
	}

	cmd.Flags().StringVar(&opts.input, "input", "", "Input file, .csv or .json (required)")
	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "Validate and report without writing")
	cmd.Flags().BoolVarP(&opts.yes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}

func (opts *bulkDeleteOptions) run(globals *globalOptions) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		if opts.input == "" {
			return errors.New("--input is required")
		}

		records, err := bulk.LoadRecords(opts.input)
		if err != nil {
			return err
		}

		if !opts.yes && !opts.dryRun {
			ok, err := confirm(cmd, fmt.Sprintf("Archive %d pages?", len(records)))
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
		result := bulk.ArchivePages(cmd.Context(), client, records, opts.dryRun)
		reportBatch(cmd, "archived", result, opts.dryRun)
		return nil
	}
}
