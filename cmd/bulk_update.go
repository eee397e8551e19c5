package cmd

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/yourorg/notioncli/internal/bulk"
)

type bulkUpdateOptions struct {
	input  string
	dryRun bool
}

func newBulkUpdateCmd(globals *globalOptions) *cobra.Command {
	opts := &bulkUpdateOptions{}

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update pages from a CSV or JSON file keyed by id",
		RunE:  opts.run(globals),
	}

	cmd.Flags().StringVar(&opts.input, "input", "", "Input file, .csv or .json (required)")
	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "Validate and report without writing")

	return cmd
}

func (opts *bulkUpdateOptions) run(globals *globalOptions) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		if opts.input == "" {
			return errors.New("--input is required")
		}

		records, err := bulk.LoadRecords(opts.input)
		if err != nil {
			return err
		}

		client, err := buildClient(globals.profile)
		if err != nil {
			return err
		}
		result := bulk.UpdatePages(cmd.Context(), client, records, opts.dryRun)
		reportBatch(cmd, "updated", result, opts.dryRun)
		return nil
	}
}
