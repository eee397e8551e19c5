package cmd

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/yourorg/notioncli/internal/bulk"
)

type bulkListOptions struct {
	input string
}

func newBulkListCmd(globals *globalOptions) *cobra.Command {
	opts := &bulkListOptions{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Fetch and display pages listed in a CSV or JSON file",
		RunE:  opts.run(globals),
	}

	cmd.Flags().StringVar(&opts.input, "input", "", "Input file with page ids, .csv or .json (required)")

	return cmd
}

func (opts *bulkListOptions) run(globals *globalOptions) func(*cobra.Command, []string) error {
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
		pages, result := bulk.FetchPages(cmd.Context(), client, records)
		if len(result.Failures) > 0 {
			reportBatch(cmd, "fetched", result, false)
		}
		return printResult(cmd, globals, pages)
	}
}
