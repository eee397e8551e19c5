package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yourorg/notioncli/internal/bulk"
)

type bulkCreateOptions struct {
	input      string
	databaseID string
	dryRun     bool
}

func newBulkCreateCmd(globals *globalOptions) *cobra.Command {
	opts := &bulkCreateOptions{}

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create database pages from a CSV or JSON file",
		RunE:  opts.run(globals),
	}

	cmd.Flags().StringVar(&opts.input, "input", "", "Input file, .csv or .json (required)")
	cmd.Flags().StringVar(&opts.databaseID, "db", "", "Target database ID (required)")
	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "Validate and report without writing")

	return cmd
}

func (opts *bulkCreateOptions) run(globals *globalOptions) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		if opts.input == "" {
			return errors.New("--input is required")
		}
		if opts.databaseID == "" {
			return errors.New("--db is required")
		}

		records, err := bulk.LoadRecords(opts.input)
		if err != nil {
			return err
		}

		client, err := buildClient(globals.profile)
		if err != nil {
			return err
		}
		result, err := bulk.CreatePages(cmd.Context(), client, opts.databaseID, records, opts.dryRun)
		if err != nil {
			return fmt.Errorf("bulk create: %w", err)
		}
		reportBatch(cmd, "created", result, opts.dryRun)
		return nil
	}
}
