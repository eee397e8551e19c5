package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yourorg/notioncli/internal/bulk"
	"github.com/yourorg/notioncli/internal/notion"
	"github.com/yourorg/notioncli/internal/schema"
)

type dbExportOptions struct {
	out    string
	format string
}

func newDBExportCmd(globals *globalOptions) *cobra.Command {
	opts := &dbExportOptions{}

	cmd := &cobra.Command{
		Use:   "export <database-id>",
		Short: "Export all pages of a database to CSV, JSON or text",
		Args:  cobra.ExactArgs(1),
		RunE:  opts.run(globals),
	}

	cmd.Flags().StringVar(&opts.out, "out", "", "Output file (required)")
	cmd.Flags().StringVar(&opts.format, "format", "", "Export format: csv|json|text (inferred from extension if omitted)")

	return cmd
}

func (opts *dbExportOptions) run(globals *globalOptions) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if opts.out == "" {
			return errors.New("--out is required")
		}
		format, err := bulk.ResolveExportFormat(opts.format, opts.out)
		if err != nil {
			return err
		}

		client, err := buildClient(globals.profile)
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		db, err := client.RetrieveDatabase(ctx, args[0])
		if err != nil {
			return fmt.Errorf("retrieve database: %w", err)
		}
		pages, err := client.QueryDatabaseAll(ctx, args[0], notion.QueryDatabaseRequest{})
		if err != nil {
			return fmt.Errorf("query database: %w", err)
		}

		if err := bulk.ExportPages(opts.out, format, schema.NewIndex(db), pages); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Exported %d pages to %s\n", len(pages), opts.out)
		return nil
	}
}
