package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yourorg/notioncli/internal/notion"
)

type searchOptions struct {
	objectType string
	sort       string
	limit      int
}

func newSearchCmd(globals *globalOptions) *cobra.Command {
	opts := &searchOptions{sort: "relevance"}

	cmd := &cobra.Command{
		Use:   "search [query]",
		Short: "Search pages and databases across the workspace",
		Args:  cobra.MaximumNArgs(1),
		RunE:  opts.run(globals),
	}

	cmd.Flags().StringVar(&opts.objectType, "type", "", "Restrict results: page|database")
	cmd.Flags().StringVar(&opts.sort, "sort", opts.sort, "Result order: relevance|last_edited")
	cmd.Flags().IntVar(&opts.limit, "limit", 0, "Maximum number of results (0 = all)")

	return cmd
}

func (opts *searchOptions) run(globals *globalOptions) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		req, err := opts.buildRequest(args)
		if err != nil {
			return err
		}

		client, err := buildClient(globals.profile)
		if err != nil {
			return err
		}

		results, err := client.SearchAll(cmd.Context(), req)
		if err != nil {
			return fmt.Errorf("search: %w", err)
		}
		if opts.limit > 0 && len(results) > opts.limit {
			results = results[:opts.limit]
		}

		return printResult(cmd, globals, results)
	}
}

func (opts *searchOptions) buildRequest(args []string) (notion.SearchRequest, error) {
	req := notion.SearchRequest{}
	if len(args) == 1 {
		req.Query = args[0]
	}

	switch opts.objectType {
	case "":
	case "page", "database":
		req.Filter = &notion.SearchFilter{Property: "object", Value: opts.objectType}
	default:
		return notion.SearchRequest{}, fmt.Errorf("unknown --type %q (want page or database)", opts.objectType)
	}

	switch opts.sort {
	case "", "relevance":
	case "last_edited":
		req.Sort = &notion.SearchSort{Direction: "descending", Timestamp: "last_edited_time"}
	default:
		return notion.SearchRequest{}, fmt.Errorf("unknown --sort %q (want relevance or last_edited)", opts.sort)
	}

	return req, nil
}
