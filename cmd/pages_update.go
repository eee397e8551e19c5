package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yourorg/notioncli/internal/notion"
	"github.com/yourorg/notioncli/internal/props"
)

type pagesUpdateOptions struct {
	title      string
	properties []string
	archive    bool
	restore    bool
}

func newPagesUpdateCmd(globals *globalOptions) *cobra.Command {
	opts := &pagesUpdateOptions{}

	cmd := &cobra.Command{
		Use:   "update <page-id>",
		Short: "Update a page's title, properties or archived state",
		Args:  cobra.ExactArgs(1),
		RunE:  opts.run(globals),
	}

	cmd.Flags().StringVar(&opts.title, "title", "", "New page title")
	cmd.Flags().StringArrayVar(&opts.properties, "property", nil, "Property as name=value (repeatable)")
	cmd.Flags().BoolVar(&opts.archive, "archive", false, "Archive the page")
	cmd.Flags().BoolVar(&opts.restore, "restore", false, "Restore an archived page")

	return cmd
}

func (opts *pagesUpdateOptions) run(globals *globalOptions) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		req, err := opts.buildRequest()
		if err != nil {
			return err
		}

		client, err := buildClient(globals.profile)
		if err != nil {
			return err
		}
		page, err := client.UpdatePage(cmd.Context(), args[0], req)
		if err != nil {
			return fmt.Errorf("update page: %w", err)
		}
		return printResult(cmd, globals, page)
	}
}

func (opts *pagesUpdateOptions) buildRequest() (notion.UpdatePageRequest, error) {
	if opts.archive && opts.restore {
		return notion.UpdatePageRequest{}, errors.New("--archive and --restore are mutually exclusive")
	}

	req := notion.UpdatePageRequest{}

	properties := map[string]any{}
	if opts.title != "" {
		properties["title"] = map[string]any{"title": notion.TextRun(opts.title)}
	}
	names, values, err := parsePropertyFlags(opts.properties)
	if err != nil {
		return notion.UpdatePageRequest{}, err
	}
	for _, name := range names {
		properties[name] = props.Infer(values[name])
	}
	if len(properties) > 0 {
		req.Properties = properties
	}

	switch {
	case opts.archive:
		archived := true
		req.Archived = &archived
	case opts.restore:
		archived := false
		req.Archived = &archived
	}

	if req.Properties == nil && req.Archived == nil {
		return notion.UpdatePageRequest{}, errors.New("nothing to update; pass --title, --property, --archive or --restore")
	}
	return req, nil
}
