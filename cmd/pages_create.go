package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yourorg/notioncli/internal/notion"
	"github.com/yourorg/notioncli/internal/props"
)

type pagesCreateOptions struct {
	parentID   string
	title      string
	content    string
	properties []string
}

func newPagesCreateCmd(globals *globalOptions) *cobra.Command {
	opts := &pagesCreateOptions{}

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a page under a parent page",
		RunE:  opts.run(globals),
	}

	cmd.Flags().StringVar(&opts.parentID, "parent", "", "Parent page ID (required)")
	cmd.Flags().StringVar(&opts.title, "title", "", "Page title (required)")
	cmd.Flags().StringVar(&opts.content, "content", "", "Body text, or a path to a text file")
	cmd.Flags().StringArrayVar(&opts.properties, "property", nil, "Extra property as name=value (repeatable)")

	return cmd
}

func (opts *pagesCreateOptions) run(globals *globalOptions) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		if opts.parentID == "" {
			return errors.New("--parent is required")
		}
		if opts.title == "" {
			return errors.New("--title is required")
		}

		properties := map[string]any{
			"title": map[string]any{"title": notion.TextRun(opts.title)},
		}
		names, values, err := parsePropertyFlags(opts.properties)
		if err != nil {
			return err
		}
		for _, name := range names {
			properties[name] = props.Infer(values[name])
		}

		req := notion.CreatePageRequest{
			Parent:     notion.Parent{Type: "page_id", PageID: opts.parentID},
			Properties: properties,
		}

		if opts.content != "" {
			text, err := contentArg(opts.content)
			if err != nil {
				return err
			}
			req.Children = paragraphBlocks(text)
		}

		client, err := buildClient(globals.profile)
		if err != nil {
			return err
		}
		page, err := client.CreatePage(cmd.Context(), req)
		if err != nil {
			return fmt.Errorf("create page: %w", err)
		}
		return printResult(cmd, globals, page)
	}
}
