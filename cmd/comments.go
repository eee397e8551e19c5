package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yourorg/notioncli/internal/notion"
)

func newCommentsCmd(globals *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "comments",
		Short: "Work with page comments",
	}

	cmd.AddCommand(newCommentsListCmd(globals))
	cmd.AddCommand(newCommentsAddCmd(globals))

	return cmd
}

func newCommentsListCmd(globals *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list <block-or-page-id>",
		Short: "List comments on a page or block",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := buildClient(globals.profile)
			if err != nil {
				return err
			}
			comments, err := client.ListAllComments(cmd.Context(), args[0], 0)
			if err != nil {
				return fmt.Errorf("list comments: %w", err)
			}
			return printResult(cmd, globals, comments)
		},
	}
}

type commentsAddOptions struct {
	text string
}

func newCommentsAddCmd(globals *globalOptions) *cobra.Command {
	opts := &commentsAddOptions{}

	cmd := &cobra.Command{
		Use:   "add <page-id>",
		Short: "Add a comment to a page",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.text == "" {
				return errors.New("--text is required")
			}
			client, err := buildClient(globals.profile)
			if err != nil {
				return err
			}
			comment, err := client.CreateComment(cmd.Context(), notion.CreateCommentRequest{
				Parent:   notion.Parent{Type: "page_id", PageID: args[0]},
				RichText: notion.TextRun(opts.text),
			})
			if err != nil {
				return fmt.Errorf("create comment: %w", err)
			}
			return printResult(cmd, globals, comment)
		},
	}

	cmd.Flags().StringVar(&opts.text, "text", "", "Comment text (required)")

	return cmd
}
