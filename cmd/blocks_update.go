package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yourorg/notioncli/internal/notion"
)

type blocksUpdateOptions struct {
	text    string
	check   bool
	uncheck bool
}

func newBlocksUpdateCmd(globals *globalOptions) *cobra.Command {
	opts := &blocksUpdateOptions{}

	cmd := &cobra.Command{
		Use:   "update <block-id>",
		Short: "Update a block's text or to-do state",
		Args:  cobra.ExactArgs(1),
		RunE:  opts.run(globals),
	}

	cmd.Flags().StringVar(&opts.text, "text", "", "Replace the block's text content")
	cmd.Flags().BoolVar(&opts.check, "check", false, "Mark a to-do block done")
	cmd.Flags().BoolVar(&opts.uncheck, "uncheck", false, "Mark a to-do block not done")

	return cmd
}

func (opts *blocksUpdateOptions) run(globals *globalOptions) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if opts.check && opts.uncheck {
			return errors.New("--check and --uncheck are mutually exclusive")
		}
		if opts.text == "" && !opts.check && !opts.uncheck {
			return errors.New("nothing to update; pass --text, --check or --uncheck")
		}

		client, err := buildClient(globals.profile)
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		payload, err := opts.buildPayload(ctx, client, args[0])
		if err != nil {
			return err
		}

		block, err := client.UpdateBlock(ctx, args[0], payload)
		if err != nil {
			return fmt.Errorf("update block: %w", err)
		}
		return printResult(cmd, globals, []notion.Block{block})
	}
}

// buildPayload patches under the block's existing type key, so the block is
// fetched first to learn its type.
func (opts *blocksUpdateOptions) buildPayload(
	ctx context.Context,
	client *notion.Client,
	blockID string,
) (map[string]any, error) {
	block, err := client.RetrieveBlock(ctx, blockID)
	if err != nil {
		return nil, fmt.Errorf("retrieve block: %w", err)
	}

	content := map[string]any{}
	if opts.text != "" {
		content["rich_text"] = notion.TextRun(opts.text)
	}
	if opts.check || opts.uncheck {
		if block.Type != "to_do" {
			return nil, fmt.Errorf("block %s is %q, not a to-do", blockID, block.Type)
		}
		content["checked"] = opts.check
	}
	if len(content) == 0 {
		return nil, errors.New("nothing to update for this block type")
	}
	return map[string]any{block.Type: content}, nil
}
