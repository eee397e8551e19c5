package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/brittonhayes/notionmd"
	"github.com/spf13/cobra"

	"github.com/yourorg/notioncli/internal/notion"
)

//nolint:govet // fieldalignment: flags grouped by block kind.
type blocksAppendOptions struct {
	markdownPath string
	text         string
	heading      string
	headingLevel int
	bullet       string
	todo         string
	checked      bool
	code         string
	language     string
	quote        string
	divider      bool
}

func newBlocksAppendCmd(globals *globalOptions) *cobra.Command {
	opts := &blocksAppendOptions{headingLevel: 2} //nolint:mnd // default heading level

	cmd := &cobra.Command{
		Use:   "append <block-or-page-id>",
		Short: "Append content blocks to a page or block",
		Args:  cobra.ExactArgs(1),
		RunE:  opts.run(globals),
	}

	cmd.Flags().StringVar(&opts.markdownPath, "md", "", "Path to a Markdown file to convert and append")
	cmd.Flags().StringVar(&opts.text, "text", "", "Append a paragraph with this text")
	cmd.Flags().StringVar(&opts.heading, "heading", "", "Append a heading with this text")
	cmd.Flags().IntVar(&opts.headingLevel, "heading-level", opts.headingLevel, "Heading level 1-3")
	cmd.Flags().StringVar(&opts.bullet, "bullet", "", "Append a bulleted list item")
	cmd.Flags().StringVar(&opts.todo, "todo", "", "Append a to-do item")
	cmd.Flags().BoolVar(&opts.checked, "checked", false, "Mark the to-do item done")
	cmd.Flags().StringVar(&opts.code, "code", "", "Append a code block with this content")
	cmd.Flags().StringVar(&opts.language, "language", "", "Language tag for --code")
	cmd.Flags().StringVar(&opts.quote, "quote", "", "Append a quote block")
	cmd.Flags().BoolVar(&opts.divider, "divider", false, "Append a divider")

	return cmd
}

func (opts *blocksAppendOptions) run(globals *globalOptions) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		blocks, err := opts.buildBlocks()
		if err != nil {
			return err
		}
		if len(blocks) == 0 {
			return errors.New("nothing to append; pass --md or a block flag")
		}

		client, err := buildClient(globals.profile)
		if err != nil {
			return err
		}
		if _, err := client.AppendBlockChildren(cmd.Context(), args[0], blocks); err != nil {
			return fmt.Errorf("append blocks: %w", err)
		}
		if _, err := fmt.Fprintf(cmd.OutOrStdout(), "Appended %d blocks\n", len(blocks)); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
		return nil
	}
}

func (opts *blocksAppendOptions) buildBlocks() ([]notion.Block, error) {
	if opts.markdownPath != "" {
		return loadMarkdownBlocks(opts.markdownPath)
	}

	var blocks []notion.Block
	if opts.text != "" {
		blocks = append(blocks, paragraphBlocks(opts.text)...)
	}
	if opts.heading != "" {
		blocks = append(blocks, headingBlock(opts.headingLevel, opts.heading))
	}
	if opts.bullet != "" {
		blocks = append(blocks, bulletBlock(opts.bullet))
	}
	if opts.todo != "" {
		blocks = append(blocks, todoBlock(opts.todo, opts.checked))
	}
	if opts.code != "" {
		blocks = append(blocks, codeBlock(opts.code, opts.language))
	}
	if opts.quote != "" {
		blocks = append(blocks, quoteBlock(opts.quote))
	}
	if opts.divider {
		blocks = append(blocks, dividerBlock())
	}
	return blocks, nil
}

func loadMarkdownBlocks(path string) ([]notion.Block, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- reading user-supplied markdown by design
	if err != nil {
		return nil, fmt.Errorf("read markdown: %w", err)
	}

	blocksJSON, err := notionmd.ConvertToJSON(string(data))
	if err != nil {
		return nil, fmt.Errorf("convert markdown: %w", err)
	}

	encoded, err := json.Marshal(blocksJSON)
	if err != nil {
		return nil, fmt.Errorf("encode blocks: %w", err)
	}

	var blocks []notion.Block
	if err := json.Unmarshal(encoded, &blocks); err != nil {
		return nil, fmt.Errorf("decode blocks: %w", err)
	}

	return blocks, nil
}
