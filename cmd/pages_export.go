package cmd

import (
	"fmt"
	"html"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yourorg/notioncli/internal/notion"
	"github.com/yourorg/notioncli/internal/simplify"
)

type pagesExportOptions struct {
	out    string
	format string
}

func newPagesExportCmd(globals *globalOptions) *cobra.Command {
	opts := &pagesExportOptions{format: "markdown"}

	cmd := &cobra.Command{
		Use:   "export <page-id>",
		Short: "Export a page's content as markdown, HTML or plain text",
		Args:  cobra.ExactArgs(1),
		RunE:  opts.run(globals),
	}

	cmd.Flags().StringVar(&opts.out, "out", "", "Output file (stdout if omitted)")
	cmd.Flags().StringVar(&opts.format, "format", opts.format, "Export format: markdown|html|text")

	return cmd
}

func (opts *pagesExportOptions) run(globals *globalOptions) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if opts.format != "markdown" && opts.format != "html" && opts.format != "text" {
			return fmt.Errorf("unknown --format %q (want markdown, html or text)", opts.format)
		}

		client, err := buildClient(globals.profile)
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		page, err := client.RetrievePage(ctx, args[0])
		if err != nil {
			return fmt.Errorf("retrieve page: %w", err)
		}
		blocks, err := client.BlockChildrenAll(ctx, args[0], 0)
		if err != nil {
			return fmt.Errorf("list blocks: %w", err)
		}

		var sb strings.Builder
		title := notion.PageTitle(page.Properties)
		switch opts.format {
		case "markdown":
			fmt.Fprintf(&sb, "# %s\n\n", title)
			writeMarkdownBlocks(&sb, blocks)
		case "html":
			writeHTMLDocument(&sb, title, blocks)
		default:
			fmt.Fprintf(&sb, "%s\n\n", title)
			writeTextBlocks(&sb, blocks)
		}

		return opts.write(cmd, sb.String())
	}
}

func (opts *pagesExportOptions) write(cmd *cobra.Command, content string) error {
	var out io.Writer = cmd.OutOrStdout()
	if opts.out != "" {
		f, err := os.Create(opts.out) // #nosec G304 -- writing user-chosen export file by design
		if err != nil {
			return fmt.Errorf("create export file: %w", err)
		}
		defer f.Close() //nolint:errcheck // closed explicitly below
		if _, err := io.WriteString(f, content); err != nil {
			return fmt.Errorf("write export: %w", err)
		}
		if err := f.Close(); err != nil {
			return fmt.Errorf("close export file: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Exported to %s\n", opts.out)
		return nil
	}
	if _, err := io.WriteString(out, content); err != nil {
		return fmt.Errorf("write export: %w", err)
	}
	return nil
}

func writeMarkdownBlocks(sb *strings.Builder, blocks []notion.Block) {
	numbered := 0
	for _, b := range blocks {
		if b.Type == "numbered_list_item" {
			numbered++
		} else {
			numbered = 0
		}
		sb.WriteString(markdownLine(b, numbered))
	}
}

func markdownLine(b notion.Block, numbered int) string {
	content := simplify.BlockContent(b)
	switch b.Type {
	case "heading_1":
		return fmt.Sprintf("# %s\n\n", content)
	case "heading_2":
		return fmt.Sprintf("## %s\n\n", content)
	case "heading_3":
		return fmt.Sprintf("### %s\n\n", content)
	case "bulleted_list_item":
		return fmt.Sprintf("- %s\n", content)
	case "numbered_list_item":
		return fmt.Sprintf("%d. %s\n", numbered, content)
	case "to_do":
		mark := " "
		if b.ToDo != nil && b.ToDo.Checked {
			mark = "x"
		}
		return fmt.Sprintf("- [%s] %s\n", mark, content)
	case "code":
		lang := ""
		text := content
		if b.Code != nil {
			lang = b.Code.Language
			text = notion.PlainText(b.Code.RichText)
		}
		return fmt.Sprintf("```%s\n%s\n```\n\n", lang, text)
	case "quote":
		return fmt.Sprintf("> %s\n\n", content)
	case "divider":
		return "---\n\n"
	case "image", "video", "file", "pdf":
		if content == "" {
			return ""
		}
		return fmt.Sprintf("![%s](%s)\n\n", b.Type, content)
	default:
		if content == "" {
			return ""
		}
		return content + "\n\n"
	}
}

func writeHTMLDocument(sb *strings.Builder, title string, blocks []notion.Block) {
	escaped := html.EscapeString(title)
	fmt.Fprintf(sb, "<!DOCTYPE html>\n<html>\n<head><title>%s</title></head>\n<body>\n", escaped)
	fmt.Fprintf(sb, "<h1>%s</h1>\n", escaped)
	for _, b := range blocks {
		sb.WriteString(htmlLine(b))
	}
	sb.WriteString("</body>\n</html>\n")
}

func htmlLine(b notion.Block) string {
	content := html.EscapeString(simplify.BlockContent(b))
	switch b.Type {
	case "heading_1":
		return fmt.Sprintf("<h1>%s</h1>\n", content)
	case "heading_2":
		return fmt.Sprintf("<h2>%s</h2>\n", content)
	case "heading_3":
		return fmt.Sprintf("<h3>%s</h3>\n", content)
	case "bulleted_list_item", "numbered_list_item":
		return fmt.Sprintf("<li>%s</li>\n", content)
	case "to_do":
		mark := " "
		if b.ToDo != nil && b.ToDo.Checked {
			mark = "x"
		}
		return fmt.Sprintf("<li>[%s] %s</li>\n", mark, content)
	case "code":
		text := content
		if b.Code != nil {
			text = html.EscapeString(notion.PlainText(b.Code.RichText))
		}
		return fmt.Sprintf("<pre><code>%s</code></pre>\n", text)
	case "quote":
		return fmt.Sprintf("<blockquote>%s</blockquote>\n", content)
	case "divider":
		return "<hr>\n"
	case "image", "video", "file", "pdf":
		if content == "" {
			return ""
		}
		return fmt.Sprintf(`<p><a href="%s">%s</a></p>`+"\n", content, b.Type)
	default:
		if content == "" {
			return ""
		}
		return fmt.Sprintf("<p>%s</p>\n", content)
	}
}

func writeTextBlocks(sb *strings.Builder, blocks []notion.Block) {
	for _, b := range blocks {
		if content := simplify.BlockContent(b); content != "" {
			sb.WriteString(content)
			sb.WriteString("\n")
		}
	}
}
