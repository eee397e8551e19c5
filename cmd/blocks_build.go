package cmd

import (
	"strings"

	"github.com/yourorg/notioncli/internal/notion"
)

// paragraphBlocks turns text into one paragraph block per non-empty line
// group. Blank lines separate paragraphs.
func paragraphBlocks(text string) []notion.Block {
	var blocks []notion.Block
	for _, para := range strings.Split(text, "\n\n") {
		para = strings.TrimSpace(para)
		if para == "" {
			continue
		}
		blocks = append(blocks, notion.Block{
			Object:    "block",
			Type:      "paragraph",
			Paragraph: &notion.TextBlock{RichText: notion.TextRun(para)},
		})
	}
	return blocks
}

func headingBlock(level int, text string) notion.Block {
	payload := &notion.TextBlock{RichText: notion.TextRun(text)}
	block := notion.Block{Object: "block"}
	switch level {
	case 1:
		block.Type = "heading_1"
		block.Heading1 = payload
	case 3: //nolint:mnd // heading levels are 1..3
		block.Type = "heading_3"
		block.Heading3 = payload
	default:
		block.Type = "heading_2"
		block.Heading2 = payload
	}
	return block
}

func bulletBlock(text string) notion.Block {
	return notion.Block{
		Object:           "block",
		Type:             "bulleted_list_item",
		BulletedListItem: &notion.TextBlock{RichText: notion.TextRun(text)},
	}
}

func todoBlock(text string, checked bool) notion.Block {
	return notion.Block{
		Object: "block",
		Type:   "to_do",
		ToDo:   &notion.ToDoBlock{RichText: notion.TextRun(text), Checked: checked},
	}
}

func codeBlock(text, language string) notion.Block {
	if language == "" {
		language = "plain text"
	}
	return notion.Block{
		Object: "block",
		Type:   "code",
		Code:   &notion.CodeBlock{RichText: notion.TextRun(text), Language: language},
	}
}

func quoteBlock(text string) notion.Block {
	return notion.Block{
		Object: "block",
		Type:   "quote",
		Quote:  &notion.TextBlock{RichText: notion.TextRun(text)},
	}
}

func dividerBlock() notion.Block {
	return notion.Block{
		Object:  "block",
		Type:    "divider",
		Divider: &struct{}{},
	}
}
