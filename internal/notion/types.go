package notion

import (
	"encoding/json"
	"fmt"
	"strings"
)

// RichText is a Notion rich text run. PlainText carries the rendered text
// regardless of the run type.
type RichText struct {
	Text        *Text        `json:"text,omitempty"`
	Annotations *Annotations `json:"annotations,omitempty"`
	Href        *string      `json:"href,omitempty"`
	PlainText   string       `json:"plain_text,omitempty"`
	Type        string       `json:"type,omitempty"`
}

// Text contains the raw textual content of a rich text run.
type Text struct {
	Link *struct {
		URL string `json:"url"`
	} `json:"link,omitempty"`
	Content string `json:"content"`
}

// Annotations describe styling for rich text content.
type Annotations struct {
	Color         string `json:"color"`
	Bold          bool   `json:"bold"`
	Italic        bool   `json:"italic"`
	Strikethrough bool   `json:"strikethrough"`
	Underline     bool   `json:"underline"`
	Code          bool   `json:"code"`
}

// PlainText concatenates the plain text of every run in order. An empty
// sequence yields the empty string; extraction never fails.
func PlainText(runs []RichText) string {
	var sb strings.Builder
	for _, r := range runs {
		sb.WriteString(r.PlainText)
	}
	return sb.String()
}

// TextRun builds a single rich text run carrying the supplied content,
// suitable for create/update request payloads.
func TextRun(content string) []RichText {
	return []RichText{{
		Type: "text",
		Text: &Text{Content: content},
	}}
}

// PropertyValue represents a typed page property. The Type tag determines
// which projection carries the payload; unrecognized types survive in Raw.
//
//nolint:govet // fieldalignment: layout keeps related property projections together.
type PropertyValue struct {
	Relation    []RelationReference `json:"relation,omitempty"`
	People      []UserReference     `json:"people,omitempty"`
	MultiSelect []SelectValue       `json:"multi_select,omitempty"`
	RichText    []RichText          `json:"rich_text,omitempty"`
	Title       []RichText          `json:"title,omitempty"`
	Raw         json.RawMessage     `json:"-"`
	Select      *SelectValue        `json:"select,omitempty"`
	Date        *DateValue          `json:"date,omitempty"`
	Number      *float64            `json:"number,omitempty"`
	Checkbox    *bool               `json:"checkbox,omitempty"`
	URL         *string             `json:"url,omitempty"`
	Email       *string             `json:"email,omitempty"`
	Phone       *string             `json:"phone_number,omitempty"`
	ID          string              `json:"id,omitempty"`
	Type        string              `json:"type"`
}

// UnmarshalJSON keeps the original JSON alongside the decoded projections so
// unknown property types pass through untouched.
func (p *PropertyValue) UnmarshalJSON(data []byte) error {
	type alias PropertyValue
	var tmp alias
	if err := json.Unmarshal(data, &tmp); err != nil {
		return fmt.Errorf("unmarshal property value: %w", err)
	}
	*p = PropertyValue(tmp)
	p.Raw = append(p.Raw[:0], data...)
	return nil
}

// RelationReference references a related page.
type RelationReference struct {
	ID string `json:"id"`
}

// SelectValue represents a select or multi-select option.
type SelectValue struct {
	ID    string `json:"id,omitempty"`
	Name  string `json:"name"`
	Color string `json:"color,omitempty"`
}

// DateValue represents date/time spans.
type DateValue struct {
	End   *string `json:"end,omitempty"`
	Start string  `json:"start"`
}

// UserReference references a Notion user inside a people property.
type UserReference struct {
	Object string `json:"object,omitempty"`
	ID     string `json:"id"`
	Name   string `json:"name,omitempty"`
	Type   string `json:"type,omitempty"`
}

// Parent captures the owning container of a page or database. Exactly one of
// the id fields is set depending on Type (workspace parents carry none).
type Parent struct {
	Type       string `json:"type"`
	PageID     string `json:"page_id,omitempty"`
	DatabaseID string `json:"database_id,omitempty"`
	BlockID    string `json:"block_id,omitempty"`
	Workspace  bool   `json:"workspace,omitempty"`
}

// ID returns the parent's identifier for whichever variant is populated.
func (p Parent) ID() string {
	switch p.Type {
	case "page_id":
		return p.PageID
	case "database_id":
		return p.DatabaseID
	case "block_id":
		return p.BlockID
	default:
		return ""
	}
}

// Icon holds either emoji or external file icon data.
type Icon struct {
	External *ExternalFile `json:"external,omitempty"`
	Emoji    *string       `json:"emoji,omitempty"`
	Type     string        `json:"type"`
}

// ExternalFile references an externally hosted file by URL.
type ExternalFile struct {
	URL string `json:"url"`
}

// Cover wraps an external cover image.
type Cover struct {
	External *ExternalFile `json:"external,omitempty"`
	Type     string        `json:"type"`
}

// Page represents a Notion page as returned by the API.
//
//nolint:govet // fieldalignment: field order mirrors the API payload.
type Page struct {
	Properties     map[string]PropertyValue `json:"properties"`
	Parent         Parent                   `json:"parent"`
	Icon           *Icon                    `json:"icon,omitempty"`
	Cover          *Cover                   `json:"cover,omitempty"`
	CreatedTime    string                   `json:"created_time"`
	LastEditedTime string                   `json:"last_edited_time"`
	ID             string                   `json:"id"`
	Object         string                   `json:"object"`
	URL            string                   `json:"url"`
	Archived       bool                     `json:"archived"`
}

// PropertySchema describes a database property definition: the type tag plus
// type-specific metadata such as option lists and relation targets.
//
//nolint:govet // fieldalignment: grouped by payload kind for readability.
type PropertySchema struct {
	Select      *SelectSchema   `json:"select,omitempty"`
	MultiSelect *SelectSchema   `json:"multi_select,omitempty"`
	Relation    *RelationSchema `json:"relation,omitempty"`
	Raw         json.RawMessage `json:"-"`
	ID          string          `json:"id,omitempty"`
	Name        string          `json:"name,omitempty"`
	Type        string          `json:"type"`
}

// UnmarshalJSON retains the raw schema payload for unknown property kinds.
func (s *PropertySchema) UnmarshalJSON(data []byte) error {
	type alias PropertySchema
	var tmp alias
	if err := json.Unmarshal(data, &tmp); err != nil {
		return fmt.Errorf("unmarshal property schema: %w", err)
	}
	*s = PropertySchema(tmp)
	s.Raw = append(s.Raw[:0], data...)
	return nil
}

// SelectSchema lists the declared options of a select or multi-select.
type SelectSchema struct {
	Options []SelectValue `json:"options"`
}

// RelationSchema points at the related database.
type RelationSchema struct {
	DatabaseID string `json:"database_id"`
}

// Database represents a Notion database definition.
//
//nolint:govet // fieldalignment: field order mirrors the API payload.
type Database struct {
	Properties     map[string]PropertySchema `json:"properties"`
	Title          []RichText                `json:"title"`
	Parent         Parent                    `json:"parent"`
	CreatedTime    string                    `json:"created_time"`
	LastEditedTime string                    `json:"last_edited_time"`
	ID             string                    `json:"id"`
	Object         string                    `json:"object"`
	URL            string                    `json:"url"`
	Archived       bool                      `json:"archived"`
	IsInline       bool                      `json:"is_inline,omitempty"`
}

// Block represents a Notion block. The full payload for the declared type
// stays in Raw; the typed projections cover the content the CLI surfaces.
//
//nolint:govet // fieldalignment: field order mirrors the API payload.
type Block struct {
	Paragraph        *TextBlock      `json:"paragraph,omitempty"`
	Heading1         *TextBlock      `json:"heading_1,omitempty"`
	Heading2         *TextBlock      `json:"heading_2,omitempty"`
	Heading3         *TextBlock      `json:"heading_3,omitempty"`
	BulletedListItem *TextBlock      `json:"bulleted_list_item,omitempty"`
	NumberedListItem *TextBlock      `json:"numbered_list_item,omitempty"`
	Quote            *TextBlock      `json:"quote,omitempty"`
	Callout          *TextBlock      `json:"callout,omitempty"`
	Toggle           *TextBlock      `json:"toggle,omitempty"`
	ToDo             *ToDoBlock      `json:"to_do,omitempty"`
	Code             *CodeBlock      `json:"code,omitempty"`
	Image            *MediaBlock     `json:"image,omitempty"`
	Video            *MediaBlock     `json:"video,omitempty"`
	File             *MediaBlock     `json:"file,omitempty"`
	PDF              *MediaBlock     `json:"pdf,omitempty"`
	Divider          *struct{}       `json:"divider,omitempty"`
	Raw              json.RawMessage `json:"-"`
	ID               string          `json:"id,omitempty"`
	Object           string          `json:"object,omitempty"`
	Type             string          `json:"type"`
	HasChildren      bool            `json:"has_children,omitempty"`
}

// UnmarshalJSON preserves the raw block payload so unhandled block types can
// still be displayed.
func (b *Block) UnmarshalJSON(data []byte) error {
	type alias Block
	var tmp alias
	if err := json.Unmarshal(data, &tmp); err != nil {
		return fmt.Errorf("unmarshal block: %w", err)
	}
	*b = Block(tmp)
	b.Raw = append(b.Raw[:0], data...)
	return nil
}

// TextBlock carries rich text shared across paragraph-like block types.
type TextBlock struct {
	RichText []RichText `json:"rich_text"`
	Color    string     `json:"color,omitempty"`
}

// ToDoBlock models todo items.
//
//nolint:govet // fieldalignment: natural field grouping preferred.
type ToDoBlock struct {
	RichText []RichText `json:"rich_text"`
	Checked  bool       `json:"checked"`
}

// CodeBlock models code content.
//
//nolint:govet // fieldalignment: simple struct, padding optimisation unnecessary.
type CodeBlock struct {
	RichText []RichText `json:"rich_text"`
	Caption  []RichText `json:"caption,omitempty"`
	Language string     `json:"language,omitempty"`
}

// MediaBlock models image/video/file/pdf blocks. The URL lives under either
// the "external" or "file" variant depending on hosting.
type MediaBlock struct {
	External *ExternalFile `json:"external,omitempty"`
	File     *HostedFile   `json:"file,omitempty"`
	Caption  []RichText    `json:"caption,omitempty"`
	Type     string        `json:"type,omitempty"`
}

// HostedFile is a Notion-hosted file with an expiring URL.
type HostedFile struct {
	URL        string `json:"url"`
	ExpiryTime string `json:"expiry_time,omitempty"`
}

// URLString returns whichever URL the media block carries.
func (m *MediaBlock) URLString() string {
	if m == nil {
		return ""
	}
	if m.External != nil {
		return m.External.URL
	}
	if m.File != nil {
		return m.File.URL
	}
	return ""
}

// User represents a workspace member or integration bot.
//
//nolint:govet // fieldalignment: field order mirrors the API payload.
type User struct {
	Person    *Person `json:"person,omitempty"`
	Bot       *Bot    `json:"bot,omitempty"`
	AvatarURL *string `json:"avatar_url,omitempty"`
	ID        string  `json:"id"`
	Object    string  `json:"object"`
	Type      string  `json:"type,omitempty"`
	Name      string  `json:"name,omitempty"`
}

// Person carries the person variant payload.
type Person struct {
	Email string `json:"email,omitempty"`
}

// Bot carries the bot variant payload.
type Bot struct {
	Owner         *BotOwner `json:"owner,omitempty"`
	WorkspaceName string    `json:"workspace_name,omitempty"`
}

// BotOwner describes who controls a bot integration.
type BotOwner struct {
	User      *User  `json:"user,omitempty"`
	Type      string `json:"type"`
	Workspace bool   `json:"workspace,omitempty"`
}

// Comment represents a discussion comment attached to a page or block.
//
//nolint:govet // fieldalignment: field order mirrors the API payload.
type Comment struct {
	RichText       []RichText    `json:"rich_text"`
	Parent         Parent        `json:"parent"`
	CreatedBy      UserReference `json:"created_by"`
	CreatedTime    string        `json:"created_time"`
	LastEditedTime string        `json:"last_edited_time,omitempty"`
	ID             string        `json:"id"`
	Object         string        `json:"object"`
	DiscussionID   string        `json:"discussion_id,omitempty"`
}

// SearchResult is a page or database returned by workspace search. The
// Object tag discriminates which projection is populated.
//
//nolint:govet // fieldalignment: field order mirrors the API payload.
type SearchResult struct {
	Properties     map[string]PropertyValue `json:"properties,omitempty"`
	Title          []RichText               `json:"title,omitempty"`
	Parent         Parent                   `json:"parent,omitempty"`
	CreatedTime    string                   `json:"created_time,omitempty"`
	LastEditedTime string                   `json:"last_edited_time,omitempty"`
	ID             string                   `json:"id"`
	Object         string                   `json:"object"`
	URL            string                   `json:"url,omitempty"`
	Archived       bool                     `json:"archived,omitempty"`
}

// DisplayTitle derives the title to show for a search result. Databases use
// their rich text title; pages take the first title-typed property, falling
// back to "Untitled" when none exists or its text is empty. Notion schemas
// may name the title property anything, so no fixed name is assumed.
func (r SearchResult) DisplayTitle() string {
	if r.Object == "database" {
		if title := PlainText(r.Title); title != "" {
			return title
		}
		return "Untitled"
	}
	return PageTitle(r.Properties)
}

// PageTitle scans page properties for the title-typed one and returns its
// plain text, or "Untitled" when the property is absent or empty.
func PageTitle(props map[string]PropertyValue) string {
	for _, prop := range props {
		if prop.Type == "title" {
			if title := PlainText(prop.Title); title != "" {
				return title
			}
			return "Untitled"
		}
	}
	return "Untitled"
}
