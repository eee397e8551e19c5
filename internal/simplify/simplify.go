// Package simplify shapes typed Notion records into display values. Each
// entity kind gets one projection; Auto dispatches on the record type so the
// command layer can hand any result straight to the renderer.
package simplify

import (
	"fmt"
	"sort"
	"strings"

	"github.com/yourorg/notioncli/internal/display"
	"github.com/yourorg/notioncli/internal/notion"
	"github.com/yourorg/notioncli/internal/props"
)

// Auto routes a record to its projection. Unrecognized values render as-is.
func Auto(v any) display.Value {
	switch t := v.(type) {
	case display.Value:
		return t
	case notion.Page:
		return Page(t)
	case []notion.Page:
		return Pages(t)
	case notion.Database:
		return Database(t)
	case []notion.Database:
		items := make([]display.Value, 0, len(t))
		for _, db := range t {
			items = append(items, Database(db))
		}
		return display.List(items...)
	case []notion.Block:
		return Blocks(t)
	case []notion.SearchResult:
		return SearchResults(t)
	case notion.User:
		return User(t)
	case []notion.User:
		return Users(t)
	case notion.Comment:
		return Comment(t)
	case []notion.Comment:
		return Comments(t)
	default:
		return display.FromAny(v)
	}
}

// Page projects a page into {id, created_time, last_edited_time, archived,
// url, properties, parent?}. Property names sort lexically since the decoded
// map carries no order.
func Page(p notion.Page) display.Value {
	properties := display.NewMap()
	for _, name := range sortedKeys(p.Properties) {
		properties = properties.Set(name, props.Simplify(p.Properties[name]))
	}

	out := display.NewMap().
		Set("id", display.Text(p.ID)).
		Set("created_time", display.Text(p.CreatedTime)).
		Set("last_edited_time", display.Text(p.LastEditedTime)).
		Set("archived", display.Bool(p.Archived)).
		Set("url", display.Text(p.URL)).
		Set("properties", properties)
	if parent := parentValue(p.Parent); !parent.IsNull() {
		out = out.Set("parent", parent)
	}
	return out
}

// Pages projects a sequence of pages, typically a database query result.
func Pages(pages []notion.Page) display.Value {
	items := make([]display.Value, 0, len(pages))
	for _, p := range pages {
		items = append(items, Page(p))
	}
	return display.List(items...)
}

// Database projects database metadata with per-property schema summaries.
func Database(db notion.Database) display.Value {
	properties := display.NewMap()
	for _, name := range sortedKeys(db.Properties) {
		properties = properties.Set(name, schemaSummary(db.Properties[name]))
	}

	out := display.NewMap().
		Set("id", display.Text(db.ID)).
		Set("title", display.Text(notion.PlainText(db.Title))).
		Set("created_time", display.Text(db.CreatedTime)).
		Set("last_edited_time", display.Text(db.LastEditedTime)).
		Set("archived", display.Bool(db.Archived)).
		Set("url", display.Text(db.URL)).
		Set("properties", properties)
	if parent := parentValue(db.Parent); !parent.IsNull() {
		out = out.Set("parent", parent)
	}
	return out
}

func schemaSummary(schema notion.PropertySchema) display.Value {
	out := display.NewMap().
		Set("type", display.Text(schema.Type)).
		Set("id", display.Text(schema.ID))

	var options *notion.SelectSchema
	switch schema.Type {
	case "select":
		options = schema.Select
	case "multi_select":
		options = schema.MultiSelect
	}
	if options != nil {
		names := make([]display.Value, 0, len(options.Options))
		for _, opt := range options.Options {
			names = append(names, display.Text(opt.Name))
		}
		out = out.Set("options", display.List(names...))
	}
	if schema.Type == "relation" && schema.Relation != nil {
		out = out.Set("database_id", display.Text(schema.Relation.DatabaseID))
	}
	return out
}

// Blocks projects blocks into {type, id, content, has_children?}.
func Blocks(blocks []notion.Block) display.Value {
	items := make([]display.Value, 0, len(blocks))
	for _, b := range blocks {
		item := display.NewMap().
			Set("type", display.Text(b.Type)).
			Set("id", display.Text(b.ID)).
			Set("content", display.Text(BlockContent(b)))
		if b.HasChildren {
			item = item.Set("has_children", display.Bool(true))
		}
		items = append(items, item)
	}
	return display.List(items...)
}

// BlockContent extracts the human-readable content of a block: its rich
// text, "[lang] text" for code, the URL for media, empty otherwise.
func BlockContent(b notion.Block) string {
	if tb := textPayload(b); tb != nil {
		return notion.PlainText(tb.RichText)
	}
	switch b.Type {
	case "to_do":
		if b.ToDo == nil {
			return ""
		}
		return notion.PlainText(b.ToDo.RichText)
	case "code":
		if b.Code == nil {
			return ""
		}
		text := notion.PlainText(b.Code.RichText)
		if b.Code.Language != "" {
			return fmt.Sprintf("[%s] %s", b.Code.Language, text)
		}
		return text
	case "image":
		return b.Image.URLString()
	case "video":
		return b.Video.URLString()
	case "file":
		return b.File.URLString()
	case "pdf":
		return b.PDF.URLString()
	default:
		return ""
	}
}

func textPayload(b notion.Block) *notion.TextBlock {
	switch b.Type {
	case "paragraph":
		return b.Paragraph
	case "heading_1":
		return b.Heading1
	case "heading_2":
		return b.Heading2
	case "heading_3":
		return b.Heading3
	case "bulleted_list_item":
		return b.BulletedListItem
	case "numbered_list_item":
		return b.NumberedListItem
	case "quote":
		return b.Quote
	case "callout":
		return b.Callout
	case "toggle":
		return b.Toggle
	default:
		return nil
	}
}

// SearchResults projects search hits into {type, id, url, last_edited,
// title} with the first-title-property scan and "Untitled" fallback.
func SearchResults(results []notion.SearchResult) display.Value {
	items := make([]display.Value, 0, len(results))
	for _, r := range results {
		items = append(items, display.NewMap().
			Set("type", display.Text(r.Object)).
			Set("id", display.Text(r.ID)).
			Set("url", display.Text(r.URL)).
			Set("last_edited", display.Text(datePart(r.LastEditedTime))).
			Set("title", display.Text(r.DisplayTitle())))
	}
	return display.List(items...)
}

// User projects a workspace user. Person variants add email, bots their
// workspace name.
func User(u notion.User) display.Value {
	out := display.NewMap().
		Set("id", display.Text(u.ID)).
		Set("type", display.Text(u.Type)).
		Set("name", display.Text(u.Name))
	if u.Person != nil && u.Person.Email != "" {
		out = out.Set("email", display.Text(u.Person.Email))
	}
	if u.Bot != nil && u.Bot.WorkspaceName != "" {
		out = out.Set("workspace", display.Text(u.Bot.WorkspaceName))
	}
	return out
}

// Users projects a user listing.
func Users(users []notion.User) display.Value {
	items := make([]display.Value, 0, len(users))
	for _, u := range users {
		items = append(items, User(u))
	}
	return display.List(items...)
}

// Comment projects a discussion comment.
func Comment(c notion.Comment) display.Value {
	out := display.NewMap().
		Set("id", display.Text(c.ID)).
		Set("created_time", display.Text(c.CreatedTime)).
		Set("author", display.Text(authorLabel(c.CreatedBy))).
		Set("text", display.Text(notion.PlainText(c.RichText)))
	if c.DiscussionID != "" {
		out = out.Set("discussion_id", display.Text(c.DiscussionID))
	}
	return out
}

// Comments projects a comment listing.
func Comments(comments []notion.Comment) display.Value {
	items := make([]display.Value, 0, len(comments))
	for _, c := range comments {
		items = append(items, Comment(c))
	}
	return display.List(items...)
}

func authorLabel(ref notion.UserReference) string {
	if ref.Name != "" {
		return ref.Name
	}
	return ref.ID
}

func parentValue(p notion.Parent) display.Value {
	switch p.Type {
	case "":
		return display.Null()
	case "workspace":
		return display.NewMap().Set("type", display.Text("workspace"))
	default:
		return display.NewMap().
			Set("type", display.Text(p.Type)).
			Set("id", display.Text(p.ID()))
	}
}

// datePart keeps the calendar date of an RFC 3339 timestamp.
func datePart(ts string) string {
	if i := strings.IndexByte(ts, 'T'); i > 0 {
		return ts[:i]
	}
	return ts
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
