package simplify_test

import (
	"strings"
	"testing"

	"github.com/yourorg/notioncli/internal/display"
	"github.com/yourorg/notioncli/internal/notion"
	"github.com/yourorg/notioncli/internal/simplify"
)

func TestPageProjectionKeyOrder(t *testing.T) {
	num := 3.0
	page := notion.Page{
		ID:             "p1",
		CreatedTime:    "2024-01-01T00:00:00Z",
		LastEditedTime: "2024-01-02T00:00:00Z",
		URL:            "https://notion.so/p1",
		Parent:         notion.Parent{Type: "database_id", DatabaseID: "db1"},
		Properties: map[string]notion.PropertyValue{
			"Name":  {Type: "title", Title: []notion.RichText{{PlainText: "Task"}}},
			"Count": {Type: "number", Number: &num},
		},
	}

	v := simplify.Page(page)
	wantKeys := []string{"id", "created_time", "last_edited_time", "archived", "url", "properties", "parent"}
	gotKeys := v.Keys()
	if len(gotKeys) != len(wantKeys) {
		t.Fatalf("keys = %v, want %v", gotKeys, wantKeys)
	}
	for i := range wantKeys {
		if gotKeys[i] != wantKeys[i] {
			t.Fatalf("key %d = %q, want %q", i, gotKeys[i], wantKeys[i])
		}
	}

	props, _ := v.Get("properties")
	// Property names sort lexically for stable output.
	if keys := props.Keys(); keys[0] != "Count" || keys[1] != "Name" {
		t.Fatalf("property order = %v", keys)
	}

	parent, _ := v.Get("parent")
	if id, _ := parent.Get("id"); id.TextValue() != "db1" {
		t.Fatalf("parent id = %#v", id)
	}
}

func TestPageWithoutParentOmitsKey(t *testing.T) {
	v := simplify.Page(notion.Page{ID: "p1"})
	if _, ok := v.Get("parent"); ok {
		t.Fatalf("unexpected parent key: %v", v.Keys())
	}
}

func TestDatabaseProjectionIncludesSchema(t *testing.T) {
	db := notion.Database{
		ID:    "db1",
		Title: []notion.RichText{{PlainText: "Tasks"}},
		Properties: map[string]notion.PropertySchema{
			"Status": {
				Type: "select",
				ID:   "s1",
				Select: &notion.SelectSchema{Options: []notion.SelectValue{
					{Name: "Open"}, {Name: "Done"},
				}},
			},
			"Linked": {
				Type:     "relation",
				ID:       "r1",
				Relation: &notion.RelationSchema{DatabaseID: "db2"},
			},
		},
	}

	v := simplify.Database(db)
	if title, _ := v.Get("title"); title.TextValue() != "Tasks" {
		t.Fatalf("title = %#v", title)
	}

	props, _ := v.Get("properties")
	status, ok := props.Get("Status")
	if !ok {
		t.Fatalf("missing Status schema")
	}
	options, _ := status.Get("options")
	if options.Len() != 2 || options.Items()[0].TextValue() != "Open" {
		t.Fatalf("options = %#v", options)
	}

	linked, _ := props.Get("Linked")
	if dbID, _ := linked.Get("database_id"); dbID.TextValue() != "db2" {
		t.Fatalf("relation target = %#v", dbID)
	}
}

func TestBlockContent(t *testing.T) {
	tests := []struct {
		name  string
		block notion.Block
		want  string
	}{
		{
			name: "paragraph",
			block: notion.Block{
				Type:      "paragraph",
				Paragraph: &notion.TextBlock{RichText: []notion.RichText{{PlainText: "Hello"}}},
			},
			want: "Hello",
		},
		{
			name: "code with language",
			block: notion.Block{
				Type: "code",
				Code: &notion.CodeBlock{
					RichText: []notion.RichText{{PlainText: "x := 1"}},
					Language: "go",
				},
			},
			want: "[go] x := 1",
		},
		{
			name: "image uses url",
			block: notion.Block{
				Type:  "image",
				Image: &notion.MediaBlock{External: &notion.ExternalFile{URL: "https://x/a.png"}},
			},
			want: "https://x/a.png",
		},
		{
			name:  "divider is empty",
			block: notion.Block{Type: "divider"},
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := simplify.BlockContent(tt.block); got != tt.want {
				t.Fatalf("BlockContent = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBlocksMarkChildren(t *testing.T) {
	v := simplify.Blocks([]notion.Block{
		{Type: "toggle", ID: "b1", HasChildren: true, Toggle: &notion.TextBlock{}},
		{Type: "paragraph", ID: "b2", Paragraph: &notion.TextBlock{}},
	})

	first := v.Items()[0]
	if flag, ok := first.Get("has_children"); !ok || !flag.BoolValue() {
		t.Fatalf("expected has_children on first block: %v", first.Keys())
	}
	if _, ok := v.Items()[1].Get("has_children"); ok {
		t.Fatalf("childless block should omit has_children")
	}
}

func TestSearchResultsProjection(t *testing.T) {
	v := simplify.SearchResults([]notion.SearchResult{
		{
			Object:         "page",
			ID:             "p1",
			URL:            "https://notion.so/p1",
			LastEditedTime: "2024-03-01T12:30:00Z",
			Properties: map[string]notion.PropertyValue{
				"Name": {Type: "title", Title: []notion.RichText{{PlainText: "Roadmap"}}},
			},
		},
		{Object: "page", ID: "p2"},
	})

	first := v.Items()[0]
	if edited, _ := first.Get("last_edited"); edited.TextValue() != "2024-03-01" {
		t.Fatalf("last_edited = %#v", edited)
	}
	if title, _ := first.Get("title"); title.TextValue() != "Roadmap" {
		t.Fatalf("title = %#v", title)
	}

	second := v.Items()[1]
	if title, _ := second.Get("title"); title.TextValue() != "Untitled" {
		t.Fatalf("fallback title = %#v", title)
	}
}

func TestUserProjectionVariants(t *testing.T) {
	person := simplify.User(notion.User{
		ID:     "u1",
		Type:   "person",
		Name:   "Ada",
		Person: &notion.Person{Email: "ada@example.com"},
	})
	if email, ok := person.Get("email"); !ok || email.TextValue() != "ada@example.com" {
		t.Fatalf("person email = %#v", email)
	}

	bot := simplify.User(notion.User{
		ID:   "u2",
		Type: "bot",
		Name: "Integration",
		Bot:  &notion.Bot{WorkspaceName: "Acme"},
	})
	if ws, ok := bot.Get("workspace"); !ok || ws.TextValue() != "Acme" {
		t.Fatalf("bot workspace = %#v", ws)
	}
	if _, ok := person.Get("workspace"); ok {
		t.Fatalf("person should not carry workspace key")
	}
}

func TestCommentProjection(t *testing.T) {
	v := simplify.Comment(notion.Comment{
		ID:           "c1",
		CreatedTime:  "2024-01-01T00:00:00Z",
		CreatedBy:    notion.UserReference{ID: "u1", Name: "Ada"},
		RichText:     []notion.RichText{{PlainText: "Looks good"}},
		DiscussionID: "d1",
	})
	if author, _ := v.Get("author"); author.TextValue() != "Ada" {
		t.Fatalf("author = %#v", author)
	}
	if text, _ := v.Get("text"); text.TextValue() != "Looks good" {
		t.Fatalf("text = %#v", text)
	}

	anonymous := simplify.Comment(notion.Comment{CreatedBy: notion.UserReference{ID: "u9"}})
	if author, _ := anonymous.Get("author"); author.TextValue() != "u9" {
		t.Fatalf("author falls back to id: %#v", author)
	}
}

func TestAutoDispatch(t *testing.T) {
	pre := display.Text("already simplified")
	if got := simplify.Auto(pre); got.TextValue() != "already simplified" {
		t.Fatalf("display values pass through: %#v", got)
	}

	page := simplify.Auto(notion.Page{ID: "p1"})
	if page.Kind() != display.KindMap {
		t.Fatalf("page dispatch = %#v", page)
	}

	users := simplify.Auto([]notion.User{{ID: "u1"}})
	if users.Kind() != display.KindList || users.Len() != 1 {
		t.Fatalf("users dispatch = %#v", users)
	}

	raw := simplify.Auto(map[string]any{"k": "v"})
	if raw.Kind() != display.KindMap {
		t.Fatalf("fallback dispatch = %#v", raw)
	}
}

func TestWorkspaceParent(t *testing.T) {
	v := simplify.Page(notion.Page{
		ID:     "p1",
		Parent: notion.Parent{Type: "workspace", Workspace: true},
	})
	parent, ok := v.Get("parent")
	if !ok {
		t.Fatalf("missing workspace parent")
	}
	if _, ok := parent.Get("id"); ok {
		t.Fatalf("workspace parent carries no id: %v", parent.Keys())
	}
	if typ, _ := parent.Get("type"); !strings.EqualFold(typ.TextValue(), "workspace") {
		t.Fatalf("parent type = %#v", typ)
	}
}
