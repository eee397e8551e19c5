package schema_test

import (
	"testing"

	"github.com/yourorg/notioncli/internal/notion"
	"github.com/yourorg/notioncli/internal/schema"
)

func testDatabase() notion.Database {
	return notion.Database{
		Properties: map[string]notion.PropertySchema{
			"Name":   {ID: "name-id", Type: "title"},
			"Status": {ID: "status-id", Type: "select"},
			"Tags":   {ID: "tags-id", Type: "multi_select"},
		},
	}
}

func TestSchemaForName(t *testing.T) {
	idx := schema.NewIndex(testDatabase())

	canonical, s, ok := idx.SchemaForName("status")
	if !ok || canonical != "Status" || s.Type != "select" {
		t.Fatalf("SchemaForName(status) = %q,%q,%v", canonical, s.Type, ok)
	}

	canonical, _, ok = idx.SchemaForName("  TAGS ")
	if !ok || canonical != "Tags" {
		t.Fatalf("lookup should trim and fold case, got %q,%v", canonical, ok)
	}

	if _, _, ok := idx.SchemaForName("missing"); ok {
		t.Fatalf("expected missing property lookup to fail")
	}
}

func TestTypeForName(t *testing.T) {
	idx := schema.NewIndex(testDatabase())

	if typ, ok := idx.TypeForName("name"); !ok || typ != "title" {
		t.Fatalf("TypeForName(name) = %q,%v", typ, ok)
	}
	if _, ok := idx.TypeForName("missing"); ok {
		t.Fatalf("expected missing type lookup to fail")
	}
}

func TestTitleProperty(t *testing.T) {
	idx := schema.NewIndex(testDatabase())
	if name, ok := idx.TitleProperty(); !ok || name != "Name" {
		t.Fatalf("TitleProperty = %q,%v", name, ok)
	}

	noTitle := schema.NewIndex(notion.Database{
		Properties: map[string]notion.PropertySchema{
			"Status": {Type: "select"},
		},
	})
	if _, ok := noTitle.TitleProperty(); ok {
		t.Fatalf("schema without title property should report none")
	}
}

func TestPropertyNamesSorted(t *testing.T) {
	idx := schema.NewIndex(testDatabase())

	names := idx.PropertyNames()
	want := []string{"Name", "Status", "Tags"}
	if len(names) != len(want) {
		t.Fatalf("names = %#v", names)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("names[%d] = %q, want %q", i, names[i], want[i])
		}
	}
}

func TestNilIndex(t *testing.T) {
	var idx *schema.Index
	if _, _, ok := idx.SchemaForName("anything"); ok {
		t.Fatalf("nil index lookup should fail")
	}
	if names := idx.PropertyNames(); names != nil {
		t.Fatalf("nil index names = %#v", names)
	}
}
