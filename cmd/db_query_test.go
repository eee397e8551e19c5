package cmd

import (
	"testing"

	"github.com/yourorg/notioncli/internal/notion"
	"github.com/yourorg/notioncli/internal/schema"
)

func queryTestIndex() *schema.Index {
	return schema.NewIndex(notion.Database{
		Properties: map[string]notion.PropertySchema{
			"Name":    {Type: "title"},
			"Status":  {Type: "select"},
			"Tags":    {Type: "multi_select"},
			"Count":   {Type: "number"},
			"Done":    {Type: "checkbox"},
			"Formula": {Type: "formula"},
		},
	})
}

func TestBuildFilter(t *testing.T) {
	idx := queryTestIndex()

	t.Run("title uses contains", func(t *testing.T) {
		filter, err := buildFilter(idx, "name=launch")
		if err != nil {
			t.Fatalf("buildFilter returned error: %v", err)
		}
		if filter["property"] != "Name" {
			t.Fatalf("canonical name = %#v", filter["property"])
		}
		condition, ok := filter["title"].(map[string]any)
		if !ok || condition["contains"] != "launch" {
			t.Fatalf("condition = %#v", filter)
		}
	})

	t.Run("number parses value", func(t *testing.T) {
		filter, err := buildFilter(idx, "Count=5")
		if err != nil {
			t.Fatalf("buildFilter returned error: %v", err)
		}
		condition := filter["number"].(map[string]any)
		if condition["equals"] != 5.0 {
			t.Fatalf("condition = %#v", condition)
		}
	})

	t.Run("number rejects text", func(t *testing.T) {
		if _, err := buildFilter(idx, "Count=lots"); err == nil {
			t.Fatalf("expected numeric parse error")
		}
	})

	t.Run("checkbox parses boolean", func(t *testing.T) {
		filter, err := buildFilter(idx, "Done=true")
		if err != nil {
			t.Fatalf("buildFilter returned error: %v", err)
		}
		condition := filter["checkbox"].(map[string]any)
		if condition["equals"] != true {
			t.Fatalf("condition = %#v", condition)
		}
	})

	t.Run("select uses equals", func(t *testing.T) {
		filter, err := buildFilter(idx, "Status=Active")
		if err != nil {
			t.Fatalf("buildFilter returned error: %v", err)
		}
		condition := filter["select"].(map[string]any)
		if condition["equals"] != "Active" {
			t.Fatalf("condition = %#v", condition)
		}
	})

	t.Run("multi_select uses contains", func(t *testing.T) {
		filter, err := buildFilter(idx, "Tags=infra")
		if err != nil {
			t.Fatalf("buildFilter returned error: %v", err)
		}
		condition := filter["multi_select"].(map[string]any)
		if condition["contains"] != "infra" {
			t.Fatalf("condition = %#v", condition)
		}
	})

	t.Run("unknown property", func(t *testing.T) {
		if _, err := buildFilter(idx, "Ghost=x"); err == nil {
			t.Fatalf("expected unknown property error")
		}
	})

	t.Run("unfilterable type", func(t *testing.T) {
		if _, err := buildFilter(idx, "Formula=1"); err == nil {
			t.Fatalf("expected unfilterable type error")
		}
	})

	t.Run("malformed spec", func(t *testing.T) {
		if _, err := buildFilter(idx, "no-separator"); err == nil {
			t.Fatalf("expected parse error")
		}
	})
}

func TestBuildSort(t *testing.T) {
	sort, err := buildSort("Name:descending")
	if err != nil {
		t.Fatalf("buildSort returned error: %v", err)
	}
	if sort["property"] != "Name" || sort["direction"] != "descending" {
		t.Fatalf("sort = %#v", sort)
	}

	sort, err = buildSort("Name")
	if err != nil {
		t.Fatalf("buildSort returned error: %v", err)
	}
	if sort["direction"] != "ascending" {
		t.Fatalf("default direction = %#v", sort)
	}

	if _, err := buildSort("Name:sideways"); err == nil {
		t.Fatalf("expected direction error")
	}
	if _, err := buildSort(":descending"); err == nil {
		t.Fatalf("expected missing property error")
	}
}
