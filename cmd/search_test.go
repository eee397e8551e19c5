package cmd

import (
	"testing"
)

func TestSearchBuildRequest(t *testing.T) {
	t.Run("bare query", func(t *testing.T) {
		opts := &searchOptions{}
		req, err := opts.buildRequest([]string{"roadmap"})
		if err != nil {
			t.Fatalf("buildRequest returned error: %v", err)
		}
		if req.Query != "roadmap" || req.Filter != nil || req.Sort != nil {
			t.Fatalf("req = %#v", req)
		}
	})

	t.Run("empty query lists everything", func(t *testing.T) {
		opts := &searchOptions{}
		req, err := opts.buildRequest(nil)
		if err != nil {
			t.Fatalf("buildRequest returned error: %v", err)
		}
		if req.Query != "" {
			t.Fatalf("req = %#v", req)
		}
	})

	t.Run("type filter", func(t *testing.T) {
		opts := &searchOptions{objectType: "database"}
		req, err := opts.buildRequest(nil)
		if err != nil {
			t.Fatalf("buildRequest returned error: %v", err)
		}
		if req.Filter == nil || req.Filter.Property != "object" || req.Filter.Value != "database" {
			t.Fatalf("filter = %#v", req.Filter)
		}
	})

	t.Run("last_edited sort", func(t *testing.T) {
		opts := &searchOptions{sort: "last_edited"}
		req, err := opts.buildRequest(nil)
		if err != nil {
			t.Fatalf("buildRequest returned error: %v", err)
		}
		if req.Sort == nil || req.Sort.Timestamp != "last_edited_time" || req.Sort.Direction != "descending" {
			t.Fatalf("sort = %#v", req.Sort)
		}
	})

	t.Run("relevance leaves sort unset", func(t *testing.T) {
		opts := &searchOptions{sort: "relevance"}
		req, err := opts.buildRequest(nil)
		if err != nil {
			t.Fatalf("buildRequest returned error: %v", err)
		}
		if req.Sort != nil {
			t.Fatalf("sort = %#v", req.Sort)
		}
	})

	t.Run("unknown type rejected", func(t *testing.T) {
		opts := &searchOptions{objectType: "block"}
		if _, err := opts.buildRequest(nil); err == nil {
			t.Fatalf("expected type error")
		}
	})

	t.Run("unknown sort rejected", func(t *testing.T) {
		opts := &searchOptions{sort: "alphabetical"}
		if _, err := opts.buildRequest(nil); err == nil {
			t.Fatalf("expected sort error")
		}
	})
}
