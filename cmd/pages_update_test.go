package cmd

import (
	"testing"
)

func TestPagesUpdateBuildRequest(t *testing.T) {
	t.Run("title only", func(t *testing.T) {
		opts := &pagesUpdateOptions{title: "Renamed"}
		req, err := opts.buildRequest()
		if err != nil {
			t.Fatalf("buildRequest returned error: %v", err)
		}
		if req.Properties == nil {
			t.Fatalf("expected title property, got %#v", req)
		}
		if _, ok := req.Properties["title"]; !ok {
			t.Fatalf("missing title key: %#v", req.Properties)
		}
		if req.Archived != nil {
			t.Fatalf("archived should stay unset")
		}
	})

	t.Run("inferred properties", func(t *testing.T) {
		opts := &pagesUpdateOptions{properties: []string{"Done=true", "Count=3"}}
		req, err := opts.buildRequest()
		if err != nil {
			t.Fatalf("buildRequest returned error: %v", err)
		}
		done, ok := req.Properties["Done"].(map[string]any)
		if !ok || done["checkbox"] != true {
			t.Fatalf("Done payload = %#v", req.Properties["Done"])
		}
		count, ok := req.Properties["Count"].(map[string]any)
		if !ok || count["number"] != 3.0 {
			t.Fatalf("Count payload = %#v", req.Properties["Count"])
		}
	})

	t.Run("archive sets flag without properties", func(t *testing.T) {
		opts := &pagesUpdateOptions{archive: true}
		req, err := opts.buildRequest()
		if err != nil {
			t.Fatalf("buildRequest returned error: %v", err)
		}
		if req.Archived == nil || !*req.Archived {
			t.Fatalf("archived = %#v", req.Archived)
		}
		if req.Properties != nil {
			t.Fatalf("unexpected properties: %#v", req.Properties)
		}
	})

	t.Run("restore clears archived", func(t *testing.T) {
		opts := &pagesUpdateOptions{restore: true}
		req, err := opts.buildRequest()
		if err != nil {
			t.Fatalf("buildRequest returned error: %v", err)
		}
		if req.Archived == nil || *req.Archived {
			t.Fatalf("archived = %#v", req.Archived)
		}
	})

	t.Run("archive and restore conflict", func(t *testing.T) {
		opts := &pagesUpdateOptions{archive: true, restore: true}
		if _, err := opts.buildRequest(); err == nil {
			t.Fatalf("expected mutual exclusion error")
		}
	})

	t.Run("empty update rejected", func(t *testing.T) {
		opts := &pagesUpdateOptions{}
		if _, err := opts.buildRequest(); err == nil {
			t.Fatalf("expected nothing-to-update error")
		}
	})

	t.Run("malformed property flag", func(t *testing.T) {
		opts := &pagesUpdateOptions{properties: []string{"missing-separator"}}
		if _, err := opts.buildRequest(); err == nil {
			t.Fatalf("expected property parse error")
		}
	})
}
