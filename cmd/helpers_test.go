package cmd

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParsePropertyFlags(t *testing.T) {
	names, values, err := parsePropertyFlags([]string{"Status=Active", "Count=3", "Note=a=b"})
	if err != nil {
		t.Fatalf("parsePropertyFlags returned error: %v", err)
	}
	if len(names) != 3 || names[0] != "Status" || names[1] != "Count" || names[2] != "Note" {
		t.Fatalf("names = %#v", names)
	}
	// Only the first "=" splits; values may contain more.
	if values["Note"] != "a=b" {
		t.Fatalf("values = %#v", values)
	}

	names, values, err = parsePropertyFlags([]string{"Status=Old", "Status=New"})
	if err != nil {
		t.Fatalf("parsePropertyFlags returned error: %v", err)
	}
	if len(names) != 1 || values["Status"] != "New" {
		t.Fatalf("duplicate flag should keep last value: %#v %#v", names, values)
	}

	if _, _, err := parsePropertyFlags([]string{"novalue"}); err == nil {
		t.Fatalf("expected error for missing separator")
	}
	if _, _, err := parsePropertyFlags([]string{"=value"}); err == nil {
		t.Fatalf("expected error for empty name")
	}
}

func TestContentArg(t *testing.T) {
	path := filepath.Join(t.TempDir(), "content.md")
	if err := os.WriteFile(path, []byte("# Heading\n"), 0o600); err != nil {
		t.Fatalf("write content file: %v", err)
	}

	got, err := contentArg(path)
	if err != nil {
		t.Fatalf("contentArg returned error: %v", err)
	}
	if got != "# Heading\n" {
		t.Fatalf("file content = %q", got)
	}

	got, err = contentArg("plain literal text")
	if err != nil {
		t.Fatalf("contentArg returned error: %v", err)
	}
	if got != "plain literal text" {
		t.Fatalf("literal content = %q", got)
	}

	got, err = contentArg("")
	if err != nil || got != "" {
		t.Fatalf("empty content = %q, %v", got, err)
	}
}
