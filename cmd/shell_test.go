package cmd

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/yourorg/notioncli/internal/notion"
)

// Commands dispatched inside the shell must not inherit flag values from
// earlier lines: a --limit on one search applies to that search only.
func TestShellDispatchesWithFreshFlags(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `{
			"results": [
				{"object": "page", "id": "r1"},
				{"object": "page", "id": "r2"},
				{"object": "page", "id": "r3"}
			],
			"has_more": false
		}`)
	}))
	defer server.Close()

	restore := clientFactory
	clientFactory = func(string) (*notion.Client, error) {
		return notion.NewClient(notion.ClientConfig{Token: "test", BaseURL: server.URL}), nil
	}
	defer func() { clientFactory = restore }()

	root, _ := newRootCmd()
	root.SetIn(strings.NewReader("search foo --limit 1 -o json\nsearch foo -o json\nexit\n"))
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs([]string{"shell"})

	if err := root.Execute(); err != nil {
		t.Fatalf("shell returned error: %v", err)
	}

	// First dispatch is limited to 1 result, the second returns all 3.
	if got := strings.Count(out.String(), `"id"`); got != 4 {
		t.Fatalf("expected 4 result ids across both dispatches, got %d:\n%s", got, out.String())
	}
}

func TestShellDispatchErrorKeepsSessionAlive(t *testing.T) {
	root, _ := newRootCmd()
	root.SetIn(strings.NewReader("search --type bogus\nhelp\nexit\n"))
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs([]string{"shell"})

	if err := root.Execute(); err != nil {
		t.Fatalf("shell returned error: %v", err)
	}
	if !strings.Contains(out.String(), "error:") {
		t.Fatalf("command error not reported: %q", out.String())
	}
	if !strings.Contains(out.String(), "Builtins:") {
		t.Fatalf("session did not continue past the error: %q", out.String())
	}
}
