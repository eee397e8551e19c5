package shell

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		want    []string
		wantErr bool
	}{
		{name: "plain words", line: "pages get abc", want: []string{"pages", "get", "abc"}},
		{name: "collapses whitespace", line: "  search   query  ", want: []string{"search", "query"}},
		{name: "double quotes", line: `search "my query"`, want: []string{"search", "my query"}},
		{name: "single quotes", line: "comments add 'hello world'", want: []string{"comments", "add", "hello world"}},
		{name: "empty quotes make empty arg", line: `pages create --title ""`, want: []string{"pages", "create", "--title", ""}},
		{name: "unterminated quote", line: `search "oops`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tokenize(tt.line)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("tokenize(%q) expected error", tt.line)
				}
				return
			}
			if err != nil {
				t.Fatalf("tokenize(%q) returned error: %v", tt.line, err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("tokenize(%q) = %#v, want %#v", tt.line, got, tt.want)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Fatalf("arg %d = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestRunDispatchesAndExits(t *testing.T) {
	var dispatched [][]string
	run := func(args []string) error {
		dispatched = append(dispatched, args)
		return nil
	}

	in := strings.NewReader("search hello\nexit\nnever reached\n")
	var out strings.Builder
	s := New(run, in, &out, "")

	if err := s.Run(); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if len(dispatched) != 1 {
		t.Fatalf("dispatched = %#v", dispatched)
	}
	if dispatched[0][0] != "search" || dispatched[0][1] != "hello" {
		t.Fatalf("dispatched args = %#v", dispatched[0])
	}
}

func TestRunContinuesAfterCommandError(t *testing.T) {
	calls := 0
	run := func([]string) error {
		calls++
		if calls == 1 {
			return errors.New("boom")
		}
		return nil
	}

	in := strings.NewReader("pages get bad\npages get good\nexit\n")
	var out strings.Builder
	s := New(run, in, &out, "")

	if err := s.Run(); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if calls != 2 {
		t.Fatalf("expected 2 dispatches, got %d", calls)
	}
	if !strings.Contains(out.String(), "error: boom") {
		t.Fatalf("error not reported: %q", out.String())
	}
}

func TestRunSkipsBlankLines(t *testing.T) {
	calls := 0
	run := func([]string) error {
		calls++
		return nil
	}

	in := strings.NewReader("\n   \npages list\n")
	var out strings.Builder
	s := New(run, in, &out, "")

	if err := s.Run(); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if calls != 1 {
		t.Fatalf("expected 1 dispatch, got %d", calls)
	}
}

func TestHistoryPersistsAcrossShells(t *testing.T) {
	dir := t.TempDir()
	run := func([]string) error { return nil }

	first := New(run, strings.NewReader("search alpha\nquit\n"), &strings.Builder{}, dir)
	if err := first.Run(); err != nil {
		t.Fatalf("first Run returned error: %v", err)
	}

	var out strings.Builder
	second := New(run, strings.NewReader("history\nexit\n"), &out, dir)
	if err := second.Run(); err != nil {
		t.Fatalf("second Run returned error: %v", err)
	}
	if !strings.Contains(out.String(), "search alpha") {
		t.Fatalf("history output missing prior command: %q", out.String())
	}

	info, err := os.Stat(filepath.Join(dir, historyFile))
	if err != nil {
		t.Fatalf("stat history file: %v", err)
	}
	if mode := info.Mode().Perm(); mode != 0o600 {
		t.Fatalf("history file permissions = %o, want 600", mode)
	}
}

func TestBuiltinsDoNotDispatch(t *testing.T) {
	run := func(args []string) error {
		t.Fatalf("builtin dispatched to runner: %v", args)
		return nil
	}

	in := strings.NewReader("help\nhistory\nclear\nexit\n")
	var out strings.Builder
	s := New(run, in, &out, "")

	if err := s.Run(); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if !strings.Contains(out.String(), "Builtins:") {
		t.Fatalf("help output missing: %q", out.String())
	}
}
