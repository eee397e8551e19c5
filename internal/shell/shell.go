// Package shell implements the interactive line loop: it reads commands,
// handles the exit/quit/help/clear/history builtins, appends every line to a
// history file and dispatches everything else through the CLI command tree.
package shell

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

const (
	prompt      = "notion> "
	historyFile = "history"

	historyDirPermissions  = 0o700
	historyFilePermissions = 0o600
)

// Runner dispatches one tokenized command line.
type Runner func(args []string) error

// Shell drives the interactive loop.
//
//nolint:govet // fieldalignment: small struct, readability wins.
type Shell struct {
	run         Runner
	in          io.Reader
	out         io.Writer
	historyPath string
	history     []string
}

// New builds a shell. historyDir may be empty to disable history
// persistence.
func New(run Runner, in io.Reader, out io.Writer, historyDir string) *Shell {
	s := &Shell{run: run, in: in, out: out}
	if historyDir != "" {
		s.historyPath = filepath.Join(historyDir, historyFile)
		s.history = loadHistory(s.historyPath)
	}
	return s
}

// Run reads lines until EOF or an exit builtin. Command errors are printed
// and the loop continues; only I/O failures abort.
func (s *Shell) Run() error {
	fmt.Fprintln(s.out, `Interactive mode. Type "help" for commands, "exit" to leave.`)

	scanner := bufio.NewScanner(s.in)
	for {
		fmt.Fprint(s.out, prompt)
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return fmt.Errorf("read input: %w", err)
			}
			fmt.Fprintln(s.out)
			return nil
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		s.remember(line)

		switch line {
		case "exit", "quit":
			return nil
		case "help":
			s.printHelp()
			continue
		case "clear":
			fmt.Fprint(s.out, "\033[2J\033[H")
			continue
		case "history":
			s.printHistory()
			continue
		}

		args, err := tokenize(line)
		if err != nil {
			fmt.Fprintf(s.out, "error: %v\n", err)
			continue
		}
		if err := s.run(args); err != nil {
			fmt.Fprintf(s.out, "error: %v\n", err)
		}
	}
}

func (s *Shell) printHelp() {
	fmt.Fprintln(s.out, "Builtins:")
	fmt.Fprintln(s.out, "  help      show this help")
	fmt.Fprintln(s.out, "  history   show command history")
	fmt.Fprintln(s.out, "  clear     clear the screen")
	fmt.Fprintln(s.out, "  exit      leave the shell (also: quit)")
	fmt.Fprintln(s.out, `Everything else runs as a notioncli command, e.g. "search my query".`)
}

func (s *Shell) printHistory() {
	for i, line := range s.history {
		fmt.Fprintf(s.out, "%4d  %s\n", i+1, line)
	}
}

func (s *Shell) remember(line string) {
	s.history = append(s.history, line)
	if s.historyPath == "" {
		return
	}
	if err := os.MkdirAll(filepath.Dir(s.historyPath), historyDirPermissions); err != nil {
		return
	}
	f, err := os.OpenFile(s.historyPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, historyFilePermissions)
	if err != nil {
		return
	}
	defer f.Close() //nolint:errcheck // best-effort history persistence
	fmt.Fprintln(f, line)
}

func loadHistory(path string) []string {
	data, err := os.ReadFile(path) // #nosec G304 -- path derives from the config dir
	if err != nil {
		return nil
	}
	var history []string
	for _, line := range strings.Split(string(data), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			history = append(history, line)
		}
	}
	return history
}

// tokenize splits a command line into arguments, honoring single and double
// quotes.
func tokenize(line string) ([]string, error) {
	var (
		args    []string
		current strings.Builder
		quote   rune
		inArg   bool
	)
	for _, r := range line {
		switch {
		case quote != 0:
			if r == quote {
				quote = 0
			} else {
				current.WriteRune(r)
			}
		case r == '\'' || r == '"':
			quote = r
			inArg = true
		case r == ' ' || r == '\t':
			if inArg {
				args = append(args, current.String())
				current.Reset()
				inArg = false
			}
		default:
			current.WriteRune(r)
			inArg = true
		}
	}
	if quote != 0 {
		return nil, errors.New("unterminated quote")
	}
	if inArg {
		args = append(args, current.String())
	}
	return args, nil
}
