// Package render turns display values into terminal output in one of four
// modes: json, yaml, table or text. Rendering is driven entirely by the
// display.Value shape; no mode inspects entity types.
package render

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/yourorg/notioncli/internal/display"
)

// Mode selects an output format.
type Mode string

const (
	ModeJSON  Mode = "json"
	ModeYAML  Mode = "yaml"
	ModeTable Mode = "table"
	ModeText  Mode = "text"
)

// ParseMode validates a user-supplied output format name.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeJSON, ModeYAML, ModeTable, ModeText:
		return Mode(s), nil
	default:
		return "", fmt.Errorf("unknown output format %q (want json, yaml, table or text)", s)
	}
}

// Options carries per-call rendering configuration. No process-wide state.
type Options struct {
	Color bool
}

// Render writes v to w in the requested mode.
func Render(w io.Writer, mode Mode, v display.Value, opts Options) error {
	switch mode {
	case ModeJSON:
		return renderJSON(w, v)
	case ModeYAML:
		return renderYAML(w, v)
	case ModeTable:
		return renderTable(w, v, opts)
	case ModeText:
		return renderText(w, v)
	default:
		return fmt.Errorf("unknown render mode %q", mode)
	}
}

func renderJSON(w io.Writer, v display.Value) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	if _, err := fmt.Fprintln(w, string(data)); err != nil {
		return fmt.Errorf("write json: %w", err)
	}
	return nil
}

func renderYAML(w io.Writer, v display.Value) error {
	data, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write yaml: %w", err)
	}
	return nil
}
