package render

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"

	"github.com/yourorg/notioncli/internal/display"
)

const (
	tabWriterMinWidth = 0
	tabWriterTabWidth = 2
	tabWriterPadding  = 2
	tabWriterFlags    = 0

	emptyListMessage = "No data to display"

	glyphChecked   = "✓"
	glyphUnchecked = "✗"
)

var headerStyle = lipgloss.NewStyle().Bold(true)

func renderTable(w io.Writer, v display.Value, opts Options) error {
	switch v.Kind() {
	case display.KindMap:
		return keyValueTable(w, v, opts)
	case display.KindList:
		items := v.Items()
		if len(items) == 0 {
			_, err := fmt.Fprintln(w, emptyListMessage)
			return err
		}
		if items[0].Kind() == display.KindMap {
			return recordTable(w, items, opts)
		}
		return bulletedList(w, items, opts)
	default:
		_, err := fmt.Fprintln(w, cellText(v, opts))
		return err
	}
}

// keyValueTable renders a single mapping as a two-column Key/Value table.
func keyValueTable(w io.Writer, v display.Value, opts Options) error {
	rows := make([][]string, 0, v.Len())
	for _, key := range v.Keys() {
		field, _ := v.Get(key)
		rows = append(rows, []string{key, cellText(field, opts)})
	}
	return writeTable(w, []string{"Key", "Value"}, rows, opts)
}

// recordTable renders a sequence of mappings. Columns come from the first
// element; keys missing from later elements render as empty cells.
func recordTable(w io.Writer, items []display.Value, opts Options) error {
	headers := items[0].Keys()
	rows := make([][]string, 0, len(items))
	for _, item := range items {
		row := make([]string, 0, len(headers))
		for _, key := range headers {
			if field, ok := item.Get(key); ok {
				row = append(row, cellText(field, opts))
			} else {
				row = append(row, "")
			}
		}
		rows = append(rows, row)
	}
	return writeTable(w, headers, rows, opts)
}

func bulletedList(w io.Writer, items []display.Value, opts Options) error {
	for _, item := range items {
		if _, err := fmt.Fprintf(w, "• %s\n", cellText(item, opts)); err != nil {
			return fmt.Errorf("write list item: %w", err)
		}
	}
	return nil
}

// cellText formats a value for a single table cell. Booleans become glyphs
// when color output is on; nested collections collapse to compact JSON.
func cellText(v display.Value, opts Options) string {
	switch v.Kind() {
	case display.KindBool:
		if !opts.Color {
			return v.Scalar()
		}
		if v.BoolValue() {
			return glyphChecked
		}
		return glyphUnchecked
	case display.KindList, display.KindMap:
		return v.CompactJSON()
	default:
		return v.Scalar()
	}
}

func writeTable(w io.Writer, headers []string, rows [][]string, opts Options) error {
	tw := tabwriter.NewWriter(w, tabWriterMinWidth, tabWriterTabWidth, tabWriterPadding, ' ', tabWriterFlags)
	if len(headers) > 0 {
		styled := headers
		if opts.Color {
			styled = make([]string, len(headers))
			for i, h := range headers {
				styled[i] = headerStyle.Render(h)
			}
		}
		if err := writeRow(tw, styled); err != nil {
			return err
		}
	}
	for _, row := range rows {
		if err := writeRow(tw, row); err != nil {
			return err
		}
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("flush table: %w", err)
	}
	return nil
}

func writeRow(w io.Writer, columns []string) error {
	line := strings.Join(columns, "\t")
	if _, err := fmt.Fprintln(w, line); err != nil {
		return fmt.Errorf("write row: %w", err)
	}
	return nil
}
