package bulk

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/yourorg/notioncli/internal/display"
	"github.com/yourorg/notioncli/internal/notion"
	"github.com/yourorg/notioncli/internal/props"
	"github.com/yourorg/notioncli/internal/render"
	"github.com/yourorg/notioncli/internal/schema"
	"github.com/yourorg/notioncli/internal/simplify"
)

// ExportFormat names a supported export file format.
type ExportFormat string

const (
	FormatCSV  ExportFormat = "csv"
	FormatJSON ExportFormat = "json"
	FormatText ExportFormat = "text"
)

// ResolveExportFormat picks the export format from an explicit flag value,
// falling back to the output file extension.
func ResolveExportFormat(flag, path string) (ExportFormat, error) {
	if flag != "" {
		switch ExportFormat(strings.ToLower(flag)) {
		case FormatCSV, FormatJSON, FormatText:
			return ExportFormat(strings.ToLower(flag)), nil
		default:
			return "", fmt.Errorf("unknown export format %q (want csv, json or text)", flag)
		}
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return FormatCSV, nil
	case ".json":
		return FormatJSON, nil
	case ".txt", ".text":
		return FormatText, nil
	default:
		return "", fmt.Errorf("cannot infer export format from %q; pass --format", path)
	}
}

// ExportPages writes query results to a file. CSV columns follow the
// database schema's sorted property names plus a leading id column; JSON
// and text reuse the simplified page projection.
func ExportPages(path string, format ExportFormat, idx *schema.Index, pages []notion.Page) error {
	f, err := os.Create(path) // #nosec G304 -- writing user-chosen export file by design
	if err != nil {
		return fmt.Errorf("create export file: %w", err)
	}
	defer f.Close() //nolint:errcheck // flushed and synced below

	switch format {
	case FormatCSV:
		if err := writeCSV(f, idx, pages); err != nil {
			return err
		}
	case FormatJSON:
		data, err := json.MarshalIndent(simplify.Pages(pages), "", "  ")
		if err != nil {
			return fmt.Errorf("encode export: %w", err)
		}
		if _, err := f.Write(append(data, '\n')); err != nil {
			return fmt.Errorf("write export: %w", err)
		}
	case FormatText:
		if err := render.Render(f, render.ModeText, simplify.Pages(pages), render.Options{}); err != nil {
			return fmt.Errorf("write export: %w", err)
		}
	default:
		return fmt.Errorf("unknown export format %q", format)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("close export file: %w", err)
	}
	return nil
}

func writeCSV(f *os.File, idx *schema.Index, pages []notion.Page) error {
	columns := idx.PropertyNames()
	header := append([]string{"id"}, columns...)

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, page := range pages {
		row := make([]string, 0, len(header))
		row = append(row, page.ID)
		for _, name := range columns {
			row = append(row, cellValue(page, name))
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}

func cellValue(page notion.Page, property string) string {
	prop, ok := page.Properties[property]
	if !ok {
		return ""
	}
	v := props.Simplify(prop)
	if v.Kind() == display.KindList {
		parts := make([]string, 0, v.Len())
		for _, item := range v.Items() {
			parts = append(parts, item.Scalar())
		}
		return strings.Join(parts, ", ")
	}
	return v.Scalar()
}
