// Package bulk implements file-driven batch operations: loading CSV/JSON
// record files, creating/updating/archiving pages per record with collected
// per-item failures, and exporting query results to CSV or JSON.
package bulk

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/yourorg/notioncli/internal/notion"
	"github.com/yourorg/notioncli/internal/props"
	"github.com/yourorg/notioncli/internal/schema"
)

// Record is one input row: field name to raw value. CSV rows carry strings;
// JSON records may carry any scalar.
type Record map[string]any

// Failure captures one failed item of a batch alongside its input position.
type Failure struct {
	Err   error
	Ref   string
	Index int
}

// Result summarizes a batch: how many items succeeded and which failed.
// Failures never abort the batch; they are collected and reported together.
type Result struct {
	Failures  []Failure
	Succeeded int
}

func (r *Result) fail(index int, ref string, err error) {
	r.Failures = append(r.Failures, Failure{Index: index, Ref: ref, Err: err})
}

// LoadRecords reads an input file as records. CSV files take field names
// from the header row; JSON files are either a top-level array of objects or
// an object with a "data" array.
func LoadRecords(path string) ([]Record, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return loadCSV(path)
	case ".json":
		return loadJSON(path)
	default:
		return nil, fmt.Errorf("unsupported input format %q (want .csv or .json)", filepath.Ext(path))
	}
}

func loadCSV(path string) ([]Record, error) {
	f, err := os.Open(path) // #nosec G304 -- reading user-supplied input by design
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	defer f.Close() //nolint:errcheck // read-only file

	reader := csv.NewReader(f)
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	if len(rows) == 0 {
		return nil, errors.New("csv input has no header row")
	}

	header := rows[0]
	records := make([]Record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		record := make(Record, len(header))
		for i, name := range header {
			if i < len(row) {
				record[name] = row[i]
			}
		}
		records = append(records, record)
	}
	return records, nil
}

func loadJSON(path string) ([]Record, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- reading user-supplied input by design
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}

	var records []Record
	if err := json.Unmarshal(data, &records); err == nil {
		return records, nil
	}

	var wrapper struct {
		Data []Record `json:"data"`
	}
	if err := json.Unmarshal(data, &wrapper); err != nil || wrapper.Data == nil {
		return nil, errors.New(`json input must be an array of objects or {"data": [...]}`)
	}
	return wrapper.Data, nil
}

// stringify renders a record field the way the codec expects user input.
func stringify(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case bool:
		if t {
			return "true"
		}
		return "false"
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", t)
	}
}

// recordRef labels a record in failure output, preferring an explicit id.
func recordRef(index int, record Record) string {
	if id, ok := record["id"]; ok {
		if s := stringify(id); s != "" {
			return s
		}
	}
	return fmt.Sprintf("record %d", index+1)
}

// CreatePages creates one database page per record, encoding values against
// the database schema. Unknown or write-unsupported properties are skipped;
// per-record failures are collected, not fatal. dryRun reports what would be
// created without issuing any write.
func CreatePages(
	ctx context.Context,
	client *notion.Client,
	databaseID string,
	records []Record,
	dryRun bool,
) (Result, error) {
	db, err := client.RetrieveDatabase(ctx, databaseID)
	if err != nil {
		return Result{}, fmt.Errorf("retrieve database: %w", err)
	}
	idx := schema.NewIndex(db)

	var result Result
	for i, record := range records {
		properties, encErr := EncodeRecord(idx, record)
		if encErr != nil {
			result.fail(i, recordRef(i, record), encErr)
			continue
		}
		if len(properties) == 0 {
			result.fail(i, recordRef(i, record), errors.New("no encodable properties"))
			continue
		}
		if dryRun {
			result.Succeeded++
			continue
		}
		if _, err := client.CreatePage(ctx, notion.CreatePageRequest{
			Parent:     notion.Parent{Type: "database_id", DatabaseID: databaseID},
			Properties: properties,
		}); err != nil {
			result.fail(i, recordRef(i, record), err)
			continue
		}
		result.Succeeded++
	}
	return result, nil
}

// EncodeRecord builds a property payload from one record using the database
// schema. Fields the schema does not declare and property types the codec
// cannot write are skipped silently; invalid values fail the record.
func EncodeRecord(idx *schema.Index, record Record) (map[string]any, error) {
	properties := make(map[string]any, len(record))
	for name, raw := range record {
		canonical, propSchema, ok := idx.SchemaForName(name)
		if !ok {
			continue
		}
		payload, err := props.Encode(propSchema.Type, stringify(raw))
		if err != nil {
			var unsupported *props.UnsupportedTypeError
			if errors.As(err, &unsupported) {
				continue
			}
			return nil, fmt.Errorf("property %q: %w", canonical, err)
		}
		properties[canonical] = payload
	}
	return properties, nil
}

// UpdatePages patches one page per record. Each record needs an "id" field;
// remaining fields become property payloads via heuristic inference since no
// single schema covers arbitrary pages.
func UpdatePages(
	ctx context.Context,
	client *notion.Client,
	records []Record,
	dryRun bool,
) Result {
	var result Result
	for i, record := range records {
		id := stringify(record["id"])
		if id == "" {
			result.fail(i, recordRef(i, record), errors.New(`record has no "id" field`))
			continue
		}

		properties := make(map[string]any, len(record))
		for name, raw := range record {
			if name == "id" {
				continue
			}
			properties[name] = props.Infer(stringify(raw))
		}
		if len(properties) == 0 {
			result.fail(i, id, errors.New("no properties to update"))
			continue
		}
		if dryRun {
			result.Succeeded++
			continue
		}
		if _, err := client.UpdatePage(ctx, id, notion.UpdatePageRequest{Properties: properties}); err != nil {
			result.fail(i, id, err)
			continue
		}
		result.Succeeded++
	}
	return result
}

// ArchivePages archives one page per record, keyed by the "id" field.
func ArchivePages(
	ctx context.Context,
	client *notion.Client,
	records []Record,
	dryRun bool,
) Result {
	var result Result
	for i, record := range records {
		id := stringify(record["id"])
		if id == "" {
			result.fail(i, recordRef(i, record), errors.New(`record has no "id" field`))
			continue
		}
		if dryRun {
			result.Succeeded++
			continue
		}
		if _, err := client.ArchivePage(ctx, id); err != nil {
			result.fail(i, id, err)
			continue
		}
		result.Succeeded++
	}
	return result
}

// FetchPages retrieves one page per record id, collecting per-item failures.
func FetchPages(ctx context.Context, client *notion.Client, records []Record) ([]notion.Page, Result) {
	var (
		pages  []notion.Page
		result Result
	)
	for i, record := range records {
		id := stringify(record["id"])
		if id == "" {
			result.fail(i, recordRef(i, record), errors.New(`record has no "id" field`))
			continue
		}
		page, err := client.RetrievePage(ctx, id)
		if err != nil {
			result.fail(i, id, err)
			continue
		}
		pages = append(pages, page)
		result.Succeeded++
	}
	return pages, result
}
