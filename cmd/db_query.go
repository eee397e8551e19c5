package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yourorg/notioncli/internal/notion"
	"github.com/yourorg/notioncli/internal/schema"
)

type dbQueryOptions struct {
	filter string
	sort   string
	limit  int
}

func newDBQueryCmd(globals *globalOptions) *cobra.Command {
	opts := &dbQueryOptions{}

	cmd := &cobra.Command{
		Use:   "query <database-id>",
		Short: "Query a database's pages",
		Args:  cobra.ExactArgs(1),
		RunE:  opts.run(globals),
	}

	cmd.Flags().StringVar(&opts.filter, "filter", "", "Filter as property=value")
	cmd.Flags().StringVar(&opts.sort, "sort", "", "Sort as property:ascending|descending")
	cmd.Flags().IntVar(&opts.limit, "limit", 0, "Maximum number of pages (0 = all)")

	return cmd
}

func (opts *dbQueryOptions) run(globals *globalOptions) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		client, err := buildClient(globals.profile)
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		req := notion.QueryDatabaseRequest{}

		if opts.filter != "" {
			db, err := client.RetrieveDatabase(ctx, args[0])
			if err != nil {
				return fmt.Errorf("retrieve database: %w", err)
			}
			filter, err := buildFilter(schema.NewIndex(db), opts.filter)
			if err != nil {
				return err
			}
			req.Filter = filter
		}

		if opts.sort != "" {
			sortSpec, err := buildSort(opts.sort)
			if err != nil {
				return err
			}
			req.Sorts = []any{sortSpec}
		}

		pages, err := client.QueryDatabaseAll(ctx, args[0], req)
		if err != nil {
			return fmt.Errorf("query database: %w", err)
		}
		if opts.limit > 0 && len(pages) > opts.limit {
			pages = pages[:opts.limit]
		}
		return printResult(cmd, globals, pages)
	}
}

// buildFilter translates property=value into the API's typed filter grammar
// using the database schema to pick the comparison key.
func buildFilter(idx *schema.Index, spec string) (map[string]any, error) {
	name, value, ok := strings.Cut(spec, "=")
	if !ok || name == "" {
		return nil, fmt.Errorf("invalid --filter %q (want property=value)", spec)
	}

	canonical, propSchema, ok := idx.SchemaForName(name)
	if !ok {
		return nil, fmt.Errorf("database has no property %q", name)
	}

	var condition map[string]any
	switch propSchema.Type {
	case "title", "rich_text":
		condition = map[string]any{"contains": value}
	case "multi_select":
		condition = map[string]any{"contains": value}
	case "number":
		n, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return nil, fmt.Errorf("filter value %q is not numeric: %w", value, err)
		}
		condition = map[string]any{"equals": n}
	case "checkbox":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return nil, fmt.Errorf("filter value %q is not a boolean: %w", value, err)
		}
		condition = map[string]any{"equals": b}
	case "select", "date", "url", "email", "phone_number":
		condition = map[string]any{"equals": value}
	default:
		return nil, fmt.Errorf("property type %q cannot be filtered", propSchema.Type)
	}

	return map[string]any{
		"property":      canonical,
		propSchema.Type: condition,
	}, nil
}

func buildSort(spec string) (map[string]any, error) {
	property, direction, ok := strings.Cut(spec, ":")
	if !ok {
		property = spec
		direction = "ascending"
	}
	if direction != "ascending" && direction != "descending" {
		return nil, fmt.Errorf("invalid sort direction %q (want ascending or descending)", direction)
	}
	if property == "" {
		return nil, fmt.Errorf("invalid --sort %q (want property:direction)", spec)
	}
	return map[string]any{"property": property, "direction": direction}, nil
}
