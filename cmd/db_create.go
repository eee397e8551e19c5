package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yourorg/notioncli/internal/notion"
)

// schemaTypes lists the property types db create accepts in name=type flags.
var schemaTypes = map[string]bool{
	"title":        true,
	"rich_text":    true,
	"number":       true,
	"checkbox":     true,
	"select":       true,
	"multi_select": true,
	"date":         true,
	"url":          true,
	"email":        true,
	"phone_number": true,
}

type dbCreateOptions struct {
	parentID   string
	title      string
	properties []string
	inline     bool
}

func newDBCreateCmd(globals *globalOptions) *cobra.Command {
	opts := &dbCreateOptions{}

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a database under a parent page",
		RunE:  opts.run(globals),
	}

	cmd.Flags().StringVar(&opts.parentID, "parent", "", "Parent page ID (required)")
	cmd.Flags().StringVar(&opts.title, "title", "", "Database title (required)")
	cmd.Flags().StringArrayVar(&opts.properties, "property", nil, "Schema property as name=type (repeatable)")
	cmd.Flags().BoolVar(&opts.inline, "inline", false, "Create the database inline in the parent page")

	return cmd
}

func (opts *dbCreateOptions) run(globals *globalOptions) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		if opts.parentID == "" {
			return errors.New("--parent is required")
		}
		if opts.title == "" {
			return errors.New("--title is required")
		}

		properties, err := opts.buildSchema()
		if err != nil {
			return err
		}

		client, err := buildClient(globals.profile)
		if err != nil {
			return err
		}
		db, err := client.CreateDatabase(cmd.Context(), notion.CreateDatabaseRequest{
			Parent:     notion.Parent{Type: "page_id", PageID: opts.parentID},
			Title:      notion.TextRun(opts.title),
			Properties: properties,
			IsInline:   opts.inline,
		})
		if err != nil {
			return fmt.Errorf("create database: %w", err)
		}
		return printResult(cmd, globals, db)
	}
}

// buildSchema turns name=type flags into schema payloads. Every database
// needs exactly one title property; one named "Name" is added when the flags
// declare none.
func (opts *dbCreateOptions) buildSchema() (map[string]any, error) {
	names, types, err := parsePropertyFlags(opts.properties)
	if err != nil {
		return nil, err
	}

	properties := make(map[string]any, len(names)+1)
	hasTitle := false
	for _, name := range names {
		typeTag := types[name]
		if !schemaTypes[typeTag] {
			return nil, fmt.Errorf("unsupported schema type %q for property %q", typeTag, name)
		}
		if typeTag == "title" {
			hasTitle = true
		}
		properties[name] = map[string]any{typeTag: map[string]any{}}
	}
	if !hasTitle {
		properties["Name"] = map[string]any{"title": map[string]any{}}
	}
	return properties, nil
}
