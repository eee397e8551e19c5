package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yourorg/notioncli/internal/notion"
	"github.com/yourorg/notioncli/internal/props"
	"github.com/yourorg/notioncli/internal/schema"
)

type dbCreatePageOptions struct {
	properties []string
}

func newDBCreatePageCmd(globals *globalOptions) *cobra.Command {
	opts := &dbCreatePageOptions{}

	cmd := &cobra.Command{
		Use:   "create-page <database-id>",
		Short: "Create a page in a database with schema-aware property encoding",
		Args:  cobra.ExactArgs(1),
		RunE:  opts.run(globals),
	}

	cmd.Flags().StringArrayVar(&opts.properties, "property", nil, "Property as name=value (repeatable)")

	return cmd
}

func (opts *dbCreatePageOptions) run(globals *globalOptions) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		names, values, err := parsePropertyFlags(opts.properties)
		if err != nil {
			return err
		}
		if len(names) == 0 {
			return errors.New("at least one --property is required")
		}

		client, err := buildClient(globals.profile)
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		db, err := client.RetrieveDatabase(ctx, args[0])
		if err != nil {
			return fmt.Errorf("retrieve database: %w", err)
		}
		idx := schema.NewIndex(db)

		properties := make(map[string]any, len(names))
		for _, name := range names {
			canonical, propSchema, ok := idx.SchemaForName(name)
			if !ok {
				fmt.Fprintf(cmd.ErrOrStderr(), "warning: database has no property %q, skipping\n", name)
				continue
			}
			payload, err := props.Encode(propSchema.Type, values[name])
			if err != nil {
				var unsupported *props.UnsupportedTypeError
				if errors.As(err, &unsupported) {
					fmt.Fprintf(cmd.ErrOrStderr(), "warning: property %q: %v, skipping\n", canonical, err)
					continue
				}
				return fmt.Errorf("property %q: %w", canonical, err)
			}
			properties[canonical] = payload
		}
		if len(properties) == 0 {
			return errors.New("no encodable properties")
		}

		page, err := client.CreatePage(ctx, notion.CreatePageRequest{
			Parent:     notion.Parent{Type: "database_id", DatabaseID: args[0]},
			Properties: properties,
		})
		if err != nil {
			return fmt.Errorf("create page: %w", err)
		}
		return printResult(cmd, globals, page)
	}
}
