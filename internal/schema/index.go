// Package schema provides lookup helpers over a database's property schema,
// used by schema-aware page creation and tabular exports.
package schema

import (
	"sort"
	"strings"

	"github.com/yourorg/notioncli/internal/notion"
)

// Index accelerates case-insensitive property lookups on a database schema.
type Index struct {
	byName map[string]indexEntry
	order  []string
}

type indexEntry struct {
	name   string
	schema notion.PropertySchema
}

// NewIndex builds a property index from a database definition.
func NewIndex(db notion.Database) *Index {
	byName := make(map[string]indexEntry, len(db.Properties))
	names := make([]string, 0, len(db.Properties))

	for name, s := range db.Properties {
		byName[normalize(name)] = indexEntry{name: name, schema: s}
		names = append(names, name)
	}

	sort.Strings(names)

	return &Index{
		byName: byName,
		order:  names,
	}
}

// SchemaForName resolves a property name (case-insensitive) to its schema
// and canonical name.
func (i *Index) SchemaForName(name string) (string, notion.PropertySchema, bool) {
	if i == nil {
		return "", notion.PropertySchema{}, false
	}
	entry, ok := i.byName[normalize(name)]
	if !ok {
		return "", notion.PropertySchema{}, false
	}
	return entry.name, entry.schema, true
}

// TypeForName resolves a property name to its declared type tag.
func (i *Index) TypeForName(name string) (string, bool) {
	_, s, ok := i.SchemaForName(name)
	if !ok {
		return "", false
	}
	return s.Type, true
}

// TitleProperty returns the name of the title-typed property, if the schema
// declares one.
func (i *Index) TitleProperty() (string, bool) {
	if i == nil {
		return "", false
	}
	for _, name := range i.order {
		if entry, ok := i.byName[normalize(name)]; ok && entry.schema.Type == "title" {
			return entry.name, true
		}
	}
	return "", false
}

// PropertyNames returns the sorted property names for deterministic output.
func (i *Index) PropertyNames() []string {
	if i == nil {
		return nil
	}
	out := make([]string, len(i.order))
	copy(out, i.order)
	return out
}

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
