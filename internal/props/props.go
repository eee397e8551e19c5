// Package props is the bidirectional property-value codec: Simplify projects
// typed page properties into display values for output, Encode builds typed
// property payloads from user-supplied strings for create/update requests,
// and Infer guesses a payload shape when no database schema is available.
package props

import (
	"strconv"
	"strings"

	"github.com/yourorg/notioncli/internal/display"
	"github.com/yourorg/notioncli/internal/notion"
)

// checkboxTruthy lists the strings Encode accepts as a checked checkbox,
// compared case-insensitively. Everything else is unchecked.
var checkboxTruthy = map[string]bool{
	"true": true,
	"1":    true,
	"yes":  true,
}

// Simplify projects a property into its display value. Total over every
// property type: unknown types pass through their raw payload unchanged.
func Simplify(p notion.PropertyValue) display.Value {
	switch p.Type {
	case "title":
		return display.Text(notion.PlainText(p.Title))
	case "rich_text":
		return display.Text(notion.PlainText(p.RichText))
	case "number":
		if p.Number == nil {
			return display.Null()
		}
		return display.Number(*p.Number)
	case "checkbox":
		if p.Checkbox == nil {
			return display.Bool(false)
		}
		return display.Bool(*p.Checkbox)
	case "select":
		if p.Select == nil {
			return display.Null()
		}
		return display.Text(p.Select.Name)
	case "multi_select":
		names := make([]display.Value, 0, len(p.MultiSelect))
		for _, opt := range p.MultiSelect {
			names = append(names, display.Text(opt.Name))
		}
		return display.List(names...)
	case "date":
		if p.Date == nil {
			return display.Null()
		}
		return display.Text(p.Date.Start)
	case "url":
		return optionalText(p.URL)
	case "email":
		return optionalText(p.Email)
	case "phone_number":
		return optionalText(p.Phone)
	case "relation":
		ids := make([]display.Value, 0, len(p.Relation))
		for _, ref := range p.Relation {
			ids = append(ids, display.Text(ref.ID))
		}
		return display.List(ids...)
	case "people":
		people := make([]display.Value, 0, len(p.People))
		for _, ref := range p.People {
			if ref.Name != "" {
				people = append(people, display.Text(ref.Name))
			} else {
				people = append(people, display.Text(ref.ID))
			}
		}
		return display.List(people...)
	default:
		return display.FromAny(p.Raw)
	}
}

func optionalText(s *string) display.Value {
	if s == nil {
		return display.Null()
	}
	return display.Text(*s)
}

// Encode builds the typed property payload for a create/update request from
// a user-supplied string. Number inputs that fail to parse return
// InvalidValueError; property types with no write path return
// UnsupportedTypeError. Dates pass through unvalidated; the server owns date
// format checking.
func Encode(typeTag, value string) (map[string]any, error) {
	switch typeTag {
	case "title":
		return map[string]any{"title": notion.TextRun(value)}, nil
	case "rich_text":
		return map[string]any{"rich_text": notion.TextRun(value)}, nil
	case "number":
		n, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil {
			return nil, &InvalidValueError{PropertyType: typeTag, Value: value}
		}
		return map[string]any{"number": n}, nil
	case "checkbox":
		return map[string]any{"checkbox": checkboxTruthy[strings.ToLower(strings.TrimSpace(value))]}, nil
	case "select":
		return map[string]any{"select": map[string]any{"name": value}}, nil
	case "multi_select":
		parts := strings.Split(value, ",")
		options := make([]map[string]any, 0, len(parts))
		for _, part := range parts {
			options = append(options, map[string]any{"name": strings.TrimSpace(part)})
		}
		return map[string]any{"multi_select": options}, nil
	case "date":
		return map[string]any{"date": map[string]any{"start": value}}, nil
	case "url":
		return map[string]any{"url": value}, nil
	case "email":
		return map[string]any{"email": value}, nil
	case "phone_number":
		return map[string]any{"phone_number": value}, nil
	default:
		return nil, &UnsupportedTypeError{PropertyType: typeTag}
	}
}

// Infer guesses a property payload from the shape of an ad hoc string value:
// "true"/"false" become a checkbox, all-digit strings become a number and
// everything else becomes rich text. Used only when no database schema is
// available; a declared schema type always takes precedence.
func Infer(value string) map[string]any {
	lower := strings.ToLower(strings.TrimSpace(value))
	if lower == "true" || lower == "false" {
		return map[string]any{"checkbox": lower == "true"}
	}
	if allDigits(value) {
		n, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err == nil {
			return map[string]any{"number": n}
		}
	}
	return map[string]any{"rich_text": notion.TextRun(value)}
}

func allDigits(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
