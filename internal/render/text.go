package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/yourorg/notioncli/internal/display"
)

const textIndent = "  "

// renderText writes the plain-text mode: recursive "key: value" lines with
// two-space indents, numbered separators for record lists and "N. value"
// lines for scalar lists.
func renderText(w io.Writer, v display.Value) error {
	switch v.Kind() {
	case display.KindMap:
		return textMap(w, v, 0)
	case display.KindList:
		return textTopLevelList(w, v.Items())
	default:
		_, err := fmt.Fprintln(w, v.Scalar())
		return err
	}
}

func textTopLevelList(w io.Writer, items []display.Value) error {
	for i, item := range items {
		if item.Kind() == display.KindMap {
			if _, err := fmt.Fprintf(w, "--- Item %d ---\n", i+1); err != nil {
				return fmt.Errorf("write separator: %w", err)
			}
			if err := textMap(w, item, 0); err != nil {
				return err
			}
			continue
		}
		if _, err := fmt.Fprintf(w, "%d. %s\n", i+1, item.Scalar()); err != nil {
			return fmt.Errorf("write item: %w", err)
		}
	}
	return nil
}

func textMap(w io.Writer, v display.Value, depth int) error {
	indent := strings.Repeat(textIndent, depth)
	for _, key := range v.Keys() {
		field, _ := v.Get(key)
		switch field.Kind() {
		case display.KindMap:
			if _, err := fmt.Fprintf(w, "%s%s:\n", indent, key); err != nil {
				return fmt.Errorf("write key: %w", err)
			}
			if err := textMap(w, field, depth+1); err != nil {
				return err
			}
		case display.KindList:
			if _, err := fmt.Fprintf(w, "%s%s:\n", indent, key); err != nil {
				return fmt.Errorf("write key: %w", err)
			}
			if err := textList(w, field.Items(), depth+1); err != nil {
				return err
			}
		default:
			if _, err := fmt.Fprintf(w, "%s%s: %s\n", indent, key, field.Scalar()); err != nil {
				return fmt.Errorf("write field: %w", err)
			}
		}
	}
	return nil
}

func textList(w io.Writer, items []display.Value, depth int) error {
	indent := strings.Repeat(textIndent, depth)
	for _, item := range items {
		switch item.Kind() {
		case display.KindMap:
			if err := textMap(w, item, depth); err != nil {
				return err
			}
		case display.KindList:
			if err := textList(w, item.Items(), depth+1); err != nil {
				return err
			}
		default:
			if _, err := fmt.Fprintf(w, "%s- %s\n", indent, item.Scalar()); err != nil {
				return fmt.Errorf("write list item: %w", err)
			}
		}
	}
	return nil
}
