package props_test

import (
	"errors"
	"testing"

	"github.com/yourorg/notioncli/internal/display"
	"github.com/yourorg/notioncli/internal/notion"
	"github.com/yourorg/notioncli/internal/props"
)

func TestSimplifyDefaults(t *testing.T) {
	tests := []struct {
		name  string
		prop  notion.PropertyValue
		check func(t *testing.T, v display.Value)
	}{
		{
			name: "checkbox without value is false",
			prop: notion.PropertyValue{Type: "checkbox"},
			check: func(t *testing.T, v display.Value) {
				t.Helper()
				if v.Kind() != display.KindBool || v.BoolValue() {
					t.Fatalf("want false bool, got %#v", v)
				}
			},
		},
		{
			name: "select without selection is null",
			prop: notion.PropertyValue{Type: "select"},
			check: func(t *testing.T, v display.Value) {
				t.Helper()
				if !v.IsNull() {
					t.Fatalf("want null, got %#v", v)
				}
			},
		},
		{
			name: "multi_select without options is empty list",
			prop: notion.PropertyValue{Type: "multi_select"},
			check: func(t *testing.T, v display.Value) {
				t.Helper()
				if v.Kind() != display.KindList || v.Len() != 0 {
					t.Fatalf("want empty list, got %#v", v)
				}
			},
		},
		{
			name: "number without value is null",
			prop: notion.PropertyValue{Type: "number"},
			check: func(t *testing.T, v display.Value) {
				t.Helper()
				if !v.IsNull() {
					t.Fatalf("want null, got %#v", v)
				}
			},
		},
		{
			name: "date uses start",
			prop: notion.PropertyValue{Type: "date", Date: &notion.DateValue{Start: "2024-01-15"}},
			check: func(t *testing.T, v display.Value) {
				t.Helper()
				if v.TextValue() != "2024-01-15" {
					t.Fatalf("want start date, got %#v", v)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.check(t, props.Simplify(tt.prop))
		})
	}
}

func TestSimplifyVariants(t *testing.T) {
	title := props.Simplify(notion.PropertyValue{
		Type:  "title",
		Title: []notion.RichText{{PlainText: "Hello"}},
	})
	if title.TextValue() != "Hello" {
		t.Fatalf("title = %#v", title)
	}

	sel := props.Simplify(notion.PropertyValue{
		Type:   "select",
		Select: &notion.SelectValue{Name: "Active"},
	})
	if sel.TextValue() != "Active" {
		t.Fatalf("select = %#v", sel)
	}

	multi := props.Simplify(notion.PropertyValue{
		Type: "multi_select",
		MultiSelect: []notion.SelectValue{
			{Name: "A"}, {Name: "B"},
		},
	})
	if multi.Len() != 2 || multi.Items()[0].TextValue() != "A" {
		t.Fatalf("multi_select = %#v", multi)
	}

	people := props.Simplify(notion.PropertyValue{
		Type: "people",
		People: []notion.UserReference{
			{ID: "u1", Name: "Ada"},
			{ID: "u2"},
		},
	})
	if people.Items()[0].TextValue() != "Ada" || people.Items()[1].TextValue() != "u2" {
		t.Fatalf("people = %#v", people)
	}

	relation := props.Simplify(notion.PropertyValue{
		Type:     "relation",
		Relation: []notion.RelationReference{{ID: "r1"}},
	})
	if relation.Items()[0].TextValue() != "r1" {
		t.Fatalf("relation = %#v", relation)
	}
}

func TestEncodeNumber(t *testing.T) {
	payload, err := props.Encode("number", "42")
	if err != nil {
		t.Fatalf("Encode returned error: %v", err)
	}
	if payload["number"] != 42.0 {
		t.Fatalf("number payload = %#v", payload)
	}

	_, err = props.Encode("number", "abc")
	var invalid *props.InvalidValueError
	if !errors.As(err, &invalid) {
		t.Fatalf("expected InvalidValueError, got %v", err)
	}
}

func TestEncodeMultiSelectTrimsWhitespace(t *testing.T) {
	payload, err := props.Encode("multi_select", "A, B,C")
	if err != nil {
		t.Fatalf("Encode returned error: %v", err)
	}
	options, ok := payload["multi_select"].([]map[string]any)
	if !ok {
		t.Fatalf("unexpected payload shape: %#v", payload)
	}
	want := []string{"A", "B", "C"}
	if len(options) != len(want) {
		t.Fatalf("got %d options, want %d", len(options), len(want))
	}
	for i, name := range want {
		if options[i]["name"] != name {
			t.Fatalf("option %d = %#v, want %q", i, options[i], name)
		}
	}
}

func TestEncodeCheckboxTruthySet(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"true", true},
		{"TRUE", true},
		{"1", true},
		{"yes", true},
		{"Yes", true},
		{"false", false},
		{"0", false},
		{"no", false},
		{"anything", false},
	}

	for _, tt := range tests {
		payload, err := props.Encode("checkbox", tt.value)
		if err != nil {
			t.Fatalf("Encode(%q) returned error: %v", tt.value, err)
		}
		if payload["checkbox"] != tt.want {
			t.Fatalf("Encode(%q) = %#v, want %v", tt.value, payload, tt.want)
		}
	}
}

func TestEncodeUnsupportedTypes(t *testing.T) {
	for _, typeTag := range []string{"relation", "people", "formula", "rollup"} {
		_, err := props.Encode(typeTag, "x")
		var unsupported *props.UnsupportedTypeError
		if !errors.As(err, &unsupported) {
			t.Fatalf("Encode(%q): expected UnsupportedTypeError, got %v", typeTag, err)
		}
	}
}

func TestEncodeDatePassesThrough(t *testing.T) {
	payload, err := props.Encode("date", "not-a-date")
	if err != nil {
		t.Fatalf("Encode returned error: %v", err)
	}
	date, ok := payload["date"].(map[string]any)
	if !ok || date["start"] != "not-a-date" {
		t.Fatalf("date payload = %#v", payload)
	}
}

func TestInfer(t *testing.T) {
	if payload := props.Infer("true"); payload["checkbox"] != true {
		t.Fatalf("Infer(true) = %#v", payload)
	}
	if payload := props.Infer("False"); payload["checkbox"] != false {
		t.Fatalf("Infer(False) = %#v", payload)
	}
	if payload := props.Infer("123"); payload["number"] != 123.0 {
		t.Fatalf("Infer(123) = %#v", payload)
	}
	payload := props.Infer("hello world")
	if _, ok := payload["rich_text"]; !ok {
		t.Fatalf("Infer(text) = %#v", payload)
	}
	if payload := props.Infer("12.5"); payload["number"] != nil {
		t.Fatalf("decimal strings are not all-digits: %#v", payload)
	}
}
