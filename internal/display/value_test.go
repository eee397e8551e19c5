package display_test

import (
	"encoding/json"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/yourorg/notioncli/internal/display"
)

func TestMapPreservesInsertionOrder(t *testing.T) {
	m := display.NewMap().
		Set("zebra", display.Text("z")).
		Set("alpha", display.Text("a")).
		Set("mid", display.Number(1))

	data, err := json.Marshal(m)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"zebra":"z","alpha":"a","mid":1}`
	if string(data) != want {
		t.Fatalf("json = %s, want %s", data, want)
	}
}

func TestSetKeepsPositionOnOverwrite(t *testing.T) {
	m := display.NewMap().
		Set("a", display.Number(1)).
		Set("b", display.Number(2)).
		Set("a", display.Number(3))

	data, err := json.Marshal(m)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if want := `{"a":3,"b":2}`; string(data) != want {
		t.Fatalf("json = %s, want %s", data, want)
	}
}

func TestScalarFormatting(t *testing.T) {
	tests := []struct {
		name string
		v    display.Value
		want string
	}{
		{"null", display.Null(), ""},
		{"bool", display.Bool(true), "true"},
		{"integer number", display.Number(42), "42"},
		{"decimal number", display.Number(1.5), "1.5"},
		{"text", display.Text("hi"), "hi"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.Scalar(); got != tt.want {
				t.Fatalf("Scalar = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestYAMLUsesBlockStyle(t *testing.T) {
	m := display.NewMap().
		Set("name", display.Text("Tasks")).
		Set("tags", display.List(display.Text("a"), display.Text("b")))

	data, err := yaml.Marshal(m)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := "name: Tasks\ntags:\n    - a\n    - b\n"
	if string(data) != want {
		t.Fatalf("yaml = %q, want %q", data, want)
	}
}

func TestFromAnySortsMapKeys(t *testing.T) {
	v := display.FromAny(map[string]any{"b": 1.0, "a": "x"})
	data, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if want := `{"a":"x","b":1}`; string(data) != want {
		t.Fatalf("json = %s, want %s", data, want)
	}
}

func TestFromAnyRawMessage(t *testing.T) {
	v := display.FromAny(json.RawMessage(`{"k":[1,2]}`))
	data, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if want := `{"k":[1,2]}`; string(data) != want {
		t.Fatalf("json = %s, want %s", data, want)
	}
}
