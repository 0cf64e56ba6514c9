package claudebridge

import (
	"reflect"
	"testing"
)

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name string
		text string
		want any
	}{
		{
			name: "empty text",
			text: "",
			want: map[string]any{},
		},
		{
			name: "bare object",
			text: `{"label":"cat"}`,
			want: map[string]any{"label": "cat"},
		},
		{
			name: "object inside prose",
			text: `Sure! Here is the result: {"label": "cat", "score": 0.9} Hope that helps.`,
			want: map[string]any{"label": "cat", "score": 0.9},
		},
		{
			name: "no json at all",
			text: "no json here",
			want: map[string]any{"reasoning": "no json here"},
		},
		{
			name: "unterminated object",
			text: "{broken json",
			want: map[string]any{"reasoning": "{broken json"},
		},
		{
			name: "closing brace before opening",
			text: "} nothing useful {",
			want: map[string]any{"reasoning": "} nothing useful {"},
		},
		{
			name: "unparseable span falls back",
			text: "{not: valid}",
			want: map[string]any{"reasoning": "{not: valid}"},
		},
		{
			name: "fallback trims whitespace",
			text: "  just words  \n",
			want: map[string]any{"reasoning": "just words"},
		},
		{
			name: "nested object keeps widest span",
			text: `{"a":{"b":1}}`,
			want: map[string]any{"a": map[string]any{"b": float64(1)}},
		},
		{
			name: "braces in prose around object pick widest span",
			text: `think {hard} then {"x":1}`,
			want: map[string]any{"reasoning": `think {hard} then {"x":1}`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractJSON(tt.text)
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("ExtractJSON(%q) = %#v, want %#v", tt.text, got, tt.want)
			}
		})
	}
}

func TestExtractJSONIsPure(t *testing.T) {
	texts := []string{
		"",
		"no json here",
		`prefix {"label":"cat"} suffix`,
		"{broken json",
	}

	for _, text := range texts {
		first := ExtractJSON(text)
		second := ExtractJSON(text)
		if !reflect.DeepEqual(first, second) {
			t.Fatalf("ExtractJSON(%q) not idempotent: %#v vs %#v", text, first, second)
		}
	}
}
