package claudebridge

import "testing"

func TestGenerateResultText(t *testing.T) {
	tests := []struct {
		name    string
		content []ContentBlock
		want    string
	}{
		{
			name:    "no content",
			content: nil,
			want:    "",
		},
		{
			name: "single text block",
			content: []ContentBlock{
				{Type: "text", Text: "hello"},
			},
			want: "hello",
		},
		{
			name: "text blocks joined with newline in order",
			content: []ContentBlock{
				{Type: "text", Text: "first"},
				{Type: "text", Text: "second"},
			},
			want: "first\nsecond",
		},
		{
			name: "non-text blocks are skipped",
			content: []ContentBlock{
				{Type: "tool_use"},
				{Type: "text", Text: `{"label":"cat"}`},
				{Type: "thinking", Text: "hidden"},
			},
			want: `{"label":"cat"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := &GenerateResult{Content: tt.content}
			if got := result.Text(); got != tt.want {
				t.Fatalf("Text() = %q, want %q", got, tt.want)
			}
		})
	}
}
