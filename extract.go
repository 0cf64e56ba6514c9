package claudebridge

import (
	"encoding/json"
	"strings"
)

// ExtractJSON pulls a JSON value out of free-form model text. It parses the
// span from the first "{" to the last "}", tolerating prose around the
// braces. Whatever parses inside that span is returned verbatim, object or
// not. When no parseable span exists the trimmed text is wrapped as
// {"reasoning": <text>}; empty text yields an empty object.
func ExtractJSON(text string) any {
	if text == "" {
		return map[string]any{}
	}

	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start == -1 || end == -1 || end <= start {
		return map[string]any{"reasoning": strings.TrimSpace(text)}
	}

	var v any
	if err := json.Unmarshal([]byte(text[start:end+1]), &v); err != nil {
		return map[string]any{"reasoning": strings.TrimSpace(text)}
	}

	return v
}
