package claudebridge

import (
	"context"
	"strings"
)

// TextBlockType tags the content blocks that carry usable reply text.
const TextBlockType = "text"

// ContentBlock is one unit of a model reply, discriminated by Type. Only
// blocks tagged "text" contribute to the joined reply text.
type ContentBlock struct {
	Type string `json:"type"`
	Text string `json:"text,omitempty"`
}

// GenerateRequest describes one text generation call.
type GenerateRequest struct {
	Model       string
	System      string
	Prompt      string
	MaxTokens   int
	Temperature float64
}

// GenerateResult is the provider reply: the model that actually served the
// request plus its content blocks in reply order. The served model may differ
// from the requested one when the provider resolves aliases.
type GenerateResult struct {
	Model   string
	Content []ContentBlock
}

// Text joins the reply's text blocks with newlines, in reply order.
func (r *GenerateResult) Text() string {
	parts := make([]string, 0, len(r.Content))
	for _, block := range r.Content {
		if block.Type == TextBlockType {
			parts = append(parts, block.Text)
		}
	}

	return strings.Join(parts, "\n")
}

// TextGenerator is the remote text generation capability. Implementations
// perform exactly one outbound call per Generate invocation; a failed call is
// terminal for that invocation.
type TextGenerator interface {
	Generate(ctx context.Context, req *GenerateRequest) (*GenerateResult, error)
}
