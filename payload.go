package claudebridge

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// payloadSchema constrains the inbound payload shape. Prompt presence is
// checked separately by the bridge so its absence maps to ErrMissingPrompt
// rather than a decode failure.
const payloadSchema = `{
  "type": "object",
  "properties": {
    "model": {"type": "string"},
    "system": {"type": "string"},
    "prompt": {"type": "string"}
  }
}`

// Payload is the request read from standard input.
type Payload struct {
	Model  string `json:"model,omitempty"`
	System string `json:"system,omitempty"`
	Prompt string `json:"prompt,omitempty"`
}

// ReadPayload consumes r in full and decodes the bridge payload. An empty
// stream yields a zero payload; anything else must be a JSON object
// satisfying the payload schema.
func ReadPayload(r io.Reader) (Payload, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return Payload{}, fmt.Errorf("%w: read stdin: %v", ErrDecodePayload, err)
	}

	if len(raw) == 0 {
		return Payload{}, nil
	}

	if err := validatePayload(raw); err != nil {
		return Payload{}, err
	}

	var p Payload
	if err := json.Unmarshal(raw, &p); err != nil {
		return Payload{}, fmt.Errorf("%w: %v", ErrDecodePayload, err)
	}

	return p, nil
}

func validatePayload(raw []byte) error {
	schemaLoader := gojsonschema.NewStringLoader(payloadSchema)
	docLoader := gojsonschema.NewBytesLoader(raw)

	result, err := gojsonschema.Validate(schemaLoader, docLoader)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrDecodePayload, err)
	}

	if result.Valid() {
		return nil
	}

	errs := make([]string, 0, len(result.Errors()))
	for _, err := range result.Errors() {
		errs = append(errs, err.String())
	}

	return fmt.Errorf("%w: %s", ErrDecodePayload, strings.Join(errs, "; "))
}
