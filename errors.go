package claudebridge

import "errors"

var (
	// ErrDecodePayload indicates stdin held data that is not a valid JSON payload.
	ErrDecodePayload = errors.New("failed to decode payload")
	// ErrMissingCredential indicates the API key environment variable is unset.
	ErrMissingCredential = errors.New("ANTHROPIC_API_KEY environment variable is required")
	// ErrMissingPrompt indicates the payload carries no prompt.
	ErrMissingPrompt = errors.New("prompt is required in payload")
	// ErrNoClient indicates the bridge was built without a text generation client.
	ErrNoClient = errors.New("text generation client is required")
	// ErrProviderCall indicates the remote model invocation failed.
	ErrProviderCall = errors.New("provider call failed")
)
