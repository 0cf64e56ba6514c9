// Package claudebridge bridges an annotation service to the Anthropic
// Messages API: one JSON payload in on stdin, one Claude call, one JSON
// annotation out on stdout.
package claudebridge

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Output is the result written to standard output. Annotation holds the JSON
// value extracted from the model reply; Model is the identifier the provider
// reports serving the request with.
type Output struct {
	Annotation any    `json:"annotation"`
	Model      string `json:"model"`
}

// Bridge runs the request/response pipeline around one TextGenerator call.
type Bridge struct {
	client TextGenerator
	log    zerolog.Logger
}

// Option configures a Bridge.
type Option func(*Bridge)

// WithLogger routes invocation diagnostics to log. The default logger
// discards everything so the stdout/stderr contract stays clean.
func WithLogger(log zerolog.Logger) Option {
	return func(b *Bridge) {
		b.log = log
	}
}

// New creates a bridge around the given text generation client.
func New(client TextGenerator, opts ...Option) (*Bridge, error) {
	if client == nil {
		return nil, ErrNoClient
	}

	b := &Bridge{
		client: client,
		log:    zerolog.Nop(),
	}

	for _, opt := range opts {
		opt(b)
	}

	return b, nil
}

// Run executes one full bridge invocation: decode the payload from in, call
// the model once, extract the annotation and write the output JSON to out.
// Nothing is written to out on failure, and the success output carries no
// trailing newline.
func (b *Bridge) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	payload, err := ReadPayload(in)
	if err != nil {
		return err
	}

	model := payload.Model
	if model == "" {
		model = DefaultModel
	}

	system := payload.System
	if system == "" {
		system = DefaultSystem
	}

	if payload.Prompt == "" {
		return ErrMissingPrompt
	}

	log := b.log.With().
		Str("request_id", uuid.NewString()).
		Str("model", model).
		Logger()
	log.Debug().Int("prompt_len", len(payload.Prompt)).Msg("invoking model")

	started := time.Now()

	result, err := b.client.Generate(ctx, &GenerateRequest{
		Model:       model,
		System:      system,
		Prompt:      payload.Prompt,
		MaxTokens:   MaxOutputTokens,
		Temperature: 0,
	})
	if err != nil {
		return err
	}

	log.Debug().
		Dur("elapsed", time.Since(started)).
		Str("served_by", result.Model).
		Msg("model replied")

	output := Output{
		Annotation: ExtractJSON(result.Text()),
		Model:      result.Model,
	}

	data, err := json.Marshal(output)
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}

	if _, err := out.Write(data); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	return nil
}
