package claudebridge

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

const (
	// anthropicBaseURL is the Anthropic API origin.
	anthropicBaseURL = "https://api.anthropic.com"
	// messagesPath is the Messages API endpoint path.
	messagesPath = "/v1/messages"
	// anthropicVersion pins the Messages API revision.
	anthropicVersion = "2023-06-01"
)

// AnthropicClient implements TextGenerator over the Anthropic Messages API.
type AnthropicClient struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// ClientOption configures an AnthropicClient.
type ClientOption func(*AnthropicClient)

// WithBaseURL points the client at an alternate API origin.
func WithBaseURL(baseURL string) ClientOption {
	return func(c *AnthropicClient) {
		c.baseURL = baseURL
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *AnthropicClient) {
		c.httpClient = httpClient
	}
}

// WithRequestTimeout bounds each request on the underlying HTTP client.
func WithRequestTimeout(timeout time.Duration) ClientOption {
	return func(c *AnthropicClient) {
		c.httpClient.Timeout = timeout
	}
}

// NewAnthropicClient builds a client from the ANTHROPIC_API_KEY environment
// variable. The default client imposes no request timeout; callers bound the
// call through ctx or WithRequestTimeout.
func NewAnthropicClient(opts ...ClientOption) (*AnthropicClient, error) {
	apiKey := os.Getenv(EnvAPIKey)
	if apiKey == "" {
		return nil, ErrMissingCredential
	}

	c := &AnthropicClient{
		apiKey:     apiKey,
		baseURL:    anthropicBaseURL,
		httpClient: &http.Client{},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// messagesRequest is the Messages API request body. Temperature is always
// serialized so the deterministic zero makes it onto the wire.
type messagesRequest struct {
	Model       string    `json:"model"`
	MaxTokens   int       `json:"max_tokens"`
	Temperature float64   `json:"temperature"`
	System      string    `json:"system,omitempty"`
	Messages    []message `json:"messages"`
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// messagesResponse is the Messages API response body.
type messagesResponse struct {
	Model   string         `json:"model"`
	Content []ContentBlock `json:"content"`
	Error   *apiError      `json:"error,omitempty"`
}

type apiError struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

// Generate performs one synchronous Messages API call. Transport and provider
// failures come back as ErrProviderCall with the cause preserved; there is no
// retry and no fallback model.
func (c *AnthropicClient) Generate(ctx context.Context, genReq *GenerateRequest) (*GenerateResult, error) {
	reqBody := messagesRequest{
		Model:       genReq.Model,
		MaxTokens:   genReq.MaxTokens,
		Temperature: genReq.Temperature,
		System:      genReq.System,
		Messages: []message{
			{Role: "user", Content: genReq.Prompt},
		},
	}

	reqBytes, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+messagesPath, bytes.NewReader(reqBytes))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", c.apiKey)
	req.Header.Set("anthropic-version", anthropicVersion)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrProviderCall, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read response: %v", ErrProviderCall, err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d: %s", ErrProviderCall, resp.StatusCode, string(body))
	}

	var respData messagesResponse
	if err := json.Unmarshal(body, &respData); err != nil {
		return nil, fmt.Errorf("%w: unmarshal response: %v", ErrProviderCall, err)
	}

	if respData.Error != nil {
		return nil, fmt.Errorf("%w: %s", ErrProviderCall, respData.Error.Message)
	}

	return &GenerateResult{
		Model:   respData.Model,
		Content: respData.Content,
	}, nil
}
