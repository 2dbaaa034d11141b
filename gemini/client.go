package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/randalmurphal/culinary/provider"
)

// apiKeyHeader carries the API key so it never appears in request URLs.
const apiKeyHeader = "x-goog-api-key"

// Defaults for a new Client.
const (
	DefaultBaseURL    = "https://generativelanguage.googleapis.com"
	DefaultAPIVersion = "v1beta"
	DefaultModel      = "gemini-2.0-flash"
	DefaultTimeout    = 60 * time.Second
)

const providerName = "gemini"

// Client calls the Gemini generateContent endpoint.
// It is safe for concurrent use.
type Client struct {
	apiKey       string
	model        string
	baseURL      string
	apiVersion   string
	systemPrompt string
	temperature  *float64
	maxTokens    int
	timeout      time.Duration
	httpClient   *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithAPIKey sets the API key sent in the x-goog-api-key header.
func WithAPIKey(key string) Option {
	return func(c *Client) { c.apiKey = key }
}

// WithModel sets the default model.
func WithModel(model string) Option {
	return func(c *Client) { c.model = model }
}

// WithBaseURL overrides the API endpoint, e.g. for a proxy or test server.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = strings.TrimRight(u, "/") }
}

// WithAPIVersion sets the API version path segment.
func WithAPIVersion(v string) Option {
	return func(c *Client) { c.apiVersion = v }
}

// WithSystemPrompt sets a system instruction sent with every request.
func WithSystemPrompt(prompt string) Option {
	return func(c *Client) { c.systemPrompt = prompt }
}

// WithTemperature sets the default sampling temperature.
func WithTemperature(t float64) Option {
	return func(c *Client) { c.temperature = &t }
}

// WithMaxTokens sets the default maxOutputTokens.
func WithMaxTokens(n int) Option {
	return func(c *Client) { c.maxTokens = n }
}

// WithTimeout bounds each Complete call.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.timeout = d }
}

// WithHTTPClient replaces the HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// New creates a Gemini client.
func New(opts ...Option) *Client {
	c := &Client{
		model:      DefaultModel,
		baseURL:    DefaultBaseURL,
		apiVersion: DefaultAPIVersion,
		timeout:    DefaultTimeout,
		httpClient: http.DefaultClient,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Model returns the default model.
func (c *Client) Model() string {
	return c.model
}

// Provider implements provider.Client.
func (c *Client) Provider() string {
	return providerName
}

// Close implements provider.Client.
func (c *Client) Close() error {
	return nil
}

// Complete implements provider.Client.
func (c *Client) Complete(ctx context.Context, req provider.Request) (*provider.Response, error) {
	if c.apiKey == "" {
		return nil, provider.NewError(providerName, "complete", provider.ErrCredentialsNotFound, false)
	}

	model := c.model
	if req.Model != "" {
		model = req.Model
	}

	body, err := json.Marshal(c.buildRequest(req))
	if err != nil {
		return nil, provider.NewError(providerName, "complete", fmt.Errorf("%w: %w", provider.ErrInvalidRequest, err), false)
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint(model), bytes.NewReader(body))
	if err != nil {
		return nil, provider.NewError(providerName, "complete", fmt.Errorf("%w: %w", provider.ErrInvalidRequest, err), false)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set(apiKeyHeader, c.apiKey)

	slog.Debug("gemini request",
		slog.String("model", model),
		slog.Int("prompt_bytes", len(body)))

	start := time.Now()
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, c.transportError(ctx, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, c.transportError(ctx, err)
	}

	if resp.StatusCode != http.StatusOK {
		apiErr := statusError(resp.StatusCode, raw)
		slog.Warn("gemini request failed",
			slog.String("model", model),
			slog.Int("status", resp.StatusCode),
			slog.Any("error", apiErr))
		return nil, apiErr
	}

	out, err := parseResponse(raw)
	if err != nil {
		return nil, err
	}
	if out.Model == "" {
		out.Model = model
	}
	if out.Usage.TotalTokens == 0 {
		out.Usage = provider.EstimateUsage(req.Prompt(), out.Content)
	}
	out.Duration = time.Since(start)
	return out, nil
}

func (c *Client) endpoint(model string) string {
	return fmt.Sprintf("%s/%s/models/%s:generateContent",
		c.baseURL, c.apiVersion, url.PathEscape(model))
}

func (c *Client) buildRequest(req provider.Request) generateRequest {
	var system []string
	if c.systemPrompt != "" {
		system = append(system, c.systemPrompt)
	}
	if req.SystemPrompt != "" {
		system = append(system, req.SystemPrompt)
	}

	var out generateRequest
	for _, m := range req.Messages {
		switch m.Role {
		case provider.RoleSystem:
			system = append(system, m.Content)
		case provider.RoleAssistant:
			out.Contents = append(out.Contents, content{Role: "model", Parts: []part{{Text: m.Content}}})
		default:
			out.Contents = append(out.Contents, content{Role: "user", Parts: []part{{Text: m.Content}}})
		}
	}
	if len(system) > 0 {
		out.SystemInstruction = &content{Parts: []part{{Text: strings.Join(system, "\n\n")}}}
	}

	out.GenerationConfig.Temperature = c.temperature
	if req.Temperature != nil {
		out.GenerationConfig.Temperature = req.Temperature
	}
	out.GenerationConfig.MaxOutputTokens = c.maxTokens
	if req.MaxTokens > 0 {
		out.GenerationConfig.MaxOutputTokens = req.MaxTokens
	}
	return out
}

// transportError classifies a failed round trip. Cancellation by the caller
// is not retryable; our own deadline and network failures are.
func (c *Client) transportError(ctx context.Context, err error) error {
	// *url.Error repeats the request URL; keep only the cause.
	var uerr *url.Error
	if errors.As(err, &uerr) {
		err = uerr.Err
	}
	switch {
	case errors.Is(ctx.Err(), context.DeadlineExceeded):
		return provider.NewError(providerName, "complete", fmt.Errorf("%w: %w", provider.ErrTimeout, err), true)
	case ctx.Err() != nil:
		return provider.NewError(providerName, "complete", ctx.Err(), false)
	}
	return provider.NewError(providerName, "complete", fmt.Errorf("%w: %w", provider.ErrUnavailable, err), true)
}

func statusError(status int, body []byte) error {
	msg := http.StatusText(status)
	var e apiError
	if json.Unmarshal(body, &e) == nil && e.Error.Message != "" {
		msg = e.Error.Message
	}

	var (
		sentinel  error
		retryable bool
	)
	switch {
	case status == http.StatusTooManyRequests:
		sentinel, retryable = provider.ErrRateLimited, true
	case status >= 500:
		sentinel, retryable = provider.ErrUnavailable, true
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		sentinel = provider.ErrCredentialsNotFound
	default:
		sentinel = provider.ErrInvalidRequest
	}
	return provider.NewError(providerName, "complete", fmt.Errorf("%w: %d %s", sentinel, status, msg), retryable)
}

func parseResponse(raw []byte) (*provider.Response, error) {
	var r generateResponse
	if err := json.Unmarshal(raw, &r); err != nil {
		return nil, provider.NewError(providerName, "complete", fmt.Errorf("%w: decode: %w", provider.ErrUnavailable, err), true)
	}

	if len(r.Candidates) == 0 {
		return nil, provider.NewError(providerName, "complete", provider.ErrEmptyResponse, false)
	}
	cand := r.Candidates[0]

	var text strings.Builder
	for _, p := range cand.Content.Parts {
		text.WriteString(p.Text)
	}
	if strings.TrimSpace(text.String()) == "" {
		return nil, provider.NewError(providerName, "complete",
			fmt.Errorf("%w (finish reason %q)", provider.ErrEmptyResponse, cand.FinishReason), false)
	}

	return &provider.Response{
		Content:      text.String(),
		Model:        r.ModelVersion,
		FinishReason: strings.ToLower(cand.FinishReason),
		Usage: provider.TokenUsage{
			InputTokens:  r.UsageMetadata.PromptTokenCount,
			OutputTokens: r.UsageMetadata.CandidatesTokenCount,
			TotalTokens:  r.UsageMetadata.TotalTokenCount,
		},
	}, nil
}
