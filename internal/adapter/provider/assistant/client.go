package assistant

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/heartmarshall/agewell-backend/internal/domain"
	"github.com/heartmarshall/agewell-backend/internal/provider"
)

// maxErrorBody caps how much of a failed response is read for logging.
const maxErrorBody = 4 << 10

// Client talks to an OpenAI-compatible chat completions endpoint.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	log        *slog.Logger
}

// NewClient creates a Client. An empty apiKey yields a client whose every call
// fails with domain.ErrUnavailable.
func NewClient(baseURL, apiKey string, timeout time.Duration, logger *slog.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: timeout},
		log:        logger.With("adapter", "assistant"),
	}
}

// Configured reports whether an API key is set.
func (c *Client) Configured() bool {
	return c.apiKey != ""
}

// Complete sends the conversation and returns the first choice.
//
// Errors: domain.ErrUnavailable when no key is configured,
// domain.ErrUpstreamTimeout when the request times out, domain.ErrUpstream for
// any other transport, status or decoding failure.
func (c *Client) Complete(ctx context.Context, messages []provider.ChatMessage, opts provider.ChatOptions) (*provider.ChatResult, error) {
	if !c.Configured() {
		return nil, fmt.Errorf("assistant: api key not configured: %w", domain.ErrUnavailable)
	}

	payload := apiRequest{
		Model:       opts.Model,
		Messages:    make([]apiMessage, len(messages)),
		Temperature: opts.Temperature,
		MaxTokens:   opts.MaxTokens,
	}
	for i, m := range messages {
		payload.Messages[i] = apiMessage{Role: m.Role, Content: m.Content}
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("assistant: encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("assistant: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	c.log.DebugContext(ctx, "assistant request",
		slog.String("model", opts.Model),
		slog.Int("messages", len(messages)),
	)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		if isTimeout(err) {
			c.log.WarnContext(ctx, "assistant request timed out", slog.Duration("elapsed", time.Since(start)))
			return nil, fmt.Errorf("assistant: %w", domain.ErrUpstreamTimeout)
		}
		c.log.ErrorContext(ctx, "assistant request failed", slog.String("error", err.Error()))
		return nil, fmt.Errorf("assistant: request failed: %v: %w", err, domain.ErrUpstream)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg := readErrorMessage(resp.Body)
		c.log.ErrorContext(ctx, "assistant upstream error",
			slog.Int("status", resp.StatusCode),
			slog.String("message", msg),
		)
		return nil, fmt.Errorf("assistant: unexpected status %d: %w", resp.StatusCode, domain.ErrUpstream)
	}

	var decoded apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		if isTimeout(err) {
			return nil, fmt.Errorf("assistant: %w", domain.ErrUpstreamTimeout)
		}
		return nil, fmt.Errorf("assistant: decode json: %v: %w", err, domain.ErrUpstream)
	}
	if len(decoded.Choices) == 0 {
		return nil, fmt.Errorf("assistant: empty choices: %w", domain.ErrUpstream)
	}

	result := &provider.ChatResult{
		Reply:            strings.TrimSpace(decoded.Choices[0].Message.Content),
		Model:            decoded.Model,
		PromptTokens:     decoded.Usage.PromptTokens,
		CompletionTokens: decoded.Usage.CompletionTokens,
	}

	c.log.DebugContext(ctx, "assistant response",
		slog.String("model", result.Model),
		slog.Int("completion_tokens", result.CompletionTokens),
		slog.Duration("elapsed", time.Since(start)),
	)

	return result, nil
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

func readErrorMessage(r io.Reader) string {
	raw, _ := io.ReadAll(io.LimitReader(r, maxErrorBody))
	var body apiErrorBody
	if err := json.Unmarshal(raw, &body); err == nil && body.Error.Message != "" {
		return body.Error.Message
	}
	return strings.TrimSpace(string(raw))
}
