package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/2beens/fitcoach/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

const (
	defaultOpenAIBaseURL = "https://api.openai.com/v1"
	defaultOpenAIModel   = "gpt-4o-mini"

	openAIMaxRetries = 2
)

type openAIMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type openAIResponseFormat struct {
	Type string `json:"type"`
}

type openAIRequest struct {
	Model          string                `json:"model"`
	Messages       []openAIMessage       `json:"messages"`
	Temperature    float64               `json:"temperature"`
	MaxTokens      int                   `json:"max_tokens,omitempty"`
	ResponseFormat *openAIResponseFormat `json:"response_format,omitempty"`
}

type openAIResponse struct {
	Model   string `json:"model"`
	Choices []struct {
		Message openAIMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// OpenAI is a client for OpenAI compatible chat completion APIs.
type OpenAI struct {
	baseURL    string
	apiKey     string
	model      string
	httpClient *http.Client
	backoff    time.Duration
}

func NewOpenAI(params Params, httpClient *http.Client) *OpenAI {
	baseURL := strings.TrimRight(params.BaseURL, "/")
	if baseURL == "" {
		baseURL = defaultOpenAIBaseURL
	}
	model := params.Model
	if model == "" {
		model = defaultOpenAIModel
	}
	return &OpenAI{
		baseURL:    baseURL,
		apiKey:     params.APIKey,
		model:      model,
		httpClient: httpClient,
		backoff:    500 * time.Millisecond,
	}
}

// WithBackoff sets the wait before the first retry, doubled on each next one.
func (c *OpenAI) WithBackoff(d time.Duration) *OpenAI {
	c.backoff = d
	return c
}

// Complete retries on 429 and 5xx answers.
func (c *OpenAI) Complete(ctx context.Context, req Request) (_ *Response, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "llm.openai.complete")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(
		attribute.String("llm.model", c.model),
		attribute.Bool("llm.json", req.JSON),
	)

	body := openAIRequest{
		Model:       c.model,
		Messages:    make([]openAIMessage, 0, len(req.Messages)+1),
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	}
	if req.System != "" {
		body.Messages = append(body.Messages, openAIMessage{Role: "system", Content: req.System})
	}
	for _, m := range req.Messages {
		body.Messages = append(body.Messages, openAIMessage{Role: string(m.Role), Content: m.Content})
	}
	if req.JSON {
		body.ResponseFormat = &openAIResponseFormat{Type: "json_object"}
	}

	reqBytes, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	var lastErr error
	for attempt := 0; attempt <= openAIMaxRetries; attempt++ {
		if attempt > 0 {
			wait := c.backoff * time.Duration(1<<(attempt-1))
			log.Debugf("openai: retry %d in %s after: %s", attempt, wait, lastErr)
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(wait):
			}
		}

		resp, retry, err := c.do(ctx, reqBytes)
		if err == nil {
			span.SetAttributes(attribute.Int("llm.attempts", attempt+1))
			return resp, nil
		}
		if !retry {
			return nil, err
		}
		lastErr = err
	}

	return nil, fmt.Errorf("max retries exceeded: %w", lastErr)
}

// do makes one call, retry tells whether the failure is worth another attempt.
func (c *OpenAI) do(ctx context.Context, reqBytes []byte) (_ *Response, retry bool, _ error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(reqBytes))
	if err != nil {
		return nil, false, fmt.Errorf("new request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, ctx.Err() == nil, fmt.Errorf("http client do: %w", err)
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, true, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
		return nil, true, fmt.Errorf("%w: status %d", ErrProviderResponse, resp.StatusCode)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, false, fmt.Errorf("%w: status %d: %s", ErrProviderResponse, resp.StatusCode, truncate(string(respBytes), 300))
	}

	var parsed openAIResponse
	if err := json.Unmarshal(respBytes, &parsed); err != nil {
		return nil, false, fmt.Errorf("unmarshal response: %w", err)
	}
	if parsed.Error != nil {
		return nil, false, fmt.Errorf("%w: %s", ErrProviderResponse, parsed.Error.Message)
	}
	if len(parsed.Choices) == 0 {
		return nil, false, ErrEmptyCompletion
	}

	model := parsed.Model
	if model == "" {
		model = c.model
	}
	return &Response{
		Content:  parsed.Choices[0].Message.Content,
		Model:    model,
		Provider: ProviderOpenAI,
	}, false, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
