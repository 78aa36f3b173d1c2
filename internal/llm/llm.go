// Package llm talks to the chat completion providers used for coaching insights.
package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

var (
	ErrEmptyCompletion  = errors.New("empty completion")
	ErrDisabled         = errors.New("ai provider not configured")
	ErrUnknownProvider  = errors.New("unknown ai provider")
	ErrProviderResponse = errors.New("ai provider error")
)

const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
)

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

type Request struct {
	System   string
	Messages []Message
	// JSON asks the provider for a JSON object answer.
	JSON        bool
	Temperature float64
	MaxTokens   int
}

type Response struct {
	Content  string
	Model    string
	Provider string
}

type Completer interface {
	Complete(ctx context.Context, req Request) (*Response, error)
}

type Params struct {
	Provider string
	Model    string
	BaseURL  string
	APIKey   string
	Timeout  time.Duration
}

// New returns the completer for the configured provider. Without an API key
// the returned completer fails every call with ErrDisabled.
func New(ctx context.Context, params Params) (Completer, error) {
	switch params.Provider {
	case ProviderOpenAI, ProviderGemini:
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownProvider, params.Provider)
	}

	if params.APIKey == "" {
		return Disabled{}, nil
	}

	httpClient := &http.Client{
		Timeout:   params.Timeout,
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	}

	if params.Provider == ProviderGemini {
		return NewGemini(ctx, params, httpClient)
	}
	return NewOpenAI(params, httpClient), nil
}

// Disabled is used when no provider is configured.
type Disabled struct{}

func (Disabled) Complete(context.Context, Request) (*Response, error) {
	return nil, ErrDisabled
}
