package llm

import (
	"context"
	"fmt"
	"net/http"

	"github.com/2beens/fitcoach/internal/telemetry/tracing"

	"go.opentelemetry.io/otel/attribute"
	"google.golang.org/genai"
)

const defaultGeminiModel = "gemini-2.0-flash"

type Gemini struct {
	client *genai.Client
	model  string
}

// NewGemini builds a Gemini API client. BaseURL, when set, replaces the
// public endpoint.
func NewGemini(ctx context.Context, params Params, httpClient *http.Client) (*Gemini, error) {
	cfg := &genai.ClientConfig{
		APIKey:     params.APIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: httpClient,
	}
	if params.BaseURL != "" {
		cfg.HTTPOptions = genai.HTTPOptions{BaseURL: params.BaseURL}
	}

	client, err := genai.NewClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("new genai client: %w", err)
	}

	model := params.Model
	if model == "" {
		model = defaultGeminiModel
	}
	return &Gemini{
		client: client,
		model:  model,
	}, nil
}

func (g *Gemini) Complete(ctx context.Context, req Request) (_ *Response, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "llm.gemini.complete")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(
		attribute.String("llm.model", g.model),
		attribute.Bool("llm.json", req.JSON),
	)

	contents := make([]*genai.Content, 0, len(req.Messages))
	for _, m := range req.Messages {
		role := genai.Role(genai.RoleUser)
		if m.Role == RoleAssistant {
			role = genai.RoleModel
		}
		contents = append(contents, genai.NewContentFromText(m.Content, role))
	}

	cfg := &genai.GenerateContentConfig{
		Temperature: genai.Ptr(float32(req.Temperature)),
	}
	if req.System != "" {
		cfg.SystemInstruction = genai.NewContentFromText(req.System, genai.RoleUser)
	}
	if req.MaxTokens > 0 {
		cfg.MaxOutputTokens = int32(req.MaxTokens)
	}
	if req.JSON {
		cfg.ResponseMIMEType = "application/json"
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, contents, cfg)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrProviderResponse, err)
	}

	text := resp.Text()
	if text == "" {
		return nil, ErrEmptyCompletion
	}

	model := resp.ModelVersion
	if model == "" {
		model = g.model
	}
	return &Response{
		Content:  text,
		Model:    model,
		Provider: ProviderGemini,
	}, nil
}
