package llm

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
	"go.opentelemetry.io/otel/trace"

	dukkanotel "github.com/sahla-io/dukkan/internal/otel"
)

var tracer = dukkanotel.Tracer("github.com/sahla-io/dukkan/internal/llm")

// OpenAIProvider implements Provider on the OpenAI chat completions API.
type OpenAIProvider struct {
	client *openai.Client
}

// NewOpenAIProvider creates an OpenAI provider with the given API key. The
// key is an opaque bearer credential; format validation is left to the API's
// error path.
func NewOpenAIProvider(apiKey string) *OpenAIProvider {
	return &OpenAIProvider{client: openai.NewClient(apiKey)}
}

// NewOpenAIProviderWithBaseURL creates an OpenAI provider against a custom
// base URL (e.g. a test server or compatible proxy). baseURL is scheme+host
// without a path; /v1 is appended.
func NewOpenAIProviderWithBaseURL(apiKey, baseURL string) *OpenAIProvider {
	config := openai.DefaultConfig(apiKey)
	config.BaseURL = baseURL + "/v1"
	return &OpenAIProvider{client: openai.NewClientWithConfig(config)}
}

// newOpenAIProviderWithClient injects a pre-configured client. Used in tests.
func newOpenAIProviderWithClient(client *openai.Client) *OpenAIProvider {
	return &OpenAIProvider{client: client}
}

// Name returns the provider identifier.
func (p *OpenAIProvider) Name() string {
	return "openai"
}

// Generate sends a chat completion request. A single attempt, bounded by
// TimeoutCall; every failure comes back as a *ServiceError.
func (p *OpenAIProvider) Generate(ctx context.Context, req *Request) (*Response, error) {
	ctx, span := tracer.Start(ctx, "gen_ai.generate",
		trace.WithAttributes(
			dukkanotel.GenAISystem.String("openai"),
			dukkanotel.GenAIRequestModel.String(req.Model),
			dukkanotel.GenAIRequestTemperature.Float64(req.Temperature),
			dukkanotel.GenAIRequestMaxTokens.Int(req.MaxTokens),
		))
	defer span.End()

	ctx, cancel := context.WithTimeout(ctx, TimeoutCall)
	defer cancel()

	messages := make([]openai.ChatCompletionMessage, len(req.Messages))
	for i, msg := range req.Messages {
		messages[i] = openai.ChatCompletionMessage{
			Role:    msg.Role,
			Content: msg.Content,
		}
	}

	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       req.Model,
		Messages:    messages,
		Temperature: float32(req.Temperature),
		MaxTokens:   req.MaxTokens,
	})
	if err != nil {
		span.RecordError(err)
		return nil, &ServiceError{Provider: p.Name(), Err: fmt.Errorf("chat completion: %w", err)}
	}

	if len(resp.Choices) == 0 {
		return nil, &ServiceError{Provider: p.Name(), Err: fmt.Errorf("chat completion: no choices returned")}
	}

	span.SetAttributes(
		dukkanotel.GenAIUsageInputTokens.Int(resp.Usage.PromptTokens),
		dukkanotel.GenAIUsageOutputTokens.Int(resp.Usage.CompletionTokens),
		dukkanotel.GenAIResponseFinishReason.String(string(resp.Choices[0].FinishReason)),
	)

	RecordUsageMetrics(ctx, req.Model, resp.Usage.PromptTokens, resp.Usage.CompletionTokens)

	return &Response{
		Content:      resp.Choices[0].Message.Content,
		FinishReason: string(resp.Choices[0].FinishReason),
		InputTokens:  resp.Usage.PromptTokens,
		OutputTokens: resp.Usage.CompletionTokens,
		Model:        resp.Model,
	}, nil
}
