package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOpenAITestServer(t *testing.T, handler http.HandlerFunc) *OpenAIProvider {
	t.Helper()
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)

	config := openai.DefaultConfig("test-api-key")
	config.BaseURL = ts.URL + "/v1"
	return newOpenAIProviderWithClient(openai.NewClientWithConfig(config))
}

func TestOpenAIGenerateSuccess(t *testing.T) {
	provider := newOpenAITestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-api-key", r.Header.Get("Authorization"))

		resp := openai.ChatCompletionResponse{
			ID:    "chatcmpl-test",
			Model: "gpt-3.5-turbo",
			Choices: []openai.ChatCompletionChoice{
				{
					Message:      openai.ChatCompletionMessage{Role: "assistant", Content: "We offer two products."},
					FinishReason: openai.FinishReasonStop,
				},
			},
			Usage: openai.Usage{PromptTokens: 42, CompletionTokens: 7},
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	})

	resp, err := provider.Generate(context.Background(), &Request{
		Model:       "gpt-3.5-turbo",
		Messages:    []Message{{Role: RoleUser, Content: "What products do you offer?"}},
		Temperature: 0.7,
		MaxTokens:   1024,
	})
	require.NoError(t, err)
	assert.Equal(t, "We offer two products.", resp.Content)
	assert.Equal(t, "stop", resp.FinishReason)
	assert.Equal(t, 42, resp.InputTokens)
	assert.Equal(t, 7, resp.OutputTokens)
}

func TestOpenAIGenerateAPIErrorWrapsServiceError(t *testing.T) {
	provider := newOpenAITestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error": {"message": "Incorrect API key provided", "type": "invalid_request_error"}}`))
	})

	_, err := provider.Generate(context.Background(), &Request{
		Model:    "gpt-3.5-turbo",
		Messages: []Message{{Role: RoleUser, Content: "hello"}},
	})
	require.Error(t, err)

	var svcErr *ServiceError
	require.True(t, errors.As(err, &svcErr))
	assert.Equal(t, "openai", svcErr.Provider)
}

func TestOpenAIGenerateEmptyChoices(t *testing.T) {
	provider := newOpenAITestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(openai.ChatCompletionResponse{ID: "x", Model: "gpt-3.5-turbo"})
	})

	_, err := provider.Generate(context.Background(), &Request{
		Model:    "gpt-3.5-turbo",
		Messages: []Message{{Role: RoleUser, Content: "hello"}},
	})

	var svcErr *ServiceError
	require.True(t, errors.As(err, &svcErr))
	assert.Contains(t, svcErr.Error(), "no choices")
}
