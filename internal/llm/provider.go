// Package llm is the boundary abstraction over the external
// language-generation service (the Model Gateway).
//
// Calls are fail-fast: a single attempt with a hard timeout and no failure
// retries. Every provider error is wrapped in a *ServiceError so the router
// can substitute a user-facing apology while the cause goes to the operator
// log. The only re-invocation in the system is the router's deliberate
// one-shot language-correction call, which is not a failure retry.
package llm

import (
	"context"
	"time"
)

// TimeoutCall bounds a single model call. Callers needing tighter
// responsiveness should impose their own context deadline; expiry surfaces
// as a ServiceError like any other failure.
const TimeoutCall = 60 * time.Second

// Chat message roles on the wire.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Provider is the interface all model providers implement.
type Provider interface {
	// Name returns the provider identifier (e.g. "openai").
	Name() string
	// Generate sends a completion request and returns the response.
	Generate(ctx context.Context, req *Request) (*Response, error)
}

// Request is a single completion request: system instruction, ordered prior
// turns, and the new user message, already flattened into Messages.
type Request struct {
	Model       string
	Messages    []Message
	Temperature float64
	MaxTokens   int
}

// Message is one chat turn.
type Message struct {
	Role    string
	Content string
}

// Response is the assistant text plus usage accounting.
type Response struct {
	Content      string
	FinishReason string
	InputTokens  int
	OutputTokens int
	Model        string
}
