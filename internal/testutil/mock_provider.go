// Package testutil provides shared test helpers and mocks for dukkan tests.
package testutil

import (
	"context"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/sahla-io/dukkan/internal/catalog"
	"github.com/sahla-io/dukkan/internal/llm"
)

// MockProvider implements llm.Provider without live API calls.
//
// Responses is consumed in order; call N past the end repeats the last
// element. When Responses is empty, Generate returns "mock response".
// Set Err to simulate a model-service failure on every call.
type MockProvider struct {
	mu               sync.Mutex
	Responses        []string
	Err              error
	CallCount        int
	ReceivedMessages [][]llm.Message
}

// Name returns "mock".
func (m *MockProvider) Name() string { return "mock" }

// Generate returns the next canned response or the configured error.
func (m *MockProvider) Generate(_ context.Context, req *llm.Request) (*llm.Response, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.CallCount++
	msgs := make([]llm.Message, len(req.Messages))
	copy(msgs, req.Messages)
	m.ReceivedMessages = append(m.ReceivedMessages, msgs)

	if m.Err != nil {
		return nil, m.Err
	}

	content := "mock response"
	if len(m.Responses) > 0 {
		idx := m.CallCount - 1
		if idx >= len(m.Responses) {
			idx = len(m.Responses) - 1
		}
		content = m.Responses[idx]
	}
	return &llm.Response{
		Content:      content,
		FinishReason: "stop",
		InputTokens:  10,
		OutputTokens: 20,
		Model:        req.Model,
	}, nil
}

// TestCatalog returns a small three-product store with a known best seller
// (units sold 10, 50, 30).
func TestCatalog() *catalog.Store {
	return catalog.NewStore([]catalog.Product{
		{
			ID: "prod-001", Name: "Enterprise CRM", NameAr: "نظام إدارة العملاء",
			Price: decimal.NewFromFloat(2500), Currency: "USD", Category: "Business Software",
			UnitsSold:   10,
			Description: "Customer relationship management platform.", DescriptionAr: "منصة إدارة علاقات العملاء.",
		},
		{
			ID: "prod-002", Name: "HR Management Solution", NameAr: "حل إدارة الموارد البشرية",
			Price: decimal.NewFromFloat(1800.50), Currency: "USD", Category: "Business Software",
			UnitsSold:   50,
			Description: "End-to-end HR and payroll suite.", DescriptionAr: "نظام متكامل للموارد البشرية والرواتب.",
		},
		{
			ID: "prod-003", Name: "Inventory Tracker", NameAr: "نظام تتبع المخزون",
			Price: decimal.NewFromFloat(950), Currency: "USD", Category: "Operations",
			UnitsSold:   30,
			Description: "Warehouse inventory tracking.", DescriptionAr: "تتبع مخزون المستودعات.",
		},
	})
}
