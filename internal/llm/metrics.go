package llm

import (
	"context"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const usageMeterName = "github.com/sahla-io/dukkan/internal/llm"

var (
	inputTokensHistogram  metric.Int64Histogram
	outputTokensHistogram metric.Int64Histogram
	usageMetricsOnce      sync.Once
	usageMetricsOK        bool
)

func initUsageMetrics() {
	meter := otel.Meter(usageMeterName)
	var err error
	inputTokensHistogram, err = meter.Int64Histogram(
		"dukkan.llm.input_tokens",
		metric.WithDescription("Prompt tokens per model call"),
	)
	if err != nil {
		return
	}
	outputTokensHistogram, err = meter.Int64Histogram(
		"dukkan.llm.output_tokens",
		metric.WithDescription("Completion tokens per model call"),
	)
	if err != nil {
		return
	}
	usageMetricsOK = true
}

// RecordUsageMetrics records token usage after a model call.
func RecordUsageMetrics(ctx context.Context, model string, inputTokens, outputTokens int) {
	usageMetricsOnce.Do(initUsageMetrics)
	if !usageMetricsOK {
		return
	}
	attrs := metric.WithAttributes(attribute.String("model", model))
	inputTokensHistogram.Record(ctx, int64(inputTokens), attrs)
	outputTokensHistogram.Record(ctx, int64(outputTokens), attrs)
}
