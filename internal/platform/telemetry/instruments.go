package telemetry

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "github.com/jsamuelsen/question-bank"

// Tracer returns the tracer used for application spans.
func Tracer() trace.Tracer {
	return otel.Tracer(instrumentationName)
}

// TraceID returns the trace id of the span in ctx, or "" when there is none.
func TraceID(ctx context.Context) string {
	if sc := trace.SpanContextFromContext(ctx); sc.HasTraceID() {
		return sc.TraceID().String()
	}

	return ""
}

// Mutation outcomes recorded by QuestionMetrics.
const (
	OutcomeCreated = "created"
	OutcomeFailed  = "failed"
	OutcomeNotRead = "not_read"
)

// QuestionMetrics holds the instruments of the question mutations and loader.
// A nil *QuestionMetrics records nothing.
type QuestionMetrics struct {
	mutations metric.Int64Counter
	batchSize metric.Int64Histogram
}

// NewQuestionMetrics creates the instruments on the global meter.
func NewQuestionMetrics() (*QuestionMetrics, error) {
	meter := otel.Meter(instrumentationName)

	mutations, err := meter.Int64Counter(
		"question.mutations",
		metric.WithDescription("MultipleChoiceAdd executions by outcome"),
	)
	if err != nil {
		return nil, err
	}

	batchSize, err := meter.Int64Histogram(
		"question.loader.batch_size",
		metric.WithDescription("Number of ids fetched by one loader batch"),
	)
	if err != nil {
		return nil, err
	}

	return &QuestionMetrics{mutations: mutations, batchSize: batchSize}, nil
}

// RecordMutation counts one mutation with its outcome.
func (m *QuestionMetrics) RecordMutation(ctx context.Context, outcome string) {
	if m == nil {
		return
	}

	m.mutations.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", outcome)))
}

// RecordBatch records the size of one loader batch.
func (m *QuestionMetrics) RecordBatch(ctx context.Context, size int) {
	if m == nil {
		return
	}

	m.batchSize.Record(ctx, int64(size))
}
