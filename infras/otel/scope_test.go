package otel_test

import (
	"errors"
	"testing"
	"time"

	"frontdesk/infras/otel"
	"frontdesk/shared/failure"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func record(t *testing.T, run func(scope otel.Scope)) sdktrace.ReadOnlySpan {
	t.Helper()

	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))

	_, span := provider.Tracer("test").Start(t.Context(), "op")
	scope := otel.NewScope(span)
	run(scope)
	scope.End()

	spans := recorder.Ended()
	require.Len(t, spans, 1)

	return spans[0]
}

func TestScope_TraceError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus codes.Code
		wantEvents int
	}{
		{name: "nil error", err: nil, wantStatus: codes.Unset, wantEvents: 0},
		{name: "client failure", err: failure.NotFound("guest not found"), wantStatus: codes.Unset, wantEvents: 1},
		{name: "server failure", err: errors.New("pq: connection refused"), wantStatus: codes.Error, wantEvents: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			span := record(t, func(scope otel.Scope) { scope.TraceIfError(tt.err) })

			assert.Equal(t, tt.wantStatus, span.Status().Code)
			assert.Len(t, span.Events(), tt.wantEvents)
		})
	}
}

func TestScope_Attributes(t *testing.T) {
	span := record(t, func(scope otel.Scope) {
		scope.SetName("GET /rooms/{id}")
		scope.SetAttribute("room.id", "101")
		scope.SetAttributes(map[string]any{"room.floor": 1, "cache.ttl": 90 * time.Second})
	})

	assert.Equal(t, "GET /rooms/{id}", span.Name())
	assert.ElementsMatch(t, []attribute.KeyValue{
		attribute.String("room.id", "101"),
		attribute.Int("room.floor", 1),
		attribute.Int64("cache.ttl", 90000),
	}, span.Attributes())
}

func TestAttribute(t *testing.T) {
	checkIn := time.Date(2024, 3, 15, 14, 0, 0, 0, time.UTC)

	assert.Equal(t, attribute.Bool("vip", true), otel.Attribute("vip", true))
	assert.Equal(t, attribute.Float64("rate", 189.5), otel.Attribute("rate", 189.5))
	assert.Equal(t, attribute.StringSlice("ids", []string{"G1"}), otel.Attribute("ids", []string{"G1"}))
	assert.Equal(t, attribute.String("at", "2024-03-15T14:00:00Z"), otel.Attribute("at", checkIn))
	assert.Equal(t, attribute.String("floors", "[1 2]"), otel.Attribute("floors", []int{1, 2}))
}
