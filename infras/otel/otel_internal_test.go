package otel

import (
	"context"
	"testing"
	"time"

	"frontdesk/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace"
)

func TestNewExporter(t *testing.T) {
	cfg := &config.Config{}

	assert.Nil(t, newExporter(cfg))

	cfg.External.Otel.Enable = true
	cfg.External.Otel.Endpoint = "127.0.0.1:4317"

	exporter := newExporter(cfg)
	require.NotNil(t, exporter)
	assert.IsType(t, &otlptrace.Exporter{}, exporter)

	ctx, cancel := context.WithTimeout(t.Context(), time.Second)
	defer cancel()

	assert.NoError(t, exporter.Shutdown(ctx))
}

func TestNew_Disabled(t *testing.T) {
	cfg := &config.Config{}
	cfg.App.Name = "frontdesk"

	tracer := New(cfg)

	_, scope := tracer.NewScope(t.Context(), "service", "service.Lookup")
	scope.End()

	assert.NoError(t, tracer.Shutdown(t.Context()))
}
