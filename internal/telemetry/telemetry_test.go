package telemetry

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/pathkit/internal/config"
)

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewLogger(&buf, "warn", "json")
	require.NoError(t, err)

	logger.Info("hidden")
	logger.Warn("shown", "k", 1)
	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, `"msg":"shown"`)
	assert.Contains(t, out, `"k":1`)

	_, err = NewLogger(&buf, "loud", "text")
	assert.Error(t, err)
	_, err = NewLogger(&buf, "info", "xml")
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestLoggerWithTrace_NoSpan(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	LoggerWithTrace(context.Background(), logger).Info("plain")
	assert.NotContains(t, buf.String(), "trace_id")
	assert.NotNil(t, LoggerWithTrace(context.Background(), nil))
}

func TestLoggerWithTrace_WithSpan(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	traceID, _ := trace.TraceIDFromHex("0102030405060708090a0b0c0d0e0f10")
	spanID, _ := trace.SpanIDFromHex("0102030405060708")
	sc := trace.NewSpanContext(trace.SpanContextConfig{TraceID: traceID, SpanID: spanID})
	ctx := trace.ContextWithSpanContext(context.Background(), sc)

	LoggerWithTrace(ctx, logger).Info("traced")
	out := buf.String()
	assert.True(t, strings.Contains(out, "trace_id=0102030405060708090a0b0c0d0e0f10"), out)
	assert.Contains(t, out, "span_id=0102030405060708")
}

func TestInit(t *testing.T) {
	base := config.Default().Telemetry

	_, err := Init(nil, base, &bytes.Buffer{})
	assert.ErrorIs(t, err, ErrNilContext)

	shutdown, err := Init(context.Background(), base, &bytes.Buffer{})
	require.NoError(t, err)
	assert.NoError(t, shutdown(context.Background()))

	bad := base
	bad.TraceExporter = "otlp"
	_, err = Init(context.Background(), bad, &bytes.Buffer{})
	assert.ErrorIs(t, err, ErrUnknownExporter)

	bad = base
	bad.MetricExporter = "prometheus"
	_, err = Init(context.Background(), bad, &bytes.Buffer{})
	assert.ErrorIs(t, err, ErrUnknownExporter)
}

func TestInit_StdoutExporters(t *testing.T) {
	cfg := config.Default().Telemetry
	cfg.TraceExporter = "stdout"
	cfg.MetricExporter = "stdout"

	var buf bytes.Buffer
	shutdown, err := Init(context.Background(), cfg, &buf)
	require.NoError(t, err)
	require.NotNil(t, shutdown)
	assert.NoError(t, shutdown(context.Background()))
}
