// SPDX-License-Identifier: MIT

package app

import (
	"context"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "pathkit.app"

// meter delegates to the first global provider set.
var meter = otel.Meter(instrumentationName)

// tracer is resolved per run so that each telemetry.Init takes effect.
func tracer() trace.Tracer {
	return otel.Tracer(instrumentationName)
}

// Instruments for search runs.
var (
	searchTotal    metric.Int64Counter
	finalizedTotal metric.Int64Counter
	searchLatency  metric.Float64Histogram
	metricsOnce    sync.Once
	metricsInitErr error
)

// initMetrics creates the instruments. Safe to call multiple times.
func initMetrics() error {
	metricsOnce.Do(func() {
		var err error

		searchTotal, err = meter.Int64Counter(
			"pathkit_search_total",
			metric.WithDescription("Total number of searches run"),
		)
		if err != nil {
			metricsInitErr = err
			return
		}

		finalizedTotal, err = meter.Int64Counter(
			"pathkit_search_finalized_total",
			metric.WithDescription("Total number of nodes finalized across searches"),
		)
		if err != nil {
			metricsInitErr = err
			return
		}

		searchLatency, err = meter.Float64Histogram(
			"pathkit_search_duration_seconds",
			metric.WithDescription("Duration of searches"),
			metric.WithUnit("s"),
		)
		if err != nil {
			metricsInitErr = err
			return
		}
	})

	return metricsInitErr
}

// recordSearch records one finished search of the given kind ("graph", "grid").
func recordSearch(ctx context.Context, kind string, elapsed time.Duration, finalized int, found bool) {
	if err := initMetrics(); err != nil {
		return
	}

	attrs := metric.WithAttributes(
		attribute.String("kind", kind),
		attribute.Bool("found", found),
	)
	searchTotal.Add(ctx, 1, attrs)
	finalizedTotal.Add(ctx, int64(finalized), attrs)
	searchLatency.Record(ctx, elapsed.Seconds(), attrs)
}
