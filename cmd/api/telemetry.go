package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"time"

	"hubble-workspace/internal/infra/node"

	"go.opentelemetry.io/contrib/instrumentation/runtime"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

const (
	serviceName       = "hubble-workspace"
	collectorEndpoint = "localhost:4317"
	collectorEnv      = "HUBBLE_WORKSPACE_OTELCOL_ENDPOINT"

	exportInterval       = 30 * time.Second
	exportTimeout        = 35 * time.Second
	runtimeStatsInterval = time.Minute
)

// Latency buckets in milliseconds, shared by every histogram.
var histogramBuckets = []float64{5, 10, 25, 50, 75, 100, 250, 500, 750, 1000, 2500, 5000, 7500, 10000, 25000, 50000, 100000}

type telemetry struct {
	traces  *trace.TracerProvider
	metrics *metric.MeterProvider
}

func startTelemetry(ctx context.Context) (*telemetry, error) {
	endpoint := collectorEndpoint
	if value, ok := os.LookupEnv(collectorEnv); ok {
		endpoint = value
	}
	slog.Info("starting telemetry", slog.String("collector", endpoint))

	res := newResource()

	metricExporter, err := otlpmetricgrpc.New(ctx,
		otlpmetricgrpc.WithEndpoint(endpoint),
		otlpmetricgrpc.WithInsecure(),
	)
	if err != nil {
		return nil, err
	}

	traceExporter, err := otlptracegrpc.New(ctx,
		otlptracegrpc.WithEndpoint(endpoint),
		otlptracegrpc.WithInsecure(),
	)
	if err != nil {
		return nil, err
	}

	t := &telemetry{
		traces: trace.NewTracerProvider(
			trace.WithBatcher(traceExporter),
			trace.WithResource(res),
		),
		metrics: metric.NewMeterProvider(
			metric.WithResource(res),
			metric.WithReader(metric.NewPeriodicReader(metricExporter,
				metric.WithTimeout(exportTimeout),
				metric.WithInterval(exportInterval),
			)),
			metric.WithView(metric.NewView(
				metric.Instrument{Name: "*", Kind: metric.InstrumentKindHistogram},
				metric.Stream{Aggregation: metric.AggregationExplicitBucketHistogram{Boundaries: histogramBuckets}},
			)),
		),
	}
	otel.SetTracerProvider(t.traces)
	otel.SetMeterProvider(t.metrics)

	if err := runtime.Start(runtime.WithMinimumReadMemStatsInterval(runtimeStatsInterval)); err != nil {
		return nil, errors.Join(err, t.Shutdown(ctx))
	}
	return t, nil
}

// Shutdown flushes metrics before traces and reports both failures.
func (t *telemetry) Shutdown(ctx context.Context) error {
	return errors.Join(t.metrics.Shutdown(ctx), t.traces.Shutdown(ctx))
}

func newResource() *resource.Resource {
	attributes := append([]attribute.KeyValue{semconv.ServiceName(serviceName)}, node.Current().Attributes()...)
	return resource.NewWithAttributes(semconv.SchemaURL, attributes...)
}
