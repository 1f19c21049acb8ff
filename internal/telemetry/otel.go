// Package telemetry exports one OpenTelemetry span per simulation run over OTLP gRPC.
package telemetry

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
	"go.opentelemetry.io/otel/trace"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"cpu-scheduler/internal/schedulers"
)

const instrumentationName = "cpu-scheduler/internal/telemetry"

// Config configures the OTLP gRPC exporter.
type Config struct {
	Enabled        bool
	Endpoint       string
	ServiceName    string
	ServiceVersion string
	// SamplingRatio is the fraction of runs traced, 1.0 traces every run.
	SamplingRatio float64
	ExportTimeout time.Duration
}

// Init installs a global tracer provider exporting to cfg.Endpoint. When
// telemetry is disabled it leaves the no-op provider in place. The returned
// function flushes and closes the exporter.
func Init(ctx context.Context, cfg Config) (func(context.Context) error, error) {
	if !cfg.Enabled {
		return func(context.Context) error { return nil }, nil
	}
	if cfg.ExportTimeout == 0 {
		cfg.ExportTimeout = 10 * time.Second
	}

	exporter, err := otlptracegrpc.New(ctx,
		otlptracegrpc.WithEndpoint(cfg.Endpoint),
		otlptracegrpc.WithInsecure(),
		otlptracegrpc.WithDialOption(grpc.WithTransportCredentials(insecure.NewCredentials())),
		otlptracegrpc.WithTimeout(cfg.ExportTimeout),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create OTLP exporter: %w", err)
	}

	res, err := resource.Merge(
		resource.Default(),
		resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName(cfg.ServiceName),
			semconv.ServiceVersion(cfg.ServiceVersion),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create resource: %w", err)
	}

	var sampler sdktrace.Sampler
	switch {
	case cfg.SamplingRatio >= 1.0:
		sampler = sdktrace.AlwaysSample()
	case cfg.SamplingRatio <= 0:
		sampler = sdktrace.NeverSample()
	default:
		sampler = sdktrace.TraceIDRatioBased(cfg.SamplingRatio)
	}

	provider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sampler),
	)
	otel.SetTracerProvider(provider)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	return provider.Shutdown, nil
}

// Tracer wraps span creation for simulation runs.
type Tracer struct {
	tracer trace.Tracer
}

// NewTracer uses provider, or the global provider when nil.
func NewTracer(provider trace.TracerProvider) *Tracer {
	if provider == nil {
		provider = otel.GetTracerProvider()
	}
	return &Tracer{tracer: provider.Tracer(instrumentationName)}
}

// StartSimulation opens the span covering one run.
func (t *Tracer) StartSimulation(ctx context.Context, runId string, a schedulers.Algorithm, processCount int) (context.Context, trace.Span) {
	return t.tracer.Start(ctx, "simulate "+string(a), trace.WithAttributes(
		attribute.String("sched.run_id", runId),
		attribute.String("sched.algorithm", string(a)),
		attribute.Int("sched.process_count", processCount),
	))
}

// EndSimulation records the outcome on span and ends it.
func EndSimulation(span trace.Span, s *schedulers.Schedule, err error) {
	defer span.End()
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return
	}
	span.SetAttributes(
		attribute.Int("sched.makespan", s.Metrics.Makespan),
		attribute.Int("sched.intervals", len(s.Intervals)),
		attribute.Float64("sched.average_waiting_time", s.Metrics.AverageWaitingTime),
		attribute.Float64("sched.cpu_utilization", s.Cpu.Utilization()),
	)
}
