// Package telemetry wires OpenTelemetry traces, metrics and logs for the billing service.
package telemetry

import (
	"context"
	"errors"
	"fmt"
	"time"

	otelpyroscope "github.com/grafana/otel-profiling-go"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
	sdklog "go.opentelemetry.io/otel/sdk/log"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.37.0"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// shutdownTimeout bounds the final flush of every signal
const shutdownTimeout = 10 * time.Second

// Config holds the collector settings shared by all three signals.
type Config struct {
	Enabled           bool
	CollectorEndpoint string
	Insecure          bool
	ServiceName       string
	ServiceVersion    string
	Environment       string
	ExportInterval    time.Duration // metrics only, default 60s
	SamplingRatio     float64       // traces only
}

// Providers owns the SDK providers of one process. When telemetry is disabled
// every accessor falls back to the global no-op implementation.
type Providers struct {
	cfg     Config
	logger  *zap.Logger
	traces  *sdktrace.TracerProvider
	metrics *sdkmetric.MeterProvider
	logs    *sdklog.LoggerProvider
	// tracing is what TracerProvider hands out: traces, or traces wrapped for span profiles
	tracing      trace.TracerProvider
	spanProfiles bool
}

// Setup builds the trace, metric and log pipelines and installs the first two
// as the global providers.
func Setup(ctx context.Context, cfg Config, logger *zap.Logger) (*Providers, error) {
	p := &Providers{cfg: cfg, logger: logger}
	if !cfg.Enabled {
		logger.Info("Telemetry disabled, using no-op providers")
		return p, nil
	}

	res, err := newResource(cfg)
	if err != nil {
		return nil, err
	}
	if p.traces, err = newTracerProvider(ctx, cfg, res); err != nil {
		return nil, err
	}
	if p.metrics, err = newMeterProvider(ctx, cfg, res); err != nil {
		_ = p.Shutdown(ctx)
		return nil, err
	}
	if p.logs, err = newLoggerProvider(ctx, cfg, res); err != nil {
		_ = p.Shutdown(ctx)
		return nil, err
	}

	p.tracing = p.traces
	otel.SetTracerProvider(p.tracing)
	otel.SetMeterProvider(p.metrics)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	logger.Info("OpenTelemetry initialized",
		zap.String("collector_endpoint", cfg.CollectorEndpoint),
		zap.String("service_name", cfg.ServiceName),
		zap.Float64("sampling_ratio", cfg.SamplingRatio),
		zap.Duration("export_interval", cfg.ExportInterval),
	)
	return p, nil
}

// Enabled reports whether signals leave the process.
func (p *Providers) Enabled() bool {
	return p != nil && p.traces != nil
}

// TracerProvider returns the SDK provider, or the global one when disabled.
func (p *Providers) TracerProvider() trace.TracerProvider {
	if !p.Enabled() {
		return otel.GetTracerProvider()
	}
	if p.tracing == nil {
		return p.traces
	}
	return p.tracing
}

// EnableSpanProfiles tags profiling samples with the active span so traces
// link to their profiles. It replaces the global tracer provider and does
// nothing when telemetry is disabled.
func (p *Providers) EnableSpanProfiles() {
	if !p.Enabled() {
		return
	}
	if p.spanProfiles {
		return
	}
	p.spanProfiles = true
	p.tracing = otelpyroscope.NewTracerProvider(p.traces)
	otel.SetTracerProvider(p.tracing)
	p.logger.Info("Span profiles enabled")
}

// Tracer returns a named tracer.
func (p *Providers) Tracer(name string, opts ...trace.TracerOption) trace.Tracer {
	return p.TracerProvider().Tracer(name, opts...)
}

// Meter returns a named meter.
func (p *Providers) Meter(name string, opts ...metric.MeterOption) metric.Meter {
	if p == nil || p.metrics == nil {
		return otel.GetMeterProvider().Meter(name, opts...)
	}
	return p.metrics.Meter(name, opts...)
}

// Shutdown flushes traces, then metrics, then logs so the flush itself can
// still be logged. It is safe on a disabled or partially built Providers.
func (p *Providers) Shutdown(ctx context.Context) error {
	if p == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()

	var errs []error
	if p.traces != nil {
		if err := p.traces.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("traces: %w", err))
		}
	}
	if p.metrics != nil {
		if err := p.metrics.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("metrics: %w", err))
		}
	}
	if p.logs != nil {
		if err := p.logs.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("logs: %w", err))
		}
	}
	if err := errors.Join(errs...); err != nil {
		p.logger.Error("Telemetry shutdown incomplete", zap.Error(err))
		return err
	}
	if p.Enabled() {
		p.logger.Info("Telemetry shutdown complete")
	}
	return nil
}

func newResource(cfg Config) (*resource.Resource, error) {
	attrs := []attribute.KeyValue{
		semconv.ServiceName(cfg.ServiceName),
	}
	if cfg.ServiceVersion != "" {
		attrs = append(attrs, semconv.ServiceVersion(cfg.ServiceVersion))
	}
	if cfg.Environment != "" {
		attrs = append(attrs, attribute.String("deployment.environment.name", cfg.Environment))
	}
	res, err := resource.Merge(
		resource.Default(),
		resource.NewWithAttributes(semconv.SchemaURL, attrs...),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create resource: %w", err)
	}
	return res, nil
}
