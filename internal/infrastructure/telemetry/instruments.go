package telemetry

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Counter wraps an Int64Counter
type Counter struct {
	counter metric.Int64Counter
}

// NewCounter registers a counter on meter.
func NewCounter(meter metric.Meter, name, description, unit string) (*Counter, error) {
	c, err := meter.Int64Counter(name, metric.WithDescription(description), metric.WithUnit(unit))
	if err != nil {
		return nil, fmt.Errorf("failed to create counter %s: %w", name, err)
	}
	return &Counter{counter: c}, nil
}

// Inc adds one.
func (c *Counter) Inc(ctx context.Context, attrs ...attribute.KeyValue) {
	c.Add(ctx, 1, attrs...)
}

// Add adds n.
func (c *Counter) Add(ctx context.Context, n int64, attrs ...attribute.KeyValue) {
	c.counter.Add(ctx, n, metric.WithAttributes(attrs...))
}

// Histogram wraps a Float64Histogram
type Histogram struct {
	histogram metric.Float64Histogram
}

// HistogramOpts describes a histogram. Empty Boundaries keeps the SDK defaults.
type HistogramOpts struct {
	Name        string
	Description string
	Unit        string
	Boundaries  []float64
}

// NewHistogram registers a histogram on meter.
func NewHistogram(meter metric.Meter, opts HistogramOpts) (*Histogram, error) {
	hopts := []metric.Float64HistogramOption{
		metric.WithDescription(opts.Description),
		metric.WithUnit(opts.Unit),
	}
	if len(opts.Boundaries) > 0 {
		hopts = append(hopts, metric.WithExplicitBucketBoundaries(opts.Boundaries...))
	}
	h, err := meter.Float64Histogram(opts.Name, hopts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create histogram %s: %w", opts.Name, err)
	}
	return &Histogram{histogram: h}, nil
}

// Record records value.
func (h *Histogram) Record(ctx context.Context, value float64, attrs ...attribute.KeyValue) {
	h.histogram.Record(ctx, value, metric.WithAttributes(attrs...))
}

// RecordDuration records d in seconds.
func (h *Histogram) RecordDuration(ctx context.Context, d time.Duration, attrs ...attribute.KeyValue) {
	h.Record(ctx, d.Seconds(), attrs...)
}

// RecordAmount records a money amount. Float precision is fine for bucketing.
func (h *Histogram) RecordAmount(ctx context.Context, amount decimal.Decimal, attrs ...attribute.KeyValue) {
	h.Record(ctx, amount.InexactFloat64(), attrs...)
}

// Attribute keys used by billing and HTTP instruments
var (
	AttrTenantID      = attribute.Key("tenant_id")
	AttrOperation     = attribute.Key("billing.operation")
	AttrOutcome       = attribute.Key("billing.outcome")
	AttrPaymentMethod = attribute.Key("payment_method")
	AttrAdvanceBucket = attribute.Key("advance_bucket")
	AttrBillType      = attribute.Key("bill_type")

	AttrHTTPMethod     = attribute.Key("http.method")
	AttrHTTPRoute      = attribute.Key("http.route")
	AttrHTTPStatusCode = attribute.Key("http.status_code")
)

var (
	// AmountBuckets are peso amounts, from a small dues payment up to a year of arrears.
	AmountBuckets = []float64{100, 500, 1000, 2500, 5000, 10000, 25000, 50000, 100000}

	// HTTPDurationBuckets are request latencies in seconds.
	HTTPDurationBuckets = []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5}

	// LockWaitBuckets are unit lock waits in seconds.
	LockWaitBuckets = []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5}
)
