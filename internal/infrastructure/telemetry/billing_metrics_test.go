package telemetry_test

import (
	"context"
	"testing"
	"time"

	"github.com/doorscomputers/megatower-sub002/internal/infrastructure/telemetry"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/metric/noop"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

func collect(t *testing.T, reader *sdkmetric.ManualReader) map[string]metricdata.Metrics {
	t.Helper()
	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))

	out := make(map[string]metricdata.Metrics)
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			out[m.Name] = m
		}
	}
	return out
}

func newTestMetrics(t *testing.T) (*telemetry.BillingMetrics, *sdkmetric.ManualReader) {
	t.Helper()
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() { _ = provider.Shutdown(context.Background()) })

	bm, err := telemetry.NewBillingMetrics(provider.Meter("billing-test"))
	require.NoError(t, err)
	return bm, reader
}

func TestNewBillingMetrics_NilMeter(t *testing.T) {
	bm, err := telemetry.NewBillingMetrics(nil)
	require.ErrorIs(t, err, telemetry.ErrMeterNil)
	assert.Nil(t, bm)
}

func TestNewBillingMetrics_Noop(t *testing.T) {
	bm, err := telemetry.NewBillingMetrics(noop.NewMeterProvider().Meter("test"))
	require.NoError(t, err)

	// Should not panic
	ctx := context.Background()
	bm.RecordPaymentPosted(ctx, uuid.New(), "CASH", decimal.NewFromInt(1000))
	bm.RecordLockWait(ctx, "post_payment", time.Millisecond, true)
}

func TestBillingMetrics_NilReceiver(t *testing.T) {
	var bm *telemetry.BillingMetrics
	ctx := context.Background()

	assert.NotPanics(t, func() {
		bm.RecordPaymentPosted(ctx, uuid.New(), "CASH", decimal.NewFromInt(1))
		bm.RecordPaymentVoided(ctx, uuid.New())
		bm.RecordAdvanceOverflow(ctx, uuid.New(), "DUES", decimal.NewFromInt(1))
		bm.RecordBillGenerated(ctx, uuid.New(), "REGULAR")
		bm.RecordLockWait(ctx, "post_payment", time.Second, false)
		bm.RecordOperationError(ctx, "post_payment", "VALIDATION_ERROR")
	})
}

func TestBillingMetrics_RecordPaymentPosted(t *testing.T) {
	bm, reader := newTestMetrics(t)
	ctx := context.Background()
	tenantID := uuid.New()

	bm.RecordPaymentPosted(ctx, tenantID, "CASH", decimal.NewFromInt(1500))
	bm.RecordPaymentPosted(ctx, tenantID, "CASH", decimal.NewFromInt(500))

	metrics := collect(t, reader)

	posted, ok := metrics["billing_payments_posted_total"]
	require.True(t, ok)
	sum, ok := posted.Data.(metricdata.Sum[int64])
	require.True(t, ok)
	require.Len(t, sum.DataPoints, 1)
	assert.Equal(t, int64(2), sum.DataPoints[0].Value)

	amount, ok := metrics["billing_payment_amount"]
	require.True(t, ok)
	hist, ok := amount.Data.(metricdata.Histogram[float64])
	require.True(t, ok)
	require.Len(t, hist.DataPoints, 1)
	assert.Equal(t, uint64(2), hist.DataPoints[0].Count)
	assert.InDelta(t, 2000.0, hist.DataPoints[0].Sum, 0.001)
}

func TestBillingMetrics_RecordAdvanceOverflow_SkipsZero(t *testing.T) {
	bm, reader := newTestMetrics(t)
	ctx := context.Background()

	bm.RecordAdvanceOverflow(ctx, uuid.New(), "UTILITIES", decimal.Zero)

	_, ok := collect(t, reader)["billing_advance_overflow_amount"]
	assert.False(t, ok)

	bm.RecordAdvanceOverflow(ctx, uuid.New(), "UTILITIES", decimal.NewFromInt(20))
	_, ok = collect(t, reader)["billing_advance_overflow_amount"]
	assert.True(t, ok)
}

func TestBillingMetrics_RecordLockWait(t *testing.T) {
	bm, reader := newTestMetrics(t)
	ctx := context.Background()

	bm.RecordLockWait(ctx, "post_payment", 10*time.Millisecond, true)
	bm.RecordLockWait(ctx, "post_payment", 5*time.Second, false)

	m, ok := collect(t, reader)["billing_unit_lock_wait_seconds"]
	require.True(t, ok)
	hist, ok := m.Data.(metricdata.Histogram[float64])
	require.True(t, ok)
	// acquired and timeout are separate series
	assert.Len(t, hist.DataPoints, 2)
}
