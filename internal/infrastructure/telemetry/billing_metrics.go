package telemetry

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// ErrMeterNil is returned when NewBillingMetrics is given a nil meter.
var ErrMeterNil = errors.New("NewBillingMetrics: meter cannot be nil")

// BillingMetrics records payment, allocation, and bill generation activity.
// A nil *BillingMetrics is valid and records nothing.
type BillingMetrics struct {
	paymentsPosted  *Counter
	paymentsVoided  *Counter
	paymentAmount   *Histogram
	advanceOverflow *Histogram
	billsGenerated  *Counter
	lockWait        *Histogram
	operationErrors *Counter
}

// NewBillingMetrics creates the billing instruments on the given meter.
func NewBillingMetrics(meter metric.Meter) (*BillingMetrics, error) {
	if meter == nil {
		return nil, ErrMeterNil
	}

	var (
		bm  BillingMetrics
		err error
	)

	if bm.paymentsPosted, err = NewCounter(meter,
		"billing_payments_posted_total", "Payments posted and allocated", "{payment}"); err != nil {
		return nil, err
	}
	if bm.paymentsVoided, err = NewCounter(meter,
		"billing_payments_voided_total", "Payments voided", "{payment}"); err != nil {
		return nil, err
	}
	if bm.paymentAmount, err = NewHistogram(meter, HistogramOpts{
		Name:        "billing_payment_amount",
		Description: "Posted payment totals",
		Unit:        "PHP",
		Boundaries:  AmountBuckets,
	}); err != nil {
		return nil, err
	}
	if bm.advanceOverflow, err = NewHistogram(meter, HistogramOpts{
		Name:        "billing_advance_overflow_amount",
		Description: "Payment amounts routed to the advance balance",
		Unit:        "PHP",
		Boundaries:  AmountBuckets,
	}); err != nil {
		return nil, err
	}
	if bm.billsGenerated, err = NewCounter(meter,
		"billing_bills_generated_total", "Bills generated", "{bill}"); err != nil {
		return nil, err
	}
	if bm.lockWait, err = NewHistogram(meter, HistogramOpts{
		Name:        "billing_unit_lock_wait_seconds",
		Description: "Time spent waiting for the per-unit lock",
		Unit:        "s",
		Boundaries:  LockWaitBuckets,
	}); err != nil {
		return nil, err
	}
	if bm.operationErrors, err = NewCounter(meter,
		"billing_operation_errors_total", "Billing operations that failed, by error code", "{error}"); err != nil {
		return nil, err
	}

	return &bm, nil
}

// RecordPaymentPosted counts a posted payment and its total.
func (m *BillingMetrics) RecordPaymentPosted(ctx context.Context, tenantID uuid.UUID, method string, total decimal.Decimal) {
	if m == nil {
		return
	}
	attrs := []attribute.KeyValue{
		AttrTenantID.String(tenantID.String()),
		AttrPaymentMethod.String(method),
	}
	m.paymentsPosted.Inc(ctx, attrs...)
	m.paymentAmount.RecordAmount(ctx, total, attrs...)
}

// RecordPaymentVoided counts a voided payment.
func (m *BillingMetrics) RecordPaymentVoided(ctx context.Context, tenantID uuid.UUID) {
	if m == nil {
		return
	}
	m.paymentsVoided.Inc(ctx, AttrTenantID.String(tenantID.String()))
}

// RecordAdvanceOverflow records an amount credited to an advance bucket. Zero amounts are ignored.
func (m *BillingMetrics) RecordAdvanceOverflow(ctx context.Context, tenantID uuid.UUID, bucket string, amount decimal.Decimal) {
	if m == nil || !amount.IsPositive() {
		return
	}
	m.advanceOverflow.RecordAmount(ctx, amount,
		AttrTenantID.String(tenantID.String()),
		AttrAdvanceBucket.String(bucket),
	)
}

// RecordBillGenerated counts a generated bill.
func (m *BillingMetrics) RecordBillGenerated(ctx context.Context, tenantID uuid.UUID, billType string) {
	if m == nil {
		return
	}
	m.billsGenerated.Inc(ctx,
		AttrTenantID.String(tenantID.String()),
		AttrBillType.String(billType),
	)
}

// RecordLockWait records how long an operation waited for its unit lock.
func (m *BillingMetrics) RecordLockWait(ctx context.Context, operation string, d time.Duration, acquired bool) {
	if m == nil {
		return
	}
	outcome := "acquired"
	if !acquired {
		outcome = "timeout"
	}
	m.lockWait.RecordDuration(ctx, d,
		AttrOperation.String(operation),
		AttrOutcome.String(outcome),
	)
}

// RecordOperationError counts a failed billing operation.
func (m *BillingMetrics) RecordOperationError(ctx context.Context, operation, code string) {
	if m == nil {
		return
	}
	m.operationErrors.Inc(ctx,
		AttrOperation.String(operation),
		AttrOutcome.String(code),
	)
}
