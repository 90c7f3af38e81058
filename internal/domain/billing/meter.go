package billing

import (
	"github.com/doorscomputers/megatower-sub002/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MeterReading is one unit's reading of one utility for one billing month.
type MeterReading struct {
	shared.TenantAggregateRoot
	UnitID       uuid.UUID
	Utility      UtilityType
	BillingMonth BillingMonth
	Previous     decimal.Decimal
	Present      decimal.Decimal
}

// NewMeterReading creates a validated reading.
func NewMeterReading(tenantID, unitID uuid.UUID, utility UtilityType, month BillingMonth, previous, present decimal.Decimal) (*MeterReading, error) {
	r := &MeterReading{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID),
		UnitID:              unitID,
		Utility:             utility,
		BillingMonth:        month,
		Previous:            previous,
		Present:             present,
	}
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return r, nil
}

// Consumption is present minus previous. It can be negative on rollover; see Validate.
func (r *MeterReading) Consumption() decimal.Decimal {
	return r.Present.Sub(r.Previous)
}

// Validate flags negative consumption instead of billing it.
func (r *MeterReading) Validate() error {
	if r.UnitID == uuid.Nil {
		return shared.NewValidationError("unit id is required")
	}
	if !r.Utility.IsValid() {
		return shared.NewValidationError("unknown utility type %q", r.Utility)
	}
	if r.Previous.IsNegative() || r.Present.IsNegative() {
		return shared.NewValidationError("meter readings must not be negative")
	}
	if r.Consumption().IsNegative() {
		return shared.NewValidationError(
			"%s reading for %s went backwards (%s -> %s): meter rollover or data error",
			r.Utility, r.BillingMonth, r.Previous, r.Present)
	}
	return nil
}
