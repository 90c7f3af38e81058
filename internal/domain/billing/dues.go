package billing

import (
	"github.com/doorscomputers/megatower-sub002/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// ComputeDuesCharge returns area × rate for association dues.
func ComputeDuesCharge(area, rate decimal.Decimal) (decimal.Decimal, error) {
	if area.IsNegative() {
		return decimal.Zero, shared.NewValidationError("area %s must not be negative", area)
	}
	if rate.IsNegative() {
		return decimal.Zero, shared.NewValidationError("dues rate %s must not be negative", rate)
	}
	return area.Mul(rate), nil
}

// ComputeParkingCharge returns parkingArea × rate.
func ComputeParkingCharge(parkingArea, rate decimal.Decimal) (decimal.Decimal, error) {
	if parkingArea.IsNegative() {
		return decimal.Zero, shared.NewValidationError("parking area %s must not be negative", parkingArea)
	}
	return ComputeDuesCharge(parkingArea, rate)
}
