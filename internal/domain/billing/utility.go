package billing

import (
	"github.com/doorscomputers/megatower-sub002/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// UtilityType identifies a metered utility
type UtilityType string

const (
	UtilityElectric UtilityType = "ELECTRIC"
	UtilityWater    UtilityType = "WATER"
)

// IsValid checks if the utility type is known
func (u UtilityType) IsValid() bool {
	return u == UtilityElectric || u == UtilityWater
}

// String returns the string representation of UtilityType
func (u UtilityType) String() string {
	return string(u)
}

// ComputeElectricCharge bills consumption × rate, floored at the minimum charge.
// The minimum replaces the computed amount; it is not added to it.
func ComputeElectricCharge(consumption, rate, minimum decimal.Decimal) decimal.Decimal {
	amount := consumption.Mul(rate)
	if amount.LessThan(minimum) {
		return minimum
	}
	return amount
}

// ComputeWaterCharge evaluates the seven-tier schedule. Tier membership uses
// half-open intervals that are deliberately asymmetric:
//
//	tier 1: c <= b1           fee1
//	tier 2: b1 <  c <  b2     fee2
//	tier 3: b2 <= c <  b3     fee3
//	tier 4: b3 <= c <  b4     fee3 + (c - (b3-1)) × r4
//	tier 5: b4 <= c <  b5     anchor5 + (c - (b4-1)) × r5
//	tier 6: b5 <= c <  b6     anchor6 + (c - (b5-1)) × r6
//	tier 7: c >= b6           anchor7 + (c - (b6-1)) × r7
//
// where each anchor is the previous tier's total at its upper boundary.
func ComputeWaterCharge(consumption decimal.Decimal, s WaterSchedule) decimal.Decimal {
	one := decimal.NewFromInt(1)
	c := consumption

	switch {
	case c.LessThanOrEqual(s.Tier1Max):
		return s.Tier1Fee
	case c.LessThan(s.Tier2Max):
		return s.Tier2Fee
	case c.LessThan(s.Tier3Max):
		return s.Tier3Fee
	}

	anchor5 := s.Tier3Fee.Add(s.Tier4Max.Sub(s.Tier3Max).Mul(s.Tier4Rate))
	anchor6 := anchor5.Add(s.Tier5Max.Sub(s.Tier4Max).Mul(s.Tier5Rate))
	anchor7 := anchor6.Add(s.Tier6Max.Sub(s.Tier5Max).Mul(s.Tier6Rate))

	switch {
	case c.LessThan(s.Tier4Max):
		return s.Tier3Fee.Add(c.Sub(s.Tier3Max.Sub(one)).Mul(s.Tier4Rate))
	case c.LessThan(s.Tier5Max):
		return anchor5.Add(c.Sub(s.Tier4Max.Sub(one)).Mul(s.Tier5Rate))
	case c.LessThan(s.Tier6Max):
		return anchor6.Add(c.Sub(s.Tier5Max.Sub(one)).Mul(s.Tier6Rate))
	default:
		return anchor7.Add(c.Sub(s.Tier6Max.Sub(one)).Mul(s.Tier7Rate))
	}
}

// ComputeUtilityCharge dispatches on the utility type. The result is not rounded.
func ComputeUtilityCharge(utility UtilityType, consumption decimal.Decimal, settings *RateSettings, class CustomerClass) (decimal.Decimal, error) {
	if settings == nil {
		return decimal.Zero, shared.NewValidationError("rate settings are required")
	}
	if consumption.IsNegative() {
		return decimal.Zero, shared.NewValidationError("consumption %s must not be negative", consumption)
	}

	switch utility {
	case UtilityElectric:
		if settings.ElectricRate.IsNegative() || settings.ElectricMinimumCharge.IsNegative() {
			return decimal.Zero, shared.NewConsistencyError("electric rate table contains negative values")
		}
		return ComputeElectricCharge(consumption, settings.ElectricRate, settings.ElectricMinimumCharge), nil
	case UtilityWater:
		schedule, err := settings.WaterScheduleFor(class)
		if err != nil {
			return decimal.Zero, err
		}
		if err := schedule.Validate(class); err != nil {
			return decimal.Zero, err
		}
		return ComputeWaterCharge(consumption, schedule), nil
	}
	return decimal.Zero, shared.NewValidationError("unknown utility type %q", utility)
}
