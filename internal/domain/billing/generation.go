package billing

import (
	"github.com/doorscomputers/megatower-sub002/internal/domain/shared"
	"github.com/doorscomputers/megatower-sub002/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
)

// GenerationInput is everything needed to produce one unit's monthly bill.
type GenerationInput struct {
	Unit     *Unit
	Period   PeriodInfo
	Settings *RateSettings
	// Readings are optional; a missing reading bills nothing for that utility.
	ElectricReading *MeterReading
	WaterReading    *MeterReading
	// PriorBills are the unit's outstanding bills. Bills for the generated month
	// or later are ignored.
	PriorBills        []*Bill
	SpecialAssessment decimal.Decimal
	OtherCharges      decimal.Decimal
	Discount          decimal.Decimal
	// Advance, when present, is drawn down against the new bill.
	Advance *AdvanceBalance
}

// GeneratedBill is a new bill plus the penalty detail behind its penalty line.
type GeneratedBill struct {
	Bill    *Bill
	Penalty PenaltyResult
}

// GenerateBill computes a bill's components from readings and rates, tops up
// the compounded penalty on the unit's backlog and draws on the advance balance.
// Penalty is assessed as of the generation date; the new bill carries the part
// of the compounded total not already billed on the backlog.
func GenerateBill(in GenerationInput) (*GeneratedBill, error) {
	if in.Unit == nil || in.Settings == nil {
		return nil, shared.NewValidationError("unit and rate settings are required")
	}
	if err := in.Unit.Validate(); err != nil {
		return nil, err
	}
	if err := in.Settings.Validate(); err != nil {
		return nil, err
	}
	if in.SpecialAssessment.IsNegative() || in.OtherCharges.IsNegative() || in.Discount.IsNegative() {
		return nil, shared.NewValidationError("extra charges and discount must not be negative")
	}

	var components Components
	var err error
	if components.Electric, err = chargeFor(in, UtilityElectric, in.ElectricReading); err != nil {
		return nil, err
	}
	if components.Water, err = chargeFor(in, UtilityWater, in.WaterReading); err != nil {
		return nil, err
	}
	if components.Dues, err = ComputeDuesCharge(in.Unit.Area, in.Settings.DuesRate); err != nil {
		return nil, err
	}
	if components.Parking, err = ComputeParkingCharge(in.Unit.ParkingArea, in.Settings.EffectiveParkingRate()); err != nil {
		return nil, err
	}
	components.SpecialAssessment = in.SpecialAssessment
	components.OtherCharges = in.OtherCharges

	penalty, err := backlogPenalty(in)
	if err != nil {
		return nil, err
	}
	components.Penalty = penalty.Total
	for _, prior := range in.PriorBills {
		if countsTowardBacklog(prior, in.Period.BillingMonth) && prior.BillType == BillTypeRegular {
			components.Penalty = components.Penalty.Sub(prior.Components.Penalty)
		}
	}
	components.Penalty = valueobject.ClampZero(components.Penalty)
	components = components.Rounded()

	credits := Credits{Discount: in.Discount}
	if in.Advance != nil {
		gross := components.Gross()
		credits.AdvanceDuesApplied = decimal.Min(in.Advance.Dues, gross.Dues)
		credits.AdvanceUtilitiesApplied = decimal.Min(in.Advance.Utilities, gross.Electric.Add(gross.Water))
	}

	bill, err := NewBill(in.Unit.TenantID, in.Unit.ID, in.Period, components, credits)
	if err != nil {
		return nil, err
	}
	if in.Advance != nil {
		if err := in.Advance.Debit(AdvanceBucketDues, bill.Credits.AdvanceDuesApplied, AdvanceSourceBill, bill.ID); err != nil {
			return nil, err
		}
		if err := in.Advance.Debit(AdvanceBucketUtilities, bill.Credits.AdvanceUtilitiesApplied, AdvanceSourceBill, bill.ID); err != nil {
			return nil, err
		}
	}
	return &GeneratedBill{Bill: bill, Penalty: penalty}, nil
}

func chargeFor(in GenerationInput, utility UtilityType, reading *MeterReading) (decimal.Decimal, error) {
	if reading == nil {
		return decimal.Zero, nil
	}
	if reading.UnitID != in.Unit.ID || reading.Utility != utility || reading.BillingMonth != in.Period.BillingMonth {
		return decimal.Zero, shared.NewValidationError("%s reading does not match unit %s for %s", utility, in.Unit.Code, in.Period.BillingMonth)
	}
	if err := reading.Validate(); err != nil {
		return decimal.Zero, err
	}
	return ComputeUtilityCharge(utility, reading.Consumption(), in.Settings, in.Unit.CustomerClass)
}

func backlogPenalty(in GenerationInput) (PenaltyResult, error) {
	inputs := make([]PenaltyInput, 0, len(in.PriorBills))
	for _, b := range in.PriorBills {
		if b.UnitID != in.Unit.ID {
			return PenaltyResult{}, shared.NewValidationError("bill %s belongs to another unit", b.BillNumber)
		}
		if !countsTowardBacklog(b, in.Period.BillingMonth) {
			continue
		}
		inputs = append(inputs, b.PenaltyInput())
	}
	return CalculatePenalty(inputs, in.Settings.PenaltyRate, in.Period.GenerationDate), nil
}

// countsTowardBacklog reports whether b is part of the backlog a bill for month
// is assessed on. Penalty already billed is netted over the same set, excluding
// opening balances whose penalty predates the system.
func countsTowardBacklog(b *Bill, month BillingMonth) bool {
	return b.BillingMonth.Before(month) && b.IsOutstanding()
}
