package billing

import (
	"github.com/doorscomputers/megatower-sub002/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CustomerClass selects the water schedule a unit is billed on
type CustomerClass string

const (
	CustomerClassResidential CustomerClass = "RESIDENTIAL"
	CustomerClassCommercial  CustomerClass = "COMMERCIAL"
)

// IsValid checks if the customer class is known
func (c CustomerClass) IsValid() bool {
	return c == CustomerClassResidential || c == CustomerClassCommercial
}

// String returns the string representation of CustomerClass
func (c CustomerClass) String() string {
	return string(c)
}

// DefaultPenaltyRate is the monthly penalty rate applied when none is configured.
var DefaultPenaltyRate = decimal.NewFromFloat(0.10)

// WaterSchedule is a seven-tier water rate table. Tiers 1 to 3 bill a flat fee,
// tiers 4 to 7 add a marginal rate on top of the previous tier's anchored total.
type WaterSchedule struct {
	Tier1Max decimal.Decimal `json:"tier1_max"`
	Tier2Max decimal.Decimal `json:"tier2_max"`
	Tier3Max decimal.Decimal `json:"tier3_max"`
	Tier4Max decimal.Decimal `json:"tier4_max"`
	Tier5Max decimal.Decimal `json:"tier5_max"`
	Tier6Max decimal.Decimal `json:"tier6_max"`

	Tier1Fee decimal.Decimal `json:"tier1_fee"`
	Tier2Fee decimal.Decimal `json:"tier2_fee"`
	Tier3Fee decimal.Decimal `json:"tier3_fee"`

	Tier4Rate decimal.Decimal `json:"tier4_rate"`
	Tier5Rate decimal.Decimal `json:"tier5_rate"`
	Tier6Rate decimal.Decimal `json:"tier6_rate"`
	Tier7Rate decimal.Decimal `json:"tier7_rate"`
}

func (w WaterSchedule) boundaries() []decimal.Decimal {
	return []decimal.Decimal{w.Tier1Max, w.Tier2Max, w.Tier3Max, w.Tier4Max, w.Tier5Max, w.Tier6Max}
}

// Validate returns a ValidationError when a fee or rate is negative and a
// ConsistencyError when the table would not bill monotonically: boundaries must
// be strictly ascending, flat fees and marginal rates non-decreasing.
func (w WaterSchedule) Validate(class CustomerClass) error {
	bounds := w.boundaries()
	if bounds[0].IsNegative() {
		return shared.NewValidationError("%s water tier 1 boundary must not be negative", class)
	}
	for i := 1; i < len(bounds); i++ {
		if !bounds[i].GreaterThan(bounds[i-1]) {
			return shared.NewConsistencyError(
				"%s water tier %d boundary %s must be greater than tier %d boundary %s",
				class, i+1, bounds[i], i, bounds[i-1])
		}
	}
	prices := []decimal.Decimal{
		w.Tier1Fee, w.Tier2Fee, w.Tier3Fee,
		w.Tier4Rate, w.Tier5Rate, w.Tier6Rate, w.Tier7Rate,
	}
	for i, p := range prices {
		if p.IsNegative() {
			return shared.NewValidationError("%s water tier %d price must not be negative", class, i+1)
		}
	}
	// Tiers 1-3 are flat fees and tiers 4-7 marginal rates; each run must not fall.
	for _, run := range [][2]int{{0, 3}, {3, 7}} {
		for i := run[0] + 1; i < run[1]; i++ {
			if prices[i].LessThan(prices[i-1]) {
				return shared.NewConsistencyError(
					"%s water tier %d price %s must not be below tier %d price %s",
					class, i+1, prices[i], i, prices[i-1])
			}
		}
	}
	return nil
}

// DefaultResidentialWater returns the seeded residential water schedule.
func DefaultResidentialWater() WaterSchedule {
	return WaterSchedule{
		Tier1Max:  decimal.NewFromInt(1),
		Tier2Max:  decimal.NewFromInt(6),
		Tier3Max:  decimal.NewFromInt(11),
		Tier4Max:  decimal.NewFromInt(21),
		Tier5Max:  decimal.NewFromInt(31),
		Tier6Max:  decimal.NewFromInt(41),
		Tier1Fee:  decimal.NewFromInt(80),
		Tier2Fee:  decimal.NewFromInt(200),
		Tier3Fee:  decimal.NewFromInt(370),
		Tier4Rate: decimal.NewFromInt(40),
		Tier5Rate: decimal.NewFromInt(45),
		Tier6Rate: decimal.NewFromInt(50),
		Tier7Rate: decimal.NewFromInt(55),
	}
}

// DefaultCommercialWater returns the seeded commercial water schedule.
func DefaultCommercialWater() WaterSchedule {
	return WaterSchedule{
		Tier1Max:  decimal.NewFromInt(1),
		Tier2Max:  decimal.NewFromInt(6),
		Tier3Max:  decimal.NewFromInt(11),
		Tier4Max:  decimal.NewFromInt(21),
		Tier5Max:  decimal.NewFromInt(31),
		Tier6Max:  decimal.NewFromInt(41),
		Tier1Fee:  decimal.NewFromInt(200),
		Tier2Fee:  decimal.NewFromInt(250),
		Tier3Fee:  decimal.NewFromInt(500),
		Tier4Rate: decimal.NewFromInt(55),
		Tier5Rate: decimal.NewFromInt(60),
		Tier6Rate: decimal.NewFromInt(65),
		Tier7Rate: decimal.NewFromInt(70),
	}
}

// RateSettings is the tenant's single current rate snapshot. It is passed
// explicitly into every calculator.
type RateSettings struct {
	shared.TenantAggregateRoot
	ElectricRate          decimal.Decimal
	ElectricMinimumCharge decimal.Decimal
	DuesRate              decimal.Decimal
	ParkingRate           decimal.Decimal
	PenaltyRate           decimal.Decimal
	ResidentialWater      WaterSchedule
	CommercialWater       WaterSchedule
	Schedule              ScheduleSettings
}

// DefaultRateSettings returns the seeded rate snapshot for a tenant.
func DefaultRateSettings(tenantID uuid.UUID) *RateSettings {
	return &RateSettings{
		TenantAggregateRoot:   shared.NewTenantAggregateRoot(tenantID),
		ElectricRate:          decimal.RequireFromString("8.39"),
		ElectricMinimumCharge: decimal.NewFromInt(50),
		DuesRate:              decimal.NewFromInt(60),
		PenaltyRate:           DefaultPenaltyRate,
		ResidentialWater:      DefaultResidentialWater(),
		CommercialWater:       DefaultCommercialWater(),
		Schedule:              DefaultScheduleSettings(),
	}
}

// WaterScheduleFor returns the schedule for the customer class.
func (r *RateSettings) WaterScheduleFor(class CustomerClass) (WaterSchedule, error) {
	switch class {
	case CustomerClassResidential:
		return r.ResidentialWater, nil
	case CustomerClassCommercial:
		return r.CommercialWater, nil
	}
	return WaterSchedule{}, shared.NewValidationError("unknown customer class %q", class)
}

// EffectiveParkingRate falls back to the dues rate when no parking rate is set.
func (r *RateSettings) EffectiveParkingRate() decimal.Decimal {
	if r.ParkingRate.IsZero() {
		return r.DuesRate
	}
	return r.ParkingRate
}

// Validate checks the whole snapshot
func (r *RateSettings) Validate() error {
	named := []struct {
		name  string
		value decimal.Decimal
	}{
		{"electric rate", r.ElectricRate},
		{"electric minimum charge", r.ElectricMinimumCharge},
		{"dues rate", r.DuesRate},
		{"parking rate", r.ParkingRate},
		{"penalty rate", r.PenaltyRate},
	}
	for _, n := range named {
		if n.value.IsNegative() {
			return shared.NewValidationError("%s must not be negative", n.name)
		}
	}
	if r.PenaltyRate.GreaterThan(decimal.NewFromInt(1)) {
		return shared.NewValidationError("penalty rate %s must not exceed 1", r.PenaltyRate)
	}
	if err := r.ResidentialWater.Validate(CustomerClassResidential); err != nil {
		return err
	}
	if err := r.CommercialWater.Validate(CustomerClassCommercial); err != nil {
		return err
	}
	return r.Schedule.Validate()
}

// Update replaces the snapshot's values after validating them.
func (r *RateSettings) Update(next RateSettings) error {
	candidate := *r
	candidate.ElectricRate = next.ElectricRate
	candidate.ElectricMinimumCharge = next.ElectricMinimumCharge
	candidate.DuesRate = next.DuesRate
	candidate.ParkingRate = next.ParkingRate
	candidate.PenaltyRate = next.PenaltyRate
	candidate.ResidentialWater = next.ResidentialWater
	candidate.CommercialWater = next.CommercialWater
	candidate.Schedule = next.Schedule
	if err := candidate.Validate(); err != nil {
		return err
	}
	*r = candidate
	r.IncrementVersion()
	return nil
}
