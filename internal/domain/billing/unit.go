package billing

import (
	"github.com/doorscomputers/megatower-sub002/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Unit is a billable condominium unit.
type Unit struct {
	shared.TenantAggregateRoot
	Code          string
	OwnerName     string
	CustomerClass CustomerClass
	Area          decimal.Decimal // sqm, billed for dues
	ParkingArea   decimal.Decimal // sqm, billed for parking
	Active        bool
}

// NewUnit creates a validated unit
func NewUnit(tenantID uuid.UUID, code, owner string, class CustomerClass, area, parkingArea decimal.Decimal) (*Unit, error) {
	u := &Unit{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID),
		Code:                code,
		OwnerName:           owner,
		CustomerClass:       class,
		Area:                area,
		ParkingArea:         parkingArea,
		Active:              true,
	}
	if err := u.Validate(); err != nil {
		return nil, err
	}
	return u, nil
}

// Validate checks required fields
func (u *Unit) Validate() error {
	if u.Code == "" {
		return shared.NewValidationError("unit code is required")
	}
	if len(u.Code) > 30 {
		return shared.NewValidationError("unit code must be at most 30 characters")
	}
	if !u.CustomerClass.IsValid() {
		return shared.NewValidationError("unknown customer class %q", u.CustomerClass)
	}
	if u.Area.IsNegative() || u.ParkingArea.IsNegative() {
		return shared.NewValidationError("unit areas must not be negative")
	}
	return nil
}
