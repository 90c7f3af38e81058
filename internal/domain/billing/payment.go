package billing

import (
	"time"

	"github.com/doorscomputers/megatower-sub002/internal/domain/shared"
	"github.com/doorscomputers/megatower-sub002/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentStatus represents the status of a payment
type PaymentStatus string

const (
	PaymentStatusPosted PaymentStatus = "POSTED"
	PaymentStatusVoided PaymentStatus = "VOIDED"
)

// IsValid checks if the payment status is valid
func (s PaymentStatus) IsValid() bool {
	return s == PaymentStatusPosted || s == PaymentStatusVoided
}

// PaymentMethod is how the money was received
type PaymentMethod string

const (
	PaymentMethodCash         PaymentMethod = "CASH"
	PaymentMethodCheck        PaymentMethod = "CHECK"
	PaymentMethodBankTransfer PaymentMethod = "BANK_TRANSFER"
	PaymentMethodOnline       PaymentMethod = "ONLINE"
)

// IsValid checks if the payment method is valid
func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentMethodCash, PaymentMethodCheck, PaymentMethodBankTransfer, PaymentMethodOnline:
		return true
	}
	return false
}

// PaymentComponents is the fixed split of a received payment.
type PaymentComponents struct {
	Electric          decimal.Decimal `json:"electric"`
	Water             decimal.Decimal `json:"water"`
	Dues              decimal.Decimal `json:"dues"`
	Penalty           decimal.Decimal `json:"penalty"` // past dues and penalty
	SpecialAssessment decimal.Decimal `json:"special_assessment"`
	AdvanceDues       decimal.Decimal `json:"advance_dues"`
	AdvanceUtilities  decimal.Decimal `json:"advance_utilities"`
	OtherAdvance      decimal.Decimal `json:"other_advance"`
}

func (p PaymentComponents) named() []struct {
	name  string
	value decimal.Decimal
} {
	return []struct {
		name  string
		value decimal.Decimal
	}{
		{"electric", p.Electric},
		{"water", p.Water},
		{"dues", p.Dues},
		{"penalty", p.Penalty},
		{"special assessment", p.SpecialAssessment},
		{"advance dues", p.AdvanceDues},
		{"advance utilities", p.AdvanceUtilities},
		{"other advance", p.OtherAdvance},
	}
}

// Sum adds every component
func (p PaymentComponents) Sum() decimal.Decimal {
	total := decimal.Zero
	for _, n := range p.named() {
		total = total.Add(n.value)
	}
	return total
}

// Allocatable returns the components that are walked across bills.
func (p PaymentComponents) Allocatable() CategoryAmounts {
	return CategoryAmounts{
		Electric:          p.Electric,
		Water:             p.Water,
		Dues:              p.Dues,
		Penalty:           p.Penalty,
		SpecialAssessment: p.SpecialAssessment,
	}
}

// ExplicitAdvance returns the amounts the payer marked as advance payment.
// Other advance is held in the dues bucket.
func (p PaymentComponents) ExplicitAdvance() AdvanceAmounts {
	return AdvanceAmounts{
		Dues:      p.AdvanceDues.Add(p.OtherAdvance),
		Utilities: p.AdvanceUtilities,
	}
}

// Payment is money received against one unit.
type Payment struct {
	shared.TenantAggregateRoot
	UnitID          uuid.UUID
	ReferenceNumber string
	Method          PaymentMethod
	Components      PaymentComponents
	TotalAmount     decimal.Decimal
	ReceivedAt      time.Time
	Status          PaymentStatus
	VoidedAt        *time.Time
	VoidReason      string
	Remark          string
}

// NewPayment creates a validated payment.
func NewPayment(tenantID, unitID uuid.UUID, reference string, method PaymentMethod, components PaymentComponents, total decimal.Decimal, receivedAt time.Time) (*Payment, error) {
	p := &Payment{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID),
		UnitID:              unitID,
		ReferenceNumber:     reference,
		Method:              method,
		Components:          components,
		TotalAmount:         total,
		ReceivedAt:          receivedAt.UTC(),
		Status:              PaymentStatusPosted,
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// Validate rejects negative components, sub-centavo amounts and a total that
// does not equal the component sum.
func (p *Payment) Validate() error {
	if p.UnitID == uuid.Nil {
		return shared.NewValidationError("unit id is required")
	}
	if p.ReferenceNumber == "" {
		return shared.NewValidationError("payment reference number is required")
	}
	if p.Method != "" && !p.Method.IsValid() {
		return shared.NewValidationError("unknown payment method %q", p.Method)
	}
	for _, n := range p.Components.named() {
		if n.value.IsNegative() {
			return shared.NewValidationError("payment %s component %s must not be negative", n.name, n.value)
		}
		if !valueobject.HasAtMostCents(n.value) {
			return shared.NewValidationError("payment %s component %s has more than 2 decimals", n.name, n.value)
		}
	}
	if !p.TotalAmount.IsPositive() {
		return shared.NewValidationError("payment total must be positive")
	}
	if sum := p.Components.Sum(); !sum.Equal(p.TotalAmount) {
		return shared.NewValidationError("payment total %s does not equal component sum %s", p.TotalAmount, sum)
	}
	return nil
}

// IsVoided reports whether the payment has been voided
func (p *Payment) IsVoided() bool {
	return p.Status == PaymentStatusVoided
}

// Void marks the payment as voided. Reversing its allocations is the caller's job.
func (p *Payment) Void(reason string, at time.Time) error {
	if p.IsVoided() {
		return shared.NewValidationError("payment %s is already voided", p.ReferenceNumber)
	}
	if reason == "" {
		return shared.NewValidationError("void reason is required")
	}
	ts := at.UTC()
	p.Status = PaymentStatusVoided
	p.VoidedAt = &ts
	p.VoidReason = reason
	p.IncrementVersion()
	return nil
}
