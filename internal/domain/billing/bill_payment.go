package billing

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BillPayment records how much of one payment went to one bill.
type BillPayment struct {
	ID        uuid.UUID
	TenantID  uuid.UUID
	PaymentID uuid.UUID
	BillID    uuid.UUID
	UnitID    uuid.UUID
	Amounts   CategoryAmounts
	Total     decimal.Decimal
	CreatedAt time.Time
}

// NewBillPayment creates an allocation record whose total is the sum of its amounts.
func NewBillPayment(payment *Payment, bill *Bill, amounts CategoryAmounts) BillPayment {
	return BillPayment{
		ID:        uuid.New(),
		TenantID:  payment.TenantID,
		PaymentID: payment.ID,
		BillID:    bill.ID,
		UnitID:    payment.UnitID,
		Amounts:   amounts,
		Total:     amounts.Total(),
		CreatedAt: time.Now().UTC(),
	}
}
