package billing

import (
	"github.com/doorscomputers/megatower-sub002/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
)

// BillStatus represents the payment status of a bill
type BillStatus string

const (
	BillStatusUnpaid  BillStatus = "UNPAID"  // Nothing paid, balance > 0
	BillStatusPartial BillStatus = "PARTIAL" // Something paid, balance > 0
	BillStatusPaid    BillStatus = "PAID"    // Balance within epsilon of zero
	BillStatusOverdue BillStatus = "OVERDUE" // View of UNPAID/PARTIAL past the due date, never persisted
)

// IsValid checks if the status is a valid BillStatus
func (s BillStatus) IsValid() bool {
	switch s {
	case BillStatusUnpaid, BillStatusPartial, BillStatusPaid, BillStatusOverdue:
		return true
	}
	return false
}

// String returns the string representation of BillStatus
func (s BillStatus) String() string {
	return string(s)
}

// IsOutstanding returns true if payments can still be applied in this status
func (s BillStatus) IsOutstanding() bool {
	return s == BillStatusUnpaid || s == BillStatusPartial || s == BillStatusOverdue
}

// StatusFor applies the balance-driven rule: balance <= 0.01 is PAID,
// otherwise paid > 0.01 is PARTIAL, otherwise UNPAID.
func StatusFor(balance, paid decimal.Decimal) BillStatus {
	if balance.LessThanOrEqual(valueobject.CurrencyEpsilon) {
		return BillStatusPaid
	}
	if paid.GreaterThan(valueobject.CurrencyEpsilon) {
		return BillStatusPartial
	}
	return BillStatusUnpaid
}

// BillType distinguishes regular monthly bills from seeded legacy balances
type BillType string

const (
	BillTypeRegular        BillType = "REGULAR"
	BillTypeOpeningBalance BillType = "OPENING_BALANCE"
)

// IsValid checks if the bill type is valid
func (t BillType) IsValid() bool {
	return t == BillTypeRegular || t == BillTypeOpeningBalance
}
