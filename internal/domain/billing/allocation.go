package billing

import (
	"sort"

	"github.com/doorscomputers/megatower-sub002/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AllocationResult is the outcome of allocating one payment. Nothing is
// persisted; the caller must store every part of it in one transaction.
type AllocationResult struct {
	BillPayments []BillPayment
	UpdatedBills []*Bill
	// Overflow is what remained after every outstanding bill was settled.
	Overflow AdvanceAmounts
	// AdvanceDelta is Overflow plus the payer's explicit advance amounts.
	AdvanceDelta AdvanceAmounts
}

// TotalAllocated sums the bill payment totals
func (r *AllocationResult) TotalAllocated() decimal.Decimal {
	total := decimal.Zero
	for _, bp := range r.BillPayments {
		total = total.Add(bp.Total)
	}
	return total
}

// SortBillsFIFO orders bills oldest debt first: billing month, due date,
// creation time, then ID so the order is total.
func SortBillsFIFO(bills []*Bill) {
	sort.SliceStable(bills, func(i, j int) bool {
		a, b := bills[i], bills[j]
		if a.BillingMonth != b.BillingMonth {
			return a.BillingMonth.Before(b.BillingMonth)
		}
		if !a.DueDate.Equal(b.DueDate) {
			return a.DueDate.Before(b.DueDate)
		}
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.Before(b.CreatedAt)
		}
		return a.ID.String() < b.ID.String()
	})
}

// AllocatePayment spreads a payment over the unit's outstanding bills.
//
// Each category is reduced independently over the FIFO-ordered bill list:
// a bill receives min(remaining, outstanding) and the remainder shrinks by
// that much. The walk for a category ends when its remainder is zero or the
// list is exhausted, so it takes at most len(bills) steps. Leftover electric
// and water go to the utilities advance bucket; leftover dues, penalty and
// special assessment go to the dues bucket.
//
// The input bills are not modified. UpdatedBills holds copies of the bills
// that received money.
func AllocatePayment(unitID uuid.UUID, payment *Payment, bills []*Bill) (*AllocationResult, error) {
	if unitID == uuid.Nil {
		return nil, shared.NewValidationError("unit id is required")
	}
	if payment == nil {
		return nil, shared.NewValidationError("payment is required")
	}
	if err := payment.Validate(); err != nil {
		return nil, err
	}
	if payment.UnitID != unitID {
		return nil, shared.NewValidationError("payment %s belongs to another unit", payment.ReferenceNumber)
	}
	if payment.IsVoided() {
		return nil, shared.NewValidationError("payment %s is voided", payment.ReferenceNumber)
	}

	outstanding := make([]*Bill, 0, len(bills))
	for _, b := range bills {
		if b.UnitID != unitID {
			return nil, shared.NewValidationError("bill %s belongs to another unit", b.BillNumber)
		}
		if err := b.CheckConsistency(); err != nil {
			return nil, err
		}
		if !b.IsOutstanding() {
			continue
		}
		clone := *b
		outstanding = append(outstanding, &clone)
	}
	SortBillsFIFO(outstanding)

	remaining := payment.Components.Allocatable()
	plan := make([]CategoryAmounts, len(outstanding))
	for _, c := range Categories {
		rem := remaining.Get(c)
		for i := 0; i < len(outstanding) && rem.IsPositive(); i++ {
			take := decimal.Min(rem, outstanding[i].Outstanding(c))
			if !take.IsPositive() {
				continue
			}
			plan[i].Set(c, plan[i].Get(c).Add(take))
			rem = rem.Sub(take)
		}
		remaining.Set(c, rem)
	}

	result := &AllocationResult{
		BillPayments: make([]BillPayment, 0, len(outstanding)),
		UpdatedBills: make([]*Bill, 0, len(outstanding)),
	}
	for i, b := range outstanding {
		if plan[i].IsZero() {
			continue
		}
		if err := b.ApplyAllocation(plan[i]); err != nil {
			return nil, err
		}
		result.BillPayments = append(result.BillPayments, NewBillPayment(payment, b, plan[i]))
		result.UpdatedBills = append(result.UpdatedBills, b)
	}

	result.Overflow = AdvanceAmounts{
		Utilities: remaining.Electric.Add(remaining.Water),
		Dues:      remaining.Dues.Add(remaining.Penalty).Add(remaining.SpecialAssessment),
	}
	result.AdvanceDelta = result.Overflow.Add(payment.Components.ExplicitAdvance())

	if got := result.TotalAllocated().Add(result.AdvanceDelta.Total()); !got.Equal(payment.TotalAmount) {
		return nil, shared.NewConsistencyError("allocation of payment %s leaks money: allocated %s, payment %s",
			payment.ReferenceNumber, got, payment.TotalAmount)
	}
	return result, nil
}

// ReversePayment undoes a payment's allocations on the given bills. It returns
// the bills it changed; bills without a matching allocation are left alone.
func ReversePayment(payment *Payment, allocations []BillPayment, bills []*Bill) ([]*Bill, error) {
	byID := make(map[uuid.UUID]*Bill, len(bills))
	for _, b := range bills {
		byID[b.ID] = b
	}
	updated := make([]*Bill, 0, len(allocations))
	for _, bp := range allocations {
		if bp.PaymentID != payment.ID {
			return nil, shared.NewValidationError("allocation %s does not belong to payment %s", bp.ID, payment.ReferenceNumber)
		}
		b, ok := byID[bp.BillID]
		if !ok {
			return nil, shared.NewConsistencyError("bill %s for allocation %s is missing", bp.BillID, bp.ID)
		}
		if err := b.ReverseAllocation(bp.Amounts); err != nil {
			return nil, err
		}
		updated = append(updated, b)
	}
	return updated, nil
}
