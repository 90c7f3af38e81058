package billing

import (
	"time"

	"github.com/doorscomputers/megatower-sub002/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AdvanceBucket names one of the two advance-balance buckets
type AdvanceBucket string

const (
	AdvanceBucketDues      AdvanceBucket = "DUES"
	AdvanceBucketUtilities AdvanceBucket = "UTILITIES"
)

// IsValid checks if the bucket is known
func (b AdvanceBucket) IsValid() bool {
	return b == AdvanceBucketDues || b == AdvanceBucketUtilities
}

// AdvanceAmounts is a pair of dues/utilities amounts, used for deltas.
type AdvanceAmounts struct {
	Dues      decimal.Decimal `json:"dues"`
	Utilities decimal.Decimal `json:"utilities"`
}

// Total sums both buckets
func (a AdvanceAmounts) Total() decimal.Decimal {
	return a.Dues.Add(a.Utilities)
}

// Add returns a + b
func (a AdvanceAmounts) Add(b AdvanceAmounts) AdvanceAmounts {
	return AdvanceAmounts{Dues: a.Dues.Add(b.Dues), Utilities: a.Utilities.Add(b.Utilities)}
}

// Get returns the amount for a bucket
func (a AdvanceAmounts) Get(b AdvanceBucket) decimal.Decimal {
	if b == AdvanceBucketUtilities {
		return a.Utilities
	}
	return a.Dues
}

// AdvanceTransactionType is the direction of a ledger entry
type AdvanceTransactionType string

const (
	AdvanceTransactionCredit AdvanceTransactionType = "CREDIT" // increases the bucket
	AdvanceTransactionDebit  AdvanceTransactionType = "DEBIT"  // decreases the bucket
)

// AdvanceSourceType is the document that moved the balance
type AdvanceSourceType string

const (
	AdvanceSourcePayment     AdvanceSourceType = "PAYMENT"
	AdvanceSourceBill        AdvanceSourceType = "BILL"
	AdvanceSourcePaymentVoid AdvanceSourceType = "PAYMENT_VOID"
)

// AdvanceTransaction is an immutable ledger entry of one bucket change.
type AdvanceTransaction struct {
	shared.BaseEntity
	TenantID        uuid.UUID
	UnitID          uuid.UUID
	Bucket          AdvanceBucket
	TransactionType AdvanceTransactionType
	Amount          decimal.Decimal // always positive, direction from TransactionType
	BalanceBefore   decimal.Decimal
	BalanceAfter    decimal.Decimal
	SourceType      AdvanceSourceType
	SourceID        uuid.UUID
	TransactionDate time.Time
}

// AdvanceBalance is a unit's running credit, split into dues and utilities.
// Neither bucket is ever negative. Its version is bumped by the repository on
// save, not per movement.
type AdvanceBalance struct {
	shared.TenantAggregateRoot
	UnitID    uuid.UUID
	Dues      decimal.Decimal
	Utilities decimal.Decimal

	pending []AdvanceTransaction
}

// NewAdvanceBalance creates an empty balance for a unit
func NewAdvanceBalance(tenantID, unitID uuid.UUID) *AdvanceBalance {
	return &AdvanceBalance{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID),
		UnitID:              unitID,
		Dues:                decimal.Zero,
		Utilities:           decimal.Zero,
	}
}

// Amounts returns both buckets
func (a *AdvanceBalance) Amounts() AdvanceAmounts {
	return AdvanceAmounts{Dues: a.Dues, Utilities: a.Utilities}
}

func (a *AdvanceBalance) bucket(b AdvanceBucket) *decimal.Decimal {
	if b == AdvanceBucketUtilities {
		return &a.Utilities
	}
	return &a.Dues
}

// Credit adds to a bucket and records a ledger entry. Zero amounts are ignored.
func (a *AdvanceBalance) Credit(bucket AdvanceBucket, amount decimal.Decimal, source AdvanceSourceType, sourceID uuid.UUID) error {
	return a.move(bucket, AdvanceTransactionCredit, amount, source, sourceID)
}

// Debit removes from a bucket and records a ledger entry. It refuses to go negative.
func (a *AdvanceBalance) Debit(bucket AdvanceBucket, amount decimal.Decimal, source AdvanceSourceType, sourceID uuid.UUID) error {
	return a.move(bucket, AdvanceTransactionDebit, amount, source, sourceID)
}

func (a *AdvanceBalance) move(bucket AdvanceBucket, txType AdvanceTransactionType, amount decimal.Decimal, source AdvanceSourceType, sourceID uuid.UUID) error {
	if !bucket.IsValid() {
		return shared.NewValidationError("unknown advance bucket %q", bucket)
	}
	if amount.IsNegative() {
		return shared.NewValidationError("advance amount %s must not be negative", amount)
	}
	if amount.IsZero() {
		return nil
	}

	slot := a.bucket(bucket)
	before := *slot
	after := before.Add(amount)
	if txType == AdvanceTransactionDebit {
		after = before.Sub(amount)
		if after.IsNegative() {
			return shared.NewValidationError("insufficient %s advance balance: have %s, need %s", bucket, before, amount)
		}
	}
	*slot = after

	now := time.Now().UTC()
	a.pending = append(a.pending, AdvanceTransaction{
		BaseEntity:      shared.NewBaseEntity(),
		TenantID:        a.TenantID,
		UnitID:          a.UnitID,
		Bucket:          bucket,
		TransactionType: txType,
		Amount:          amount,
		BalanceBefore:   before,
		BalanceAfter:    after,
		SourceType:      source,
		SourceID:        sourceID,
		TransactionDate: now,
	})
	a.Touch()
	return nil
}

// ApplyDelta credits both buckets from an allocation result.
func (a *AdvanceBalance) ApplyDelta(delta AdvanceAmounts, source AdvanceSourceType, sourceID uuid.UUID) error {
	if err := a.Credit(AdvanceBucketDues, delta.Dues, source, sourceID); err != nil {
		return err
	}
	return a.Credit(AdvanceBucketUtilities, delta.Utilities, source, sourceID)
}

// PendingTransactions returns ledger entries not yet persisted
func (a *AdvanceBalance) PendingTransactions() []AdvanceTransaction {
	return a.pending
}

// ClearPendingTransactions drops persisted ledger entries
func (a *AdvanceBalance) ClearPendingTransactions() {
	a.pending = nil
}
