package billing

import (
	"context"
	"time"

	"github.com/doorscomputers/megatower-sub002/internal/domain/shared"
	"github.com/google/uuid"
)

// BillFilter defines filtering options for bill queries
type BillFilter struct {
	shared.Filter
	Status    *BillStatus   // persisted status; OVERDUE is derived and filtered by callers
	BillType  *BillType     // Filter by bill type
	FromMonth *BillingMonth // inclusive
	ToMonth   *BillingMonth // inclusive
	// DueBefore keeps unsettled bills due strictly before this date, the OVERDUE view
	DueBefore *time.Time
}

// UnitRepository defines persistence for units
type UnitRepository interface {
	FindByID(ctx context.Context, tenantID, id uuid.UUID) (*Unit, error)
	FindByCode(ctx context.Context, tenantID uuid.UUID, code string) (*Unit, error)
	Save(ctx context.Context, unit *Unit) error
}

// RateSettingsRepository stores the tenant's single current rate snapshot
type RateSettingsRepository interface {
	// FindByTenant returns NOT_FOUND when the tenant has no snapshot yet
	FindByTenant(ctx context.Context, tenantID uuid.UUID) (*RateSettings, error)
	// Save creates or updates the snapshot with a version check
	Save(ctx context.Context, settings *RateSettings) error
}

// MeterReadingRepository defines persistence for meter readings
type MeterReadingRepository interface {
	// FindForMonth returns NOT_FOUND when no reading was recorded
	FindForMonth(ctx context.Context, tenantID, unitID uuid.UUID, utility UtilityType, month BillingMonth) (*MeterReading, error)
	// FindLatestBefore returns the most recent reading before month, or NOT_FOUND
	FindLatestBefore(ctx context.Context, tenantID, unitID uuid.UUID, utility UtilityType, month BillingMonth) (*MeterReading, error)
	// Save creates or replaces the reading for its unit, utility and month
	Save(ctx context.Context, reading *MeterReading) error
}

// BillRepository defines persistence for bills
type BillRepository interface {
	FindByID(ctx context.Context, tenantID, id uuid.UUID) (*Bill, error)

	// FindByUnitAndMonth returns NOT_FOUND when no bill of that type exists
	FindByUnitAndMonth(ctx context.Context, tenantID, unitID uuid.UUID, month BillingMonth, billType BillType) (*Bill, error)

	// FindByUnit lists a unit's bills ordered oldest first
	FindByUnit(ctx context.Context, tenantID, unitID uuid.UUID, filter BillFilter) ([]*Bill, error)

	// FindOutstandingForUpdate returns UNPAID and PARTIAL bills in FIFO order,
	// row-locked until the surrounding transaction ends
	FindOutstandingForUpdate(ctx context.Context, tenantID, unitID uuid.UUID) ([]*Bill, error)

	// FindByIDsForUpdate row-locks the given bills
	FindByIDsForUpdate(ctx context.Context, tenantID uuid.UUID, ids []uuid.UUID) ([]*Bill, error)

	// Create inserts a new bill; a duplicate unit/month/type is a CONFLICT
	Create(ctx context.Context, bill *Bill) error

	// SaveWithLock saves with optimistic locking (version check)
	SaveWithLock(ctx context.Context, bill *Bill) error
}

// PaymentRepository defines persistence for payments and their allocations
type PaymentRepository interface {
	FindByID(ctx context.Context, tenantID, id uuid.UUID) (*Payment, error)
	FindByIDForUpdate(ctx context.Context, tenantID, id uuid.UUID) (*Payment, error)
	ExistsByReference(ctx context.Context, tenantID, unitID uuid.UUID, reference string) (bool, error)
	FindByUnit(ctx context.Context, tenantID, unitID uuid.UUID, filter shared.Filter) ([]*Payment, error)
	Create(ctx context.Context, payment *Payment) error
	SaveWithLock(ctx context.Context, payment *Payment) error

	CreateBillPayments(ctx context.Context, allocations []BillPayment) error
	FindBillPayments(ctx context.Context, tenantID, paymentID uuid.UUID) ([]BillPayment, error)
	FindBillPaymentsByBill(ctx context.Context, tenantID, billID uuid.UUID) ([]BillPayment, error)
}

// AdvanceBalanceRepository defines persistence for advance balances and their ledger
type AdvanceBalanceRepository interface {
	// FindByUnit returns an empty, unsaved balance when the unit has none
	FindByUnit(ctx context.Context, tenantID, unitID uuid.UUID) (*AdvanceBalance, error)
	// FindByUnitForUpdate is FindByUnit with a row lock
	FindByUnitForUpdate(ctx context.Context, tenantID, unitID uuid.UUID) (*AdvanceBalance, error)
	// Save upserts the balance with a version check and appends pending ledger entries
	Save(ctx context.Context, balance *AdvanceBalance) error
	FindTransactions(ctx context.Context, tenantID, unitID uuid.UUID, limit int) ([]AdvanceTransaction, error)
}
