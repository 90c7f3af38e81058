package persistence

import (
	"context"

	appbilling "github.com/doorscomputers/megatower-sub002/internal/application/billing"
	"github.com/doorscomputers/megatower-sub002/internal/domain/billing"
	"gorm.io/gorm"
)

// GormBillingTransactionScope implements appbilling.TransactionScope using GORM transactions.
type GormBillingTransactionScope struct {
	db *gorm.DB
}

// NewGormBillingTransactionScope creates a new GormBillingTransactionScope.
func NewGormBillingTransactionScope(db *gorm.DB) *GormBillingTransactionScope {
	return &GormBillingTransactionScope{db: db}
}

// Execute runs fn in one database transaction; any error rolls everything back.
func (s *GormBillingTransactionScope) Execute(ctx context.Context, fn func(repos appbilling.TransactionalRepositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormBillingRepositories{tx: tx})
	})
}

// NewBillingRepositories builds the non-transactional repositories the billing service reads through.
func NewBillingRepositories(db *gorm.DB) appbilling.Repositories {
	return appbilling.Repositories{
		Units:    NewGormUnitRepository(db),
		Rates:    NewGormRateSettingsRepository(db),
		Readings: NewGormMeterReadingRepository(db),
		Bills:    NewGormBillRepository(db),
		Payments: NewGormPaymentRepository(db),
		Advances: NewGormAdvanceBalanceRepository(db),
	}
}

// gormBillingRepositories hands out repositories bound to one transaction.
type gormBillingRepositories struct {
	tx *gorm.DB
}

func (r *gormBillingRepositories) Units() billing.UnitRepository {
	return NewGormUnitRepository(r.tx)
}

func (r *gormBillingRepositories) Rates() billing.RateSettingsRepository {
	return NewGormRateSettingsRepository(r.tx)
}

func (r *gormBillingRepositories) Readings() billing.MeterReadingRepository {
	return NewGormMeterReadingRepository(r.tx)
}

func (r *gormBillingRepositories) Bills() billing.BillRepository {
	return NewGormBillRepository(r.tx)
}

func (r *gormBillingRepositories) Payments() billing.PaymentRepository {
	return NewGormPaymentRepository(r.tx)
}

func (r *gormBillingRepositories) Advances() billing.AdvanceBalanceRepository {
	return NewGormAdvanceBalanceRepository(r.tx)
}

var _ appbilling.TransactionScope = (*GormBillingTransactionScope)(nil)
var _ appbilling.TransactionalRepositories = (*gormBillingRepositories)(nil)
