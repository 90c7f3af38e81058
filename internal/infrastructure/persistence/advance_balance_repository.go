package persistence

import (
	"context"

	"github.com/doorscomputers/megatower-sub002/internal/domain/billing"
	"github.com/doorscomputers/megatower-sub002/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormAdvanceBalanceRepository implements billing.AdvanceBalanceRepository using GORM
type GormAdvanceBalanceRepository struct {
	db *gorm.DB
}

// NewGormAdvanceBalanceRepository creates a new GormAdvanceBalanceRepository
func NewGormAdvanceBalanceRepository(db *gorm.DB) *GormAdvanceBalanceRepository {
	return &GormAdvanceBalanceRepository{db: db}
}

// FindByUnit returns the unit's balance, or a new empty one
func (r *GormAdvanceBalanceRepository) FindByUnit(ctx context.Context, tenantID, unitID uuid.UUID) (*billing.AdvanceBalance, error) {
	return r.findByUnit(r.db.WithContext(ctx), tenantID, unitID)
}

// FindByUnitForUpdate is FindByUnit holding a row lock when the row exists
func (r *GormAdvanceBalanceRepository) FindByUnitForUpdate(ctx context.Context, tenantID, unitID uuid.UUID) (*billing.AdvanceBalance, error) {
	return r.findByUnit(r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), tenantID, unitID)
}

func (r *GormAdvanceBalanceRepository) findByUnit(db *gorm.DB, tenantID, unitID uuid.UUID) (*billing.AdvanceBalance, error) {
	var rows []models.AdvanceBalanceModel
	if err := db.Where("tenant_id = ? AND unit_id = ?", tenantID, unitID).
		Limit(1).
		Find(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return billing.NewAdvanceBalance(tenantID, unitID), nil
	}
	return rows[0].ToDomain(), nil
}

// Save writes both buckets and appends the pending ledger entries.
// The stored version must equal balance.Version; it is bumped on success.
// A balance that was never stored is inserted; losing that insert race to
// another writer is a concurrency error.
func (r *GormAdvanceBalanceRepository) Save(ctx context.Context, balance *billing.AdvanceBalance) error {
	db := r.db.WithContext(ctx)

	result := db.Model(&models.AdvanceBalanceModel{}).
		Where("tenant_id = ? AND id = ? AND version = ?", balance.TenantID, balance.ID, balance.Version).
		Updates(map[string]any{
			"dues_balance":      balance.Dues,
			"utilities_balance": balance.Utilities,
			"version":           balance.Version + 1,
			"updated_at":        balance.UpdatedAt,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		var count int64
		if err := db.Model(&models.AdvanceBalanceModel{}).
			Where("tenant_id = ? AND id = ?", balance.TenantID, balance.ID).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return staleWrite("advance balance")
		}
		if err := db.Create(models.AdvanceBalanceModelFromDomain(balance)).Error; err != nil {
			if isDuplicateKey(err) {
				return staleWrite("advance balance")
			}
			return err
		}
	} else {
		balance.Version++
	}

	pending := balance.PendingTransactions()
	if len(pending) > 0 {
		rows := make([]*models.AdvanceTransactionModel, len(pending))
		for i, t := range pending {
			rows[i] = models.AdvanceTransactionModelFromDomain(t)
		}
		if err := db.Create(&rows).Error; err != nil {
			return err
		}
	}
	balance.ClearPendingTransactions()
	return nil
}

// FindTransactions returns the unit's ledger, newest first
func (r *GormAdvanceBalanceRepository) FindTransactions(ctx context.Context, tenantID, unitID uuid.UUID, limit int) ([]billing.AdvanceTransaction, error) {
	if limit <= 0 || limit > 500 {
		limit = 50
	}
	var rows []models.AdvanceTransactionModel
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND unit_id = ?", tenantID, unitID).
		Order("transaction_date DESC, created_at DESC").
		Limit(limit).
		Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]billing.AdvanceTransaction, len(rows))
	for i := range rows {
		out[i] = rows[i].ToDomain()
	}
	return out, nil
}

var _ billing.AdvanceBalanceRepository = (*GormAdvanceBalanceRepository)(nil)
