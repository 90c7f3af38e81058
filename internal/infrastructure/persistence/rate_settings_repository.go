package persistence

import (
	"context"

	"github.com/doorscomputers/megatower-sub002/internal/domain/billing"
	"github.com/doorscomputers/megatower-sub002/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormRateSettingsRepository implements billing.RateSettingsRepository using GORM
type GormRateSettingsRepository struct {
	db *gorm.DB
}

// NewGormRateSettingsRepository creates a new GormRateSettingsRepository
func NewGormRateSettingsRepository(db *gorm.DB) *GormRateSettingsRepository {
	return &GormRateSettingsRepository{db: db}
}

// FindByTenant returns the tenant's current rate snapshot
func (r *GormRateSettingsRepository) FindByTenant(ctx context.Context, tenantID uuid.UUID) (*billing.RateSettings, error) {
	var model models.RateSettingsModel
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		First(&model).Error; err != nil {
		return nil, notFoundOr(err, "rate settings")
	}
	return model.ToDomain(), nil
}

// Save writes the snapshot. RateSettings.Update has already bumped the
// version, so the stored row must still carry Version-1. A tenant without a
// stored row gets an insert.
func (r *GormRateSettingsRepository) Save(ctx context.Context, settings *billing.RateSettings) error {
	model := models.RateSettingsModelFromDomain(settings)
	db := r.db.WithContext(ctx)

	result := db.Model(model).
		Select("*").
		Omit("id", "created_at").
		Where("tenant_id = ? AND version = ?", settings.TenantID, settings.Version-1).
		Updates(model)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected > 0 {
		return nil
	}

	var count int64
	if err := db.Model(&models.RateSettingsModel{}).
		Where("tenant_id = ?", settings.TenantID).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return staleWrite("rate settings")
	}
	if err := db.Create(model).Error; err != nil {
		if isDuplicateKey(err) {
			return staleWrite("rate settings")
		}
		return err
	}
	return nil
}

var _ billing.RateSettingsRepository = (*GormRateSettingsRepository)(nil)
