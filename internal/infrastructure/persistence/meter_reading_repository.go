package persistence

import (
	"context"

	"github.com/doorscomputers/megatower-sub002/internal/domain/billing"
	"github.com/doorscomputers/megatower-sub002/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormMeterReadingRepository implements billing.MeterReadingRepository using GORM
type GormMeterReadingRepository struct {
	db *gorm.DB
}

// NewGormMeterReadingRepository creates a new GormMeterReadingRepository
func NewGormMeterReadingRepository(db *gorm.DB) *GormMeterReadingRepository {
	return &GormMeterReadingRepository{db: db}
}

// FindForMonth finds the reading for a unit, utility and month
func (r *GormMeterReadingRepository) FindForMonth(ctx context.Context, tenantID, unitID uuid.UUID, utility billing.UtilityType, month billing.BillingMonth) (*billing.MeterReading, error) {
	var model models.MeterReadingModel
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND unit_id = ? AND utility = ? AND billing_month = ?", tenantID, unitID, utility, month.String()).
		First(&model).Error; err != nil {
		return nil, notFoundOr(err, "meter reading")
	}
	return model.ToDomain()
}

// FindLatestBefore finds the most recent reading strictly before month.
// "YYYY-MM" strings sort chronologically.
func (r *GormMeterReadingRepository) FindLatestBefore(ctx context.Context, tenantID, unitID uuid.UUID, utility billing.UtilityType, month billing.BillingMonth) (*billing.MeterReading, error) {
	var model models.MeterReadingModel
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND unit_id = ? AND utility = ? AND billing_month < ?", tenantID, unitID, utility, month.String()).
		Order("billing_month DESC").
		First(&model).Error; err != nil {
		return nil, notFoundOr(err, "meter reading")
	}
	return model.ToDomain()
}

// Save upserts the reading on (unit_id, utility, billing_month)
func (r *GormMeterReadingRepository) Save(ctx context.Context, reading *billing.MeterReading) error {
	model := models.MeterReadingModelFromDomain(reading)
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "unit_id"}, {Name: "utility"}, {Name: "billing_month"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"previous_reading", "present_reading", "consumption", "version", "updated_at",
			}),
		}).
		Create(model).Error
}

var _ billing.MeterReadingRepository = (*GormMeterReadingRepository)(nil)
