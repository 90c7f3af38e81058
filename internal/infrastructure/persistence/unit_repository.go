package persistence

import (
	"context"

	"github.com/doorscomputers/megatower-sub002/internal/domain/billing"
	"github.com/doorscomputers/megatower-sub002/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormUnitRepository implements billing.UnitRepository using GORM
type GormUnitRepository struct {
	db *gorm.DB
}

// NewGormUnitRepository creates a new GormUnitRepository
func NewGormUnitRepository(db *gorm.DB) *GormUnitRepository {
	return &GormUnitRepository{db: db}
}

// FindByID finds a unit by ID within a tenant
func (r *GormUnitRepository) FindByID(ctx context.Context, tenantID, id uuid.UUID) (*billing.Unit, error) {
	var model models.UnitModel
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND id = ?", tenantID, id).
		First(&model).Error; err != nil {
		return nil, notFoundOr(err, "unit")
	}
	return model.ToDomain(), nil
}

// FindByCode finds a unit by its code (e.g. "2F-01") within a tenant
func (r *GormUnitRepository) FindByCode(ctx context.Context, tenantID uuid.UUID, code string) (*billing.Unit, error) {
	var model models.UnitModel
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND code = ?", tenantID, code).
		First(&model).Error; err != nil {
		return nil, notFoundOr(err, "unit")
	}
	return model.ToDomain(), nil
}

// Save creates or updates a unit
func (r *GormUnitRepository) Save(ctx context.Context, unit *billing.Unit) error {
	model := models.UnitModelFromDomain(unit)
	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return conflictOr(err, "unit code %s already exists", unit.Code)
	}
	return nil
}

var _ billing.UnitRepository = (*GormUnitRepository)(nil)
