package persistence

import (
	"context"

	"github.com/doorscomputers/megatower-sub002/internal/domain/billing"
	"github.com/doorscomputers/megatower-sub002/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// fifoOrder is the allocation order for outstanding bills
const fifoOrder = "billing_month ASC, due_date ASC, created_at ASC, id ASC"

// GormBillRepository implements billing.BillRepository using GORM
type GormBillRepository struct {
	db *gorm.DB
}

// NewGormBillRepository creates a new GormBillRepository
func NewGormBillRepository(db *gorm.DB) *GormBillRepository {
	return &GormBillRepository{db: db}
}

// FindByID finds a bill by ID within a tenant
func (r *GormBillRepository) FindByID(ctx context.Context, tenantID, id uuid.UUID) (*billing.Bill, error) {
	var model models.BillModel
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND id = ?", tenantID, id).
		First(&model).Error; err != nil {
		return nil, notFoundOr(err, "bill")
	}
	return model.ToDomain()
}

// FindByUnitAndMonth finds a unit's bill of the given type for a month
func (r *GormBillRepository) FindByUnitAndMonth(ctx context.Context, tenantID, unitID uuid.UUID, month billing.BillingMonth, billType billing.BillType) (*billing.Bill, error) {
	var model models.BillModel
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND unit_id = ? AND billing_month = ? AND bill_type = ?", tenantID, unitID, month.String(), billType).
		First(&model).Error; err != nil {
		return nil, notFoundOr(err, "bill")
	}
	return model.ToDomain()
}

// FindByUnit lists a unit's bills, oldest first unless the filter asks for desc
func (r *GormBillRepository) FindByUnit(ctx context.Context, tenantID, unitID uuid.UUID, filter billing.BillFilter) ([]*billing.Bill, error) {
	page := filter.Filter.Normalized()
	query := r.db.WithContext(ctx).Model(&models.BillModel{}).
		Where("tenant_id = ? AND unit_id = ?", tenantID, unitID)

	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	if filter.DueBefore != nil {
		query = query.Where("status IN ? AND due_date < ?",
			[]billing.BillStatus{billing.BillStatusUnpaid, billing.BillStatusPartial}, *filter.DueBefore)
	}
	if filter.BillType != nil {
		query = query.Where("bill_type = ?", *filter.BillType)
	}
	if filter.FromMonth != nil {
		query = query.Where("billing_month >= ?", filter.FromMonth.String())
	}
	if filter.ToMonth != nil {
		query = query.Where("billing_month <= ?", filter.ToMonth.String())
	}

	order := fifoOrder
	if page.OrderDir == "desc" {
		order = "billing_month DESC, due_date DESC, created_at DESC, id DESC"
	}

	var billModels []models.BillModel
	if err := query.Order(order).
		Offset(page.Offset()).
		Limit(page.PageSize).
		Find(&billModels).Error; err != nil {
		return nil, err
	}
	return billsToDomain(billModels)
}

// FindOutstandingForUpdate returns UNPAID and PARTIAL bills in FIFO order,
// locked FOR UPDATE until the transaction ends.
func (r *GormBillRepository) FindOutstandingForUpdate(ctx context.Context, tenantID, unitID uuid.UUID) ([]*billing.Bill, error) {
	var billModels []models.BillModel
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("tenant_id = ? AND unit_id = ? AND status IN ?", tenantID, unitID,
			[]billing.BillStatus{billing.BillStatusUnpaid, billing.BillStatusPartial}).
		Order(fifoOrder).
		Find(&billModels).Error; err != nil {
		return nil, err
	}
	return billsToDomain(billModels)
}

// FindByIDsForUpdate row-locks the given bills in FIFO order
func (r *GormBillRepository) FindByIDsForUpdate(ctx context.Context, tenantID uuid.UUID, ids []uuid.UUID) ([]*billing.Bill, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var billModels []models.BillModel
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("tenant_id = ? AND id IN ?", tenantID, ids).
		Order(fifoOrder).
		Find(&billModels).Error; err != nil {
		return nil, err
	}
	return billsToDomain(billModels)
}

// Create inserts a new bill
func (r *GormBillRepository) Create(ctx context.Context, bill *billing.Bill) error {
	model := models.BillModelFromDomain(bill)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return conflictOr(err, "%s bill for %s already exists", bill.BillType, bill.BillingMonth)
	}
	return nil
}

// SaveWithLock saves with optimistic locking. The aggregate bumps its version
// once per operation, so the stored row must still hold Version-1.
func (r *GormBillRepository) SaveWithLock(ctx context.Context, bill *billing.Bill) error {
	model := models.BillModelFromDomain(bill)
	result := r.db.WithContext(ctx).
		Model(model).
		Select("*").
		Omit("id", "created_at").
		Where("tenant_id = ? AND id = ? AND version = ?", bill.TenantID, bill.ID, bill.Version-1).
		Updates(model)

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return staleWrite("bill " + bill.BillNumber)
	}
	return nil
}

func billsToDomain(billModels []models.BillModel) ([]*billing.Bill, error) {
	bills := make([]*billing.Bill, 0, len(billModels))
	for i := range billModels {
		b, err := billModels[i].ToDomain()
		if err != nil {
			return nil, err
		}
		bills = append(bills, b)
	}
	return bills, nil
}

var _ billing.BillRepository = (*GormBillRepository)(nil)
