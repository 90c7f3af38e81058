package persistence

import (
	"context"

	"github.com/doorscomputers/megatower-sub002/internal/domain/billing"
	"github.com/doorscomputers/megatower-sub002/internal/domain/shared"
	"github.com/doorscomputers/megatower-sub002/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormPaymentRepository implements billing.PaymentRepository using GORM
type GormPaymentRepository struct {
	db *gorm.DB
}

// NewGormPaymentRepository creates a new GormPaymentRepository
func NewGormPaymentRepository(db *gorm.DB) *GormPaymentRepository {
	return &GormPaymentRepository{db: db}
}

// FindByID finds a payment by ID within a tenant
func (r *GormPaymentRepository) FindByID(ctx context.Context, tenantID, id uuid.UUID) (*billing.Payment, error) {
	return r.findByID(r.db.WithContext(ctx), tenantID, id)
}

// FindByIDForUpdate finds a payment and locks its row
func (r *GormPaymentRepository) FindByIDForUpdate(ctx context.Context, tenantID, id uuid.UUID) (*billing.Payment, error) {
	return r.findByID(r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), tenantID, id)
}

func (r *GormPaymentRepository) findByID(db *gorm.DB, tenantID, id uuid.UUID) (*billing.Payment, error) {
	var model models.PaymentModel
	if err := db.Where("tenant_id = ? AND id = ?", tenantID, id).First(&model).Error; err != nil {
		return nil, notFoundOr(err, "payment")
	}
	return model.ToDomain(), nil
}

// ExistsByReference reports whether the unit already has a payment with this reference, voided or not
func (r *GormPaymentRepository) ExistsByReference(ctx context.Context, tenantID, unitID uuid.UUID, reference string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.PaymentModel{}).
		Where("tenant_id = ? AND unit_id = ? AND reference_number = ?", tenantID, unitID, reference).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// FindByUnit lists a unit's payments by received date
func (r *GormPaymentRepository) FindByUnit(ctx context.Context, tenantID, unitID uuid.UUID, filter shared.Filter) ([]*billing.Payment, error) {
	page := filter.Normalized()
	order := "received_at ASC, created_at ASC"
	if page.OrderDir == "desc" {
		order = "received_at DESC, created_at DESC"
	}

	var paymentModels []models.PaymentModel
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND unit_id = ?", tenantID, unitID).
		Order(order).
		Offset(page.Offset()).
		Limit(page.PageSize).
		Find(&paymentModels).Error; err != nil {
		return nil, err
	}
	payments := make([]*billing.Payment, len(paymentModels))
	for i := range paymentModels {
		payments[i] = paymentModels[i].ToDomain()
	}
	return payments, nil
}

// Create inserts a payment. A reused reference for the unit is a CONFLICT.
func (r *GormPaymentRepository) Create(ctx context.Context, payment *billing.Payment) error {
	model := models.PaymentModelFromDomain(payment)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return conflictOr(err, "payment reference %s already posted for this unit", payment.ReferenceNumber)
	}
	return nil
}

// SaveWithLock saves with optimistic locking (stored version must be Version-1)
func (r *GormPaymentRepository) SaveWithLock(ctx context.Context, payment *billing.Payment) error {
	model := models.PaymentModelFromDomain(payment)
	result := r.db.WithContext(ctx).
		Model(model).
		Select("*").
		Omit("id", "created_at").
		Where("tenant_id = ? AND id = ? AND version = ?", payment.TenantID, payment.ID, payment.Version-1).
		Updates(model)

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return staleWrite("payment " + payment.ReferenceNumber)
	}
	return nil
}

// CreateBillPayments inserts allocation rows
func (r *GormPaymentRepository) CreateBillPayments(ctx context.Context, allocations []billing.BillPayment) error {
	if len(allocations) == 0 {
		return nil
	}
	rows := make([]*models.BillPaymentModel, len(allocations))
	for i, a := range allocations {
		rows[i] = models.BillPaymentModelFromDomain(a)
	}
	return r.db.WithContext(ctx).Create(&rows).Error
}

// FindBillPayments returns the allocation rows of a payment
func (r *GormPaymentRepository) FindBillPayments(ctx context.Context, tenantID, paymentID uuid.UUID) ([]billing.BillPayment, error) {
	return r.findBillPayments(ctx, "tenant_id = ? AND payment_id = ?", tenantID, paymentID)
}

// FindBillPaymentsByBill returns the allocation rows applied to a bill
func (r *GormPaymentRepository) FindBillPaymentsByBill(ctx context.Context, tenantID, billID uuid.UUID) ([]billing.BillPayment, error) {
	return r.findBillPayments(ctx, "tenant_id = ? AND bill_id = ?", tenantID, billID)
}

func (r *GormPaymentRepository) findBillPayments(ctx context.Context, where string, args ...any) ([]billing.BillPayment, error) {
	var rows []models.BillPaymentModel
	if err := r.db.WithContext(ctx).
		Where(where, args...).
		Order("created_at ASC, id ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]billing.BillPayment, len(rows))
	for i := range rows {
		out[i] = rows[i].ToDomain()
	}
	return out, nil
}

var _ billing.PaymentRepository = (*GormPaymentRepository)(nil)
