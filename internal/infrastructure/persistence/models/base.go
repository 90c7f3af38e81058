package models

import (
	"time"

	"github.com/doorscomputers/megatower-sub002/internal/domain/shared"
	"github.com/google/uuid"
)

// BaseModel provides common persistence fields for all models.
// It maps to the domain's BaseEntity.
type BaseModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// ToDomain converts BaseModel to domain BaseEntity
func (m *BaseModel) ToDomain() shared.BaseEntity {
	return shared.BaseEntity{
		ID:        m.ID,
		CreatedAt: m.CreatedAt.UTC(),
		UpdatedAt: m.UpdatedAt.UTC(),
	}
}

// FromDomainBaseEntity populates BaseModel from domain BaseEntity
func (m *BaseModel) FromDomainBaseEntity(e shared.BaseEntity) {
	m.ID = e.ID
	m.CreatedAt = e.CreatedAt
	m.UpdatedAt = e.UpdatedAt
}

// TenantAggregateModel holds the persisted fields of a tenant-scoped aggregate root,
// including the version used for optimistic locking.
type TenantAggregateModel struct {
	BaseModel
	TenantID uuid.UUID `gorm:"type:uuid;not null;index"`
	Version  int       `gorm:"not null;default:1"`
}

// FromDomainTenantAggregateRoot populates TenantAggregateModel from domain TenantAggregateRoot
func (m *TenantAggregateModel) FromDomainTenantAggregateRoot(t shared.TenantAggregateRoot) {
	m.FromDomainBaseEntity(t.BaseEntity)
	m.TenantID = t.TenantID
	m.Version = t.Version
}

// TenantAggregateRoot rebuilds the domain root from the persisted fields
func (m *TenantAggregateModel) TenantAggregateRoot() shared.TenantAggregateRoot {
	return shared.TenantAggregateRoot{
		BaseAggregateRoot: shared.BaseAggregateRoot{
			BaseEntity: m.BaseModel.ToDomain(),
			Version:    m.Version,
		},
		TenantID: m.TenantID,
	}
}
