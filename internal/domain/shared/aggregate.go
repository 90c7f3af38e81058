package shared

import (
	"github.com/google/uuid"
)

// BaseAggregateRoot adds the optimistic locking version to an entity.
// Version starts at 1 and the repository compares it on update.
type BaseAggregateRoot struct {
	BaseEntity
	Version int
}

// IncrementVersion increments the version number and touches UpdatedAt
func (a *BaseAggregateRoot) IncrementVersion() {
	a.Version++
	a.Touch()
}

// NewBaseAggregateRoot creates a new base aggregate root
func NewBaseAggregateRoot() BaseAggregateRoot {
	return BaseAggregateRoot{
		BaseEntity: NewBaseEntity(),
		Version:    1,
	}
}

// TenantAggregateRoot scopes an aggregate to one tenant
type TenantAggregateRoot struct {
	BaseAggregateRoot
	TenantID uuid.UUID
}

// NewTenantAggregateRoot creates a new tenant-scoped aggregate root
func NewTenantAggregateRoot(tenantID uuid.UUID) TenantAggregateRoot {
	return TenantAggregateRoot{
		BaseAggregateRoot: NewBaseAggregateRoot(),
		TenantID:          tenantID,
	}
}
