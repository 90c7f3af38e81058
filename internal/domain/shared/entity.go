package shared

import (
	"time"

	"github.com/google/uuid"
)

// BaseEntity carries the identity and timestamps every billing record has
type BaseEntity struct {
	ID        uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Touch bumps the update timestamp
func (e *BaseEntity) Touch() {
	e.UpdatedAt = time.Now().UTC()
}

// NewBaseEntity creates a new base entity with generated ID. Timestamps are UTC.
func NewBaseEntity() BaseEntity {
	now := time.Now().UTC()
	return BaseEntity{
		ID:        uuid.New(),
		CreatedAt: now,
		UpdatedAt: now,
	}
}
