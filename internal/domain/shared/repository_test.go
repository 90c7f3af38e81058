package shared

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestFilter_Normalized(t *testing.T) {
	tests := []struct {
		name string
		in   Filter
		want Filter
	}{
		{"zero value", Filter{}, Filter{Page: 1, PageSize: 50, OrderDir: "asc"}},
		{"keeps valid values", Filter{Page: 3, PageSize: 20, OrderDir: "desc"}, Filter{Page: 3, PageSize: 20, OrderDir: "desc"}},
		{"page size too large", Filter{Page: 2, PageSize: 501}, Filter{Page: 2, PageSize: 50, OrderDir: "asc"}},
		{"unknown direction", Filter{Page: 1, PageSize: 10, OrderDir: "sideways"}, Filter{Page: 1, PageSize: 10, OrderDir: "asc"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.in.Normalized())
		})
	}
}

func TestFilter_Offset(t *testing.T) {
	assert.Equal(t, 0, Filter{}.Offset())
	assert.Equal(t, 40, Filter{Page: 3, PageSize: 20}.Offset())
	assert.Equal(t, DefaultFilter().Offset(), 0)
}

func TestTenantAggregateRoot_Versioning(t *testing.T) {
	tenantID := uuid.New()
	root := NewTenantAggregateRoot(tenantID)

	assert.Equal(t, tenantID, root.TenantID)
	assert.Equal(t, 1, root.Version)
	assert.NotEqual(t, uuid.Nil, root.ID)

	before := root.UpdatedAt
	root.IncrementVersion()
	assert.Equal(t, 2, root.Version)
	assert.False(t, root.UpdatedAt.Before(before))
}
