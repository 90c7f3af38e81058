package persistence

import (
	"errors"
	"fmt"
	"testing"

	"github.com/doorscomputers/megatower-sub002/internal/domain/shared"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestConflictOr(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		conflict bool
	}{
		{"gorm duplicated key", gorm.ErrDuplicatedKey, true},
		{"wrapped gorm duplicated key", fmt.Errorf("insert: %w", gorm.ErrDuplicatedKey), true},
		{"pq unique violation", &pq.Error{Code: "23505", Message: "duplicate key value"}, true},
		{"pq foreign key violation", &pq.Error{Code: "23503"}, false},
		{"plain error", errors.New("connection reset"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := conflictOr(tt.err, "payment reference %s already posted", "OR-1")
			if tt.conflict {
				assert.True(t, shared.ErrorCode(err) == shared.CodeConflict)
				assert.Contains(t, err.Error(), "OR-1")
				return
			}
			assert.Equal(t, tt.err, err)
		})
	}
}

func TestNotFoundOr(t *testing.T) {
	err := notFoundOr(gorm.ErrRecordNotFound, "bill")
	assert.True(t, shared.IsNotFound(err))

	other := errors.New("boom")
	assert.Equal(t, other, notFoundOr(other, "bill"))
}
