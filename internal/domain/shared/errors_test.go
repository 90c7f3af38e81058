package shared

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDomainError_Taxonomy(t *testing.T) {
	tests := []struct {
		name  string
		err   error
		check func(error) bool
		code  string
	}{
		{"validation", NewValidationError("amount %s is negative", "-1"), IsValidationError, CodeValidation},
		{"consistency", NewConsistencyError("tier %d not ascending", 3), IsConsistencyError, CodeConsistency},
		{"concurrency", NewConcurrencyError("unit locked", nil), IsConcurrencyError, CodeConcurrency},
		{"not found", NewNotFoundError("bill"), IsNotFound, CodeNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.check(tt.err))
			assert.Equal(t, tt.code, ErrorCode(tt.err))

			wrapped := fmt.Errorf("outer: %w", tt.err)
			assert.True(t, tt.check(wrapped))
		})
	}
}

func TestDomainError_Is(t *testing.T) {
	err := NewConcurrencyError("version mismatch", errors.New("rows affected 0"))
	assert.ErrorIs(t, err, ErrConcurrencyConflict)
	assert.NotErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "rows affected 0")
}

func TestErrorCode_ForeignError(t *testing.T) {
	assert.Equal(t, "", ErrorCode(errors.New("boom")))
	assert.False(t, IsValidationError(nil))
}
