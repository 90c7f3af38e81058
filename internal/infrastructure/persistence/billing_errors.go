package persistence

import (
	"errors"

	"github.com/doorscomputers/megatower-sub002/internal/domain/shared"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// uniqueViolation is the PostgreSQL SQLSTATE for unique_violation
const uniqueViolation pq.ErrorCode = "23505"

// notFoundOr maps gorm.ErrRecordNotFound to a NOT_FOUND domain error.
func notFoundOr(err error, resource string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return shared.NewNotFoundError(resource)
	}
	return err
}

// conflictOr maps unique violations (requires gorm.Config.TranslateError) to CONFLICT.
func conflictOr(err error, format string, args ...any) error {
	if isDuplicateKey(err) {
		return shared.NewConflictError(format, args...)
	}
	return err
}

// isDuplicateKey also inspects raw lib/pq errors, which gorm's translator
// leaves alone when the connection is opened through database/sql.
func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}

func staleWrite(resource string) error {
	return shared.NewConcurrencyError(resource+" was modified by another transaction", shared.ErrConcurrencyConflict)
}
