package billing

import (
	"context"

	"github.com/doorscomputers/megatower-sub002/internal/domain/billing"
)

// TransactionScope provides transactional access to billing repositories.
// Every repository handed to fn shares one database transaction, which is
// committed when fn returns nil and rolled back otherwise.
type TransactionScope interface {
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// TransactionalRepositories provides access to all billing repositories within a transaction.
//
// Bills and the advance balance must be read with their ForUpdate variants
// before they are changed, so concurrent writers on the same unit queue on
// the row locks even when the unit lock is unavailable.
type TransactionalRepositories interface {
	Units() billing.UnitRepository
	Rates() billing.RateSettingsRepository
	Readings() billing.MeterReadingRepository
	Bills() billing.BillRepository
	Payments() billing.PaymentRepository
	Advances() billing.AdvanceBalanceRepository
}

// Repositories groups the non-transactional repositories used for reads.
type Repositories struct {
	Units    billing.UnitRepository
	Rates    billing.RateSettingsRepository
	Readings billing.MeterReadingRepository
	Bills    billing.BillRepository
	Payments billing.PaymentRepository
	Advances billing.AdvanceBalanceRepository
}

// NoOpTransactionScope runs fn against plain repositories without a transaction.
// This is useful for testing with in-memory fakes.
type NoOpTransactionScope struct {
	repos Repositories
}

// NewNoOpTransactionScope creates a NoOpTransactionScope over the given repositories.
func NewNoOpTransactionScope(repos Repositories) *NoOpTransactionScope {
	return &NoOpTransactionScope{repos: repos}
}

// Execute runs the function without a real transaction.
func (s *NoOpTransactionScope) Execute(_ context.Context, fn func(repos TransactionalRepositories) error) error {
	return fn(s)
}

// Units returns the unit repository.
func (s *NoOpTransactionScope) Units() billing.UnitRepository { return s.repos.Units }

// Rates returns the rate settings repository.
func (s *NoOpTransactionScope) Rates() billing.RateSettingsRepository { return s.repos.Rates }

// Readings returns the meter reading repository.
func (s *NoOpTransactionScope) Readings() billing.MeterReadingRepository { return s.repos.Readings }

// Bills returns the bill repository.
func (s *NoOpTransactionScope) Bills() billing.BillRepository { return s.repos.Bills }

// Payments returns the payment repository.
func (s *NoOpTransactionScope) Payments() billing.PaymentRepository { return s.repos.Payments }

// Advances returns the advance balance repository.
func (s *NoOpTransactionScope) Advances() billing.AdvanceBalanceRepository { return s.repos.Advances }

var _ TransactionScope = (*NoOpTransactionScope)(nil)
var _ TransactionalRepositories = (*NoOpTransactionScope)(nil)
