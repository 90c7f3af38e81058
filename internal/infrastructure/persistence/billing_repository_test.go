package persistence

import (
	"context"
	"errors"
	"testing"
	"time"

	appbilling "github.com/doorscomputers/megatower-sub002/internal/application/billing"
	domain "github.com/doorscomputers/megatower-sub002/internal/domain/billing"
	"github.com/doorscomputers/megatower-sub002/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func month(t *testing.T, year int, m time.Month) domain.BillingMonth {
	t.Helper()
	bm, err := domain.NewBillingMonth(year, m)
	require.NoError(t, err)
	return bm
}

func createTestBill(t *testing.T, repo *GormBillRepository, tenantID, unitID uuid.UUID, bm domain.BillingMonth, dues string) *domain.Bill {
	t.Helper()
	period, err := domain.GetBillingPeriodInfo(bm, domain.DefaultScheduleSettings())
	require.NoError(t, err)
	bill, err := domain.NewBill(tenantID, unitID, period, domain.Components{Dues: dec(dues)}, domain.Credits{})
	require.NoError(t, err)
	require.NoError(t, repo.Create(context.Background(), bill))
	return bill
}

func TestGormUnitRepository(t *testing.T) {
	db := setupBillingTestDB(t)
	repo := NewGormUnitRepository(db)
	ctx := context.Background()
	tenantID := uuid.New()

	unit, err := domain.NewUnit(tenantID, "2F-01", "Juan dela Cruz", domain.CustomerClassResidential, dec("58"), dec("12.5"))
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, unit))

	t.Run("find by id and code", func(t *testing.T) {
		found, err := repo.FindByID(ctx, tenantID, unit.ID)
		require.NoError(t, err)
		assert.Equal(t, "2F-01", found.Code)
		assert.True(t, found.Area.Equal(dec("58")))
		assert.True(t, found.ParkingArea.Equal(dec("12.5")))

		byCode, err := repo.FindByCode(ctx, tenantID, "2F-01")
		require.NoError(t, err)
		assert.Equal(t, unit.ID, byCode.ID)
	})

	t.Run("other tenant cannot see the unit", func(t *testing.T) {
		_, err := repo.FindByID(ctx, uuid.New(), unit.ID)
		assert.True(t, shared.IsNotFound(err))
	})

	t.Run("duplicate code is a conflict", func(t *testing.T) {
		dup, err := domain.NewUnit(tenantID, "2F-01", "Other", domain.CustomerClassCommercial, dec("20"), decimal.Zero)
		require.NoError(t, err)
		err = repo.Save(ctx, dup)
		assert.Equal(t, shared.CodeConflict, shared.ErrorCode(err))
	})
}

func TestGormRateSettingsRepository(t *testing.T) {
	db := setupBillingTestDB(t)
	repo := NewGormRateSettingsRepository(db)
	ctx := context.Background()
	tenantID := uuid.New()

	_, err := repo.FindByTenant(ctx, tenantID)
	require.True(t, shared.IsNotFound(err))

	settings := domain.DefaultRateSettings(tenantID)
	next := *settings
	next.ElectricRate = dec("9.15")
	require.NoError(t, settings.Update(next))
	require.NoError(t, repo.Save(ctx, settings))

	stored, err := repo.FindByTenant(ctx, tenantID)
	require.NoError(t, err)
	assert.True(t, stored.ElectricRate.Equal(dec("9.15")))
	assert.True(t, stored.ResidentialWater.Tier3Fee.Equal(dec("370")))
	assert.True(t, stored.CommercialWater.Tier7Rate.Equal(dec("70")))
	assert.Equal(t, 27, stored.Schedule.BillingDay)

	t.Run("update with version check", func(t *testing.T) {
		n := *stored
		n.DuesRate = dec("65")
		require.NoError(t, stored.Update(n))
		require.NoError(t, repo.Save(ctx, stored))

		again, err := repo.FindByTenant(ctx, tenantID)
		require.NoError(t, err)
		assert.True(t, again.DuesRate.Equal(dec("65")))
		assert.Equal(t, stored.Version, again.Version)
	})

	t.Run("stale snapshot is rejected", func(t *testing.T) {
		stale := domain.DefaultRateSettings(tenantID)
		require.NoError(t, stale.Update(*stale))
		err := repo.Save(ctx, stale)
		assert.True(t, shared.IsConcurrencyError(err))
	})
}

func TestGormMeterReadingRepository(t *testing.T) {
	db := setupBillingTestDB(t)
	repo := NewGormMeterReadingRepository(db)
	ctx := context.Background()
	tenantID, unitID := uuid.New(), uuid.New()

	dec24 := month(t, 2024, time.December)
	jan25 := month(t, 2025, time.January)

	r1, err := domain.NewMeterReading(tenantID, unitID, domain.UtilityElectric, dec24, dec("1000"), dec("1150"))
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, r1))
	r2, err := domain.NewMeterReading(tenantID, unitID, domain.UtilityElectric, jan25, dec("1150"), dec("1300"))
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, r2))

	t.Run("find for month", func(t *testing.T) {
		found, err := repo.FindForMonth(ctx, tenantID, unitID, domain.UtilityElectric, jan25)
		require.NoError(t, err)
		assert.True(t, found.Consumption().Equal(dec("150")))
		assert.Equal(t, jan25, found.BillingMonth)

		_, err = repo.FindForMonth(ctx, tenantID, unitID, domain.UtilityWater, jan25)
		assert.True(t, shared.IsNotFound(err))
	})

	t.Run("latest before", func(t *testing.T) {
		found, err := repo.FindLatestBefore(ctx, tenantID, unitID, domain.UtilityElectric, month(t, 2025, time.March))
		require.NoError(t, err)
		assert.Equal(t, jan25, found.BillingMonth)

		_, err = repo.FindLatestBefore(ctx, tenantID, unitID, domain.UtilityElectric, dec24)
		assert.True(t, shared.IsNotFound(err))
	})

	t.Run("save replaces the month's reading", func(t *testing.T) {
		fix, err := domain.NewMeterReading(tenantID, unitID, domain.UtilityElectric, jan25, dec("1150"), dec("1250"))
		require.NoError(t, err)
		require.NoError(t, repo.Save(ctx, fix))

		found, err := repo.FindForMonth(ctx, tenantID, unitID, domain.UtilityElectric, jan25)
		require.NoError(t, err)
		assert.True(t, found.Present.Equal(dec("1250")))
	})
}

func TestGormBillRepository(t *testing.T) {
	db := setupBillingTestDB(t)
	repo := NewGormBillRepository(db)
	ctx := context.Background()
	tenantID, unitID := uuid.New(), uuid.New()

	feb := createTestBill(t, repo, tenantID, unitID, month(t, 2025, time.February), "300")
	jan := createTestBill(t, repo, tenantID, unitID, month(t, 2025, time.January), "200")

	t.Run("round trip keeps amounts and month", func(t *testing.T) {
		found, err := repo.FindByID(ctx, tenantID, jan.ID)
		require.NoError(t, err)
		assert.Equal(t, jan.BillNumber, found.BillNumber)
		assert.Equal(t, jan.BillingMonth, found.BillingMonth)
		assert.True(t, found.TotalAmount.Equal(dec("200")))
		assert.Equal(t, domain.BillStatusUnpaid, found.Status)
		require.NoError(t, found.CheckConsistency())
	})

	t.Run("duplicate month is a conflict", func(t *testing.T) {
		period, err := domain.GetBillingPeriodInfo(jan.BillingMonth, domain.DefaultScheduleSettings())
		require.NoError(t, err)
		dup, err := domain.NewBill(tenantID, unitID, period, domain.Components{Dues: dec("1")}, domain.Credits{})
		require.NoError(t, err)
		err = repo.Create(ctx, dup)
		assert.Equal(t, shared.CodeConflict, shared.ErrorCode(err))
	})

	t.Run("outstanding bills come back oldest first", func(t *testing.T) {
		bills, err := repo.FindOutstandingForUpdate(ctx, tenantID, unitID)
		require.NoError(t, err)
		require.Len(t, bills, 2)
		assert.Equal(t, jan.ID, bills[0].ID)
		assert.Equal(t, feb.ID, bills[1].ID)
	})

	t.Run("save with lock", func(t *testing.T) {
		bill, err := repo.FindByID(ctx, tenantID, jan.ID)
		require.NoError(t, err)
		require.NoError(t, bill.ApplyAllocation(domain.CategoryAmounts{Dues: dec("200")}))
		require.NoError(t, repo.SaveWithLock(ctx, bill))

		stored, err := repo.FindByID(ctx, tenantID, jan.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.BillStatusPaid, stored.Status)
		assert.True(t, stored.Balance.IsZero())
		assert.Equal(t, bill.Version, stored.Version)

		// A second writer holding the old version loses.
		stale, err := repo.FindByID(ctx, tenantID, feb.ID)
		require.NoError(t, err)
		concurrent := *stale
		require.NoError(t, stale.ApplyAllocation(domain.CategoryAmounts{Dues: dec("100")}))
		require.NoError(t, repo.SaveWithLock(ctx, stale))
		require.NoError(t, concurrent.ApplyAllocation(domain.CategoryAmounts{Dues: dec("50")}))
		err = repo.SaveWithLock(ctx, &concurrent)
		assert.True(t, shared.IsConcurrencyError(err))
	})

	t.Run("paid bills drop out of outstanding", func(t *testing.T) {
		bills, err := repo.FindOutstandingForUpdate(ctx, tenantID, unitID)
		require.NoError(t, err)
		require.Len(t, bills, 1)
		assert.Equal(t, feb.ID, bills[0].ID)
	})

	t.Run("filter by month range and status", func(t *testing.T) {
		from := month(t, 2025, time.February)
		bills, err := repo.FindByUnit(ctx, tenantID, unitID, domain.BillFilter{Filter: shared.DefaultFilter(), FromMonth: &from})
		require.NoError(t, err)
		require.Len(t, bills, 1)
		assert.Equal(t, feb.ID, bills[0].ID)

		paid := domain.BillStatusPaid
		bills, err = repo.FindByUnit(ctx, tenantID, unitID, domain.BillFilter{Filter: shared.DefaultFilter(), Status: &paid})
		require.NoError(t, err)
		require.Len(t, bills, 1)
		assert.Equal(t, jan.ID, bills[0].ID)
	})

	t.Run("overdue view keeps unsettled bills past due", func(t *testing.T) {
		after := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
		bills, err := repo.FindByUnit(ctx, tenantID, unitID, domain.BillFilter{Filter: shared.DefaultFilter(), DueBefore: &after})
		require.NoError(t, err)
		require.Len(t, bills, 1)
		assert.Equal(t, feb.ID, bills[0].ID)

		onDueDate := feb.DueDate
		bills, err = repo.FindByUnit(ctx, tenantID, unitID, domain.BillFilter{Filter: shared.DefaultFilter(), DueBefore: &onDueDate})
		require.NoError(t, err)
		assert.Empty(t, bills)
	})

	t.Run("find by ids for update", func(t *testing.T) {
		bills, err := repo.FindByIDsForUpdate(ctx, tenantID, []uuid.UUID{feb.ID, jan.ID})
		require.NoError(t, err)
		require.Len(t, bills, 2)
		assert.Equal(t, jan.ID, bills[0].ID)
	})
}

func TestGormPaymentRepository(t *testing.T) {
	db := setupBillingTestDB(t)
	repo := NewGormPaymentRepository(db)
	bills := NewGormBillRepository(db)
	ctx := context.Background()
	tenantID, unitID := uuid.New(), uuid.New()

	payment, err := domain.NewPayment(tenantID, unitID, "OR-0001", domain.PaymentMethodCash,
		domain.PaymentComponents{Dues: dec("150")}, dec("150"), time.Date(2025, 2, 5, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, payment))

	t.Run("reference lookup", func(t *testing.T) {
		exists, err := repo.ExistsByReference(ctx, tenantID, unitID, "OR-0001")
		require.NoError(t, err)
		assert.True(t, exists)

		exists, err = repo.ExistsByReference(ctx, tenantID, uuid.New(), "OR-0001")
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("duplicate reference is a conflict", func(t *testing.T) {
		dup, err := domain.NewPayment(tenantID, unitID, "OR-0001", domain.PaymentMethodCash,
			domain.PaymentComponents{Dues: dec("1")}, dec("1"), time.Now())
		require.NoError(t, err)
		err = repo.Create(ctx, dup)
		assert.Equal(t, shared.CodeConflict, shared.ErrorCode(err))
	})

	t.Run("bill payments", func(t *testing.T) {
		bill := createTestBill(t, bills, tenantID, unitID, month(t, 2025, time.January), "200")
		row := domain.NewBillPayment(payment, bill, domain.CategoryAmounts{Dues: dec("150")})
		require.NoError(t, repo.CreateBillPayments(ctx, []domain.BillPayment{row}))

		byPayment, err := repo.FindBillPayments(ctx, tenantID, payment.ID)
		require.NoError(t, err)
		require.Len(t, byPayment, 1)
		assert.True(t, byPayment[0].Total.Equal(dec("150")))
		assert.Equal(t, bill.ID, byPayment[0].BillID)

		byBill, err := repo.FindBillPaymentsByBill(ctx, tenantID, bill.ID)
		require.NoError(t, err)
		assert.Len(t, byBill, 1)
	})

	t.Run("void with lock", func(t *testing.T) {
		found, err := repo.FindByIDForUpdate(ctx, tenantID, payment.ID)
		require.NoError(t, err)
		require.NoError(t, found.Void("bounced check", time.Now()))
		require.NoError(t, repo.SaveWithLock(ctx, found))

		stored, err := repo.FindByID(ctx, tenantID, payment.ID)
		require.NoError(t, err)
		assert.True(t, stored.IsVoided())
		require.NotNil(t, stored.VoidedAt)
		assert.Equal(t, "bounced check", stored.VoidReason)
	})

	t.Run("list by unit", func(t *testing.T) {
		list, err := repo.FindByUnit(ctx, tenantID, unitID, shared.DefaultFilter())
		require.NoError(t, err)
		assert.Len(t, list, 1)
	})
}

func TestGormAdvanceBalanceRepository(t *testing.T) {
	db := setupBillingTestDB(t)
	repo := NewGormAdvanceBalanceRepository(db)
	ctx := context.Background()
	tenantID, unitID := uuid.New(), uuid.New()
	source := uuid.New()

	balance, err := repo.FindByUnit(ctx, tenantID, unitID)
	require.NoError(t, err)
	assert.True(t, balance.Amounts().Total().IsZero())

	require.NoError(t, balance.Credit(domain.AdvanceBucketDues, dec("500"), domain.AdvanceSourcePayment, source))
	require.NoError(t, repo.Save(ctx, balance))
	assert.Empty(t, balance.PendingTransactions())

	t.Run("update bumps version and appends ledger", func(t *testing.T) {
		loaded, err := repo.FindByUnitForUpdate(ctx, tenantID, unitID)
		require.NoError(t, err)
		assert.True(t, loaded.Dues.Equal(dec("500")))

		stale := *loaded
		require.NoError(t, loaded.Debit(domain.AdvanceBucketDues, dec("120"), domain.AdvanceSourceBill, uuid.New()))
		require.NoError(t, repo.Save(ctx, loaded))

		again, err := repo.FindByUnit(ctx, tenantID, unitID)
		require.NoError(t, err)
		assert.True(t, again.Dues.Equal(dec("380")))
		assert.Equal(t, loaded.Version, again.Version)

		require.NoError(t, stale.Credit(domain.AdvanceBucketUtilities, dec("1"), domain.AdvanceSourcePayment, source))
		err = repo.Save(ctx, &stale)
		assert.True(t, shared.IsConcurrencyError(err))
	})

	t.Run("ledger newest first", func(t *testing.T) {
		txs, err := repo.FindTransactions(ctx, tenantID, unitID, 10)
		require.NoError(t, err)
		require.Len(t, txs, 2)
		assert.Equal(t, domain.AdvanceTransactionDebit, txs[0].TransactionType)
		assert.True(t, txs[0].BalanceAfter.Equal(dec("380")))
		assert.Equal(t, domain.AdvanceTransactionCredit, txs[1].TransactionType)
	})

	t.Run("second fresh balance for the same unit loses", func(t *testing.T) {
		fresh := domain.NewAdvanceBalance(tenantID, unitID)
		require.NoError(t, fresh.Credit(domain.AdvanceBucketDues, dec("1"), domain.AdvanceSourcePayment, source))
		err := repo.Save(ctx, fresh)
		assert.True(t, shared.IsConcurrencyError(err))
	})
}

func TestGormBillingTransactionScope_RollsBack(t *testing.T) {
	db := setupBillingTestDB(t)
	scope := NewGormBillingTransactionScope(db)
	ctx := context.Background()
	tenantID, unitID := uuid.New(), uuid.New()
	boom := errors.New("boom")

	err := scope.Execute(ctx, func(repos appbilling.TransactionalRepositories) error {
		period, err := domain.GetBillingPeriodInfo(month(t, 2025, time.January), domain.DefaultScheduleSettings())
		if err != nil {
			return err
		}
		bill, err := domain.NewBill(tenantID, unitID, period, domain.Components{Dues: dec("100")}, domain.Credits{})
		if err != nil {
			return err
		}
		if err := repos.Bills().Create(ctx, bill); err != nil {
			return err
		}
		balance := domain.NewAdvanceBalance(tenantID, unitID)
		if err := balance.Credit(domain.AdvanceBucketDues, dec("10"), domain.AdvanceSourceBill, bill.ID); err != nil {
			return err
		}
		if err := repos.Advances().Save(ctx, balance); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	bills, err := NewGormBillRepository(db).FindByUnit(ctx, tenantID, unitID, domain.BillFilter{Filter: shared.DefaultFilter()})
	require.NoError(t, err)
	assert.Empty(t, bills)

	txs, err := NewGormAdvanceBalanceRepository(db).FindTransactions(ctx, tenantID, unitID, 10)
	require.NoError(t, err)
	assert.Empty(t, txs)
}
