package persistence

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/doorscomputers/megatower-sub002/internal/domain/billing"
	"github.com/doorscomputers/megatower-sub002/internal/domain/shared"
	"github.com/doorscomputers/megatower-sub002/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupBillingTestDB opens an in-memory SQLite database with every billing table.
// One connection keeps the in-memory schema visible to every query.
func setupBillingTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	cfg := GormConfig(logger.Default.LogMode(logger.Silent))
	cfg.PrepareStmt = false
	db, err := gorm.Open(sqlite.Open(":memory:"), cfg)
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(models.AllModels()...))
	return db
}

// newMockDatabase creates a Database instance with a mocked SQL connection
func newMockDatabase(t *testing.T) (*Database, sqlmock.Sqlmock, *sql.DB) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	dialector := postgres.New(postgres.Config{
		Conn:       mockDB,
		DriverName: "postgres",
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{
		SkipDefaultTransaction: true,
		TranslateError:         true,
	})
	require.NoError(t, err)

	return &Database{DB: gormDB}, mock, mockDB
}

func TestGormConfig(t *testing.T) {
	cfg := GormConfig(nil)
	assert.True(t, cfg.TranslateError)
	assert.True(t, cfg.SkipDefaultTransaction)
}

func TestDatabase_CheckSchema(t *testing.T) {
	t.Run("empty database lists missing tables", func(t *testing.T) {
		empty, err := Open(sqlite.Open(":memory:"), nil)
		require.NoError(t, err)
		t.Cleanup(func() { _ = empty.Close() })

		err = empty.CheckSchema(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "bills")
		assert.Contains(t, err.Error(), "advance_transactions")
	})

	t.Run("migrated database passes", func(t *testing.T) {
		db := &Database{DB: setupBillingTestDB(t)}
		assert.NoError(t, db.CheckSchema(context.Background()))
	})
}

func TestDatabase_PingAndClose(t *testing.T) {
	mockDB, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)

	// GORM may ping during Open, so expect it first
	mock.ExpectPing()
	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: mockDB, DriverName: "postgres"}), &gorm.Config{})
	require.NoError(t, err)
	db := &Database{DB: gormDB}

	mock.ExpectPing().WillReturnError(errors.New("connection refused"))
	assert.Error(t, db.Ping(context.Background()))

	mock.ExpectClose()
	assert.NoError(t, db.Close())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormBillRepository_SaveWithLock_SQL(t *testing.T) {
	month, err := billing.NewBillingMonth(2025, time.January)
	require.NoError(t, err)
	bill := &billing.Bill{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(uuid.New()),
		UnitID:              uuid.New(),
		BillNumber:          "SOA-202501-ABCDEF12",
		BillType:            billing.BillTypeRegular,
		BillingMonth:        month,
		TotalAmount:         decimal.NewFromInt(100),
		Balance:             decimal.NewFromInt(100),
		Status:              billing.BillStatusUnpaid,
	}
	bill.Version = 2

	t.Run("zero rows affected is a concurrency error", func(t *testing.T) {
		db, mock, mockDB := newMockDatabase(t)
		defer mockDB.Close()

		mock.ExpectExec(`UPDATE "bills" SET .* WHERE .*version = \$\d+`).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := NewGormBillRepository(db.DB).SaveWithLock(context.Background(), bill)
		require.Error(t, err)
		assert.True(t, shared.IsConcurrencyError(err))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("driver error passes through", func(t *testing.T) {
		db, mock, mockDB := newMockDatabase(t)
		defer mockDB.Close()

		mock.ExpectExec(`UPDATE "bills" SET`).
			WillReturnError(errors.New("connection reset"))

		err := NewGormBillRepository(db.DB).SaveWithLock(context.Background(), bill)
		require.Error(t, err)
		assert.Empty(t, shared.ErrorCode(err))
	})
}

func TestGormBillRepository_FindOutstandingForUpdate_SQL(t *testing.T) {
	db, mock, mockDB := newMockDatabase(t)
	defer mockDB.Close()

	mock.ExpectQuery(`SELECT \* FROM "bills" WHERE .*status IN .* ORDER BY billing_month ASC.* FOR UPDATE`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "billing_month"}))

	bills, err := NewGormBillRepository(db.DB).FindOutstandingForUpdate(context.Background(), uuid.New(), uuid.New())
	require.NoError(t, err)
	assert.Empty(t, bills)
	assert.NoError(t, mock.ExpectationsWereMet())
}
