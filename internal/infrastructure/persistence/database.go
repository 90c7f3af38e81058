package persistence

import (
	"context"
	"fmt"
	"time"

	"github.com/doorscomputers/megatower-sub002/internal/infrastructure/config"
	"github.com/doorscomputers/megatower-sub002/internal/infrastructure/persistence/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/gorm/schema"
)

// Database is the billing store's connection pool.
type Database struct {
	DB *gorm.DB
}

// NewDatabase opens the PostgreSQL pool described by cfg and pings it.
// A nil gormLogger keeps GORM silent.
func NewDatabase(cfg *config.DatabaseConfig, gormLogger logger.Interface) (*Database, error) {
	db, err := Open(postgres.Open(cfg.DSN()), gormLogger)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(time.Duration(cfg.ConnMaxLifetime) * time.Minute)
	sqlDB.SetConnMaxIdleTime(time.Duration(cfg.ConnMaxIdleTime) * time.Minute)

	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return db, nil
}

// Open wraps any gorm dialector with the billing GORM settings.
func Open(dialector gorm.Dialector, gormLogger logger.Interface) (*Database, error) {
	if gormLogger == nil {
		gormLogger = logger.Default.LogMode(logger.Silent)
	}
	db, err := gorm.Open(dialector, GormConfig(gormLogger))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return &Database{DB: db}, nil
}

// GormConfig is the shared GORM configuration. TranslateError turns unique
// violations into gorm.ErrDuplicatedKey for every dialect.
func GormConfig(gormLogger logger.Interface) *gorm.Config {
	return &gorm.Config{
		Logger:                 gormLogger,
		SkipDefaultTransaction: true,
		PrepareStmt:            true,
		TranslateError:         true,
	}
}

// CheckSchema reports the billing tables that migrations have not created yet.
// The server never migrates on its own, so this backs the schema health check.
func (d *Database) CheckSchema(ctx context.Context) error {
	migrator := d.DB.WithContext(ctx).Migrator()
	var missing []string
	for _, m := range models.AllModels() {
		if !migrator.HasTable(m) {
			missing = append(missing, tableName(m))
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("billing schema incomplete, missing tables %v: run cmd/migrate up", missing)
	}
	return nil
}

func tableName(m any) string {
	if t, ok := m.(schema.Tabler); ok {
		return t.TableName()
	}
	return fmt.Sprintf("%T", m)
}

// Ping checks the pool can reach the server.
func (d *Database) Ping(ctx context.Context) error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	return sqlDB.PingContext(ctx)
}

// Close closes the pool.
func (d *Database) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	return sqlDB.Close()
}
