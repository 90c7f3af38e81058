package logger

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	gormlogger "gorm.io/gorm/logger"
)

// maxSQLLength caps statements in log entries; bulk allocation inserts can run long.
const maxSQLLength = 2048

// GormLogger routes GORM output through zap and tags SQL entries with the
// request, tenant and unit found on the context.
type GormLogger struct {
	logger        *zap.Logger
	logLevel      gormlogger.LogLevel
	slowThreshold time.Duration
}

// NewGormLogger creates a GORM logger. A zero slowThreshold disables slow query warnings.
func NewGormLogger(zapLogger *zap.Logger, level gormlogger.LogLevel, slowThreshold time.Duration) *GormLogger {
	return &GormLogger{
		logger:        zapLogger,
		logLevel:      level,
		slowThreshold: slowThreshold,
	}
}

// LogMode implements gormlogger.Interface
func (l *GormLogger) LogMode(level gormlogger.LogLevel) gormlogger.Interface {
	next := *l
	next.logLevel = level
	return &next
}

// Info implements gormlogger.Interface
func (l *GormLogger) Info(ctx context.Context, msg string, data ...any) {
	if l.logLevel >= gormlogger.Info {
		l.logger.Info(fmt.Sprintf(msg, data...), contextFields(ctx)...)
	}
}

// Warn implements gormlogger.Interface
func (l *GormLogger) Warn(ctx context.Context, msg string, data ...any) {
	if l.logLevel >= gormlogger.Warn {
		l.logger.Warn(fmt.Sprintf(msg, data...), contextFields(ctx)...)
	}
}

// Error implements gormlogger.Interface
func (l *GormLogger) Error(ctx context.Context, msg string, data ...any) {
	if l.logLevel >= gormlogger.Error {
		l.logger.Error(fmt.Sprintf(msg, data...), contextFields(ctx)...)
	}
}

// Trace implements gormlogger.Interface. Row locks taken during allocation show
// up here as slow queries when two payments for one unit collide.
func (l *GormLogger) Trace(ctx context.Context, begin time.Time, fc func() (sql string, rowsAffected int64), err error) {
	if l.logLevel <= gormlogger.Silent {
		return
	}
	if err != nil && errors.Is(err, gormlogger.ErrRecordNotFound) {
		// NOT_FOUND is an expected outcome surfaced by the repositories
		err = nil
	}

	elapsed := time.Since(begin)
	slow := l.slowThreshold != 0 && elapsed > l.slowThreshold
	switch {
	case err != nil && l.logLevel >= gormlogger.Error:
	case slow && l.logLevel >= gormlogger.Warn:
	case l.logLevel >= gormlogger.Info:
	default:
		return
	}

	sql, rows := fc()
	if len(sql) > maxSQLLength {
		sql = sql[:maxSQLLength] + "...(truncated)"
	}
	fields := append(contextFields(ctx),
		zap.Duration("elapsed", elapsed),
		zap.String("sql", sql),
	)
	if rows >= 0 {
		fields = append(fields, zap.Int64("rows", rows))
	}

	switch {
	case err != nil:
		l.logger.Error("SQL Error", append(fields, zap.Error(err))...)
	case slow:
		l.logger.Warn(fmt.Sprintf("SLOW SQL >= %v", l.slowThreshold), fields...)
	default:
		l.logger.Debug("SQL Query", fields...)
	}
}

func contextFields(ctx context.Context) []zap.Field {
	var fields []zap.Field
	if id := GetRequestID(ctx); id != "" {
		fields = append(fields, zap.String("request_id", id))
	}
	if id := GetTenantID(ctx); id != "" {
		fields = append(fields, zap.String("tenant_id", id))
	}
	if id := GetUnitID(ctx); id != "" {
		fields = append(fields, zap.String("unit_id", id))
	}
	return fields
}

// MapGormLogLevel maps the application log level to a GORM log level.
// Only debug logs every statement.
func MapGormLogLevel(level string) gormlogger.LogLevel {
	switch level {
	case "silent":
		return gormlogger.Silent
	case "error":
		return gormlogger.Error
	case "debug":
		return gormlogger.Info
	default:
		return gormlogger.Warn
	}
}
