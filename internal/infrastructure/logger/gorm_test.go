package logger

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	gormlogger "gorm.io/gorm/logger"
)

func traceFn(sql string) func() (string, int64) {
	return func() (string, int64) { return sql, 1 }
}

func TestGormLogger_Trace(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := NewGormLogger(zap.New(core), gormlogger.Info, 100*time.Millisecond)

	ctx := WithUnitID(WithTenantID(WithRequestID(context.Background(), "req-7"), "tenant-3"), "unit-9")

	l.Trace(ctx, time.Now(), traceFn("SELECT * FROM bills"), nil)
	l.Trace(ctx, time.Now().Add(-time.Second), traceFn("SELECT * FROM bills FOR UPDATE"), nil)
	l.Trace(ctx, time.Now(), traceFn("UPDATE bills"), errors.New("deadlock detected"))
	l.Trace(ctx, time.Now(), traceFn("SELECT * FROM units"), gormlogger.ErrRecordNotFound)

	all := logs.All()
	require.Len(t, all, 4)
	assert.Equal(t, "SQL Query", all[0].Message)
	assert.Equal(t, zapcore.WarnLevel, all[1].Level)
	assert.Contains(t, all[1].Message, "SLOW SQL")
	assert.Equal(t, "SQL Error", all[2].Message)
	assert.Equal(t, "req-7", all[2].ContextMap()["request_id"])
	assert.Equal(t, "tenant-3", all[2].ContextMap()["tenant_id"])
	assert.Equal(t, "unit-9", all[2].ContextMap()["unit_id"])
	assert.Equal(t, "SQL Query", all[3].Message, "not found is not an SQL error")
}

func TestGormLogger_WarnLevelSkipsFastQueries(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := NewGormLogger(zap.New(core), gormlogger.Warn, 100*time.Millisecond)

	called := false
	l.Trace(context.Background(), time.Now(), func() (string, int64) {
		called = true
		return "SELECT 1", 1
	}, nil)

	assert.False(t, called)
	assert.Equal(t, 0, logs.Len())
}

func TestGormLogger_TruncatesLongSQL(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := NewGormLogger(zap.New(core), gormlogger.Info, 0)

	l.Trace(context.Background(), time.Now(), func() (string, int64) {
		return "INSERT INTO bill_payments VALUES " + strings.Repeat("(?),", 1000), -1
	}, nil)

	require.Equal(t, 1, logs.Len())
	fields := logs.All()[0].ContextMap()
	assert.True(t, strings.HasSuffix(fields["sql"].(string), "...(truncated)"))
	assert.NotContains(t, fields, "rows")
}

func TestGormLogger_Silent(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := NewGormLogger(zap.New(core), gormlogger.Info, 0).LogMode(gormlogger.Silent)

	l.Trace(context.Background(), time.Now(), traceFn("SELECT 1"), errors.New("x"))
	assert.Equal(t, 0, logs.Len())
}

func TestMapGormLogLevel(t *testing.T) {
	assert.Equal(t, gormlogger.Silent, MapGormLogLevel("silent"))
	assert.Equal(t, gormlogger.Error, MapGormLogLevel("error"))
	assert.Equal(t, gormlogger.Info, MapGormLogLevel("debug"))
	assert.Equal(t, gormlogger.Warn, MapGormLogLevel("info"))
}
