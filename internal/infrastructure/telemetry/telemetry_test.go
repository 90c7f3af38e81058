package telemetry_test

import (
	"context"
	"testing"

	"github.com/doorscomputers/megatower-sub002/internal/infrastructure/telemetry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func TestSetup_Disabled(t *testing.T) {
	logger := zaptest.NewLogger(t)
	ctx := context.Background()

	p, err := telemetry.Setup(ctx, telemetry.Config{
		Enabled:           false,
		CollectorEndpoint: "localhost:4317",
		ServiceName:       "megatower-billing",
	}, logger)
	require.NoError(t, err)

	assert.False(t, p.Enabled())
	assert.NotNil(t, p.TracerProvider())
	assert.NotNil(t, p.Tracer("billing"))
	assert.NotNil(t, p.Meter("billing"))
	assert.Same(t, logger, p.Logger(logger, zapcore.InfoLevel))
	assert.NoError(t, p.Shutdown(ctx))
}

func TestProviders_NilSafe(t *testing.T) {
	var p *telemetry.Providers
	assert.False(t, p.Enabled())
	assert.NotNil(t, p.Meter("billing"))
	assert.NoError(t, p.Shutdown(context.Background()))
}

func TestRegisterDBTracing(t *testing.T) {
	logger := zaptest.NewLogger(t)
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	t.Run("disabled is a no-op", func(t *testing.T) {
		require.NoError(t, telemetry.RegisterDBTracing(db, tp, telemetry.DBTracingConfig{}, logger))
		_, ok := db.Config.Plugins["otelgorm"]
		assert.False(t, ok)
	})

	t.Run("enabled records statement spans", func(t *testing.T) {
		require.NoError(t, telemetry.RegisterDBTracing(db, tp, telemetry.DBTracingConfig{Enabled: true}, logger))
		_, ok := db.Config.Plugins["otelgorm"]
		require.True(t, ok)

		require.NoError(t, db.Exec("SELECT 1").Error)
		assert.NotEmpty(t, recorder.Ended())
	})
}
