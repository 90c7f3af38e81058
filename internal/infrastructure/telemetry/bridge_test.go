package telemetry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestLevelFilterCore(t *testing.T) {
	inner, logs := observer.New(zapcore.DebugLevel)
	core := &levelFilterCore{Core: inner, minLevel: zapcore.WarnLevel}
	log := zap.New(core).With(zap.String("unit_id", "U-101"))

	log.Info("reading recorded")
	log.Warn("penalty applied")
	log.Error("allocation failed")

	assert.False(t, core.Enabled(zapcore.InfoLevel))
	assert.True(t, core.Enabled(zapcore.ErrorLevel))
	assert.Equal(t, 2, logs.Len())
	for _, entry := range logs.All() {
		assert.Equal(t, "U-101", entry.ContextMap()["unit_id"])
	}
}
