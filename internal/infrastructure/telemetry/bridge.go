package telemetry

import (
	"go.opentelemetry.io/contrib/bridges/otelzap"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger tees base into the OTLP log pipeline for entries at or above minLevel.
// Without a log pipeline base is returned unchanged.
func (p *Providers) Logger(base *zap.Logger, minLevel zapcore.Level) *zap.Logger {
	if p == nil || p.logs == nil {
		return base
	}
	core := &levelFilterCore{
		Core:     otelzap.NewCore(p.cfg.ServiceName, otelzap.WithLoggerProvider(p.logs)),
		minLevel: minLevel,
	}
	return base.WithOptions(zap.WrapCore(func(c zapcore.Core) zapcore.Core {
		return zapcore.NewTee(c, core)
	}))
}

// levelFilterCore puts a floor under a core that accepts every level.
type levelFilterCore struct {
	zapcore.Core
	minLevel zapcore.Level
}

func (c *levelFilterCore) Enabled(lvl zapcore.Level) bool {
	return lvl >= c.minLevel && c.Core.Enabled(lvl)
}

func (c *levelFilterCore) Check(entry zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if !c.Enabled(entry.Level) {
		return ce
	}
	return c.Core.Check(entry, ce)
}

func (c *levelFilterCore) With(fields []zapcore.Field) zapcore.Core {
	return &levelFilterCore{Core: c.Core.With(fields), minLevel: c.minLevel}
}
