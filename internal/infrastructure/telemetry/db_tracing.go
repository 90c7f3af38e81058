package telemetry

import (
	"fmt"

	"github.com/uptrace/opentelemetry-go-extra/otelgorm"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// DBTracingConfig controls the otelgorm plugin.
type DBTracingConfig struct {
	Enabled bool
	DBName  string // reported as db.name, default "megatower"
	// LogFullSQL keeps bound values in db.statement. Development only, since
	// payment references and amounts would otherwise land in the trace store.
	LogFullSQL bool
}

// RegisterDBTracing makes every repository statement a child span of the
// request that issued it.
func RegisterDBTracing(db *gorm.DB, tp trace.TracerProvider, cfg DBTracingConfig, logger *zap.Logger) error {
	if !cfg.Enabled {
		logger.Debug("Database tracing disabled")
		return nil
	}

	name := cfg.DBName
	if name == "" {
		name = "megatower"
	}
	opts := []otelgorm.Option{
		otelgorm.WithTracerProvider(tp),
		otelgorm.WithDBName(name),
		otelgorm.WithAttributes(attribute.String("db.system", db.Dialector.Name())),
	}
	if !cfg.LogFullSQL {
		opts = append(opts, otelgorm.WithoutQueryVariables())
	}
	if err := db.Use(otelgorm.NewPlugin(opts...)); err != nil {
		return fmt.Errorf("failed to register otelgorm: %w", err)
	}

	logger.Info("Database tracing enabled",
		zap.String("db_name", name),
		zap.String("dialect", db.Dialector.Name()),
		zap.Bool("log_full_sql", cfg.LogFullSQL),
	)
	return nil
}
