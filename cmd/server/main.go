package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	billingapp "github.com/doorscomputers/megatower-sub002/internal/application/billing"
	"github.com/doorscomputers/megatower-sub002/internal/domain/billing"
	"github.com/doorscomputers/megatower-sub002/internal/infrastructure/config"
	"github.com/doorscomputers/megatower-sub002/internal/infrastructure/lock"
	"github.com/doorscomputers/megatower-sub002/internal/infrastructure/logger"
	"github.com/doorscomputers/megatower-sub002/internal/infrastructure/persistence"
	"github.com/doorscomputers/megatower-sub002/internal/infrastructure/telemetry"
	"github.com/doorscomputers/megatower-sub002/internal/interfaces/http/handler"
	"github.com/doorscomputers/megatower-sub002/internal/interfaces/http/middleware"
	"github.com/doorscomputers/megatower-sub002/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/doorscomputers/megatower-sub002/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

//go:generate swag init -d ../.. -g cmd/server/main.go -o ../../docs --parseInternal --overridesFile ../../.swaggo

//	@title			Megatower Billing API
//	@version		1.0
//	@description	Condo billing engine: utility and dues charges, monthly bills, compounded penalties, payment allocation and advance balances.

//	@contact.name	Megatower Billing
//	@contact.url	https://github.com/doorscomputers/megatower-sub002

//	@host		localhost:8080
//	@BasePath	/api/v1

//	@externalDocs.description	OpenAPI
//	@externalDocs.url			https://swagger.io/resources/open-api/

const version = "1.0.0"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	baseLog, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
		Fields:     map[string]string{"service": cfg.App.Name, "env": cfg.App.Env},
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = baseLog.Sync()
	}()

	ctx := context.Background()
	tel, err := telemetry.Setup(ctx, telemetry.Config{
		Enabled:           cfg.Telemetry.Enabled,
		CollectorEndpoint: cfg.Telemetry.CollectorEndpoint,
		Insecure:          cfg.Telemetry.Insecure,
		ServiceName:       cfg.Telemetry.ServiceName,
		ServiceVersion:    version,
		Environment:       cfg.App.Env,
		ExportInterval:    cfg.Telemetry.ExportInterval,
		SamplingRatio:     cfg.Telemetry.SamplingRatio,
	}, baseLog)
	if err != nil {
		baseLog.Fatal("Failed to initialize telemetry", zap.Error(err))
	}
	log := tel.Logger(baseLog, zapcore.InfoLevel)

	profiler, err := telemetry.StartProfiler(telemetry.ProfilerConfig{
		Enabled:           cfg.Profiling.Enabled,
		ServerAddress:     cfg.Profiling.ServerAddress,
		ApplicationName:   cfg.Profiling.ApplicationName,
		BasicAuthUser:     cfg.Profiling.BasicAuthUser,
		BasicAuthPassword: cfg.Profiling.BasicAuthPassword,
		ProfileTypes:      cfg.Profiling.ProfileTypes,
	}, log)
	if err != nil {
		log.Fatal("Failed to start profiler", zap.Error(err))
	}
	if cfg.Profiling.SpanProfiles {
		tel.EnableSpanProfiles()
	}

	log.Info("Starting Megatower billing",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("version", version),
	)

	billingMetrics, err := telemetry.NewBillingMetrics(tel.Meter("megatower.billing"))
	if err != nil {
		log.Fatal("Failed to create billing metrics", zap.Error(err))
	}

	db, err := persistence.NewDatabase(&cfg.Database, logger.NewGormLogger(
		log.Named("gorm"), logger.MapGormLogLevel(cfg.Log.Level), 200*time.Millisecond))
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	if err := telemetry.RegisterDBTracing(db.DB, tel.TracerProvider(), telemetry.DBTracingConfig{
		Enabled:    cfg.Telemetry.Enabled,
		DBName:     cfg.Database.DBName,
		LogFullSQL: cfg.IsDevelopment(),
	}, log); err != nil {
		log.Fatal("Failed to register database tracing", zap.Error(err))
	}

	locker, redisClient, err := lock.NewUnitLocker(cfg.Lock, cfg.Redis, log)
	if err != nil {
		log.Fatal("Failed to create unit locker", zap.Error(err))
	}

	svc := billingapp.NewBillingService(
		persistence.NewBillingRepositories(db.DB),
		persistence.NewGormBillingTransactionScope(db.DB),
		locker,
	)
	svc.SetLogger(log.Named("billing"))
	svc.SetMetrics(billingMetrics)
	svc.SetRateDefaults(rateDefaults(cfg.Billing))

	checks := map[string]handler.HealthCheck{
		"database": db.Ping,
		"schema":   db.CheckSchema,
	}
	if redisClient != nil {
		checks["redis"] = func(ctx context.Context) error {
			return redisClient.Ping(ctx).Err()
		}
	}

	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}
	docs.SwaggerInfo.Version = version
	middleware.SetupValidator()

	cors := middleware.DefaultCORSConfig()
	cors.AllowOrigins = cfg.HTTP.CORSAllowOrigins
	engine, err := router.NewEngine(router.EngineConfig{
		Logger: log,
		Meter:  tel.Meter("http.server"),
		Tracing: middleware.TracingConfig{
			ServiceName: cfg.Telemetry.ServiceName,
			Enabled:     cfg.Telemetry.Enabled,
		},
		Profiling:      middleware.DefaultProfilingConfig(profiler.Enabled()),
		CORS:           cors,
		MaxBodySize:    cfg.HTTP.MaxBodySize,
		TrustedProxies: cfg.HTTP.TrustedProxies,
		Docs:           ginSwagger.WrapHandler(swaggerFiles.Handler),
	}, handler.NewHealthHandler(version, checks).Health)
	if err != nil {
		log.Fatal("Failed to build HTTP engine", zap.Error(err))
	}

	routes := router.NewRouter(engine).
		Register(router.NewDomainGroup("billing", "/billing").Add(handler.NewBillingHandler(svc))).
		Setup()
	log.Info("API routes mounted", zap.Int("count", len(routes)))

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}
	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Warn("Failed to close Redis client", zap.Error(err))
		}
	}
	if err := db.Close(); err != nil {
		log.Warn("Failed to close database", zap.Error(err))
	}
	if err := tel.Shutdown(shutdownCtx); err != nil {
		baseLog.Warn("Failed to flush telemetry", zap.Error(err))
	}
	if err := profiler.Stop(); err != nil {
		baseLog.Warn("Failed to stop profiler", zap.Error(err))
	}

	baseLog.Info("Server exited gracefully")
}

// rateDefaults seeds new tenants from the billing section of the configuration
func rateDefaults(cfg config.BillingConfig) billingapp.RateDefaults {
	return func(tenantID uuid.UUID) *billing.RateSettings {
		r := billing.DefaultRateSettings(tenantID)
		if cfg.PenaltyRate > 0 {
			r.PenaltyRate = decimal.NewFromFloat(cfg.PenaltyRate)
		}
		if cfg.ReadingDay > 0 {
			r.Schedule.ReadingDay = cfg.ReadingDay
		}
		if cfg.BillingDay > 0 {
			r.Schedule.BillingDay = cfg.BillingDay
		}
		if cfg.StatementDelayDays > 0 {
			r.Schedule.StatementDelayDays = cfg.StatementDelayDays
		}
		if cfg.DueDateDelayDays > 0 {
			r.Schedule.DueDateDelayDays = cfg.DueDateDelayDays
		}
		r.Schedule.GracePeriodDays = cfg.GracePeriodDays
		return r
	}
}
