package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix is the prefix for environment variable overrides
const EnvPrefix = "MEGATOWER"

// Config holds all application configuration
type Config struct {
	App       AppConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	Log       LogConfig
	HTTP      HTTPConfig
	Billing   BillingConfig
	Lock      LockConfig
	Telemetry TelemetryConfig
	Profiling ProfilingConfig
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, console
	Output string // stdout, stderr, or file path
}

// AppConfig holds application-specific settings
type AppConfig struct {
	Name string
	Env  string
	Port string
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	DBName          string
	SSLMode         string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime int // in minutes
	ConnMaxIdleTime int // in minutes
}

// RedisConfig holds Redis connection settings
type RedisConfig struct {
	Enabled  bool
	Host     string
	Port     int
	Password string
	DB       int
}

// Addr returns host:port
func (r *RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

// HTTPConfig holds HTTP server configuration
type HTTPConfig struct {
	ReadTimeout      time.Duration
	WriteTimeout     time.Duration
	IdleTimeout      time.Duration
	MaxHeaderBytes   int
	MaxBodySize      int64
	CORSAllowOrigins []string
	TrustedProxies   []string
}

// BillingConfig holds the defaults used when a tenant's rate settings are first seeded
type BillingConfig struct {
	PenaltyRate        float64
	ReadingDay         int
	BillingDay         int
	StatementDelayDays int
	DueDateDelayDays   int
	GracePeriodDays    int
}

// LockConfig holds per-unit lock settings
type LockConfig struct {
	Backend       string        // redis or memory
	TTL           time.Duration // lock expiry, must outlive one allocation
	WaitTimeout   time.Duration // how long to wait for a busy unit before giving up
	RetryInterval time.Duration
}

// TelemetryConfig holds OpenTelemetry tracing and metrics configuration
type TelemetryConfig struct {
	Enabled           bool
	CollectorEndpoint string // OTEL Collector endpoint (e.g., "localhost:4317")
	ExportInterval    time.Duration
	SamplingRatio     float64 // 0.0 - 1.0
	ServiceName       string
	Insecure          bool // Use insecure (non-TLS) connection (development only)
}

// ProfilingConfig holds Pyroscope continuous profiling configuration
type ProfilingConfig struct {
	Enabled           bool
	ServerAddress     string // Pyroscope server (e.g., "http://localhost:4040")
	ApplicationName   string
	BasicAuthUser     string
	BasicAuthPassword string
	ProfileTypes      []string // empty means cpu, alloc and inuse profiles
	SpanProfiles      bool     // link CPU samples to trace spans, needs telemetry.enabled
}

// Load loads configuration from TOML file and environment variables
// Priority (highest to lowest):
// 1. Environment variables with MEGATOWER_ prefix (e.g., MEGATOWER_DATABASE_PASSWORD)
// 2. config.toml
// 3. Built-in defaults
func Load() (*Config, error) {
	return LoadFrom(".", "./config", "/app")
}

// LoadFrom is Load with explicit config search paths
func LoadFrom(paths ...string) (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("toml")
	for _, p := range paths {
		v.AddConfigPath(p)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found is OK, we'll use defaults and env vars
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cfg := &Config{
		App: AppConfig{
			Name: v.GetString("app.name"),
			Env:  v.GetString("app.env"),
			Port: v.GetString("app.port"),
		},
		Database: DatabaseConfig{
			Host:            v.GetString("database.host"),
			Port:            v.GetInt("database.port"),
			User:            v.GetString("database.user"),
			Password:        v.GetString("database.password"),
			DBName:          v.GetString("database.dbname"),
			SSLMode:         v.GetString("database.sslmode"),
			MaxOpenConns:    v.GetInt("database.max_open_conns"),
			MaxIdleConns:    v.GetInt("database.max_idle_conns"),
			ConnMaxLifetime: v.GetInt("database.conn_max_lifetime"),
			ConnMaxIdleTime: v.GetInt("database.conn_max_idle_time"),
		},
		Redis: RedisConfig{
			Enabled:  v.GetBool("redis.enabled"),
			Host:     v.GetString("redis.host"),
			Port:     v.GetInt("redis.port"),
			Password: v.GetString("redis.password"),
			DB:       v.GetInt("redis.db"),
		},
		Log: LogConfig{
			Level:  v.GetString("log.level"),
			Format: v.GetString("log.format"),
			Output: v.GetString("log.output"),
		},
		HTTP: HTTPConfig{
			ReadTimeout:      v.GetDuration("http.read_timeout"),
			WriteTimeout:     v.GetDuration("http.write_timeout"),
			IdleTimeout:      v.GetDuration("http.idle_timeout"),
			MaxHeaderBytes:   v.GetInt("http.max_header_bytes"),
			MaxBodySize:      v.GetInt64("http.max_body_size"),
			CORSAllowOrigins: v.GetStringSlice("http.cors_allow_origins"),
			TrustedProxies:   v.GetStringSlice("http.trusted_proxies"),
		},
		Billing: BillingConfig{
			PenaltyRate:        v.GetFloat64("billing.penalty_rate"),
			ReadingDay:         v.GetInt("billing.reading_day"),
			BillingDay:         v.GetInt("billing.billing_day"),
			StatementDelayDays: v.GetInt("billing.statement_delay_days"),
			DueDateDelayDays:   v.GetInt("billing.due_date_delay_days"),
			GracePeriodDays:    v.GetInt("billing.grace_period_days"),
		},
		Lock: LockConfig{
			Backend:       v.GetString("lock.backend"),
			TTL:           v.GetDuration("lock.ttl"),
			WaitTimeout:   v.GetDuration("lock.wait_timeout"),
			RetryInterval: v.GetDuration("lock.retry_interval"),
		},
		Telemetry: TelemetryConfig{
			Enabled:           v.GetBool("telemetry.enabled"),
			CollectorEndpoint: v.GetString("telemetry.collector_endpoint"),
			ExportInterval:    v.GetDuration("telemetry.export_interval"),
			SamplingRatio:     v.GetFloat64("telemetry.sampling_ratio"),
			ServiceName:       v.GetString("telemetry.service_name"),
			Insecure:          v.GetBool("telemetry.insecure"),
		},
		Profiling: ProfilingConfig{
			Enabled:           v.GetBool("profiling.enabled"),
			ServerAddress:     v.GetString("profiling.server_address"),
			ApplicationName:   v.GetString("profiling.application_name"),
			BasicAuthUser:     v.GetString("profiling.basic_auth_user"),
			BasicAuthPassword: v.GetString("profiling.basic_auth_password"),
			ProfileTypes:      v.GetStringSlice("profiling.profile_types"),
			SpanProfiles:      v.GetBool("profiling.span_profiles"),
		},
	}

	applyDefaults(cfg, v)

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyDefaults sets default values for any empty config fields
func applyDefaults(cfg *Config, v *viper.Viper) {
	if cfg.App.Name == "" {
		cfg.App.Name = "megatower-billing"
	}
	if cfg.App.Env == "" {
		cfg.App.Env = "development"
	}
	if cfg.App.Port == "" {
		cfg.App.Port = "8080"
	}
	if cfg.Database.Host == "" {
		cfg.Database.Host = "localhost"
	}
	if cfg.Database.Port == 0 {
		cfg.Database.Port = 5432
	}
	if cfg.Database.User == "" {
		cfg.Database.User = "postgres"
	}
	if cfg.Database.DBName == "" {
		cfg.Database.DBName = "megatower"
	}
	if cfg.Database.SSLMode == "" {
		cfg.Database.SSLMode = "disable"
	}
	if cfg.Database.MaxOpenConns == 0 {
		cfg.Database.MaxOpenConns = 25
	}
	if cfg.Database.MaxIdleConns == 0 {
		cfg.Database.MaxIdleConns = 5
	}
	if cfg.Database.ConnMaxLifetime == 0 {
		cfg.Database.ConnMaxLifetime = 60
	}
	if cfg.Database.ConnMaxIdleTime == 0 {
		cfg.Database.ConnMaxIdleTime = 30
	}
	if cfg.Redis.Host == "" {
		cfg.Redis.Host = "localhost"
	}
	if cfg.Redis.Port == 0 {
		cfg.Redis.Port = 6379
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "console"
	}
	if cfg.Log.Output == "" {
		cfg.Log.Output = "stdout"
	}
	if cfg.HTTP.ReadTimeout == 0 {
		cfg.HTTP.ReadTimeout = 15 * time.Second
	}
	if cfg.HTTP.WriteTimeout == 0 {
		cfg.HTTP.WriteTimeout = 15 * time.Second
	}
	if cfg.HTTP.IdleTimeout == 0 {
		cfg.HTTP.IdleTimeout = 60 * time.Second
	}
	if cfg.HTTP.MaxHeaderBytes == 0 {
		cfg.HTTP.MaxHeaderBytes = 1 << 20 // 1MB
	}
	if cfg.HTTP.MaxBodySize == 0 {
		cfg.HTTP.MaxBodySize = 1 << 20 // 1MB
	}
	// Penalty rate 0 is a legitimate setting, so only default when unset
	if !v.IsSet("billing.penalty_rate") {
		cfg.Billing.PenaltyRate = 0.10
	}
	if cfg.Billing.ReadingDay == 0 {
		cfg.Billing.ReadingDay = 26
	}
	if cfg.Billing.BillingDay == 0 {
		cfg.Billing.BillingDay = 27
	}
	if !v.IsSet("billing.statement_delay_days") {
		cfg.Billing.StatementDelayDays = 3
	}
	if !v.IsSet("billing.due_date_delay_days") {
		cfg.Billing.DueDateDelayDays = 10
	}
	if cfg.Lock.Backend == "" {
		if cfg.Redis.Enabled {
			cfg.Lock.Backend = "redis"
		} else {
			cfg.Lock.Backend = "memory"
		}
	}
	if cfg.Lock.TTL == 0 {
		cfg.Lock.TTL = 30 * time.Second
	}
	if cfg.Lock.WaitTimeout == 0 {
		cfg.Lock.WaitTimeout = 5 * time.Second
	}
	if cfg.Lock.RetryInterval == 0 {
		cfg.Lock.RetryInterval = 50 * time.Millisecond
	}
	if cfg.Telemetry.ExportInterval == 0 {
		cfg.Telemetry.ExportInterval = 60 * time.Second
	}
	if !v.IsSet("telemetry.sampling_ratio") {
		cfg.Telemetry.SamplingRatio = 1.0
	}
	if cfg.Telemetry.ServiceName == "" {
		cfg.Telemetry.ServiceName = cfg.App.Name
	}
	if cfg.Profiling.ApplicationName == "" {
		cfg.Profiling.ApplicationName = cfg.App.Name
	}
	// Note: Insecure defaults to false for safety (TLS enabled by default)
}

// validate performs validation on the configuration
func (c *Config) validate() error {
	if c.Database.MaxOpenConns <= 0 {
		return fmt.Errorf("database.max_open_conns must be positive")
	}
	if c.Database.MaxIdleConns < 0 {
		return fmt.Errorf("database.max_idle_conns cannot be negative")
	}
	if c.Database.MaxIdleConns > c.Database.MaxOpenConns {
		return fmt.Errorf("database.max_idle_conns (%d) cannot exceed database.max_open_conns (%d)",
			c.Database.MaxIdleConns, c.Database.MaxOpenConns)
	}

	if c.Billing.PenaltyRate < 0 || c.Billing.PenaltyRate > 1 {
		return fmt.Errorf("billing.penalty_rate must be between 0 and 1, got %f", c.Billing.PenaltyRate)
	}
	if c.Billing.ReadingDay < 1 || c.Billing.ReadingDay > 31 {
		return fmt.Errorf("billing.reading_day must be between 1 and 31, got %d", c.Billing.ReadingDay)
	}
	if c.Billing.BillingDay < 1 || c.Billing.BillingDay > 31 {
		return fmt.Errorf("billing.billing_day must be between 1 and 31, got %d", c.Billing.BillingDay)
	}
	if c.Billing.StatementDelayDays < 0 || c.Billing.DueDateDelayDays < 0 || c.Billing.GracePeriodDays < 0 {
		return fmt.Errorf("billing delays cannot be negative")
	}

	switch c.Lock.Backend {
	case "memory":
	case "redis":
		if !c.Redis.Enabled {
			return fmt.Errorf("lock.backend=redis requires redis.enabled=true")
		}
	default:
		return fmt.Errorf("lock.backend must be redis or memory, got %q", c.Lock.Backend)
	}
	if c.Lock.WaitTimeout > c.Lock.TTL {
		return fmt.Errorf("lock.wait_timeout (%s) cannot exceed lock.ttl (%s)", c.Lock.WaitTimeout, c.Lock.TTL)
	}

	if c.App.Env == "production" {
		if c.Database.Password == "" {
			return fmt.Errorf("database.password is required in production")
		}
		if c.Database.SSLMode == "disable" {
			return fmt.Errorf("database.sslmode cannot be 'disable' in production")
		}
		if c.Lock.Backend == "memory" {
			return fmt.Errorf("lock.backend=memory only serializes a single instance and is not allowed in production")
		}
		for _, origin := range c.HTTP.CORSAllowOrigins {
			if origin == "*" {
				return fmt.Errorf("cors_allow_origins cannot be '*' in production (use specific origins)")
			}
		}
	}

	if c.Telemetry.SamplingRatio < 0 || c.Telemetry.SamplingRatio > 1 {
		return fmt.Errorf("telemetry.sampling_ratio must be between 0 and 1")
	}
	if c.Telemetry.Enabled && c.Telemetry.CollectorEndpoint == "" {
		return fmt.Errorf("telemetry.collector_endpoint is required when telemetry is enabled")
	}

	if c.Profiling.Enabled && c.Profiling.ServerAddress == "" {
		return fmt.Errorf("profiling.server_address is required when profiling is enabled")
	}
	if c.Profiling.SpanProfiles && !(c.Profiling.Enabled && c.Telemetry.Enabled) {
		return fmt.Errorf("profiling.span_profiles requires profiling.enabled and telemetry.enabled")
	}

	return nil
}

// IsDevelopment reports whether the app runs in development mode
func (c *Config) IsDevelopment() bool {
	return c.App.Env == "development"
}

// DSN returns the database connection string with properly escaped values
func (d *DatabaseConfig) DSN() string {
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(d.User, d.Password),
		Host:   fmt.Sprintf("%s:%d", d.Host, d.Port),
		Path:   d.DBName,
	}
	q := u.Query()
	q.Set("sslmode", d.SSLMode)
	u.RawQuery = q.Encode()
	return u.String()
}
