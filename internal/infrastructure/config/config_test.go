package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("loads default values when nothing is configured", func(t *testing.T) {
		cfg, err := LoadFrom(t.TempDir())
		require.NoError(t, err)

		assert.Equal(t, "megatower-billing", cfg.App.Name)
		assert.Equal(t, "development", cfg.App.Env)
		assert.Equal(t, "8080", cfg.App.Port)
		assert.Equal(t, "localhost", cfg.Database.Host)
		assert.Equal(t, 5432, cfg.Database.Port)
		assert.Equal(t, "megatower", cfg.Database.DBName)
		assert.Equal(t, 25, cfg.Database.MaxOpenConns)
		assert.Equal(t, 0.10, cfg.Billing.PenaltyRate)
		assert.Equal(t, 26, cfg.Billing.ReadingDay)
		assert.Equal(t, 27, cfg.Billing.BillingDay)
		assert.Equal(t, 3, cfg.Billing.StatementDelayDays)
		assert.Equal(t, 10, cfg.Billing.DueDateDelayDays)
		assert.Equal(t, "memory", cfg.Lock.Backend)
		assert.Equal(t, 30*time.Second, cfg.Lock.TTL)
		assert.Equal(t, "megatower-billing", cfg.Telemetry.ServiceName)
		assert.False(t, cfg.Profiling.Enabled)
		assert.Equal(t, "megatower-billing", cfg.Profiling.ApplicationName)
		assert.True(t, cfg.IsDevelopment())
	})

	t.Run("reads config.toml", func(t *testing.T) {
		dir := t.TempDir()
		content := `
[app]
name = "tower-one"
port = "9090"

[redis]
enabled = true
host = "cache.local"

[billing]
penalty_rate = 0.05
billing_day = 31
grace_period_days = 7
statement_delay_days = 0

[lock]
ttl = "10s"
wait_timeout = "2s"
`
		require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0o600))

		cfg, err := LoadFrom(dir)
		require.NoError(t, err)
		assert.Equal(t, "tower-one", cfg.App.Name)
		assert.Equal(t, "9090", cfg.App.Port)
		assert.Equal(t, "cache.local:6379", cfg.Redis.Addr())
		assert.Equal(t, "redis", cfg.Lock.Backend)
		assert.Equal(t, 0.05, cfg.Billing.PenaltyRate)
		assert.Equal(t, 31, cfg.Billing.BillingDay)
		assert.Equal(t, 7, cfg.Billing.GracePeriodDays)
		assert.Equal(t, 0, cfg.Billing.StatementDelayDays, "explicit zero is kept")
		assert.Equal(t, 10*time.Second, cfg.Lock.TTL)
	})

	t.Run("environment overrides file", func(t *testing.T) {
		t.Setenv("MEGATOWER_APP_PORT", "7000")
		t.Setenv("MEGATOWER_DATABASE_HOST", "db.internal")
		t.Setenv("MEGATOWER_BILLING_PENALTY_RATE", "0")

		cfg, err := LoadFrom(t.TempDir())
		require.NoError(t, err)
		assert.Equal(t, "7000", cfg.App.Port)
		assert.Equal(t, "db.internal", cfg.Database.Host)
		assert.Equal(t, 0.0, cfg.Billing.PenaltyRate)
	})
}

func TestLoad_Profiling(t *testing.T) {
	dir := t.TempDir()
	content := `
[profiling]
enabled = true
server_address = "http://pyroscope:4040"
application_name = "megatower-billing-api"
profile_types = ["cpu", "inuse_space"]
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0o600))

	cfg, err := LoadFrom(dir)
	require.NoError(t, err)
	assert.True(t, cfg.Profiling.Enabled)
	assert.Equal(t, "http://pyroscope:4040", cfg.Profiling.ServerAddress)
	assert.Equal(t, "megatower-billing-api", cfg.Profiling.ApplicationName)
	assert.Equal(t, []string{"cpu", "inuse_space"}, cfg.Profiling.ProfileTypes)
	assert.False(t, cfg.Profiling.SpanProfiles)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantErr string
	}{
		{
			name:    "penalty rate above one",
			env:     map[string]string{"MEGATOWER_BILLING_PENALTY_RATE": "1.5"},
			wantErr: "billing.penalty_rate",
		},
		{
			name:    "reading day out of range",
			env:     map[string]string{"MEGATOWER_BILLING_READING_DAY": "32"},
			wantErr: "billing.reading_day",
		},
		{
			name:    "redis lock without redis",
			env:     map[string]string{"MEGATOWER_LOCK_BACKEND": "redis"},
			wantErr: "requires redis.enabled",
		},
		{
			name:    "unknown lock backend",
			env:     map[string]string{"MEGATOWER_LOCK_BACKEND": "etcd"},
			wantErr: "lock.backend",
		},
		{
			name: "production needs a password",
			env: map[string]string{
				"MEGATOWER_APP_ENV":       "production",
				"MEGATOWER_REDIS_ENABLED": "true",
			},
			wantErr: "database.password",
		},
		{
			name: "production forbids in-memory lock",
			env: map[string]string{
				"MEGATOWER_APP_ENV":           "production",
				"MEGATOWER_DATABASE_PASSWORD": "secret",
				"MEGATOWER_DATABASE_SSLMODE":  "require",
			},
			wantErr: "lock.backend=memory",
		},
		{
			name:    "telemetry without endpoint",
			env:     map[string]string{"MEGATOWER_TELEMETRY_ENABLED": "true"},
			wantErr: "collector_endpoint",
		},
		{
			name:    "profiling without server address",
			env:     map[string]string{"MEGATOWER_PROFILING_ENABLED": "true"},
			wantErr: "profiling.server_address",
		},
		{
			name: "span profiles without telemetry",
			env: map[string]string{
				"MEGATOWER_PROFILING_ENABLED":        "true",
				"MEGATOWER_PROFILING_SERVER_ADDRESS": "http://localhost:4040",
				"MEGATOWER_PROFILING_SPAN_PROFILES":  "true",
			},
			wantErr: "profiling.span_profiles",
		},
		{
			name: "idle conns exceed open conns",
			env: map[string]string{
				"MEGATOWER_DATABASE_MAX_OPEN_CONNS": "5",
				"MEGATOWER_DATABASE_MAX_IDLE_CONNS": "10",
			},
			wantErr: "cannot exceed",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := LoadFrom(t.TempDir())
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestDatabaseConfig_DSN(t *testing.T) {
	d := DatabaseConfig{Host: "db", Port: 5432, User: "billing", Password: "p@ss word", DBName: "megatower", SSLMode: "require"}
	assert.Equal(t, "postgres://billing:p%40ss%20word@db:5432/megatower?sslmode=require", d.DSN())
}
