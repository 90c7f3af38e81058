package logger

import (
	"context"

	"go.uber.org/zap"
)

type contextKey string

const (
	loggerKey    contextKey = "logger"
	requestIDKey contextKey = "request_id"
	tenantIDKey  contextKey = "tenant_id"
	unitIDKey    contextKey = "unit_id"
)

// WithContext returns a new context with the logger attached
func WithContext(ctx context.Context, logger *zap.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// FromContext retrieves the logger from context, or a no-op logger
func FromContext(ctx context.Context) *zap.Logger {
	if logger, ok := ctx.Value(loggerKey).(*zap.Logger); ok {
		return logger
	}
	return zap.NewNop()
}

// FromContextOr retrieves the logger from context, or fallback when none is attached
func FromContextOr(ctx context.Context, fallback *zap.Logger) *zap.Logger {
	if logger, ok := ctx.Value(loggerKey).(*zap.Logger); ok {
		return logger
	}
	return fallback
}

// WithRequestID stores the request ID and enriches the context logger with it
func WithRequestID(ctx context.Context, requestID string) context.Context {
	ctx = context.WithValue(ctx, requestIDKey, requestID)
	return WithContext(ctx, FromContext(ctx).With(zap.String("request_id", requestID)))
}

// WithTenantID stores the tenant ID and enriches the context logger with it
func WithTenantID(ctx context.Context, tenantID string) context.Context {
	ctx = context.WithValue(ctx, tenantIDKey, tenantID)
	return WithContext(ctx, FromContext(ctx).With(zap.String("tenant_id", tenantID)))
}

// WithUnitID stores the unit being billed and enriches the context logger with it
func WithUnitID(ctx context.Context, unitID string) context.Context {
	ctx = context.WithValue(ctx, unitIDKey, unitID)
	return WithContext(ctx, FromContext(ctx).With(zap.String("unit_id", unitID)))
}

// GetRequestID retrieves request ID from context
func GetRequestID(ctx context.Context) string {
	s, _ := ctx.Value(requestIDKey).(string)
	return s
}

// GetTenantID retrieves tenant ID from context
func GetTenantID(ctx context.Context) string {
	s, _ := ctx.Value(tenantIDKey).(string)
	return s
}

// GetUnitID retrieves unit ID from context
func GetUnitID(ctx context.Context) string {
	s, _ := ctx.Value(unitIDKey).(string)
	return s
}
