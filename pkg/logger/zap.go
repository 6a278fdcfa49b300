package logger

import (
	"context"
	"fmt"

	"github.com/Gunvolt24/storefront/pkg/ctxmeta"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ZapLogger — реализация ports.Logger поверх zap.SugaredLogger.
// Метаданные из контекста (request_id, session_id, trace/span) уходят структурными полями.
type ZapLogger struct {
	base   *zap.Logger
	sugar  *zap.SugaredLogger
	isProd bool
}

// NewZapLogger — production (JSON) или development (консоль) конфиг с уровнем по умолчанию.
func NewZapLogger(isProd bool) (*ZapLogger, func() error, error) {
	return NewZapLoggerWithLevel(isProd, "")
}

// NewZapLoggerWithLevel — то же, но с явным уровнем (debug, info, warn, error).
func NewZapLoggerWithLevel(isProd bool, level string) (*ZapLogger, func() error, error) {
	cfg := zap.NewDevelopmentConfig()
	if isProd {
		cfg = zap.NewProductionConfig()
	}
	if level != "" {
		lvl, err := zapcore.ParseLevel(level)
		if err != nil {
			return nil, nil, fmt.Errorf("log level: %w", err)
		}
		cfg.Level = zap.NewAtomicLevelAt(lvl)
	}

	logger, err := cfg.Build()
	if err != nil {
		return nil, nil, err
	}

	loggerWrap := FromZap(logger)
	loggerWrap.isProd = isProd

	cleanup := func() error { return loggerWrap.base.Sync() }
	return loggerWrap, cleanup, nil
}

// FromZap — обёртка над готовым *zap.Logger (тесты, observer).
func FromZap(l *zap.Logger) *ZapLogger {
	return &ZapLogger{base: l, sugar: l.Sugar()}
}

func (z *ZapLogger) Infof(ctx context.Context, format string, args ...any) {
	z.with(ctx).Infof(format, args...)
}
func (z *ZapLogger) Warnf(ctx context.Context, format string, args ...any) {
	z.with(ctx).Warnf(format, args...)
}
func (z *ZapLogger) Errorf(ctx context.Context, format string, args ...any) {
	z.with(ctx).Errorf(format, args...)
}

func (z *ZapLogger) Base() *zap.Logger           { return z.base }
func (z *ZapLogger) Sugared() *zap.SugaredLogger { return z.sugar }

// with — логгер с полями из контекста; без полей возвращает базовый.
func (z *ZapLogger) with(ctx context.Context) *zap.SugaredLogger {
	if ctx == nil {
		return z.sugar
	}
	fields := make([]any, 0, 8)
	if v, ok := ctxmeta.RequestIDFromContext(ctx); ok {
		fields = append(fields, "request_id", v)
	}
	if v, ok := ctxmeta.SessionIDFromContext(ctx); ok {
		fields = append(fields, "session_id", v)
	}
	if v, ok := ctxmeta.TraceIDFromContext(ctx); ok {
		fields = append(fields, "trace_id", v)
	}
	if v, ok := ctxmeta.SpanIDFromContext(ctx); ok {
		fields = append(fields, "span_id", v)
	}
	if len(fields) == 0 {
		return z.sugar
	}
	return z.sugar.With(fields...)
}
