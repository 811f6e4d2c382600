package log

import (
	"context"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the context-aware logging facade used across the service.
// Context is accepted on every call so request-scoped fields (request id)
// can be attached by middleware without threading a logger through every layer.
type Logger interface {
	Debug(ctx context.Context, args ...interface{})
	Debugf(ctx context.Context, format string, args ...interface{})
	Info(ctx context.Context, args ...interface{})
	Infof(ctx context.Context, format string, args ...interface{})
	Warn(ctx context.Context, args ...interface{})
	Warnf(ctx context.Context, format string, args ...interface{})
	Error(ctx context.Context, args ...interface{})
	Errorf(ctx context.Context, format string, args ...interface{})
}

// ZapConfig configures the zap-backed Logger.
type ZapConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type ctxKey struct{}

// NewContext returns a context carrying a request id logged on every line.
func NewContext(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, ctxKey{}, requestID)
}

func requestID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if id, ok := ctx.Value(ctxKey{}).(string); ok {
		return id
	}
	return ""
}

type zapLogger struct {
	sugar *zap.SugaredLogger
}

// Init builds the service Logger from config. Unknown levels fall back to info.
func Init(cfg ZapConfig) Logger {
	level := zapcore.InfoLevel
	if err := level.Set(cfg.Level); err != nil {
		level = zapcore.InfoLevel
	}

	var zcfg zap.Config
	if cfg.Mode == "production" {
		zcfg = zap.NewProductionConfig()
	} else {
		zcfg = zap.NewDevelopmentConfig()
	}
	zcfg.Level = zap.NewAtomicLevelAt(level)

	if cfg.Encoding != "" {
		zcfg.Encoding = cfg.Encoding
	}
	if cfg.ColorEnabled && zcfg.Encoding == "console" {
		zcfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	l, err := zcfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		l = zap.NewNop()
	}
	return &zapLogger{sugar: l.Sugar()}
}

func (z *zapLogger) with(ctx context.Context) *zap.SugaredLogger {
	if id := requestID(ctx); id != "" {
		return z.sugar.With("request_id", id)
	}
	return z.sugar
}

func (z *zapLogger) Debug(ctx context.Context, args ...interface{}) {
	z.with(ctx).Debug(args...)
}

func (z *zapLogger) Debugf(ctx context.Context, format string, args ...interface{}) {
	z.with(ctx).Debugf(format, args...)
}

func (z *zapLogger) Info(ctx context.Context, args ...interface{}) {
	z.with(ctx).Info(args...)
}

func (z *zapLogger) Infof(ctx context.Context, format string, args ...interface{}) {
	z.with(ctx).Infof(format, args...)
}

func (z *zapLogger) Warn(ctx context.Context, args ...interface{}) {
	z.with(ctx).Warn(args...)
}

func (z *zapLogger) Warnf(ctx context.Context, format string, args ...interface{}) {
	z.with(ctx).Warnf(format, args...)
}

func (z *zapLogger) Error(ctx context.Context, args ...interface{}) {
	z.with(ctx).Error(args...)
}

func (z *zapLogger) Errorf(ctx context.Context, format string, args ...interface{}) {
	z.with(ctx).Errorf(format, args...)
}

// Nop returns a Logger that discards everything. Used in tests.
func Nop() Logger {
	return &zapLogger{sugar: zap.NewNop().Sugar()}
}
