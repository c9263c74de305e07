package log

import (
	"context"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ZapConfig configures the zap-backed logger.
type ZapConfig struct {
	Level        string // debug, info, warn, error
	Mode         string // debug or production
	Encoding     string // console or json
	ColorEnabled bool
}

type zapLogger struct {
	sl *zap.SugaredLogger
}

// Init builds the zap-backed Logger from config. Invalid values fall back to
// debug level / console encoding rather than failing startup.
func Init(cfg ZapConfig) Logger {
	level := zapcore.DebugLevel
	if err := level.Set(cfg.Level); err != nil {
		level = zapcore.DebugLevel
	}

	var zapCfg zap.Config
	if cfg.Mode == "production" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	if cfg.Encoding == "json" {
		zapCfg.Encoding = "json"
	} else {
		zapCfg.Encoding = "console"
		if cfg.ColorEnabled {
			zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		}
	}

	l, err := zapCfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		l = zap.NewNop()
	}

	return &zapLogger{sl: l.Sugar()}
}

// with returns the sugared logger enriched with per-request fields from ctx.
func (z *zapLogger) with(ctx context.Context) *zap.SugaredLogger {
	if id := RequestIDFromContext(ctx); id != "" {
		return z.sl.With("request_id", id)
	}
	return z.sl
}

func (z *zapLogger) Debug(ctx context.Context, args ...interface{}) { z.with(ctx).Debug(args...) }
func (z *zapLogger) Debugf(ctx context.Context, format string, args ...interface{}) {
	z.with(ctx).Debugf(format, args...)
}
func (z *zapLogger) Info(ctx context.Context, args ...interface{}) { z.with(ctx).Info(args...) }
func (z *zapLogger) Infof(ctx context.Context, format string, args ...interface{}) {
	z.with(ctx).Infof(format, args...)
}
func (z *zapLogger) Warn(ctx context.Context, args ...interface{}) { z.with(ctx).Warn(args...) }
func (z *zapLogger) Warnf(ctx context.Context, format string, args ...interface{}) {
	z.with(ctx).Warnf(format, args...)
}
func (z *zapLogger) Error(ctx context.Context, args ...interface{}) { z.with(ctx).Error(args...) }
func (z *zapLogger) Errorf(ctx context.Context, format string, args ...interface{}) {
	z.with(ctx).Errorf(format, args...)
}
func (z *zapLogger) DPanic(ctx context.Context, args ...interface{}) { z.with(ctx).DPanic(args...) }
func (z *zapLogger) DPanicf(ctx context.Context, format string, args ...interface{}) {
	z.with(ctx).DPanicf(format, args...)
}
func (z *zapLogger) Panic(ctx context.Context, args ...interface{}) { z.with(ctx).Panic(args...) }
func (z *zapLogger) Panicf(ctx context.Context, format string, args ...interface{}) {
	z.with(ctx).Panicf(format, args...)
}
func (z *zapLogger) Fatal(ctx context.Context, args ...interface{}) { z.with(ctx).Fatal(args...) }
func (z *zapLogger) Fatalf(ctx context.Context, format string, args ...interface{}) {
	z.with(ctx).Fatalf(format, args...)
}
