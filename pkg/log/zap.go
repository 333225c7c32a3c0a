package log

import (
	"context"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	ModeProduction  = "production"
	ModeDevelopment = "debug"

	EncodingJSON    = "json"
	EncodingConsole = "console"
)

// ZapConfig holds logger settings.
type ZapConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type zapLogger struct {
	sugar *zap.SugaredLogger
}

// Init builds a zap-backed Logger. Unknown levels fall back to info.
func Init(cfg ZapConfig) Logger {
	level := zap.NewAtomicLevel()
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level.SetLevel(zapcore.InfoLevel)
	}

	var encCfg zapcore.EncoderConfig
	if cfg.Mode == ModeProduction {
		encCfg = zap.NewProductionEncoderConfig()
	} else {
		encCfg = zap.NewDevelopmentEncoderConfig()
	}
	encCfg.TimeKey = "ts"
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	if cfg.ColorEnabled && cfg.Encoding != EncodingJSON {
		encCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	var encoder zapcore.Encoder
	if cfg.Encoding == EncodingJSON {
		encoder = zapcore.NewJSONEncoder(encCfg)
	} else {
		encoder = zapcore.NewConsoleEncoder(encCfg)
	}

	core := zapcore.NewCore(encoder, zapcore.Lock(os.Stdout), level)
	opts := []zap.Option{zap.AddCaller(), zap.AddCallerSkip(1)}
	if cfg.Mode != ModeProduction {
		opts = append(opts, zap.Development())
	}

	return &zapLogger{sugar: zap.New(core, opts...).Sugar()}
}

// NewNop returns a Logger that discards everything.
func NewNop() Logger {
	return &zapLogger{sugar: zap.NewNop().Sugar()}
}

func (l *zapLogger) with(ctx context.Context) *zap.SugaredLogger {
	if id := RequestID(ctx); id != "" {
		return l.sugar.With("request_id", id)
	}
	return l.sugar
}

// Info-style methods accept either plain args or a message followed by
// key/value pairs, the latter being emitted as structured fields.
func split(arg []any) (string, []any, bool) {
	if len(arg) < 3 || len(arg)%2 == 0 {
		return "", nil, false
	}
	msg, ok := arg[0].(string)
	if !ok {
		return "", nil, false
	}
	for i := 1; i < len(arg); i += 2 {
		if _, ok := arg[i].(string); !ok {
			return "", nil, false
		}
	}
	return msg, arg[1:], true
}

func (l *zapLogger) Debug(ctx context.Context, arg ...any) {
	if msg, kv, ok := split(arg); ok {
		l.with(ctx).Debugw(msg, kv...)
		return
	}
	l.with(ctx).Debug(arg...)
}

func (l *zapLogger) Debugf(ctx context.Context, template string, arg ...any) {
	l.with(ctx).Debugf(template, arg...)
}

func (l *zapLogger) Info(ctx context.Context, arg ...any) {
	if msg, kv, ok := split(arg); ok {
		l.with(ctx).Infow(msg, kv...)
		return
	}
	l.with(ctx).Info(arg...)
}

func (l *zapLogger) Infof(ctx context.Context, template string, arg ...any) {
	l.with(ctx).Infof(template, arg...)
}

func (l *zapLogger) Warn(ctx context.Context, arg ...any) {
	if msg, kv, ok := split(arg); ok {
		l.with(ctx).Warnw(msg, kv...)
		return
	}
	l.with(ctx).Warn(arg...)
}

func (l *zapLogger) Warnf(ctx context.Context, template string, arg ...any) {
	l.with(ctx).Warnf(template, arg...)
}

func (l *zapLogger) Error(ctx context.Context, arg ...any) {
	if msg, kv, ok := split(arg); ok {
		l.with(ctx).Errorw(msg, kv...)
		return
	}
	l.with(ctx).Error(arg...)
}

func (l *zapLogger) Errorf(ctx context.Context, template string, arg ...any) {
	l.with(ctx).Errorf(template, arg...)
}

func (l *zapLogger) DPanic(ctx context.Context, arg ...any) {
	l.with(ctx).DPanic(arg...)
}

func (l *zapLogger) DPanicf(ctx context.Context, template string, arg ...any) {
	l.with(ctx).DPanicf(template, arg...)
}

func (l *zapLogger) Panic(ctx context.Context, arg ...any) {
	l.with(ctx).Panic(arg...)
}

func (l *zapLogger) Panicf(ctx context.Context, template string, arg ...any) {
	l.with(ctx).Panicf(template, arg...)
}

func (l *zapLogger) Fatal(ctx context.Context, arg ...any) {
	l.with(ctx).Fatal(arg...)
}

func (l *zapLogger) Fatalf(ctx context.Context, template string, arg ...any) {
	l.with(ctx).Fatalf(template, arg...)
}
