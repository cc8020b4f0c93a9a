package logger

import (
	"context"
	"os"

	"github.com/ougirez/rifmis/internal/pkg/constants"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// global writes warnings and worse to stderr until Init runs, so startup failures are
// never silent.
var global = bootstrap(zapcore.Lock(os.Stderr))

type Options struct {
	Level      string
	File       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

// Init replaces the global logger. Output goes to stdout as JSON and, when File is set,
// also to a rotated file.
func Init(opts Options) error {
	level, err := zapcore.ParseLevel(opts.Level)
	if err != nil {
		return err
	}

	encoder := newEncoder()

	cores := []zapcore.Core{
		zapcore.NewCore(encoder, zapcore.Lock(os.Stdout), level),
	}
	if opts.File != "" {
		rotator := &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    opts.MaxSizeMB,
			MaxBackups: opts.MaxBackups,
			MaxAge:     opts.MaxAgeDays,
			Compress:   true,
		}
		cores = append(cores, zapcore.NewCore(encoder, zapcore.AddSync(rotator), level))
	}

	l := zap.New(zapcore.NewTee(cores...), zap.AddCaller(), zap.AddCallerSkip(1))
	global = l.Sugar()
	return nil
}

func newEncoder() zapcore.Encoder {
	encCfg := zap.NewProductionEncoderConfig()
	encCfg.TimeKey = "ts"
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	return zapcore.NewJSONEncoder(encCfg)
}

func bootstrap(w zapcore.WriteSyncer) *zap.SugaredLogger {
	core := zapcore.NewCore(newEncoder(), w, zapcore.WarnLevel)
	return zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1)).Sugar()
}

// Set swaps the global logger; used by tests to capture output.
func Set(l *zap.SugaredLogger) {
	global = l
}

func Sync() {
	_ = global.Sync()
}

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, ctxKey{}, requestID)
}

type ctxKey struct{}

func fromCtx(ctx context.Context) *zap.SugaredLogger {
	if ctx == nil {
		return global
	}
	if id, ok := ctx.Value(ctxKey{}).(string); ok && id != "" {
		return global.With(constants.CtxKeyRequestID, id)
	}
	return global
}

func Debugf(ctx context.Context, template string, args ...interface{}) {
	fromCtx(ctx).Debugf(template, args...)
}

func Infof(ctx context.Context, template string, args ...interface{}) {
	fromCtx(ctx).Infof(template, args...)
}

func Infow(ctx context.Context, msg string, keysAndValues ...interface{}) {
	fromCtx(ctx).Infow(msg, keysAndValues...)
}

func Warnf(ctx context.Context, template string, args ...interface{}) {
	fromCtx(ctx).Warnf(template, args...)
}

func Errorf(ctx context.Context, template string, args ...interface{}) {
	fromCtx(ctx).Errorf(template, args...)
}

func Error(ctx context.Context, err error) {
	fromCtx(ctx).Error(err)
}

func Fatal(ctx context.Context, err error) {
	fromCtx(ctx).Fatal(err)
}
