package logger

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	lumberjack "gopkg.in/natefinch/lumberjack.v2"
)

// Logger keeps the printf-style API the handlers and use cases log through,
// backed by a zap core writing JSON to stdout and optionally a rolling file.
type Logger struct {
	base  *zap.Logger
	sugar *zap.SugaredLogger
}

type Options struct {
	Level      string
	FilePath   string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

type Option func(*Options)

func WithLevel(level string) Option {
	return func(o *Options) { o.Level = level }
}

// WithFile adds a lumberjack rolling file sink next to stdout.
func WithFile(path string, maxSizeMB, maxBackups, maxAgeDays int, compress bool) Option {
	return func(o *Options) {
		o.FilePath = path
		o.MaxSizeMB = maxSizeMB
		o.MaxBackups = maxBackups
		o.MaxAgeDays = maxAgeDays
		o.Compress = compress
	}
}

func New(opts ...Option) *Logger {
	o := Options{Level: "info"}
	for _, opt := range opts {
		opt(&o)
	}

	level := ParseLevel(o.Level)
	encoder := zapcore.NewJSONEncoder(encoderConfig())
	enabler := zap.LevelEnablerFunc(func(l zapcore.Level) bool { return l >= level })

	cores := []zapcore.Core{
		zapcore.NewCore(encoder, zapcore.AddSync(os.Stdout), enabler),
	}

	if o.FilePath != "" {
		if dir := filepath.Dir(o.FilePath); dir != "." {
			_ = os.MkdirAll(dir, 0o755)
		}
		lj := &lumberjack.Logger{
			Filename:   o.FilePath,
			MaxSize:    nz(o.MaxSizeMB, 100), // megabytes
			MaxBackups: nz(o.MaxBackups, 3),
			MaxAge:     nz(o.MaxAgeDays, 7), // days
			Compress:   o.Compress,
		}
		cores = append(cores, zapcore.NewCore(zapcore.NewJSONEncoder(encoderConfig()), zapcore.AddSync(lj), enabler))
	}

	zapOpts := []zap.Option{zap.AddCaller(), zap.AddCallerSkip(1)}
	if level == zapcore.DebugLevel {
		zapOpts = append(zapOpts, zap.Development())
	}

	base := zap.New(zapcore.NewTee(cores...), zapOpts...)
	return &Logger{base: base, sugar: base.Sugar()}
}

// NewFromZap wraps an existing zap logger, e.g. zaptest or zap.NewNop in tests.
func NewFromZap(base *zap.Logger) *Logger {
	return &Logger{base: base, sugar: base.WithOptions(zap.AddCallerSkip(1)).Sugar()}
}

func (l *Logger) Debug(format string, args ...interface{}) {
	l.sugar.Debugf(format, args...)
}

func (l *Logger) Info(format string, args ...interface{}) {
	l.sugar.Infof(format, args...)
}

func (l *Logger) Warn(format string, args ...interface{}) {
	l.sugar.Warnf(format, args...)
}

func (l *Logger) Error(format string, args ...interface{}) {
	l.sugar.Errorf(format, args...)
}

// Printf lets gorm's logger write through zap.
func (l *Logger) Printf(format string, args ...interface{}) {
	l.sugar.Infof(strings.TrimSpace(format), args...)
}

// Zap exposes the structured logger for request logging.
func (l *Logger) Zap() *zap.Logger {
	return l.base
}

func (l *Logger) Sync() error {
	return l.base.Sync()
}

func ParseLevel(s string) zapcore.Level {
	switch strings.ToLower(s) {
	case "debug":
		return zapcore.DebugLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

func encoderConfig() zapcore.EncoderConfig {
	return zapcore.EncoderConfig{
		TimeKey:        "ts",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     timeEncoder,
		EncodeDuration: zapcore.MillisDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}
}

func timeEncoder(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(t.Format("2006-01-02 15:04:05.000"))
}

func nz(v, def int) int {
	if v == 0 {
		return def
	}
	return v
}
