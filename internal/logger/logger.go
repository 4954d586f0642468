package logger

import (
	"fmt"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Logger interface {
	Debugw(msg string, keysAndValues ...interface{})
	Infow(msg string, keysAndValues ...interface{})
	Warnw(msg string, keysAndValues ...interface{})
	Errorw(msg string, keysAndValues ...interface{})
}

const (
	FormatJSON    = "json"
	FormatConsole = "console"
)

// Options configures a zap backed Logger. Empty fields fall back to info level and json output.
type Options struct {
	Level  string
	Format string
	Name   string
}

func ParseLevel(level string) zapcore.Level {
	switch level {
	case "debug":
		return zapcore.DebugLevel
	case "warn":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

func New(opts Options) (Logger, error) {
	config := zap.NewProductionConfig()
	if opts.Format == FormatConsole {
		config = zap.NewDevelopmentConfig()
	} else if opts.Format != "" && opts.Format != FormatJSON {
		return nil, fmt.Errorf("unknown log format %q", opts.Format)
	}

	config.Level = zap.NewAtomicLevelAt(ParseLevel(opts.Level))
	config.EncoderConfig.TimeKey = "ts"
	config.EncoderConfig.EncodeTime = zapcore.RFC3339TimeEncoder
	config.EncoderConfig.EncodeDuration = zapcore.SecondsDurationEncoder
	config.EncoderConfig.EncodeCaller = zapcore.ShortCallerEncoder
	config.EncoderConfig.FunctionKey = zapcore.OmitKey
	config.OutputPaths = []string{"stderr"}

	logger, err := config.Build(
		zap.AddCaller(),
		zap.AddStacktrace(zapcore.ErrorLevel),
	)
	if err != nil {
		return nil, fmt.Errorf("building logger: %w", err)
	}

	if opts.Name != "" {
		logger = logger.Named(opts.Name)
	}
	return logger.Sugar(), nil
}

func Nop() Logger {
	return zap.NewNop().Sugar()
}

var (
	mu            sync.RWMutex
	defaultLogger Logger
)

// SetDefault replaces the logger used by the package level helpers.
func SetDefault(l Logger) {
	mu.Lock()
	defer mu.Unlock()
	defaultLogger = l
}

func Default() Logger {
	mu.RLock()
	l := defaultLogger
	mu.RUnlock()
	if l != nil {
		return l
	}

	mu.Lock()
	defer mu.Unlock()
	if defaultLogger == nil {
		built, err := New(Options{})
		if err != nil {
			built = Nop()
		}
		defaultLogger = built
	}
	return defaultLogger
}

func Debug(msg string, keysAndValues ...interface{}) {
	Default().Debugw(msg, keysAndValues...)
}

func Info(msg string, keysAndValues ...interface{}) {
	Default().Infow(msg, keysAndValues...)
}

func Warn(msg string, keysAndValues ...interface{}) {
	Default().Warnw(msg, keysAndValues...)
}

func Error(msg string, keysAndValues ...interface{}) {
	Default().Errorw(msg, keysAndValues...)
}
