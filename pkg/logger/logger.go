package logger

import (
	"context"
	"io"
	"os"
	"sync"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// OutputType defines where log entries are written
type OutputType string

const (
	// OutputConsole writes logs to stderr so command output on stdout stays clean
	OutputConsole OutputType = "console"
	// OutputOTEL exports logs to an OpenTelemetry collector
	OutputOTEL OutputType = "otel"
	// OutputNone discards all logs
	OutputNone OutputType = "none"
)

// Config holds the logger configuration
type Config struct {
	// Level is the minimum log level (debug, info, warn, error)
	Level string

	// Output defines where logs should be written (console, otel, none)
	Output OutputType

	// Format defines the log format for console output (json, console)
	Format string

	// Development enables development mode (colored levels, stacktraces on warn)
	Development bool

	// AddCaller adds caller information to log entries
	AddCaller bool

	// CallerSkip is the number of stack frames to skip when recording caller info
	CallerSkip int
}

// DefaultConfig returns a default logger configuration
func DefaultConfig() *Config {
	return &Config{
		Level:       "warn",
		Output:      OutputConsole,
		Format:      "console",
		Development: false,
		AddCaller:   false,
		CallerSkip:  1,
	}
}

// Logger wraps zap.Logger with trace correlation and owned closers
type Logger struct {
	*zap.Logger
	sugar   *zap.SugaredLogger
	config  *Config
	core    zapcore.Core
	closers []io.Closer
	mu      sync.Mutex
}

var (
	globalLogger *Logger
	globalMu     sync.RWMutex
)

// New creates a new Logger instance based on the provided configuration.
// OutputOTEL needs a core from the otel package; use NewWithCore for it.
func New(cfg *Config) (*Logger, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	level, err := parseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}

	var core zapcore.Core
	switch cfg.Output {
	case OutputNone:
		core = zapcore.NewNopCore()
	default:
		core = createConsoleCore(cfg, level, createEncoderConfig(cfg.Development))
	}

	return NewWithCore(cfg, core), nil
}

// NewWithCore creates a new Logger with a custom zapcore.Core
// This is used for OTEL integration
func NewWithCore(cfg *Config, core zapcore.Core, closers ...io.Closer) *Logger {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	zapLogger := zap.New(core, buildZapOptions(cfg)...)
	return &Logger{
		Logger:  zapLogger,
		sugar:   zapLogger.Sugar(),
		config:  cfg,
		core:    core,
		closers: closers,
	}
}

// Nop returns a logger that discards everything.
func Nop() *Logger {
	return NewWithCore(&Config{Output: OutputNone}, zapcore.NewNopCore())
}

// Init initializes the global logger with the provided configuration
func Init(cfg *Config) error {
	logger, err := New(cfg)
	if err != nil {
		return err
	}

	SetGlobal(logger)
	return nil
}

// SetGlobal sets the global logger instance
func SetGlobal(logger *Logger) {
	globalMu.Lock()
	defer globalMu.Unlock()
	globalLogger = logger
}

// Get returns the global logger instance
func Get() *Logger {
	globalMu.RLock()
	if globalLogger != nil {
		defer globalMu.RUnlock()
		return globalLogger
	}
	globalMu.RUnlock()

	globalMu.Lock()
	defer globalMu.Unlock()

	if globalLogger == nil {
		logger, err := New(DefaultConfig())
		if err != nil {
			logger = Nop()
		}
		globalLogger = logger
	}

	return globalLogger
}

// Sugar returns the sugared logger
func (l *Logger) Sugar() *zap.SugaredLogger {
	return l.sugar
}

// Core returns the underlying zapcore.Core
func (l *Logger) Core() zapcore.Core {
	return l.core
}

// WithContext returns a logger carrying the trace and span ids of ctx
func (l *Logger) WithContext(ctx context.Context) *Logger {
	if ctx == nil {
		return l
	}

	sc := trace.SpanFromContext(ctx).SpanContext()
	if !sc.IsValid() {
		return l
	}

	return l.WithFields(
		zap.String("trace_id", sc.TraceID().String()),
		zap.String("span_id", sc.SpanID().String()),
	)
}

// WithFields returns a logger with additional fields
func (l *Logger) WithFields(fields ...zap.Field) *Logger {
	newLogger := l.With(fields...)
	return &Logger{
		Logger:  newLogger,
		sugar:   newLogger.Sugar(),
		config:  l.config,
		core:    l.core,
		closers: l.closers,
	}
}

// WithError returns a logger with an error field
func (l *Logger) WithError(err error) *Logger {
	return l.WithFields(zap.Error(err))
}

// Close flushes buffered entries and closes any exporters owned by the logger
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	_ = l.Logger.Sync()

	var lastErr error
	for _, closer := range l.closers {
		if err := closer.Close(); err != nil {
			lastErr = err
		}
	}
	l.closers = nil

	return lastErr
}

// parseLevel converts a string level to zapcore.Level
func parseLevel(level string) (zapcore.Level, error) {
	var l zapcore.Level
	if level == "" {
		return zapcore.WarnLevel, nil
	}
	err := l.UnmarshalText([]byte(level))
	return l, err
}

// ParseLevel exposes level parsing for configuration validation
func ParseLevel(level string) (zapcore.Level, error) {
	return parseLevel(level)
}

func createEncoderConfig(development bool) zapcore.EncoderConfig {
	if development {
		config := zap.NewDevelopmentEncoderConfig()
		config.EncodeLevel = zapcore.CapitalColorLevelEncoder
		config.EncodeTime = zapcore.ISO8601TimeEncoder
		return config
	}

	config := zap.NewProductionEncoderConfig()
	config.EncodeTime = zapcore.ISO8601TimeEncoder
	config.TimeKey = "timestamp"
	config.MessageKey = "message"
	config.LevelKey = "level"
	config.CallerKey = "caller"
	config.StacktraceKey = "stacktrace"
	return config
}

func createConsoleCore(cfg *Config, level zapcore.Level, encoderConfig zapcore.EncoderConfig) zapcore.Core {
	var encoder zapcore.Encoder
	if cfg.Format == "console" || cfg.Development {
		encoder = zapcore.NewConsoleEncoder(encoderConfig)
	} else {
		encoder = zapcore.NewJSONEncoder(encoderConfig)
	}

	return zapcore.NewCore(encoder, zapcore.Lock(os.Stderr), level)
}

func buildZapOptions(cfg *Config) []zap.Option {
	var opts []zap.Option

	if cfg.AddCaller {
		opts = append(opts, zap.AddCaller())
		if cfg.CallerSkip > 0 {
			opts = append(opts, zap.AddCallerSkip(cfg.CallerSkip))
		}
	}

	if cfg.Development {
		opts = append(opts, zap.Development(), zap.AddStacktrace(zapcore.WarnLevel))
	} else {
		opts = append(opts, zap.AddStacktrace(zapcore.ErrorLevel))
	}

	return opts
}

// Global helper functions

// Debug logs a debug message using the global logger
func Debug(msg string, fields ...zap.Field) {
	Get().Debug(msg, fields...)
}

// Info logs an info message using the global logger
func Info(msg string, fields ...zap.Field) {
	Get().Info(msg, fields...)
}

// Warn logs a warning message using the global logger
func Warn(msg string, fields ...zap.Field) {
	Get().Warn(msg, fields...)
}

// WithContext returns a logger with trace context using the global logger
func WithContext(ctx context.Context) *Logger {
	return Get().WithContext(ctx)
}
