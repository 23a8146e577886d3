// Package logger provides a global, Sugared Zap logger with optional
// OpenTelemetry integration. Entries are JSON encoded and, when a telemetry
// LoggerProvider is registered, also forwarded through the otelzap bridge.
//
// Every logging function takes a context. When the context carries a valid
// span, its trace and span IDs are attached to the entry so logs can be
// correlated with the traces emitted by the poller.
package logger

import (
	"context"
	"io"
	"os"
	"sync"

	"github.com/gabapcia/txalert/internal/pkg/telemetry"

	"go.opentelemetry.io/contrib/bridges/otelzap"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const defaultName = "txalert"

var (
	logger   *zap.SugaredLogger
	initOnce sync.Once

	// nop serves log calls made before Init.
	nop = zap.NewNop().Sugar()
)

type config struct {
	level  string
	name   string
	output io.Writer
}

// Option configures the logger before initialization.
type Option func(*config)

// WithLevel sets the minimum level: "debug", "info", "warn" or "error".
func WithLevel(l string) Option {
	return func(c *config) {
		c.level = l
	}
}

// WithOutput replaces stdout as the destination of the JSON entries.
func WithOutput(w io.Writer) Option {
	return func(c *config) {
		c.output = w
	}
}

// WithName sets the logger name, which is also the instrumentation scope of
// the OpenTelemetry bridge.
func WithName(name string) Option {
	return func(c *config) {
		c.name = name
	}
}

// Init configures the global logger. Only the first successful call has an
// effect. It fails when the level cannot be parsed.
func Init(opts ...Option) error {
	cfg := config{
		level:  "info",
		name:   defaultName,
		output: os.Stdout,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	level, err := zapcore.ParseLevel(cfg.level)
	if err != nil {
		return err
	}

	initOnce.Do(func() {
		encoderCfg := zap.NewProductionEncoderConfig()
		encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

		cores := []zapcore.Core{
			zapcore.NewCore(zapcore.NewJSONEncoder(encoderCfg), zapcore.AddSync(cfg.output), level),
		}

		if lp := telemetry.LoggerProvider(); lp != nil {
			cores = append(cores, otelzap.NewCore(cfg.name, otelzap.WithLoggerProvider(lp)))
		}

		logger = zap.New(zapcore.NewTee(cores...)).Named(cfg.name).Sugar()
	})

	return nil
}

// Sync flushes buffered entries. Call it on shutdown.
func Sync() error {
	return from(context.Background()).Sync()
}

func from(ctx context.Context) *zap.SugaredLogger {
	l := logger
	if l == nil {
		return nop
	}

	sc := trace.SpanContextFromContext(ctx)
	if !sc.IsValid() {
		return l
	}

	return l.With(
		"trace_id", sc.TraceID().String(),
		"span_id", sc.SpanID().String(),
	)
}

// Debug logs a debug-level message with optional key/value context.
func Debug(ctx context.Context, msg string, keysAndValues ...any) {
	from(ctx).Debugw(msg, keysAndValues...)
}

// Info logs an info-level message with optional key/value context.
func Info(ctx context.Context, msg string, keysAndValues ...any) {
	from(ctx).Infow(msg, keysAndValues...)
}

// Warn logs a warn-level message with optional key/value context.
func Warn(ctx context.Context, msg string, keysAndValues ...any) {
	from(ctx).Warnw(msg, keysAndValues...)
}

// Error logs an error-level message with optional key/value context.
func Error(ctx context.Context, msg string, keysAndValues ...any) {
	from(ctx).Errorw(msg, keysAndValues...)
}
