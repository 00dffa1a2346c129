package tidy

import (
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// DefaultSeriesName labels a single series that carries no name of its own.
const DefaultSeriesName = "value"

// Option configures a Tidy call.
type Option func(*options)

type options struct {
	logger      *zap.Logger
	defaultName string
}

// WithLogger routes fallback warnings to l. A nil logger discards them.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l == nil {
			l = zap.NewNop()
		}
		o.logger = l
	}
}

// WithDefaultName sets the stand-in label for unnamed series.
// It panics if name is empty.
func WithDefaultName(name string) Option {
	if name == "" {
		panic("tidy: WithDefaultName requires a non-empty name")
	}
	return func(o *options) {
		o.defaultName = name
	}
}

func gatherOptions(opts []Option) options {
	o := options{defaultName: DefaultSeriesName}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// warnLogger returns the configured logger, building the default one on
// first use.
func (o options) warnLogger() *zap.Logger {
	if o.logger != nil {
		return o.logger
	}
	return defaultLogger()
}

var (
	defaultLoggerOnce sync.Once
	defaultLoggerInst *zap.Logger
)

// defaultLogger writes warnings to stderr as JSON.
func defaultLogger() *zap.Logger {
	defaultLoggerOnce.Do(func() {
		config := zap.NewProductionConfig()
		config.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
		l, err := config.Build()
		if err != nil {
			l = zap.NewNop()
		}
		defaultLoggerInst = l.Named("tidy")
	})
	return defaultLoggerInst
}
