package options

import "github.com/wangTheTiger/new-ring/internal/logger"

const (
	DefaultParallelism = 4
)

type Options struct {
	Logger      logger.Logger
	Trace       bool
	Parallelism int
}

// TraceLogger returns the logger iterators trace dispatch to, or nil if
// tracing is off.
func (opts *Options) TraceLogger() logger.Logger {
	if !opts.Trace {
		return nil
	}
	return opts.Logger
}

var DefaultOptions = Options{
	Logger:      logger.Discard,
	Parallelism: DefaultParallelism,
}
