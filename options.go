package ring

import (
	"github.com/wangTheTiger/new-ring/internal/logger"
	"github.com/wangTheTiger/new-ring/internal/options"
)

// Options contains options controlling a ring and the queries run on it.
type Options struct {
	// Logger specifys a place that index construction and query progress
	// are written to.
	//
	// The default value is DiscardLogger.
	Logger Logger

	// Trace specifys whether iterators log every navigation primitive they
	// dispatch to Logger at debug level. Tracing is verbose and slow.
	//
	// The default value is false.
	Trace bool

	// Parallelism is the maximum number of queries EvaluateAll runs at the
	// same time.
	//
	// The default value is 4.
	Parallelism int
}

func (opts *Options) getLogger() logger.Logger {
	if opts.Logger == nil {
		return logger.Discard
	}
	return opts.Logger
}

func (opts *Options) getParallelism() int {
	if opts.Parallelism <= 0 {
		return options.DefaultParallelism
	}
	return opts.Parallelism
}

func convertOptions(opts *Options) *options.Options {
	if opts == nil {
		return &options.DefaultOptions
	}
	var iopts options.Options
	iopts.Logger = opts.getLogger()
	iopts.Trace = opts.Trace
	iopts.Parallelism = opts.getParallelism()
	return &iopts
}
