package ring

import (
	"io"

	"github.com/wangTheTiger/new-ring/internal/logger"
)

type Logger interface {
	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
}

// DiscardLogger is a nop Logger.
var DiscardLogger = logger.Discard

// WriterLogger returns a Logger writing one line per message to w, prefixed
// with its severity. It is safe for concurrent use.
func WriterLogger(w io.Writer) Logger {
	return logger.WriterLogger(w)
}

var _ Logger = (logger.Logger)(nil)
var _ logger.Logger = (Logger)(nil)
