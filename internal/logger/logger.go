package logger

import (
	"bytes"
	"fmt"
	"io"
	"sync"
)

type Logger interface {
	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
}

var Discard Logger = nopLogger{}

type nopLogger struct{}

func (nopLogger) Debugf(format string, args ...interface{}) {}
func (nopLogger) Infof(format string, args ...interface{})  {}
func (nopLogger) Warnf(format string, args ...interface{})  {}
func (nopLogger) Errorf(format string, args ...interface{}) {}

type writerLogger struct {
	mu sync.Mutex
	w  io.Writer
}

// Each record is written with one Write call. Concurrent queries may
// share a logger, so records are serialized.
func (l *writerLogger) printf(severity, format string, args ...interface{}) {
	var buf bytes.Buffer
	buf.WriteString(severity)
	buf.WriteByte(' ')
	fmt.Fprintf(&buf, format, args...)
	if b := buf.Bytes(); b[len(b)-1] != '\n' {
		buf.WriteByte('\n')
	}
	l.mu.Lock()
	l.w.Write(buf.Bytes())
	l.mu.Unlock()
}

func (l *writerLogger) Debugf(format string, args ...interface{}) {
	l.printf("DEBUG", format, args...)
}

func (l *writerLogger) Warnf(format string, args ...interface{}) {
	l.printf("WARN", format, args...)
}

func (l *writerLogger) Infof(format string, args ...interface{}) {
	l.printf("INFO", format, args...)
}

func (l *writerLogger) Errorf(format string, args ...interface{}) {
	l.printf("ERROR", format, args...)
}

func WriterLogger(w io.Writer) Logger {
	return &writerLogger{w: w}
}
