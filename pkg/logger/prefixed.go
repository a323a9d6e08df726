package logger

import "fmt"

// PrefixedLogger tags every line with the source mode it belongs to.
type PrefixedLogger struct {
	inner  Logger
	prefix string
}

func NewPrefixedLogger(inner Logger, prefix string) *PrefixedLogger {
	return &PrefixedLogger{inner: inner, prefix: prefix}
}

func (p *PrefixedLogger) SetLogLevel(levelStr string) { p.inner.SetLogLevel(levelStr) }
func (p *PrefixedLogger) GetLogLevel() string         { return p.inner.GetLogLevel() }

func (p *PrefixedLogger) Trace(msg string, args ...any) {
	p.inner.Trace(fmt.Sprintf("[%s] %s", p.prefix, msg), args...)
}

func (p *PrefixedLogger) Debug(msg string, args ...any) {
	p.inner.Debug(fmt.Sprintf("[%s] %s", p.prefix, msg), args...)
}

func (p *PrefixedLogger) Info(msg string, args ...any) {
	p.inner.Info(fmt.Sprintf("[%s] %s", p.prefix, msg), args...)
}

func (p *PrefixedLogger) Warn(msg string, args ...any) {
	p.inner.Warn(fmt.Sprintf("[%s] %s", p.prefix, msg), args...)
}

func (p *PrefixedLogger) Error(msg string, err error, args ...any) {
	p.inner.Error(fmt.Sprintf("[%s] %s", p.prefix, msg), err, args...)
}

func (p *PrefixedLogger) Fatal(msg string, err error, args ...any) {
	p.inner.Fatal(fmt.Sprintf("[%s] %s", p.prefix, msg), err, args...)
}
