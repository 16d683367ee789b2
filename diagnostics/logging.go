// Package diagnostics carries the non-fatal notices construction emits:
// per-element partial cover and the end-of-run global partial cover
// warning. Fatal conditions are never routed through here, they are
// returned as errors by the core.
package diagnostics

import "log"

// Logger receives non-fatal diagnostics during map construction. The
// zero value of StdLogger is ready to use.
type Logger interface {
	Noticef(format string, args ...interface{})
	Warnf(format string, args ...interface{})
}

// StdLogger logs through the standard library logger. The command-line
// entry points print their own messages with fmt, not through this logger.
type StdLogger struct{}

func (StdLogger) Noticef(format string, args ...interface{}) {
	log.Printf("notice: "+format, args...)
}

func (StdLogger) Warnf(format string, args ...interface{}) {
	log.Printf("warning: "+format, args...)
}

// NopLogger discards every diagnostic, useful for tests that only care
// about the returned operator.
type NopLogger struct{}

func (NopLogger) Noticef(format string, args ...interface{}) {}
func (NopLogger) Warnf(format string, args ...interface{})   {}
