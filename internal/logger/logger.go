package logger

import (
	"io"
	"os"

	"github.com/phuslu/log"
)

// VerboseChecker interface for checking verbose state
type VerboseChecker interface {
	IsVerbose() bool
}

// Logger provides component-scoped diagnostics for the CLI surface.
// Debug and Info are gated on the verbose flag; Warn and Error always
// emit. The analysis core stays log-free.
type Logger struct {
	component      string
	verboseChecker VerboseChecker
	inner          log.Logger
}

// New creates a new logger instance
func New(component string, verboseChecker VerboseChecker) *Logger {
	return &Logger{
		component:      component,
		verboseChecker: verboseChecker,
		inner:          newInner(os.Stderr),
	}
}

// NewWithCallback creates a new logger instance with a callback function
func NewWithCallback(component string, verboseCheck func() bool) *Logger {
	return &Logger{
		component:      component,
		verboseChecker: &callbackChecker{callback: verboseCheck},
		inner:          newInner(os.Stderr),
	}
}

// WithComponent creates a logger with a specific component name
func (l *Logger) WithComponent(component string) *Logger {
	return &Logger{
		component:      component,
		verboseChecker: l.verboseChecker,
		inner:          l.inner,
	}
}

// SetWriter redirects log output, primarily for tests.
func (l *Logger) SetWriter(w io.Writer) {
	l.inner = newInner(w)
}

func newInner(w io.Writer) log.Logger {
	return log.Logger{
		Level:      log.DebugLevel,
		TimeFormat: "15:04:05",
		Writer: &log.ConsoleWriter{
			Writer: w,
		},
	}
}

// callbackChecker implements VerboseChecker with a callback function
type callbackChecker struct {
	callback func() bool
}

func (c *callbackChecker) IsVerbose() bool {
	if c.callback == nil {
		return false
	}
	return c.callback()
}

func (l *Logger) verbose() bool {
	return l.verboseChecker != nil && l.verboseChecker.IsVerbose()
}

// Debug logs debug messages (only when verbose=true)
func (l *Logger) Debug(msg string, args ...interface{}) {
	if l.verbose() {
		l.inner.Debug().Str("component", l.component).Msgf(msg, args...)
	}
}

// Info logs informational messages (only when verbose=true)
func (l *Logger) Info(msg string, args ...interface{}) {
	if l.verbose() {
		l.inner.Info().Str("component", l.component).Msgf(msg, args...)
	}
}

// Warn logs warning messages (always shown)
func (l *Logger) Warn(msg string, args ...interface{}) {
	l.inner.Warn().Str("component", l.component).Msgf(msg, args...)
}

// Error logs error messages (always shown)
func (l *Logger) Error(msg string, args ...interface{}) {
	l.inner.Error().Str("component", l.component).Msgf(msg, args...)
}
