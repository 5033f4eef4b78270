// Package log provides the timestamped debug logger for OnionShare-NG.
// Logging is off by default for zero overhead; enable it with SetVerbose
// (wired to the CLI's --verbose flag). Each call emits one line to the
// output stream:
//
//	[Jun 06 2013 11:05:00] Web.(*Server).Start: listening on 127.0.0.1:17600
//
// The line format is a stable contract for log-scraping tooling: no levels,
// no rotation, no structured fields.
package log

import (
	"fmt"
	"io"
	"os"
	"reflect"
	"runtime"
	"strings"
	"sync"
	"time"
)

// Logger writes timestamped lines identifying a module and a function,
// with an optional free-text message. The output sink and clock are
// injectable so tests can capture lines and fix the timestamp.
type Logger struct {
	mu      sync.Mutex
	out     io.Writer
	verbose bool
	now     func() time.Time
}

// New creates a logger writing to out, with output disabled.
func New(out io.Writer) *Logger {
	return &Logger{out: out, now: time.Now}
}

// SetVerbose enables or disables output. While disabled, Log is a no-op.
func (l *Logger) SetVerbose(v bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.verbose = v
}

// Verbose reports whether output is enabled.
func (l *Logger) Verbose() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.verbose
}

// SetClock replaces the wall clock used for timestamps.
// Tests use this to produce deterministic lines.
func (l *Logger) SetClock(now func() time.Time) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.now = now
}

// Log writes one line naming the emitting module and function, followed by
// ": msg" when a message is supplied. The whole line is written with a
// single Write under the logger's mutex, so concurrent calls never
// interleave partial lines.
func (l *Logger) Log(module string, fn any, msg ...string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.verbose {
		return
	}

	line := fmt.Sprintf("[%s] %s.%s",
		l.now().Format("Jan 02 2006 15:04:05"), module, FuncName(fn))
	if len(msg) > 0 {
		line += ": " + strings.Join(msg, " ")
	}
	fmt.Fprintln(l.out, line)
}

// FuncName resolves a function value to its symbol name with the package
// import path stripped, keeping method receivers: "(*Server).Start".
// Strings pass through unchanged; other non-function values render with %v.
func FuncName(fn any) string {
	if s, ok := fn.(string); ok {
		return s
	}
	v := reflect.ValueOf(fn)
	if v.Kind() != reflect.Func {
		return fmt.Sprint(fn)
	}
	f := runtime.FuncForPC(v.Pointer())
	if f == nil {
		return fmt.Sprintf("func(0x%x)", v.Pointer())
	}
	name := f.Name()
	if i := strings.LastIndex(name, "/"); i >= 0 {
		name = name[i+1:]
	}
	if i := strings.Index(name, "."); i >= 0 {
		name = name[i+1:]
	}
	return name
}

// Package-level logger writing to stdout (silent until SetVerbose).
var (
	defaultLogger = New(os.Stdout)
	loggerMu      sync.RWMutex
)

// SetLogger replaces the package-level logger.
// Call with nil to restore the default stdout logger.
func SetLogger(l *Logger) {
	loggerMu.Lock()
	defer loggerMu.Unlock()
	if l == nil {
		defaultLogger = New(os.Stdout)
	} else {
		defaultLogger = l
	}
}

// GetLogger returns the current package-level logger.
func GetLogger() *Logger {
	loggerMu.RLock()
	defer loggerMu.RUnlock()
	return defaultLogger
}

// Log writes through the package-level logger.
func Log(module string, fn any, msg ...string) {
	GetLogger().Log(module, fn, msg...)
}

// SetVerbose toggles the package-level logger.
func SetVerbose(v bool) {
	GetLogger().SetVerbose(v)
}
