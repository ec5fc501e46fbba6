package multiterm

import (
	"fmt"
	"io"
	"os"
	"sync"

	"golang.org/x/term"
)

// LogLevel represents the severity of a log message (higher value = higher severity)
type LogLevel int

const (
	LevelInfo  LogLevel = iota // Progress messages, written to the info writer
	LevelWarn                  // Recoverable problems, written to the error writer
	LevelError                 // Failures, written to the error writer
)

func (l LogLevel) String() string {
	switch l {
	case LevelInfo:
		return "info"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	default:
		return fmt.Sprintf("level(%d)", int(l))
	}
}

// ANSI color codes for terminal output
const (
	colorYellow = "\x1b[93m"
	colorReset  = "\x1b[0m"
)

// Logger writes console lines: info to stdout, warnings and errors to stderr.
type Logger struct {
	mu           sync.Mutex
	out          io.Writer
	errOut       io.Writer
	colorEnabled bool
}

// NewLogger creates a logger on the process's stdout and stderr. Error
// lines are highlighted when stderr is a terminal.
func NewLogger() *Logger {
	return &Logger{
		out:          os.Stdout,
		errOut:       os.Stderr,
		colorEnabled: term.IsTerminal(int(os.Stderr.Fd())),
	}
}

// NewLoggerTo creates a logger writing to the given writers without color.
func NewLoggerTo(out, errOut io.Writer) *Logger {
	return &Logger{out: out, errOut: errOut}
}

// Log writes one line at the given level.
func (l *Logger) Log(level LogLevel, format string, args ...interface{}) {
	if l == nil {
		return
	}
	msg := fmt.Sprintf(format, args...)

	l.mu.Lock()
	defer l.mu.Unlock()

	if level == LevelInfo {
		_, _ = fmt.Fprintln(l.out, msg)
		return
	}
	if l.colorEnabled {
		_, _ = fmt.Fprintf(l.errOut, "%s%s%s\n", colorYellow, msg, colorReset)
	} else {
		_, _ = fmt.Fprintln(l.errOut, msg)
	}
}

// Info logs an informational line
func (l *Logger) Info(format string, args ...interface{}) {
	l.Log(LevelInfo, format, args...)
}

// Warn logs a warning line
func (l *Logger) Warn(format string, args ...interface{}) {
	l.Log(LevelWarn, format, args...)
}

// Error logs an error line
func (l *Logger) Error(format string, args ...interface{}) {
	l.Log(LevelError, format, args...)
}
