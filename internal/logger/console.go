// Package logger provides the two logs a browsing session writes.
//
// ConsoleLogger is the leveled diagnostic trace shown on the warning stream.
// ActionLogger is the append-only record of dispatched menu actions.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// Log level constants for filtering
const (
	levelTrace int = 0
	levelDebug int = 1
	levelInfo  int = 2
	levelWarn  int = 3
	levelError int = 4
)

// ValidLevels lists the accepted level names in increasing severity
var ValidLevels = []string{"trace", "debug", "info", "warn", "error"}

// ConsoleLogger writes "[HH:MM:SS] [LEVEL] message" lines to a writer.
// Messages below the configured level are dropped.
// Levels are colored when the writer is a terminal.
type ConsoleLogger struct {
	writer      io.Writer
	logLevel    string
	prefix      string
	mutex       *sync.Mutex
	colorOutput bool
}

// NewConsoleLogger creates a ConsoleLogger on writer.
// A nil writer discards everything. An empty or unknown level means "info".
func NewConsoleLogger(writer io.Writer, logLevel string) *ConsoleLogger {
	return &ConsoleLogger{
		writer:      writer,
		logLevel:    normalizeLogLevel(logLevel),
		mutex:       &sync.Mutex{},
		colorOutput: IsTerminal(writer),
	}
}

// WithPrefix returns a logger sharing this one's writer and level that
// prepends prefix to every message
func (cl *ConsoleLogger) WithPrefix(prefix string) *ConsoleLogger {
	return &ConsoleLogger{
		writer:      cl.writer,
		logLevel:    cl.logLevel,
		prefix:      prefix,
		mutex:       cl.mutex,
		colorOutput: cl.colorOutput,
	}
}

// SetColor forces color output on or off
func (cl *ConsoleLogger) SetColor(enabled bool) {
	cl.colorOutput = enabled
}

// IsTerminal reports whether w is a TTY that should receive color.
// NO_COLOR (via fatih/color) turns it off everywhere.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok || f == nil {
		return false
	}
	if color.NoColor {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// normalizeLogLevel lowercases level and falls back to "info"
func normalizeLogLevel(level string) string {
	normalized := strings.ToLower(strings.TrimSpace(level))
	for _, valid := range ValidLevels {
		if normalized == valid {
			return normalized
		}
	}
	return "info"
}

func (cl *ConsoleLogger) shouldLog(messageLevel string) bool {
	return logLevelToInt(messageLevel) >= logLevelToInt(cl.logLevel)
}

func logLevelToInt(level string) int {
	switch level {
	case "trace":
		return levelTrace
	case "debug":
		return levelDebug
	case "info":
		return levelInfo
	case "warn":
		return levelWarn
	case "error":
		return levelError
	default:
		return levelInfo
	}
}

// LogTrace logs a trace-level message (most verbose).
func (cl *ConsoleLogger) LogTrace(message string) {
	cl.logWithLevel("TRACE", message)
}

// LogDebug logs a debug-level message.
func (cl *ConsoleLogger) LogDebug(message string) {
	cl.logWithLevel("DEBUG", message)
}

// LogInfo logs an info-level message.
func (cl *ConsoleLogger) LogInfo(message string) {
	cl.logWithLevel("INFO", message)
}

// LogWarn logs a warning-level message.
func (cl *ConsoleLogger) LogWarn(message string) {
	cl.logWithLevel("WARN", message)
}

// LogError logs an error-level message.
func (cl *ConsoleLogger) LogError(message string) {
	cl.logWithLevel("ERROR", message)
}

func (cl *ConsoleLogger) logWithLevel(level string, message string) {
	if cl.writer == nil {
		return
	}
	if !cl.shouldLog(strings.ToLower(level)) {
		return
	}

	if cl.prefix != "" {
		message = cl.prefix + " " + message
	}

	cl.mutex.Lock()
	defer cl.mutex.Unlock()

	ts := timestamp()
	var formatted string
	if cl.colorOutput {
		formatted = fmt.Sprintf("[%s] [%s] %s\n", ts, colorLevel(level), message)
	} else {
		formatted = fmt.Sprintf("[%s] [%s] %s\n", ts, level, message)
	}

	cl.writer.Write([]byte(formatted))
}

func colorLevel(level string) string {
	var c *color.Color
	switch level {
	case "TRACE":
		c = color.New(color.FgHiBlack)
	case "DEBUG":
		c = color.New(color.FgCyan)
	case "INFO":
		c = color.New(color.FgBlue)
	case "WARN":
		c = color.New(color.FgYellow)
	case "ERROR":
		c = color.New(color.FgRed)
	default:
		return level
	}
	// the writer was already checked for a TTY
	c.EnableColor()
	return c.Sprint(level)
}

func timestamp() string {
	return time.Now().Format("15:04:05")
}

// NoOpLogger discards all messages. Useful in tests.
type NoOpLogger struct{}

// NewNoOpLogger creates a NoOpLogger
func NewNoOpLogger() *NoOpLogger {
	return &NoOpLogger{}
}

func (n *NoOpLogger) LogTrace(message string) {}
func (n *NoOpLogger) LogDebug(message string) {}
func (n *NoOpLogger) LogInfo(message string)  {}
func (n *NoOpLogger) LogWarn(message string)  {}
func (n *NoOpLogger) LogError(message string) {}
