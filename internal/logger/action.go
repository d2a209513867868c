package logger

import (
	"fmt"
	"path/filepath"

	"github.com/harrison/filemenu/internal/filelock"
	"github.com/harrison/filemenu/internal/models"
)

// ActionLogFile is the file name of the action log inside the log directory
const ActionLogFile = "filemenu.log"

// debugTracer receives the trace of swallowed write failures
type debugTracer interface {
	LogDebug(message string)
}

// ActionLogger appends one line per dispatched action to
// <logDir>/filemenu.log. Writing is best-effort: failures never reach
// the caller, they are traced at debug level.
type ActionLogger struct {
	path  string
	trace debugTracer
}

// NewActionLogger creates an ActionLogger writing under logDir.
// Nothing touches the disk until the first Record.
func NewActionLogger(logDir string, trace debugTracer) *ActionLogger {
	if trace == nil {
		trace = NewNoOpLogger()
	}
	return &ActionLogger{
		path:  filepath.Join(logDir, ActionLogFile),
		trace: trace,
	}
}

// Path returns the log file location
func (al *ActionLogger) Path() string {
	return al.path
}

// Record appends entry as "<timestamp> | <success> | <action>"
func (al *ActionLogger) Record(entry models.LogEntry) {
	line := entry.Format() + "\n"
	if err := filelock.LockAndAppend(al.path, []byte(line)); err != nil {
		al.trace.LogDebug(fmt.Sprintf("action log write skipped: %v", err))
	}
}
