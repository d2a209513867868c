package models

import (
	"fmt"
	"time"
)

// OptionKind identifies the behavior bound to a menu option
type OptionKind int

const (
	OptionExit  OptionKind = iota // Leave the session
	OptionGreet                   // Print the greeting and stay in the menu
	OptionFile                    // Print a file after confirmation
)

// String returns the lowercase name of the option kind
func (k OptionKind) String() string {
	switch k {
	case OptionExit:
		return "exit"
	case OptionGreet:
		return "greet"
	case OptionFile:
		return "file"
	default:
		return fmt.Sprintf("OptionKind(%d)", int(k))
	}
}

// MenuOption is one selectable, numbered entry of the interactive menu.
// Index is 1-based and only valid for the render cycle that produced it.
type MenuOption struct {
	Index    int        // Position shown to the user, 1..N
	Label    string     // Display text
	Kind     OptionKind // Behavior dispatched on selection
	FileName string     // Base name of the file, set for OptionFile only
}

// LoopState is the state of the interactive session loop
type LoopState int

const (
	Running LoopState = iota
	Finished
)

func (s LoopState) String() string {
	switch s {
	case Running:
		return "running"
	case Finished:
		return "finished"
	default:
		return fmt.Sprintf("LoopState(%d)", int(s))
	}
}

// LogTimeFormat is the timestamp layout used in action log lines
const LogTimeFormat = "2006-01-02 15:04:05"

// LogEntry records the outcome of one dispatched action
type LogEntry struct {
	Timestamp time.Time
	Success   bool
	Action    string
}

// NewLogEntry stamps an entry with the current time
func NewLogEntry(success bool, action string) LogEntry {
	return LogEntry{
		Timestamp: time.Now(),
		Success:   success,
		Action:    action,
	}
}

// Format renders the entry as "<timestamp> | <success> | <action>"
func (e LogEntry) Format() string {
	return fmt.Sprintf("%s | %t | %s", e.Timestamp.Format(LogTimeFormat), e.Success, e.Action)
}
