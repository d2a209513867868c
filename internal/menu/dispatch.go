package menu

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/harrison/filemenu/internal/display"
	"github.com/harrison/filemenu/internal/models"
)

// Greeting is printed by the "say hello" action
const Greeting = "Hello! Pick a file to read its content."

// Logger is the diagnostic trace used by the menu
type Logger interface {
	LogDebug(message string)
	LogInfo(message string)
	LogWarn(message string)
}

// ActionRecorder receives one entry per dispatched action
type ActionRecorder interface {
	Record(entry models.LogEntry)
}

// Dispatcher executes the behavior bound to a selected option
type Dispatcher struct {
	dir     string
	in      Reader
	out     io.Writer
	warn    io.Writer
	actions ActionRecorder
	log     Logger
}

// NewDispatcher creates a Dispatcher resolving file options against dir
func NewDispatcher(dir string, in Reader, out, warn io.Writer, actions ActionRecorder, log Logger) *Dispatcher {
	return &Dispatcher{
		dir:     dir,
		in:      in,
		out:     out,
		warn:    warn,
		actions: actions,
		log:     log,
	}
}

// Dispatch runs opt and returns the next loop state.
// The only error is a failure to read the confirmation answer.
func (d *Dispatcher) Dispatch(opt models.MenuOption) (models.LoopState, error) {
	switch opt.Kind {
	case models.OptionExit:
		d.actions.Record(models.NewLogEntry(true, ExitLabel))
		return models.Finished, nil

	case models.OptionGreet:
		color.New(color.FgGreen).Fprintln(d.out, Greeting)
		d.actions.Record(models.NewLogEntry(true, GreetLabel))
		return models.Running, nil

	case models.OptionFile:
		return d.printFile(filepath.Join(d.dir, opt.FileName))

	default:
		d.log.LogWarn(fmt.Sprintf("ignoring option %d with unknown kind %s", opt.Index, opt.Kind))
		return models.Running, nil
	}
}

// printFile asks for confirmation, then prints path. A confirmed print is
// terminal even when the file can no longer be read.
func (d *Dispatcher) printFile(path string) (models.LoopState, error) {
	yes, err := d.confirm(path)
	if err != nil {
		return models.Running, err
	}
	if !yes {
		d.log.LogDebug(fmt.Sprintf("print of %s declined", path))
		return models.Running, nil
	}

	err = display.PrintNumbered(d.out, path)
	if err != nil {
		display.WarnUnreadableFile(path, err).Display(d.warn)
	}

	d.actions.Record(models.NewLogEntry(err == nil, "print file "+path))
	return models.Finished, nil
}

// confirm prompts until the answer is yes or no
func (d *Dispatcher) confirm(path string) (bool, error) {
	prompt := color.New(color.FgCyan)
	for {
		prompt.Fprintf(d.out, "print file %s? [y/n] ", path)

		answer, err := readLine(d.in)
		if err != nil {
			return false, err
		}

		if yes, ok := ParseAnswer(answer); ok {
			return yes, nil
		}
		d.log.LogDebug(fmt.Sprintf("unrecognized confirmation answer %q", answer))
	}
}
