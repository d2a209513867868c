package menu

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/harrison/filemenu/internal/display"
	"github.com/harrison/filemenu/internal/logger"
	"github.com/harrison/filemenu/internal/models"
)

// User-facing messages
const (
	InvalidChoiceMessage = "please choose a valid number"
	Farewell             = "Goodbye!"
)

// ErrNoFiles is returned by Run when the directory offers nothing to pick
var ErrNoFiles = errors.New("no files found")

// fileCounter is implemented by providers that can tell whether any file
// option exists before the loop starts
type fileCounter interface {
	FileCount() int
}

// SessionConfig wires a Session. Dir, Provider and In are required.
type SessionConfig struct {
	Dir      string
	Provider Provider
	In       Reader
	Out      io.Writer
	Warn     io.Writer
	Actions  ActionRecorder
	Logger   Logger
}

// Session is one interactive run of the menu
type Session struct {
	ID         string
	dir        string
	provider   Provider
	in         Reader
	out        io.Writer
	warn       io.Writer
	dispatcher *Dispatcher
	log        Logger
	state      models.LoopState
}

type discardRecorder struct{}

func (discardRecorder) Record(models.LogEntry) {}

// NewSession creates a Session with a fresh random ID
func NewSession(opts SessionConfig) *Session {
	if opts.Out == nil {
		opts.Out = io.Discard
	}
	if opts.Warn == nil {
		opts.Warn = io.Discard
	}
	if opts.Actions == nil {
		opts.Actions = discardRecorder{}
	}
	if opts.Logger == nil {
		opts.Logger = logger.NewNoOpLogger()
	}

	return &Session{
		ID:         uuid.NewString(),
		dir:        opts.Dir,
		provider:   opts.Provider,
		in:         opts.In,
		out:        opts.Out,
		warn:       opts.Warn,
		dispatcher: NewDispatcher(opts.Dir, opts.In, opts.Out, opts.Warn, opts.Actions, opts.Logger),
		log:        opts.Logger,
		state:      models.Running,
	}
}

// State returns the current loop state
func (s *Session) State() models.LoopState {
	return s.state
}

// Run drives the menu until an action finishes the session or input ends.
// It returns ErrNoFiles without prompting when the provider has no files,
// and a wrapped read error for anything other than end of input.
func (s *Session) Run(ctx context.Context) error {
	s.log.LogDebug(fmt.Sprintf("session %s browsing %s", s.ID, s.dir))

	if counter, ok := s.provider.(fileCounter); ok && counter.FileCount() == 0 {
		display.WarnNoFiles(s.dir).Display(s.warn)
		s.state = models.Finished
		return ErrNoFiles
	}

	for s.state == models.Running {
		if err := ctx.Err(); err != nil {
			return err
		}

		options := s.provider.Options()
		display.RenderMenu(s.out, options)
		color.New(color.FgCyan).Fprintf(s.out, "Select an option (1-%d): ", len(options))

		choice, err := ReadSelection(s.in, len(options))
		if errors.Is(err, ErrInvalidSelection) {
			s.log.LogDebug(err.Error())
			display.Warning{Title: InvalidChoiceMessage}.Display(s.warn)
			continue
		}
		if err != nil {
			return s.finishOnEOF(err)
		}

		selected := options[choice-1]
		s.log.LogDebug(fmt.Sprintf("session %s dispatching [%d] %s", s.ID, selected.Index, selected.Label))

		state, err := s.dispatcher.Dispatch(selected)
		if err != nil {
			return s.finishOnEOF(err)
		}
		s.state = state
	}

	fmt.Fprintln(s.out, Farewell)
	return nil
}

// finishOnEOF ends the session normally when input is exhausted
func (s *Session) finishOnEOF(err error) error {
	if !errors.Is(err, io.EOF) {
		return err
	}
	s.log.LogDebug(fmt.Sprintf("session %s input closed", s.ID))
	s.state = models.Finished
	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, Farewell)
	return nil
}
