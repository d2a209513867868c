package menu

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/harrison/filemenu/internal/fileutil"
	"github.com/harrison/filemenu/internal/logger"
	"github.com/harrison/filemenu/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sessionFixture struct {
	dir     string
	out     *bytes.Buffer
	warn    *bytes.Buffer
	trace   *bytes.Buffer
	actions *recordingActions
}

func newSessionFixture(t *testing.T) *sessionFixture {
	return &sessionFixture{
		dir:     t.TempDir(),
		out:     &bytes.Buffer{},
		warn:    &bytes.Buffer{},
		trace:   &bytes.Buffer{},
		actions: &recordingActions{},
	}
}

func (f *sessionFixture) session(t *testing.T, exclude []string, reader Reader) *Session {
	ex, err := fileutil.NewExcluder(exclude)
	require.NoError(t, err)

	return NewSession(SessionConfig{
		Dir:      f.dir,
		Provider: NewFileMenu(f.dir, ex),
		In:       reader,
		Out:      f.out,
		Warn:     f.warn,
		Actions:  f.actions,
		Logger:   logger.NewConsoleLogger(f.trace, "debug"),
	})
}

// Selecting a file and confirming prints it and ends the session
func TestSession_PrintFileScenario(t *testing.T) {
	f := newSessionFixture(t)
	path := writeFile(t, f.dir, "test1.txt", "Hello World")

	s := f.session(t, nil, &MockMenuReader{inputs: []string{"9", "3", "y"}})
	err := s.Run(context.Background())

	require.NoError(t, err)
	assert.Equal(t, models.Finished, s.State())

	out := f.out.String()
	assert.Equal(t, 2, strings.Count(out, "  [3] test1.txt"), "menu is rendered again after the invalid choice")
	assert.Contains(t, out, "Select an option (1-3): ")
	assert.Contains(t, out, "1) Hello World\n")
	assert.True(t, strings.HasSuffix(out, Farewell+"\n"))
	assert.Equal(t, 1, strings.Count(f.warn.String(), InvalidChoiceMessage))

	assert.Equal(t, []string{"print file " + path}, f.actions.actions())
	assert.True(t, f.actions.entries[0].Success)
}

// Excluded names never reach the menu
func TestSession_ExclusionScenario(t *testing.T) {
	f := newSessionFixture(t)
	writeFile(t, f.dir, "test1.txt", "Hello World")
	writeFile(t, f.dir, "test2.txt", "Hidden")

	s := f.session(t, []string{"test2.txt"}, &MockMenuReader{inputs: []string{"1"}})
	require.NoError(t, s.Run(context.Background()))

	out := f.out.String()
	assert.Contains(t, out, "  [1] exit\n")
	assert.Contains(t, out, "  [2] say hello\n")
	assert.Contains(t, out, "  [3] test1.txt\n")
	assert.NotContains(t, out, "test2.txt")
	assert.NotContains(t, out, "[4]")
	assert.Equal(t, []string{"exit"}, f.actions.actions())
}

// Declining the print returns to a redisplayed menu without a log entry
func TestSession_DeclineScenario(t *testing.T) {
	f := newSessionFixture(t)
	writeFile(t, f.dir, "test1.txt", "Hello World")

	s := f.session(t, nil, &MockMenuReader{inputs: []string{"3", "n", "1"}})
	require.NoError(t, s.Run(context.Background()))

	out := f.out.String()
	assert.Equal(t, 2, strings.Count(out, menuHeader()), "menu must be shown again after declining")
	assert.NotContains(t, out, "1) Hello World")
	assert.Equal(t, []string{"exit"}, f.actions.actions())
}

// An empty listing reports no files and never prompts
func TestSession_EmptyDirectoryScenario(t *testing.T) {
	f := newSessionFixture(t)
	writeFile(t, f.dir, "test2.txt", "Hidden")
	reader := &MockMenuReader{inputs: []string{"1"}}

	s := f.session(t, []string{"test2.txt"}, reader)
	err := s.Run(context.Background())

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNoFiles))
	assert.Contains(t, f.warn.String(), "no files found in "+f.dir)
	assert.NotContains(t, f.out.String(), "Select an option")
	assert.Equal(t, 0, reader.index, "no input must be consumed")
	assert.Empty(t, f.actions.entries)
}

func TestSession_MissingDirectory(t *testing.T) {
	f := newSessionFixture(t)
	f.dir = filepath.Join(f.dir, "missing")

	err := f.session(t, nil, &MockMenuReader{}).Run(context.Background())

	assert.True(t, errors.Is(err, ErrNoFiles))
}

func TestSession_GreetThenExit(t *testing.T) {
	f := newSessionFixture(t)
	writeFile(t, f.dir, "a.txt", "a")

	s := f.session(t, nil, &MockMenuReader{inputs: []string{"2", "2", "1"}})
	require.NoError(t, s.Run(context.Background()))

	assert.Equal(t, 2, strings.Count(f.out.String(), Greeting))
	assert.Equal(t, []string{"say hello", "say hello", "exit"}, f.actions.actions())
}

func TestSession_MenuRebuiltEachTurn(t *testing.T) {
	f := newSessionFixture(t)
	writeFile(t, f.dir, "a.txt", "a")

	// b.txt appears after the first menu was rendered
	reader := &MockMenuReader{
		inputs: []string{"2", "4", "y"},
		hooks:  map[int]func(){0: func() { writeFile(t, f.dir, "b.txt", "Fresh content") }},
	}

	s := f.session(t, nil, reader)
	require.NoError(t, s.Run(context.Background()))

	out := f.out.String()
	assert.Contains(t, out, "Select an option (1-3): ")
	assert.Contains(t, out, "Select an option (1-4): ")
	assert.Contains(t, out, "  [4] b.txt")
	assert.Contains(t, out, "1) Fresh content")
}

func TestSession_FileRemovedBeforeConfirmation(t *testing.T) {
	f := newSessionFixture(t)
	path := writeFile(t, f.dir, "test1.txt", "Hello World")

	reader := &MockMenuReader{
		inputs: []string{"3", "y"},
		hooks:  map[int]func(){1: func() { os.Remove(path) }},
	}

	s := f.session(t, nil, reader)
	require.NoError(t, s.Run(context.Background()))

	assert.Equal(t, models.Finished, s.State())
	assert.Contains(t, f.warn.String(), "Cannot print file")
	assert.True(t, strings.HasSuffix(f.out.String(), Farewell+"\n"))
	require.Len(t, f.actions.entries, 1)
	assert.False(t, f.actions.entries[0].Success)
}

func TestSession_InputClosed(t *testing.T) {
	f := newSessionFixture(t)
	writeFile(t, f.dir, "a.txt", "a")

	s := f.session(t, nil, &MockMenuReader{inputs: []string{"x"}})
	err := s.Run(context.Background())

	require.NoError(t, err)
	assert.Equal(t, models.Finished, s.State())
	assert.True(t, strings.HasSuffix(f.out.String(), Farewell+"\n"))
	assert.Contains(t, f.trace.String(), "input closed")
	assert.Empty(t, f.actions.entries)
}

func TestSession_ReadFailure(t *testing.T) {
	f := newSessionFixture(t)
	writeFile(t, f.dir, "a.txt", "a")

	err := f.session(t, nil, failingReader{}).Run(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "terminal detached")
}

func TestSession_CancelledContext(t *testing.T) {
	f := newSessionFixture(t)
	writeFile(t, f.dir, "a.txt", "a")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := f.session(t, nil, &MockMenuReader{inputs: []string{"1"}}).Run(ctx)

	assert.True(t, errors.Is(err, context.Canceled))
	assert.Empty(t, f.out.String())
}

func TestSession_IDAndTrace(t *testing.T) {
	f := newSessionFixture(t)
	writeFile(t, f.dir, "a.txt", "a")

	s := f.session(t, nil, &MockMenuReader{inputs: []string{"1"}})
	other := f.session(t, nil, &MockMenuReader{})
	assert.Len(t, s.ID, 36)
	assert.NotEqual(t, s.ID, other.ID)

	require.NoError(t, s.Run(context.Background()))
	assert.Contains(t, f.trace.String(), "session "+s.ID+" browsing "+f.dir)
	assert.Contains(t, f.trace.String(), "dispatching [1] exit")
}

func TestNewSession_Defaults(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.txt", "a")

	s := NewSession(SessionConfig{
		Dir:      dir,
		Provider: NewFileMenu(dir, nil),
		In:       &MockMenuReader{inputs: []string{"2", "1"}},
	})

	assert.NoError(t, s.Run(context.Background()))
}

func menuHeader() string {
	return "Available actions and files:"
}
