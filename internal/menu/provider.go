package menu

import (
	"github.com/harrison/filemenu/internal/fileutil"
	"github.com/harrison/filemenu/internal/models"
)

// Action labels, shared by the menu and the action log
const (
	ExitLabel  = "exit"
	GreetLabel = "say hello"
)

// Provider supplies the options for one render cycle
type Provider interface {
	Options() []models.MenuOption
}

// StaticOptions returns the fixed actions shown before any file, unnumbered
func StaticOptions() []models.MenuOption {
	return []models.MenuOption{
		{Label: ExitLabel, Kind: models.OptionExit},
		{Label: GreetLabel, Kind: models.OptionGreet},
	}
}

// BuildOptions numbers static options then one option per file,
// consecutively from 1
func BuildOptions(static []models.MenuOption, files []string) []models.MenuOption {
	options := make([]models.MenuOption, 0, len(static)+len(files))

	for _, opt := range static {
		opt.Index = len(options) + 1
		options = append(options, opt)
	}

	for _, name := range files {
		options = append(options, models.MenuOption{
			Index:    len(options) + 1,
			Label:    name,
			Kind:     models.OptionFile,
			FileName: name,
		})
	}

	return options
}

// FileMenu lists Dir on every call to Options
type FileMenu struct {
	Dir      string
	Excluder *fileutil.Excluder
}

// NewFileMenu creates a FileMenu for dir. A nil excluder hides nothing.
func NewFileMenu(dir string, ex *fileutil.Excluder) *FileMenu {
	return &FileMenu{Dir: dir, Excluder: ex}
}

// Options implements Provider
func (m *FileMenu) Options() []models.MenuOption {
	return BuildOptions(StaticOptions(), m.Files())
}

// Files returns the current file names
func (m *FileMenu) Files() []string {
	return fileutil.ListFiles(m.Dir, m.Excluder)
}

// FileCount returns how many files the menu would offer right now
func (m *FileMenu) FileCount() int {
	return len(m.Files())
}
