package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// Warning is a user-facing problem report
type Warning struct {
	Title      string   // Main warning title
	Message    string   // Detailed explanation (optional)
	Files      []string // Related files (optional)
	Suggestion string   // Action to take (optional)
}

// Display writes the warning in yellow
func (w Warning) Display(out io.Writer) {
	var b strings.Builder

	b.WriteString("⚠️  Warning: ")
	b.WriteString(w.Title)
	b.WriteString("\n")

	if w.Message != "" {
		b.WriteString("    ")
		b.WriteString(w.Message)
		b.WriteString("\n")
	}

	if len(w.Files) > 0 {
		b.WriteString("    ")
		if len(w.Files) == 1 {
			b.WriteString("Affected file:\n")
		} else {
			b.WriteString("Affected files:\n")
		}
		for i, file := range w.Files {
			b.WriteString(fmt.Sprintf("      %d. %s\n", i+1, file))
		}
	}

	if w.Suggestion != "" {
		b.WriteString("    Suggestion:\n")
		b.WriteString("    ")
		b.WriteString(w.Suggestion)
		b.WriteString("\n")
	}

	color.New(color.FgYellow).Fprint(out, b.String())
}

// WarnUnreadableFile reports a file that could not be printed
func WarnUnreadableFile(path string, err error) Warning {
	return Warning{
		Title:   "Cannot print file",
		Message: err.Error(),
		Files:   []string{path},
	}
}

// WarnNoFiles reports an empty listing at startup
func WarnNoFiles(dir string) Warning {
	return Warning{
		Title:      fmt.Sprintf("no files found in %s", dir),
		Suggestion: "Pick another directory with --dir or relax the --exclude list",
	}
}
