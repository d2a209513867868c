package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/harrison/filemenu/internal/models"
)

const (
	menuTitle = "Available actions and files:"
	ruleWidth = 50
)

// RenderMenu prints the header, one "[index] label" line per option and
// the footer. It never fails; write errors are ignored.
func RenderMenu(w io.Writer, options []models.MenuOption) {
	bold := color.New(color.Bold)

	fmt.Fprintln(w)
	bold.Fprintln(w, menuTitle)
	fmt.Fprintln(w, strings.Repeat("-", ruleWidth))

	for _, opt := range options {
		fmt.Fprintln(w, FormatMenuLine(opt))
	}

	fmt.Fprintln(w, strings.Repeat("-", ruleWidth))
}

// FormatMenuLine formats a single option. Static actions are cyan,
// files use the default color.
func FormatMenuLine(opt models.MenuOption) string {
	yellow := color.New(color.FgYellow)
	label := opt.Label
	if opt.Kind != models.OptionFile {
		label = color.New(color.FgCyan).Sprint(label)
	}
	return fmt.Sprintf("  %s %s", yellow.Sprintf("[%d]", opt.Index), label)
}
