// Package display owns everything the user sees on the terminal.
//
// RenderMenu prints the numbered option list, PrintNumbered writes a file's
// lines with 1-based line numbers, and Warning formats problems for the
// warning stream:
//
//	display.RenderMenu(os.Stdout, options)
//	if err := display.PrintNumbered(os.Stdout, path); err != nil {
//	    display.Warning{Title: "Cannot print file", Files: []string{path}}.Display(os.Stderr)
//	}
//
// Colors come from github.com/fatih/color and follow its global NoColor
// switch, so redirected output and NO_COLOR stay plain.
package display
