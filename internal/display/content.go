package display

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

// maxLineSize bounds a single line read by PrintNumbered
const maxLineSize = 1024 * 1024

// PrintNumbered writes the lines of the file at path to w, each prefixed
// with its 1-based number: "1) first line". A file that cannot be opened
// produces no output and an error wrapping the cause (os.ErrNotExist for a
// missing file).
func PrintNumbered(w io.Writer, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("cannot open %s: %w", path, err)
	}
	defer f.Close()

	number := color.New(color.FgGreen)

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	n := 0
	for scanner.Scan() {
		n++
		fmt.Fprintf(w, "%s %s\n", number.Sprintf("%d)", n), scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("cannot read %s after %d lines: %w", path, n, err)
	}

	return nil
}
