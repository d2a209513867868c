package menu

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrInvalidSelection is returned for input that is not a number in range
var ErrInvalidSelection = errors.New("invalid selection")

// Reader reads one line of user input. *bufio.Reader satisfies it.
type Reader interface {
	ReadString(delim byte) (string, error)
}

// readLine returns the next trimmed line. A final line without a newline
// is still returned; io.EOF is reported on the following call.
func readLine(r Reader) (string, error) {
	line, err := r.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSpace(line), nil
		}
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// ReadSelection reads a line and parses it as an option index in [1, n]
func ReadSelection(r Reader, n int) (int, error) {
	input, err := readLine(r)
	if err != nil {
		return 0, err
	}
	return ParseSelection(input, n)
}

// ParseSelection accepts only base-10 integers in [1, n]
func ParseSelection(input string, n int) (int, error) {
	choice, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil || choice < 1 || choice > n {
		return 0, fmt.Errorf("%w: %q is not between 1 and %d", ErrInvalidSelection, input, n)
	}
	return choice, nil
}

// ParseAnswer matches y/yes and n/no case-insensitively.
// ok is false for anything else.
func ParseAnswer(input string) (yes bool, ok bool) {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "y", "yes":
		return true, true
	case "n", "no":
		return false, true
	default:
		return false, false
	}
}
