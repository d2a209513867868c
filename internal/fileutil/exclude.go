package fileutil

import (
	"fmt"
	"strings"

	"github.com/gobwas/glob"
)

const globMeta = "*?[{"

// Excluder decides which file names are hidden from the menu
type Excluder struct {
	names    map[string]bool
	patterns []glob.Glob
}

// NewExcluder builds an Excluder from exact names and glob patterns.
// It fails on the first pattern that does not compile.
func NewExcluder(entries []string) (*Excluder, error) {
	ex := &Excluder{
		names: make(map[string]bool, len(entries)),
	}

	for _, entry := range entries {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}

		if !strings.ContainsAny(entry, globMeta) {
			ex.names[entry] = true
			continue
		}

		g, err := glob.Compile(entry)
		if err != nil {
			return nil, fmt.Errorf("invalid exclude pattern %q: %w", entry, err)
		}
		ex.patterns = append(ex.patterns, g)
	}

	return ex, nil
}

// Excluded reports whether name should be left out of the listing.
// A nil Excluder excludes nothing.
func (e *Excluder) Excluded(name string) bool {
	if e == nil {
		return false
	}
	if e.names[name] {
		return true
	}
	for _, g := range e.patterns {
		if g.Match(name) {
			return true
		}
	}
	return false
}
