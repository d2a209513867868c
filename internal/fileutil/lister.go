package fileutil

import (
	"os"
	"path/filepath"
)

// ListFiles returns the names of the regular files directly inside dir,
// in directory-listing order, minus anything ex excludes.
// Symlinks are kept when they resolve to a regular file.
// A nonexistent or unreadable dir returns an empty slice.
func ListFiles(dir string, ex *Excluder) []string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return []string{}
	}

	files := make([]string, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if ex.Excluded(name) {
			continue
		}
		if !isRegular(dir, entry) {
			continue
		}
		files = append(files, name)
	}

	return files
}

func isRegular(dir string, entry os.DirEntry) bool {
	if entry.Type().IsRegular() {
		return true
	}
	if entry.Type()&os.ModeSymlink == 0 {
		return false
	}

	info, err := os.Stat(filepath.Join(dir, entry.Name()))
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}
