// Package fileutil lists the files a menu can offer.
//
// ListFiles enumerates the regular files directly inside a directory,
// skipping names matched by an Excluder. It never fails: a missing or
// unreadable directory yields an empty list so the caller can report
// "no files found" instead of aborting.
//
//	ex, err := fileutil.NewExcluder([]string{".DS_Store", "*.bak"})
//	if err != nil {
//	    return err
//	}
//	for _, name := range fileutil.ListFiles("/tmp", ex) {
//	    fmt.Println(name)
//	}
//
// Exclusion entries without glob metacharacters match a file name exactly.
// Entries containing any of *?[{ are compiled with github.com/gobwas/glob
// and matched against the base name.
package fileutil
