// Package scan lists the content of a directory tree and stages the
// per-entry metadata an archive writer needs. Only directories and
// regular files are supported.
package scan

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/karrick/godirwalk"
)

// ErrUnsupportedFile is returned when the tree holds something other
// than directories and regular files (symlinks, devices, sockets).
var ErrUnsupportedFile = errors.New("unsupported file type")

// EntryPaths returns the relative paths of every entry under root, in
// archive order: each directory (marked by a trailing slash) before its
// children, siblings sorted lexicographically. Paths are relative to
// root's parent, so the root directory itself is the first entry. A
// root that is a regular file yields only its base name.
func EntryPaths(root string) ([]string, error) {
	root = filepath.Clean(root)
	fi, err := os.Stat(root)
	if err != nil {
		return nil, err
	}
	if !fi.IsDir() {
		if !fi.Mode().IsRegular() {
			return nil, ErrUnsupportedFile
		}
		return []string{filepath.Base(root)}, nil
	}

	base := filepath.Dir(root)
	var paths []string
	err = godirwalk.Walk(root, &godirwalk.Options{
		Callback: func(osPathname string, de *godirwalk.Dirent) error {
			rel, err := filepath.Rel(base, osPathname)
			if err != nil {
				return err
			}
			rel = filepath.ToSlash(rel)
			switch {
			case de.IsDir():
				rel += "/"
			case de.IsRegular():
			default:
				return ErrUnsupportedFile
			}
			paths = append(paths, rel)
			return nil
		},
		Unsorted: false,
	})
	if err != nil {
		return nil, err
	}
	return paths, nil
}
