// Package discover finds the Python source files and candidate packages below
// a repository root.
package discover

import (
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

const (
	// SourceExt is the extension of files considered for extraction.
	SourceExt = ".py"

	// InitFile is the package initializer, which is never scanned.
	InitFile = "__init__.py"

	// CacheDir is the bytecode cache directory skipped during the walk.
	CacheDir = "__pycache__"
)

// Files returns every Python source file below dir, sorted by path.
//
// Directories named __pycache__ and hidden directories (leading dot) are
// pruned, except dir itself. __init__.py files are skipped. Unreadable
// subdirectories are skipped silently; only a failure to read dir itself is
// returned.
func Files(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == dir {
				return err
			}
			return nil
		}
		if d.IsDir() {
			if path != dir && skipDir(d.Name()) {
				return filepath.SkipDir
			}
			return nil
		}
		if isSource(d.Name()) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	slices.Sort(files)
	return files, nil
}

// Packages lists the directories directly below root that contain at least
// one Python source file, in name order. Hidden and cache directories are
// ignored.
func Packages(root string) ([]string, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, err
	}

	var pkgs []string
	for _, e := range entries {
		if !e.IsDir() || skipDir(e.Name()) {
			continue
		}
		files, err := Files(filepath.Join(root, e.Name()))
		if err != nil || len(files) == 0 {
			continue
		}
		pkgs = append(pkgs, e.Name())
	}
	return pkgs, nil
}

func skipDir(name string) bool {
	return name == CacheDir || strings.HasPrefix(name, ".")
}

func isSource(name string) bool {
	return strings.HasSuffix(name, SourceExt) && name != InitFile
}
