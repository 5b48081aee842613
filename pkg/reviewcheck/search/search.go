// Package search locates candidate spreadsheet files under a directory tree.
package search

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ErrNotDirectory indicates the search root exists but is not a directory.
var ErrNotDirectory = errors.New("not a directory")

// supportedExtensions are the spreadsheet formats worth extracting from.
var supportedExtensions = map[string]bool{
	".xlsx": true,
	".xls":  true,
	".csv":  true,
}

// FindFiles walks root recursively and returns every regular file with a
// supported spreadsheet extension whose name contains keyword. An empty
// keyword matches every file. Excel owner lock files (~$...) are skipped.
// Results are sorted so processing order never depends on directory
// enumeration order.
func FindFiles(root, keyword string) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("search root: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrNotDirectory, root)
	}

	var matched []string
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		name := d.Name()
		if strings.HasPrefix(name, "~$") {
			return nil
		}
		if !supportedExtensions[strings.ToLower(filepath.Ext(name))] {
			return nil
		}
		if keyword != "" && !strings.Contains(name, keyword) {
			return nil
		}

		matched = append(matched, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", root, err)
	}

	sort.Strings(matched)
	return matched, nil
}
