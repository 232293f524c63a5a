package driver

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ErrNoFiles is returned when no input matched the file selection rules.
var ErrNoFiles = errors.New("no source files found")

// CollectOptions selects which files are formatted.
type CollectOptions struct {
	Extensions      []string
	ExcludePrefixes []string
	// Recursive walks whole directory trees; otherwise only the files
	// directly inside a directory argument are taken.
	Recursive bool
}

// Accept reports whether path passes the extension and prefix filters.
func (o CollectOptions) Accept(path string) bool {
	base := filepath.Base(path)
	ext := strings.TrimPrefix(filepath.Ext(base), ".")
	if ext == "" {
		return false
	}
	for _, p := range o.ExcludePrefixes {
		if strings.HasPrefix(base, p) {
			return false
		}
	}
	for _, e := range o.Extensions {
		if strings.EqualFold(ext, e) {
			return true
		}
	}
	return false
}

// CollectSourceFiles expands paths into a sorted, de-duplicated file list.
// Explicit file arguments still go through the filters.
func CollectSourceFiles(ctx context.Context, paths []string, opts CollectOptions) ([]string, error) {
	var files []string
	seen := make(map[string]struct{})
	addFile := func(path string) {
		if !opts.Accept(path) {
			return
		}
		path = filepath.Clean(path)
		if _, ok := seen[path]; ok {
			return
		}
		seen[path] = struct{}{}
		files = append(files, path)
	}

	for _, p := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		info, err := os.Stat(p)
		if err != nil {
			return nil, fmt.Errorf("failed to stat %q: %w", p, err)
		}
		if !info.IsDir() {
			addFile(p)
			continue
		}
		if opts.Recursive {
			err = filepath.WalkDir(p, func(path string, d fs.DirEntry, err error) error {
				if err != nil {
					return err
				}
				if err := ctx.Err(); err != nil {
					return err
				}
				if !d.IsDir() {
					addFile(path)
				}
				return nil
			})
			if err != nil {
				return nil, err
			}
			continue
		}
		entries, err := os.ReadDir(p)
		if err != nil {
			return nil, fmt.Errorf("failed to read directory %q: %w", p, err)
		}
		for _, e := range entries {
			if e.Type().IsRegular() {
				addFile(filepath.Join(p, e.Name()))
			}
		}
	}

	// Сортируем для детерминированного порядка
	sort.Strings(files)
	return files, nil
}
