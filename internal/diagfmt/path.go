package diagfmt

import (
	"path/filepath"

	"gasfmt/internal/source"
)

func formatPath(path string, mode PathMode, baseDir string) string {
	switch mode {
	case PathModeAbsolute:
		if abs, err := filepath.Abs(path); err == nil {
			return filepath.ToSlash(abs)
		}
	case PathModeRelative:
		base := baseDir
		if base == "" {
			base = "."
		}
		if rel, err := source.RelativePath(path, base); err == nil {
			return rel
		}
	case PathModeBasename:
		return filepath.Base(path)
	}
	return path
}

// spanFile returns the file a span points into, or nil for driver-level
// diagnostics that carry no location.
func spanFile(fs *source.FileSet, span source.Span) *source.File {
	if fs == nil {
		return nil
	}
	return fs.Get(span.File)
}
