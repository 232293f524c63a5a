package driver

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gasfmt/internal/doctag"
)

// Conflicts lists the output name clashes of a run with an output directory.
type Conflicts struct {
	// Duplicates maps a base name to every input sharing it, in input order.
	Duplicates map[string][]string
	// Overwrites lists output paths that already exist.
	Overwrites []string
	// InputOverwrites is the subset of Overwrites that are inputs themselves.
	InputOverwrites []string
	// DocDuplicates maps a doc file name to every input whose tags render to
	// it, in input order.
	DocDuplicates map[string][]string
}

// Empty reports whether nothing clashes.
func (c Conflicts) Empty() bool {
	return len(c.Duplicates) == 0 && len(c.Overwrites) == 0 && len(c.DocDuplicates) == 0
}

// ConflictError aborts a run that would clobber files without --force.
type ConflictError struct {
	Conflicts Conflicts
}

func (e *ConflictError) Error() string {
	var parts []string
	if n := len(e.Conflicts.Duplicates); n > 0 {
		parts = append(parts, fmt.Sprintf("%d duplicate output name(s)", n))
	}
	if n := len(e.Conflicts.Overwrites); n > 0 {
		msg := fmt.Sprintf("%d existing output file(s)", n)
		if k := len(e.Conflicts.InputOverwrites); k > 0 {
			msg += fmt.Sprintf(", %d of them input file(s)", k)
		}
		parts = append(parts, msg)
	}
	if n := len(e.Conflicts.DocDuplicates); n > 0 {
		parts = append(parts, fmt.Sprintf("%d duplicate doc name(s)", n))
	}
	return "output conflicts: " + strings.Join(parts, "; ") + " (use --force to continue)"
}

// IsConflict reports whether err carries a ConflictError.
func IsConflict(err error) (*ConflictError, bool) {
	var ce *ConflictError
	if errors.As(err, &ce) {
		return ce, true
	}
	return nil, false
}

// outputPath maps an input to its destination. Without an output directory
// files are rewritten in place.
func outputPath(path, outDir string) string {
	if outDir == "" {
		return path
	}
	return filepath.Join(outDir, filepath.Base(path))
}

// DetectConflicts finds inputs that map to the same output name and outputs
// that already exist in outDir.
func DetectConflicts(files []string, outDir string) (Conflicts, error) {
	var c Conflicts
	if outDir == "" {
		return c, nil
	}

	byName := make(map[string][]string)
	var order []string
	for _, f := range files {
		name := filepath.Base(f)
		if _, ok := byName[name]; !ok {
			order = append(order, name)
		}
		byName[name] = append(byName[name], f)
	}

	inputs := make(map[string]struct{}, len(files))
	for _, f := range files {
		if abs, err := filepath.Abs(f); err == nil {
			inputs[abs] = struct{}{}
		}
	}

	for _, name := range order {
		group := byName[name]
		if len(group) > 1 {
			if c.Duplicates == nil {
				c.Duplicates = make(map[string][]string)
			}
			c.Duplicates[name] = group
		}
		out := filepath.Join(outDir, name)
		if _, err := os.Stat(out); err == nil {
			c.Overwrites = append(c.Overwrites, out)
			if abs, err := filepath.Abs(out); err == nil {
				if _, ok := inputs[abs]; ok {
					c.InputOverwrites = append(c.InputOverwrites, out)
				}
			}
		} else if !errors.Is(err, os.ErrNotExist) {
			return c, fmt.Errorf("failed to stat %q: %w", out, err)
		}
	}
	return c, nil
}

// docDuplicates groups files with doc tags by the name their documentation
// is written under. Only clashing names are returned.
func docDuplicates(files []string) map[string][]string {
	byName := make(map[string][]string, len(files))
	for _, f := range files {
		name := doctag.OutputName(f)
		byName[name] = append(byName[name], f)
	}
	var out map[string][]string
	for name, group := range byName {
		if len(group) < 2 {
			continue
		}
		if out == nil {
			out = make(map[string][]string)
		}
		out[name] = group
	}
	return out
}

// laterDuplicates maps every file after the first of its group to that
// first file. The first one keeps the name, the rest are skipped.
func laterDuplicates(groups map[string][]string) map[string]string {
	out := make(map[string]string)
	for _, group := range groups {
		for _, f := range group[1:] {
			out[f] = group[0]
		}
	}
	return out
}
