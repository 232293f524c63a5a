package driver

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"gasfmt/internal/config"
	"gasfmt/internal/doctag"
	"gasfmt/internal/source"
)

// DocOptions configures documentation extraction.
type DocOptions struct {
	Files     config.Files
	Recursive bool
	// Stdout returns the rendered documents instead of writing them.
	Stdout bool
	// Force writes the first of several files sharing a doc name and skips
	// the rest instead of refusing the run.
	Force  bool
	Jobs   int
	Logger *zap.Logger
}

// DocResult captures the documentation extracted from one file.
type DocResult struct {
	Path    string
	DocPath string
	Doc     []byte
	Found   bool
	// Skipped is set when an earlier file already writes DocPath's name.
	Skipped bool
	Err     error
}

// ExtractDocs renders the tagged documentation blocks of every selected file
// into Files.DocDir (the current directory when empty). Files without tags
// produce no output. Two files whose docs share a name make the run fail with
// a ConflictError before anything is written, unless opts.Force is set.
func ExtractDocs(ctx context.Context, paths []string, opts DocOptions) ([]DocResult, error) {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	files, err := CollectSourceFiles(ctx, paths, CollectOptions{
		Extensions:      opts.Files.Extensions,
		ExcludePrefixes: opts.Files.ExcludePrefixes,
		Recursive:       opts.Recursive,
	})
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, ErrNoFiles
	}

	results := make([]DocResult, len(files))
	err = forEachFile(ctx, len(files), opts.Jobs, func(i int) {
		res := &results[i]
		res.Path = files[i]
		// #nosec G304 -- path comes from CollectSourceFiles
		raw, err := os.ReadFile(res.Path)
		if err != nil {
			res.Err = fmt.Errorf("failed to read %s: %w", res.Path, err)
			return
		}
		content, _ := source.Prepare(raw, source.LoadOptions{NFC: opts.Files.NFC})
		doc := doctag.Extract(content)
		if doc.Empty() {
			log.Debug("no doc tags", zap.String("path", res.Path))
			return
		}
		res.Found = true
		res.Doc = doctag.Render(doc, doctag.Options{
			Module:    doctag.ModuleName(res.Path),
			DashWidth: opts.Files.DocDashWidth,
		})
	})
	if err != nil || opts.Stdout {
		return results, err
	}

	var found []string
	for i := range results {
		if results[i].Found {
			found = append(found, results[i].Path)
		}
	}
	if dups := docDuplicates(found); len(dups) > 0 {
		if !opts.Force {
			return nil, &ConflictError{Conflicts: Conflicts{DocDuplicates: dups}}
		}
		log.Warn("continuing despite doc name conflicts", zap.Int("duplicates", len(dups)))
		later := laterDuplicates(dups)
		for i := range results {
			if first, dup := later[results[i].Path]; dup {
				results[i].Skipped = true
				log.Warn("doc skipped", zap.String("path", results[i].Path), zap.String("kept", first))
			}
		}
	}

	docDir := opts.Files.DocDir
	if docDir == "" {
		docDir = "."
	}
	if err := os.MkdirAll(docDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create doc directory: %w", err)
	}
	err = forEachFile(ctx, len(results), opts.Jobs, func(i int) {
		res := &results[i]
		if !res.Found || res.Skipped {
			return
		}
		res.DocPath = filepath.Join(docDir, doctag.OutputName(res.Path))
		if err := os.WriteFile(res.DocPath, res.Doc, 0o644); err != nil {
			res.Err = fmt.Errorf("failed to write %s: %w", res.DocPath, err)
			return
		}
		log.Debug("doc written", zap.String("path", res.Path), zap.String("doc", res.DocPath))
	})
	return results, err
}
