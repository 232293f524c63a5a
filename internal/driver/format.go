package driver

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"gasfmt/internal/config"
	"gasfmt/internal/diag"
	"gasfmt/internal/doctag"
	"gasfmt/internal/format"
	"gasfmt/internal/lexer"
	"gasfmt/internal/observ"
	"gasfmt/internal/source"
)

// FormatOptions configures a formatting run.
type FormatOptions struct {
	// Config must already be normalized.
	Config *config.Config
	Files  config.Files

	Check     bool
	Stdout    bool
	Force     bool
	Recursive bool
	// Verify re-formats every result and fails files that are not a fixed point.
	Verify bool

	Jobs           int
	MaxDiagnostics int
	Timings        bool

	Cache    *DiskCache
	Logger   *zap.Logger
	Progress ProgressSink
}

// FormatResult captures the result of formatting a single file.
type FormatResult struct {
	Path    string
	OutPath string
	DocPath string
	FileID  source.FileID
	Loaded  bool

	Changed bool
	Skipped bool
	// DocSkipped is set when another input already writes the same doc file.
	DocSkipped bool
	Cached     bool
	Err        error

	Formatted  []byte
	Statements int
	Lines      int

	Bag    *diag.Bag
	Timing *observ.Report

	doc doctag.Doc
}

// FormatPaths formats the given files and directories. With opts.Check
// nothing is written and Changed tells whether the output would differ; with
// opts.Stdout results are returned in Formatted. Per-file failures land in
// FormatResult.Err; the returned error is reserved for setup problems such as
// no matching files or unresolved output conflicts.
func FormatPaths(ctx context.Context, paths []string, opts FormatOptions) (*source.FileSet, []FormatResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}
	if opts.Config == nil {
		cfg := config.Default().Normalize()
		opts.Config = &cfg
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	sink := opts.Progress
	if sink == nil {
		sink = nopSink{}
	}
	maxDiag := opts.MaxDiagnostics
	if maxDiag <= 0 {
		maxDiag = 256
	}

	files, err := CollectSourceFiles(ctx, paths, CollectOptions{
		Extensions:      opts.Files.Extensions,
		ExcludePrefixes: opts.Files.ExcludePrefixes,
		Recursive:       opts.Recursive,
	})
	if err != nil {
		return nil, nil, err
	}
	if len(files) == 0 {
		return nil, nil, ErrNoFiles
	}
	log.Debug("collected files", zap.Int("count", len(files)), zap.Strings("paths", paths))

	writes := !opts.Check && !opts.Stdout
	outDir := opts.Files.OutputDir
	docDir := ""
	if writes {
		docDir = opts.Files.DocDir
	}
	var conflicts Conflicts
	skipped := map[string]string{}
	overwrites := map[string]struct{}{}
	if writes && outDir != "" {
		conflicts, err = DetectConflicts(files, outDir)
		if err != nil {
			return nil, nil, err
		}
		if !conflicts.Empty() {
			if !opts.Force {
				return nil, nil, &ConflictError{Conflicts: conflicts}
			}
			log.Warn("continuing despite output conflicts",
				zap.Int("duplicates", len(conflicts.Duplicates)),
				zap.Strings("overwrites", conflicts.Overwrites))
			skipped = laterDuplicates(conflicts.Duplicates)
			for _, o := range conflicts.Overwrites {
				overwrites[o] = struct{}{}
			}
		}
	}

	var fingerprint [32]byte
	if opts.Cache != nil {
		if fingerprint, err = opts.Config.Fingerprint(); err != nil {
			return nil, nil, err
		}
	}

	// FileSet не потокобезопасен: загружаем всё заранее, воркеры только читают
	fileSet := source.NewFileSet()
	results := make([]FormatResult, len(files))
	timers := make([]*observ.Timer, len(files))
	for i, path := range files {
		res := &results[i]
		res.Path = path
		res.OutPath = outputPath(path, outDir)
		res.Bag = diag.NewBag(maxDiag)
		sink.OnEvent(Event{File: path, Status: StatusQueued})

		if first, dup := skipped[path]; dup {
			res.Skipped = true
			res.Bag.Add(diag.Diagnostic{
				Severity: diag.SevWarning,
				Code:     diag.DrvDuplicateName,
				Message:  fmt.Sprintf("skipped: %s already writes %s", first, res.OutPath),
				Primary:  source.Span{File: noFile},
			})
			continue
		}

		if opts.Timings {
			timers[i] = observ.NewTimer()
		}
		sink.OnEvent(Event{File: path, Stage: StageRead, Status: StatusWorking})
		idx := timers[i].Begin(observ.PhaseRead)
		id, loadErr := fileSet.Load(path, source.LoadOptions{NFC: opts.Files.NFC})
		timers[i].End(idx, "")
		if loadErr != nil {
			res.Err = fmt.Errorf("failed to read %s: %w", path, loadErr)
			res.Bag.Add(diag.Diagnostic{
				Severity: diag.SevError,
				Code:     diag.DrvReadFailed,
				Message:  loadErr.Error(),
				Primary:  source.Span{File: noFile},
			})
			continue
		}
		res.FileID = id
		res.Loaded = true
		if docDir != "" {
			res.doc = doctag.Extract(fileSet.Get(id).Content)
		}
		if _, ok := overwrites[res.OutPath]; ok {
			res.Bag.Add(diag.Diagnostic{
				Severity: diag.SevInfo,
				Code:     diag.DrvOverwrite,
				Message:  "overwriting existing " + res.OutPath,
				Primary:  source.Span{File: noFile},
			})
		}
	}

	if docDir != "" {
		if err := resolveDocConflicts(results, &conflicts, opts.Force, log); err != nil {
			return nil, nil, err
		}
	}
	if writes && outDir != "" {
		if err := os.MkdirAll(outDir, 0o755); err != nil {
			return nil, nil, fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if docDir != "" {
		if err := os.MkdirAll(docDir, 0o755); err != nil {
			return nil, nil, fmt.Errorf("failed to create doc directory: %w", err)
		}
	}

	w := &worker{
		opts:        opts,
		log:         log,
		sink:        sink,
		fileSet:     fileSet,
		fingerprint: fingerprint,
		writes:      writes,
	}
	err = forEachFile(ctx, len(files), opts.Jobs, func(i int) {
		res := &results[i]
		if !res.Loaded {
			if res.Skipped {
				sink.OnEvent(Event{File: res.Path, Status: StatusSkipped})
			} else {
				sink.OnEvent(Event{File: res.Path, Status: StatusError, Err: res.Err})
			}
			return
		}
		w.run(res, timers[i])
	})
	return fileSet, results, err
}

// resolveDocConflicts checks the loaded files for documentation that would be
// written under the same name. Without force the run is refused before
// anything is written, with force later files keep their formatting but
// lose their doc.
func resolveDocConflicts(results []FormatResult, conflicts *Conflicts, force bool, log *zap.Logger) error {
	var withDocs []string
	for i := range results {
		if results[i].Loaded && !results[i].doc.Empty() {
			withDocs = append(withDocs, results[i].Path)
		}
	}
	conflicts.DocDuplicates = docDuplicates(withDocs)
	if len(conflicts.DocDuplicates) == 0 {
		return nil
	}
	if !force {
		return &ConflictError{Conflicts: *conflicts}
	}
	log.Warn("continuing despite doc name conflicts", zap.Int("duplicates", len(conflicts.DocDuplicates)))
	later := laterDuplicates(conflicts.DocDuplicates)
	for i := range results {
		res := &results[i]
		first, dup := later[res.Path]
		if !dup {
			continue
		}
		res.DocSkipped = true
		res.Bag.Add(diag.Diagnostic{
			Severity: diag.SevWarning,
			Code:     diag.DrvDuplicateName,
			Message:  fmt.Sprintf("doc skipped: %s already writes %s", first, doctag.OutputName(res.Path)),
			Primary:  source.Span{File: noFile},
		})
	}
	return nil
}

// noFile marks driver diagnostics that point at no loaded file.
const noFile = source.FileID(^uint32(0))

type worker struct {
	opts        FormatOptions
	log         *zap.Logger
	sink        ProgressSink
	fileSet     *source.FileSet
	fingerprint [32]byte
	writes      bool
}

func (w *worker) run(res *FormatResult, timer *observ.Timer) {
	start := time.Now()
	file := w.fileSet.Get(res.FileID)
	cfg := w.opts.Config

	var key Digest
	hit := false
	if w.opts.Cache != nil {
		key = combineDigest(file.Content, w.fingerprint)
		var payload CachePayload
		ok, err := w.opts.Cache.Get(key, &payload)
		if err != nil {
			w.log.Debug("cache read failed", zap.String("path", res.Path), zap.Error(err))
		}
		if ok {
			hit = true
			res.Cached = true
			res.Formatted = payload.Formatted
			res.Statements = payload.Statements
			res.Lines = payload.Lines
			replayDiagnostics(res, payload.Diagnostics)
		}
	}

	if !hit {
		w.sink.OnEvent(Event{File: res.Path, Stage: StageNormalize, Status: StatusWorking})
		idx := timer.Begin(observ.PhaseNormalize)
		lexStart := res.Bag.Len()
		lx := lexer.New(file, cfg, lexer.Options{Reporter: diag.BagReporter{Bag: res.Bag}})
		stmts := lx.Statements()
		timer.End(idx, fmt.Sprintf("%d statements", len(stmts)))

		w.sink.OnEvent(Event{File: res.Path, Stage: StageReflow, Status: StatusWorking})
		idx = timer.Begin(observ.PhaseReflow)
		res.Formatted, res.Lines = format.ReflowLines(stmts, cfg)
		res.Statements = len(stmts)
		timer.End(idx, fmt.Sprintf("%d lines", res.Lines))

		if w.opts.Cache != nil {
			payload := CachePayload{
				Path:        res.Path,
				Formatted:   res.Formatted,
				Statements:  res.Statements,
				Lines:       res.Lines,
				Diagnostics: cacheDiagnostics(res.Bag.Items()[lexStart:]),
			}
			if err := w.opts.Cache.Put(key, &payload); err != nil {
				w.log.Debug("cache write failed", zap.String("path", res.Path), zap.Error(err))
			}
		}
	}

	res.Changed = !bytes.Equal(file.Content, res.Formatted)

	if w.opts.Verify {
		if ok, msg := RunFmtCheck(res.Formatted, cfg); !ok {
			res.Err = fmt.Errorf("%s: %s", res.Path, msg)
		}
	}

	if res.Err == nil && w.writes {
		w.sink.OnEvent(Event{File: res.Path, Stage: StageWrite, Status: StatusWorking})
		idx := timer.Begin(observ.PhaseWrite)
		res.Err = w.write(res)
		timer.End(idx, "")
	}

	if timer != nil {
		report := timer.Report()
		res.Timing = &report
	}

	status := StatusDone
	if res.Err != nil {
		status = StatusError
		w.log.Error("format failed", zap.String("path", res.Path), zap.Error(res.Err))
	} else {
		w.log.Debug("formatted",
			zap.String("path", res.Path),
			zap.Int("statements", res.Statements),
			zap.Int("lines", res.Lines),
			zap.Bool("changed", res.Changed),
			zap.Bool("cached", res.Cached))
	}
	w.sink.OnEvent(Event{File: res.Path, Status: status, Err: res.Err, Elapsed: time.Since(start)})
}

func cacheDiagnostics(items []diag.Diagnostic) []CachedDiagnostic {
	if len(items) == 0 {
		return nil
	}
	out := make([]CachedDiagnostic, 0, len(items))
	for _, d := range items {
		out = append(out, CachedDiagnostic{
			Severity: uint8(d.Severity),
			Code:     uint16(d.Code),
			Message:  d.Message,
			Start:    d.Primary.Start,
			End:      d.Primary.End,
		})
	}
	return out
}

// replayDiagnostics restores cached lexer diagnostics against the file just
// loaded for res.
func replayDiagnostics(res *FormatResult, cached []CachedDiagnostic) {
	for _, cd := range cached {
		res.Bag.Add(diag.Diagnostic{
			Severity: diag.Severity(cd.Severity),
			Code:     diag.Code(cd.Code),
			Message:  cd.Message,
			Primary:  source.Span{File: res.FileID, Start: cd.Start, End: cd.End},
		})
	}
}

func (w *worker) write(res *FormatResult) error {
	inPlace := res.OutPath == res.Path
	if !inPlace || res.Changed {
		mode := os.FileMode(0o644)
		if info, statErr := os.Stat(res.Path); statErr == nil && inPlace {
			mode = info.Mode()
		}
		if err := os.WriteFile(res.OutPath, res.Formatted, mode.Perm()); err != nil {
			res.Bag.Add(diag.Diagnostic{
				Severity: diag.SevError,
				Code:     diag.DrvWriteFailed,
				Message:  err.Error(),
				Primary:  source.Span{File: noFile},
			})
			return fmt.Errorf("failed to write %s: %w", res.OutPath, err)
		}
	}

	docDir := w.opts.Files.DocDir
	if docDir == "" || res.DocSkipped || res.doc.Empty() {
		return nil
	}
	res.DocPath = filepath.Join(docDir, doctag.OutputName(res.Path))
	rendered := doctag.Render(res.doc, doctag.Options{
		Module:    doctag.ModuleName(res.Path),
		DashWidth: w.opts.Files.DocDashWidth,
	})
	if err := os.WriteFile(res.DocPath, rendered, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", res.DocPath, err)
	}
	return nil
}
