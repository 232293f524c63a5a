package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"gasfmt/internal/diag"
	"gasfmt/internal/diagfmt"
	"gasfmt/internal/driver"
	"gasfmt/internal/source"
)

var fmtCmd = &cobra.Command{
	Use:   "fmt [flags] <path> [path...]",
	Short: "Format assembler source files",
	Long: `Format assembler sources in place, into an output directory (--out),
or to stdout (--stdout). Directories are expanded one level unless
--recursive is given.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runFmt,
}

func init() {
	fmtCmd.Flags().Bool("check", false, "check if files are properly formatted")
	fmtCmd.Flags().String("format", "text", "output format (text|json)")
	fmtCmd.Flags().Bool("stdout", false, "print formatted code to stdout instead of rewriting files")
	fmtCmd.Flags().StringP("out", "o", "", "write results into this directory instead of rewriting inputs")
	fmtCmd.Flags().BoolP("force", "f", false, "skip duplicate names and overwrite existing outputs")
	fmtCmd.Flags().Bool("cache", false, "reuse results from the on-disk cache")
	fmtCmd.Flags().Bool("verify", false, "re-format every result and fail files that are not stable")
	fmtCmd.Flags().String("ui", "auto", "progress UI (auto|on|off)")
	addReflowFlags(fmtCmd)
	addFilesFlags(fmtCmd)
}

func runFmt(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	check, err := cmd.Flags().GetBool("check")
	if err != nil {
		return err
	}
	outputFormat, err := cmd.Flags().GetString("format")
	if err != nil {
		return err
	}
	writeToStdout, err := cmd.Flags().GetBool("stdout")
	if err != nil {
		return err
	}
	if writeToStdout && check {
		return fmt.Errorf("fmt: --stdout cannot be used with --check")
	}
	if writeToStdout && outputFormat != "text" {
		return fmt.Errorf("fmt: --stdout is only supported with text output")
	}
	if outputFormat != "text" && outputFormat != "json" {
		return fmt.Errorf("fmt: unsupported output format %q", outputFormat)
	}
	outDir, err := cmd.Flags().GetString("out")
	if err != nil {
		return err
	}
	force, err := cmd.Flags().GetBool("force")
	if err != nil {
		return err
	}
	useCache, err := cmd.Flags().GetBool("cache")
	if err != nil {
		return err
	}
	verify, err := cmd.Flags().GetBool("verify")
	if err != nil {
		return err
	}
	recursive, err := cmd.Flags().GetBool("recursive")
	if err != nil {
		return err
	}
	uiValue, err := cmd.Flags().GetString("ui")
	if err != nil {
		return err
	}
	mode, err := readUIMode(uiValue)
	if err != nil {
		return err
	}

	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return err
	}
	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	if err != nil {
		return err
	}
	verbose, err := cmd.Root().PersistentFlags().GetBool("verbose")
	if err != nil {
		return err
	}
	timings, err := cmd.Root().PersistentFlags().GetBool("timings")
	if err != nil {
		return err
	}

	proj, err := loadProject(cmd)
	if err != nil {
		return fmt.Errorf("fmt: %w", err)
	}
	if outDir != "" {
		proj.Files.OutputDir = outDir
	}
	cfg := proj.Reflow.Normalize()

	opts := driver.FormatOptions{
		Config:         &cfg,
		Files:          proj.Files,
		Check:          check,
		Stdout:         writeToStdout,
		Force:          force,
		Recursive:      recursive,
		Verify:         verify,
		Jobs:           proj.Files.Jobs,
		MaxDiagnostics: maxDiagnostics,
		Timings:        timings,
		Logger:         logger,
	}
	if useCache {
		cache, cacheErr := driver.OpenDiskCache("gasfmt")
		if cacheErr != nil {
			logger.Warn("cache disabled", zap.Error(cacheErr))
		} else {
			opts.Cache = cache
		}
	}

	var (
		fileSet *source.FileSet
		results []driver.FormatResult
	)
	useUI := false
	if outputFormat == "text" && !writeToStdout && mode != uiModeOff {
		files, collectErr := driver.CollectSourceFiles(cmd.Context(), args, driver.CollectOptions{
			Extensions:      proj.Files.Extensions,
			ExcludePrefixes: proj.Files.ExcludePrefixes,
			Recursive:       recursive,
		})
		if collectErr != nil {
			return fmt.Errorf("fmt: %w", collectErr)
		}
		if useUI = shouldUseTUI(mode, len(files)); useUI {
			fileSet, results, err = runFormatWithUI(cmd.Context(), "formatting", files, args, opts)
		}
	}
	if !useUI {
		fileSet, results, err = driver.FormatPaths(cmd.Context(), args, opts)
	}
	if ce, ok := driver.IsConflict(err); ok {
		printConflicts(os.Stderr, ce.Conflicts)
		return fmt.Errorf("fmt: %w", err)
	}
	if err != nil {
		return fmt.Errorf("fmt: %w", err)
	}

	minSeverity := diag.SevWarning
	if verbose {
		minSeverity = diag.SevInfo
	}

	var hasErrors, hasChanges bool
	switch outputFormat {
	case "text":
		renderFmtDiagnostics(os.Stderr, fileSet, results, minSeverity)
		if writeToStdout {
			renderFmtStdout(results, &hasErrors)
		} else {
			renderFmtText(results, check, quiet, &hasErrors, &hasChanges)
		}
		if timings {
			printTimings(os.Stderr, driver.CollectTimings(results))
		}
	case "json":
		if err := renderFmtJSON(os.Stdout, fileSet, results, check, timings, &hasErrors, &hasChanges); err != nil {
			return err
		}
	}

	if hasErrors {
		return fmt.Errorf("fmt: failed to format some files")
	}
	if check && hasChanges {
		return fmt.Errorf("fmt: formatting changes required")
	}
	return nil
}

func renderFmtDiagnostics(w io.Writer, fileSet *source.FileSet, results []driver.FormatResult, minSeverity diag.Severity) {
	opts := diagfmt.PrettyOpts{
		Color:       !color.NoColor,
		PathMode:    diagfmt.PathModeAuto,
		ShowNotes:   true,
		MinSeverity: uint8(minSeverity),
	}
	for _, res := range results {
		if res.Bag == nil || res.Bag.Len() == 0 {
			continue
		}
		res.Bag.Sort()
		diagfmt.Pretty(w, res.Bag, fileSet, res.Path, opts)
	}
}

func renderFmtStdout(results []driver.FormatResult, hasErrors *bool) {
	for _, res := range results {
		if res.Err != nil {
			*hasErrors = true
			fmt.Fprintf(os.Stderr, "fmt: %s: %v\n", res.Path, res.Err)
			continue
		}
		if res.Skipped {
			continue
		}
		_, _ = os.Stdout.Write(res.Formatted)
	}
}

func renderFmtText(results []driver.FormatResult, check, quiet bool, hasErrors, hasChanges *bool) {
	changed := color.New(color.FgGreen)
	skipped := color.New(color.FgYellow)
	total, rewritten := 0, 0
	for _, res := range results {
		if res.Err != nil {
			*hasErrors = true
			fmt.Fprintf(os.Stderr, "fmt: %s: %v\n", res.Path, res.Err)
			continue
		}
		if res.Skipped {
			if !quiet {
				fmt.Fprintf(os.Stdout, "%s %s\n", skipped.Sprint("skipped"), res.Path)
			}
			continue
		}
		total++

		if check {
			if res.Changed {
				*hasChanges = true
				rewritten++
				if !quiet {
					_, printErr := fmt.Fprintln(os.Stdout, res.Path)
					if printErr != nil {
						panic(printErr)
					}
				}
			}
			continue
		}

		if res.OutPath != res.Path {
			rewritten++
			if !quiet {
				fmt.Fprintf(os.Stdout, "%s %s -> %s\n", changed.Sprint("formatted"), res.Path, res.OutPath)
			}
		} else if res.Changed {
			rewritten++
			if !quiet {
				fmt.Fprintf(os.Stdout, "%s %s\n", changed.Sprint("reformatted"), res.Path)
			}
		}
		if res.DocPath != "" && !quiet {
			fmt.Fprintf(os.Stdout, "%s %s\n", changed.Sprint("documented"), res.DocPath)
		}
	}
	if !quiet && !check {
		fmt.Fprintf(os.Stdout, "%d file(s) processed, %d written\n", total, rewritten)
	}
}

func renderFmtJSON(w io.Writer, fileSet *source.FileSet, results []driver.FormatResult, check, timings bool, hasErrors, hasChanges *bool) error {
	type jsonResult struct {
		Path        string                   `json:"path"`
		Output      string                   `json:"output,omitempty"`
		Changed     bool                     `json:"changed"`
		Skipped     bool                     `json:"skipped,omitempty"`
		Cached      bool                     `json:"cached,omitempty"`
		Statements  int                      `json:"statements"`
		Lines       int                      `json:"lines"`
		Error       string                   `json:"error,omitempty"`
		CheckRun    bool                     `json:"check"`
		Diagnostics []diagfmt.DiagnosticJSON `json:"diagnostics,omitempty"`
	}
	type jsonPayload struct {
		Files   []jsonResult           `json:"files"`
		Timings []driver.TimingPayload `json:"timings,omitempty"`
	}

	payload := jsonPayload{Files: make([]jsonResult, 0, len(results))}
	for _, res := range results {
		jr := jsonResult{
			Path:       res.Path,
			Changed:    res.Changed,
			Skipped:    res.Skipped,
			Cached:     res.Cached,
			Statements: res.Statements,
			Lines:      res.Lines,
			CheckRun:   check,
		}
		if res.OutPath != res.Path {
			jr.Output = res.OutPath
		}
		if res.Err != nil {
			*hasErrors = true
			jr.Error = res.Err.Error()
		}
		if res.Changed {
			*hasChanges = true
		}
		if res.Bag != nil && res.Bag.Len() > 0 {
			res.Bag.Sort()
			jr.Diagnostics = diagfmt.BuildDiagnostics(res.Bag, fileSet, res.Path, diagfmt.JSONOpts{
				IncludePositions: true,
				IncludeNotes:     true,
			})
		}
		payload.Files = append(payload.Files, jr)
	}
	if timings {
		payload.Timings = driver.CollectTimings(results)
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(payload)
}

func printConflicts(w io.Writer, c driver.Conflicts) {
	warn := color.New(color.FgYellow, color.Bold)
	printNameGroups(w, warn.Sprint("duplicate output names:"), c.Duplicates)
	if len(c.Overwrites) > 0 {
		fmt.Fprintln(w, warn.Sprint("existing output files:"))
		inputs := make(map[string]struct{}, len(c.InputOverwrites))
		for _, p := range c.InputOverwrites {
			inputs[p] = struct{}{}
		}
		for _, p := range c.Overwrites {
			if _, ok := inputs[p]; ok {
				fmt.Fprintf(w, "  %s (input file)\n", p)
			} else {
				fmt.Fprintf(w, "  %s\n", p)
			}
		}
	}
	printNameGroups(w, warn.Sprint("duplicate doc names:"), c.DocDuplicates)
}

func printNameGroups(w io.Writer, title string, groups map[string][]string) {
	if len(groups) == 0 {
		return
	}
	fmt.Fprintln(w, title)
	names := make([]string, 0, len(groups))
	for name := range groups {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(w, "  %s\n", name)
		for _, path := range groups[name] {
			fmt.Fprintf(w, "    %s\n", path)
		}
	}
}
