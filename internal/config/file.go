package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// FileName is the project configuration file searched for by Find.
const FileName = "gasfmt.toml"

// Files holds the orchestration settings that never reach the core
// pipeline: which files are picked up and where results go.
type Files struct {
	Extensions      []string
	ExcludePrefixes []string
	OutputDir       string
	DocDir          string
	DocDashWidth    int
	Jobs            int
	NFC             bool
}

// DefaultFiles returns the stock file selection rules.
func DefaultFiles() Files {
	return Files{
		Extensions:      []string{"s", "asm"},
		ExcludePrefixes: []string{"_proto_", "_outline_", "_scratch_"},
		DocDashWidth:    99,
	}
}

// Project bundles everything read from a configuration file.
type Project struct {
	Path   string
	Reflow Config
	Files  Files
}

// fileConfig mirrors the on-disk layout. Pointer fields distinguish "unset"
// from zero values so partial files only override what they name.
type fileConfig struct {
	Reflow reflowSection `toml:"reflow" yaml:"reflow"`
	Files  filesSection  `toml:"files" yaml:"files"`
}

type reflowSection struct {
	Width       *int    `toml:"width" yaml:"width"`
	CommaWS     *string `toml:"comma_ws" yaml:"comma_ws"`
	SemicolonWS *string `toml:"semicolon_ws" yaml:"semicolon_ws"`
	IndentWS    *string `toml:"indent_ws" yaml:"indent_ws"`
	ArgdefWS    *string `toml:"argdef_ws" yaml:"argdef_ws"`
	Terminator  *string `toml:"terminator" yaml:"terminator"`

	IndentPrefixes  []string `toml:"indent_prefixes" yaml:"indent_prefixes"`
	OutdentPrefixes []string `toml:"outdent_prefixes" yaml:"outdent_prefixes"`
	ThisNewline     []string `toml:"this_newline_prefixes" yaml:"this_newline_prefixes"`
	NextNewline     []string `toml:"next_newline_prefixes" yaml:"next_newline_prefixes"`
	Keywords        []string `toml:"newline_keywords" yaml:"newline_keywords"`
	Instructions    []string `toml:"instructions" yaml:"instructions"`
	ExtraInstr      []string `toml:"extra_instructions,omitempty" yaml:"extra_instructions,omitempty"`

	PrefixBreaks      *bool   `toml:"prefix_breaks" yaml:"prefix_breaks"`
	KeywordBreaks     *bool   `toml:"keyword_breaks" yaml:"keyword_breaks"`
	Indentation       *bool   `toml:"indentation" yaml:"indentation"`
	InstructionBreaks *bool   `toml:"instruction_breaks" yaml:"instruction_breaks"`
	ConcatOutdent     *bool   `toml:"concat_outdent" yaml:"concat_outdent"`
	ArgdefWhitespace  *bool   `toml:"argdef_whitespace" yaml:"argdef_whitespace"`
	EndlineMode       *string `toml:"endline" yaml:"endline"`
	Toggles           string  `toml:"toggles,omitempty" yaml:"toggles,omitempty"`
}

type filesSection struct {
	Extensions      []string `toml:"extensions" yaml:"extensions"`
	ExcludePrefixes []string `toml:"exclude_prefixes" yaml:"exclude_prefixes"`
	OutputDir       *string  `toml:"output_dir,omitempty" yaml:"output_dir,omitempty"`
	DocDir          *string  `toml:"doc_dir,omitempty" yaml:"doc_dir,omitempty"`
	DocDashWidth    *int     `toml:"doc_dash_width" yaml:"doc_dash_width"`
	Jobs            *int     `toml:"jobs" yaml:"jobs"`
	NFC             *bool    `toml:"nfc" yaml:"nfc"`
}

// Find walks up from startDir looking for FileName.
func Find(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// Load reads a TOML (or .yaml/.yml) configuration file on top of the
// defaults. Relative directories in [files] are resolved against the file's
// directory.
func Load(path string) (*Project, error) {
	// #nosec G304 -- path is provided by the caller
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var fc fileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &fc); err != nil {
			return nil, fmt.Errorf("%s: failed to parse YAML: %w", path, err)
		}
	default:
		if _, err := toml.Decode(string(data), &fc); err != nil {
			return nil, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
		}
	}

	proj := &Project{Path: path, Reflow: Default(), Files: DefaultFiles()}
	if err := fc.Reflow.apply(&proj.Reflow); err != nil {
		return nil, fmt.Errorf("%s: [reflow]: %w", path, err)
	}
	if err := fc.Files.apply(&proj.Files, filepath.Dir(path)); err != nil {
		return nil, fmt.Errorf("%s: [files]: %w", path, err)
	}
	return proj, nil
}

// LoadOrDefault loads path when given, otherwise searches for FileName from
// startDir. Without any file the defaults are returned.
func LoadOrDefault(path, startDir string) (*Project, error) {
	if path == "" {
		found, ok, err := Find(startDir)
		if err != nil {
			return nil, err
		}
		if !ok {
			return &Project{Reflow: Default(), Files: DefaultFiles()}, nil
		}
		path = found
	}
	return Load(path)
}

// Marshal encodes the project back into the file layout: YAML when format is
// "yaml", TOML otherwise. Loading the result yields the same settings.
func (p *Project) Marshal(format string) ([]byte, error) {
	c := p.Reflow
	fc := fileConfig{
		Reflow: reflowSection{
			Width:             &c.Width,
			CommaWS:           ptr(strings.TrimPrefix(c.CommaSep, ",")),
			SemicolonWS:       ptr(strings.TrimPrefix(c.SemicolonSep, ";")),
			IndentWS:          &c.IndentUnit,
			ArgdefWS:          ptr(strings.TrimPrefix(c.ArgdefComma, ",")),
			Terminator:        &c.Terminator,
			IndentPrefixes:    c.IndentOpen,
			OutdentPrefixes:   c.IndentClose,
			ThisNewline:       c.ForceThisLine,
			NextNewline:       c.ForceNextLine,
			Keywords:          c.ForceKeywords,
			Instructions:      c.Instructions,
			PrefixBreaks:      &c.PrefixBreaks,
			KeywordBreaks:     &c.KeywordBreaks,
			Indentation:       &c.Indentation,
			InstructionBreaks: &c.InstructionBreaks,
			ConcatOutdent:     &c.ConcatOutdent,
			ArgdefWhitespace:  &c.ArgdefWhitespace,
			EndlineMode:       ptr(c.TerminatorMode.String()),
		},
		Files: filesSection{
			Extensions:      p.Files.Extensions,
			ExcludePrefixes: p.Files.ExcludePrefixes,
			DocDashWidth:    &p.Files.DocDashWidth,
			Jobs:            &p.Files.Jobs,
			NFC:             &p.Files.NFC,
		},
	}
	if p.Files.OutputDir != "" {
		fc.Files.OutputDir = &p.Files.OutputDir
	}
	if p.Files.DocDir != "" {
		fc.Files.DocDir = &p.Files.DocDir
	}

	if strings.EqualFold(format, "yaml") {
		return yaml.Marshal(&fc)
	}
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(&fc); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func ptr[T any](v T) *T { return &v }

func (r *reflowSection) apply(c *Config) error {
	if r.Width != nil {
		c.Width = *r.Width
	}
	c.SetWhitespace(r.CommaWS, r.SemicolonWS, r.IndentWS, r.ArgdefWS)
	if r.Terminator != nil {
		c.Terminator = *r.Terminator
	}

	setList(&c.IndentOpen, r.IndentPrefixes)
	setList(&c.IndentClose, r.OutdentPrefixes)
	setList(&c.ForceThisLine, r.ThisNewline)
	setList(&c.ForceNextLine, r.NextNewline)
	setList(&c.ForceKeywords, r.Keywords)
	setList(&c.Instructions, r.Instructions)
	c.Instructions = append(c.Instructions, r.ExtraInstr...)

	setBool(&c.PrefixBreaks, r.PrefixBreaks)
	setBool(&c.KeywordBreaks, r.KeywordBreaks)
	setBool(&c.Indentation, r.Indentation)
	setBool(&c.InstructionBreaks, r.InstructionBreaks)
	setBool(&c.ConcatOutdent, r.ConcatOutdent)
	setBool(&c.ArgdefWhitespace, r.ArgdefWhitespace)
	if r.EndlineMode != nil {
		mode, err := ParseTerminatorMode(*r.EndlineMode)
		if err != nil {
			return err
		}
		c.TerminatorMode = mode
	}
	if r.Toggles != "" {
		if err := c.ApplyToggles(r.Toggles); err != nil {
			return err
		}
	}
	return nil
}

func (f *filesSection) apply(files *Files, baseDir string) error {
	if f.Extensions != nil {
		exts := SplitList(strings.Join(f.Extensions, ","))
		if len(exts) == 0 {
			return errors.New("extensions must not be empty")
		}
		for i, ext := range exts {
			exts[i] = strings.TrimPrefix(ext, ".")
		}
		files.Extensions = exts
	}
	setList(&files.ExcludePrefixes, f.ExcludePrefixes)
	if f.OutputDir != nil {
		files.OutputDir = resolveDir(baseDir, *f.OutputDir)
	}
	if f.DocDir != nil {
		files.DocDir = resolveDir(baseDir, *f.DocDir)
	}
	if f.DocDashWidth != nil {
		files.DocDashWidth = *f.DocDashWidth
	}
	if f.Jobs != nil {
		if *f.Jobs < 0 {
			return fmt.Errorf("jobs must be >= 0, got %d", *f.Jobs)
		}
		files.Jobs = *f.Jobs
	}
	setBool(&files.NFC, f.NFC)
	return nil
}

// SplitList parses a comma separated prefix list the way the command line
// accepts it: entries keep trailing spaces (".macro " differs from ".macro")
// but lose leading ones; empty entries are dropped.
func SplitList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimLeft(p, " ")
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}

func setList(dst *[]string, src []string) {
	if src != nil {
		*dst = src
	}
}

func setBool(dst *bool, src *bool) {
	if src != nil {
		*dst = *src
	}
}

func resolveDir(base, dir string) string {
	dir = strings.TrimSpace(dir)
	if dir == "" || filepath.IsAbs(dir) {
		return dir
	}
	return filepath.Join(base, filepath.FromSlash(dir))
}
