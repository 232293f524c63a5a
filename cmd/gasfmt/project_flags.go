package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"gasfmt/internal/config"
)

// addReflowFlags registers the flags that override [reflow] values.
func addReflowFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.IntP("width", "w", 0, "maximum line width; 0 puts every statement on its own line, negative disables width breaks")
	f.StringP("toggles", "t", "", "feature toggles, e.g. +kp-ic (k keywords, p prefixes, i indentation, c concat, e terminator, m instructions, a argdef)")
	f.String("endline", "", "terminator placement (off|always|outdent)")
	f.String("terminator", "", "end-of-line terminator text")
	f.String("comma-ws", "", "whitespace written after commas")
	f.String("semicolon-ws", "", "whitespace written after ';' between packed statements")
	f.String("indent-ws", "", "one indentation unit")
	f.String("argdef-ws", "", "whitespace after separators in argument-definition statements")
	f.String("indent-prefixes", "", "comma separated prefixes that open an indented block")
	f.String("outdent-prefixes", "", "comma separated prefixes that close an indented block")
	f.String("this-newline", "", "comma separated prefixes that start a new line")
	f.String("next-newline", "", "comma separated prefixes after which a new line starts")
	f.String("keywords", "", "comma separated substrings that force a new line")
	f.String("extra-instructions", "", "comma separated mnemonics added to the instruction table")
}

// addFilesFlags registers the flags that override [files] values.
func addFilesFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.String("extensions", "", "comma separated file extensions to pick up (default s,asm)")
	f.String("exclude-prefixes", "", "comma separated base-name prefixes to skip")
	f.String("doc-dir", "", "directory for extracted documentation")
	f.Int("doc-dash-width", 0, "column the documentation dash bars extend to")
	f.BoolP("recursive", "r", false, "descend into subdirectories")
	f.IntP("jobs", "j", 0, "parallel workers (0 = GOMAXPROCS)")
	f.Bool("nfc", false, "recompose sources into Unicode NFC before formatting")
}

// loadProject reads the configuration file (explicit or discovered) and
// layers the command line on top of it.
func loadProject(cmd *cobra.Command) (*config.Project, error) {
	path, err := cmd.Root().PersistentFlags().GetString("config")
	if err != nil {
		return nil, err
	}
	proj, err := config.LoadOrDefault(path, ".")
	if err != nil {
		return nil, err
	}
	if proj.Path != "" {
		logger.Debug("config loaded", zap.String("path", proj.Path))
	}
	if err := applyReflowFlags(cmd, &proj.Reflow); err != nil {
		return nil, err
	}
	if err := applyFilesFlags(cmd, &proj.Files); err != nil {
		return nil, err
	}
	return proj, nil
}

func applyReflowFlags(cmd *cobra.Command, cfg *config.Config) error {
	f := cmd.Flags()
	if f.Lookup("width") == nil {
		return nil
	}
	if f.Changed("width") {
		w, err := f.GetInt("width")
		if err != nil {
			return err
		}
		cfg.Width = w
	}

	ws := func(name string) (*string, error) {
		if !f.Changed(name) {
			return nil, nil
		}
		v, err := f.GetString(name)
		return &v, err
	}
	comma, err := ws("comma-ws")
	if err != nil {
		return err
	}
	semicolon, err := ws("semicolon-ws")
	if err != nil {
		return err
	}
	indent, err := ws("indent-ws")
	if err != nil {
		return err
	}
	argdef, err := ws("argdef-ws")
	if err != nil {
		return err
	}
	cfg.SetWhitespace(comma, semicolon, indent, argdef)

	if f.Changed("terminator") {
		if cfg.Terminator, err = f.GetString("terminator"); err != nil {
			return err
		}
	}

	lists := []struct {
		flag string
		dst  *[]string
	}{
		{"indent-prefixes", &cfg.IndentOpen},
		{"outdent-prefixes", &cfg.IndentClose},
		{"this-newline", &cfg.ForceThisLine},
		{"next-newline", &cfg.ForceNextLine},
		{"keywords", &cfg.ForceKeywords},
	}
	for _, l := range lists {
		if !f.Changed(l.flag) {
			continue
		}
		v, err := f.GetString(l.flag)
		if err != nil {
			return err
		}
		*l.dst = config.SplitList(v)
	}
	if f.Changed("extra-instructions") {
		v, err := f.GetString("extra-instructions")
		if err != nil {
			return err
		}
		cfg.Instructions = append(cfg.Instructions, config.SplitList(v)...)
	}

	if f.Changed("endline") {
		v, err := f.GetString("endline")
		if err != nil {
			return err
		}
		mode, err := config.ParseTerminatorMode(v)
		if err != nil {
			return err
		}
		cfg.TerminatorMode = mode
	}
	// переключатели применяются последними, как в файле конфигурации
	if f.Changed("toggles") {
		v, err := f.GetString("toggles")
		if err != nil {
			return err
		}
		if err := cfg.ApplyToggles(v); err != nil {
			return err
		}
	}
	return nil
}

func applyFilesFlags(cmd *cobra.Command, files *config.Files) error {
	f := cmd.Flags()
	if f.Lookup("extensions") == nil {
		return nil
	}
	if f.Changed("extensions") {
		v, err := f.GetString("extensions")
		if err != nil {
			return err
		}
		exts := config.SplitList(v)
		for i, ext := range exts {
			exts[i] = strings.TrimPrefix(strings.TrimSpace(ext), ".")
		}
		files.Extensions = exts
	}
	if f.Changed("exclude-prefixes") {
		v, err := f.GetString("exclude-prefixes")
		if err != nil {
			return err
		}
		files.ExcludePrefixes = config.SplitList(v)
	}
	if f.Changed("doc-dir") {
		v, err := f.GetString("doc-dir")
		if err != nil {
			return err
		}
		files.DocDir = v
	}
	if f.Changed("doc-dash-width") {
		v, err := f.GetInt("doc-dash-width")
		if err != nil {
			return err
		}
		files.DocDashWidth = v
	}
	if f.Changed("jobs") {
		v, err := f.GetInt("jobs")
		if err != nil {
			return err
		}
		if v < 0 {
			return fmt.Errorf("--jobs must be >= 0, got %d", v)
		}
		files.Jobs = v
	}
	if f.Changed("nfc") {
		v, err := f.GetBool("nfc")
		if err != nil {
			return err
		}
		files.NFC = v
	}
	if len(files.Extensions) == 0 {
		return errors.New("--extensions must not be empty")
	}
	return nil
}
