package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/term"

	"gasfmt/internal/prof"
	"gasfmt/internal/version"
)

var (
	// logger is built once the flags are parsed; commands never see nil.
	logger   = zap.NewNop()
	profiles *prof.Session
)

var rootCmd = &cobra.Command{
	Use:   "gasfmt",
	Short: "GNU assembler source reformatter",
	Long: `gasfmt normalizes GNU as sources and packs statements into width-bounded
lines joined with ';', keeping macro and conditional blocks indented.`,
	SilenceUsage:      true,
	PersistentPreRunE: setupGlobals,
}

// main registers subcommands and persistent flags, then executes the root
// command. Any error exits with status 1.
func main() {
	// Устанавливаем версию для автоматического флага --version
	rootCmd.Version = version.Version
	rootCmd.SetVersionTemplate(version.Line() + "\n")

	rootCmd.AddCommand(fmtCmd)
	rootCmd.AddCommand(docCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(cleanCmd)

	addGlobalFlags(rootCmd)

	if err := execute(rootCmd); err != nil {
		fmt.Fprintf(os.Stderr, "%s %v\n", color.New(color.FgRed, color.Bold).Sprint("error:"), err)
		os.Exit(1)
	}
}

// addGlobalFlags регистрирует глобальные флаги на корневой команде
func addGlobalFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()
	flags.String("config", "", "path to gasfmt.toml (default: search upwards from the working directory)")
	flags.String("color", "auto", "colorize output (auto|on|off)")
	flags.Bool("quiet", false, "suppress non-essential output")
	flags.BoolP("verbose", "v", false, "enable debug logging")
	flags.Bool("timings", false, "show timing information")
	flags.Int("max-diagnostics", 100, "maximum number of diagnostics kept per file")
	flags.String("cpu-profile", "", "write a CPU profile to this file")
	flags.String("mem-profile", "", "write a heap profile to this file on exit")
	flags.String("runtime-trace", "", "write a runtime trace to this file")
}

// execute runs cmd, then stops the profilers and flushes the logger whether
// or not the command failed.
func execute(cmd *cobra.Command) error {
	err := cmd.Execute()
	if stopErr := profiles.Stop(); stopErr != nil {
		logger.Warn("profiling", zap.Error(stopErr))
	}
	profiles = nil
	_ = logger.Sync()
	return err
}

func setupGlobals(cmd *cobra.Command, _ []string) error {
	colorMode, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return err
	}
	useColor, err := resolveColor(colorMode)
	if err != nil {
		return err
	}
	color.NoColor = !useColor

	verbose, err := cmd.Root().PersistentFlags().GetBool("verbose")
	if err != nil {
		return err
	}
	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	if err != nil {
		return err
	}
	if logger, err = newLogger(verbose, quiet); err != nil {
		return err
	}
	profiles, err = setupProfiling(cmd)
	return err
}

func newLogger(verbose, quiet bool) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	config.Encoding = "console"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.DisableStacktrace = true
	switch {
	case verbose:
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	case quiet:
		config.Level = zap.NewAtomicLevelAt(zapcore.ErrorLevel)
	default:
		config.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	}
	l, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return l, nil
}

func resolveColor(mode string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "", "auto":
		return isTerminal(os.Stdout) && os.Getenv("NO_COLOR") == "", nil
	case "on", "always":
		return true, nil
	case "off", "never":
		return false, nil
	default:
		return false, fmt.Errorf("invalid --color value %q (expected auto|on|off)", mode)
	}
}

// isTerminal проверяет, является ли файл терминалом
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
