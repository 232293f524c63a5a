package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration gasfmt would use here: the discovered (or --config)
file merged over the defaults, with command line overrides applied. The output
is a valid gasfmt.toml (or YAML with --format yaml).`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().String("format", "toml", "output format (toml|yaml)")
	addReflowFlags(configCmd)
	addFilesFlags(configCmd)
}

func runConfig(cmd *cobra.Command, _ []string) error {
	cmd.SilenceUsage = true

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return err
	}
	format = strings.ToLower(format)
	if format != "toml" && format != "yaml" {
		return fmt.Errorf("config: unsupported format %q (must be toml or yaml)", format)
	}

	proj, err := loadProject(cmd)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	data, err := proj.Marshal(format)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	out := cmd.OutOrStdout()
	if proj.Path != "" {
		fmt.Fprintf(out, "# loaded from %s\n", proj.Path)
	}
	_, err = out.Write(data)
	return err
}
