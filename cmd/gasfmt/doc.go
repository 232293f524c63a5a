package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"gasfmt/internal/driver"
)

var docCmd = &cobra.Command{
	Use:   "doc [flags] <path> [path...]",
	Short: "Extract tagged documentation blocks",
	Long: `Collect the /*## Header:, /*## Examples: and /*## Attributes: blocks of
each source into <doc-dir>/<name>_doc.<ext>. Files without tags are skipped.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runDoc,
}

func init() {
	docCmd.Flags().Bool("stdout", false, "print documents to stdout instead of writing files")
	docCmd.Flags().Bool("force", false, "write the first of several files sharing a doc name and skip the rest")
	addFilesFlags(docCmd)
}

func runDoc(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	writeToStdout, err := cmd.Flags().GetBool("stdout")
	if err != nil {
		return err
	}
	force, err := cmd.Flags().GetBool("force")
	if err != nil {
		return err
	}
	recursive, err := cmd.Flags().GetBool("recursive")
	if err != nil {
		return err
	}
	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	if err != nil {
		return err
	}

	proj, err := loadProject(cmd)
	if err != nil {
		return fmt.Errorf("doc: %w", err)
	}
	results, err := driver.ExtractDocs(cmd.Context(), args, driver.DocOptions{
		Files:     proj.Files,
		Recursive: recursive,
		Stdout:    writeToStdout,
		Force:     force,
		Jobs:      proj.Files.Jobs,
		Logger:    logger,
	})
	if ce, ok := driver.IsConflict(err); ok {
		printConflicts(os.Stderr, ce.Conflicts)
	}
	if err != nil {
		return fmt.Errorf("doc: %w", err)
	}

	written := color.New(color.FgGreen)
	hasErrors := false
	found := 0
	for _, res := range results {
		if res.Err != nil {
			hasErrors = true
			fmt.Fprintf(os.Stderr, "doc: %s: %v\n", res.Path, res.Err)
			continue
		}
		if !res.Found {
			continue
		}
		found++
		if res.Skipped {
			if !quiet {
				fmt.Fprintf(os.Stderr, "doc: %s: skipped, doc name already taken\n", res.Path)
			}
			continue
		}
		switch {
		case writeToStdout:
			_, _ = os.Stdout.Write(res.Doc)
		case !quiet:
			fmt.Fprintf(os.Stdout, "%s %s\n", written.Sprint("documented"), res.DocPath)
		}
	}
	if found == 0 && !quiet {
		fmt.Fprintln(os.Stderr, "doc: no documentation tags found")
	}
	if hasErrors {
		return fmt.Errorf("doc: failed to process some files")
	}
	return nil
}
