package main

import (
	"fmt"

	"github.com/jonathan/resume-importer/internal/schemas"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate <file.resume.json>...",
	Short: "Validate resume JSON files against the resume schema",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	failed := 0
	for _, path := range args {
		if err := schemas.ValidateResumeFile(path); err != nil {
			failed++
			fmt.Fprintf(cmd.OutOrStdout(), "FAIL %s\n%v\n", path, err)
			continue
		}
		fmt.Fprintf(cmd.OutOrStdout(), "ok   %s\n", path)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d files failed validation", failed, len(args))
	}
	return nil
}
