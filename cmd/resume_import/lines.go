package main

import (
	"fmt"
	"io"

	"github.com/jonathan/resume-importer/internal/ingestion"
	"github.com/jonathan/resume-importer/internal/parsing"
	"github.com/spf13/cobra"
)

var linesCmd = &cobra.Command{
	Use:   "lines <file>",
	Short: "Show the normalized lines the parser sees",
	Long: `Extract a document and print its normalized line sequence, marking section headers (H)
and bullets (*). With --sections, also print where each section starts.`,
	Args: cobra.ExactArgs(1),
	RunE: runLines,
}

var linesSections bool

func init() {
	linesCmd.Flags().BoolVar(&linesSections, "sections", false, "Print the detected section start lines")
	rootCmd.AddCommand(linesCmd)
}

func runLines(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	opts := &ingestion.Options{
		MaxFileSize: cfg.MaxFileSize,
		Logger:      newLogger(cmd.ErrOrStderr(), cfg.Verbose),
	}
	doc, err := ingestion.FromFile(cmd.Context(), args[0], opts)
	if err != nil {
		return err
	}

	lines := doc.Lines()
	printLines(cmd.OutOrStdout(), lines)
	if linesSections {
		printSections(cmd.OutOrStdout(), lines)
	}
	return nil
}

//nolint:errcheck // writing to stdout
func printLines(out io.Writer, lines []string) {
	for i, line := range lines {
		mark := " "
		switch {
		case parsing.IsSectionHeader(line):
			mark = "H"
		case parsing.IsBullet(line):
			mark = "*"
		}
		fmt.Fprintf(out, "%4d %s %s\n", i, mark, line)
	}
}

//nolint:errcheck // writing to stdout
func printSections(out io.Writer, lines []string) {
	sections := []struct {
		name     string
		keywords []string
	}{
		{"summary", parsing.SummaryKeywords},
		{"experience", parsing.WorkKeywords},
		{"education", parsing.EducationKeywords},
		{"projects", parsing.ProjectsKeywords},
		{"skills", parsing.SkillsKeywords},
	}

	fmt.Fprintln(out)
	for _, s := range sections {
		if i := parsing.LocateSection(lines, s.keywords); i >= 0 {
			fmt.Fprintf(out, "%-10s line %d\n", s.name, i)
		} else {
			fmt.Fprintf(out, "%-10s not found\n", s.name)
		}
	}
}
