// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	"github.com/jonathan/resume-importer/internal/ingestion"
	"github.com/jonathan/resume-importer/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// truncate shortens s to at most n runes, marking the cut with "...".
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(line, boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// orEmpty renders blank fields visibly.
func orEmpty(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

// moreLine reports how many items were left out of a list.
func moreLine(sb *strings.Builder, total int, what string) {
	if total > maxItemsToShow {
		fmt.Fprintf(sb, "... and %d more %s\n", total-maxItemsToShow, what)
	}
}

// PrintResume outputs a human-readable summary of a segmented resume.
func (p *Printer) PrintResume(r *types.Resume) {
	if r == nil {
		return
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Name:     %s\n", orEmpty(r.Profile.Name))
	fmt.Fprintf(&sb, "Email:    %s\n", orEmpty(r.Profile.Email))
	fmt.Fprintf(&sb, "Phone:    %s\n", orEmpty(r.Profile.Phone))
	fmt.Fprintf(&sb, "URL:      %s\n", orEmpty(r.Profile.URL))
	fmt.Fprintf(&sb, "Location: %s\n", orEmpty(r.Profile.Location))
	if r.Profile.Summary != "" {
		fmt.Fprintf(&sb, "\nSummary:  %s\n", r.Profile.Summary)
	}
	p.printBox("PARSED PROFILE", strings.TrimSuffix(sb.String(), "\n"))

	p.printWork(r.WorkExperiences)
	p.printEducation(r.Educations)
	p.printProjects(r.Projects)
	p.printSkills(r.Skills)
}

func (p *Printer) printWork(entries []types.WorkExperience) {
	var sb strings.Builder
	for i, e := range entries[:min(len(entries), maxItemsToShow)] {
		if i > 0 {
			sb.WriteString("\n")
		}
		if e.Company == "" && e.JobTitle == "" && e.Date == "" && len(e.Descriptions) == 0 {
			sb.WriteString("(empty)\n")
			continue
		}
		fmt.Fprintf(&sb, "• %s\n", orEmpty(e.Company))
		fmt.Fprintf(&sb, "  %s  %s\n", orEmpty(e.JobTitle), e.Date)
		if n := len(e.Descriptions); n > 0 {
			fmt.Fprintf(&sb, "  %d bullet(s)\n", n)
		}
	}
	moreLine(&sb, len(entries), "jobs")
	p.printBox(fmt.Sprintf("WORK EXPERIENCE (%d)", len(entries)), strings.TrimSuffix(sb.String(), "\n"))
}

func (p *Printer) printEducation(entries []types.Education) {
	var sb strings.Builder
	for _, e := range entries[:min(len(entries), maxItemsToShow)] {
		if e.School == "" && e.Degree == "" && e.Date == "" && e.GPA == "" && len(e.Descriptions) == 0 {
			sb.WriteString("(empty)\n")
			continue
		}
		fmt.Fprintf(&sb, "• %s\n", orEmpty(e.School))
		fmt.Fprintf(&sb, "  %s  %s\n", orEmpty(e.Degree), e.Date)
		if e.GPA != "" {
			fmt.Fprintf(&sb, "  GPA %s\n", e.GPA)
		}
	}
	moreLine(&sb, len(entries), "schools")
	p.printBox(fmt.Sprintf("EDUCATION (%d)", len(entries)), strings.TrimSuffix(sb.String(), "\n"))
}

func (p *Printer) printProjects(entries []types.Project) {
	var sb strings.Builder
	for _, e := range entries[:min(len(entries), maxItemsToShow)] {
		if e.Project == "" && e.Date == "" && len(e.Descriptions) == 0 {
			sb.WriteString("(empty)\n")
			continue
		}
		fmt.Fprintf(&sb, "• %s  %s\n", orEmpty(e.Project), e.Date)
	}
	moreLine(&sb, len(entries), "projects")
	p.printBox(fmt.Sprintf("PROJECTS (%d)", len(entries)), strings.TrimSuffix(sb.String(), "\n"))
}

func (p *Printer) printSkills(skills types.Skills) {
	if len(skills.FeaturedSkills) == 0 && len(skills.Descriptions) == 0 {
		return
	}

	var sb strings.Builder
	if len(skills.FeaturedSkills) > 0 {
		names := make([]string, len(skills.FeaturedSkills))
		for i, s := range skills.FeaturedSkills {
			names[i] = fmt.Sprintf("%s (%d)", s.Skill, s.Rating)
		}
		fmt.Fprintf(&sb, "Featured: %s\n", strings.Join(names, ", "))
	}
	for _, line := range skills.Descriptions[:min(len(skills.Descriptions), maxItemsToShow)] {
		fmt.Fprintf(&sb, "• %s\n", line)
	}
	moreLine(&sb, len(skills.Descriptions), "lines")
	p.printBox("SKILLS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintMetadata outputs where a document came from and how it was read.
func (p *Printer) PrintMetadata(meta *ingestion.Metadata) {
	if meta == nil {
		return
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Source:   %s\n", meta.Source)
	if meta.URL != "" && meta.URL != meta.Source {
		fmt.Fprintf(&sb, "URL:      %s\n", meta.URL)
	}
	fmt.Fprintf(&sb, "Format:   %s\n", meta.Format.Label())
	fmt.Fprintf(&sb, "Size:     %d bytes, %d lines\n", meta.Bytes, meta.LineCount)
	fmt.Fprintf(&sb, "SHA-256:  %s\n", truncate(meta.Hash, 19))
	if meta.Rendered {
		sb.WriteString("Rendered: headless browser\n")
	}
	p.printBox("DOCUMENT", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintFailures outputs the sources that could not be imported.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintFailures(failures map[string]error) {
	if len(failures) == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "✅ ALL SOURCES IMPORTED")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	sources := make([]string, 0, len(failures))
	for source := range failures {
		sources = append(sources, source)
	}
	slices.Sort(sources)

	var sb strings.Builder
	fmt.Fprintf(&sb, "Failed to import %d source(s):\n\n", len(failures))
	for i, source := range sources {
		fmt.Fprintf(&sb, "⚠ %s\n", source)
		fmt.Fprintf(&sb, "  %s\n", truncate(failures[source].Error(), boxWidth-6))
		if i < len(sources)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("IMPORT FAILURES", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintSummary outputs the totals of a batch import.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintSummary(total, failed int, elapsed time.Duration) {
	fmt.Fprintf(p.out, "Imported %d/%d resume(s) in %s\n", total-failed, total, elapsed.Round(time.Millisecond))
}
