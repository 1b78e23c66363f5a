package parsing

import (
	"strings"

	"github.com/jonathan/resume-importer/internal/types"
)

const (
	// contactScanLines bounds the contact-field scan to the top of the document.
	contactScanLines = 10
	// summaryMaxLines is the number of lines collected after the summary heading.
	summaryMaxLines = 4
)

// ExtractProfile builds the profile block. The name is the first line, contact fields come
// from the first contactScanLines lines with the first match per field winning, and the
// summary is the text after the first summary keyword line.
func ExtractProfile(lines []string) types.Profile {
	var profile types.Profile
	if len(lines) == 0 {
		return profile
	}
	profile.Name = lines[0]

	fields := map[string]*string{
		EmailRecognizer.Name:    &profile.Email,
		PhoneRecognizer.Name:    &profile.Phone,
		URLRecognizer.Name:      &profile.URL,
		LocationRecognizer.Name: &profile.Location,
	}
	for _, line := range lines[:min(contactScanLines, len(lines))] {
		for _, rec := range ContactRecognizers {
			field := fields[rec.Name]
			if *field != "" {
				continue
			}
			if v, ok := rec.Find(line); ok {
				*field = v
			}
		}
	}

	profile.Summary = extractSummary(lines)
	return profile
}

// extractSummary joins up to summaryMaxLines lines after the first line mentioning a
// summary keyword anywhere in the document, stopping at the next section header.
// Unlike the entry sections, a heading-shaped line is not preferred.
func extractSummary(lines []string) string {
	start := FindSectionStart(lines, SummaryKeywords)
	if start < 0 {
		return ""
	}
	var collected []string
	for _, line := range lines[start+1 : min(start+1+summaryMaxLines, len(lines))] {
		if IsSectionHeader(line) {
			break
		}
		collected = append(collected, line)
	}
	return strings.Join(collected, " ")
}
