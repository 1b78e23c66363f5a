package ingestion

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	innerSpaceRe  = regexp.MustCompile(`[ \t\f\v\x{00A0}\x{2007}\x{202F}]+`)
	blankRunRe    = regexp.MustCompile(`\n\n\n+`)
	mdHeadingRe   = regexp.MustCompile(`^#{1,6}\s+`)
	mdLinkRe      = regexp.MustCompile(`\[([^\]]+)\]\(([^)\s]+)\)`)
	mdEmphasisRe  = regexp.MustCompile(`(\*\*|__)(.+?)(\*\*|__)`)
	zeroWidthRepl = strings.NewReplacer("\u200b", "", "\u200c", "", "\u200d", "", "\ufeff", "")
)

// CleanText cleans and normalizes extracted text content while preserving line structure
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	// 1. Normalize line endings (CRLF → LF)
	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	// 2. Drop invisible characters PDF and Word exports like to leave behind
	content = zeroWidthRepl.Replace(content)

	// 3. Process each line
	lines := strings.Split(content, "\n")
	cleanedLines := make([]string, 0, len(lines))
	for _, line := range lines {
		cleanedLines = append(cleanedLines, cleanLine(line))
	}

	// 4. Join lines and remove excessive blank lines (max 2 consecutive)
	result := blankRunRe.ReplaceAllString(strings.Join(cleanedLines, "\n"), "\n\n")

	return strings.TrimSpace(result)
}

// cleanLine collapses runs of horizontal whitespace, including no-break spaces
func cleanLine(line string) string {
	return strings.TrimSpace(innerSpaceRe.ReplaceAllString(line, " "))
}

// decodeText turns raw bytes into a string, replacing invalid UTF-8.
func decodeText(data []byte) string {
	s := string(data)
	if !utf8.ValidString(s) {
		s = strings.ToValidUTF8(s, "\uFFFD")
	}
	return s
}

// stripMarkdown removes heading markers, emphasis and link syntax from each line.
// List markers are kept; the parser treats them as bullets.
func stripMarkdown(content string) string {
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		line = mdHeadingRe.ReplaceAllString(strings.TrimSpace(line), "")
		line = mdLinkRe.ReplaceAllString(line, "$1 $2")
		line = mdEmphasisRe.ReplaceAllString(line, "$2")
		lines[i] = line
	}
	return strings.Join(lines, "\n")
}
