package parsing

import "regexp"

const monthPattern = `(?:Jan(?:uary)?|Feb(?:ruary)?|Mar(?:ch)?|Apr(?:il)?|May|June?|July?|Aug(?:ust)?|Sep(?:t(?:ember)?)?|Oct(?:ober)?|Nov(?:ember)?|Dec(?:ember)?)\.?`

const dash = `\s*[-–—]\s*`

// dateHints are the loose "this line mentions a date" patterns.
var dateHints = []*regexp.Regexp{
	regexp.MustCompile(`\d{4}` + dash + `\d{4}`),
	regexp.MustCompile(`(?i)\d{4}` + dash + `present`),
	regexp.MustCompile(`\b` + monthPattern + `\s+\d{4}`),
	regexp.MustCompile(`\b\d{1,2}/\d{4}`),
}

// dateRanges extract the date portion of a line. ExtractDate keeps the longest match.
var dateRanges = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\d{4}` + dash + `(?:\d{4}|present)`),
	regexp.MustCompile(`(?i)\b` + monthPattern + `\s+\d{4}` + dash + `(?:` + monthPattern + `\s+\d{4}|present)`),
	regexp.MustCompile(`(?i)\b\d{1,2}/\d{4}` + dash + `(?:\d{1,2}/\d{4}|present)`),
}

// ContainsDate reports whether line mentions a date or date range.
func ContainsDate(line string) bool {
	for _, re := range dateHints {
		if re.MatchString(line) {
			return true
		}
	}
	return false
}

// ExtractDate returns the most specific date range in line. When no range pattern
// matches, the whole line is returned unchanged; callers only invoke it after
// ContainsDate, so a single date such as "May 2019" comes back with its surrounding text.
func ExtractDate(line string) string {
	best := ""
	for _, re := range dateRanges {
		if m := re.FindString(line); len(m) > len(best) {
			best = m
		}
	}
	if best == "" {
		return line
	}
	return best
}
