package parsing

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	emailRe = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)
	phoneRe = regexp.MustCompile(`(\+?\d{1,3}[-.\s]?)?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`)
	urlRe   = regexp.MustCompile(`(https?://\S+)|(www\.\S+)|([a-zA-Z0-9-]+\.(com|org|net|io|dev|me)\b\S*)`)

	locationLabelRe = regexp.MustCompile(`(?i)location:`)
	locationWordRe  = regexp.MustCompile(`(?i)\b(city|state|country)\b`)
	cityStateRe     = regexp.MustCompile(`[A-Z][a-z]+,\s*[A-Z]{2}\b`)

	bulletPrefixRe = regexp.MustCompile(`^[•\-*·●▪◦–]\s*`)
)

// Recognizer is a named, pure matcher over a single line. Find reports the extracted
// value and whether the line matched.
type Recognizer struct {
	Name string
	Find func(line string) (string, bool)
}

// Contact recognizers in the order the profile extractor applies them.
var (
	EmailRecognizer    = Recognizer{Name: "email", Find: FindEmail}
	PhoneRecognizer    = Recognizer{Name: "phone", Find: FindPhone}
	URLRecognizer      = Recognizer{Name: "url", Find: FindURL}
	LocationRecognizer = Recognizer{Name: "location", Find: FindLocation}
)

// ContactRecognizers is the table used to fill the profile contact fields.
var ContactRecognizers = []Recognizer{
	EmailRecognizer,
	PhoneRecognizer,
	URLRecognizer,
	LocationRecognizer,
}

// FindEmail returns the first email address in line.
func FindEmail(line string) (string, bool) {
	m := emailRe.FindString(line)
	return m, m != ""
}

// FindPhone returns the first phone number in line.
func FindPhone(line string) (string, bool) {
	m := phoneRe.FindString(line)
	return m, m != ""
}

// FindURL returns the first URL in line, prefixed with https:// when it has no scheme.
// Email addresses are masked first so their domain is not mistaken for a site.
func FindURL(line string) (string, bool) {
	masked := emailRe.ReplaceAllString(line, " ")
	m := urlRe.FindString(masked)
	if m == "" {
		return "", false
	}
	if !strings.HasPrefix(m, "http") {
		m = "https://" + m
	}
	return m, true
}

// FindLocation reports whether line looks like a location. The returned value is the
// whole line with any "location:" label removed.
func FindLocation(line string) (string, bool) {
	if locationLabelRe.MatchString(line) {
		return strings.TrimSpace(locationLabelRe.ReplaceAllString(line, "")), true
	}
	if locationWordRe.MatchString(line) || cityStateRe.MatchString(line) {
		return strings.TrimSpace(line), true
	}
	return "", false
}

// IsBullet reports whether line starts with a bullet marker.
func IsBullet(line string) bool {
	return bulletPrefixRe.MatchString(line)
}

// StripBullet removes a leading bullet marker and the whitespace after it.
func StripBullet(line string) string {
	return bulletPrefixRe.ReplaceAllString(line, "")
}

// Keyword sets used to locate sections and to detect section boundaries.
var (
	WorkKeywords      = []string{"experience", "work history", "employment", "professional experience"}
	EducationKeywords = []string{"education", "academic", "qualification"}
	SkillsKeywords    = []string{"skills", "technical skills", "core competencies", "expertise"}
	ProjectsKeywords  = []string{"projects", "personal projects", "key projects", "portfolio"}
	SummaryKeywords   = []string{"summary", "objective", "about", "profile", "overview"}

	BoundaryKeywords = []string{
		"experience", "education", "skills", "projects", "summary",
		"objective", "certifications", "awards", "languages", "interests",
		"references", "publications", "volunteer",
	}
)

// maxHeaderLength guards header detection against prose lines that merely mention a keyword.
const maxHeaderLength = 50

// IsSectionHeader reports whether line starts some resume section.
func IsSectionHeader(line string) bool {
	return isHeadingFor(line, BoundaryKeywords)
}

// isHeadingFor applies the header shape rules with the given keyword set.
func isHeadingFor(line string, keywords []string) bool {
	if utf8.RuneCountInString(line) >= maxHeaderLength {
		return false
	}
	lower := strings.ToLower(line)
	for _, k := range keywords {
		if lower == k || strings.HasPrefix(lower, k+":") || strings.HasSuffix(lower, k) {
			return true
		}
	}
	return false
}

// containsAny reports whether the lower-cased line contains any keyword.
func containsAny(line string, keywords []string) bool {
	lower := strings.ToLower(line)
	for _, k := range keywords {
		if strings.Contains(lower, k) {
			return true
		}
	}
	return false
}
