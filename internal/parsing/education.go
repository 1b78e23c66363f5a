package parsing

import (
	"strings"

	"github.com/jonathan/resume-importer/internal/types"
)

var educationKind = entryKind[types.Education]{
	keywords: EducationKeywords,
	open:     openEducation,
	primary:  func(e *types.Education) string { return e.School },
	describe: func(e *types.Education, text string) { e.Descriptions = append(e.Descriptions, text) },
}

// ExtractEducations segments the education section into schools.
func ExtractEducations(lines []string) []types.Education {
	return segmentEntries(lines, educationKind)
}

// openEducation takes lines[i] as the school. The next line is either the date or the
// degree; after a degree, one more line is taken if it carries a GPA or, failing that, a date.
// GPA and date lines may be bulleted.
func openEducation(lines []string, i int) (types.Education, int) {
	e := types.NewEducation()
	e.School = lines[i]

	next := i + 1
	if date, ok := peekDate(lines, next, EducationKeywords); ok {
		e.Date = date
		return e, 1
	}
	if !peekable(lines, next, EducationKeywords) {
		return e, 0
	}
	e.Degree = lines[next]
	if !inSection(lines, next+1, EducationKeywords) {
		return e, 1
	}
	following := StripBullet(lines[next+1])
	if strings.Contains(strings.ToLower(following), "gpa") {
		e.GPA = following
		return e, 2
	}
	if date, ok := peekDate(lines, next+1, EducationKeywords); ok {
		e.Date = date
		return e, 2
	}
	return e, 1
}
