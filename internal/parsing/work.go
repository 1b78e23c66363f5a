package parsing

import "github.com/jonathan/resume-importer/internal/types"

var workKind = entryKind[types.WorkExperience]{
	keywords: WorkKeywords,
	open:     openWorkExperience,
	primary:  func(e *types.WorkExperience) string { return e.Company },
	describe: func(e *types.WorkExperience, text string) { e.Descriptions = append(e.Descriptions, text) },
}

// ExtractWorkExperiences segments the work history section into jobs.
func ExtractWorkExperiences(lines []string) []types.WorkExperience {
	return segmentEntries(lines, workKind)
}

// openWorkExperience takes lines[i] as the company. The next line is either the date or
// the job title; a title may itself be followed by a date line. Date lines may be bulleted.
func openWorkExperience(lines []string, i int) (types.WorkExperience, int) {
	e := types.NewWorkExperience()
	e.Company = lines[i]

	next := i + 1
	if date, ok := peekDate(lines, next, WorkKeywords); ok {
		e.Date = date
		return e, 1
	}
	if !peekable(lines, next, WorkKeywords) {
		return e, 0
	}
	e.JobTitle = lines[next]
	if date, ok := peekDate(lines, next+1, WorkKeywords); ok {
		e.Date = date
		return e, 2
	}
	return e, 1
}
