package parsing

import "github.com/jonathan/resume-importer/internal/types"

var projectKind = entryKind[types.Project]{
	keywords: ProjectsKeywords,
	open:     openProject,
	primary:  func(e *types.Project) string { return e.Project },
	describe: func(e *types.Project, text string) { e.Descriptions = append(e.Descriptions, text) },
}

// ExtractProjects segments the projects section.
func ExtractProjects(lines []string) []types.Project {
	return segmentEntries(lines, projectKind)
}

func openProject(lines []string, i int) (types.Project, int) {
	e := types.NewProject()
	e.Project = lines[i]
	if date, ok := peekDate(lines, i+1, ProjectsKeywords); ok {
		e.Date = date
		return e, 1
	}
	return e, 0
}
