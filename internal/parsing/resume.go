package parsing

import "github.com/jonathan/resume-importer/internal/types"

// Parse converts raw resume text into a structured resume.
func Parse(text string) *types.Resume {
	return ParseLines(SplitLines(text))
}

// ParseLines runs every extractor over the same line sequence and assembles the result.
// Each list section that came back empty receives exactly one placeholder entry.
func ParseLines(lines []string) *types.Resume {
	resume := &types.Resume{
		Profile:         ExtractProfile(lines),
		WorkExperiences: ExtractWorkExperiences(lines),
		Educations:      ExtractEducations(lines),
		Projects:        ExtractProjects(lines),
		Skills:          ExtractSkills(lines),
		Custom:          types.NewCustom(),
	}

	if len(resume.WorkExperiences) == 0 {
		resume.WorkExperiences = []types.WorkExperience{types.NewWorkExperience()}
	}
	if len(resume.Educations) == 0 {
		resume.Educations = []types.Education{types.NewEducation()}
	}
	if len(resume.Projects) == 0 {
		resume.Projects = []types.Project{types.NewProject()}
	}
	return resume
}
