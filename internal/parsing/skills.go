package parsing

import (
	"strings"

	"github.com/jonathan/resume-importer/internal/types"
)

// featuredSkillCount is how many skill lines are summarized as featured skills.
const featuredSkillCount = 6

// ExtractSkills collects the lines of the skills section and derives featured skills from
// the first few. A featured skill is the text before the first comma and colon of its line,
// rated types.DefaultSkillRating; this is a summary, not an assessment of proficiency.
func ExtractSkills(lines []string) types.Skills {
	skills := types.NewSkills()
	start := LocateSection(lines, SkillsKeywords)
	if start < 0 {
		return skills
	}

	for _, line := range lines[start+1:] {
		if endsSection(line, SkillsKeywords) {
			break
		}
		skills.Descriptions = append(skills.Descriptions, StripBullet(line))
	}

	for _, d := range skills.Descriptions[:min(featuredSkillCount, len(skills.Descriptions))] {
		name, _, _ := strings.Cut(d, ",")
		name, _, _ = strings.Cut(name, ":")
		skills.FeaturedSkills = append(skills.FeaturedSkills, types.FeaturedSkill{
			Skill:  strings.TrimSpace(name),
			Rating: types.DefaultSkillRating,
		})
	}
	return skills
}
