// Package types provides type definitions for structured data used throughout the resume-importer system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"github.com/go-playground/validator/v10"
)

// DefaultSkillRating is assigned to every featured skill. Extracted text carries no
// proficiency signal, so the rating is cosmetic.
const DefaultSkillRating = 4

// Resume is the structured record produced by the import engine and consumed by the editor.
type Resume struct {
	Profile         Profile          `json:"profile"`
	WorkExperiences []WorkExperience `json:"workExperiences" validate:"min=1,dive"`
	Educations      []Education      `json:"educations" validate:"min=1,dive"`
	Projects        []Project        `json:"projects" validate:"min=1,dive"`
	Skills          Skills           `json:"skills"`
	Custom          Custom           `json:"custom"`
}

// Profile holds the contact block and summary. Any field may be empty.
type Profile struct {
	Name     string `json:"name"`
	Email    string `json:"email" validate:"omitempty,email"`
	Phone    string `json:"phone"`
	URL      string `json:"url"`
	Location string `json:"location"`
	Summary  string `json:"summary"`
}

// WorkExperience is one job entry.
type WorkExperience struct {
	Company      string   `json:"company"`
	JobTitle     string   `json:"jobTitle"`
	Date         string   `json:"date"`
	Descriptions []string `json:"descriptions"`
}

// Education is one school entry.
type Education struct {
	School       string   `json:"school"`
	Degree       string   `json:"degree"`
	Date         string   `json:"date"`
	GPA          string   `json:"gpa"`
	Descriptions []string `json:"descriptions"`
}

// Project is one project entry.
type Project struct {
	Project      string   `json:"project"`
	Date         string   `json:"date"`
	Descriptions []string `json:"descriptions"`
}

// FeaturedSkill is a skill highlighted with a rating.
type FeaturedSkill struct {
	Skill  string `json:"skill"`
	Rating int    `json:"rating" validate:"min=1,max=5"`
}

// Skills holds featured skills and the free-form skill lines.
type Skills struct {
	FeaturedSkills []FeaturedSkill `json:"featuredSkills" validate:"dive"`
	Descriptions   []string        `json:"descriptions"`
}

// Custom is a free-form section kept for schema symmetry with the editor.
type Custom struct {
	Descriptions []string `json:"descriptions"`
}

// NewWorkExperience returns an empty work entry, the editor's placeholder row.
func NewWorkExperience() WorkExperience {
	return WorkExperience{Descriptions: []string{}}
}

// NewEducation returns an empty education entry.
func NewEducation() Education {
	return Education{Descriptions: []string{}}
}

// NewProject returns an empty project entry.
func NewProject() Project {
	return Project{Descriptions: []string{}}
}

// NewSkills returns a skills section with no featured skills and no descriptions.
func NewSkills() Skills {
	return Skills{
		FeaturedSkills: []FeaturedSkill{},
		Descriptions:   []string{},
	}
}

// NewCustom returns an empty custom section.
func NewCustom() Custom {
	return Custom{Descriptions: []string{}}
}

// NewResume returns a resume with every section empty. List sections hold zero entries;
// callers that hand the value to an editor should back-fill placeholders.
func NewResume() *Resume {
	return &Resume{
		WorkExperiences: []WorkExperience{},
		Educations:      []Education{},
		Projects:        []Project{},
		Skills:          NewSkills(),
		Custom:          NewCustom(),
	}
}

// Validate validates the Resume using the validator.
func (r *Resume) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
