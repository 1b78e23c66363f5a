package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewResume_ListsMarshalAsEmptyArrays(t *testing.T) {
	data, err := json.Marshal(NewResume())
	require.NoError(t, err)

	s := string(data)
	assert.Contains(t, s, `"workExperiences":[]`)
	assert.Contains(t, s, `"educations":[]`)
	assert.Contains(t, s, `"projects":[]`)
	assert.Contains(t, s, `"featuredSkills":[]`)
	assert.Contains(t, s, `"custom":{"descriptions":[]}`)
	assert.NotContains(t, s, "null")
}

func TestPlaceholders_AreEmpty(t *testing.T) {
	work := NewWorkExperience()
	assert.Empty(t, work.Company)
	assert.Empty(t, work.JobTitle)
	assert.Empty(t, work.Date)
	assert.NotNil(t, work.Descriptions)
	assert.Empty(t, work.Descriptions)

	edu := NewEducation()
	assert.Empty(t, edu.School)
	assert.Empty(t, edu.GPA)
	assert.NotNil(t, edu.Descriptions)

	proj := NewProject()
	assert.Empty(t, proj.Project)
	assert.NotNil(t, proj.Descriptions)
}

func TestResume_JSONFieldNames(t *testing.T) {
	r := NewResume()
	r.Profile = Profile{Name: "Jane Doe", URL: "https://jane.dev"}
	r.WorkExperiences = append(r.WorkExperiences, WorkExperience{
		Company:      "Acme Corp",
		JobTitle:     "Engineer",
		Date:         "2019 - 2022",
		Descriptions: []string{"Shipped things"},
	})
	r.Educations = append(r.Educations, Education{School: "MIT", GPA: "GPA: 3.9", Descriptions: []string{}})
	r.Skills.FeaturedSkills = append(r.Skills.FeaturedSkills, FeaturedSkill{Skill: "Go", Rating: DefaultSkillRating})

	data, err := json.Marshal(r)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))

	profile := raw["profile"].(map[string]any)
	assert.Equal(t, "Jane Doe", profile["name"])
	assert.Equal(t, "https://jane.dev", profile["url"])

	work := raw["workExperiences"].([]any)[0].(map[string]any)
	assert.Equal(t, "Engineer", work["jobTitle"])

	edu := raw["educations"].([]any)[0].(map[string]any)
	assert.Equal(t, "GPA: 3.9", edu["gpa"])

	featured := raw["skills"].(map[string]any)["featuredSkills"].([]any)[0].(map[string]any)
	assert.Equal(t, float64(4), featured["rating"])
}

func TestResume_Validate(t *testing.T) {
	complete := func() *Resume {
		r := NewResume()
		r.WorkExperiences = []WorkExperience{NewWorkExperience()}
		r.Educations = []Education{NewEducation()}
		r.Projects = []Project{NewProject()}
		return r
	}

	tests := []struct {
		name    string
		mutate  func(r *Resume)
		wantErr bool
		errMsg  string
	}{
		{
			name:   "placeholders only",
			mutate: func(r *Resume) {},
		},
		{
			name: "valid email and rating",
			mutate: func(r *Resume) {
				r.Profile.Email = "jane@example.com"
				r.Skills.FeaturedSkills = []FeaturedSkill{{Skill: "Go", Rating: DefaultSkillRating}}
			},
		},
		{
			name:    "missing work placeholder",
			mutate:  func(r *Resume) { r.WorkExperiences = []WorkExperience{} },
			wantErr: true,
			errMsg:  "WorkExperiences",
		},
		{
			name:    "malformed email",
			mutate:  func(r *Resume) { r.Profile.Email = "not-an-email" },
			wantErr: true,
			errMsg:  "Email",
		},
		{
			name: "rating out of range",
			mutate: func(r *Resume) {
				r.Skills.FeaturedSkills = []FeaturedSkill{{Skill: "Go", Rating: 9}}
			},
			wantErr: true,
			errMsg:  "Rating",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := complete()
			tt.mutate(r)
			err := r.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
				return
			}
			assert.NoError(t, err)
		})
	}
}
