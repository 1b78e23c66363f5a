package schemas

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jonathan/resume-importer/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateResume_Placeholders(t *testing.T) {
	err := ValidateResume(types.NewResume())
	assert.NoError(t, err)
}

func TestValidateResume_Populated(t *testing.T) {
	r := types.NewResume()
	r.Profile.Name = "Jane Doe"
	r.Profile.Email = "jane@example.com"
	r.WorkExperiences[0].Company = "Acme Corp"
	r.WorkExperiences[0].Descriptions = []string{"Shipped V2"}
	r.Skills.FeaturedSkills = []types.FeaturedSkill{{Skill: "Go", Rating: types.DefaultSkillRating}}

	assert.NoError(t, ValidateResume(r))
}

func TestValidateResume_Violations(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(r *types.Resume)
		field  string
	}{
		{
			name:   "empty work list",
			mutate: func(r *types.Resume) { r.WorkExperiences = []types.WorkExperience{} },
			field:  "workExperiences",
		},
		{
			name:   "rating out of range",
			mutate: func(r *types.Resume) { r.Skills.FeaturedSkills = []types.FeaturedSkill{{Skill: "Go", Rating: 9}} },
			field:  "skills.featuredSkills.0.rating",
		},
		{
			name:   "null descriptions",
			mutate: func(r *types.Resume) { r.Projects[0].Descriptions = nil },
			field:  "projects.0.descriptions",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := types.NewResume()
			tt.mutate(r)

			err := ValidateResume(r)
			require.Error(t, err)

			var validationErr *ValidationError
			require.ErrorAs(t, err, &validationErr)
			fields := make([]string, 0, len(validationErr.Errors))
			for _, fe := range validationErr.Errors {
				fields = append(fields, fe.Field)
			}
			assert.Contains(t, fields, tt.field)
		})
	}
}

func TestValidateResumeJSON_UnknownField(t *testing.T) {
	err := ValidateResumeJSON([]byte(`{"profile": {}, "extra": true}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestValidateResumeFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.resume.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"profile": 1}`), 0644))

	err := ValidateResumeFile(path)
	var validationErr *ValidationError
	assert.ErrorAs(t, err, &validationErr)

	err = ValidateResumeFile(filepath.Join(dir, "missing.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestValidateJSONString(t *testing.T) {
	schema := `{"type": "object", "required": ["name"], "properties": {"name": {"type": "string"}}}`

	assert.NoError(t, ValidateJSONString(schema, `{"name": "Jane"}`))

	err := ValidateJSONString(schema, `{"name": 3}`)
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "name", validationErr.Errors[0].Field)

	err = ValidateJSONString(`{"type": 12}`, `{}`)
	var loadErr *SchemaLoadError
	assert.ErrorAs(t, err, &loadErr)
}
