package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContainsDate(t *testing.T) {
	tests := []struct {
		line string
		want bool
	}{
		{"2020 - 2023", true},
		{"2020-2023", true},
		{"2020 – Present", true},
		{"2018 - present", true},
		{"January 2020", true},
		{"Sept 2019 - Jun 2021", true},
		{"01/2020", true},
		{"Senior Engineer", false},
		{"Acme Corp", false},
		{"Mentored 3 engineers", false},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			assert.Equal(t, tt.want, ContainsDate(tt.line))
		})
	}
}

func TestExtractDate(t *testing.T) {
	tests := []struct {
		name string
		line string
		want string
	}{
		{name: "year range", line: "2020 - 2023", want: "2020 - 2023"},
		{name: "month range to present", line: "Jun 2020 - Present", want: "Jun 2020 - Present"},
		{name: "month range", line: "Remote | January 2018 - March 2020", want: "January 2018 - March 2020"},
		{name: "numeric range", line: "01/2023 - 03/2023", want: "01/2023 - 03/2023"},
		{name: "year to present with trailing text", line: "2019 - Present (contract)", want: "2019 - Present"},
		{name: "en dash", line: "2015 – 2019", want: "2015 – 2019"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractDate(tt.line))
		})
	}
}

// A line that mentions a single date but no range comes back whole. This leniency is
// intentional: the editor shows the text and the user trims it.
func TestExtractDate_FallsBackToWholeLine(t *testing.T) {
	line := "Graduated May 2019 with honors"
	assert.True(t, ContainsDate(line))
	assert.Equal(t, line, ExtractDate(line))
}
