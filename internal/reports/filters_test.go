package reports

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseMultivalue(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{name: "empty", input: "", want: nil},
		{name: "single", input: "TRUCK-01", want: []string{"TRUCK-01"}},
		{name: "comma separated", input: "TRUCK-01,TRUCK-02", want: []string{"TRUCK-01", "TRUCK-02"}},
		{name: "trims whitespace", input: " TRUCK-01 , TRUCK-02 ", want: []string{"TRUCK-01", "TRUCK-02"}},
		{name: "drops empty parts", input: "TRUCK-01,,  ,TRUCK-02", want: []string{"TRUCK-01", "TRUCK-02"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseMultivalue(tt.input))
		})
	}
}

func TestFiltersValidate(t *testing.T) {
	assert.NoError(t, Filters{}.Validate())
	assert.NoError(t, Filters{FromDate: "2025-01-01", ToDate: "2025-12-31"}.Validate())
	assert.Error(t, Filters{FromDate: "01/01/2025"}.Validate())
	assert.Error(t, Filters{ToDate: "not-a-date"}.Validate())
}
