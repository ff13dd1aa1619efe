package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveColumn(t *testing.T) {
	tests := []struct {
		name    string
		headers []string
		want    string
		index   int
		ok      bool
	}{
		{"exact", []string{"Account", "Full Name"}, "Full Name", 1, true},
		{"normalized", []string{"Account", "full_name"}, "FullName", 1, true},
		{"bom prefix", []string{"\ufeffName", "Account"}, "name", 0, true},
		{"first occurrence wins", []string{"Name", "Name"}, "Name", 0, true},
		{"alias fallback", []string{"Account", "Display Name"}, "Full Name", 1, true},
		{"alias priority", []string{"Name", "Full-Name"}, "displayname", 1, true},
		{"fuzzy typo", []string{"Account", "Employe Name"}, "EmployeeName", 1, true},
		{"no match", []string{"Account", "Box"}, "Surname", -1, false},
		{"empty want", []string{"Name"}, "  ", -1, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			index, ok := ResolveColumn(tt.headers, tt.want)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.index, index)
		})
	}
}

func TestSimilarity(t *testing.T) {
	assert.Equal(t, 1.0, similarity("", ""))
	assert.Equal(t, 1.0, similarity("name", "name"))
	assert.Equal(t, 0.0, similarity("abc", ""))
	assert.InDelta(t, 0.75, similarity("name", "nome"), 1e-9)
	assert.Equal(t, 3, levenshtein("kitten", "sitting"))
}
