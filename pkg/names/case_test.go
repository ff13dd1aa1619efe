package names

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTitleCase(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"", ""},
		{"smith", "Smith"},
		{"SMITH", "Smith"},
		{"mary-jane", "Mary-Jane"},
		{"VAN DER BERG", "Van Der Berg"},
		{"o'brien", "O'brien"},
		{"'o", "'O"},
		{"jr", "Jr"},
		{"ii", "Ii"},
		{"a", "A"},
		{"paul george", "Paul George"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, TitleCase(tt.in))
		})
	}
}

func TestTitleCase_Idempotent(t *testing.T) {
	for _, raw := range noisyCorpus(t, 200) {
		once := TitleCase(Clean(raw))
		assert.Equal(t, once, TitleCase(once))
	}
}

func TestNormalize(t *testing.T) {
	in := NameComponents{Last: "van der berg", First: "ANNA", Middle: "maria-luisa", Suffix: "iii"}

	got := Normalize(in, false)
	assert.Equal(t, NameComponents{Last: "Van Der Berg", First: "Anna", Middle: "Maria-Luisa", Suffix: "Iii"}, got)

	got = Normalize(in, true)
	assert.Equal(t, "III", got.Suffix)

	// Non-Roman suffixes are untouched by the Roman option.
	assert.Equal(t, "Jr", Normalize(NameComponents{Suffix: "JR"}, true).Suffix)
}
