package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"namesplit/pkg/names"
)

func TestReviewParse(t *testing.T) {
	p := names.NewParser()
	tests := []struct {
		name  string
		raw   string
		level ReviewLevel
		flags []ReviewFlag
	}{
		{"clean two part", "Jane Doe", ReviewInfo, nil},
		{"empty", "???", ReviewHigh, []ReviewFlag{FlagEmpty}},
		{"surname only", "Smith", ReviewMedium, []ReviewFlag{FlagSurnameOnly}},
		{"ambiguous middles", "Lee Anne Marie Park", ReviewMedium, []ReviewFlag{FlagManyMiddle}},
		{"initial first", "J Smith", ReviewLow, []ReviewFlag{FlagInitialOnlyFirst}},
		{"suffix and noise", "John Smith Jr.", ReviewLow, []ReviewFlag{FlagSuffixExtracted, FlagNoiseRemoved}},
		{"title", "Dr Jane Doe", ReviewLow, []ReviewFlag{FlagTitleStripped}},
		{"inverted spacing is not noise", "Doe,  Jane", ReviewInfo, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cleaned := names.Clean(tt.raw)
			got := ReviewParse(tt.raw, cleaned, p.Analyze(cleaned))
			assert.Equal(t, tt.level, got.Level)
			assert.Equal(t, tt.flags, got.Flags)
		})
	}
}
