package engine

import (
	"strings"

	"namesplit/pkg/names"
)

// ReviewLevel is how urgently a parsed name deserves a human look.
type ReviewLevel string

const (
	ReviewHigh   ReviewLevel = "HIGH"
	ReviewMedium ReviewLevel = "MEDIUM"
	ReviewLow    ReviewLevel = "LOW"
	ReviewInfo   ReviewLevel = "INFO"
)

// ReviewFlag names one observation about a parse.
type ReviewFlag string

const (
	FlagEmpty            ReviewFlag = "empty"
	FlagSurnameOnly      ReviewFlag = "surname_only"
	FlagManyMiddle       ReviewFlag = "many_middle"
	FlagInitialOnlyFirst ReviewFlag = "initial_only_first"
	FlagSuffixExtracted  ReviewFlag = "suffix_extracted"
	FlagTitleStripped    ReviewFlag = "title_stripped"
	FlagNoiseRemoved     ReviewFlag = "noise_removed"
)

// Review is the outcome of ReviewParse.
type Review struct {
	Level ReviewLevel  `json:"level"`
	Score int          `json:"score"`
	Flags []ReviewFlag `json:"flags,omitempty"`
}

// ReviewParse inspects one parse and returns its review level and flags.
// Rules:
//   - nothing recovered = HIGH (80)
//   - surname only, or two or more middle names = MEDIUM (50)
//   - one-letter first name, extracted suffix, dropped title,
//     or characters removed by cleaning = LOW (20)
//   - otherwise INFO (0)
//
// The highest applicable level wins. Flags never change the output row.
func ReviewParse(raw, cleaned string, parsed names.Parsed) Review {
	r := Review{Level: ReviewInfo}
	raise := func(flag ReviewFlag, level ReviewLevel, score int) {
		r.Flags = append(r.Flags, flag)
		if score > r.Score {
			r.Level, r.Score = level, score
		}
	}

	if parsed.IsEmpty() {
		raise(FlagEmpty, ReviewHigh, 80)
		return r
	}
	if parsed.First == "" {
		raise(FlagSurnameOnly, ReviewMedium, 50)
	}
	if len(strings.Fields(parsed.Middle)) >= 2 {
		raise(FlagManyMiddle, ReviewMedium, 50)
	}
	if len(parsed.First) == 1 {
		raise(FlagInitialOnlyFirst, ReviewLow, 20)
	}
	if parsed.Suffix != "" {
		raise(FlagSuffixExtracted, ReviewLow, 20)
	}
	if parsed.Title != "" {
		raise(FlagTitleStripped, ReviewLow, 20)
	}
	if noiseRemoved(raw, cleaned) {
		raise(FlagNoiseRemoved, ReviewLow, 20)
	}
	return r
}

// noiseRemoved reports whether cleaning did more than collapse whitespace
// and normalize comma spacing.
func noiseRemoved(raw, cleaned string) bool {
	squashed := strings.Join(strings.Fields(strings.ReplaceAll(raw, ",", ", ")), " ")
	return squashed != cleaned
}
