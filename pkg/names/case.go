package names

import (
	"strings"
	"unicode"
)

// TitleCase uppercases the first letter of every whitespace- or
// hyphen-delimited sub-token and lowercases the rest of it.
// "o'NEIL-smith" becomes "O'neil-Smith"; "ii" becomes "Ii".
func TitleCase(component string) string {
	if component == "" {
		return ""
	}
	var b strings.Builder
	b.Grow(len(component))
	atStart := true
	for _, r := range component {
		switch {
		case unicode.IsSpace(r) || r == '-':
			atStart = true
			b.WriteRune(r)
		case atStart && unicode.IsLetter(r):
			atStart = false
			b.WriteRune(unicode.ToUpper(r))
		default:
			b.WriteRune(unicode.ToLower(r))
		}
	}
	return b.String()
}

// Normalize title-cases all four components. With romanSuffixes set, a
// Roman-numeral suffix is written in capitals ("III") instead of "Iii".
func Normalize(c NameComponents, romanSuffixes bool) NameComponents {
	out := NameComponents{
		Last:   TitleCase(c.Last),
		First:  TitleCase(c.First),
		Middle: TitleCase(c.Middle),
		Suffix: TitleCase(c.Suffix),
	}
	if romanSuffixes && IsRomanSuffix(c.Suffix) {
		out.Suffix = strings.ToUpper(c.Suffix)
	}
	return out
}
