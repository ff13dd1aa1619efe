package names

import "strings"

// knownSuffixes are the generational and professional suffixes recognized at
// the end of a name. Matching is case-insensitive on the cleaned token, so
// "Jr." has already lost its period by the time it is looked up here.
var knownSuffixes = map[string]bool{
	"jr":  true,
	"sr":  true,
	"ii":  true,
	"iii": true,
	"iv":  true,
	"v":   true,
	"phd": true,
	"md":  true,
	"dds": true,
	"esq": true,
	"cpa": true,
}

// romanSuffixes is the subset of knownSuffixes written as Roman numerals.
var romanSuffixes = map[string]bool{
	"ii":  true,
	"iii": true,
	"iv":  true,
	"v":   true,
}

// knownTitles are honorifics dropped from the given-name position.
var knownTitles = map[string]bool{
	"mr":   true,
	"mrs":  true,
	"ms":   true,
	"miss": true,
	"mx":   true,
	"dr":   true,
	"prof": true,
	"rev":  true,
	"hon":  true,
	"sir":  true,
}

// IsSuffix reports whether token is a recognized name suffix.
func IsSuffix(token string) bool {
	return knownSuffixes[strings.ToLower(token)]
}

// IsRomanSuffix reports whether token is a Roman-numeral generational suffix.
func IsRomanSuffix(token string) bool {
	return romanSuffixes[strings.ToLower(token)]
}

// IsTitle reports whether token is a recognized honorific.
func IsTitle(token string) bool {
	return knownTitles[strings.ToLower(token)]
}
