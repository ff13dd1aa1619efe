package names

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Pre-compiled patterns for cleaning.
var (
	// bracketRe matches one innermost bracketed annotation, e.g. "(deceased)".
	bracketRe = regexp.MustCompile(`\([^()\[\]{}]*\)|\[[^()\[\]{}]*\]|\{[^()\[\]{}]*\}`)
	// markRunRe matches runs of hyphens/apostrophes inside a token.
	markRunRe = regexp.MustCompile(`[-']{2,}`)
)

// apostropheReplacer maps typographic apostrophes onto the ASCII one.
var apostropheReplacer = strings.NewReplacer(
	"’", "'",
	"‘", "'",
	"ʼ", "'",
	"`", "'",
)

// separatorRunes become token separators instead of being dropped.
const separatorRunes = "/_;|&+"

// Cleaner strips data-entry noise from raw full-name strings.
type Cleaner struct {
	// FoldDiacritics decomposes accented letters and drops the combining
	// marks before filtering, so "José" survives as "Jose".
	FoldDiacritics bool
}

// DefaultCleaner folds diacritics.
var DefaultCleaner = Cleaner{FoldDiacritics: true}

// Clean cleans raw with the DefaultCleaner.
func Clean(raw string) string {
	return DefaultCleaner.Clean(raw)
}

// Clean reduces raw to the alphabet [A-Za-z'-], single spaces and at most one
// comma rendered as ", ". It never fails and Clean(Clean(s)) == Clean(s).
//
// Steps:
//  1. Fold diacritics (optional)
//  2. Normalize apostrophes, remove bracketed annotations
//  3. Filter runes: keep letters, ' - and commas; periods split initials;
//     whitespace and separator runes become spaces; everything else is dropped
//  4. Split on the first comma and rebuild each side from its tokens
func (c Cleaner) Clean(raw string) string {
	s := raw
	if c.FoldDiacritics {
		s = foldDiacritics(s)
	}
	s = apostropheReplacer.Replace(s)
	s = stripBrackets(s)
	s = filterRunes(s)

	surname, given, inverted := strings.Cut(s, ",")
	left := joinTokens(surname)
	if !inverted {
		return left
	}
	right := joinTokens(strings.ReplaceAll(given, ",", " "))
	switch {
	case left == "":
		return right
	case right == "":
		return left
	}
	return left + ", " + right
}

// foldDiacritics removes combining marks after NFD decomposition.
// A fresh chain is built per call because transform chains carry state.
func foldDiacritics(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	result, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return result
}

// stripBrackets removes bracketed annotations innermost first, so nested
// brackets disappear entirely.
func stripBrackets(s string) string {
	for {
		next := bracketRe.ReplaceAllString(s, " ")
		if next == s {
			return s
		}
		s = next
	}
}

func filterRunes(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	rs := []rune(s)
	for i, r := range rs {
		switch {
		case isASCIILetter(r), r == '\'', r == '-', r == ',':
			b.WriteRune(r)
		case r == '.':
			// "J.R. Smith" -> "J R Smith", "Jr." -> "Jr"
			if i+1 < len(rs) && isASCIILetter(rs[i+1]) {
				b.WriteByte(' ')
			}
		case unicode.IsSpace(r), strings.ContainsRune(separatorRunes, r):
			b.WriteByte(' ')
		}
	}
	return b.String()
}

// joinTokens rebuilds s from its whitespace tokens, collapsing mark runs and
// trimming hyphens/apostrophes from token edges. Tokens left empty are dropped.
func joinTokens(s string) string {
	fields := strings.Fields(s)
	tokens := fields[:0]
	for _, f := range fields {
		f = markRunRe.ReplaceAllStringFunc(f, func(run string) string { return run[:1] })
		f = strings.Trim(f, "-'")
		if f != "" {
			tokens = append(tokens, f)
		}
	}
	return strings.Join(tokens, " ")
}

func isASCIILetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}
