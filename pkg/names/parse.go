package names

import "strings"

// Convention identifies which name order a parse followed.
type Convention string

const (
	ConventionNone       Convention = "none"        // No tokens at all.
	ConventionFirstOrder Convention = "first_order" // "First Middle ... Last".
	ConventionInverted   Convention = "inverted"    // "Last, First Middle".
)

// Parsed is a parse result with the decisions that produced it.
type Parsed struct {
	NameComponents
	Convention Convention `json:"convention"`
	// Title is the honorific dropped from the given position, if any.
	Title string `json:"title,omitempty"`
}

// Parser decomposes cleaned full-name strings.
type Parser struct {
	// StripTitles drops a leading honorific ("Dr", "Mrs", ...) from the
	// given-name position when another given token remains.
	StripTitles bool
}

// NewParser returns a Parser with title stripping enabled.
func NewParser() *Parser {
	return &Parser{StripTitles: true}
}

// Parse returns the components of cleaned. It is total: any input, including
// the empty string, produces a well-formed (possibly all-empty) result.
func (p *Parser) Parse(cleaned string) NameComponents {
	return p.Analyze(cleaned).NameComponents
}

// Analyze is Parse plus the convention and dropped title.
func (p *Parser) Analyze(cleaned string) Parsed {
	surname, given, inverted := strings.Cut(cleaned, ",")
	if inverted {
		return p.inverted(strings.Fields(surname), strings.Fields(strings.ReplaceAll(given, ",", " ")))
	}
	return p.firstOrder(strings.Fields(cleaned))
}

func (p *Parser) firstOrder(tokens []string) Parsed {
	out := Parsed{Convention: ConventionFirstOrder}
	if len(tokens) == 0 {
		out.Convention = ConventionNone
		return out
	}

	// A suffix is only taken when something is left to be the surname.
	if n := len(tokens); n > 1 && trailingSuffix(tokens) {
		out.Suffix = tokens[n-1]
		tokens = tokens[:n-1]
	}
	if p.StripTitles && len(tokens) > 1 && IsTitle(tokens[0]) {
		out.Title = tokens[0]
		tokens = tokens[1:]
	}

	n := len(tokens)
	out.Last = tokens[n-1]
	if n > 1 {
		out.First = tokens[0]
		out.Middle = strings.Join(tokens[1:n-1], " ")
	}
	return out
}

func (p *Parser) inverted(surname, given []string) Parsed {
	out := Parsed{Convention: ConventionInverted}
	if len(surname) == 0 && len(given) == 0 {
		out.Convention = ConventionNone
		return out
	}

	// The final token of the whole sequence decides the suffix. "Smith Jr, John"
	// keeps the suffix in the surname group, so that is checked second.
	switch n := len(given); {
	case trailingSuffix(given) && (n > 1 || len(surname) > 0):
		out.Suffix = given[n-1]
		given = given[:n-1]
	case len(surname) > 1 && trailingSuffix(surname):
		out.Suffix = surname[len(surname)-1]
		surname = surname[:len(surname)-1]
	}
	if p.StripTitles && len(given) > 1 && IsTitle(given[0]) {
		out.Title = given[0]
		given = given[1:]
	}

	out.Last = strings.Join(surname, " ")
	if len(given) > 0 {
		out.First = given[0]
		out.Middle = strings.Join(given[1:], " ")
	}
	return out
}

// trailingSuffix reports whether the last token of group is a suffix. A
// one-letter suffix ("V") is read as a middle initial unless at least two
// tokens precede it.
func trailingSuffix(group []string) bool {
	n := len(group)
	if n == 0 || !IsSuffix(group[n-1]) {
		return false
	}
	return len(group[n-1]) > 1 || n > 2
}
