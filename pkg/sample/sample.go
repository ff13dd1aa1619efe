// Package sample generates synthetic record tables with noisy full names,
// for demos and for exercising the pipeline end to end.
package sample

import (
	"fmt"
	"strings"

	"github.com/brianvoe/gofakeit/v6"

	"namesplit/pkg/names"
)

// Header is the header row of every generated table. The full name is in
// column 1.
var Header = []string{"Name", "Account", "RecordSeries", "BoxNumber", "Scanning", "ScannedBy"}

// Style is the way a generated name was written.
type Style string

const (
	StylePlain    Style = "plain"
	StyleInverted Style = "inverted"
	StyleShouting Style = "upper"
	StyleLower    Style = "lower"
	StyleSpacing  Style = "spacing"
	StyleAnnotate Style = "annotated"
	StyleTitled   Style = "titled"
	StyleCurly    Style = "curly_apostrophe"
	StyleJunk     Style = "junk"
)

var styles = []Style{
	StylePlain, StyleInverted, StyleShouting, StyleLower, StyleSpacing,
	StyleAnnotate, StyleTitled, StyleCurly, StyleJunk,
}

var (
	suffixes    = []string{"Jr.", "Sr.", "II", "III", "IV", "PhD"}
	titles      = []string{"Dr.", "Mr.", "Mrs.", "Ms.", "Prof."}
	annotations = []string{"(deceased)", "[dup]", "{see file}", "(N/A)"}
	series      = []string{"HR", "FIN", "MED", "LEG", "OPS"}
)

// Record is one generated row and the components a correct parse recovers.
type Record struct {
	Row   []string
	Style Style
	Want  names.NameComponents
}

// Generator produces deterministic tables for a seed.
type Generator struct {
	f *gofakeit.Faker
}

// New returns a generator seeded with seed. The same seed always yields the
// same rows.
func New(seed int64) *Generator {
	return &Generator{f: gofakeit.New(seed)}
}

// Next generates one record.
func (g *Generator) Next() Record {
	want := names.NameComponents{
		First: g.token(g.f.FirstName),
		Last:  g.token(g.f.LastName),
	}
	if g.f.Number(1, 10) <= 4 {
		want.Middle = g.token(g.f.FirstName)
	}
	suffix := ""
	if g.f.Number(1, 10) <= 2 {
		suffix = g.f.RandomString(suffixes)
		want.Suffix = strings.TrimSuffix(suffix, ".")
	}

	style := styles[g.f.Number(0, len(styles)-1)]
	raw := g.render(style, want, suffix)

	scanning := "N"
	if g.f.Bool() {
		scanning = "Y"
	}
	row := []string{
		raw,
		g.f.Numerify("ACC-######"),
		g.f.RandomString(series),
		fmt.Sprint(g.f.Number(1, 4000)),
		scanning,
		g.f.Username(),
	}
	return Record{Row: row, Style: style, Want: want}
}

// token draws from gen until it yields a usable single token: letters only
// after cleaning, and not a word the parser treats as a title or suffix.
func (g *Generator) token(gen func() string) string {
	for {
		t := strings.Join(strings.Fields(names.Clean(gen())), "-")
		if t != "" && !strings.Contains(t, ",") && !names.IsTitle(t) && !names.IsSuffix(t) {
			return t
		}
	}
}

func (g *Generator) render(style Style, c names.NameComponents, suffix string) string {
	given := joinNonEmpty(c.First, c.Middle)
	plain := joinNonEmpty(given, c.Last, suffix)

	switch style {
	case StyleInverted:
		return c.Last + ", " + joinNonEmpty(given, suffix)
	case StyleShouting:
		return strings.ToUpper(plain)
	case StyleLower:
		return strings.ToLower(plain)
	case StyleSpacing:
		return "  " + strings.ReplaceAll(plain, " ", "   ") + "\t"
	case StyleAnnotate:
		return plain + " " + g.f.RandomString(annotations)
	case StyleTitled:
		return g.f.RandomString(titles) + " " + plain
	case StyleCurly:
		return strings.ReplaceAll(plain, "'", "’")
	case StyleJunk:
		return plain + " #" + g.f.Numerify("####")
	default:
		return plain
	}
}

func joinNonEmpty(parts ...string) string {
	out := parts[:0:0]
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, " ")
}

// RowWriter accepts generated rows.
type RowWriter interface {
	WriteRow(row []string) error
}

// Write emits the header and n generated rows to w.
func (g *Generator) Write(w RowWriter, n int) error {
	if n < 0 {
		return fmt.Errorf("row count must be >= 0, got %d", n)
	}
	if err := w.WriteRow(Header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for i := 1; i <= n; i++ {
		if err := w.WriteRow(g.Next().Row); err != nil {
			return fmt.Errorf("write row %d: %w", i, err)
		}
	}
	return nil
}
