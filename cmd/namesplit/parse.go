package main

import (
	"encoding/json"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"namesplit/pkg/engine"
	"namesplit/pkg/names"
)

var headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
var cellStyle = lipgloss.NewStyle().Padding(0, 1)

// parsedName is one line of `parse --json` output.
type parsedName struct {
	Raw        string               `json:"raw"`
	Cleaned    string               `json:"cleaned"`
	Components names.NameComponents `json:"components"`
	Convention names.Convention     `json:"convention"`
	Review     engine.Review        `json:"review"`
}

func newParseCmd(g *globalOptions) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "parse <name>...",
		Short: "Clean and split names given on the command line",
		Example: `  namesplit parse "Doe, Jane A." "DR. john  o'neil jr"
  namesplit parse --json "Smith"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := g.loadConfig()
			if err != nil {
				return err
			}
			cleaner := names.Cleaner{FoldDiacritics: cfg.Parser.FoldDiacritics}
			parser := &names.Parser{StripTitles: cfg.Parser.StripTitles}

			results := make([]parsedName, 0, len(args))
			for _, raw := range args {
				cleaned := cleaner.Clean(raw)
				parsed := parser.Analyze(cleaned)
				results = append(results, parsedName{
					Raw:        raw,
					Cleaned:    cleaned,
					Components: names.Normalize(parsed.NameComponents, cfg.Parser.RomanSuffixes),
					Convention: parsed.Convention,
					Review:     engine.ReviewParse(raw, cleaned, parsed),
				})
			}

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				for _, r := range results {
					if err := enc.Encode(r); err != nil {
						return err
					}
				}
				return nil
			}

			t := table.New().
				Border(lipgloss.NormalBorder()).
				Headers("INPUT", "LAST", "FIRST", "MIDDLE", "SUFFIX", "REVIEW").
				StyleFunc(func(row, col int) lipgloss.Style {
					if row == table.HeaderRow {
						return headerStyle
					}
					return cellStyle
				})
			for _, r := range results {
				c := r.Components
				t.Row(r.Raw, c.Last, c.First, c.Middle, c.Suffix, string(r.Review.Level))
			}
			_, err = fmt.Fprintln(out, t.Render())
			return err
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print one JSON object per name")
	return cmd
}
