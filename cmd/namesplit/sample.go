package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"namesplit/pkg/sample"
)

func newSampleCmd() *cobra.Command {
	var (
		rows  int
		seed  int64
		sheet string
	)

	cmd := &cobra.Command{
		Use:   "sample <output>",
		Short: "Write a synthetic table of noisy names",
		Long: `Generates a table with the administrative columns and a Name column
holding full names written in assorted messy ways: inverted order, shouting,
stray punctuation, bracketed notes, honorifics and suffixes. The same seed
always produces the same table.`,
		Example: "  namesplit sample demo.csv -n 500 --seed 7",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			w, err := createOutput(path, outputFormat(path, ""), sheet)
			if err != nil {
				return err
			}
			if err := sample.New(seed).Write(w, rows); err != nil {
				_ = w.Close()
				return err
			}
			if err := w.Close(); err != nil {
				return fmt.Errorf("close output: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d rows written to %s\n", rows, path)
			return nil
		},
	}

	cmd.Flags().IntVarP(&rows, "rows", "n", 100, "number of data rows")
	cmd.Flags().Int64Var(&seed, "seed", 1, "generator seed (0 picks a random seed)")
	cmd.Flags().StringVar(&sheet, "sheet", "", "worksheet name for .xlsx output")
	return cmd
}
