// Command namesplit splits a free-text full-name column into LastName,
// FirstName, MiddleName and Suffix columns.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// version is stamped at build time with -ldflags "-X main.version=...".
var version = "dev"

// globalOptions are the persistent flags shared by every subcommand.
type globalOptions struct {
	configPath string
	verbose    bool
	logFormat  string
	logFile    string
}

func newRootCmd() *cobra.Command {
	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:   "namesplit",
		Short: "Decompose noisy full names in tabular records",
		Long: `namesplit reads a CSV or XLSX table, cleans the free-text full-name
column of every row, splits it into last, first, middle and suffix parts,
and writes the table back out with four appended columns.

The output header always carries the administrative columns Account,
RecordSeries, BoxNumber, Scanning and ScannedBy, padded when the input
lacks them.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "YAML config file")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "debug logging")
	rootCmd.PersistentFlags().StringVar(&opts.logFormat, "log-format", "", "log encoding: json or console")
	rootCmd.PersistentFlags().StringVar(&opts.logFile, "log-file", "", "also write logs to this file")

	rootCmd.AddCommand(
		newSplitCmd(opts),
		newParseCmd(opts),
		newSampleCmd(),
		newVersionCmd(),
	)
	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "namesplit:", err)
		os.Exit(1)
	}
}
