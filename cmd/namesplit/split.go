package main

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"namesplit/internal/config"
	"namesplit/pkg/engine"
	"namesplit/pkg/names"
	"namesplit/pkg/parser"
	"namesplit/pkg/report"
	"namesplit/pkg/sink"
)

type splitOptions struct {
	*globalOptions
	nameColumn    int
	nameHeader    string
	format        string
	encoding      string
	sheet         string
	summary       string
	romanSuffixes bool
}

func newSplitCmd(g *globalOptions) *cobra.Command {
	opts := &splitOptions{globalOptions: g}

	cmd := &cobra.Command{
		Use:   "split <input> <output>",
		Short: "Split the full-name column of a table",
		Long: `Streams <input> row by row and writes <output> with LastName, FirstName,
MiddleName and Suffix appended. The format of each file follows its extension
(.xlsx or CSV) unless --format is given for the output.

Processing stops at the first row that has no name field; rows already
written are kept.`,
		Example: `  namesplit split records.csv records_split.csv --name-column 2
  namesplit split intake.xlsx out.xlsx --name-header "Client Name" --summary run.yaml`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.run(cmd, args[0], args[1])
		},
	}

	f := cmd.Flags()
	f.IntVarP(&opts.nameColumn, "name-column", "n", 0, "1-based index of the full-name column")
	f.StringVar(&opts.nameHeader, "name-header", "", "locate the full-name column by header text")
	f.StringVarP(&opts.format, "format", "f", "", "output format: csv or xlsx (default: by extension)")
	f.StringVar(&opts.encoding, "encoding", "", "input text encoding (auto, utf-8, utf-16le, utf-16be, windows-1252, latin-1)")
	f.StringVar(&opts.sheet, "sheet", "", "worksheet to read from an .xlsx input")
	f.StringVarP(&opts.summary, "summary", "s", "", "write a run summary (.json, .yaml)")
	f.BoolVar(&opts.romanSuffixes, "roman-suffixes", false, "write Roman-numeral suffixes in capitals (III)")
	cmd.MarkFlagsMutuallyExclusive("name-column", "name-header")
	return cmd
}

// apply layers the command-line flags that were set over cfg.
func (o *splitOptions) apply(cmd *cobra.Command, cfg *config.Config) {
	f := cmd.Flags()
	if f.Changed("name-column") {
		cfg.Input.NameColumn = o.nameColumn
		cfg.Input.NameHeader = ""
	}
	if f.Changed("name-header") {
		cfg.Input.NameHeader = o.nameHeader
	}
	if f.Changed("format") {
		cfg.Output.Format = strings.ToLower(o.format)
	}
	if f.Changed("encoding") {
		cfg.Input.Encoding = o.encoding
	}
	if f.Changed("sheet") {
		cfg.Input.Sheet = o.sheet
	}
	if f.Changed("summary") {
		cfg.Report.Summary = o.summary
	}
	if f.Changed("roman-suffixes") {
		cfg.Parser.RomanSuffixes = o.romanSuffixes
	}
}

func (o *splitOptions) run(cmd *cobra.Command, inPath, outPath string) error {
	cfg, err := o.loadConfig()
	if err != nil {
		return err
	}
	o.apply(cmd, cfg)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	runID := uuid.NewString()
	logger, err := o.logger(cfg, runID)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	reconciler, err := cfg.Reconciler()
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	pipeline, err := engine.New(engine.Config{
		NameColumn:    cfg.Input.NameColumn,
		NameHeader:    cfg.Input.NameHeader,
		Cleaner:       &names.Cleaner{FoldDiacritics: cfg.Parser.FoldDiacritics},
		Parser:        &names.Parser{StripTitles: cfg.Parser.StripTitles},
		Reconciler:    reconciler,
		RomanSuffixes: cfg.Parser.RomanSuffixes,
		RunID:         runID,
		Logger:        logger,
	})
	if err != nil {
		return err
	}

	in, encoding, err := openInput(inPath, cfg.Input)
	if err != nil {
		return err
	}
	defer in.Close()

	format := outputFormat(outPath, cfg.Output.Format)
	out := &lazyOutput{path: outPath, format: format, sheet: cfg.Output.Sheet}

	logger.Info("split started",
		zap.String("input", inPath),
		zap.String("output", outPath),
		zap.String("format", format),
		zap.String("encoding", encoding))

	stats, runErr := pipeline.Run(in, out)
	if err := out.Close(); err != nil && runErr == nil {
		runErr = fmt.Errorf("close output: %w", err)
	}

	if cfg.Report.Summary != "" {
		src := report.Source{Input: inPath, Output: outPath, Format: format, Encoding: encoding}
		summary := report.Summarize(stats, src, runErr, time.Now().Unix())
		if err := report.WriteFile(cfg.Report.Summary, summary); err != nil {
			logger.Error("summary not written", zap.Error(err))
		}
	}
	if runErr != nil {
		return runErr
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%d rows written to %s\n", stats.RowsWritten, outPath)
	return nil
}

// tableReader is a row source that owns an open file.
type tableReader interface {
	engine.RowReader
	io.Closer
}

// tableWriter is a row sink that owns an open file.
type tableWriter interface {
	engine.RowWriter
	io.Closer
}

func isXLSX(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".xlsx")
}

func openInput(path string, in config.InputConfig) (tableReader, string, error) {
	if isXLSX(path) {
		r, err := parser.OpenXLSX(path, in.Sheet)
		if err != nil {
			return nil, "", fmt.Errorf("%w: %s: %w", engine.ErrSourceUnavailable, path, err)
		}
		return r, "xlsx", nil
	}

	enc, err := parser.ParseEncoding(in.Encoding)
	if err != nil {
		return nil, "", err
	}
	r, err := parser.OpenCSV(path, enc)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %s: %w", engine.ErrSourceUnavailable, path, err)
	}
	return r, string(r.Encoding()), nil
}

func outputFormat(path, configured string) string {
	if configured != "" {
		return configured
	}
	if isXLSX(path) {
		return "xlsx"
	}
	return "csv"
}

func createOutput(path, format, sheet string) (tableWriter, error) {
	var (
		w   tableWriter
		err error
	)
	switch format {
	case "xlsx":
		w, err = sink.CreateXLSX(path, sheet)
	default:
		w, err = sink.CreateCSV(path)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", engine.ErrSourceUnavailable, path, err)
	}
	return w, nil
}

// lazyOutput creates its file on the first row, so a run that fails before
// the header is written leaves no output behind.
type lazyOutput struct {
	path, format, sheet string
	w                   tableWriter
}

func (l *lazyOutput) WriteRow(row []string) error {
	if l.w == nil {
		w, err := createOutput(l.path, l.format, l.sheet)
		if err != nil {
			return err
		}
		l.w = w
	}
	return l.w.WriteRow(row)
}

func (l *lazyOutput) Flush() error {
	if l.w == nil {
		return nil
	}
	return l.w.Flush()
}

func (l *lazyOutput) Close() error {
	if l.w == nil {
		return nil
	}
	return l.w.Close()
}
