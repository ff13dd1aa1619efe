package engine

import (
	"errors"
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"

	"namesplit/pkg/names"
	"namesplit/pkg/schema"
)

// RowReader yields table rows in order, header first, then io.EOF.
type RowReader interface {
	ReadRow() ([]string, error)
}

// RowWriter accepts output rows one at a time. Rows must be durable once
// Flush returns.
type RowWriter interface {
	WriteRow(row []string) error
	Flush() error
}

// State is the pipeline's position in its run.
type State int

const (
	AwaitingHeader State = iota
	StreamingRows
	Done
	Failed
)

func (s State) String() string {
	switch s {
	case AwaitingHeader:
		return "awaiting_header"
	case StreamingRows:
		return "streaming_rows"
	case Done:
		return "done"
	case Failed:
		return "failed"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Config wires a Pipeline. Zero values get defaults: the default cleaner,
// a title-stripping parser, the default column sets and a no-op logger.
type Config struct {
	// NameColumn is the 1-based index of the full-name field.
	NameColumn int
	// NameHeader, when set, locates the name field by header instead.
	NameHeader string

	Cleaner       *names.Cleaner
	Parser        *names.Parser
	Reconciler    *schema.Reconciler
	RomanSuffixes bool

	RunID  string
	Logger *zap.Logger
}

// Pipeline streams one table through clean, parse, case and reconcile.
// A Pipeline runs once; it is not safe for concurrent use.
type Pipeline struct {
	cleaner    names.Cleaner
	parser     *names.Parser
	reconciler *schema.Reconciler
	roman      bool
	nameColumn int
	nameHeader string
	log        *zap.Logger

	state  State
	column int // 0-based, resolved at header time
	layout *schema.Layout
	stats  Stats
}

// New validates cfg and returns a pipeline in the AwaitingHeader state.
func New(cfg Config) (*Pipeline, error) {
	if cfg.NameHeader == "" && cfg.NameColumn < 1 {
		return nil, fmt.Errorf("name column must be >= 1, got %d", cfg.NameColumn)
	}

	p := &Pipeline{
		cleaner:    names.DefaultCleaner,
		parser:     cfg.Parser,
		reconciler: cfg.Reconciler,
		roman:      cfg.RomanSuffixes,
		nameColumn: cfg.NameColumn,
		nameHeader: cfg.NameHeader,
		log:        cfg.Logger,
		stats:      newStats(cfg.RunID),
	}
	if cfg.Cleaner != nil {
		p.cleaner = *cfg.Cleaner
	}
	if p.parser == nil {
		p.parser = names.NewParser()
	}
	if p.reconciler == nil {
		r, err := schema.NewReconciler(schema.DefaultAdminColumns, schema.DefaultNameColumns)
		if err != nil {
			return nil, err
		}
		p.reconciler = r
	}
	if p.log == nil {
		p.log = zap.NewNop()
	}
	return p, nil
}

// State returns the current state.
func (p *Pipeline) State() State {
	return p.state
}

// Stats returns the counters gathered so far.
func (p *Pipeline) Stats() Stats {
	return p.stats
}

// Run drives the whole table from r to w. On a fatal condition the rows
// already written are flushed and kept, and the error is returned; the
// pipeline ends in Failed. On success it ends in Done.
func (p *Pipeline) Run(r RowReader, w RowWriter) (Stats, error) {
	if p.state != AwaitingHeader {
		return p.stats, fmt.Errorf("pipeline already %s", p.state)
	}

	start := time.Now()
	err := p.run(r, w)
	p.stats.Duration = time.Since(start)
	if err != nil {
		return p.stats, err
	}

	p.log.Info("run complete",
		zap.Int("rows_read", p.stats.RowsRead),
		zap.Int("rows_written", p.stats.RowsWritten),
		zap.Int("rows_padded", p.stats.RowsPadded),
		zap.Int("rows_truncated", p.stats.RowsTruncated),
		zap.Duration("elapsed", p.stats.Duration))
	return p.stats, nil
}

// run walks the states from AwaitingHeader to Done or Failed.
func (p *Pipeline) run(r RowReader, w RowWriter) error {
	if err := p.header(r, w); err != nil {
		return p.fail(err, nil)
	}

	for {
		row, err := r.ReadRow()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return p.fail(fmt.Errorf("read row %d: %w", p.stats.RowsRead+1, err), w)
		}
		if err := p.row(row, w); err != nil {
			return p.fail(err, w)
		}
	}

	if err := w.Flush(); err != nil {
		return p.fail(fmt.Errorf("flush output: %w", err), nil)
	}
	p.state = Done
	return nil
}

// header handles the AwaitingHeader -> StreamingRows transition.
func (p *Pipeline) header(r RowReader, w RowWriter) error {
	discovered, err := r.ReadRow()
	if errors.Is(err, io.EOF) {
		return ErrMissingHeader
	}
	if err != nil {
		return fmt.Errorf("%w: %w", ErrMissingHeader, err)
	}

	p.column = p.nameColumn - 1
	if p.nameHeader != "" {
		idx, ok := schema.ResolveColumn(discovered, p.nameHeader)
		if !ok {
			return fmt.Errorf("%w: no header matches %q", ErrNameColumnUnresolved, p.nameHeader)
		}
		p.column = idx
	}
	if p.column >= len(discovered) {
		p.log.Warn("name column is past the header width",
			zap.Int("name_column", p.column+1),
			zap.Int("header_width", len(discovered)))
	}

	p.layout = p.reconciler.ReconcileHeader(discovered)
	p.stats.NameColumn = p.column + 1
	p.stats.Header = p.layout.Header
	p.stats.Missing = p.layout.Missing
	p.stats.Collisions = p.layout.Collisions

	for _, c := range p.layout.Collisions {
		p.log.Warn("repeated column in output header",
			zap.String("column", c.Column),
			zap.String("kind", string(c.Kind)),
			zap.Ints("positions", c.Positions))
	}
	p.log.Info("header reconciled",
		zap.Int("name_column", p.column+1),
		zap.Int("input_columns", p.layout.Width),
		zap.Strings("padded_columns", p.layout.Missing))

	if err := w.WriteRow(p.layout.Header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	p.state = StreamingRows
	return nil
}

// row processes one StreamingRows iteration.
func (p *Pipeline) row(row []string, w RowWriter) error {
	p.stats.RowsRead++
	ordinal := p.stats.RowsRead
	if p.column >= len(row) {
		return &RowError{Row: ordinal, Column: p.column + 1, Fields: len(row)}
	}

	raw := row[p.column]
	cleaned := p.cleaner.Clean(raw)
	parsed := p.parser.Analyze(cleaned)
	nc := names.Normalize(parsed.NameComponents, p.roman)
	out, align := p.layout.ReconcileRow(row, nc)

	review := ReviewParse(raw, cleaned, parsed)
	p.stats.record(parsed, review, align)

	if align != schema.AlignExact {
		p.log.Warn("row width differs from header",
			zap.Int("row", ordinal),
			zap.Int("fields", len(row)),
			zap.Int("header_width", p.layout.Width))
	}
	if ce := p.log.Check(zap.DebugLevel, "name parsed"); ce != nil {
		ce.Write(
			zap.Int("row", ordinal),
			zap.String("raw", raw),
			zap.String("cleaned", cleaned),
			zap.String("convention", string(parsed.Convention)),
			zap.String("review", string(review.Level)))
	}

	if err := w.WriteRow(out); err != nil {
		return fmt.Errorf("write row %d: %w", ordinal, err)
	}
	p.stats.RowsWritten++
	return nil
}

// fail moves to Failed, flushes whatever was written when w is given, and
// returns err unchanged.
func (p *Pipeline) fail(err error, w RowWriter) error {
	p.state = Failed
	if w != nil {
		if ferr := w.Flush(); ferr != nil {
			p.log.Error("flush after failure", zap.Error(ferr))
		}
	}
	p.log.Error("run failed", zap.Error(err), zap.Int("rows_written", p.stats.RowsWritten))
	return err
}
